package scene

import (
	"context"
	"fmt"

	"github.com/mortac8/czml-writer/internal/czml"
	"github.com/mortac8/czml-writer/internal/kml"
	"github.com/mortac8/czml-writer/internal/pool"
)

type FlattenFailure struct {
	PacketID  string `json:"packet_id"`
	Placemark string `json:"placemark"`
	err       error
}

type flattenJob struct {
	id        string
	placemark string
	polygon   kml.Polygon
}

// Flattener fans placemark polygons out onto a worker pool and collects the
// resulting packets. Each polygon flattens independently; parallelism is per
// polygon.
type Flattener struct {
	p      *pool.Pool
	dataCh chan czml.Packet
	failCh chan FlattenFailure
}

func NewFlattener(p *pool.Pool, polygonCount int) *Flattener {
	return &Flattener{
		p:      p,
		dataCh: make(chan czml.Packet, polygonCount),
		failCh: make(chan FlattenFailure, polygonCount),
	}
}

func (f *Flattener) fail(job flattenJob, err error) {
	f.failCh <- FlattenFailure{
		PacketID:  job.id,
		Placemark: job.placemark,
		err:       err,
	}
}

func (f *Flattener) finish(p czml.Packet) {
	f.dataCh <- p
}

type FlattenResult struct {
	Packets []czml.Packet
	Fails   []FlattenFailure
}

// FlattenEach flattens every polygon of every placemark concurrently.
// Packet IDs are assigned deterministically from the document ID and the
// polygon's position in the document; collection order follows completion.
func (f *Flattener) FlattenEach(ctx context.Context, docID string, placemarks []kml.Placemark) FlattenResult {
	var jobs []flattenJob
	for _, pm := range placemarks {
		for _, polygon := range pm.Polygons {
			jobs = append(jobs, flattenJob{
				id:        fmt.Sprintf("%s:%d", docID, len(jobs)),
				placemark: pm.Name,
				polygon:   polygon,
			})
		}
	}

	for i := range jobs {
		f.flatten(ctx, jobs[i])
	}

	result := FlattenResult{}
	for range jobs {
		select {
		case packet := <-f.dataCh:
			result.Packets = append(result.Packets, packet)
		case fail := <-f.failCh:
			result.Fails = append(result.Fails, fail)
		}
	}

	return result
}

func (f *Flattener) flatten(ctx context.Context, job flattenJob) {
	f.p.Add(func() {
		// Check if context has already been cancelled or timed out
		// before executing long running task.
		if ctx.Err() != nil {
			f.fail(job, ctx.Err())
			return
		}

		packet, err := Flatten(job.id, job.placemark, job.polygon)
		if err != nil {
			f.fail(job, err)
			return
		}

		f.finish(packet)
	})
}
