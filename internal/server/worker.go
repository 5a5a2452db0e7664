package server

import (
	"context"
	"log"
	"time"

	"github.com/mortac8/czml-writer/internal/scene"
)

// worker prunes expired documents in the background while the server
// runs.
type worker struct {
	documents *scene.Service
	d         time.Duration
	killCh    <-chan struct{}
}

func (w *worker) start() {
	ticker := time.NewTicker(w.d)

	for {
		select {
		case <-ticker.C:
			w.cleanUp(context.Background())
		case <-w.killCh:
			ticker.Stop()
			return
		}
	}
}

func (w *worker) cleanUp(ctx context.Context) {
	deleted, err := w.documents.CleanUp(ctx)
	if err != nil {
		log.Printf("failed to delete expired documents: %v\n", err)
		return
	}

	if deleted > 0 {
		log.Printf("total expired documents deleted: %d\n", deleted)
	}
}
