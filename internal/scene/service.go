package scene

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mortac8/czml-writer/internal/czml"
	"github.com/mortac8/czml-writer/internal/kml"
	"github.com/mortac8/czml-writer/internal/pool"
)

// Service converts KML documents into stored CZML documents. Every polygon
// boundary is flattened to a single simple ring before it is written.
type Service struct {
	Client    *kml.Client
	Store     *Store
	Workers   *pool.Pool
	Retention time.Duration
}

func New(c *kml.Client, db *sql.DB, p *pool.Pool, retention time.Duration) *Service {
	return &Service{
		Client:    c,
		Store:     NewStore(db),
		Workers:   p,
		Retention: retention,
	}
}

// Save parses data as KML, flattens every placemark polygon, and persists
// the converted document. Individual polygons that fail to flatten are
// reported in the result, not fatal to the conversion.
func (s *Service) Save(ctx context.Context, name string, data []byte) (SaveResult, error) {
	doc, err := kml.Parse(data)
	if err != nil {
		return SaveResult{}, &Error{
			error:      fmt.Errorf("parsing KML: %w", err),
			msg:        "Invalid KML document",
			statusCode: http.StatusBadRequest,
		}
	}

	if name == "" {
		name = doc.Name
	}

	return s.saveParsed(ctx, name, doc)
}

// SaveURL fetches a KML document and converts it with Save.
func (s *Service) SaveURL(ctx context.Context, name string, url string) (SaveResult, error) {
	doc, err := s.Client.Fetch(ctx, url)
	if err != nil {
		var statusErr *kml.StatusCodeError
		if errors.As(err, &statusErr) {
			return SaveResult{}, &Error{
				error:      err,
				msg:        fmt.Sprintf("Source returned status %d", statusErr.StatusCode),
				statusCode: http.StatusBadGateway,
			}
		}
		return SaveResult{}, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if name == "" {
		name = doc.Name
	}

	return s.saveParsed(ctx, name, doc)
}

func (s *Service) saveParsed(ctx context.Context, name string, doc *kml.Document) (SaveResult, error) {
	if len(doc.Placemarks) == 0 {
		return SaveResult{}, &Error{
			error:      fmt.Errorf("document %q has no polygon placemarks", name),
			msg:        "Document contains no polygon geometry",
			statusCode: http.StatusUnprocessableEntity,
		}
	}

	id := uuid.NewString()

	polygonCount := 0
	for _, pm := range doc.Placemarks {
		polygonCount += len(pm.Polygons)
	}

	result := NewFlattener(s.Workers, polygonCount).FlattenEach(ctx, id, doc.Placemarks)

	entity := Entity{
		ID:           id,
		Name:         name,
		TotalPackets: len(result.Packets),
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.Store.InsertDocumentTx(ctx, entity, result.Packets); err != nil {
		return SaveResult{}, fmt.Errorf("failed to store document %q: %w", name, err)
	}

	return SaveResult{
		ID:        id,
		Name:      name,
		Packets:   len(result.Packets),
		Fails:     result.Fails,
		CreatedAt: entity.CreatedAt,
	}, nil
}

// Get reassembles a stored document as CZML.
func (s *Service) Get(ctx context.Context, id string) (Entity, *czml.Document, error) {
	entity, packets, err := s.Store.SelectDocument(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entity{}, nil, &Error{
				error:      fmt.Errorf("document %q not found", id),
				msg:        "Document not found",
				statusCode: http.StatusNotFound,
			}
		}
		return Entity{}, nil, fmt.Errorf("failed to select document %q: %w", id, err)
	}

	doc := czml.NewDocument(entity.Name)
	for _, p := range packets {
		doc.Append(p)
	}

	return entity, doc, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Store.SelectEntity(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &Error{
				error:      fmt.Errorf("document %q not found", id),
				msg:        "Document not found",
				statusCode: http.StatusNotFound,
			}
		}
		return fmt.Errorf("failed to select document %q: %w", id, err)
	}

	if err := s.Store.DeleteDocumentTx(ctx, id); err != nil {
		return fmt.Errorf("failed to delete document %q: %w", id, err)
	}

	return nil
}

// CleanUp removes documents older than the retention window. A zero
// retention disables pruning.
func (s *Service) CleanUp(ctx context.Context) (int64, error) {
	if s.Retention == 0 {
		return 0, nil
	}

	cutoff := time.Now().UTC().Add(-s.Retention)
	return s.Store.DeleteCreatedBefore(ctx, cutoff)
}
