package scene

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mortac8/czml-writer/internal/czml"
)

type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) tx(ctx context.Context, txFunc func(*sql.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}

	if err := txFunc(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("err: %w, rbErr: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

func (s *Store) SelectEntity(ctx context.Context, id string) (Entity, error) {
	e := Entity{ID: id}
	return e, e.Select(ctx, s.DB)
}

// InsertDocumentTx writes the document row and every packet row in one
// transaction. A document is never stored partially converted.
func (s *Store) InsertDocumentTx(ctx context.Context, e Entity, packets []czml.Packet) error {
	return s.tx(ctx, func(tx *sql.Tx) error {
		if _, err := e.Insert(ctx, tx); err != nil {
			return fmt.Errorf("inserting document (id=%s): %w", e.ID, err)
		}

		for i, packet := range packets {
			data, err := json.Marshal(packet)
			if err != nil {
				return fmt.Errorf("encoding packet (id=%s): %w", packet.ID, err)
			}

			pe := PacketEntity{
				DocumentID: e.ID,
				Seq:        i,
				Data:       data,
			}
			if err := pe.Insert(ctx, tx); err != nil {
				return fmt.Errorf("inserting packet (id=%s): %w", packet.ID, err)
			}
		}

		return nil
	})
}

// SelectDocument reads the document row and its packets, decoding each
// stored packet back into its CZML form.
func (s *Store) SelectDocument(ctx context.Context, id string) (Entity, []czml.Packet, error) {
	e, err := s.SelectEntity(ctx, id)
	if err != nil {
		return Entity{}, nil, err
	}

	var collection PacketCollection
	if err := collection.Select(ctx, s.DB, id); err != nil {
		return Entity{}, nil, fmt.Errorf("selecting packets (document=%s): %w", id, err)
	}

	packets := make([]czml.Packet, 0, len(collection))
	for _, pe := range collection {
		var packet czml.Packet
		if err := json.Unmarshal(pe.Data, &packet); err != nil {
			return Entity{}, nil, fmt.Errorf("decoding packet (row=%d): %w", pe.ID, err)
		}
		packets = append(packets, packet)
	}

	return e, packets, nil
}

func (s *Store) DeleteDocumentTx(ctx context.Context, id string) error {
	return s.tx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM document_packets WHERE document_id = $1", id); err != nil {
			return err
		}

		e := Entity{ID: id}
		if _, err := e.Delete(ctx, tx); err != nil {
			return err
		}

		return nil
	})
}

// DeleteCreatedBefore removes every document converted before cutoff,
// packets included. Returns the number of documents removed.
func (s *Store) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	err := s.tx(ctx, func(tx *sql.Tx) error {
		query := `
			DELETE FROM document_packets
			WHERE document_id IN (SELECT id FROM documents WHERE created_at < $1)`
		if _, err := tx.ExecContext(ctx, query, cutoff); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, "DELETE FROM documents WHERE created_at < $1", cutoff)
		if err != nil {
			return err
		}

		deleted, err = res.RowsAffected()
		return err
	})

	return deleted, err
}
