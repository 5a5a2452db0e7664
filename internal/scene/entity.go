package scene

import (
	"context"
	"database/sql"
	"time"
)

type Entity struct {
	ID           string
	Name         string
	TotalPackets int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (e *Entity) Select(ctx context.Context, db QueryRower) error {
	query := `
		SELECT id, name, total_packets, created_at, updated_at
		FROM documents
		WHERE id = $1`

	return db.QueryRowContext(ctx, query, e.ID).Scan(
		&e.ID,
		&e.Name,
		&e.TotalPackets,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
}

func (e *Entity) Insert(ctx context.Context, db Execer) (sql.Result, error) {
	query := `
		INSERT INTO documents(id, name, total_packets, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5)`

	return db.ExecContext(ctx, query,
		e.ID,
		e.Name,
		e.TotalPackets,
		e.CreatedAt,
		e.UpdatedAt)
}

func (e *Entity) Delete(ctx context.Context, db Execer) (sql.Result, error) {
	query := "DELETE FROM documents WHERE id = $1"

	return db.ExecContext(ctx, query, e.ID)
}

// PacketEntity is one stored CZML packet. Data holds the packet's JSON
// encoding; the document is reassembled from the rows ordered by seq.
type PacketEntity struct {
	ID         int
	DocumentID string
	Seq        int
	Data       []byte
}

func (p *PacketEntity) Insert(ctx context.Context, db QueryRower) error {
	query := `
		INSERT INTO document_packets(document_id, seq, data)
		VALUES($1, $2, $3)
		RETURNING id`

	return db.QueryRowContext(ctx, query,
		p.DocumentID,
		p.Seq,
		p.Data).Scan(&p.ID)
}

type PacketCollection []PacketEntity

func (c *PacketCollection) Select(ctx context.Context, db Queryer, documentID string) error {
	query := `
		SELECT id, document_id, seq, data
		FROM document_packets
		WHERE document_id = $1
		ORDER BY seq`

	rows, err := db.QueryContext(ctx, query, documentID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p PacketEntity
		if err := rows.Scan(&p.ID, &p.DocumentID, &p.Seq, &p.Data); err != nil {
			return err
		}
		*c = append(*c, p)
	}

	return rows.Err()
}
