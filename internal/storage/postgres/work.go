package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/d4nn015/documentos-importar-OpenAlex/internal/domain"
)

// WorkStore persists harvested work records in the documentos table.
// The external work id is kept unique by an index on documento->>'id',
// so lookups return at most one record.
type WorkStore struct {
	db *sqlx.DB
}

func NewWorkStore(db *sqlx.DB) *WorkStore {
	return &WorkStore{db: db}
}

type workRow struct {
	ID        int64     `db:"id"`
	Documento []byte    `db:"documento"`
	FechaCrea time.Time `db:"fecha_crea"`
	FechaModi time.Time `db:"fecha_modi"`
	Version   int       `db:"version"`
}

// FindByExternalID returns the stored record for an external work id,
// or nil when none exists.
func (s *WorkStore) FindByExternalID(ctx context.Context, externalID string) (*domain.HarvestedRecord, error) {
	query := `
		SELECT id, documento, fecha_crea, fecha_modi, version
		FROM documentos
		WHERE documento->>'id' = $1
		LIMIT 1`

	var row workRow
	err := s.db.GetContext(ctx, &row, query, externalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find work %s: %w", externalID, err)
	}

	record, err := row.toRecord()
	if err != nil {
		return nil, fmt.Errorf("find work %s: %w", externalID, err)
	}
	return record, nil
}

// InsertBatch appends a batch of new records in one statement. On error
// nothing is cleared on the caller's side; the batch stays pending.
func (s *WorkStore) InsertBatch(ctx context.Context, records []domain.HarvestedRecord) error {
	if len(records) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO documentos (documento, fecha_crea, fecha_modi, version) VALUES ")
	args := make([]interface{}, 0, len(records)*4)

	for i, r := range records {
		payload, err := json.Marshal(r.Work.Fields)
		if err != nil {
			return fmt.Errorf("marshal work %s: %w", r.Work.ID, err)
		}

		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 4
		sb.WriteString("($")
		sb.WriteString(strconv.Itoa(base + 1))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(base + 2))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(base + 3))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(base + 4))
		sb.WriteString(")")
		args = append(args, payload, r.CreatedAt, r.ModifiedAt, r.Version)
	}

	if _, err := s.db.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("insert batch of %d: %w", len(records), err)
	}
	return nil
}

// Update replaces the payload of one stored record and advances its
// modification time and version.
func (s *WorkStore) Update(ctx context.Context, storedID int64, work domain.Work, modifiedAt time.Time, version int) error {
	payload, err := json.Marshal(work.Fields)
	if err != nil {
		return fmt.Errorf("marshal work %s: %w", work.ID, err)
	}

	query := `
		UPDATE documentos
		SET documento = $2, fecha_modi = $3, version = $4
		WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, storedID, payload, modifiedAt, version); err != nil {
		return fmt.Errorf("update work %d: %w", storedID, err)
	}
	return nil
}

func (r workRow) toRecord() (*domain.HarvestedRecord, error) {
	var fields map[string]any
	if err := json.Unmarshal(r.Documento, &fields); err != nil {
		return nil, fmt.Errorf("decode documento: %w", err)
	}

	id, _ := fields["id"].(string)
	updated, _ := fields["updated_date"].(string)

	return &domain.HarvestedRecord{
		ID:         r.ID,
		Work:       domain.Work{ID: id, UpdatedDate: updated, Fields: fields},
		CreatedAt:  r.FechaCrea,
		ModifiedAt: r.FechaModi,
		Version:    r.Version,
	}, nil
}
