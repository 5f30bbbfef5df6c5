package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/d4nn015/documentos-importar-OpenAlex/internal/domain"
)

// OutcomeStore persists the append-only per-run outcome log in the
// descargas table.
type OutcomeStore struct {
	db *sqlx.DB
}

func NewOutcomeStore(db *sqlx.DB) *OutcomeStore {
	return &OutcomeStore{db: db}
}

type outcomeRow struct {
	ID                     int64     `db:"id"`
	ConfiguracionID        int64     `db:"configuracion_id"`
	ClienteID              string    `db:"cliente_id"`
	DocumentosEncontrados  int       `db:"documentos_encontrados"`
	DocumentosImportados   int       `db:"documentos_importados"`
	DocumentosActualizados int       `db:"documentos_actualizados"`
	DocumentosErroneos     int       `db:"documentos_erroneos"`
	TiempoMS               int64     `db:"tiempo"`
	Estado                 string    `db:"estado"`
	ResultMessage          string    `db:"result_message"`
	FechaCrea              time.Time `db:"fecha_crea"`
}

// Append records one run outcome. Outcomes are never updated or deleted.
func (s *OutcomeStore) Append(ctx context.Context, outcome domain.RunOutcome) error {
	query := `
		INSERT INTO descargas (
			configuracion_id, cliente_id,
			documentos_encontrados, documentos_importados,
			documentos_actualizados, documentos_erroneos,
			tiempo, estado, result_message, fecha_crea
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := s.db.ExecContext(ctx, query,
		outcome.ConfigID,
		outcome.ClientID,
		outcome.Counters.Found,
		outcome.Counters.Imported,
		outcome.Counters.Updated,
		outcome.Counters.Failed,
		outcome.Elapsed.Milliseconds(),
		outcome.Status,
		outcome.Message,
		outcome.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append outcome for client %s: %w", outcome.ClientID, err)
	}
	return nil
}

// ListOrderedByTime returns all outcomes in ascending creation order.
func (s *OutcomeStore) ListOrderedByTime(ctx context.Context) ([]domain.RunOutcome, error) {
	query := `
		SELECT id, configuracion_id, cliente_id,
			documentos_encontrados, documentos_importados,
			documentos_actualizados, documentos_erroneos,
			tiempo, estado, result_message, fecha_crea
		FROM descargas
		ORDER BY fecha_crea ASC, id ASC`

	var rows []outcomeRow
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list outcomes: %w", err)
	}

	outcomes := make([]domain.RunOutcome, 0, len(rows))
	for _, r := range rows {
		outcomes = append(outcomes, domain.RunOutcome{
			ID:       r.ID,
			ConfigID: r.ConfiguracionID,
			ClientID: r.ClienteID,
			Counters: domain.Counters{
				Found:    r.DocumentosEncontrados,
				Imported: r.DocumentosImportados,
				Updated:  r.DocumentosActualizados,
				Failed:   r.DocumentosErroneos,
			},
			Elapsed:   time.Duration(r.TiempoMS) * time.Millisecond,
			Status:    r.Estado,
			Message:   r.ResultMessage,
			CreatedAt: r.FechaCrea,
		})
	}
	return outcomes, nil
}
