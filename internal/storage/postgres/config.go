package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/d4nn015/documentos-importar-OpenAlex/internal/domain"
)

// ConfigStore reads client configurations from the configuraciones
// table. Configurations are managed externally; the pipeline never
// writes them.
type ConfigStore struct {
	db *sqlx.DB
}

func NewConfigStore(db *sqlx.DB) *ConfigStore {
	return &ConfigStore{db: db}
}

type configRow struct {
	ID           int64  `db:"id"`
	ClienteID    string `db:"cliente_id"`
	Enabled      bool   `db:"enabled"`
	Periodicidad int    `db:"periodicidad"`
	Affiliations []byte `db:"affiliations"`
	Autores      []byte `db:"autores"`
}

// List returns all client configurations in their natural order.
func (s *ConfigStore) List(ctx context.Context) ([]domain.ClientConfig, error) {
	query := `
		SELECT id, cliente_id, enabled, periodicidad, affiliations, autores
		FROM configuraciones
		ORDER BY id ASC`

	var rows []configRow
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list client configs: %w", err)
	}

	configs := make([]domain.ClientConfig, 0, len(rows))
	for _, r := range rows {
		cfg := domain.ClientConfig{
			ID:              r.ID,
			ClientID:        r.ClienteID,
			Enabled:         r.Enabled,
			PeriodicityDays: r.Periodicidad,
		}

		if len(r.Affiliations) > 0 {
			if err := json.Unmarshal(r.Affiliations, &cfg.Affiliations); err != nil {
				return nil, fmt.Errorf("decode affiliations for client %s: %w", r.ClienteID, err)
			}
		}
		if len(r.Autores) > 0 {
			if err := json.Unmarshal(r.Autores, &cfg.Authors); err != nil {
				return nil, fmt.Errorf("decode autores for client %s: %w", r.ClienteID, err)
			}
		}

		configs = append(configs, cfg)
	}
	return configs, nil
}
