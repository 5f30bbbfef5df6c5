package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/d4nn015/documentos-importar-OpenAlex/internal/domain"
)

// Schedule selects which configured clients are due for a harvest run,
// based on the persisted outcome log and each client's periodicity.
type Schedule struct {
	configs  ConfigStore
	outcomes OutcomeStore
	logger   *slog.Logger
}

func NewSchedule(configs ConfigStore, outcomes OutcomeStore, logger *slog.Logger) *Schedule {
	return &Schedule{configs: configs, outcomes: outcomes, logger: logger}
}

// DueClients returns the enabled clients due this cycle, ordered:
// clients with no recorded outcome first in configuration order, then
// previously-run clients in the order of their earliest recorded run,
// kept only when their most recent outcome is older than their
// periodicity in days.
func (s *Schedule) DueClients(ctx context.Context) ([]domain.ClientConfig, error) {
	configs, err := s.configs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list client configs: %w", err)
	}

	outcomes, err := s.outcomes.ListOrderedByTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("list run outcomes: %w", err)
	}

	var firstSeen []string
	latest := make(map[string]time.Time)
	for _, o := range outcomes {
		if _, seen := latest[o.ClientID]; !seen {
			firstSeen = append(firstSeen, o.ClientID)
		}
		if o.CreatedAt.After(latest[o.ClientID]) {
			latest[o.ClientID] = o.CreatedAt
		}
	}

	byID := make(map[string]domain.ClientConfig, len(configs))
	var due []domain.ClientConfig

	for _, cfg := range configs {
		byID[cfg.ClientID] = cfg
		if _, ran := latest[cfg.ClientID]; ran {
			continue
		}
		if cfg.Enabled {
			due = append(due, cfg)
		}
	}

	for _, clientID := range firstSeen {
		cfg, ok := byID[clientID]
		if !ok {
			// Outcome for a configuration that no longer exists.
			continue
		}
		if !cfg.Enabled {
			s.logger.Debug("client disabled, skipping", "client_id", clientID)
			continue
		}
		periodicity := time.Duration(cfg.PeriodicityDays) * 24 * time.Hour
		if time.Since(latest[clientID]) > periodicity {
			due = append(due, cfg)
		}
	}

	return due, nil
}
