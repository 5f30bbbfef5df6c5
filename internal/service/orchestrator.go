package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/d4nn015/documentos-importar-OpenAlex/internal/domain"
	"github.com/d4nn015/documentos-importar-OpenAlex/internal/source/openalex"
)

// Runner drives one full harvest cycle: it asks the Schedule for the
// due clients and processes them strictly in order, recording exactly
// one outcome per client run. A failing client never aborts the cycle.
type Runner struct {
	schedule  *Schedule
	harvester *Harvester
	catalog   Catalog
	outcomes  OutcomeStore
	logger    *slog.Logger
}

func NewRunner(schedule *Schedule, harvester *Harvester, catalog Catalog, outcomes OutcomeStore, logger *slog.Logger) *Runner {
	return &Runner{
		schedule:  schedule,
		harvester: harvester,
		catalog:   catalog,
		outcomes:  outcomes,
		logger:    logger,
	}
}

// RunAll processes every due client once and appends its outcome.
func (r *Runner) RunAll(ctx context.Context) error {
	due, err := r.schedule.DueClients(ctx)
	if err != nil {
		return fmt.Errorf("select due clients: %w", err)
	}

	r.logger.Info("clients due for harvest", "count", len(due))

	for _, cfg := range due {
		outcome := r.runClient(ctx, cfg)
		if err := r.outcomes.Append(ctx, outcome); err != nil {
			r.logger.Error("record outcome failed", "client_id", cfg.ClientID, "error", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	return nil
}

func (r *Runner) runClient(ctx context.Context, cfg domain.ClientConfig) domain.RunOutcome {
	logger := r.logger.With("client_id", cfg.ClientID)
	logger.Info("starting client run",
		"affiliations", len(cfg.Affiliations),
		"authors", len(cfg.Authors),
	)

	start := time.Now()
	var counters domain.Counters

	err := r.harvestClient(ctx, cfg, &counters)

	outcome := domain.RunOutcome{
		ConfigID:  cfg.ID,
		ClientID:  cfg.ClientID,
		Counters:  counters,
		Elapsed:   time.Since(start),
		Status:    domain.StatusSuccess,
		CreatedAt: time.Now(),
	}

	if err != nil {
		outcome.Status = domain.StatusError
		outcome.Message = err.Error()
		if errors.Is(err, openalex.ErrRateLimited) {
			logger.Error("client run aborted by rate limit", "error", err)
		} else {
			logger.Error("client run failed", "error", err)
		}
		return outcome
	}

	logger.Info("client run completed",
		"found", counters.Found,
		"imported", counters.Imported,
		"updated", counters.Updated,
		"failed", counters.Failed,
		"elapsed", outcome.Elapsed,
	)
	return outcome
}

func (r *Runner) harvestClient(ctx context.Context, cfg domain.ClientConfig, counters *domain.Counters) error {
	for _, aff := range cfg.Affiliations {
		target := Target{Kind: TargetInstitution, ID: aff.AffiliationID}
		if err := r.harvester.HarvestTarget(ctx, target, counters); err != nil {
			return fmt.Errorf("harvest institution %s: %w", aff.AffiliationID, err)
		}
	}

	for _, author := range cfg.Authors {
		orcid, err := r.resolveAuthor(ctx, author)
		if err != nil {
			return err
		}
		if orcid == "" {
			continue
		}
		target := Target{Kind: TargetAuthor, ID: orcid}
		if err := r.harvester.HarvestTarget(ctx, target, counters); err != nil {
			return fmt.Errorf("harvest author %s: %w", orcid, err)
		}
	}

	return nil
}

// resolveAuthor picks the identifier to search works with. A directly
// configured ORCID wins; a Scopus id goes through the catalog lookup.
// Authors without a resolvable identifier are skipped without error.
func (r *Runner) resolveAuthor(ctx context.Context, author domain.Author) (string, error) {
	value, needsLookup := author.OrcidOf()
	if value == "" {
		r.logger.Debug("author has no usable identifier, skipping")
		return "", nil
	}
	if !needsLookup {
		return value, nil
	}

	orcid, err := r.catalog.AuthorByScopusID(ctx, value)
	if err != nil {
		return "", fmt.Errorf("resolve scopus id %s: %w", value, err)
	}
	if orcid == "" {
		r.logger.Debug("no orcid resolved for scopus id, skipping author", "scopus_id", value)
	}
	return orcid, nil
}
