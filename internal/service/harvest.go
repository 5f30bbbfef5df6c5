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

// TargetKind says what a harvest target identifies.
type TargetKind string

const (
	TargetInstitution TargetKind = "institution"
	TargetAuthor      TargetKind = "author"
)

// Target is one institution (affiliation id) or author (ORCID) to
// harvest works for.
type Target struct {
	Kind TargetKind
	ID   string
}

// Harvester drives pagination for one target, routes every work
// through the Upserter and batches new records into the work store.
// The pending batch survives a failed flush; it is cleared only after
// a confirmed insert.
type Harvester struct {
	catalog   Catalog
	works     WorkStore
	upserter  *Upserter
	publisher Publisher
	logger    *slog.Logger
	batchSize int
	pending   []domain.HarvestedRecord
}

func NewHarvester(catalog Catalog, works WorkStore, upserter *Upserter, publisher Publisher, logger *slog.Logger, batchSize int) *Harvester {
	if batchSize <= 0 {
		batchSize = 2
	}
	return &Harvester{
		catalog:   catalog,
		works:     works,
		upserter:  upserter,
		publisher: publisher,
		logger:    logger,
		batchSize: batchSize,
	}
}

// HarvestTarget fetches every result page for the target. A single
// page failure adds one page worth of works to the failed counter and
// moves on; a rate-limit answer aborts the target and propagates so
// the whole client run can be cancelled.
func (h *Harvester) HarvestTarget(ctx context.Context, target Target, counters *domain.Counters) error {
	logger := h.logger.With("target_kind", string(target.Kind), "target_id", target.ID)

	first, err := h.fetchPage(ctx, target, 1)
	if err != nil {
		return fmt.Errorf("fetch total count: %w", err)
	}
	counters.Found += first.Total

	pages := totalPages(first.Total)
	logger.Debug("target counted", "found", first.Total, "pages", pages)

	processed := 0
	for page := 1; page <= pages; page++ {
		result, err := h.fetchPage(ctx, target, page)
		if err != nil {
			if errors.Is(err, openalex.ErrRateLimited) || ctx.Err() != nil {
				return err
			}
			logger.Error("page fetch failed", "page", page, "error", err)
			counters.Failed += openalex.PageSize
			continue
		}

		for i := range result.Works {
			processed++
			if err := h.processWork(ctx, result.Works[i], counters); err != nil {
				return err
			}
		}
	}

	h.flush(ctx, counters, logger)

	logger.Info("target harvested", "processed", processed, "found", first.Total)
	return nil
}

func (h *Harvester) processWork(ctx context.Context, work domain.Work, counters *domain.Counters) error {
	result, updated, err := h.upserter.Process(ctx, work)
	if err != nil {
		return fmt.Errorf("process work %s: %w", work.ID, err)
	}

	switch result {
	case ResultUpdated:
		counters.Updated++
		h.publish(ctx, updated, false)
	case ResultNew:
		now := time.Now()
		h.pending = append(h.pending, domain.HarvestedRecord{
			Work:       work,
			CreatedAt:  now,
			ModifiedAt: now,
			Version:    0,
		})
		if len(h.pending) >= h.batchSize {
			h.flush(ctx, counters, h.logger)
		}
	}
	return nil
}

// flush inserts the pending batch. The imported counter grows and the
// batch is cleared only after the store confirms the write; on failure
// the batch stays pending for the next flush attempt.
func (h *Harvester) flush(ctx context.Context, counters *domain.Counters, logger *slog.Logger) {
	if len(h.pending) == 0 {
		return
	}

	if err := h.works.InsertBatch(ctx, h.pending); err != nil {
		logger.Error("batch insert failed, keeping batch", "size", len(h.pending), "error", err)
		return
	}

	counters.Imported += len(h.pending)
	for i := range h.pending {
		h.publish(ctx, &h.pending[i], true)
	}
	h.pending = h.pending[:0]
}

func (h *Harvester) publish(ctx context.Context, record *domain.HarvestedRecord, isNew bool) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.Publish(ctx, record, isNew); err != nil {
		h.logger.Error("publish work event failed", "work_id", record.Work.ID, "error", err)
	}
}

func (h *Harvester) fetchPage(ctx context.Context, target Target, page int) (*domain.WorksPage, error) {
	switch target.Kind {
	case TargetInstitution:
		return h.catalog.WorksByInstitution(ctx, target.ID, page)
	case TargetAuthor:
		return h.catalog.WorksByAuthor(ctx, target.ID, page)
	default:
		return nil, fmt.Errorf("unknown target kind %q", target.Kind)
	}
}

func totalPages(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + openalex.PageSize - 1) / openalex.PageSize
}
