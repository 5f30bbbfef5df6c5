package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/d4nn015/documentos-importar-OpenAlex/internal/domain"
)

// Result classifies one incoming work against the store.
type Result int

const (
	// ResultNew means no stored record exists; the caller inserts.
	ResultNew Result = iota
	// ResultUnchanged means an identical record is already stored.
	ResultUnchanged
	// ResultUpdated means the stored record was replaced with a bumped version.
	ResultUpdated
)

// Upserter decides whether an incoming work is new, unchanged, or an
// update of a stored record, performing the versioned update itself.
// It never inserts; insertion of new works is the caller's job.
type Upserter struct {
	works  WorkStore
	logger *slog.Logger
}

func NewUpserter(works WorkStore, logger *slog.Logger) *Upserter {
	return &Upserter{works: works, logger: logger}
}

// Process looks up the incoming work by external id and applies the
// dedup protocol: a stored record with a different updated_date gets a
// full payload replace with version+1, an identical one is left alone.
// At most one write happens per call. The updated record is returned
// for ResultUpdated, nil otherwise.
func (u *Upserter) Process(ctx context.Context, work domain.Work) (Result, *domain.HarvestedRecord, error) {
	stored, err := u.works.FindByExternalID(ctx, work.ID)
	if err != nil {
		return ResultNew, nil, fmt.Errorf("lookup work %s: %w", work.ID, err)
	}
	if stored == nil {
		return ResultNew, nil, nil
	}

	// A missing updated_date on either side gives nothing to compare;
	// the stored record is treated as identical.
	if stored.Work.UpdatedDate == "" || work.UpdatedDate == "" || stored.Work.UpdatedDate == work.UpdatedDate {
		u.logger.Debug("identical work already stored", "work_id", work.ID)
		return ResultUnchanged, nil, nil
	}

	now := time.Now()
	version := stored.Version + 1
	if err := u.works.Update(ctx, stored.ID, work, now, version); err != nil {
		return ResultUnchanged, nil, fmt.Errorf("update work %s: %w", work.ID, err)
	}

	u.logger.Debug("work updated", "work_id", work.ID, "version", version)

	return ResultUpdated, &domain.HarvestedRecord{
		ID:         stored.ID,
		Work:       work,
		CreatedAt:  stored.CreatedAt,
		ModifiedAt: now,
		Version:    version,
	}, nil
}
