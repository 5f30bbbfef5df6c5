package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/d4nn015/documentos-importar-OpenAlex/internal/domain"
	"github.com/d4nn015/documentos-importar-OpenAlex/internal/service/mocks"
	"github.com/d4nn015/documentos-importar-OpenAlex/internal/source/openalex"
)

type HarvesterTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	catalog   *mocks.MockCatalog
	works     *mocks.MockWorkStore
	publisher *mocks.MockPublisher

	logger *slog.Logger
}

func (s *HarvesterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.catalog = mocks.NewMockCatalog(s.ctrl)
	s.works = mocks.NewMockWorkStore(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *HarvesterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHarvesterTestSuite(t *testing.T) {
	suite.Run(t, new(HarvesterTestSuite))
}

func (s *HarvesterTestSuite) newHarvester(batchSize int) *Harvester {
	upserter := NewUpserter(s.works, s.logger)
	return NewHarvester(s.catalog, s.works, upserter, nil, s.logger, batchSize)
}

func page(total int, ids ...string) *domain.WorksPage {
	works := make([]domain.Work, 0, len(ids))
	for _, id := range ids {
		works = append(works, work(id, "2024-01-01"))
	}
	return &domain.WorksPage{Works: works, Total: total}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 1},
		{24, 1},
		{25, 1},
		{26, 2},
		{75, 3},
	}
	for _, tt := range tests {
		if got := totalPages(tt.count); got != tt.want {
			t.Errorf("totalPages(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func (s *HarvesterTestSuite) TestHarvestTarget_EmptyTarget() {
	ctx := context.Background()
	h := s.newHarvester(2)

	// count 0 means no result pages; only the counting fetch happens.
	s.catalog.EXPECT().WorksByInstitution(ctx, "I1", 1).Return(page(0), nil)

	var counters domain.Counters
	err := h.HarvestTarget(ctx, Target{Kind: TargetInstitution, ID: "I1"}, &counters)

	s.NoError(err)
	s.Equal(domain.Counters{}, counters)
}

func (s *HarvesterTestSuite) TestHarvestTarget_BatchFlushThreshold() {
	ctx := context.Background()
	h := s.newHarvester(2)

	// Page 1 is fetched once for the count and again as the first
	// result page.
	s.catalog.EXPECT().WorksByInstitution(ctx, "I1", 1).
		Return(page(3, "W1", "W2", "W3"), nil).Times(2)

	s.works.EXPECT().FindByExternalID(ctx, "W1").Return(nil, nil)
	s.works.EXPECT().FindByExternalID(ctx, "W2").Return(nil, nil)
	s.works.EXPECT().FindByExternalID(ctx, "W3").Return(nil, nil)

	var batches [][]string
	s.works.EXPECT().InsertBatch(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, records []domain.HarvestedRecord) error {
			ids := make([]string, 0, len(records))
			for _, r := range records {
				s.Equal(0, r.Version)
				ids = append(ids, r.Work.ID)
			}
			batches = append(batches, ids)
			return nil
		},
	).Times(2)

	var counters domain.Counters
	err := h.HarvestTarget(ctx, Target{Kind: TargetInstitution, ID: "I1"}, &counters)

	s.NoError(err)
	s.Equal([][]string{{"W1", "W2"}, {"W3"}}, batches)
	s.Equal(3, counters.Found)
	s.Equal(3, counters.Imported)
	s.Equal(0, counters.Failed)
}

func (s *HarvesterTestSuite) TestHarvestTarget_PartialPageFailure() {
	ctx := context.Background()
	h := s.newHarvester(2)
	target := Target{Kind: TargetInstitution, ID: "I1"}

	stored := func(id string) *domain.HarvestedRecord {
		return &domain.HarvestedRecord{ID: 1, Work: work(id, "2024-01-01"), Version: 0}
	}

	// 75 found -> 3 pages; page 2 fails, pages 1 and 3 still evaluated.
	s.catalog.EXPECT().WorksByInstitution(ctx, "I1", 1).
		Return(page(75, "A"), nil).Times(2)
	s.catalog.EXPECT().WorksByInstitution(ctx, "I1", 2).
		Return(nil, errors.New("connection reset"))
	s.catalog.EXPECT().WorksByInstitution(ctx, "I1", 3).
		Return(page(75, "C"), nil)

	s.works.EXPECT().FindByExternalID(ctx, "A").Return(stored("A"), nil)
	s.works.EXPECT().FindByExternalID(ctx, "C").Return(stored("C"), nil)

	var counters domain.Counters
	err := h.HarvestTarget(ctx, target, &counters)

	s.NoError(err)
	s.Equal(75, counters.Found)
	s.Equal(openalex.PageSize, counters.Failed)
	s.Equal(0, counters.Imported)
	s.Equal(0, counters.Updated)
}

func (s *HarvesterTestSuite) TestHarvestTarget_RateLimitAborts() {
	ctx := context.Background()
	h := s.newHarvester(2)
	target := Target{Kind: TargetAuthor, ID: "0000-0001-2345-6789"}

	s.catalog.EXPECT().WorksByAuthor(ctx, target.ID, 1).Return(page(50), nil)
	s.catalog.EXPECT().WorksByAuthor(ctx, target.ID, 1).Return(nil, openalex.ErrRateLimited)

	var counters domain.Counters
	err := h.HarvestTarget(ctx, target, &counters)

	s.Error(err)
	s.True(errors.Is(err, openalex.ErrRateLimited))
	s.Equal(50, counters.Found)
}

func (s *HarvesterTestSuite) TestHarvestTarget_SecondPassIsIdempotent() {
	ctx := context.Background()
	h := s.newHarvester(10)
	target := Target{Kind: TargetInstitution, ID: "I1"}

	s.catalog.EXPECT().WorksByInstitution(ctx, "I1", 1).
		Return(page(2, "W1", "W2"), nil).Times(4)

	// First pass: both new.
	s.works.EXPECT().FindByExternalID(ctx, "W1").Return(nil, nil)
	s.works.EXPECT().FindByExternalID(ctx, "W2").Return(nil, nil)
	s.works.EXPECT().InsertBatch(ctx, gomock.Any()).Return(nil)

	var first domain.Counters
	s.NoError(h.HarvestTarget(ctx, target, &first))
	s.Equal(2, first.Imported)

	// Second pass: identical records already stored, nothing written.
	s.works.EXPECT().FindByExternalID(ctx, "W1").
		Return(&domain.HarvestedRecord{ID: 1, Work: work("W1", "2024-01-01")}, nil)
	s.works.EXPECT().FindByExternalID(ctx, "W2").
		Return(&domain.HarvestedRecord{ID: 2, Work: work("W2", "2024-01-01")}, nil)

	var second domain.Counters
	s.NoError(h.HarvestTarget(ctx, target, &second))
	s.Equal(2, second.Found)
	s.Equal(0, second.Imported)
	s.Equal(0, second.Updated)
}

func (s *HarvesterTestSuite) TestHarvestTarget_FlushFailureKeepsBatch() {
	ctx := context.Background()
	h := s.newHarvester(2)
	target := Target{Kind: TargetInstitution, ID: "I1"}

	s.catalog.EXPECT().WorksByInstitution(ctx, "I1", 1).
		Return(page(1, "W1"), nil).Times(2)
	s.works.EXPECT().FindByExternalID(ctx, "W1").Return(nil, nil)
	s.works.EXPECT().InsertBatch(ctx, gomock.Any()).Return(errors.New("db down"))

	var first domain.Counters
	s.NoError(h.HarvestTarget(ctx, target, &first))
	s.Equal(0, first.Imported)

	// The record stays pending and goes out with the next target's
	// final flush.
	s.catalog.EXPECT().WorksByInstitution(ctx, "I2", 1).Return(page(0), nil)
	s.works.EXPECT().InsertBatch(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, records []domain.HarvestedRecord) error {
			s.Len(records, 1)
			s.Equal("W1", records[0].Work.ID)
			return nil
		},
	)

	var second domain.Counters
	s.NoError(h.HarvestTarget(ctx, Target{Kind: TargetInstitution, ID: "I2"}, &second))
	s.Equal(1, second.Imported)
}

func (s *HarvesterTestSuite) TestHarvestTarget_PublishesEvents() {
	ctx := context.Background()
	upserter := NewUpserter(s.works, s.logger)
	h := NewHarvester(s.catalog, s.works, upserter, s.publisher, s.logger, 2)
	target := Target{Kind: TargetInstitution, ID: "I1"}

	s.catalog.EXPECT().WorksByInstitution(ctx, "I1", 1).
		Return(page(2, "W1", "W2"), nil).Times(2)

	// W1 is new, W2 is an update of a stored record.
	s.works.EXPECT().FindByExternalID(ctx, "W1").Return(nil, nil)
	s.works.EXPECT().FindByExternalID(ctx, "W2").
		Return(&domain.HarvestedRecord{ID: 9, Work: work("W2", "2023-06-01"), Version: 1}, nil)
	s.works.EXPECT().Update(ctx, int64(9), gomock.Any(), gomock.Any(), 2).Return(nil)
	s.works.EXPECT().InsertBatch(ctx, gomock.Any()).Return(nil)

	s.publisher.EXPECT().Publish(ctx, gomock.Any(), false).DoAndReturn(
		func(_ context.Context, record *domain.HarvestedRecord, _ bool) error {
			s.Equal("W2", record.Work.ID)
			s.Equal(2, record.Version)
			return nil
		},
	)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).DoAndReturn(
		func(_ context.Context, record *domain.HarvestedRecord, _ bool) error {
			s.Equal("W1", record.Work.ID)
			s.Equal(0, record.Version)
			return nil
		},
	)

	var counters domain.Counters
	err := h.HarvestTarget(ctx, target, &counters)

	s.NoError(err)
	s.Equal(1, counters.Imported)
	s.Equal(1, counters.Updated)
}

func (s *HarvesterTestSuite) TestHarvestTarget_UnknownKind() {
	ctx := context.Background()
	h := s.newHarvester(2)

	var counters domain.Counters
	err := h.HarvestTarget(ctx, Target{Kind: "journal", ID: "J1"}, &counters)

	s.Error(err)
	s.Contains(err.Error(), "unknown target kind")
}
