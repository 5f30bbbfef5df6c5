package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/d4nn015/documentos-importar-OpenAlex/internal/domain"
	"github.com/d4nn015/documentos-importar-OpenAlex/internal/service/mocks"
	"github.com/d4nn015/documentos-importar-OpenAlex/internal/source/openalex"
)

type RunnerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	configs  *mocks.MockConfigStore
	outcomes *mocks.MockOutcomeStore
	catalog  *mocks.MockCatalog
	works    *mocks.MockWorkStore
	runner   *Runner
}

func (s *RunnerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.configs = mocks.NewMockConfigStore(s.ctrl)
	s.outcomes = mocks.NewMockOutcomeStore(s.ctrl)
	s.catalog = mocks.NewMockCatalog(s.ctrl)
	s.works = mocks.NewMockWorkStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	upserter := NewUpserter(s.works, logger)
	harvester := NewHarvester(s.catalog, s.works, upserter, nil, logger, 2)
	schedule := NewSchedule(s.configs, s.outcomes, logger)
	s.runner = NewRunner(schedule, harvester, s.catalog, s.outcomes, logger)
}

func (s *RunnerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRunnerTestSuite(t *testing.T) {
	suite.Run(t, new(RunnerTestSuite))
}

func (s *RunnerTestSuite) expectDue(cfgs ...domain.ClientConfig) {
	ctx := gomock.Any()
	s.configs.EXPECT().List(ctx).Return(cfgs, nil)
	s.outcomes.EXPECT().ListOrderedByTime(ctx).Return(nil, nil)
}

func (s *RunnerTestSuite) captureOutcomes(n int) *[]domain.RunOutcome {
	var recorded []domain.RunOutcome
	s.outcomes.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o domain.RunOutcome) error {
			recorded = append(recorded, o)
			return nil
		},
	).Times(n)
	return &recorded
}

func (s *RunnerTestSuite) TestRunAll_SuccessOutcome() {
	ctx := context.Background()

	cfg := domain.ClientConfig{
		ID:       42,
		ClientID: "acme",
		Enabled:  true,
		Affiliations: []domain.Affiliation{
			{AffiliationID: "I123"},
		},
	}
	s.expectDue(cfg)

	s.catalog.EXPECT().WorksByInstitution(ctx, "I123", 1).
		Return(page(1, "W1"), nil).Times(2)
	s.works.EXPECT().FindByExternalID(ctx, "W1").Return(nil, nil)
	s.works.EXPECT().InsertBatch(ctx, gomock.Any()).Return(nil)

	recorded := s.captureOutcomes(1)

	s.NoError(s.runner.RunAll(ctx))

	s.Require().Len(*recorded, 1)
	got := (*recorded)[0]
	s.Equal(int64(42), got.ConfigID)
	s.Equal("acme", got.ClientID)
	s.Equal(domain.StatusSuccess, got.Status)
	s.Equal(1, got.Counters.Found)
	s.Equal(1, got.Counters.Imported)
	s.Empty(got.Message)
	s.False(got.CreatedAt.IsZero())
}

func (s *RunnerTestSuite) TestRunAll_RateLimitedClientDoesNotAbortCycle() {
	ctx := context.Background()

	first := domain.ClientConfig{
		ID:       1,
		ClientID: "greedy",
		Enabled:  true,
		Affiliations: []domain.Affiliation{
			{AffiliationID: "I1"},
		},
	}
	second := domain.ClientConfig{
		ID:       2,
		ClientID: "patient",
		Enabled:  true,
		Affiliations: []domain.Affiliation{
			{AffiliationID: "I2"},
		},
	}
	s.expectDue(first, second)

	s.catalog.EXPECT().WorksByInstitution(ctx, "I1", 1).
		Return(nil, openalex.ErrRateLimited)
	s.catalog.EXPECT().WorksByInstitution(ctx, "I2", 1).Return(page(0), nil)

	recorded := s.captureOutcomes(2)

	s.NoError(s.runner.RunAll(ctx))

	s.Require().Len(*recorded, 2)
	s.Equal(domain.StatusError, (*recorded)[0].Status)
	s.Equal("greedy", (*recorded)[0].ClientID)
	s.Contains((*recorded)[0].Message, openalex.ErrRateLimited.Error())
	s.Equal(domain.StatusSuccess, (*recorded)[1].Status)
	s.Equal("patient", (*recorded)[1].ClientID)
}

func (s *RunnerTestSuite) TestRunAll_ScopusIDResolvedToOrcid() {
	ctx := context.Background()

	cfg := domain.ClientConfig{
		ID:       3,
		ClientID: "acme",
		Enabled:  true,
		Authors: []domain.Author{
			{Identifiers: []domain.Identifier{
				{Kind: domain.IdentifierScopus, Value: "7004212771"},
			}},
		},
	}
	s.expectDue(cfg)

	s.catalog.EXPECT().AuthorByScopusID(ctx, "7004212771").
		Return("https://orcid.org/0000-0001-2345-6789", nil)
	s.catalog.EXPECT().WorksByAuthor(ctx, "https://orcid.org/0000-0001-2345-6789", 1).
		Return(page(0), nil)

	recorded := s.captureOutcomes(1)

	s.NoError(s.runner.RunAll(ctx))
	s.Equal(domain.StatusSuccess, (*recorded)[0].Status)
}

func (s *RunnerTestSuite) TestRunAll_OrcidPreferredOverScopus() {
	ctx := context.Background()

	cfg := domain.ClientConfig{
		ID:       4,
		ClientID: "acme",
		Enabled:  true,
		Authors: []domain.Author{
			{Identifiers: []domain.Identifier{
				{Kind: domain.IdentifierScopus, Value: "7004212771"},
				{Kind: domain.IdentifierORCID, Value: "0000-0002-1111-2222"},
			}},
		},
	}
	s.expectDue(cfg)

	// No Scopus lookup: the configured ORCID is used directly.
	s.catalog.EXPECT().WorksByAuthor(ctx, "0000-0002-1111-2222", 1).
		Return(page(0), nil)

	recorded := s.captureOutcomes(1)

	s.NoError(s.runner.RunAll(ctx))
	s.Equal(domain.StatusSuccess, (*recorded)[0].Status)
}

func (s *RunnerTestSuite) TestRunAll_UnresolvableAuthorSkipped() {
	ctx := context.Background()

	cfg := domain.ClientConfig{
		ID:       5,
		ClientID: "acme",
		Enabled:  true,
		Authors: []domain.Author{
			{Identifiers: []domain.Identifier{
				{Kind: domain.IdentifierScopus, Value: "000000"},
			}},
			{Identifiers: nil},
		},
	}
	s.expectDue(cfg)

	s.catalog.EXPECT().AuthorByScopusID(ctx, "000000").Return("", nil)

	recorded := s.captureOutcomes(1)

	s.NoError(s.runner.RunAll(ctx))

	got := (*recorded)[0]
	s.Equal(domain.StatusSuccess, got.Status)
	s.Equal(domain.Counters{}, got.Counters)
}

func (s *RunnerTestSuite) TestRunAll_OutcomeAppendFailureLoggedOnly() {
	ctx := context.Background()

	cfg := domain.ClientConfig{ID: 6, ClientID: "acme", Enabled: true}
	s.expectDue(cfg)

	s.outcomes.EXPECT().Append(ctx, gomock.Any()).
		Return(context.DeadlineExceeded)

	s.NoError(s.runner.RunAll(ctx))
}
