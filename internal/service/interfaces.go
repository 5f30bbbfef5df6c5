package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/d4nn015/documentos-importar-OpenAlex/internal/domain"
)

type WorkStore interface {
	FindByExternalID(ctx context.Context, externalID string) (*domain.HarvestedRecord, error)
	InsertBatch(ctx context.Context, records []domain.HarvestedRecord) error
	Update(ctx context.Context, storedID int64, work domain.Work, modifiedAt time.Time, version int) error
}

type OutcomeStore interface {
	Append(ctx context.Context, outcome domain.RunOutcome) error
	ListOrderedByTime(ctx context.Context) ([]domain.RunOutcome, error)
}

type ConfigStore interface {
	List(ctx context.Context) ([]domain.ClientConfig, error)
}

type Catalog interface {
	WorksByInstitution(ctx context.Context, institutionID string, page int) (*domain.WorksPage, error)
	WorksByAuthor(ctx context.Context, orcid string, page int) (*domain.WorksPage, error)
	AuthorByScopusID(ctx context.Context, scopusID string) (string, error)
}

type Publisher interface {
	Publish(ctx context.Context, record *domain.HarvestedRecord, isNew bool) error
	Close() error
}
