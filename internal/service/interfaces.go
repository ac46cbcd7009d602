package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"polititrack/internal/domain"
)

type PoliticianStore interface {
	Search(ctx context.Context, query string) ([]domain.SummaryRow, error)
	List(ctx context.Context, filter domain.ListFilter) ([]domain.SummaryRow, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Politician, error)
	ExistsByIdentity(ctx context.Context, firstName, lastName string, birthDate *time.Time) (bool, error)
	Create(ctx context.Context, p *domain.Politician) error
	Update(ctx context.Context, p *domain.Politician) error
}

type ProfileStore interface {
	GetGraph(ctx context.Context, id int64) (*domain.PoliticianGraph, error)
}

type AuditStore interface {
	CollectFacts(ctx context.Context) ([]domain.AuditFacts, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ReportPublisher interface {
	PublishReport(ctx context.Context, report []domain.PoliticianDataHealth) error
	Close() error
}
