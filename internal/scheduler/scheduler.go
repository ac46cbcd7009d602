package scheduler

import (
	"context"
	"log/slog"
	"time"

	"polititrack/internal/domain"
)

// Auditor defines the interface for data-quality audit runs.
type Auditor interface {
	Run(ctx context.Context) ([]domain.PoliticianDataHealth, error)
}

// Scheduler reruns the data-quality audit at a fixed interval so the
// published report stays fresh without anyone polling the endpoint.
type Scheduler struct {
	auditor  Auditor
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(auditor Auditor, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		auditor:  auditor,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("audit scheduler started", "interval", s.interval)

	s.runAudit(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("audit scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runAudit(ctx)
		}
	}
}

func (s *Scheduler) runAudit(ctx context.Context) {
	auditCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	if _, err := s.auditor.Run(auditCtx); err != nil {
		s.logger.Error("scheduled audit failed", "error", err)
	}
}
