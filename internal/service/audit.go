package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"polititrack/internal/domain"
)

// AuditService runs the fixed data-quality rule set over every
// politician. Rules are independent and additive; a politician appears
// in the report only when at least one rule fires.
type AuditService struct {
	store         AuditStore
	publisher     ReportPublisher
	logger        *slog.Logger
	stalenessDays int
	now           func() time.Time
}

// NewAuditService wires the auditor. publisher may be nil, in which
// case reports are only returned to the caller.
func NewAuditService(store AuditStore, publisher ReportPublisher, logger *slog.Logger, stalenessDays int) *AuditService {
	return &AuditService{
		store:         store,
		publisher:     publisher,
		logger:        logger,
		stalenessDays: stalenessDays,
		now:           time.Now,
	}
}

// Run scans every politician against a single cutoff computed from the
// evaluation instant and returns the politicians with issues, ordered
// by last then first name.
func (s *AuditService) Run(ctx context.Context) ([]domain.PoliticianDataHealth, error) {
	start := s.now()
	cutoff := start.AddDate(0, 0, -s.stalenessDays)

	facts, err := s.store.CollectFacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("audit: %w", err)
	}

	report := make([]domain.PoliticianDataHealth, 0)
	for _, f := range facts {
		issues := evaluate(f, cutoff)
		if len(issues) == 0 {
			continue
		}
		report = append(report, domain.PoliticianDataHealth{
			ID:           f.ID,
			FullName:     f.FirstName + " " + f.LastName,
			Jurisdiction: orNA(f.Jurisdiction),
			Issues:       issues,
		})
	}

	s.logger.Info("audit completed",
		"scanned", len(facts),
		"flagged", len(report),
		"cutoff", cutoff.Format("2006-01-02"),
		"duration", time.Since(start),
	)

	if s.publisher != nil {
		if err := s.publisher.PublishReport(ctx, report); err != nil {
			s.logger.Error("failed to publish data-health report", "error", err)
		}
	}

	return report, nil
}

// evaluate applies the rules in their fixed order. The cutoff is
// shared by the staleness and disclosure-recency rules.
func evaluate(f domain.AuditFacts, cutoff time.Time) []domain.DataIssue {
	var issues []domain.DataIssue

	if f.BirthDate == nil {
		issues = append(issues, domain.DataIssue{Field: "birth_date", Message: "missing birth date"})
	}
	if blank(f.Biography) {
		issues = append(issues, domain.DataIssue{Field: "biography", Message: "missing biography"})
	}
	if blank(f.Website) {
		issues = append(issues, domain.DataIssue{Field: "website", Message: "missing website"})
	}

	if f.PositionCount == 0 {
		issues = append(issues, domain.DataIssue{Field: "positions", Message: "no recorded positions"})
	} else if f.CurrentPositionCount == 0 {
		issues = append(issues, domain.DataIssue{Field: "positions", Message: "no current position"})
	}

	if f.AffiliationCount == 0 {
		issues = append(issues, domain.DataIssue{Field: "party_affiliations", Message: "no recorded party affiliations"})
	} else if f.CurrentAffiliationCount == 0 {
		issues = append(issues, domain.DataIssue{Field: "party_affiliations", Message: "no current party affiliation"})
	}

	if f.UpdatedAt.Before(cutoff) {
		issues = append(issues, domain.DataIssue{
			Field:   "updated_at",
			Message: fmt.Sprintf("record not updated since %s", f.UpdatedAt.Format("2006-01-02")),
		})
	}

	if f.DisclosureCount == 0 {
		issues = append(issues, domain.DataIssue{Field: "financial_disclosures", Message: "no financial disclosures on file"})
	} else if f.LatestDisclosureFiledOn != nil && f.LatestDisclosureFiledOn.Before(cutoff) {
		issues = append(issues, domain.DataIssue{
			Field:   "financial_disclosures",
			Message: fmt.Sprintf("most recent disclosure filed %s", f.LatestDisclosureFiledOn.Format("2006-01-02")),
		})
	}

	if f.InvalidVotePositions > 0 {
		issues = append(issues, domain.DataIssue{
			Field:   "votes.position",
			Message: fmt.Sprintf("%d vote(s) with unrecognized position value", f.InvalidVotePositions),
		})
	}
	if f.InvalidDonorTypes > 0 {
		issues = append(issues, domain.DataIssue{
			Field:   "campaign_donations.donor_type",
			Message: fmt.Sprintf("%d donation(s) with unrecognized donor type", f.InvalidDonorTypes),
		})
	}
	if f.InvalidBillStatuses > 0 {
		issues = append(issues, domain.DataIssue{
			Field:   "bills.status",
			Message: fmt.Sprintf("%d sponsored bill(s) with unrecognized status", f.InvalidBillStatuses),
		})
	}

	return issues
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
