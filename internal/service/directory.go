package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"polititrack/internal/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// DirectoryService implements the public query surface: search,
// listing, detail assembly, and the two politician write operations.
type DirectoryService struct {
	politicians PoliticianStore
	profiles    ProfileStore
	txManager   TransactionManager
	logger      *slog.Logger
}

func NewDirectoryService(
	politicians PoliticianStore,
	profiles ProfileStore,
	txManager TransactionManager,
	logger *slog.Logger,
) *DirectoryService {
	return &DirectoryService{
		politicians: politicians,
		profiles:    profiles,
		txManager:   txManager,
		logger:      logger,
	}
}

// Search returns summaries of politicians whose name, voted-on bill
// title, or committee name contains the query, ordered by last name.
// The query is assumed to be pre-validated by the caller.
func (s *DirectoryService) Search(ctx context.Context, query string) ([]domain.PoliticianSummary, error) {
	rows, err := s.politicians.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	results := make([]domain.PoliticianSummary, len(rows))
	for i, row := range rows {
		results[i] = summaryFromRow(row)
	}

	s.logger.Debug("search completed", "query", query, "results", len(results))
	return results, nil
}

// List returns one page of politician summaries with pagination
// metadata computed over the filtered set.
func (s *DirectoryService) List(ctx context.Context, filter domain.ListFilter) (*domain.Page, error) {
	filter = normalizeFilter(filter)

	rows, total, err := s.politicians.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}

	results := make([]domain.PoliticianSummary, len(rows))
	for i, row := range rows {
		results[i] = summaryFromRow(row)
	}

	pages := 0
	if total > 0 {
		pages = (total + filter.Size - 1) / filter.Size
	}

	return &domain.Page{
		Total:   total,
		Page:    filter.Page,
		Size:    filter.Size,
		Pages:   pages,
		Results: results,
	}, nil
}

func normalizeFilter(f domain.ListFilter) domain.ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Size < 1 {
		f.Size = defaultPageSize
	}
	if f.Size > maxPageSize {
		f.Size = maxPageSize
	}
	if !f.SortBy.Valid() {
		f.SortBy = domain.SortLastNameAsc
	}
	return f
}

func summaryFromRow(row domain.SummaryRow) domain.PoliticianSummary {
	return domain.PoliticianSummary{
		ID:                   row.ID,
		FullName:             row.FirstName + " " + row.LastName,
		CurrentParty:         orNA(row.CurrentParty),
		CurrentPositionTitle: orNA(row.CurrentTitle),
		Jurisdiction:         orNA(row.Jurisdiction),
	}
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return domain.NotAvailable
	}
	return *s
}

// GetProfile assembles the complete public profile for one politician.
// Every relation list is ordered descending by its own date field
// regardless of storage order.
func (s *DirectoryService) GetProfile(ctx context.Context, id int64) (*domain.PoliticianProfile, error) {
	g, err := s.profiles.GetGraph(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	sort.SliceStable(g.Positions, func(i, j int) bool {
		return g.Positions[i].StartDate.After(g.Positions[j].StartDate)
	})
	sort.SliceStable(g.Affiliations, func(i, j int) bool {
		return g.Affiliations[i].StartDate.After(g.Affiliations[j].StartDate)
	})
	sort.SliceStable(g.Memberships, func(i, j int) bool {
		return g.Memberships[i].StartDate.After(g.Memberships[j].StartDate)
	})
	sort.SliceStable(g.Votes, func(i, j int) bool {
		return g.Votes[i].VotedAt.After(g.Votes[j].VotedAt)
	})
	sort.SliceStable(g.Gifts, func(i, j int) bool {
		return g.Gifts[i].ReportDate.After(g.Gifts[j].ReportDate)
	})
	sort.SliceStable(g.Donations, func(i, j int) bool {
		return g.Donations[i].DonatedOn.After(g.Donations[j].DonatedOn)
	})
	sort.SliceStable(g.Disclosures, func(i, j int) bool {
		return g.Disclosures[i].FiledOn.After(g.Disclosures[j].FiledOn)
	})

	return buildProfile(g), nil
}

func buildProfile(g *domain.PoliticianGraph) *domain.PoliticianProfile {
	p := g.Politician

	profile := &domain.PoliticianProfile{
		ID:         p.ID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		MiddleName: p.MiddleName,
		Suffix:     p.Suffix,
		FullName:   p.FullName(),
		BirthDate:  domain.FormatDate(p.BirthDate),
		Gender:     p.Gender,
		Biography:  p.Biography,
		Website:    p.Website,
		CreatedAt:  domain.FormatTime(p.CreatedAt),
		UpdatedAt:  domain.FormatTime(p.UpdatedAt),

		Positions:            make([]domain.PositionView, 0, len(g.Positions)),
		PartyAffiliations:    make([]domain.AffiliationView, 0, len(g.Affiliations)),
		CommitteeMemberships: make([]domain.MembershipView, 0, len(g.Memberships)),
		Votes:                make([]domain.VoteView, 0, len(g.Votes)),
		Gifts:                make([]domain.GiftView, 0, len(g.Gifts)),
		CampaignDonations:    make([]domain.DonationView, 0, len(g.Donations)),
		FinancialDisclosures: make([]domain.DisclosureView, 0, len(g.Disclosures)),
		SocialMediaAccounts:  make([]domain.SocialAccountView, 0, len(g.SocialAccounts)),
	}

	if g.Source != nil {
		profile.Source = &domain.SourceView{
			Name:        g.Source.Name,
			URL:         g.Source.URL,
			RetrievedAt: domain.FormatTime(g.Source.RetrievedAt),
		}
	}

	for _, pos := range g.Positions {
		start := pos.StartDate
		profile.Positions = append(profile.Positions, domain.PositionView{
			ID:           pos.ID,
			Title:        pos.Title,
			Jurisdiction: pos.Jurisdiction,
			Chamber:      pos.Chamber,
			StartDate:    *domain.FormatDate(&start),
			EndDate:      domain.FormatDate(pos.EndDate),
			IsCurrent:    pos.IsCurrent,
		})
	}

	for _, a := range g.Affiliations {
		start := a.StartDate
		profile.PartyAffiliations = append(profile.PartyAffiliations, domain.AffiliationView{
			ID:        a.ID,
			PartyName: a.PartyName,
			StartDate: *domain.FormatDate(&start),
			EndDate:   domain.FormatDate(a.EndDate),
		})
	}

	for _, m := range g.Memberships {
		start := m.StartDate
		profile.CommitteeMemberships = append(profile.CommitteeMemberships, domain.MembershipView{
			ID:               m.ID,
			CommitteeName:    m.CommitteeName,
			CommitteeChamber: m.CommitteeChamber,
			Role:             m.Role,
			StartDate:        *domain.FormatDate(&start),
			EndDate:          domain.FormatDate(m.EndDate),
		})
	}

	for _, v := range g.Votes {
		profile.Votes = append(profile.Votes, domain.VoteView{
			ID:         v.ID,
			BillNumber: v.BillNumber,
			BillTitle:  v.BillTitle,
			VotedAt:    domain.FormatTime(v.VotedAt),
			Position:   v.Position,
			RollCall:   v.RollCall,
			Chamber:    v.Chamber,
		})
	}

	for _, gift := range g.Gifts {
		report := gift.ReportDate
		profile.Gifts = append(profile.Gifts, domain.GiftView{
			ID:          gift.ID,
			Description: gift.Description,
			Value:       gift.Value,
			ReportDate:  *domain.FormatDate(&report),
			DonorName:   gift.DonorName,
		})
	}

	for _, d := range g.Donations {
		donated := d.DonatedOn
		profile.CampaignDonations = append(profile.CampaignDonations, domain.DonationView{
			ID:        d.ID,
			DonorName: d.DonorName,
			DonorType: d.DonorType,
			Amount:    d.Amount,
			DonatedOn: *domain.FormatDate(&donated),
		})
	}

	for _, d := range g.Disclosures {
		filed := d.FiledOn
		profile.FinancialDisclosures = append(profile.FinancialDisclosures, domain.DisclosureView{
			ID:          d.ID,
			ReportYear:  d.ReportYear,
			FiledOn:     *domain.FormatDate(&filed),
			DocumentURL: d.DocumentURL,
		})
	}

	for _, a := range g.SocialAccounts {
		profile.SocialMediaAccounts = append(profile.SocialMediaAccounts, domain.SocialAccountView{
			ID:       a.ID,
			Platform: a.Platform,
			Handle:   a.Handle,
		})
	}

	return profile
}

// CreatePoliticianInput carries the writable politician fields.
type CreatePoliticianInput struct {
	FirstName  string
	LastName   string
	MiddleName *string
	Suffix     *string
	BirthDate  *time.Time
	Gender     *string
	Biography  *string
	Website    *string
	SourceID   *int64
}

// Create inserts a new politician unless one with the same first name,
// last name, and birth date already exists. The uniqueness check and
// insert run in one transaction.
func (s *DirectoryService) Create(ctx context.Context, in CreatePoliticianInput) (*domain.Politician, error) {
	p := &domain.Politician{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		MiddleName: in.MiddleName,
		Suffix:     in.Suffix,
		BirthDate:  in.BirthDate,
		Gender:     in.Gender,
		Biography:  in.Biography,
		Website:    in.Website,
		SourceID:   in.SourceID,
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		exists, err := s.politicians.ExistsByIdentity(txCtx, in.FirstName, in.LastName, in.BirthDate)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrConflict
		}
		return s.politicians.Create(txCtx, p)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("politician created", "id", p.ID, "name", p.FullName())
	return p, nil
}

// UpdatePoliticianInput carries a partial politician update; nil
// fields are left unchanged.
type UpdatePoliticianInput struct {
	FirstName  *string
	LastName   *string
	MiddleName *string
	Suffix     *string
	BirthDate  *time.Time
	Gender     *string
	Biography  *string
	Website    *string
	SourceID   *int64
}

func (in UpdatePoliticianInput) empty() bool {
	return in.FirstName == nil &&
		in.LastName == nil &&
		in.MiddleName == nil &&
		in.Suffix == nil &&
		in.BirthDate == nil &&
		in.Gender == nil &&
		in.Biography == nil &&
		in.Website == nil &&
		in.SourceID == nil
}

// Update applies a partial update to an existing politician. An empty
// payload is rejected before any storage access.
func (s *DirectoryService) Update(ctx context.Context, id int64, in UpdatePoliticianInput) (*domain.Politician, error) {
	if in.empty() {
		return nil, domain.ErrEmptyUpdate
	}

	p, err := s.politicians.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		p.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		p.LastName = *in.LastName
	}
	if in.MiddleName != nil {
		p.MiddleName = in.MiddleName
	}
	if in.Suffix != nil {
		p.Suffix = in.Suffix
	}
	if in.BirthDate != nil {
		p.BirthDate = in.BirthDate
	}
	if in.Gender != nil {
		p.Gender = in.Gender
	}
	if in.Biography != nil {
		p.Biography = in.Biography
	}
	if in.Website != nil {
		p.Website = in.Website
	}
	if in.SourceID != nil {
		p.SourceID = in.SourceID
	}

	if err := s.politicians.Update(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("politician updated", "id", p.ID)
	return p, nil
}
