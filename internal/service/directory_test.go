package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"polititrack/internal/domain"
	"polititrack/internal/service/mocks"
	"polititrack/testdata/utils"
)

type DirectoryServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	politicians *mocks.MockPoliticianStore
	profiles    *mocks.MockProfileStore
	txManager   *mocks.MockTransactionManager

	service *DirectoryService
	logger  *slog.Logger
}

func (s *DirectoryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.politicians = mocks.NewMockPoliticianStore(s.ctrl)
	s.profiles = mocks.NewMockProfileStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewDirectoryService(s.politicians, s.profiles, s.txManager, s.logger)
}

func (s *DirectoryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDirectoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryServiceTestSuite))
}

func (s *DirectoryServiceTestSuite) TestSearch_FallsBackToNA() {
	ctx := context.Background()

	rows := []domain.SummaryRow{
		{ID: 1, FirstName: "Jane", LastName: "Doe"},
		{
			ID:           2,
			FirstName:    "John",
			LastName:     "Smith",
			CurrentParty: utils.Ptr("Independent"),
			CurrentTitle: utils.Ptr("Senator"),
			Jurisdiction: utils.Ptr("U.S. Senate"),
		},
	}

	s.politicians.EXPECT().Search(ctx, "doe").Return(rows, nil)

	results, err := s.service.Search(ctx, "doe")

	s.NoError(err)
	s.Len(results, 2)
	s.Equal("Jane Doe", results[0].FullName)
	s.Equal("N/A", results[0].CurrentParty)
	s.Equal("N/A", results[0].CurrentPositionTitle)
	s.Equal("N/A", results[0].Jurisdiction)
	s.Equal("Independent", results[1].CurrentParty)
	s.Equal("Senator", results[1].CurrentPositionTitle)
	s.Equal("U.S. Senate", results[1].Jurisdiction)
}

func (s *DirectoryServiceTestSuite) TestSearch_StoreError() {
	ctx := context.Background()

	s.politicians.EXPECT().Search(ctx, "doe").Return(nil, errors.New("boom"))

	results, err := s.service.Search(ctx, "doe")

	s.Error(err)
	s.Nil(results)
}

func (s *DirectoryServiceTestSuite) TestList_PaginationMetadata() {
	ctx := context.Background()

	filter := domain.ListFilter{Page: 1, Size: 2, SortBy: domain.SortLastNameAsc}
	rows := []domain.SummaryRow{
		{ID: 1, FirstName: "Ann", LastName: "Adams"},
		{ID: 2, FirstName: "Bob", LastName: "Brown"},
	}

	s.politicians.EXPECT().List(ctx, filter).Return(rows, 5, nil)

	page, err := s.service.List(ctx, filter)

	s.NoError(err)
	s.Equal(5, page.Total)
	s.Equal(1, page.Page)
	s.Equal(2, page.Size)
	s.Equal(3, page.Pages)
	s.Len(page.Results, 2)
}

func (s *DirectoryServiceTestSuite) TestList_BeyondLastPage() {
	ctx := context.Background()

	filter := domain.ListFilter{Page: 9, Size: 2, SortBy: domain.SortLastNameAsc}

	s.politicians.EXPECT().List(ctx, filter).Return(nil, 5, nil)

	page, err := s.service.List(ctx, filter)

	s.NoError(err)
	s.Equal(5, page.Total)
	s.Equal(3, page.Pages)
	s.Empty(page.Results)
}

func (s *DirectoryServiceTestSuite) TestList_ZeroTotal() {
	ctx := context.Background()

	filter := domain.ListFilter{Page: 1, Size: 10, SortBy: domain.SortLastNameAsc}

	s.politicians.EXPECT().List(ctx, filter).Return(nil, 0, nil)

	page, err := s.service.List(ctx, filter)

	s.NoError(err)
	s.Equal(0, page.Total)
	s.Equal(0, page.Pages)
	s.Empty(page.Results)
}

func (s *DirectoryServiceTestSuite) TestList_NormalizesFilter() {
	ctx := context.Background()

	normalized := domain.ListFilter{Page: 1, Size: 20, SortBy: domain.SortLastNameAsc}
	s.politicians.EXPECT().List(ctx, normalized).Return(nil, 0, nil)

	_, err := s.service.List(ctx, domain.ListFilter{Page: 0, Size: 0, SortBy: "bogus"})

	s.NoError(err)
}

func (s *DirectoryServiceTestSuite) TestGetProfile_OrdersRelationsDescending() {
	ctx := context.Background()

	date := func(y int) time.Time { return time.Date(y, 1, 15, 0, 0, 0, 0, time.UTC) }

	graph := &domain.PoliticianGraph{
		Politician: domain.Politician{
			ID:        7,
			FirstName: "Jane",
			LastName:  "Doe",
			CreatedAt: date(2020),
			UpdatedAt: date(2024),
		},
		Positions: []domain.PoliticalPosition{
			{ID: 1, Title: "Council Member", Jurisdiction: "City", StartDate: date(2010)},
			{ID: 2, Title: "Representative", Jurisdiction: "State", StartDate: date(2020), IsCurrent: true},
			{ID: 3, Title: "Mayor", Jurisdiction: "City", StartDate: date(2015)},
		},
		Votes: []domain.VoteDetail{
			{Vote: domain.Vote{ID: 10, VotedAt: date(2021), Position: "yes"}, BillNumber: "HR-1", BillTitle: "First"},
			{Vote: domain.Vote{ID: 11, VotedAt: date(2023), Position: "no"}, BillNumber: "HR-2", BillTitle: "Second"},
		},
		Gifts: []domain.Gift{
			{ID: 20, Description: "Book", ReportDate: date(2019)},
			{ID: 21, Description: "Trip", ReportDate: date(2022)},
		},
	}

	s.profiles.EXPECT().GetGraph(ctx, int64(7)).Return(graph, nil)

	profile, err := s.service.GetProfile(ctx, 7)

	s.NoError(err)
	s.Equal("Jane Doe", profile.FullName)

	s.Require().Len(profile.Positions, 3)
	s.Equal("2020-01-15", profile.Positions[0].StartDate)
	s.Equal("2015-01-15", profile.Positions[1].StartDate)
	s.Equal("2010-01-15", profile.Positions[2].StartDate)

	s.Require().Len(profile.Votes, 2)
	s.Equal("HR-2", profile.Votes[0].BillNumber)
	s.Equal("HR-1", profile.Votes[1].BillNumber)

	s.Require().Len(profile.Gifts, 2)
	s.Equal("Trip", profile.Gifts[0].Description)
	s.Equal("Book", profile.Gifts[1].Description)
}

func (s *DirectoryServiceTestSuite) TestGetProfile_FormatsOptionalDates() {
	ctx := context.Background()

	birth := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	graph := &domain.PoliticianGraph{
		Politician: domain.Politician{
			ID:        3,
			FirstName: "Jane",
			LastName:  "Doe",
			BirthDate: &birth,
			CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		Affiliations: []domain.PartyAffiliation{
			{ID: 1, PartyName: "Green", StartDate: time.Date(2018, 3, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	s.profiles.EXPECT().GetGraph(ctx, int64(3)).Return(graph, nil)

	profile, err := s.service.GetProfile(ctx, 3)

	s.NoError(err)
	s.Require().NotNil(profile.BirthDate)
	s.Equal("1970-01-01", *profile.BirthDate)
	s.Require().Len(profile.PartyAffiliations, 1)
	s.Equal("2018-03-01", profile.PartyAffiliations[0].StartDate)
	s.Nil(profile.PartyAffiliations[0].EndDate)
	s.Nil(profile.Source)
}

func (s *DirectoryServiceTestSuite) TestGetProfile_NotFound() {
	ctx := context.Background()

	s.profiles.EXPECT().GetGraph(ctx, int64(99)).Return(nil, domain.ErrNotFound)

	profile, err := s.service.GetProfile(ctx, 99)

	s.ErrorIs(err, domain.ErrNotFound)
	s.Nil(profile)
}

func (s *DirectoryServiceTestSuite) TestGetProfile_StoreError() {
	ctx := context.Background()

	cause := errors.New("boom")
	s.profiles.EXPECT().GetGraph(ctx, int64(7)).Return(nil, cause)

	profile, err := s.service.GetProfile(ctx, 7)

	s.Nil(profile)
	s.ErrorIs(err, cause)
	s.Contains(err.Error(), "get profile")
}

func (s *DirectoryServiceTestSuite) TestCreate_Success() {
	ctx := context.Background()
	birth := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.politicians.EXPECT().ExistsByIdentity(ctx, "Jane", "Doe", &birth).Return(false, nil)
	s.politicians.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.Politician) error {
			p.ID = 42
			p.CreatedAt = time.Now()
			p.UpdatedAt = p.CreatedAt
			return nil
		},
	)

	p, err := s.service.Create(ctx, CreatePoliticianInput{
		FirstName: "Jane",
		LastName:  "Doe",
		BirthDate: &birth,
	})

	s.NoError(err)
	s.Equal(int64(42), p.ID)
	s.Equal("Jane", p.FirstName)
	s.Equal("Doe", p.LastName)
	s.Equal(birth, *p.BirthDate)
}

func (s *DirectoryServiceTestSuite) TestCreate_Conflict() {
	ctx := context.Background()
	birth := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.politicians.EXPECT().ExistsByIdentity(ctx, "Jane", "Doe", &birth).Return(true, nil)

	p, err := s.service.Create(ctx, CreatePoliticianInput{
		FirstName: "Jane",
		LastName:  "Doe",
		BirthDate: &birth,
	})

	s.ErrorIs(err, domain.ErrConflict)
	s.Nil(p)
}

func (s *DirectoryServiceTestSuite) TestUpdate_EmptyPayload() {
	ctx := context.Background()

	p, err := s.service.Update(ctx, 1, UpdatePoliticianInput{})

	s.ErrorIs(err, domain.ErrEmptyUpdate)
	s.Nil(p)
}

func (s *DirectoryServiceTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()

	s.politicians.EXPECT().GetByID(ctx, int64(5)).Return(nil, domain.ErrNotFound)

	p, err := s.service.Update(ctx, 5, UpdatePoliticianInput{Website: utils.Ptr("https://example.org")})

	s.ErrorIs(err, domain.ErrNotFound)
	s.Nil(p)
}

func (s *DirectoryServiceTestSuite) TestUpdate_AppliesPartialFields() {
	ctx := context.Background()

	existing := &domain.Politician{
		ID:        5,
		FirstName: "Jane",
		LastName:  "Doe",
		Biography: utils.Ptr("old biography"),
	}

	s.politicians.EXPECT().GetByID(ctx, int64(5)).Return(existing, nil)
	s.politicians.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.Politician) error {
			s.Equal("Jane", p.FirstName)
			s.Equal("Doe-Smith", p.LastName)
			s.Equal("new biography", *p.Biography)
			return nil
		},
	)

	p, err := s.service.Update(ctx, 5, UpdatePoliticianInput{
		LastName:  utils.Ptr("Doe-Smith"),
		Biography: utils.Ptr("new biography"),
	})

	s.NoError(err)
	s.Equal("Doe-Smith", p.LastName)
}
