package domain

import "time"

// NotAvailable is the fallback rendered when a politician has no
// resolvable current party or position.
const NotAvailable = "N/A"

// SummaryRow is the raw shape the storage layer produces for list and
// search queries; nil pointers mean no current row could be resolved.
type SummaryRow struct {
	ID           int64   `db:"id"`
	FirstName    string  `db:"first_name"`
	LastName     string  `db:"last_name"`
	CurrentParty *string `db:"current_party"`
	CurrentTitle *string `db:"current_title"`
	Jurisdiction *string `db:"jurisdiction"`
}

// PoliticianSummary is the public row shape for search and list results.
type PoliticianSummary struct {
	ID                   int64  `json:"id"`
	FullName             string `json:"full_name"`
	CurrentParty         string `json:"current_party"`
	CurrentPositionTitle string `json:"current_position_title"`
	Jurisdiction         string `json:"jurisdiction"`
}

type SortKey string

const (
	SortLastNameAsc   SortKey = "last_name_asc"
	SortLastNameDesc  SortKey = "last_name_desc"
	SortFirstNameAsc  SortKey = "first_name_asc"
	SortFirstNameDesc SortKey = "first_name_desc"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortLastNameAsc, SortLastNameDesc, SortFirstNameAsc, SortFirstNameDesc:
		return true
	}
	return false
}

// ListFilter carries the pagination, sorting, and filter parameters for
// the politician listing. Empty Party/Jurisdiction means no filter.
type ListFilter struct {
	Page         int
	Size         int
	SortBy       SortKey
	Party        string
	Jurisdiction string
}

func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Size
}

// Page is one page of listing results plus pagination metadata.
type Page struct {
	Total   int                 `json:"total"`
	Page    int                 `json:"page"`
	Size    int                 `json:"size"`
	Pages   int                 `json:"pages"`
	Results []PoliticianSummary `json:"results"`
}

// MembershipDetail is a committee membership with its committee resolved.
type MembershipDetail struct {
	CommitteeMembership
	CommitteeName    string  `db:"committee_name"`
	CommitteeChamber *string `db:"committee_chamber"`
}

// VoteDetail is a vote with its bill resolved.
type VoteDetail struct {
	Vote
	BillNumber string `db:"bill_number"`
	BillTitle  string `db:"bill_title"`
}

// PoliticianGraph is the fully loaded relationship graph for one
// politician, as produced by the storage layer in a single logical
// fetch. Slice order is unspecified; presentation ordering is applied
// by the detail assembler.
type PoliticianGraph struct {
	Politician     Politician
	Source         *Source
	Positions      []PoliticalPosition
	Affiliations   []PartyAffiliation
	Memberships    []MembershipDetail
	Votes          []VoteDetail
	Gifts          []Gift
	Donations      []CampaignDonation
	Disclosures    []FinancialDisclosure
	SocialAccounts []SocialMediaAccount
}

// AuditFacts is the per-politician aggregate row the auditor consumes.
type AuditFacts struct {
	ID                      int64      `db:"id"`
	FirstName               string     `db:"first_name"`
	LastName                string     `db:"last_name"`
	BirthDate               *time.Time `db:"birth_date"`
	Biography               *string    `db:"biography"`
	Website                 *string    `db:"website"`
	UpdatedAt               time.Time  `db:"updated_at"`
	Jurisdiction            *string    `db:"jurisdiction"`
	PositionCount           int        `db:"position_count"`
	CurrentPositionCount    int        `db:"current_position_count"`
	AffiliationCount        int        `db:"affiliation_count"`
	CurrentAffiliationCount int        `db:"current_affiliation_count"`
	DisclosureCount         int        `db:"disclosure_count"`
	LatestDisclosureFiledOn *time.Time `db:"latest_disclosure_filed_on"`
	InvalidVotePositions    int        `db:"invalid_vote_positions"`
	InvalidDonorTypes       int        `db:"invalid_donor_types"`
	InvalidBillStatuses     int        `db:"invalid_bill_statuses"`
}

// DataIssue is one field-tagged finding from the data-quality audit.
type DataIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PoliticianDataHealth lists every issue found for one politician.
type PoliticianDataHealth struct {
	ID           int64       `json:"id"`
	FullName     string      `json:"full_name"`
	Jurisdiction string      `json:"jurisdiction"`
	Issues       []DataIssue `json:"issues"`
}
