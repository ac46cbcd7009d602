package domain

import "time"

// Public profile types. All dates are rendered as ISO-8601 strings:
// date-only values as 2006-01-02, timestamps as RFC 3339. Absent
// optional dates render as null.

const (
	dateLayout = "2006-01-02"
)

// FormatDate renders a date-only value, or nil when absent.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// FormatTime renders a timestamp as RFC 3339.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

type SourceView struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	RetrievedAt string `json:"retrieved_at"`
}

type PositionView struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Jurisdiction string  `json:"jurisdiction"`
	Chamber      *string `json:"chamber"`
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date"`
	IsCurrent    bool    `json:"is_current"`
}

type AffiliationView struct {
	ID        int64   `json:"id"`
	PartyName string  `json:"party_name"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type MembershipView struct {
	ID               int64   `json:"id"`
	CommitteeName    string  `json:"committee_name"`
	CommitteeChamber *string `json:"committee_chamber"`
	Role             *string `json:"role"`
	StartDate        string  `json:"start_date"`
	EndDate          *string `json:"end_date"`
}

type VoteView struct {
	ID         int64   `json:"id"`
	BillNumber string  `json:"bill_number"`
	BillTitle  string  `json:"bill_title"`
	VotedAt    string  `json:"voted_at"`
	Position   string  `json:"position"`
	RollCall   *int    `json:"roll_call"`
	Chamber    *string `json:"chamber"`
}

type GiftView struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	ReportDate  string  `json:"report_date"`
	DonorName   string  `json:"donor_name"`
}

type DonationView struct {
	ID        int64   `json:"id"`
	DonorName string  `json:"donor_name"`
	DonorType string  `json:"donor_type"`
	Amount    float64 `json:"amount"`
	DonatedOn string  `json:"donated_on"`
}

type DisclosureView struct {
	ID          int64   `json:"id"`
	ReportYear  int     `json:"report_year"`
	FiledOn     string  `json:"filed_on"`
	DocumentURL *string `json:"document_url"`
}

type SocialAccountView struct {
	ID       int64  `json:"id"`
	Platform string `json:"platform"`
	Handle   string `json:"handle"`
}

// PoliticianProfile is the complete public representation of one
// politician. Every relation list is ordered descending by its own
// date field.
type PoliticianProfile struct {
	ID                   int64               `json:"id"`
	FirstName            string              `json:"first_name"`
	LastName             string              `json:"last_name"`
	MiddleName           *string             `json:"middle_name"`
	Suffix               *string             `json:"suffix"`
	FullName             string              `json:"full_name"`
	BirthDate            *string             `json:"birth_date"`
	Gender               *string             `json:"gender"`
	Biography            *string             `json:"biography"`
	Website              *string             `json:"website"`
	CreatedAt            string              `json:"created_at"`
	UpdatedAt            string              `json:"updated_at"`
	Source               *SourceView         `json:"source"`
	Positions            []PositionView      `json:"positions"`
	PartyAffiliations    []AffiliationView   `json:"party_affiliations"`
	CommitteeMemberships []MembershipView    `json:"committee_memberships"`
	Votes                []VoteView          `json:"votes"`
	Gifts                []GiftView          `json:"gifts"`
	CampaignDonations    []DonationView      `json:"campaign_donations"`
	FinancialDisclosures []DisclosureView    `json:"financial_disclosures"`
	SocialMediaAccounts  []SocialAccountView `json:"social_media_accounts"`
}
