package domain

import "time"

// Source records where a row's data was retrieved from.
type Source struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	URL         string    `db:"url"`
	RetrievedAt time.Time `db:"retrieved_at"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Politician struct {
	ID         int64      `db:"id"`
	FirstName  string     `db:"first_name"`
	LastName   string     `db:"last_name"`
	MiddleName *string    `db:"middle_name"`
	Suffix     *string    `db:"suffix"`
	BirthDate  *time.Time `db:"birth_date"`
	Gender     *string    `db:"gender"`
	Biography  *string    `db:"biography"`
	Website    *string    `db:"website"`
	SourceID   *int64     `db:"source_id"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

// FullName is the display name used in summaries and reports.
func (p Politician) FullName() string {
	return p.FirstName + " " + p.LastName
}

type PoliticalPosition struct {
	ID           int64      `db:"id"`
	PoliticianID int64      `db:"politician_id"`
	Title        string     `db:"title"`
	Jurisdiction string     `db:"jurisdiction"`
	Chamber      *string    `db:"chamber"`
	StartDate    time.Time  `db:"start_date"`
	EndDate      *time.Time `db:"end_date"`
	IsCurrent    bool       `db:"is_current"`
	SourceID     *int64     `db:"source_id"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

type PartyAffiliation struct {
	ID           int64      `db:"id"`
	PoliticianID int64      `db:"politician_id"`
	PartyName    string     `db:"party_name"`
	StartDate    time.Time  `db:"start_date"`
	EndDate      *time.Time `db:"end_date"`
	SourceID     *int64     `db:"source_id"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

type Bill struct {
	ID            int64      `db:"id"`
	Number        string     `db:"number"`
	Title         string     `db:"title"`
	Summary       *string    `db:"summary"`
	SessionNumber *int       `db:"session_number"`
	IntroducedOn  *time.Time `db:"introduced_on"`
	Status        string     `db:"status"`
	SponsorID     *int64     `db:"sponsor_id"`
	SourceID      *int64     `db:"source_id"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

type Vote struct {
	ID           int64     `db:"id"`
	PoliticianID int64     `db:"politician_id"`
	BillID       int64     `db:"bill_id"`
	VotedAt      time.Time `db:"voted_at"`
	Position     string    `db:"position"`
	RollCall     *int      `db:"roll_call"`
	Chamber      *string   `db:"chamber"`
	SourceID     *int64    `db:"source_id"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type Gift struct {
	ID           int64     `db:"id"`
	PoliticianID int64     `db:"politician_id"`
	Description  string    `db:"description"`
	Value        float64   `db:"value"`
	ReportDate   time.Time `db:"report_date"`
	DonorName    string    `db:"donor_name"`
	SourceID     *int64    `db:"source_id"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type CampaignDonation struct {
	ID           int64     `db:"id"`
	PoliticianID int64     `db:"politician_id"`
	DonorName    string    `db:"donor_name"`
	DonorType    string    `db:"donor_type"`
	Amount       float64   `db:"amount"`
	DonatedOn    time.Time `db:"donated_on"`
	SourceID     *int64    `db:"source_id"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type FinancialDisclosure struct {
	ID           int64     `db:"id"`
	PoliticianID int64     `db:"politician_id"`
	ReportYear   int       `db:"report_year"`
	FiledOn      time.Time `db:"filed_on"`
	DocumentURL  *string   `db:"document_url"`
	SourceID     *int64    `db:"source_id"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type Committee struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Chamber   *string   `db:"chamber"`
	SourceID  *int64    `db:"source_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type CommitteeMembership struct {
	ID           int64      `db:"id"`
	PoliticianID int64      `db:"politician_id"`
	CommitteeID  int64      `db:"committee_id"`
	Role         *string    `db:"role"`
	StartDate    time.Time  `db:"start_date"`
	EndDate      *time.Time `db:"end_date"`
	SourceID     *int64     `db:"source_id"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

type SocialMediaAccount struct {
	ID           int64     `db:"id"`
	PoliticianID int64     `db:"politician_id"`
	Platform     string    `db:"platform"`
	Handle       string    `db:"handle"`
	SourceID     *int64    `db:"source_id"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
