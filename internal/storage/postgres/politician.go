package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"polititrack/internal/domain"
)

type PoliticianStore struct {
	db *sqlx.DB
}

func NewPoliticianStore(db *sqlx.DB) *PoliticianStore {
	return &PoliticianStore{db: db}
}

// currentJoins resolves the authoritative current party and position
// per politician. Ties between multiple "current" rows are broken by
// most recent start date, then highest id.
const currentJoins = `
	LEFT JOIN LATERAL (
		SELECT pa.party_name
		FROM party_affiliations pa
		WHERE pa.politician_id = p.id AND pa.end_date IS NULL
		ORDER BY pa.start_date DESC, pa.id DESC
		LIMIT 1
	) cur_party ON true
	LEFT JOIN LATERAL (
		SELECT pp.title, pp.jurisdiction
		FROM political_positions pp
		WHERE pp.politician_id = p.id AND pp.is_current
		ORDER BY pp.start_date DESC, pp.id DESC
		LIMIT 1
	) cur_pos ON true`

const summaryColumns = `
	p.id, p.first_name, p.last_name,
	cur_party.party_name AS current_party,
	cur_pos.title AS current_title,
	cur_pos.jurisdiction AS jurisdiction`

// Search matches the query case-insensitively as a substring against
// the politician's names, voted-on bill titles, and committee names.
// One row per politician regardless of how many sub-entities match.
func (s *PoliticianStore) Search(ctx context.Context, query string) ([]domain.SummaryRow, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	q := `
		SELECT ` + summaryColumns + `
		FROM politicians p` + currentJoins + `
		WHERE lower(p.first_name) LIKE $1
			OR lower(p.last_name) LIKE $1
			OR lower(p.first_name || ' ' || p.last_name) LIKE $1
			OR EXISTS (
				SELECT 1 FROM votes v
				JOIN bills b ON b.id = v.bill_id
				WHERE v.politician_id = p.id AND lower(b.title) LIKE $1
			)
			OR EXISTS (
				SELECT 1 FROM committee_memberships cm
				JOIN committees c ON c.id = cm.committee_id
				WHERE cm.politician_id = p.id AND lower(c.name) LIKE $1
			)
		ORDER BY p.last_name, p.id`

	var rows []domain.SummaryRow
	if err := s.db.SelectContext(ctx, &rows, q, pattern); err != nil {
		return nil, fmt.Errorf("search politicians: %w", err)
	}
	return rows, nil
}

// List returns one page of summary rows plus the total count over the
// filtered set. Sorting is applied to the politician's own name
// columns only; id keeps the order stable across ties.
func (s *PoliticianStore) List(ctx context.Context, f domain.ListFilter) ([]domain.SummaryRow, int, error) {
	conds := []string{"true"}
	args := []interface{}{}

	if f.Party != "" {
		args = append(args, f.Party)
		conds = append(conds, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM party_affiliations pa
			WHERE pa.politician_id = p.id
				AND pa.end_date IS NULL
				AND lower(pa.party_name) = lower($%d)
		)`, len(args)))
	}
	if f.Jurisdiction != "" {
		args = append(args, f.Jurisdiction)
		conds = append(conds, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM political_positions pp
			WHERE pp.politician_id = p.id
				AND pp.is_current
				AND lower(pp.jurisdiction) = lower($%d)
		)`, len(args)))
	}
	where := strings.Join(conds, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM politicians p WHERE " + where
	if err := s.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count politicians: %w", err)
	}

	args = append(args, f.Size, f.Offset())
	q := fmt.Sprintf(`
		SELECT `+summaryColumns+`
		FROM politicians p`+currentJoins+`
		WHERE `+where+`
		ORDER BY %s, p.id
		LIMIT $%d OFFSET $%d`,
		orderClause(f.SortBy), len(args)-1, len(args))

	var rows []domain.SummaryRow
	if err := s.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, 0, fmt.Errorf("list politicians: %w", err)
	}
	return rows, total, nil
}

func orderClause(key domain.SortKey) string {
	switch key {
	case domain.SortLastNameDesc:
		return "p.last_name DESC"
	case domain.SortFirstNameAsc:
		return "p.first_name ASC"
	case domain.SortFirstNameDesc:
		return "p.first_name DESC"
	default:
		return "p.last_name ASC"
	}
}

func (s *PoliticianStore) GetByID(ctx context.Context, id int64) (*domain.Politician, error) {
	q := `
		SELECT id, first_name, last_name, middle_name, suffix, birth_date,
			gender, biography, website, source_id, created_at, updated_at
		FROM politicians
		WHERE id = $1`

	var p domain.Politician
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, q, id).StructScan(&p)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get politician: %w", err)
	}
	return &p, nil
}

// ExistsByIdentity reports whether a politician with the same first
// name, last name, and birth date already exists. A null birth date
// only matches another null.
func (s *PoliticianStore) ExistsByIdentity(ctx context.Context, firstName, lastName string, birthDate *time.Time) (bool, error) {
	q := `
		SELECT EXISTS (
			SELECT 1 FROM politicians
			WHERE first_name = $1
				AND last_name = $2
				AND birth_date IS NOT DISTINCT FROM $3
		)`

	var exists bool
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, q, firstName, lastName, birthDate).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check politician identity: %w", err)
	}
	return exists, nil
}

func (s *PoliticianStore) Create(ctx context.Context, p *domain.Politician) error {
	q := `
		INSERT INTO politicians (
			first_name, last_name, middle_name, suffix, birth_date,
			gender, biography, website, source_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, q,
		p.FirstName,
		p.LastName,
		p.MiddleName,
		p.Suffix,
		p.BirthDate,
		p.Gender,
		p.Biography,
		p.Website,
		p.SourceID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert politician: %w", err)
	}
	return nil
}

func (s *PoliticianStore) Update(ctx context.Context, p *domain.Politician) error {
	q := `
		UPDATE politicians SET
			first_name = $2,
			last_name = $3,
			middle_name = $4,
			suffix = $5,
			birth_date = $6,
			gender = $7,
			biography = $8,
			website = $9,
			source_id = $10,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, q,
		p.ID,
		p.FirstName,
		p.LastName,
		p.MiddleName,
		p.Suffix,
		p.BirthDate,
		p.Gender,
		p.Biography,
		p.Website,
		p.SourceID,
	).Scan(&p.UpdatedAt)
	if err == sql.ErrNoRows {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update politician: %w", err)
	}
	return nil
}
