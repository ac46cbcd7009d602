package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"polititrack/internal/domain"
)

// ProfileStore loads a politician's complete relationship graph in one
// logical operation: the root row plus one batched select per
// relation, all keyed by the politician id.
type ProfileStore struct {
	db *sqlx.DB
}

func NewProfileStore(db *sqlx.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

func (s *ProfileStore) GetGraph(ctx context.Context, id int64) (*domain.PoliticianGraph, error) {
	var g domain.PoliticianGraph

	err := s.db.GetContext(ctx, &g.Politician, `
		SELECT id, first_name, last_name, middle_name, suffix, birth_date,
			gender, biography, website, source_id, created_at, updated_at
		FROM politicians
		WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load politician: %w", err)
	}

	if g.Politician.SourceID != nil {
		var src domain.Source
		err := s.db.GetContext(ctx, &src, `
			SELECT id, name, url, retrieved_at, created_at, updated_at
			FROM sources
			WHERE id = $1`, *g.Politician.SourceID)
		if err != nil && err != sql.ErrNoRows {
			return nil, fmt.Errorf("load source: %w", err)
		}
		if err == nil {
			g.Source = &src
		}
	}

	if err := s.db.SelectContext(ctx, &g.Positions, `
		SELECT id, politician_id, title, jurisdiction, chamber, start_date,
			end_date, is_current, source_id, created_at, updated_at
		FROM political_positions
		WHERE politician_id = $1`, id); err != nil {
		return nil, fmt.Errorf("load positions: %w", err)
	}

	if err := s.db.SelectContext(ctx, &g.Affiliations, `
		SELECT id, politician_id, party_name, start_date, end_date,
			source_id, created_at, updated_at
		FROM party_affiliations
		WHERE politician_id = $1`, id); err != nil {
		return nil, fmt.Errorf("load party affiliations: %w", err)
	}

	if err := s.db.SelectContext(ctx, &g.Memberships, `
		SELECT cm.id, cm.politician_id, cm.committee_id, cm.role,
			cm.start_date, cm.end_date, cm.source_id, cm.created_at, cm.updated_at,
			c.name AS committee_name, c.chamber AS committee_chamber
		FROM committee_memberships cm
		JOIN committees c ON c.id = cm.committee_id
		WHERE cm.politician_id = $1`, id); err != nil {
		return nil, fmt.Errorf("load committee memberships: %w", err)
	}

	if err := s.db.SelectContext(ctx, &g.Votes, `
		SELECT v.id, v.politician_id, v.bill_id, v.voted_at, v.position,
			v.roll_call, v.chamber, v.source_id, v.created_at, v.updated_at,
			b.number AS bill_number, b.title AS bill_title
		FROM votes v
		JOIN bills b ON b.id = v.bill_id
		WHERE v.politician_id = $1`, id); err != nil {
		return nil, fmt.Errorf("load votes: %w", err)
	}

	if err := s.db.SelectContext(ctx, &g.Gifts, `
		SELECT id, politician_id, description, value, report_date,
			donor_name, source_id, created_at, updated_at
		FROM gifts
		WHERE politician_id = $1`, id); err != nil {
		return nil, fmt.Errorf("load gifts: %w", err)
	}

	if err := s.db.SelectContext(ctx, &g.Donations, `
		SELECT id, politician_id, donor_name, donor_type, amount,
			donated_on, source_id, created_at, updated_at
		FROM campaign_donations
		WHERE politician_id = $1`, id); err != nil {
		return nil, fmt.Errorf("load campaign donations: %w", err)
	}

	if err := s.db.SelectContext(ctx, &g.Disclosures, `
		SELECT id, politician_id, report_year, filed_on, document_url,
			source_id, created_at, updated_at
		FROM financial_disclosures
		WHERE politician_id = $1`, id); err != nil {
		return nil, fmt.Errorf("load financial disclosures: %w", err)
	}

	if err := s.db.SelectContext(ctx, &g.SocialAccounts, `
		SELECT id, politician_id, platform, handle, source_id,
			created_at, updated_at
		FROM social_media_accounts
		WHERE politician_id = $1
		ORDER BY id`, id); err != nil {
		return nil, fmt.Errorf("load social media accounts: %w", err)
	}

	return &g, nil
}
