package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"polititrack/internal/domain"
)

// AuditStore gathers the per-politician aggregates the data-quality
// rules run over. One row per politician, ordered by last then first
// name so the report order falls out of the scan.
type AuditStore struct {
	db *sqlx.DB
}

func NewAuditStore(db *sqlx.DB) *AuditStore {
	return &AuditStore{db: db}
}

func (s *AuditStore) CollectFacts(ctx context.Context) ([]domain.AuditFacts, error) {
	q := `
		SELECT
			p.id, p.first_name, p.last_name, p.birth_date, p.biography,
			p.website, p.updated_at,
			cur_pos.jurisdiction AS jurisdiction,
			(SELECT COUNT(*) FROM political_positions pp
				WHERE pp.politician_id = p.id) AS position_count,
			(SELECT COUNT(*) FROM political_positions pp
				WHERE pp.politician_id = p.id AND pp.is_current) AS current_position_count,
			(SELECT COUNT(*) FROM party_affiliations pa
				WHERE pa.politician_id = p.id) AS affiliation_count,
			(SELECT COUNT(*) FROM party_affiliations pa
				WHERE pa.politician_id = p.id AND pa.end_date IS NULL) AS current_affiliation_count,
			(SELECT COUNT(*) FROM financial_disclosures fd
				WHERE fd.politician_id = p.id) AS disclosure_count,
			(SELECT MAX(fd.filed_on) FROM financial_disclosures fd
				WHERE fd.politician_id = p.id) AS latest_disclosure_filed_on,
			(SELECT COUNT(*) FROM votes v
				WHERE v.politician_id = p.id
				AND v.position <> ALL($1)) AS invalid_vote_positions,
			(SELECT COUNT(*) FROM campaign_donations cd
				WHERE cd.politician_id = p.id
				AND cd.donor_type <> ALL($2)) AS invalid_donor_types,
			(SELECT COUNT(*) FROM bills b
				WHERE b.sponsor_id = p.id
				AND b.status <> ALL($3)) AS invalid_bill_statuses
		FROM politicians p
		LEFT JOIN LATERAL (
			SELECT pp.jurisdiction
			FROM political_positions pp
			WHERE pp.politician_id = p.id AND pp.is_current
			ORDER BY pp.start_date DESC, pp.id DESC
			LIMIT 1
		) cur_pos ON true
		ORDER BY p.last_name, p.first_name, p.id`

	var facts []domain.AuditFacts
	err := s.db.SelectContext(ctx, &facts, q,
		pq.Array(domain.VotePositionValues()),
		pq.Array(domain.DonorTypeValues()),
		pq.Array(domain.BillStatusValues()),
	)
	if err != nil {
		return nil, fmt.Errorf("collect audit facts: %w", err)
	}
	return facts, nil
}
