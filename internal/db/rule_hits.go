package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"careassist/internal/models"
)

// IncrementRuleHit upserts the match count of a term.
func (d *DB) IncrementRuleHit(ctx context.Context, ruleSet, term string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO rule_hits (rule_set, term, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (rule_set, term) DO UPDATE
		SET count = rule_hits.count + 1, last_seen_at = NOW()
	`, ruleSet, term)
	return err
}

// GetAllRuleHits returns all rule hit rows for metrics export.
func (d *DB) GetAllRuleHits(ctx context.Context) ([]models.RuleHit, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT rule_set, term, count, last_seen_at
		FROM rule_hits
		ORDER BY rule_set, term
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hits []models.RuleHit
	for rows.Next() {
		var h models.RuleHit
		if err := rows.Scan(&h.RuleSet, &h.Term, &h.Count, &h.LastSeenAt); err != nil {
			return nil, err
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// GetRuleHit returns the hit row of a single term.
func (d *DB) GetRuleHit(ctx context.Context, ruleSet, term string) (*models.RuleHit, error) {
	var h models.RuleHit
	err := d.Pool.QueryRow(ctx, `
		SELECT rule_set, term, count, last_seen_at
		FROM rule_hits
		WHERE rule_set = $1 AND term = $2
	`, ruleSet, term).Scan(&h.RuleSet, &h.Term, &h.Count, &h.LastSeenAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRuleHitNotFound
		}
		return nil, err
	}
	return &h, nil
}
