package db_test

import (
	"context"
	"errors"
	"testing"

	"careassist/internal/db"
	"careassist/internal/testutil"
)

func TestIncrementRuleHit(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := database.IncrementRuleHit(ctx, "healthcare", "fever"); err != nil {
			t.Fatalf("IncrementRuleHit() error = %v", err)
		}
	}
	if err := database.IncrementRuleHit(ctx, "general", "hi"); err != nil {
		t.Fatalf("IncrementRuleHit() error = %v", err)
	}

	hit, err := database.GetRuleHit(ctx, "healthcare", "fever")
	if err != nil {
		t.Fatalf("GetRuleHit() error = %v", err)
	}
	if hit.Count != 3 {
		t.Errorf("Count = %d, want 3", hit.Count)
	}

	hits, err := database.GetAllRuleHits(ctx)
	if err != nil {
		t.Fatalf("GetAllRuleHits() error = %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("GetAllRuleHits() returned %d rows, want 2", len(hits))
	}
	// Ordered by rule set, then term.
	if hits[0].RuleSet != "general" || hits[1].RuleSet != "healthcare" {
		t.Errorf("unexpected order: %+v", hits)
	}
}

func TestGetRuleHit_NotFound(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	_, err := database.GetRuleHit(context.Background(), "healthcare", "cancer")
	if !errors.Is(err, db.ErrRuleHitNotFound) {
		t.Errorf("GetRuleHit() error = %v, want %v", err, db.ErrRuleHitNotFound)
	}
}
