// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"sync"
	"testing"

	"careassist/internal/db"
)

// StubResponder is a deterministic fallback responder for tests.
type StubResponder struct {
	Reply string
	Err   error
	Panic bool

	mu     sync.Mutex
	inputs []string
}

// Name returns the provider name.
func (s *StubResponder) Name() string { return "stub" }

// Generate records text and returns the configured reply or error.
func (s *StubResponder) Generate(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	s.inputs = append(s.inputs, text)
	s.mu.Unlock()

	if s.Panic {
		panic("stub responder exploded")
	}
	if s.Err != nil {
		return "", s.Err
	}
	return s.Reply, nil
}

// Calls returns the inputs passed to Generate, in call order.
func (s *StubResponder) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.inputs))
	copy(out, s.inputs)
	return out
}

// TestDB creates a test database connection and returns a cleanup function.
// Skips the test unless TEST_DATABASE_URL is set.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Run migrations
	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Clean before test
	database.Pool.Exec(ctx, "DELETE FROM rule_hits")

	cleanup := func() {
		database.Pool.Exec(ctx, "DELETE FROM rule_hits")
		database.Close()
	}

	return database, cleanup
}
