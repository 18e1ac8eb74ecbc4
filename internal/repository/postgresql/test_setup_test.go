package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/das-hq/duty-backend-go/internal/pkg/database"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
	testDBErr  error
)

// requireTestDB connects to the database named by TEST_DATABASE_URL. Tests in
// this package are skipped entirely when the variable is unset so the suite
// still passes on machines without a local PostgreSQL.
func requireTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping repository tests")
	}

	testDBOnce.Do(func() {
		if err := database.Migrate(dsn); err != nil {
			testDBErr = fmt.Errorf("failed to migrate test database: %w", err)
			return
		}
		testDB, testDBErr = database.NewPostgreSQLDB(dsn)
	})
	if testDBErr != nil {
		t.Fatalf("test database setup: %v", testDBErr)
	}

	return testDB
}

// truncateAll clears every table so each test starts from a clean slate.
func truncateAll(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	tables := []string{
		"duty_changes",
		"duty_logs",
		"duty_payments",
		"emergency_contacts",
		"duty_assignments",
		"employees",
	}
	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
}
