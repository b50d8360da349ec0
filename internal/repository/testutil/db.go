// Package testutil provides shared database fixtures for repository and
// integration tests.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"kaapi/backend/internal/db"
	"kaapi/backend/internal/model"
	"kaapi/backend/pkg/snowflake"

	_ "modernc.org/sqlite"
)

// snowflakeOnce guards global generator init across parallel tests.
var snowflakeOnce sync.Once

// NewTestDB opens an in-memory sqlite database and runs all migrations.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			// t.Fatalf is unusable inside sync.Once, so panic instead
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	// Shared-cache mode keeps the in-memory database alive across the
	// pooled connections; the name must be unique per test.
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

// SeedSummary inserts a revenue summary row directly and returns its ID.
func SeedSummary(t *testing.T, database *sql.DB, summary model.DailyRevenueSummary) int64 {
	t.Helper()

	id := snowflake.NextID()
	_, err := database.ExecContext(context.Background(), `
		INSERT INTO revenue_data (id, date, day_of_week, revenue, transactions, conversion_rate, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, summary.Date, summary.DayOfWeek, summary.Revenue.String(),
		summary.Transactions, summary.ConversionRate, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		t.Fatalf("failed to seed revenue summary: %v", err)
	}
	return id
}

// SeedUpload inserts an uploaded-file row directly and returns its ID.
func SeedUpload(t *testing.T, database *sql.DB, file model.UploadedFile) int64 {
	t.Helper()

	id := snowflake.NextID()
	uploadedAt := file.UploadedAt
	if uploadedAt.IsZero() {
		uploadedAt = time.Now().UTC()
	}
	processed := 0
	if file.Processed {
		processed = 1
	}
	_, err := database.ExecContext(context.Background(), `
		INSERT INTO uploaded_files (id, filename, storage_path, file_type, upload_date, processed, row_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, file.Filename, file.StoragePath, string(file.Kind),
		uploadedAt.UTC().Format(time.RFC3339Nano), processed, file.RowCount)
	if err != nil {
		t.Fatalf("failed to seed uploaded file: %v", err)
	}
	return id
}
