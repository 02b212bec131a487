package repository

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// tableDDL extracts the CREATE TABLE block for one table from the
// shipped schema file.
func tableDDL(t *testing.T, schema, table string) string {
	t.Helper()
	marker := "CREATE TABLE IF NOT EXISTS " + table + " ("
	start := strings.Index(schema, marker)
	require.GreaterOrEqual(t, start, 0, "table %s missing from schema", table)
	rest := schema[start:]
	end := strings.Index(rest, "ENGINE")
	require.GreaterOrEqual(t, end, 0)
	return rest[:end]
}

// TestSchemaCoversRepositoryColumns checks the shipped migration against
// the columns this package reads and writes, so a query and the DDL
// cannot drift apart silently.
func TestSchemaCoversRepositoryColumns(t *testing.T) {
	raw, err := os.ReadFile("../../migrations/001_init.sql")
	require.NoError(t, err)
	schema := string(raw)

	columns := map[string][]string{
		"users": {
			"email", "password_hash", "role", "created_at",
		},
		"refresh_tokens": {
			"user_id", "token_hash", "expires_at", "revoked_at",
		},
		"consultation_slots": {
			"date", "start_time", "end_time", "is_available", "created_at",
		},
		"consultation_bookings": {
			"reference", "slot_id", "client_name", "client_email", "client_phone",
			"payment_method", "transaction_id", "amount", "status", "admin_notes",
			"created_at", "updated_at",
		},
		"consultation_content": {
			"section", "content", "updated_at",
		},
		"consultation_reviews": {
			"client_name", "client_company", "client_photo", "review_text",
			"rating", "display_order",
		},
		"consultation_projects": {
			"title", "description", "image_url", "link", "display_order",
		},
	}
	for table, cols := range columns {
		t.Run(table, func(t *testing.T) {
			ddl := tableDDL(t, schema, table)
			for _, col := range cols {
				require.Contains(t, ddl, "\n    "+col+" ",
					"column %s used by the %s repository is missing from the schema", col, table)
			}
		})
	}
}
