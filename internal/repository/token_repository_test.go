package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// anyQuery disables SQL string matching; these tests care about the row
// handling, not the exact statement text.
var anyQuery = sqlmock.QueryMatcherFunc(func(expectedSQL, actualSQL string) error { return nil })

func tokenRows(userID uint64, expiresAt time.Time, revokedAt any) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
		AddRow(userID, expiresAt, revokedAt)
}

func TestValidateRefresh(t *testing.T) {
	future := time.Now().UTC().Add(24 * time.Hour)
	past := time.Now().UTC().Add(-time.Hour)

	t.Run("active token resolves to its user", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(anyQuery))
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectQuery("").WillReturnRows(tokenRows(42, future, nil))

		uid, err := NewTokenRepo(db).ValidateRefresh(context.Background(), "hash")
		require.NoError(t, err)
		assert.Equal(t, uint64(42), uid)
	})

	t.Run("revoked token reads as missing", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(anyQuery))
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectQuery("").WillReturnRows(tokenRows(42, future, past))

		_, err = NewTokenRepo(db).ValidateRefresh(context.Background(), "hash")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("expired token reads as missing", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(anyQuery))
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectQuery("").WillReturnRows(tokenRows(42, past, nil))

		_, err = NewTokenRepo(db).ValidateRefresh(context.Background(), "hash")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("unknown token reads as missing", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(anyQuery))
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectQuery("").WillReturnError(sql.ErrNoRows)

		_, err = NewTokenRepo(db).ValidateRefresh(context.Background(), "hash")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
