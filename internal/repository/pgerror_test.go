package repository

import (
	"errors"
	"fmt"
	"testing"

	"backend/internal/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateUniqueViolationSingleColumn(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Detail:         "Key (email)=(test@example.com) already exists.",
		ConstraintName: "users_email_unique",
		TableName:      "users",
	}

	err := translateError(pgErr, "Error creating user")

	assert.Equal(t, apperror.KindConflict, err.Kind)
	assert.Equal(t, "A record with these email already exists", err.Message)
	assert.Equal(t, "23505", err.Details["code"])
	assert.Equal(t, "users", err.Details["table"])
	assert.Equal(t, "users_email_unique", err.Details["constraint"])
	assert.Equal(t, []ConflictField{{Column: "email", Value: "test@example.com"}}, err.Details["fields"])
}

func TestTranslateUniqueViolationCompositeKey(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Detail:         "Key (user_id, role_id)=(123, 456) already exists.",
		ConstraintName: "user_roles_pkey",
		TableName:      "user_roles",
	}

	err := translateError(pgErr, "Error assigning role")

	assert.Equal(t, apperror.KindConflict, err.Kind)
	assert.Equal(t, "A record with these userId and roleId already exists", err.Message)
	assert.Equal(t, []ConflictField{
		{Column: "user_id", Value: "123"},
		{Column: "role_id", Value: "456"},
	}, err.Details["fields"])
}

func TestTranslateUniqueViolationNonLetterAfterUnderscore(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Detail:         "Key (address_2)=(12 Main St) already exists.",
		ConstraintName: "users_address_2_unique",
		TableName:      "users",
	}

	err := translateError(pgErr, "Error creating user")

	assert.Equal(t, apperror.KindConflict, err.Kind)
	// Only a lowercase letter absorbs the underscore; a digit keeps it.
	assert.Equal(t, "A record with these address_2 already exists", err.Message)
	assert.Equal(t, []ConflictField{{Column: "address_2", Value: "12 Main St"}}, err.Details["fields"])
}

func TestTranslateUniqueViolationWithoutDetail(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", TableName: "users"}

	err := translateError(pgErr, "Error creating user")

	assert.Equal(t, apperror.KindConflict, err.Kind)
	// Joining zero column names leaves the double space intact.
	assert.Equal(t, "A record with these  already exists", err.Message)
	assert.Equal(t, []ConflictField{}, err.Details["fields"])
}

func TestTranslateUnrecognizedCode(t *testing.T) {
	cause := errors.New("connection timeout")

	err := translateError(cause, "Error querying database")

	assert.Equal(t, apperror.KindPersistence, err.Kind)
	assert.Equal(t, "Error querying database", err.Message)
	assert.Equal(t, cause, err.Cause)
}

func TestTranslateWrappedPgError(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:   "23505",
		Detail: "Key (name)=(billing) already exists.",
	}
	wrapped := fmt.Errorf("create: %w", pgErr)

	err := translateError(wrapped, "Error creating app")

	require.Equal(t, apperror.KindConflict, err.Kind)
	assert.Equal(t, "A record with these name already exists", err.Message)
}

func TestTranslateNilError(t *testing.T) {
	err := translateError(nil, "Error deleting user")

	assert.Equal(t, apperror.KindPersistence, err.Kind)
	assert.Equal(t, "Error deleting user", err.Message)
	assert.Nil(t, err.Cause)
}

func TestSnakeToCamel(t *testing.T) {
	assert.Equal(t, "googleId", snakeToCamel("google_id"))
	assert.Equal(t, "isSuperAdmin", snakeToCamel("is_super_admin"))
	assert.Equal(t, "email", snakeToCamel("email"))
}
