package repository

import (
	"errors"
	"regexp"
	"strings"

	"backend/internal/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres class 23 integrity violation we translate into a typed conflict.
const uniqueViolationCode = "23505"

// Postgres reports the offending columns of a unique violation in the error
// detail as `Key (col1, col2)=(val1, val2) already exists.`
var keyDetailPattern = regexp.MustCompile(`Key \(([^)]+)\)=\(([^)]+)\)`)

// ConflictField is one offending column/value pair extracted from a unique
// constraint violation.
type ConflictField struct {
	Column string `json:"column"`
	Value  string `json:"value"`
}

// translateError converts a raw storage failure into a typed application
// error. A recognized unique-constraint violation becomes a conflict carrying
// the offending fields; everything else (including nil) becomes a persistence
// error wrapping the original failure under the caller's default message.
// It never panics and always returns a constructed error.
func translateError(err error, defaultMessage string) *apperror.Error {
	var pgErr *pgconn.PgError
	if err != nil && errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return uniqueViolation(pgErr)
	}
	return apperror.Persistence(defaultMessage, err)
}

func uniqueViolation(pgErr *pgconn.PgError) *apperror.Error {
	fields := extractConflictFields(pgErr.Detail)

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, snakeToCamel(f.Column))
	}

	message := "A record with these " + strings.Join(names, " and ") + " already exists"

	return apperror.Conflict(message, pgErr, map[string]any{
		"code":       pgErr.Code,
		"table":      pgErr.TableName,
		"constraint": pgErr.ConstraintName,
		"column":     pgErr.ColumnName,
		"fields":     fields,
	})
}

// extractConflictFields parses the detail string; an empty slice is returned
// when the pattern does not match or the detail is absent.
func extractConflictFields(detail string) []ConflictField {
	match := keyDetailPattern.FindStringSubmatch(detail)
	if match == nil {
		return []ConflictField{}
	}

	columns := strings.Split(match[1], ",")
	values := strings.Split(match[2], ",")

	fields := make([]ConflictField, 0, len(columns))
	for i, column := range columns {
		value := ""
		if i < len(values) {
			value = strings.TrimSpace(values[i])
		}
		fields = append(fields, ConflictField{
			Column: strings.TrimSpace(column),
			Value:  value,
		})
	}
	return fields
}

func snakeToCamel(s string) string {
	var b strings.Builder
	upperNext := false
	for _, r := range s {
		if r == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			upperNext = false
			// Only a lowercase letter absorbs the underscore; anything else
			// keeps it (address_2 stays address_2).
			if r >= 'a' && r <= 'z' {
				b.WriteRune(r - 'a' + 'A')
				continue
			}
			b.WriteRune('_')
		}
		b.WriteRune(r)
	}
	if upperNext {
		b.WriteRune('_')
	}
	return b.String()
}
