// Package validation provides explicit predicate-chain field validation:
// rules are declared per field and evaluated without reflection, producing a
// list of field-path + message pairs.
package validation

import (
	"fmt"
	"net/mail"
	"strings"
)

// Violation is one failed rule on a field path. Nested paths are dot-joined.
type Violation struct {
	Field   string
	Message string
}

// Rule checks a single predicate and returns a message when it fails.
type Rule func() (string, bool)

// Validator accumulates violations across fields.
type Validator struct {
	violations []Violation
}

func New() *Validator {
	return &Validator{}
}

// Check evaluates the rules for a field in order; the first failure is
// recorded and the rest are skipped.
func (v *Validator) Check(field string, rules ...Rule) *Validator {
	for _, rule := range rules {
		if message, ok := rule(); !ok {
			v.violations = append(v.violations, Violation{Field: field, Message: message})
			break
		}
	}
	return v
}

// Violations returns all recorded failures, nil when everything passed.
func (v *Validator) Violations() []Violation {
	return v.violations
}

func (v *Validator) Valid() bool {
	return len(v.violations) == 0
}

// --- Rules ---

func Required(value string) Rule {
	return func() (string, bool) {
		return "is required", strings.TrimSpace(value) != ""
	}
}

func Email(value string) Rule {
	return func() (string, bool) {
		if value == "" {
			return "", true
		}
		_, err := mail.ParseAddress(value)
		return "must be a valid email address", err == nil
	}
}

func MaxLen(value string, max int) Rule {
	return func() (string, bool) {
		return fmt.Sprintf("must be at most %d characters", max), len(value) <= max
	}
}

func Min(value, min int) Rule {
	return func() (string, bool) {
		return fmt.Sprintf("must be at least %d", min), value >= min
	}
}

func UUID(value string, parse func(string) error) Rule {
	return func() (string, bool) {
		return "must be a valid uuid", parse(value) == nil
	}
}
