package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatorCollectsViolations(t *testing.T) {
	v := New().
		Check("email", Required(""), Email("")).
		Check("name", Required("Ada"), MaxLen("Ada", 255)).
		Check("paging.page", Min(0, 1))

	assert.False(t, v.Valid())
	assert.Equal(t, []Violation{
		{Field: "email", Message: "is required"},
		{Field: "paging.page", Message: "must be at least 1"},
	}, v.Violations())
}

func TestFirstFailingRuleShortCircuitsField(t *testing.T) {
	v := New().Check("email", Required("not-an-email"), Email("not-an-email"))

	assert.Equal(t, 1, len(v.Violations()))
	assert.Equal(t, "must be a valid email address", v.Violations()[0].Message)
}

func TestValidInput(t *testing.T) {
	v := New().
		Check("email", Required("a@b.co"), Email("a@b.co")).
		Check("limit", Min(20, 1))

	assert.True(t, v.Valid())
	assert.Nil(t, v.Violations())
}
