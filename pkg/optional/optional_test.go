package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name     Field[string] `json:"name"`
	GoogleID Field[string] `json:"googleId"`
	Admin    Field[bool]   `json:"admin"`
}

func TestAbsentFieldIsNotPresent(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

	assert.False(t, p.Name.Present())
	assert.False(t, p.Name.IsNull())
	_, ok := p.Name.Value()
	assert.False(t, ok)
}

func TestExplicitNullIsPresentAndNull(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"googleId": null}`), &p))

	assert.True(t, p.GoogleID.Present())
	assert.True(t, p.GoogleID.IsNull())
	_, ok := p.GoogleID.Value()
	assert.False(t, ok)
}

func TestSuppliedValue(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Ada","admin":false}`), &p))

	name, ok := p.Name.Value()
	require.True(t, ok)
	assert.Equal(t, "Ada", name)

	admin, ok := p.Admin.Value()
	require.True(t, ok)
	assert.False(t, admin)
	assert.False(t, p.Admin.IsNull())
}

func TestConstructors(t *testing.T) {
	set := Of("x")
	v, ok := set.Value()
	require.True(t, ok)
	assert.Equal(t, "x", v)

	null := Null[string]()
	assert.True(t, null.Present())
	assert.True(t, null.IsNull())
}

func TestMarshalRoundTrip(t *testing.T) {
	out, err := json.Marshal(payload{Name: Of("Ada"), GoogleID: Null[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ada","googleId":null,"admin":null}`, string(out))
}
