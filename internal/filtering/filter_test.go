package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultFilter_IncludesAndExcludes(t *testing.T) {
	f, err := NewDefaultFilter([]string{"+db.*", "-db.password"})
	require.NoError(t, err)

	assert.True(t, f.HasCustomFilters())
	assert.True(t, f.Includes("db.host"))
	assert.True(t, f.Includes("DB.Port"), "matching is case-insensitive")
	assert.False(t, f.Includes("db.password"))
	assert.False(t, f.Includes("cache.size"))
}

func TestNewDefaultFilter_NoIncludesMeansEverything(t *testing.T) {
	f, err := NewDefaultFilter([]string{"-secret?"})
	require.NoError(t, err)

	assert.True(t, f.Includes("anything"))
	assert.False(t, f.Includes("secret1"))
	assert.True(t, f.Includes("secret12"), "'?' matches exactly one character")
}

func TestNewDefaultFilter_Empty(t *testing.T) {
	f, err := NewDefaultFilter(nil)
	require.NoError(t, err)
	assert.False(t, f.HasCustomFilters())
	assert.True(t, f.Includes(""))
	assert.True(t, f.Includes("x"))
}

func TestNewDefaultFilter_LiteralMetaCharacters(t *testing.T) {
	f, err := NewDefaultFilter([]string{"+a.b"})
	require.NoError(t, err)
	assert.True(t, f.Includes("a.b"))
	assert.False(t, f.Includes("aXb"), "'.' is literal, not a regex wildcard")
}

func TestNewDefaultFilter_Errors(t *testing.T) {
	tests := []struct {
		name    string
		filters []string
		wantMsg string
	}{
		{name: "missing sign", filters: []string{"db.*"}, wantMsg: `"db.*" must start with '+' or '-'`},
		{name: "empty include", filters: []string{"+"}, wantMsg: `"+": empty pattern`},
		{name: "empty exclude", filters: []string{"+a", " - "}, wantMsg: `"-": empty pattern`},
		{name: "first bad entry wins", filters: []string{"x", "+"}, wantMsg: `"x"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewDefaultFilter(tt.filters)
			assert.Nil(t, f)
			assert.ErrorIs(t, err, ErrInvalidFilter)
			assert.ErrorContains(t, err, tt.wantMsg)
		})
	}
}

func TestParseFilterList(t *testing.T) {
	f, err := ParseFilterList("+db.*; -db.password;;")
	require.NoError(t, err)
	assert.True(t, f.Includes("db.user"))
	assert.False(t, f.Includes("db.password"))
}
