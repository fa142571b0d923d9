package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cols = map[string]string{
	"slug":       "slug",
	"party_size": "party_size",
	"user_id":    "user_id",
	"state":      "state",
}

func TestTranslateComparisons(t *testing.T) {
	cases := []struct {
		name string
		expr Expr
		sql  string
		args []any
	}{
		{"eq", Eq("slug", "foo"), "slug = ?", []any{"foo"}},
		{"ne", Ne("state", "TX"), "state <> ?", []any{"TX"}},
		{"gt", Gt("party_size", 0), "party_size > ?", []any{0}},
		{"ge", Ge("party_size", 2), "party_size >= ?", []any{2}},
		{"lt", Lt("party_size", 10), "party_size < ?", []any{10}},
		{"le", Le("party_size", 10), "party_size <= ?", []any{10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sql, args, err := Translate(tc.expr, cols)
			require.NoError(t, err)
			assert.Equal(t, tc.sql, sql)
			assert.Equal(t, tc.args, args)
		})
	}
}

func TestTranslateBooleans(t *testing.T) {
	sql, args, err := Translate(
		And(Eq("user_id", int64(1)), Gt("party_size", 0)), cols)
	require.NoError(t, err)
	assert.Equal(t, "(user_id = ? AND party_size > ?)", sql)
	assert.Equal(t, []any{int64(1), 0}, args)

	sql, args, err = Translate(
		Or(Eq("slug", "a"), Eq("slug", "b")), cols)
	require.NoError(t, err)
	assert.Equal(t, "(slug = ? OR slug = ?)", sql)
	assert.Equal(t, []any{"a", "b"}, args)

	sql, args, err = Translate(Not(Eq("state", "TX")), cols)
	require.NoError(t, err)
	assert.Equal(t, "NOT (state = ?)", sql)
	assert.Equal(t, []any{"TX"}, args)
}

func TestTranslateNested(t *testing.T) {
	expr := And(
		Eq("user_id", int64(7)),
		Or(Eq("party_size", 0), Ge("party_size", 4)),
		Not(Eq("state", "CA")),
	)
	sql, args, err := Translate(expr, cols)
	require.NoError(t, err)
	assert.Equal(t,
		"(user_id = ? AND (party_size = ? OR party_size >= ?) AND NOT (state = ?))", sql)
	assert.Equal(t, []any{int64(7), 0, 4, "CA"}, args)
}

// a field without a column must fail the whole predicate, not drop the
// term
func TestTranslateUnsupportedField(t *testing.T) {
	for _, expr := range []Expr{
		Eq("full_name", "Ada Lovelace"),
		And(Eq("slug", "a"), Eq("full_name", "x")),
		Or(Eq("full_name", "x"), Eq("slug", "a")),
		Not(Eq("full_name", "x")),
	} {
		_, _, err := Translate(expr, cols)
		require.ErrorIs(t, err, ErrUnsupportedField)
	}
}

func TestTranslateEmptyGroups(t *testing.T) {
	sql, args, err := Translate(And(), cols)
	require.NoError(t, err)
	assert.Equal(t, "(1 = 1)", sql)
	assert.Empty(t, args)

	sql, args, err = Translate(Or(), cols)
	require.NoError(t, err)
	assert.Equal(t, "(1 = 0)", sql)
	assert.Empty(t, args)
}
