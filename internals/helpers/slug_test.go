package helper

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Summer BBQ", "summer-bbq"},
		{"  Summer   BBQ  ", "summer-bbq"},
		{"Café & Crêpes!", "cafe-crepes"},
		{"ALL CAPS", "all-caps"},
		{"already-a-slug", "already-a-slug"},
		{"--weird---input--", "weird-input"},
		{"日本語", "item"},
		{"", "item"},
		{"!!!", "item"},
		{"with numbers 123", "with-numbers-123"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in, 0), "input %q", tc.in)
	}
}

func TestSlugifyMaxLen(t *testing.T) {
	long := strings.Repeat("a", 300)
	got := Slugify(long, 0)
	assert.LessOrEqual(t, len(got), DefaultSlugMaxLen)
	assert.NotEmpty(t, got)
}

// taken simulates the store-side existence check over a fixed set of
// already-issued slugs.
func taken(slugs ...string) ExistsFunc {
	set := map[string]bool{}
	for _, s := range slugs {
		set[s] = true
	}
	return func(_ context.Context, s string) (bool, error) {
		return set[s], nil
	}
}

func TestEnsureUniqueSlugFirstFree(t *testing.T) {
	got, err := EnsureUniqueSlug(context.Background(), "Summer BBQ", taken())
	require.NoError(t, err)
	assert.Equal(t, "summer-bbq", got)
}

func TestEnsureUniqueSlugSuffixSequence(t *testing.T) {
	ctx := context.Background()

	got, err := EnsureUniqueSlug(ctx, "Summer BBQ", taken("summer-bbq"))
	require.NoError(t, err)
	assert.Equal(t, "summer-bbq-1", got)

	got, err = EnsureUniqueSlug(ctx, "Summer BBQ", taken("summer-bbq", "summer-bbq-1"))
	require.NoError(t, err)
	assert.Equal(t, "summer-bbq-2", got)
}

func TestEnsureUniqueSlugBounded(t *testing.T) {
	// every candidate taken: the loop must stop and report, not spin
	always := func(context.Context, string) (bool, error) { return true, nil }
	_, err := EnsureUniqueSlug(context.Background(), "foo", always)
	require.ErrorIs(t, err, ErrSlugExhausted)
}

func TestEnsureUniqueSlugPropagatesCheckError(t *testing.T) {
	boom := errors.New("connection reset")
	failing := func(context.Context, string) (bool, error) { return false, boom }
	_, err := EnsureUniqueSlug(context.Background(), "foo", failing)
	require.ErrorIs(t, err, boom)
}

func TestEnsureUniqueSlugSuffixFitsMaxLen(t *testing.T) {
	long := strings.Repeat("b", 300)
	got, err := EnsureUniqueSlug(context.Background(), long, taken(Slugify(long, 0)))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(got), DefaultSlugMaxLen)
	assert.True(t, strings.HasSuffix(got, "-1"))
}
