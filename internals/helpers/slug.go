package helper

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

const (
	// DefaultSlugMaxLen caps a slug including any numeric suffix.
	DefaultSlugMaxLen = 100

	// maxSlugAttempts bounds the uniqueness loop: base plus suffixes
	// -1 .. -(maxSlugAttempts-1). Exhaustion is an error, never an
	// endless loop, in case the exists check is broken or the input is
	// pathological.
	maxSlugAttempts = 50
)

// ErrSlugExhausted means no unique slug was found within the attempt
// bound.
var ErrSlugExhausted = errors.New("slug: could not find a unique slug")

// ExistsFunc answers whether a candidate slug is already taken. Checks
// must include soft-deleted rows: a slug is never reused once issued.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// Slugify turns free text into a [a-z0-9-] slug: diacritics stripped,
// lower-cased, runs of anything else collapsed to one hyphen, trimmed,
// capped at maxLen (DefaultSlugMaxLen when <= 0), falling back to "item"
// when nothing survives.
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}
	s = strings.ToLower(strings.TrimSpace(s))

	// strip diacritics (é → e)
	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		s = "item"
	}
	if utf8.RuneCountInString(s) > maxLen {
		rs := []rune(s)
		s = strings.Trim(string(rs[:maxLen]), "-")
	}
	if s == "" {
		s = "item"
	}
	return s
}

// EnsureUniqueSlug finds a free slug starting from seed: the normalized
// base first, then base-1, base-2, ... The check-then-use sequence is not
// atomic with the insert that follows; a concurrent writer can still win
// the same slug, which the store reports as a duplicate-key error and the
// caller retries.
func EnsureUniqueSlug(ctx context.Context, seed string, exists ExistsFunc) (string, error) {
	base := Slugify(seed, DefaultSlugMaxLen)

	candidate := base
	for i := 1; i <= maxSlugAttempts; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		suffix := fmt.Sprintf("-%d", i)
		candidate = trimForSuffix(base, suffix, DefaultSlugMaxLen) + suffix
	}
	return "", fmt.Errorf("%w: base %q", ErrSlugExhausted, base)
}

// trimForSuffix cuts base so base+suffix fits maxLen, trimming stray
// hyphens at the cut.
func trimForSuffix(base, suffix string, maxLen int) string {
	keep := maxLen - len(suffix)
	if keep < 1 {
		keep = 1
	}
	rs := []rune(base)
	if len(rs) > keep {
		rs = rs[:keep]
	}
	out := strings.Trim(string(rs), "-")
	if out == "" {
		out = "x"
	}
	return out
}
