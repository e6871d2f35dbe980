// Package normalize converts extracted page text into a canonical,
// diacritic-stripped, whitespace-collapsed form.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes text (NFKD) and removes every non-ASCII rune.
// Diacritics are stripped, not transliterated: "Müller" becomes "Muller".
var asciiFold = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})),
)

// Normalize returns the canonical form of text: compatibility-decomposed,
// stripped of all non-ASCII code points, with whitespace runs collapsed
// to single spaces and leading/trailing whitespace trimmed.
// Total and idempotent.
func Normalize(text string) string {
	folded, _, err := transform.String(asciiFold, text)
	if err != nil {
		// The transform chain cannot fail on valid UTF-8; on malformed
		// input fall back to dropping non-ASCII bytes directly.
		folded = stripNonASCII(text)
	}

	return strings.Join(strings.Fields(folded), " ")
}

// stripNonASCII removes all non-ASCII runes without decomposition.
func stripNonASCII(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}
