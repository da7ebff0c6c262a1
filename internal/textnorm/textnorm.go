// Package textnorm canonicalizes comment text and derives stable fingerprints
// from the canonical form. All functions are pure and safe for concurrent use.
package textnorm

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combining diacritical marks block, stripped after decomposition
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036F, Stride: 1}},
}

// Normalize collapses visually spoofed text into a canonical lowercase ASCII
// form. The steps run in a fixed order: confusable substitution, compatibility
// decomposition, diacritic stripping, then dropping everything that is not an
// ASCII alphanumeric or whitespace, and finally case folding. Reordering the
// steps changes the output for decomposed accented confusables.
func Normalize(text string) string {
	var folded strings.Builder
	folded.Grow(len(text))
	for _, r := range text {
		if plain, ok := confusables[r]; ok {
			r = plain
		}
		folded.WriteRune(r)
	}

	// chained transformers keep internal state, so the chain is built per call
	decomposer := transform.Chain(norm.NFKD, runes.Remove(runes.In(combiningDiacritics)))
	decomposed, _, err := transform.String(decomposer, folded.String())
	if err != nil {
		// Remove and NFKD never fail on valid input; fall back to the
		// substituted text for anything pathological.
		decomposed = folded.String()
	}

	var out strings.Builder
	out.Grow(len(decomposed))
	for _, r := range decomposed {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			out.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			out.WriteRune(r + ('a' - 'A'))
		case unicode.IsSpace(r):
			out.WriteRune(r)
		}
	}
	return out.String()
}

// Digest returns the lowercase hex sha256 of the given canonical text.
func Digest(normalized string) string {
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// Fingerprint normalizes text and hashes it. Equal normalized forms always
// produce equal fingerprints, which is what lets the fingerprint stand in for
// content equality as a cache key.
func Fingerprint(text string) string {
	return Digest(Normalize(text))
}

// StripSpace removes all whitespace, so "FREE GIFT" still matches a recorded
// "FREEGIFT" keyword during the substring scan.
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
