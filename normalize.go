package yuwe

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// apostropheReplacer maps the typographic variants of the glottal-stop
// apostrophe used in Nasa Yuwe orthography to the ASCII one.
var apostropheReplacer = strings.NewReplacer(
	"\u2019", "'", // right single quotation mark
	"\u02bc", "'", // modifier letter apostrophe
	"\u00b4", "'", // acute accent
	"\u2018", "'", // left single quotation mark
)

// Normalize returns s in NFC form with apostrophes unified, so that
// precomposed and decomposed accents (and the different apostrophes
// used by keyboards) compare equal.
func Normalize(s string) string {
	return apostropheReplacer.Replace(norm.NFC.String(s))
}

// FoldKey returns the case-insensitive lookup key for s.
func FoldKey(s string) string {
	return strings.ToLower(Normalize(strings.TrimSpace(s)))
}

// isWordRune reports whether r belongs to a word. Apostrophes are word
// characters because Nasa Yuwe writes the glottal stop with them.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) ||
		r == '_' || r == '\''
}

// splitToken separates a whitespace-delimited token into its clean word
// form (all non-word runes removed) and the trailing run of non-word
// runes, which is kept verbatim for reattachment.
func splitToken(token string) (clean, trailing string) {
	token = Normalize(token)
	runes := []rune(token)
	end := len(runes)
	for end > 0 && !isWordRune(runes[end-1]) {
		end--
	}
	trailing = string(runes[end:])
	var sb strings.Builder
	for _, r := range runes[:end] {
		if isWordRune(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String(), trailing
}

// runeLen is the length of s in characters.
func runeLen(s string) int {
	return len([]rune(s))
}
