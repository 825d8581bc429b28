package hebrew

import (
	"regexp"
	"strings"
)

// tagRun matches a single <...> group with no embedded angle brackets.
// Pre-compiled once; StripTags is called for every indexed line.
var tagRun = regexp.MustCompile(`<[^<>]*>`)

// IsDiacritic reports whether r is a Hebrew diacritic: a cantillation
// mark (U+0591..U+05AF), a vowel point or meteg (U+05B0..U+05BD), rafe
// (U+05BF), a shin/sin dot (U+05C1, U+05C2), an upper or lower dot
// (U+05C4, U+05C5), or qamats qatan (U+05C7). Punctuation in the same
// block (maqaf, paseq, sof pasuq) is not a diacritic.
func IsDiacritic(r rune) bool {
	switch {
	case r >= '֑' && r <= '֯':
		return true
	case r >= 'ְ' && r <= 'ֽ':
		return true
	case r == 'ֿ' || r == 'ׁ' || r == 'ׂ':
		return true
	case r == 'ׄ' || r == 'ׅ' || r == 'ׇ':
		return true
	}
	return false
}

// RemoveDiacritics returns s with every Hebrew diacritic removed.
// All other characters pass through unchanged. Inputs without
// diacritics are returned as-is without allocating.
func RemoveDiacritics(s string) string {
	first := strings.IndexFunc(s, IsDiacritic)
	if first < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:first])
	for _, r := range s[first:] {
		if !IsDiacritic(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// StripTags replaces every maximal <...> run with a single space.
// Unbalanced brackets are left alone; the function never fails.
func StripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	return tagRun.ReplaceAllString(s, " ")
}

// Normalize strips tag markup and removes diacritics, in that order.
func Normalize(s string) string {
	return RemoveDiacritics(StripTags(s))
}
