package snippet

import (
	"sort"
	"strings"
	"unicode"

	"github.com/sifria-labs/mafteah-cli/internal/hebrew"
)

const (
	// contextRunes is the reach to each side of the earliest match,
	// counted in folded (base) characters.
	contextRunes = 120

	// maxRunes caps the excerpt at 240 folded characters of source
	// content, markers and ellipses excluded.
	maxRunes = 2 * contextRunes
)

const (
	markOpen  = "<mark>"
	markClose = "</mark>"
	ellipsis  = "..."
)

// foldedText is a lowercased, diacritic-free view of a source string
// with the original byte offset of every folded rune.
type foldedText struct {
	runes  []rune
	starts []int
	srcLen int
}

func fold(s string) foldedText {
	ft := foldedText{
		runes:  make([]rune, 0, len(s)),
		starts: make([]int, 0, len(s)),
		srcLen: len(s),
	}
	for i, r := range s {
		if hebrew.IsDiacritic(r) {
			continue
		}
		ft.runes = append(ft.runes, unicode.ToLower(r))
		ft.starts = append(ft.starts, i)
	}
	return ft
}

// byteAt maps a folded index to its source byte offset. The index one
// past the last rune maps to the end of the source, so diacritics
// trailing the final base character are carried along.
func (ft foldedText) byteAt(i int) int {
	if i >= len(ft.runes) {
		return ft.srcLen
	}
	return ft.starts[i]
}

// matchRange is a half-open folded-rune interval.
type matchRange struct {
	start, end int
}

// Build returns an excerpt of content with every occurrence of every
// term wrapped in <mark>...</mark>. The window covers up to 240 base
// characters placed around the earliest occurrence, with "..." marking
// truncation on either side. Without a match (or without terms) the
// prefix of the content is returned instead. Empty content yields an
// empty snippet. Build never fails.
func Build(content string, terms []string) string {
	if content == "" {
		return ""
	}

	ft := fold(content)
	matches := findMatches(ft, terms)
	if len(matches) == 0 {
		return prefix(content, ft)
	}

	anchor := matches[0].start
	for _, m := range matches[1:] {
		if m.start < anchor {
			anchor = m.start
		}
	}

	lo := anchor - contextRunes
	if lo < 0 {
		lo = 0
	}
	hi := lo + maxRunes
	if hi > len(ft.runes) {
		hi = len(ft.runes)
	}

	marked := clampAndMerge(matches, lo, hi)

	var b strings.Builder
	if lo > 0 {
		b.WriteString(ellipsis)
	}
	cur := lo
	for _, m := range marked {
		b.WriteString(content[ft.byteAt(cur):ft.byteAt(m.start)])
		b.WriteString(markOpen)
		b.WriteString(content[ft.byteAt(m.start):ft.byteAt(m.end)])
		b.WriteString(markClose)
		cur = m.end
	}
	b.WriteString(content[ft.byteAt(cur):ft.byteAt(hi)])
	if hi < len(ft.runes) {
		b.WriteString(ellipsis)
	}
	return b.String()
}

// findMatches collects every occurrence of every folded term in the
// folded content.
func findMatches(ft foldedText, terms []string) []matchRange {
	var matches []matchRange
	for _, term := range terms {
		folded := []rune(strings.ToLower(hebrew.RemoveDiacritics(term)))
		if len(folded) == 0 {
			continue
		}
		for _, start := range occurrences(ft.runes, folded) {
			matches = append(matches, matchRange{start: start, end: start + len(folded)})
		}
	}
	return matches
}

// occurrences returns every start index of needle in haystack.
func occurrences(haystack, needle []rune) []int {
	var out []int
	for i := 0; i+len(needle) <= len(haystack); i++ {
		found := true
		for j, r := range needle {
			if haystack[i+j] != r {
				found = false
				break
			}
		}
		if found {
			out = append(out, i)
		}
	}
	return out
}

// clampAndMerge clips matches to the window and merges overlapping or
// touching ranges so markers never nest.
func clampAndMerge(matches []matchRange, lo, hi int) []matchRange {
	clipped := make([]matchRange, 0, len(matches))
	for _, m := range matches {
		if m.start < lo {
			m.start = lo
		}
		if m.end > hi {
			m.end = hi
		}
		if m.start < m.end {
			clipped = append(clipped, m)
		}
	}
	if len(clipped) == 0 {
		return nil
	}

	sort.Slice(clipped, func(i, j int) bool {
		if clipped[i].start != clipped[j].start {
			return clipped[i].start < clipped[j].start
		}
		return clipped[i].end > clipped[j].end
	})

	merged := clipped[:1]
	for _, m := range clipped[1:] {
		last := &merged[len(merged)-1]
		if m.start <= last.end {
			if m.end > last.end {
				last.end = m.end
			}
			continue
		}
		merged = append(merged, m)
	}
	return merged
}

// prefix returns up to maxRunes base characters from the start of the
// content, with a trailing ellipsis when truncated.
func prefix(content string, ft foldedText) string {
	if len(ft.runes) <= maxRunes {
		return content
	}
	return content[:ft.byteAt(maxRunes)] + ellipsis
}
