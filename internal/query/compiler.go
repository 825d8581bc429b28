package query

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/sifria-labs/mafteah-cli/internal/core/domain"
	"github.com/sifria-labs/mafteah-cli/internal/hebrew"
)

// Compile translates a search request into a domain.Query. Blank
// queries are the caller's concern: the service answers them without
// invoking the compiler. A request whose every token is dropped (no
// letter or digit survives analysis) compiles to a query with no
// terms, which the service also answers as empty.
//
// Returns domain.ErrInvalidRequest for a wildcard term with no regular
// characters, naming the offending term.
func Compile(req domain.SearchRequest) (domain.Query, error) {
	var (
		q   domain.Query
		err error
	)

	if req.WildcardMode {
		q.Terms, err = compileWildcard(req.Query)
		if err != nil {
			return domain.Query{}, err
		}
	} else {
		q.Terms = compileDefault(req.Query)
	}

	if strings.TrimSpace(req.BookFilter) != "" {
		q.BookFilter = req.BookFilter
	}
	if strings.TrimSpace(req.CategoryFilter) != "" {
		q.CategoryFilter = req.CategoryFilter
	}
	return q, nil
}

// compileDefault treats every token as literal text. Tokens that
// would analyse to nothing (no letter or digit) are dropped, exactly
// as the analyzer would drop them, so the remaining conjunction is
// never poisoned by an unmatchable clause.
func compileDefault(text string) []domain.QueryTerm {
	fields := strings.Fields(text)
	terms := make([]domain.QueryTerm, 0, len(fields))
	for _, tok := range fields {
		if !hasTermRune(tok) {
			continue
		}
		terms = append(terms, domain.QueryTerm{Text: tok, Plain: tok})
	}
	return terms
}

// compileWildcard removes diacritics from the whole query, splits on
// ASCII space, and classifies each term.
func compileWildcard(text string) ([]domain.QueryTerm, error) {
	text = hebrew.RemoveDiacritics(text)

	var terms []domain.QueryTerm
	for _, raw := range strings.Split(text, " ") {
		if raw == "" {
			continue
		}
		term, keep, err := classifyTerm(raw)
		if err != nil {
			return nil, err
		}
		if keep {
			terms = append(terms, term)
		}
	}
	return terms, nil
}

// classifyTerm walks one wildcard-mode term. Backslash escapes the
// next character (a lone trailing backslash is a literal backslash);
// unescaped * and ? are wildcard operators; everything else, escaped
// wildcards included, is a regular character.
//
// Terms without operators stay literal. Terms with operators become
// anchored regexps: literal runs are case-folded and quoted, * maps to
// .* and ? to a single dot, so patterns match the lowercased,
// diacritic-free term surface the index stores.
func classifyTerm(raw string) (domain.QueryTerm, bool, error) {
	var (
		pattern   strings.Builder
		literals  strings.Builder
		run       strings.Builder
		wildcards bool
	)

	flushRun := func() {
		if run.Len() > 0 {
			pattern.WriteString(regexp.QuoteMeta(strings.ToLower(run.String())))
			run.Reset()
		}
	}

	escaped := false
	for _, r := range raw {
		switch {
		case escaped:
			run.WriteRune(r)
			literals.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '*':
			flushRun()
			pattern.WriteString(".*")
			wildcards = true
		case r == '?':
			flushRun()
			pattern.WriteString(".")
			wildcards = true
		default:
			run.WriteRune(r)
			literals.WriteRune(r)
		}
	}
	if escaped {
		run.WriteRune('\\')
		literals.WriteRune('\\')
	}

	if !wildcards {
		plain := literals.String()
		if !hasTermRune(plain) {
			return domain.QueryTerm{}, false, nil
		}
		return domain.QueryTerm{Text: raw, Plain: plain}, true, nil
	}

	if literals.Len() == 0 {
		return domain.QueryTerm{}, false, fmt.Errorf(
			"%w: wildcard term %q has no regular characters", domain.ErrInvalidRequest, raw)
	}
	flushRun()
	return domain.QueryTerm{
		Text:   raw,
		Regexp: pattern.String(),
		Plain:  literals.String(),
	}, true, nil
}

// hasTermRune reports whether the analyzer keeps anything of s: at
// least one letter or digit survives tokenisation.
func hasTermRune(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}
