// Package query compiles search requests into the backend-neutral
// query tree the engine executes.
//
// Two modes share one classification walk. In the default mode every
// whitespace-separated token is a required literal term, matched
// through the analyzer, so the compiled query is always a conjunction
// of literal term queries on content. In wildcard mode, diacritics are
// removed up front and each ASCII-space-separated term is classified
// character by character: backslash escapes the next character,
// unescaped * and ? are wildcard operators, everything else is a
// regular character. Wildcard terms compile to anchored regular
// expressions over the indexed term surface (lowercased,
// diacritic-free); leading wildcards are permitted. A term with
// wildcards but no regular characters is rejected.
package query
