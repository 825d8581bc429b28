package bleve

import (
	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/registry"

	"github.com/sifria-labs/mafteah-cli/internal/hebrew"
)

const (
	// AnalyzerName identifies the Hebrew analyzer in index mappings.
	AnalyzerName = "hebrew"

	// NiqqudFilterName identifies the diacritic removal token filter.
	NiqqudFilterName = "niqqud_remove"
)

// NiqqudFilter removes Hebrew diacritics from each token.
// Tokens left empty are dropped from the stream.
type NiqqudFilter struct{}

// NewNiqqudFilter returns a NiqqudFilter.
func NewNiqqudFilter() *NiqqudFilter {
	return &NiqqudFilter{}
}

// Filter implements analysis.TokenFilter.
func (f *NiqqudFilter) Filter(input analysis.TokenStream) analysis.TokenStream {
	rv := make(analysis.TokenStream, 0, len(input))
	for _, token := range input {
		term := hebrew.RemoveDiacritics(string(token.Term))
		if term == "" {
			continue
		}
		token.Term = []byte(term)
		rv = append(rv, token)
	}
	return rv
}

// NiqqudFilterConstructor builds the filter for the bleve registry.
func NiqqudFilterConstructor(config map[string]interface{}, cache *registry.Cache) (analysis.TokenFilter, error) {
	return NewNiqqudFilter(), nil
}

// markupCharFilter replaces markup tags with spaces before tokenization.
// It delegates to hebrew.StripTags so the indexed terms and the stored
// content agree on what counts as a tag.
type markupCharFilter struct{}

func (markupCharFilter) Filter(input []byte) []byte {
	return []byte(hebrew.StripTags(string(input)))
}

// AnalyzerConstructor assembles the Hebrew analyzer: markup removal,
// Unicode word tokenization, lowercasing, then per-token diacritic
// removal. The same analyzer runs at index time and when match queries
// analyze their text, so corpus and query share one lexical surface.
func AnalyzerConstructor(config map[string]interface{}, cache *registry.Cache) (analysis.Analyzer, error) {
	tokenizer, err := cache.TokenizerNamed(unicode.Name)
	if err != nil {
		return nil, err
	}
	toLower, err := cache.TokenFilterNamed(lowercase.Name)
	if err != nil {
		return nil, err
	}
	niqqud, err := cache.TokenFilterNamed(NiqqudFilterName)
	if err != nil {
		return nil, err
	}
	rv := analysis.DefaultAnalyzer{
		CharFilters:  []analysis.CharFilter{markupCharFilter{}},
		Tokenizer:    tokenizer,
		TokenFilters: []analysis.TokenFilter{toLower, niqqud},
	}
	return &rv, nil
}

func init() {
	registry.RegisterTokenFilter(NiqqudFilterName, NiqqudFilterConstructor)
	registry.RegisterAnalyzer(AnalyzerName, AnalyzerConstructor)
}
