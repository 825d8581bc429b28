package bleve

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
)

// Field names of an indexed line document.
const (
	fieldLineID       = "line_id"
	fieldBookID       = "book_id"
	fieldLineIndex    = "line_index"
	fieldBookTitle    = "book_title"
	fieldCategoryPath = "category_path"
	fieldHeRef        = "he_ref"
	fieldContent      = "content"
	fieldTitleSearch  = "book_title_search"
)

// storedFields lists the fields materialized into search hits.
var storedFields = []string{
	fieldLineID,
	fieldBookID,
	fieldLineIndex,
	fieldBookTitle,
	fieldCategoryPath,
	fieldHeRef,
	fieldContent,
}

// buildIndexMapping defines how line documents are analyzed and stored.
//
// content and book_title_search run through the Hebrew analyzer. The
// book title and category path are indexed verbatim as single terms so
// filters can match them exactly or by wildcard. line_id, line_index
// and he_ref are stored for display only.
func buildIndexMapping() mapping.IndexMapping {
	idxMapping := bleve.NewIndexMapping()
	idxMapping.DefaultAnalyzer = AnalyzerName

	doc := bleve.NewDocumentMapping()
	doc.Dynamic = false

	content := bleve.NewTextFieldMapping()
	content.Analyzer = AnalyzerName
	content.Store = true
	content.Index = true
	doc.AddFieldMappingsAt(fieldContent, content)

	titleSearch := bleve.NewTextFieldMapping()
	titleSearch.Analyzer = AnalyzerName
	titleSearch.Store = false
	titleSearch.Index = true
	doc.AddFieldMappingsAt(fieldTitleSearch, titleSearch)

	exact := bleve.NewTextFieldMapping()
	exact.Analyzer = keyword.Name
	exact.Store = true
	exact.Index = true
	doc.AddFieldMappingsAt(fieldBookTitle, exact)
	doc.AddFieldMappingsAt(fieldCategoryPath, exact)

	display := bleve.NewTextFieldMapping()
	display.Store = true
	display.Index = false
	doc.AddFieldMappingsAt(fieldHeRef, display)

	num := bleve.NewNumericFieldMapping()
	num.Store = true
	num.Index = false
	doc.AddFieldMappingsAt(fieldLineID, num)
	doc.AddFieldMappingsAt(fieldLineIndex, num)

	bookID := bleve.NewNumericFieldMapping()
	bookID.Store = true
	bookID.Index = true
	doc.AddFieldMappingsAt(fieldBookID, bookID)

	idxMapping.DefaultMapping = doc
	return idxMapping
}
