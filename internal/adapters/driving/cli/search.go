package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sifria-labs/mafteah-cli/internal/core/domain"
	"github.com/sifria-labs/mafteah-cli/internal/core/services"
)

var (
	searchLimit     int
	searchBook      string
	searchCategory  string
	searchWildcard  bool
	searchIndexPath string
	searchFormat    string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the indexed corpus",
	Long: `Runs a ranked full-text search over the indexed corpus. All terms
must match within a line. Diacritics in the query and the corpus are
ignored, so a bare query matches pointed text and the other way round.

With --wildcard, * matches any run of characters and ? exactly one;
a backslash escapes the next character.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (default 50)")
	searchCmd.Flags().StringVar(&searchBook, "book", "", "restrict results to an exact book title")
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "restrict results to category paths containing this text")
	searchCmd.Flags().BoolVarP(&searchWildcard, "wildcard", "w", false, "treat * and ? in the query as wildcards")
	searchCmd.Flags().StringVar(&searchIndexPath, "index", "", "index path (default ~/.mafteah/index.bleve)")
	searchCmd.Flags().StringVar(&searchFormat, "format", "json", "output format: json or table")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	req := domain.SearchRequest{
		Query:          args[0],
		Limit:          resolveLimit(searchLimit),
		BookFilter:     searchBook,
		CategoryFilter: searchCategory,
		WildcardMode:   searchWildcard,
	}

	// A blank query is answered without opening the index, so it
	// succeeds even before the first build.
	if strings.TrimSpace(req.Query) == "" {
		return outputSearch(cmd, domain.NewSearchResponse(req.Query, 0, 0, nil))
	}

	indexPath, err := resolveIndexPath(searchIndexPath)
	if err != nil {
		return fmt.Errorf("resolving index path: %w", err)
	}

	engine, err := openEngine(indexPath)
	if err != nil {
		return searchError(cmd, req.Query, err)
	}
	defer engine.Close()

	resp, err := services.NewSearchService(engine).Search(cmd.Context(), req)
	if err != nil {
		return searchError(cmd, req.Query, err)
	}

	return outputSearch(cmd, resp)
}

// searchError reports a failed search. In JSON mode the error envelope
// goes to stdout so callers always read exactly one document there; the
// returned error still sets the exit code.
func searchError(cmd *cobra.Command, query string, err error) error {
	if searchFormat == "json" {
		if outErr := outputSearchJSON(cmd, domain.NewErrorResponse(query, err)); outErr != nil {
			return outErr
		}
	}
	return err
}

func outputSearch(cmd *cobra.Command, resp *domain.SearchResponse) error {
	if searchFormat == "table" {
		return outputSearchTable(cmd, resp)
	}
	return outputSearchJSON(cmd, resp)
}

func outputSearchJSON(cmd *cobra.Command, resp *domain.SearchResponse) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling response: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, resp *domain.SearchResponse) error {
	if len(resp.Results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Printf("%d hits in %dms\n", resp.TotalHits, resp.ElapsedMS)

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"#", "Book", "Reference", "Snippet", "Score"})
	for _, hit := range resp.Results {
		ref := hit.HeRef
		if ref == "" {
			ref = fmt.Sprintf("%s %d", hit.BookTitle, hit.LineIndex)
		}
		t.AppendRow(table.Row{hit.Rank, hit.BookTitle, ref, stripMarks(hit.Snippet), fmt.Sprintf("%.3f", hit.Score)})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}

var markReplacer = strings.NewReplacer("<mark>", "", "</mark>", "")

// stripMarks drops highlight tags for plain-terminal display.
func stripMarks(snippet string) string {
	return markReplacer.Replace(snippet)
}
