package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

var (
	searchLimit      int
	searchJSON       bool
	searchTable      string
	searchProvider   string
	searchDimensions int
	searchAPIKey     string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search indexed articles",
	Long: `Embeds the query and ranks stored articles by cosine distance,
closest first.

Results only carry meaning when the provider and dimensions match what
the articles were indexed with; both default to the same config values
the index command uses.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().StringVarP(&searchTable, "table", "t", "", "table to query (default from config)")
	searchCmd.Flags().StringVarP(&searchProvider, "provider", "p", "", "embedding provider: local, gemini or openai")
	searchCmd.Flags().IntVarP(&searchDimensions, "dimensions", "d", 0, "embedding dimensions")
	searchCmd.Flags().StringVar(&searchAPIKey, "api-key", "", "API key for remote providers")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	opts := domain.SearchOptions{
		Limit:     searchLimit,
		Table:     resolveTable(searchTable),
		Embedding: resolveEmbeddingOptions(searchProvider, searchDimensions, searchAPIKey),
	}

	results, err := searchService.Search(cmd.Context(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.RankedArticle) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.RankedArticle) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		cmd.Printf("  [%d] %s (distance %.3f)\n", i+1, results[i].Title, results[i].Distance)
		cmd.Printf("      %s\n", results[i].Slug)
		if len(results[i].Tags) > 0 {
			cmd.Printf("      tags: %s\n", strings.Join(results[i].Tags, ", "))
		}
		cmd.Println()
	}

	return nil
}
