package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/canopy-cli/internal/adapters/driven/config/file"
	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

var (
	indexTable      string
	indexProvider   string
	indexDimensions int
	indexAPIKey     string
	indexExtensions []string
	indexExclude    []string
)

var indexCmd = &cobra.Command{
	Use:   "index [path]",
	Short: "Index a content tree",
	Long: `Walks a directory of markdown files and rebuilds the article table
from what it finds. Each file is parsed for front-matter, embedded, and
stored; the previous contents of the table are replaced wholesale.

The path argument falls back to the content_path setting. Remote
providers read their API key from --api-key or the provider's
environment variable (GEMINI_API_KEY, OPENAI_API_KEY).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringVarP(&indexTable, "table", "t", "", "destination table (default from config)")
	indexCmd.Flags().StringVarP(&indexProvider, "provider", "p", "", "embedding provider: local, gemini or openai")
	indexCmd.Flags().IntVarP(&indexDimensions, "dimensions", "d", 0, "embedding dimensions")
	indexCmd.Flags().StringVar(&indexAPIKey, "api-key", "", "API key for remote providers")
	indexCmd.Flags().StringSliceVar(&indexExtensions, "ext", nil, "file extensions to collect")
	indexCmd.Flags().StringSliceVar(&indexExclude, "exclude", nil, "directory names to skip")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	path, err := resolveContentPath(args)
	if err != nil {
		return err
	}

	opts := domain.IndexOptions{
		ContentPath: path,
		Extensions:  resolveExtensions(indexExtensions),
		Exclude:     resolveExcludes(indexExclude),
		Table:       resolveTable(indexTable),
		Embedding:   resolveEmbeddingOptions(indexProvider, indexDimensions, indexAPIKey),
		OnProgress: func(current, total int, _ string) {
			cmd.Printf("\rIndexing... %d/%d", current, total)
		},
	}

	cmd.Printf("Indexing %s\n", path)

	summary, err := indexService.Index(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("index failed: %w", err)
	}

	if summary.Total == 0 {
		cmd.Println("No content files found.")
		return nil
	}

	cmd.Printf("\rIndexed %d/%d articles (%d failed)\n", summary.Success, summary.Total, summary.Failed)
	if summary.Failed > 0 {
		cmd.Println("Run with --verbose to see what failed.")
	}
	return nil
}

// resolveContentPath picks the content root: argument, then config.
func resolveContentPath(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if path := configString(file.KeyContentPath); path != "" {
		return path, nil
	}
	return "", errors.New("content path required: pass it as an argument or set content_path with 'canopy settings set'")
}

// resolveExtensions picks the scan extensions: flag, then config. Empty
// falls through to the domain defaults.
func resolveExtensions(flagValue []string) []string {
	if len(flagValue) > 0 {
		return flagValue
	}
	return configStringSlice(file.KeyExtensions)
}

// resolveExcludes picks the skipped directory names: flag, then config.
func resolveExcludes(flagValue []string) []string {
	if len(flagValue) > 0 {
		return flagValue
	}
	return configStringSlice(file.KeyExclude)
}
