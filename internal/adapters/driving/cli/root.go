package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/canopy-cli/internal/adapters/driven/config/file"
	"github.com/veldt-labs/canopy-cli/internal/core/domain"
	"github.com/veldt-labs/canopy-cli/internal/core/ports/driven"
	"github.com/veldt-labs/canopy-cli/internal/core/ports/driving"
	"github.com/veldt-labs/canopy-cli/internal/logger"
)

// Build information, set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Services wired in by the composition root. Commands nil-check the ones
// they need so a partially wired binary fails with a clear message.
var (
	indexService   driving.IndexService
	searchService  driving.SearchService
	articleService driving.ArticleService
	configStore    driven.ConfigStore
)

// verbose mirrors the --verbose persistent flag.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "canopy",
	Short: "Semantic search over a markdown content tree",
	Long: `Canopy indexes a directory of markdown articles into SQLite and
searches them by meaning rather than keywords.

Point it at a content tree, pick an embedding provider (a local Ollama
model by default), and every article becomes a vector you can query
from the command line, a TUI, or an MCP-compatible assistant.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	// The composition root prints returned errors once, with the
	// binary name as prefix.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Services aggregates everything the commands drive.
type Services struct {
	Index    driving.IndexService
	Search   driving.SearchService
	Articles driving.ArticleService
	Config   driven.ConfigStore
}

// SetServices wires the services the commands use.
func SetServices(s Services) {
	indexService = s.Index
	searchService = s.Search
	articleService = s.Articles
	configStore = s.Config
}

// SetVersionInfo sets the build information printed by the version command.
func SetVersionInfo(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		date = d
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context, so
// long-running commands stop on cancellation.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// configString reads a config value, tolerating an unwired store.
func configString(key string) string {
	if configStore == nil {
		return ""
	}
	return configStore.GetString(key)
}

// configInt reads an integer config value, tolerating an unwired store.
func configInt(key string) int {
	if configStore == nil {
		return 0
	}
	return configStore.GetInt(key)
}

// configStringSlice reads a list config value, tolerating an unwired store.
func configStringSlice(key string) []string {
	if configStore == nil {
		return nil
	}
	return configStore.GetStringSlice(key)
}

// resolveTable picks the table name: flag, then config, then the
// services' default.
func resolveTable(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return configString(file.KeyTable)
}

// resolveEmbeddingOptions merges flag values over config values. Zero
// fields are left for domain normalisation to fill with defaults. The
// API key only ever comes from the flag or the provider's environment
// variable, never from config.
func resolveEmbeddingOptions(provider string, dimensions int, apiKey string) domain.EmbeddingOptions {
	if provider == "" {
		provider = configString(file.KeyEmbeddingProvider)
	}
	if dimensions <= 0 {
		dimensions = configInt(file.KeyEmbeddingDimensions)
	}

	return domain.EmbeddingOptions{
		Provider:   domain.Provider(strings.ToLower(strings.TrimSpace(provider))),
		APIKey:     apiKey,
		Dimensions: dimensions,
		MaxChars:   configInt(file.KeyEmbeddingMaxChars),
	}
}
