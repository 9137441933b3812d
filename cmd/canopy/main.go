// Command canopy indexes a markdown content tree into SQLite and serves
// semantic search over it through a CLI, a TUI, and an MCP server.
//
// Configuration lives at ~/.canopy/config.toml and the database at
// ~/.canopy/data/canopy.db unless database_path says otherwise. Remote
// embedding providers read their API keys from GEMINI_API_KEY or
// OPENAI_API_KEY, never from the config file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/veldt-labs/canopy-cli/internal/adapters/driven/config/file"
	"github.com/veldt-labs/canopy-cli/internal/adapters/driven/embedding"
	"github.com/veldt-labs/canopy-cli/internal/adapters/driven/storage/sqlite"
	"github.com/veldt-labs/canopy-cli/internal/adapters/driving/cli"
	"github.com/veldt-labs/canopy-cli/internal/connectors/filesystem"
	"github.com/veldt-labs/canopy-cli/internal/core/services"
	"github.com/veldt-labs/canopy-cli/internal/normalisers/frontmatter"
)

// Build information, injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "canopy: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	store, err := sqlite.NewStore(configStore.GetString(file.KeyDatabasePath))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	factory := embedding.NewFactory(embedding.Config{
		OllamaURL:   configStore.GetString(file.KeyEmbeddingOllamaURL),
		OllamaModel: configStore.GetString(file.KeyEmbeddingOllamaModel),
		GeminiURL:   configStore.GetString(file.KeyEmbeddingGeminiURL),
		OpenAIURL:   configStore.GetString(file.KeyEmbeddingOpenAIURL),
	})

	cli.SetServices(cli.Services{
		Index:    services.NewIndexerService(filesystem.NewWalker(), frontmatter.New(), store, factory),
		Search:   services.NewSearchService(store, factory),
		Articles: services.NewArticleService(store),
		Config:   configStore,
	})
	cli.SetVersionInfo(version, commit, date)

	return cli.ExecuteContext(ctx)
}
