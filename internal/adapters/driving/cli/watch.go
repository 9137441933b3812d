package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/canopy-cli/internal/connectors/filesystem"
	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

var (
	watchTable      string
	watchProvider   string
	watchDimensions int
	watchAPIKey     string
	watchExtensions []string
	watchExclude    []string
	watchDebounce   time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Watch a content tree and re-index on change",
	Long: `Indexes the content tree, then watches it for changes. Edits are
debounced and each burst triggers a full re-index, so the table always
reflects the tree as a whole.

Runs until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchTable, "table", "t", "", "destination table (default from config)")
	watchCmd.Flags().StringVarP(&watchProvider, "provider", "p", "", "embedding provider: local, gemini or openai")
	watchCmd.Flags().IntVarP(&watchDimensions, "dimensions", "d", 0, "embedding dimensions")
	watchCmd.Flags().StringVar(&watchAPIKey, "api-key", "", "API key for remote providers")
	watchCmd.Flags().StringSliceVar(&watchExtensions, "ext", nil, "file extensions to collect")
	watchCmd.Flags().StringSliceVar(&watchExclude, "exclude", nil, "directory names to skip")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 2*time.Second, "quiet period before re-indexing")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	path, err := resolveContentPath(args)
	if err != nil {
		return err
	}

	opts := domain.IndexOptions{
		ContentPath: path,
		Extensions:  resolveExtensions(watchExtensions),
		Exclude:     resolveExcludes(watchExclude),
		Table:       resolveTable(watchTable),
		Embedding:   resolveEmbeddingOptions(watchProvider, watchDimensions, watchAPIKey),
	}

	ctx := cmd.Context()

	// Index once before watching so the table starts in sync.
	summary, err := indexService.Index(ctx, opts)
	if err != nil {
		return fmt.Errorf("initial index failed: %w", err)
	}
	cmd.Printf("Indexed %d/%d articles (%d failed)\n", summary.Success, summary.Total, summary.Failed)

	normalised := opts.Normalised()
	watcher, err := filesystem.NewWatcher(path, normalised.Extensions, normalised.Exclude)
	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	defer watcher.Close()

	events, err := watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}

	cmd.Printf("Watching %s (debounce %s). Press Ctrl+C to stop.\n", path, watchDebounce)

	changed := 0
	var debounced <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			changed++
			cmd.Printf("  %s %s\n", ev.Op, ev.RelPath)
			debounced = time.After(watchDebounce)

		case <-debounced:
			debounced = nil
			cmd.Printf("Re-indexing after %d changes...\n", changed)
			changed = 0

			summary, err := indexService.Index(ctx, opts)
			if err != nil {
				// A broken run keeps the watch alive; the next change
				// triggers another attempt.
				cmd.Printf("Re-index failed: %v\n", err)
				continue
			}
			cmd.Printf("Indexed %d/%d articles (%d failed)\n", summary.Success, summary.Total, summary.Failed)
		}
	}
}
