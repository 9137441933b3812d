package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/veldt-labs/canopy-cli/internal/adapters/driving/tui"
)

var (
	tuiTable      string
	tuiProvider   string
	tuiDimensions int
	tuiAPIKey     string
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive search UI",
	Long: `Launch the interactive terminal user interface for Canopy.

Type a query and press Enter to search; results update in place.

Controls:
  ↑/k, ↓/j - Navigate results
  Enter    - Search / Open result
  Esc      - Back to the query
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiTable, "table", "t", "", "table to query (default from config)")
	tuiCmd.Flags().StringVarP(&tuiProvider, "provider", "p", "", "embedding provider: local, gemini or openai")
	tuiCmd.Flags().IntVarP(&tuiDimensions, "dimensions", "d", 0, "embedding dimensions")
	tuiCmd.Flags().StringVar(&tuiAPIKey, "api-key", "", "API key for remote providers")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery keeps a readable stack when the terminal is in the
	// alternate screen.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Search:   searchService,
		Articles: articleService,
	}

	app, err := tui.NewApp(ports, tui.Options{
		Table:     resolveTable(tuiTable),
		Embedding: resolveEmbeddingOptions(tuiProvider, tuiDimensions, tuiAPIKey),
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
