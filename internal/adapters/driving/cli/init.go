package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/canopy-cli/internal/adapters/driven/config/file"
	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

var (
	initTable      string
	initDimensions int
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the article table",
	Long: `Creates the article table and its indexes in the database.

Indexing creates the table on demand, so running init is only needed
when you want the schema in place before the first index run, for
example to point other tooling at the database.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initTable, "table", "t", "", "table name (default from config)")
	initCmd.Flags().IntVarP(&initDimensions, "dimensions", "d", 0, "embedding dimensions the table stores")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	table := resolveTable(initTable)
	if table == "" {
		table = domain.DefaultTable
	}

	dimensions := initDimensions
	if dimensions <= 0 {
		dimensions = configInt(file.KeyEmbeddingDimensions)
	}
	if dimensions <= 0 {
		dimensions = domain.DefaultDimensions
	}

	if err := indexService.EnsureTable(cmd.Context(), table, dimensions); err != nil {
		return fmt.Errorf("init failed: %w", err)
	}

	cmd.Printf("Table %s ready (%d dimensions).\n", table, dimensions)
	return nil
}
