package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kgraph/internal/adapters/sqlite"
	"kgraph/internal/config"
	"kgraph/internal/ports"
)

var (
	dbPath string
	store  *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "kgraph-cli",
	Short: "CLI for inspecting and editing the knowledge graph",
	Long: `kgraph-cli is a command-line interface for the knowledge-graph
database normally served over MCP.

It provides commands to browse domains, inspect nodes and their
neighborhoods, search, and make quick edits without a running server.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		store, err = sqlite.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening %s: %w", dbPath, err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", config.DBPath(), "path to the graph database")
}

// GetStore returns the initialized store
func GetStore() ports.Store {
	return store
}
