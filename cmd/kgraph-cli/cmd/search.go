package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"kgraph/internal/application/commands"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search nodes",
	Long: `Substring search over node id, summary, note and meta.

Examples:
  kgraph-cli search wireguard
  kgraph-cli search dns --limit 25`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		result, err := commands.NewSearchNodesCommand(GetStore(), args[0], searchLimit).Execute(ctx)
		if err != nil {
			return err
		}

		if result.Count == 0 {
			fmt.Println("No results found")
			return nil
		}
		for _, n := range result.Nodes {
			fmt.Printf("[%s] %s  %s\n", n.Type, n.ID, n.Summary)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "maximum results")
	rootCmd.AddCommand(searchCmd)
}
