package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"kgraph/internal/application/commands"
)

var getHops int

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a node and its neighborhood",
	Long: `Show a node with its N-hop neighborhood.

Examples:
  kgraph-cli get wireguard-setup
  kgraph-cli get wireguard-setup --hops 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		result, err := commands.NewNeighborhoodCommand(GetStore(), args[0], getHops).Execute(ctx)
		if err != nil {
			return err
		}

		n := result.Node
		fmt.Printf("%s [%s/%s] %s\n", n.ID, n.Type, n.Status, n.Domain)
		if n.Summary != "" {
			fmt.Printf("  %s\n", n.Summary)
		}
		if n.KaiNote != "" {
			fmt.Printf("  note: %s\n", n.KaiNote)
		}
		if len(result.Edges) > 0 {
			fmt.Println()
			for _, e := range result.Edges {
				fmt.Printf("  %s -%s-> %s\n", e.Source, e.Relation, e.Target)
			}
		}
		return nil
	},
}

func init() {
	getCmd.Flags().IntVar(&getHops, "hops", 1, "neighborhood radius (0-3)")
	rootCmd.AddCommand(getCmd)
}
