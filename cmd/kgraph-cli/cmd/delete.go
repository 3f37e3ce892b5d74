package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"kgraph/internal/application/commands"
)

var deleteNodeCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a node and its edges",
	Long: `Delete a node. Every edge touching it is removed as well.

Example:
  kgraph-cli delete old-experiment`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		result, err := commands.NewDeleteNodeCommand(GetStore(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", result.Op, result.ID)
		return nil
	},
}

var deleteEdgeCmd = &cobra.Command{
	Use:   "delete-edge <source> <relation> <target>",
	Short: "Delete an edge",
	Long: `Delete an edge by its exact (source, relation, target) key.

Example:
  kgraph-cli delete-edge wireguard-setup depends_on home-router`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		delCmd := commands.NewDeleteEdgeCommand(GetStore(), args[0], args[2], args[1])
		result, err := delCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Op)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteNodeCmd)
	rootCmd.AddCommand(deleteEdgeCmd)
}
