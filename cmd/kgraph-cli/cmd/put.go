package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"kgraph/internal/application"
	"kgraph/internal/application/commands"
	"kgraph/internal/domain"
)

var (
	putNodeType    string
	putNodeSummary string
	putNodeBands   string
	putNodeDomain  string
	putNodeStatus  string
	putNodeNote    string
	putNodeMeta    string
)

var putNodeCmd = &cobra.Command{
	Use:   "put-node <id>",
	Short: "Create or update a node",
	Long: `Upsert a node. Existing nodes are partially merged: flags you omit
leave the stored value unchanged.

Examples:
  kgraph-cli put-node wireguard-setup --type runbook --domain infra.network
  kgraph-cli put-node wireguard-setup --summary "Peer config for the home mesh"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bands, err := application.ParseBands(putNodeBands)
		if err != nil {
			return err
		}
		meta, err := application.ParseMeta(putNodeMeta)
		if err != nil {
			return err
		}

		ctx := context.Background()
		putCmd := commands.NewPutNodeCommand(GetStore(), domain.NodeSpec{
			ID:      args[0],
			Type:    putNodeType,
			Summary: putNodeSummary,
			Bands:   bands,
			Domain:  putNodeDomain,
			Status:  putNodeStatus,
			KaiNote: putNodeNote,
			Meta:    meta,
		})
		result, err := putCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s (domain %s)\n", result.Op, result.ID, result.Domain)
		return nil
	},
}

var (
	putEdgeWeight float64
	putEdgeNote   string
)

var putEdgeCmd = &cobra.Command{
	Use:   "put-edge <source> <relation> <target>",
	Short: "Create or update an edge",
	Long: `Upsert an edge between two existing nodes. Weight and note are
fully replaced.

Example:
  kgraph-cli put-edge wireguard-setup depends_on home-router`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		putCmd := commands.NewPutEdgeCommand(GetStore(), domain.EdgeSpec{
			SourceID: args[0],
			Relation: args[1],
			TargetID: args[2],
			Weight:   putEdgeWeight,
			Note:     putEdgeNote,
		})
		result, err := putCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s -%s-> %s\n", result.Op, result.Source, result.Relation, result.Target)
		return nil
	},
}

func init() {
	putNodeCmd.Flags().StringVar(&putNodeType, "type", "", "node type")
	putNodeCmd.Flags().StringVar(&putNodeSummary, "summary", "", "free-text summary")
	putNodeCmd.Flags().StringVar(&putNodeBands, "bands", "", "JSON array of source references")
	putNodeCmd.Flags().StringVar(&putNodeDomain, "domain", "", "dot-notation domain")
	putNodeCmd.Flags().StringVar(&putNodeStatus, "status", "", "node status")
	putNodeCmd.Flags().StringVar(&putNodeNote, "note", "", "free-text annotation")
	putNodeCmd.Flags().StringVar(&putNodeMeta, "meta", "", "JSON object of extra attributes")
	rootCmd.AddCommand(putNodeCmd)

	putEdgeCmd.Flags().Float64Var(&putEdgeWeight, "weight", 1.0, "salience weight")
	putEdgeCmd.Flags().StringVar(&putEdgeNote, "note", "", "free-text note")
	rootCmd.AddCommand(putEdgeCmd)
}
