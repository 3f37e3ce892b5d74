package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show graph statistics",
	Long: `Show node and edge counts, session state and recent documents.

Reads the store directly; unlike kg_boot this does not advance the
session counter.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := GetStore()

		domains, err := store.DomainList()
		if err != nil {
			return err
		}
		nodeCount := 0
		for _, d := range domains {
			nodeCount += d.Count
		}
		edgeCount, err := store.EdgeCount()
		if err != nil {
			return err
		}
		state, err := store.State()
		if err != nil {
			return err
		}
		docs, err := store.RecentDocuments(5)
		if err != nil {
			return err
		}

		fmt.Printf("nodes:   %d (in %d domains)\n", nodeCount, len(domains))
		fmt.Printf("edges:   %d\n", edgeCount)
		if focus := state["focus"]; focus != "" {
			fmt.Printf("focus:   %s\n", focus)
		}
		fmt.Printf("session: %s\n", state["session_count"])
		if len(docs) > 0 {
			fmt.Println("\nrecent documents:")
			for _, d := range docs {
				fmt.Printf("  [%s] s%d %s (%d chars)\n", d.ID, d.SessionNumber, d.Title, d.Length)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
