package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"kgraph/internal/application/commands"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the domain tree",
	Long: `Display every domain as a tree with node counts and last activity.

Example:
  kgraph-cli tree`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		result, err := commands.NewListDomainsCommand(GetStore()).Execute(ctx)
		if err != nil {
			return err
		}

		for _, root := range result.Domains {
			fmt.Printf("%s (%d, %s)\n", root.Name, root.Count, relativeAge(root.LastUpdated))
			for _, sub := range root.SubDomains {
				fmt.Printf("  %s (%d, %s)\n", sub.Name, sub.Count, relativeAge(sub.LastUpdated))
			}
		}
		return nil
	},
}

func relativeAge(unix float64) string {
	if unix == 0 {
		return "never"
	}
	age := time.Since(time.Unix(int64(unix), 0))
	switch {
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
