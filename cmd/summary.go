package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Fetches the full profile summary and outputs as JSON",
	Long: `Fetches a user's pinned repositories and aggregate repository
statistics concurrently, combines them with the contribution-graph URL and
outputs a single JSON document. A failing fetch degrades to its empty
section instead of failing the command.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		user, _ := cmd.Flags().GetString("user")
		theme, _ := cmd.Flags().GetString("theme")

		summarizer, logger, err := newSummarizer(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()

		printJSON(summarizer.ProfileSummary(ctx, user, theme))
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringP("user", "u", "", "Target GitHub user name (required)")
	summaryCmd.MarkFlagRequired("user")
	summaryCmd.Flags().String("theme", "dark", "Contribution chart theme: dark or light")
}
