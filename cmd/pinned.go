package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var pinnedCmd = &cobra.Command{
	Use:   "pinned",
	Short: "Lists a user's pinned repositories as JSON",
	Long: `Fetches the repositories a user pinned on their profile (at most six)
and outputs them in JSON format. On any fetch failure the result is an
empty list; run with --verbose to see the reason.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		user, _ := cmd.Flags().GetString("user")

		summarizer, logger, err := newSummarizer(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()

		printJSON(summarizer.PinnedReposOrEmpty(ctx, user))
	},
}

func init() {
	rootCmd.AddCommand(pinnedCmd)
	pinnedCmd.Flags().StringP("user", "u", "", "Target GitHub user name (required)")
	pinnedCmd.MarkFlagRequired("user")
}
