package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregates a user's repository statistics and outputs as JSON",
	Long: `Aggregates the user's owned repositories into total stars, total
repository count and the top three primary languages. Star and language
figures cover the user's 100 most-starred repositories; the repository
count is the server-reported total. On any fetch failure the result is
the zero-valued summary; run with --verbose to see the reason.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		user, _ := cmd.Flags().GetString("user")

		summarizer, logger, err := newSummarizer(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()

		printJSON(summarizer.StatsOrZero(ctx, user))
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringP("user", "u", "", "Target GitHub user name (required)")
	statsCmd.MarkFlagRequired("user")
}
