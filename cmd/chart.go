package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pri1712/github-summary/internal/domain"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Prints the contribution-graph image URL for a user",
	Long: `Builds the URL of the external contribution-graph image for a user.
No network call is made; the URL is only formatted.`,
	Run: func(cmd *cobra.Command, args []string) {
		user, _ := cmd.Flags().GetString("user")
		theme, _ := cmd.Flags().GetString("theme")
		fmt.Println(domain.ContributionChartURL(user, theme))
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.Flags().StringP("user", "u", "", "Target GitHub user name (required)")
	chartCmd.MarkFlagRequired("user")
	chartCmd.Flags().String("theme", "dark", "Chart theme: dark or light")
}
