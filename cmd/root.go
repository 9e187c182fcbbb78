// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pri1712/github-summary/internal/config"
	"github.com/pri1712/github-summary/internal/gateway"
	"github.com/pri1712/github-summary/internal/usecase"
)

var rootCmd = &cobra.Command{
	Use:   "github-summary",
	Short: "A CLI tool to summarize a GitHub user's public profile.",
	Long: `github-summary fetches a user's pinned repositories and aggregate
repository statistics from the GitHub GraphQL API and prints them as JSON.
Set GITHUB_TOKEN to raise the API rate limits; without it, requests run
unauthenticated.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}

// newLogger builds the logger for a command invocation. Quiet by default so
// the JSON output stays clean; verbose switches to the development config
// writing to standard error.
func newLogger(cmd *cobra.Command) *zap.Logger {
	verbose, _ := cmd.InheritedFlags().GetBool("verbose")
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// newSummarizer wires configuration, gateway and use case for a command.
func newSummarizer(cmd *cobra.Command) (*usecase.Summarizer, *zap.Logger, error) {
	logger := newLogger(cmd)
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	githubGateway := gateway.NewGitHubGateway(cfg.GitHubToken, logger)
	return usecase.NewSummarizer(githubGateway, logger), logger, nil
}

// printJSON marshals v as pretty-printed JSON to standard output.
func printJSON(v interface{}) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to marshal results to JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(jsonData))
}
