package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "platform-service",
	Short: "Platform service: auth, catalog, subscriptions, uploads, streaming, notifications",
	Long:  `HTTP + WebSocket API. Commands: api, seed.`,
	RunE:  runAPI, // default: run API (same as "platform-service api")
}

func init() {
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(seedCmd)
}

// Execute runs the root command and returns the error (for main to log.Fatal).
func Execute() error {
	return rootCmd.Execute()
}
