package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "agrisync",
	Short: "AgriSync - harvest and demand marketplace backend",
	Long: `AgriSync connects farmers with buyers.

It provides a REST API for registering farmers and buyers, listing harvests
and demands, and matching a demand to the most urgent harvest with a
suggested price.

Run 'agrisync serve' to start the server, 'agrisync import' to load fixtures,
or 'agrisync score' to preview the scoring rules for a date.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(scoreCmd)
}
