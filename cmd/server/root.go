package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "farmbase",
	Short: "Farmbase - farm management backend",
	Long: `Farmbase is a backend for tracking farms and their tasks.

It provides a REST API with account registration, email verification,
password reset and ownership-scoped CRUD over farms and nested tasks.

Run 'farmbase serve' to start the server, or 'farmbase seed' to load
demo data.`,
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
	rootCmd.AddCommand(seedCmd)
}
