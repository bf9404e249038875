package main

import (
	"os"

	"github.com/elev8tion/phoenix/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.AnalyzeCmd())
	rootCmd.AddCommand(commands.ParseCmd())
	rootCmd.AddCommand(commands.RebuildCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
