package commands

import (
	"github.com/spf13/cobra"

	"github.com/elev8tion/phoenix"
	"github.com/elev8tion/phoenix/internal/logger"
	"github.com/elev8tion/phoenix/internal/output"
)

// RootCmd creates and returns the root command for the phoenix CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "phoenix",
		Short: "Analyze and rebuild Flutter applications",
		Long: `Phoenix ingests an existing Flutter app (a git repository or a flattened
single-file export), extracts its structure, and regenerates an equivalent
project through modular code generation.

• Analyze architecture, models, screens, widgets, and theme
• Parse flattened single-file exports
• Rebuild a clean project, optionally preserving original files`,
		Version: phoenix.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
			if verbose {
				logger.Default().SetLevel(logger.LevelDebug)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
