package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elev8tion/phoenix/internal/output"
	"github.com/elev8tion/phoenix/internal/source"
)

// ParseCmd creates and returns the 'parse' command
func ParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [export-file]",
		Short: "Parse a flattened single-file export",
		Long: `Parses a flattened export and lists the files it contains.

Example:
  phoenix parse export.txt`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			data, err := os.ReadFile(args[0])
			if err != nil {
				output.Error(fmt.Sprintf("reading export: %v", err))
				os.Exit(1)
			}

			export := source.ParseExport(string(data))
			output.Success(fmt.Sprintf("Parsed export: %s (%d files, %d Dart)",
				export.ProjectName, len(export.Files), len(export.DartFiles)))
			for _, f := range export.Files {
				output.Step(fmt.Sprintf("%s (%d bytes)", f.Path, len(f.Content)))
			}
		},
	}

	return cmd
}
