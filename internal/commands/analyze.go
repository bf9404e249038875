package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elev8tion/phoenix/internal/analyzer"
	"github.com/elev8tion/phoenix/internal/output"
)

// AnalyzeCmd creates and returns the 'analyze' command
func AnalyzeCmd() *cobra.Command {
	var branch string
	var depth int

	cmd := &cobra.Command{
		Use:   "analyze [path|export-file|git-url]",
		Short: "Analyze a Flutter project's structure",
		Long: `Analyzes a Flutter project and reports its architecture style, data
models, screens, widgets, and theme.

The input may be a local project directory, a flattened single-file
export, or a remote git URL (shallow-cloned into a temporary directory).

Example:
  phoenix analyze ./my_app
  phoenix analyze export.txt
  phoenix analyze https://github.com/user/app.git --branch main`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			in, err := loadSource(cmd.Context(), args[0], branch, depth)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			defer in.Close()

			analysis := analyzer.New().Analyze(in.Files, in.Meta)
			printAnalysis(in.ProjectName, analysis)
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "", "Branch to clone (git URLs only)")
	cmd.Flags().IntVar(&depth, "depth", 1, "Clone depth (git URLs only)")

	return cmd
}

func printAnalysis(name string, analysis *analyzer.ProjectAnalysis) {
	output.Success(fmt.Sprintf("Analyzed %s", name))
	output.Info(fmt.Sprintf("Architecture: %s (confidence %.2f)",
		analysis.Architecture.Detected, analysis.Architecture.Confidence))
	output.Verbose(analysis.Architecture.Reasoning)

	output.Info(fmt.Sprintf("Files: %d total, %d Dart, %d lines",
		analysis.Stats.TotalFiles, analysis.Stats.DartFiles, analysis.Stats.TotalLines))

	if analysis.Metadata != nil {
		p := analysis.Metadata.Profile
		output.Info(fmt.Sprintf("Stack: state=%s persistence=%s networking=%s navigation=%s",
			p.StateManagement, p.Persistence, p.Networking, p.Navigation))
	}

	output.Info(fmt.Sprintf("Models: %d", len(analysis.Models)))
	for _, m := range analysis.Models {
		output.Step(fmt.Sprintf("%s (%d fields)", m.Name, len(m.Fields)))
	}

	output.Info(fmt.Sprintf("Screens: %d", len(analysis.Screens)))
	for _, s := range analysis.Screens {
		output.Step(fmt.Sprintf("%s -> %s", s.Name, s.Route))
	}

	output.Info(fmt.Sprintf("Widgets: %d", len(analysis.Widgets)))
	for _, w := range analysis.Widgets {
		output.Step(fmt.Sprintf("%s (%s, %d props)", w.Name, w.Kind, len(w.Props)))
	}

	if analysis.Theme != nil && analysis.Theme.ThemeFilePath != "" {
		output.Info(fmt.Sprintf("Theme: %s", analysis.Theme.ThemeFilePath))
	}
}
