package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/elev8tion/phoenix/internal/analyzer"
	"github.com/elev8tion/phoenix/internal/engine"
	"github.com/elev8tion/phoenix/internal/output"
	"github.com/elev8tion/phoenix/internal/rebuild"
	"github.com/elev8tion/phoenix/internal/schema"
)

// RebuildCmd creates and returns the 'rebuild' command
func RebuildCmd() *cobra.Command {
	var (
		branch     string
		depth      int
		outputDir  string
		configFile string
		dryRun     bool
		preserve   []string
		enable     []string
		disable    []string
	)

	cmd := &cobra.Command{
		Use:   "rebuild [path|export-file|git-url]",
		Short: "Rebuild a Flutter project from its analyzed structure",
		Long: `Runs the full pipeline: ingest, analyze, build a rebuild schema, and
regenerate an equivalent project in the output directory.

Options may come from flags or from a YAML config file (--config):

  project_name: my_app
  architecture: keep
  keep_models: true
  modules:
    security: true

Example:
  phoenix rebuild ./legacy_app --output ./rebuilt
  phoenix rebuild export.txt --output ./rebuilt --preserve lib/main.dart`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			opts, err := loadRebuildOptions(cmd, configFile, enable, disable)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			in, err := loadSource(cmd.Context(), args[0], branch, depth)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			defer in.Close()

			analysis := analyzer.New().Analyze(in.Files, in.Meta)
			s := schema.Build(analysis, opts)

			registry := rebuild.NewRegistry()
			engine.RegisterDefaultTools(registry)
			executor := rebuild.NewExecutor(engine.New(), registry)

			result, err := executor.Rebuild(cmd.Context(), s, rebuild.Options{
				OutputPath: outputDir,
				DryRun:     dryRun,
				Preserved:  preservedFiles(in, preserve),
			})
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			printResult(result)
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "", "Branch to clone (git URLs only)")
	cmd.Flags().IntVar(&depth, "depth", 1, "Clone depth (git URLs only)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "rebuilt", "Output directory for the rebuilt project")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Rebuild options file (YAML)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be generated without writing")
	cmd.Flags().StringSliceVar(&preserve, "preserve", nil, "Original files to copy into the output verbatim (relative paths)")
	cmd.Flags().StringSliceVar(&enable, "enable", nil, "Force-enable feature modules")
	cmd.Flags().StringSliceVar(&disable, "disable", nil, "Force-disable feature modules")
	cmd.Flags().String("name", "", "Override the rebuilt project name")
	cmd.Flags().String("architecture", "keep", "Target architecture style, or 'keep'")
	cmd.Flags().Bool("keep-models", false, "Carry analyzed models forward instead of regenerating")
	cmd.Flags().Bool("keep-screens", false, "Carry analyzed screen structure forward")

	return cmd
}

// loadRebuildOptions merges the optional config file with flags. Flags win
// over file values; --enable/--disable win over the file's modules map.
func loadRebuildOptions(cmd *cobra.Command, configFile string, enable, disable []string) (schema.Options, error) {
	v := viper.New()
	v.SetDefault("architecture", schema.ArchitectureKeep)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return schema.Options{}, fmt.Errorf("reading config %s: %w", configFile, err)
		}
	}

	bindings := map[string]string{
		"project_name": "name",
		"architecture": "architecture",
		"keep_models":  "keep-models",
		"keep_screens": "keep-screens",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return schema.Options{}, fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}

	var opts schema.Options
	if err := v.Unmarshal(&opts); err != nil {
		return schema.Options{}, fmt.Errorf("parsing rebuild options: %w", err)
	}

	if len(enable)+len(disable) > 0 && opts.Modules == nil {
		opts.Modules = map[string]bool{}
	}
	for _, name := range enable {
		opts.Modules[name] = true
	}
	for _, name := range disable {
		opts.Modules[name] = false
	}
	return opts, nil
}

// preservedFiles resolves --preserve paths against the input's local
// checkout. Export inputs have no files on disk to copy from.
func preservedFiles(in *sourceInput, preserve []string) []rebuild.PreservedFile {
	if len(preserve) == 0 {
		return nil
	}
	if in.LocalPath == "" {
		output.Warn("--preserve requires a local or cloned project, ignoring")
		return nil
	}

	files := make([]rebuild.PreservedFile, 0, len(preserve))
	for _, rel := range preserve {
		files = append(files, rebuild.PreservedFile{
			Path:    filepath.ToSlash(rel),
			SrcPath: filepath.Join(in.LocalPath, filepath.FromSlash(rel)),
		})
	}
	return files
}

func printResult(result *rebuild.Result) {
	output.Success(fmt.Sprintf("Rebuilt project %s", result.ProjectID))
	output.Info(fmt.Sprintf("Output: %s", result.OutputPath))
	output.Info(fmt.Sprintf("Files: %d generated, %d preserved", result.FilesGenerated, result.FilesCopied))
	if len(result.ModulesInstalled) > 0 {
		output.Info(fmt.Sprintf("Modules: %v", result.ModulesInstalled))
	}
	output.Warnings(result.Warnings)

	if len(result.NextSteps) > 0 {
		output.Info("Next steps:")
		for _, step := range result.NextSteps {
			output.Step(step)
		}
	}
}
