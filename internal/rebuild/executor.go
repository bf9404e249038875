package rebuild

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/elev8tion/phoenix/internal/generator"
	"github.com/elev8tion/phoenix/internal/logger"
	"github.com/elev8tion/phoenix/internal/module"
	"github.com/elev8tion/phoenix/internal/project"
	"github.com/elev8tion/phoenix/internal/schema"
)

// Executor drives a rebuild run. Both collaborators are required; the
// executor holds no module knowledge of its own.
type Executor struct {
	engine ProjectEngine
	tools  ToolCaller
	log    logger.Logger
	out    io.Writer
}

// NewExecutor creates an executor with the default logger and discarded
// operation output.
func NewExecutor(engine ProjectEngine, tools ToolCaller) *Executor {
	return &Executor{
		engine: engine,
		tools:  tools,
		log:    logger.Default(),
		out:    io.Discard,
	}
}

// WithLogger replaces the executor's logger and returns the executor.
func (e *Executor) WithLogger(log logger.Logger) *Executor {
	e.log = log
	return e
}

// WithOutput directs per-operation progress lines to w.
func (e *Executor) WithOutput(w io.Writer) *Executor {
	e.out = w
	return e
}

// Rebuild runs the full sequence: create the project record, configure and
// generate each module, write files, then copy preserved files last.
//
// Per-module failures become warnings and the remaining modules still run.
// Only two conditions are fatal: a missing collaborator and an output path
// that cannot be created. Preserved files always win over generated content
// on path collision; each overwrite is recorded as a warning with change
// stats.
func (e *Executor) Rebuild(ctx context.Context, s *schema.RebuildSchema, opts Options) (*Result, error) {
	result := &Result{OutputPath: opts.OutputPath}

	if e.engine == nil || e.tools == nil {
		err := fmt.Errorf("rebuild executor requires a project engine and a tool caller")
		result.Error = err.Error()
		return result, err
	}
	if s == nil {
		err := fmt.Errorf("rebuild executor requires a schema")
		result.Error = err.Error()
		return result, err
	}

	if !opts.DryRun {
		if err := os.MkdirAll(opts.OutputPath, 0755); err != nil {
			err = fmt.Errorf("creating output path: %w", err)
			result.Error = err.Error()
			return result, err
		}
	}

	result.Warnings = append(result.Warnings, s.Warnings...)
	result.ProjectID = uuid.NewString()

	e.log.Info("rebuilding project",
		logger.F("project", s.Project.Name),
		logger.F("id", result.ProjectID),
		logger.F("modules", len(s.Project.Modules)),
	)

	files, err := e.engine.CreateProject(ctx, result.ProjectID, s.Project.Name, s.Project.Architecture)
	if err != nil {
		err = fmt.Errorf("creating project scaffold: %w", err)
		result.Error = err.Error()
		return result, err
	}

	installed := map[string]map[string]any{}
	for _, sel := range s.Project.Modules {
		moduleFiles, warn := e.installModule(ctx, result.ProjectID, sel)
		if warn != "" {
			result.Warnings = append(result.Warnings, warn)
			continue
		}
		files = append(files, moduleFiles...)
		result.ModulesInstalled = append(result.ModulesInstalled, sel.Name)
		installed[sel.Name] = sel.Config
	}

	written, err := e.writeFiles(ctx, files, opts)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}
	result.FilesGenerated = written

	copied, warns, err := e.copyPreserved(ctx, files, opts)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}
	result.FilesCopied = copied
	result.Warnings = append(result.Warnings, warns...)

	if !opts.DryRun {
		if err := e.writeProjectConfig(result.ProjectID, s, installed, opts.OutputPath); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("writing %s: %v", project.ConfigFileName, err))
		}
	}

	result.Success = true
	result.NextSteps = []string{
		fmt.Sprintf("cd %s", opts.OutputPath),
		"flutter pub get",
		"flutter run",
	}
	return result, nil
}

// installModule runs one module's configure and generate tools plus the
// engine's generation hook. A non-empty warning means the module was
// skipped; nothing here is fatal.
func (e *Executor) installModule(ctx context.Context, projectID string, sel schema.ModuleSelection) ([]GeneratedFile, string) {
	entry, ok := module.Lookup(sel.Name)
	if !ok {
		return nil, fmt.Sprintf("module %s: not in catalog, skipped", sel.Name)
	}

	args := map[string]any{"project_id": projectID}
	for k, v := range sel.Config {
		args[k] = v
	}

	if res := e.tools.Call(ctx, entry.ConfigureTool, args); !res.Success {
		return nil, fmt.Sprintf("module %s: configure failed: %s", sel.Name, res.Error)
	}

	if err := e.engine.ApplyModuleConfig(ctx, projectID, sel.Name, sel.Config); err != nil {
		return nil, fmt.Sprintf("module %s: applying config: %v", sel.Name, err)
	}

	if res := e.tools.Call(ctx, entry.GenerateTool, args); !res.Success {
		return nil, fmt.Sprintf("module %s: generate failed: %s", sel.Name, res.Error)
	}

	files, err := e.engine.GenerateFiles(ctx, projectID, sel.Name)
	if err != nil {
		return nil, fmt.Sprintf("module %s: generating files: %v", sel.Name, err)
	}

	e.log.Debug("module installed",
		logger.F("module", sel.Name),
		logger.F("files", len(files)),
	)
	return files, ""
}

// writeFiles materializes generated files under the output root through
// generator operations. Later entries for the same path win.
func (e *Executor) writeFiles(ctx context.Context, files []GeneratedFile, opts Options) (int, error) {
	byPath := map[string]GeneratedFile{}
	for _, f := range files {
		byPath[f.Path] = f
	}
	paths := make([]string, 0, len(byPath))
	for p := range byPath {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	ops := make([]generator.Operation, 0, len(paths))
	for _, p := range paths {
		ops = append(ops, &generator.WriteFileOp{
			Path:    filepath.Join(opts.OutputPath, filepath.FromSlash(p)),
			Content: byPath[p].Content,
			Mode:    0644,
		})
	}

	if err := generator.Execute(ctx, ops, generator.ExecuteOptions{
		DryRun: opts.DryRun,
		Force:  true,
		Writer: e.out,
	}); err != nil {
		return 0, fmt.Errorf("writing generated files: %w", err)
	}
	return len(paths), nil
}

// copyPreserved copies preserved originals into the output root after all
// generated writes, so preserved content always wins. Collisions with
// generated files are reported as warnings with character-level change
// stats.
func (e *Executor) copyPreserved(ctx context.Context, generated []GeneratedFile, opts Options) (int, []string, error) {
	if len(opts.Preserved) == 0 {
		return 0, nil, nil
	}

	generatedByPath := map[string][]byte{}
	for _, f := range generated {
		generatedByPath[f.Path] = f.Content
	}

	var warnings []string
	ops := make([]generator.Operation, 0, len(opts.Preserved))
	for _, pf := range opts.Preserved {
		dst := filepath.Join(opts.OutputPath, filepath.FromSlash(pf.Path))
		ops = append(ops, &generator.CopyFileOp{Src: pf.SrcPath, Dst: dst, Mode: 0644})

		if old, collides := generatedByPath[pf.Path]; collides {
			warnings = append(warnings, overwriteWarning(pf, old))
		}
	}

	if err := generator.Execute(ctx, ops, generator.ExecuteOptions{
		DryRun: opts.DryRun,
		Force:  true,
		Writer: e.out,
	}); err != nil {
		return 0, warnings, fmt.Errorf("copying preserved files: %w", err)
	}
	return len(ops), warnings, nil
}

// overwriteWarning describes a preserved-over-generated collision with
// insert/delete character counts from a text diff.
func overwriteWarning(pf PreservedFile, generated []byte) string {
	preserved, err := os.ReadFile(pf.SrcPath)
	if err != nil {
		return fmt.Sprintf("preserved file %s overwrote generated content", pf.Path)
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(generated), string(preserved), false)

	var inserted, deleted int
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			inserted += len(d.Text)
		case diffmatchpatch.DiffDelete:
			deleted += len(d.Text)
		}
	}
	return fmt.Sprintf("preserved file %s overwrote generated content (+%d/-%d chars)", pf.Path, inserted, deleted)
}

// writeProjectConfig records the rebuilt project's identity and installed
// modules in phoenix.yml at the output root.
func (e *Executor) writeProjectConfig(projectID string, s *schema.RebuildSchema, installed map[string]map[string]any, outputPath string) error {
	cfg := &project.Config{
		Project: project.ProjectConfig{
			ID:           projectID,
			Name:         s.Project.Name,
			Architecture: s.Project.Architecture,
		},
		Modules: map[string]project.ModuleConfig{},
	}
	for name, moduleCfg := range installed {
		cfg.Modules[name] = project.ModuleConfig{Config: moduleCfg}
	}
	return project.Save(outputPath, cfg)
}
