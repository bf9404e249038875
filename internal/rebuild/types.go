// Package rebuild orchestrates regeneration of a project from a rebuild
// schema through injected collaborators: a tool caller for module
// operations and a project engine for scaffolding and file generation.
package rebuild

import "context"

// ToolResult is the structured outcome of one tool invocation. Tool
// failures are values, not errors; the executor decides what is fatal.
type ToolResult struct {
	Success bool
	Output  map[string]any
	Error   string
}

// ToolCaller invokes a named module operation. Implementations must return
// a not-found result for unregistered names rather than an error.
type ToolCaller interface {
	Call(ctx context.Context, name string, args map[string]any) *ToolResult
}

// GeneratedFile is one file produced by the project engine, addressed by a
// POSIX-style path relative to the output root.
type GeneratedFile struct {
	Path    string
	Content []byte
}

// ProjectEngine is the narrow scaffolding contract the executor depends on.
type ProjectEngine interface {
	// CreateProject scaffolds the base project files for a new project id.
	CreateProject(ctx context.Context, projectID, name, architecture string) ([]GeneratedFile, error)

	// ApplyModuleConfig records a module's configuration on the project.
	ApplyModuleConfig(ctx context.Context, projectID, moduleName string, config map[string]any) error

	// GenerateFiles materializes files for one configured module.
	GenerateFiles(ctx context.Context, projectID, moduleName string) ([]GeneratedFile, error)
}

// PreservedFile is an original source file to copy into the output verbatim.
type PreservedFile struct {
	Path    string // relative path inside the output root
	SrcPath string // absolute path of the original file on disk
}

// Options control one rebuild run.
type Options struct {
	OutputPath string
	DryRun     bool
	Preserved  []PreservedFile
}

// Result summarizes a rebuild run.
type Result struct {
	Success          bool
	OutputPath       string
	ProjectID        string
	FilesGenerated   int
	FilesCopied      int
	ModulesInstalled []string
	Warnings         []string
	NextSteps        []string
	Error            string
}
