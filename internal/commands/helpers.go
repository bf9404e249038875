package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/elev8tion/phoenix/internal/exec"
	"github.com/elev8tion/phoenix/internal/manifest"
	"github.com/elev8tion/phoenix/internal/output"
	"github.com/elev8tion/phoenix/internal/source"
)

// sourceInput is a loaded project snapshot, regardless of input strategy.
type sourceInput struct {
	ProjectName string
	Files       []source.SourceFile
	Meta        *manifest.ProjectMetadata
	LocalPath   string // empty for flattened exports

	cleanup func()
}

// Close releases any temporary resources behind the input. Safe to call
// on every terminal path.
func (in *sourceInput) Close() {
	if in != nil && in.cleanup != nil {
		in.cleanup()
	}
}

// loadSource resolves an input argument into source files plus metadata.
// Three strategies: remote git URL (shallow clone into a temp dir),
// local directory, or flattened single-file export.
func loadSource(ctx context.Context, arg, branch string, depth int) (*sourceInput, error) {
	if isRemoteURL(arg) {
		return loadClone(ctx, arg, branch, depth)
	}

	info, err := os.Stat(arg)
	if err != nil {
		return nil, fmt.Errorf("input %s: %w", arg, err)
	}
	if info.IsDir() {
		return loadDirectory(arg)
	}
	return loadExport(arg)
}

func isRemoteURL(arg string) bool {
	return strings.HasPrefix(arg, "http://") ||
		strings.HasPrefix(arg, "https://") ||
		strings.HasPrefix(arg, "ssh://") ||
		strings.HasPrefix(arg, "git@")
}

func loadClone(ctx context.Context, url, branch string, depth int) (*sourceInput, error) {
	provider := source.NewProvider(exec.NewExecutor(nil))
	result := provider.Clone(ctx, source.CloneOptions{URL: url, Branch: branch, Depth: depth})
	if !result.Success {
		return nil, fmt.Errorf("cloning %s: %s", url, result.Error)
	}

	in, err := loadDirectory(result.LocalPath)
	if err != nil {
		if cleanupErr := source.Cleanup(result.LocalPath); cleanupErr != nil {
			output.Warn(cleanupErr.Error())
		}
		return nil, err
	}

	in.LocalPath = result.LocalPath
	in.cleanup = func() {
		if err := source.Cleanup(result.LocalPath); err != nil {
			output.Warn(err.Error())
		}
	}
	return in, nil
}

func loadDirectory(root string) (*sourceInput, error) {
	files, err := source.CollectSourceFiles(root)
	if err != nil {
		return nil, fmt.Errorf("collecting source files: %w", err)
	}

	in := &sourceInput{Files: files, LocalPath: root}

	meta, err := manifest.ParsePubspec(root)
	switch {
	case err == nil:
		in.Meta = meta
		in.ProjectName = meta.Name
	case errors.Is(err, manifest.ErrPubspecNotFound):
		output.Warn("no pubspec.yaml found, continuing without metadata")
		in.ProjectName = source.DefaultProjectName
	default:
		return nil, fmt.Errorf("parsing pubspec: %w", err)
	}
	return in, nil
}

func loadExport(path string) (*sourceInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading export %s: %w", path, err)
	}

	export := source.ParseExport(string(data))
	in := &sourceInput{
		ProjectName: export.ProjectName,
		Files:       export.Files,
	}

	if pubspec := findPubspec(export); pubspec != nil {
		meta, err := manifest.ParsePubspecBytes([]byte(pubspec.Content))
		if err != nil {
			output.Warn(fmt.Sprintf("malformed pubspec in export: %v", err))
		} else {
			in.Meta = meta
			if meta.Name != "" {
				in.ProjectName = meta.Name
			}
		}
	} else {
		output.Warn("export has no pubspec.yaml, continuing without metadata")
	}
	return in, nil
}

// findPubspec locates the manifest in an export, tolerating a project-name
// prefix on the recorded paths.
func findPubspec(export *source.Export) *source.SourceFile {
	if f := export.Find("pubspec.yaml"); f != nil {
		return f
	}
	for i := range export.Files {
		if strings.HasSuffix(export.Files[i].Path, "/pubspec.yaml") {
			return &export.Files[i]
		}
	}
	return nil
}
