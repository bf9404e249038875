package source

import (
	"context"
	"fmt"
	"os"

	"github.com/elev8tion/phoenix/internal/exec"
	"github.com/elev8tion/phoenix/internal/filesystem"
	"github.com/elev8tion/phoenix/internal/logger"
)

// Provider acquires source trees from remote repositories.
type Provider struct {
	exec *exec.Executor
	log  logger.Logger
}

// NewProvider creates a provider using the given command executor.
func NewProvider(executor *exec.Executor) *Provider {
	if executor == nil {
		executor = exec.NewExecutor(nil)
	}
	return &Provider{
		exec: executor,
		log:  logger.Default(),
	}
}

// WithLogger returns a provider that logs through log.
func (p *Provider) WithLogger(log logger.Logger) *Provider {
	return &Provider{exec: p.exec, log: log}
}

// Clone performs a shallow checkout of a remote repository into a fresh
// temporary directory and deep-scans its byte size.
//
// Failures are reported in the result, never returned as an error. On
// success the caller owns the temporary directory and must call Cleanup on
// every terminal path of the pipeline run, or the directory leaks.
func (p *Provider) Clone(ctx context.Context, opts CloneOptions) *CloneResult {
	if opts.URL == "" {
		return &CloneResult{Success: false, Error: "repository URL is required"}
	}

	depth := opts.Depth
	if depth <= 0 {
		depth = 1
	}

	tmpDir, err := os.MkdirTemp("", "phoenix-clone-")
	if err != nil {
		return &CloneResult{Success: false, Error: fmt.Sprintf("creating temp directory: %v", err)}
	}

	args := []string{"clone", "--depth", fmt.Sprintf("%d", depth), "--single-branch"}
	if opts.Branch != "" {
		args = append(args, "--branch", opts.Branch)
	}
	args = append(args, opts.URL, tmpDir)

	p.log.Info("Cloning repository", logger.F("url", opts.URL), logger.F("depth", depth))

	if err := p.exec.RunWithSpinner(ctx, "Cloning "+opts.URL, "git", args...); err != nil {
		// The half-written checkout is useless; remove it before reporting.
		Cleanup(tmpDir)
		return &CloneResult{Success: false, Error: fmt.Sprintf("git clone failed: %v", err)}
	}

	result := &CloneResult{
		Success:   true,
		LocalPath: tmpDir,
		Branch:    opts.Branch,
	}

	repo := exec.NewExecutor(&exec.Options{Dir: tmpDir})
	if branch, err := repo.Output(ctx, "git", "rev-parse", "--abbrev-ref", "HEAD"); err == nil {
		result.Branch = branch
	}
	if commit, err := repo.Output(ctx, "git", "rev-parse", "HEAD"); err == nil {
		result.Commit = commit
	}

	size, err := filesystem.DirSize(tmpDir)
	if err != nil {
		p.log.Warn("Failed to scan clone size", logger.F("error", err))
	}
	result.SizeBytes = size

	p.log.Info("Clone complete",
		logger.F("path", tmpDir),
		logger.F("branch", result.Branch),
		logger.F("bytes", result.SizeBytes))

	return result
}

// Cleanup recursively removes a clone's temporary directory. Safe to call
// with a path that no longer exists.
func Cleanup(path string) error {
	if path == "" {
		return nil
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("removing clone directory %s: %w", path, err)
	}
	return nil
}
