package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/elev8tion/phoenix/internal/filesystem"
)

// CollectSourceFiles loads the analyzable files of a checked-out project
// into memory: every .dart file plus pubspec.yaml, with POSIX-style paths
// relative to root.
//
// A file that cannot be read is skipped; one unreadable file must not abort
// the run.
func CollectSourceFiles(root string) ([]SourceFile, error) {
	var files []SourceFile

	err := filesystem.Walk(root, filesystem.WalkOptions{}, func(path string, info os.FileInfo) error {
		if info.IsDir() {
			return nil
		}

		name := info.Name()
		if !strings.HasSuffix(name, ".dart") && name != "pubspec.yaml" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		files = append(files, SourceFile{
			Path:    filepath.ToSlash(rel),
			Content: string(data),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collecting source files: %w", err)
	}

	return files, nil
}
