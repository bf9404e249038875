package filesystem

import (
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// DirSize deep-scans a directory and returns its total byte size.
//
// Files matched by the repository's .gitignore (if present) are excluded, so
// the reported size reflects the tracked source tree rather than build
// artifacts a fresh clone would not carry anyway.
func DirSize(rootPath string) (int64, error) {
	var matcher *ignore.GitIgnore
	if gi, err := ignore.CompileIgnoreFile(filepath.Join(rootPath, ".gitignore")); err == nil {
		matcher = gi
	}

	var total int64
	err := Walk(rootPath, WalkOptions{}, func(path string, info os.FileInfo) error {
		if info.IsDir() {
			return nil
		}
		if matcher != nil {
			rel, err := filepath.Rel(rootPath, path)
			if err == nil && matcher.MatchesPath(rel) {
				return nil
			}
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}
