// Package source obtains raw Flutter source text for analysis, either by
// shallow-cloning a remote repository or by parsing a flattened single-file
// export. Both strategies produce the same []SourceFile shape.
package source

// SourceFile is one file of the project under analysis. Immutable once
// produced; owned by the provider for the duration of a pipeline run.
type SourceFile struct {
	Path    string // POSIX-style path relative to the project root
	Content string
}

// Export is the parsed form of a flattened single-file export.
type Export struct {
	ProjectName string
	Files       []SourceFile
	DartFiles   []SourceFile // subset of Files with the .dart suffix
}

// Find returns the file with the given path, or nil.
func (e *Export) Find(path string) *SourceFile {
	for i := range e.Files {
		if e.Files[i].Path == path {
			return &e.Files[i]
		}
	}
	return nil
}

// CloneResult reports the outcome of a repository clone. Acquisition
// failures are reported through Success/Error rather than an error value, so
// batch callers can branch without exception-handling scaffolding.
type CloneResult struct {
	Success   bool
	LocalPath string
	Branch    string
	Commit    string
	SizeBytes int64
	Error     string
}

// CloneOptions configures a shallow repository checkout.
type CloneOptions struct {
	URL    string
	Branch string // empty means the remote default branch
	Depth  int    // 0 means 1
}
