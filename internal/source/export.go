package source

import (
	"regexp"
	"strings"
)

// Separator line used by the flattened-export format. Fixed width is part of
// the wire contract; a line of any other length is ordinary content.
const exportSeparator = "================================================" // 48 '='

// DefaultProjectName is used when the directory preamble yields no name.
const DefaultProjectName = "flutter_app"

const filePrefix = "FILE: "

const preambleMarker = "Directory structure:"

// preambleNameRe matches the root entry of the directory tree preamble,
// e.g. "└── myapp/" or "    my_app/".
var preambleNameRe = regexp.MustCompile(`(?:└──|├──)?\s*([A-Za-z0-9_.\-]+)/\s*$`)

// ParseExport parses a flattened single-file export into an Export.
//
// The format is a "Directory structure:" preamble of tree-drawing lines
// terminated by a separator, followed by repeating blocks of
// separator / "FILE: <path>" / separator / raw content. The next FILE block
// implicitly terminates the current content block. A trailing block that
// truncates before its content separator is dropped rather than reported as
// an empty file.
//
// Malformed input never fails: the worst case is an export with no files.
func ParseExport(content string) *Export {
	lines := strings.Split(content, "\n")

	export := &Export{
		ProjectName: DefaultProjectName,
		Files:       []SourceFile{},
		DartFiles:   []SourceFile{},
	}

	// Locate every block start: a separator immediately followed by a FILE line.
	starts := []int{}
	for i := 0; i < len(lines)-1; i++ {
		if isSeparator(lines[i]) && strings.HasPrefix(lines[i+1], filePrefix) {
			starts = append(starts, i)
		}
	}

	// The preamble runs up to the first block (or the whole input when there
	// are no blocks).
	preambleEnd := len(lines)
	if len(starts) > 0 {
		preambleEnd = starts[0]
	}
	export.ProjectName = parsePreambleName(lines[:preambleEnd])

	for n, start := range starts {
		path := strings.TrimSpace(strings.TrimPrefix(lines[start+1], filePrefix))
		if path == "" {
			continue
		}

		// The content separator must follow the FILE line; without it the
		// block truncated mid-header and is not a file.
		if start+2 >= len(lines) || !isSeparator(lines[start+2]) {
			continue
		}

		contentStart := start + 3
		contentEnd := len(lines)
		if n+1 < len(starts) {
			contentEnd = starts[n+1]
		}
		if contentStart > contentEnd {
			contentStart = contentEnd
		}

		file := SourceFile{
			Path:    path,
			Content: strings.TrimSpace(strings.Join(lines[contentStart:contentEnd], "\n")),
		}
		export.Files = append(export.Files, file)
		if strings.HasSuffix(path, ".dart") {
			export.DartFiles = append(export.DartFiles, file)
		}
	}

	return export
}

// parsePreambleName derives the project name from the first non-empty line
// after the "Directory structure:" marker. Falls back to DefaultProjectName.
func parsePreambleName(preamble []string) string {
	seenMarker := false
	for _, line := range preamble {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isSeparator(line) {
			continue
		}
		if !seenMarker {
			if strings.HasPrefix(trimmed, preambleMarker) {
				seenMarker = true
			}
			continue
		}
		if m := preambleNameRe.FindStringSubmatch(trimmed); m != nil {
			return m[1]
		}
		return DefaultProjectName
	}
	return DefaultProjectName
}

func isSeparator(line string) bool {
	return strings.TrimRight(line, "\r") == exportSeparator
}
