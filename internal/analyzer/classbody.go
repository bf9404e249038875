package analyzer

import (
	"regexp"
	"strings"
)

// ClassDecl is a top-level class declaration located in a source file.
type ClassDecl struct {
	Name       string
	Superclass string // empty when the class extends nothing
	Start      int    // byte offset of the "class" keyword
}

// classDeclRe matches "class Name extends Super" and "class Name" headers.
// Mixins and interfaces on the clause are tolerated but not captured.
var classDeclRe = regexp.MustCompile(`(?m)^\s*(?:abstract\s+)?class\s+([A-Za-z_]\w*)(?:\s+extends\s+([A-Za-z_]\w*))?`)

// baseWidgetKinds is the whitelist of supported widget superclasses.
var baseWidgetKinds = map[string]WidgetKind{
	"StatelessWidget":            KindStateless,
	"ConsumerWidget":             KindStateless,
	"StatefulWidget":             KindStateful,
	"ConsumerStatefulWidget":     KindStateful,
	"HookWidget":                 KindHook,
	"HookConsumerWidget":         KindHook,
	"StatefulHookConsumerWidget": KindHook,
}

// FindClassDeclarations returns every top-level class declaration in src,
// in source order.
func FindClassDeclarations(src string) []ClassDecl {
	matches := classDeclRe.FindAllStringSubmatchIndex(src, -1)
	decls := make([]ClassDecl, 0, len(matches))
	for _, m := range matches {
		decl := ClassDecl{
			Name:  src[m[2]:m[3]],
			Start: m[0],
		}
		// Skip leading whitespace captured by the anchored pattern.
		for decl.Start < len(src) && (src[decl.Start] == ' ' || src[decl.Start] == '\t' || src[decl.Start] == '\n' || src[decl.Start] == '\r') {
			decl.Start++
		}
		if m[4] >= 0 {
			decl.Superclass = src[m[4]:m[5]]
		}
		decls = append(decls, decl)
	}
	return decls
}

// ExtractClassBody returns the substring of src starting at the class
// declaration and ending exactly at the matching closing brace of the
// outermost block.
//
// The scan is a small state machine: before-block until the first '{',
// inside-block counting depth on '{'/'}', done when depth returns to zero.
// Braces occurring before the first opening brace are ignored. Unbalanced
// input yields a scan to end-of-input rather than an error.
func ExtractClassBody(src string, declStart int) string {
	if declStart < 0 || declStart >= len(src) {
		return ""
	}

	depth := 0
	opened := false
	for i := declStart; i < len(src); i++ {
		switch src[i] {
		case '{':
			opened = true
			depth++
		case '}':
			if !opened {
				continue
			}
			depth--
			if depth == 0 {
				return src[declStart : i+1]
			}
		}
	}

	return src[declStart:]
}

// WidgetKindOf maps a superclass name to its widget kind.
// ok is false when the superclass is not a supported base widget.
func WidgetKindOf(superclass string) (WidgetKind, bool) {
	kind, ok := baseWidgetKinds[superclass]
	return kind, ok
}

// isGeneratedPath reports whether a path is a build artifact the analyzers
// must never scan.
func isGeneratedPath(path string) bool {
	for _, suffix := range []string{".g.dart", ".freezed.dart", ".gr.dart", ".mocks.dart", ".config.dart"} {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}
