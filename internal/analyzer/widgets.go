package analyzer

import (
	"regexp"
	"strings"

	"github.com/elev8tion/phoenix/internal/source"
)

// ExtractWidgets extracts every reusable UI class that is not a screen.
//
// The widget and screen analyzers scan overlapping file sets independently;
// deduplication across the two passes is the schema builder's job, not ours.
func (a *Analyzer) ExtractWidgets(files []source.SourceFile) []WidgetDefinition {
	var widgets []WidgetDefinition

	for _, file := range files {
		if !isWidgetCandidate(file.Path) {
			continue
		}

		for _, decl := range a.decls.declsFor(file) {
			kind, ok := WidgetKindOf(decl.Superclass)
			if !ok {
				continue
			}

			body := ExtractClassBody(file.Content, decl.Start)
			if containsPageContainer(body) {
				// Screens are the screen analyzer's bucket.
				continue
			}

			props := parseConstructorProps(decl.Name, body)
			widgets = append(widgets, WidgetDefinition{
				Name:       decl.Name,
				FilePath:   file.Path,
				Kind:       kind,
				Props:      props,
				IsReusable: len(props) > 0,
			})
		}
	}

	return widgets
}

// isWidgetCandidate scopes the widget pass to Dart UI sources, excluding
// generated artifacts. Any lib file may declare a widget; directory-based
// narrowing here would miss inline helper widgets.
func isWidgetCandidate(path string) bool {
	if !strings.HasSuffix(path, ".dart") || isGeneratedPath(path) {
		return false
	}
	return strings.Contains(path, "lib/") || !strings.Contains(path, "/")
}

// finalFieldRe matches "final <type> <name>;" declarations. Type may carry
// generics and a trailing nullable marker.
var finalFieldRe = regexp.MustCompile(`final\s+([A-Za-z_][\w<>,\s]*\??)\s+([a-z_]\w*)\s*;`)

// parseConstructorProps parses the single named-parameter block of the
// constructor matching the class name.
//
// Nullability is three OR'd signals: the declared type ends in '?', the
// parameter is not marked required, or the raw parameter text contains a
// '?' anywhere. The second signal over-flags optional-but-conventionally-set
// parameters as nullable.
func parseConstructorProps(className, body string) []FieldDefinition {
	blockRe := regexp.MustCompile(`(?s)\b` + regexp.QuoteMeta(className) + `\s*\(\s*\{(.*?)\}\s*\)`)
	m := blockRe.FindStringSubmatch(body)
	if m == nil {
		return nil
	}

	fieldTypes := map[string]string{}
	for _, fm := range finalFieldRe.FindAllStringSubmatch(body, -1) {
		fieldTypes[fm[2]] = strings.TrimSpace(fm[1])
	}

	var props []FieldDefinition
	for _, raw := range splitParams(m[1]) {
		name := paramName(raw)
		if name == "" || name == "key" {
			continue
		}

		required := strings.Contains(raw, "required ")

		typ, ok := fieldTypes[name]
		if !ok {
			typ = "dynamic"
		}

		nullable := strings.HasSuffix(typ, "?") ||
			!required ||
			strings.Contains(raw, "?")

		props = append(props, FieldDefinition{
			Name:     name,
			Type:     typ,
			Nullable: nullable,
			Required: required,
		})
	}

	return props
}

// splitParams splits a parameter list on top-level commas, respecting
// nested angle brackets, parens, brackets, and braces in type arguments.
func splitParams(block string) []string {
	var params []string
	depth := 0
	start := 0

	for i, r := range block {
		switch r {
		case '<', '(', '[', '{':
			depth++
		case '>', ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				params = append(params, strings.TrimSpace(block[start:i]))
				start = i + 1
			}
		}
	}
	if tail := strings.TrimSpace(block[start:]); tail != "" {
		params = append(params, tail)
	}

	out := params[:0]
	for _, p := range params {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

var thisParamRe = regexp.MustCompile(`this\.([a-z_]\w*)`)
var superParamRe = regexp.MustCompile(`super\.([a-z_]\w*)`)
var plainParamRe = regexp.MustCompile(`([a-z_]\w*)\s*(?:=.*)?$`)

// paramName extracts the parameter name from one raw named parameter.
func paramName(raw string) string {
	raw = strings.TrimSpace(raw)
	if m := thisParamRe.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	if m := superParamRe.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	// "required String title" or "int count = 0"
	raw = strings.TrimSuffix(raw, ",")
	if m := plainParamRe.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return ""
}
