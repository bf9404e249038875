package analyzer

import (
	"strings"

	"github.com/elev8tion/phoenix/internal/source"
)

// modelDirSegments are the path segments that mark a file as a data-model
// candidate. The segment test keeps the scan away from UI code entirely.
var modelDirSegments = []string{"models", "model", "entities", "entity", "domain/entities", "data/models"}

// ExtractModels extracts data-model classes from files under model
// directories. Widget subclasses in those directories are skipped; a class
// there that extends a base widget is misfiled UI, not data.
func (a *Analyzer) ExtractModels(files []source.SourceFile) []ModelDefinition {
	var models []ModelDefinition

	for _, file := range files {
		if !isModelCandidate(file.Path) {
			continue
		}

		for _, decl := range a.decls.declsFor(file) {
			if _, isWidget := WidgetKindOf(decl.Superclass); isWidget {
				continue
			}
			if strings.HasSuffix(decl.Name, "State") && strings.HasPrefix(decl.Name, "_") {
				continue
			}

			body := ExtractClassBody(file.Content, decl.Start)
			preamble := declPreamble(file.Content, decl.Start)

			models = append(models, ModelDefinition{
				Name:                 decl.Name,
				FilePath:             file.Path,
				Fields:               parseModelFields(body),
				HasJSONSerialization: hasJSONSerialization(body, preamble),
				IsFreezed:            strings.Contains(preamble, "@freezed"),
			})
		}
	}

	return models
}

func isModelCandidate(path string) bool {
	if !strings.HasSuffix(path, ".dart") || isGeneratedPath(path) {
		return false
	}
	for _, segment := range modelDirSegments {
		if strings.Contains(path, "/"+segment+"/") || strings.HasPrefix(path, segment+"/") {
			return true
		}
	}
	return false
}

// declPreamble returns the text between the previous class (or file start)
// and this declaration, where annotations like @freezed live.
func declPreamble(src string, declStart int) string {
	start := 0
	if idx := strings.LastIndex(src[:declStart], "}"); idx >= 0 {
		start = idx + 1
	}
	return src[start:declStart]
}

// parseModelFields collects "final <type> <name>;" declarations from a
// class body. Nullability for models is purely the type's trailing '?';
// every declared field is treated as required.
func parseModelFields(body string) []FieldDefinition {
	var fields []FieldDefinition
	for _, m := range finalFieldRe.FindAllStringSubmatch(body, -1) {
		typ := strings.TrimSpace(m[1])
		fields = append(fields, FieldDefinition{
			Name:     m[2],
			Type:     typ,
			Nullable: strings.HasSuffix(typ, "?"),
			Required: true,
		})
	}
	return fields
}

// hasJSONSerialization detects either hand-written fromJson/toJson pairs or
// the json_serializable annotation on the declaration.
func hasJSONSerialization(body, preamble string) bool {
	if strings.Contains(preamble, "@JsonSerializable") {
		return true
	}
	return strings.Contains(body, "fromJson") && strings.Contains(body, "toJson")
}
