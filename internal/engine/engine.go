// Package engine is the default project engine: it scaffolds base project
// files and materializes feature-module files from embedded templates.
package engine

import (
	"context"
	"embed"
	"fmt"
	"sync"

	"github.com/elev8tion/phoenix/internal/generator"
	"github.com/elev8tion/phoenix/internal/module"
	"github.com/elev8tion/phoenix/internal/rebuild"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// projectRecord is the engine's in-memory state for one project under
// construction. Records live only for the duration of a rebuild run.
type projectRecord struct {
	name         string
	architecture string
	configs      map[string]map[string]any
}

// Engine implements rebuild.ProjectEngine with template rendering.
type Engine struct {
	mu       sync.Mutex
	renderer *generator.Renderer
	projects map[string]*projectRecord
}

// New creates an engine with an empty project table.
func New() *Engine {
	return &Engine{
		renderer: generator.NewRenderer(),
		projects: make(map[string]*projectRecord),
	}
}

// CreateProject registers a project record and renders the base scaffold:
// pubspec.yaml, lib/main.dart, analysis options, and a README.
func (e *Engine) CreateProject(ctx context.Context, projectID, name, architecture string) ([]rebuild.GeneratedFile, error) {
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}

	e.mu.Lock()
	e.projects[projectID] = &projectRecord{
		name:         name,
		architecture: architecture,
		configs:      make(map[string]map[string]any),
	}
	e.mu.Unlock()

	data := map[string]any{
		"Name":         name,
		"Architecture": architecture,
	}

	return e.renderAll(data,
		rendering{"templates/pubspec.yaml.tmpl", "pubspec.yaml"},
		rendering{"templates/main.dart.tmpl", "lib/main.dart"},
		rendering{"templates/analysis_options.yaml.tmpl", "analysis_options.yaml"},
		rendering{"templates/readme.md.tmpl", "README.md"},
	)
}

// ApplyModuleConfig records a module's configuration on the project.
func (e *Engine) ApplyModuleConfig(ctx context.Context, projectID, moduleName string, config map[string]any) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, ok := e.projects[projectID]
	if !ok {
		return fmt.Errorf("unknown project id: %s", projectID)
	}
	if config == nil {
		config = map[string]any{}
	}
	rec.configs[moduleName] = config
	return nil
}

// GenerateFiles renders the files for one configured module.
func (e *Engine) GenerateFiles(ctx context.Context, projectID, moduleName string) ([]rebuild.GeneratedFile, error) {
	e.mu.Lock()
	rec, ok := e.projects[projectID]
	var config map[string]any
	if ok {
		config = rec.configs[moduleName]
	}
	e.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("unknown project id: %s", projectID)
	}

	data := map[string]any{
		"Name":         rec.name,
		"Architecture": rec.architecture,
		"Config":       config,
	}

	switch moduleName {
	case module.ModuleStateManagement:
		return e.renderAll(data, rendering{"templates/providers.dart.tmpl", "lib/providers/app_providers.dart"})
	case module.ModuleDatabase:
		return e.renderAll(data, rendering{"templates/database.dart.tmpl", "lib/data/app_database.dart"})
	case module.ModuleNetworking:
		return e.renderAll(data, rendering{"templates/api_client.dart.tmpl", "lib/services/api_client.dart"})
	case module.ModuleNavigation:
		return e.renderAll(data, rendering{"templates/app_router.dart.tmpl", "lib/navigation/app_router.dart"})
	case module.ModuleTheme:
		return e.renderAll(data, rendering{"templates/app_theme.dart.tmpl", "lib/theme/app_theme.dart"})
	case module.ModuleSecurity:
		return e.renderAll(data, rendering{"templates/secure_storage.dart.tmpl", "lib/core/security/secure_storage.dart"})
	case module.ModulePerformance:
		return e.renderAll(data, rendering{"templates/cached_image.dart.tmpl", "lib/core/performance/cached_image.dart"})
	default:
		return nil, fmt.Errorf("no generator for module: %s", moduleName)
	}
}

// rendering pairs one template path with its output path.
type rendering struct {
	template string
	output   string
}

func (e *Engine) renderAll(data map[string]any, renderings ...rendering) ([]rebuild.GeneratedFile, error) {
	files := make([]rebuild.GeneratedFile, 0, len(renderings))
	for _, r := range renderings {
		content, err := e.renderer.RenderFS(templatesFS, r.template, data)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", r.template, err)
		}
		files = append(files, rebuild.GeneratedFile{Path: r.output, Content: content})
	}
	return files, nil
}
