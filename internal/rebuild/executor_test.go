package rebuild

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elev8tion/phoenix/internal/logger"
	"github.com/elev8tion/phoenix/internal/module"
	"github.com/elev8tion/phoenix/internal/schema"
)

// fakeEngine generates one predictable file per module.
type fakeEngine struct {
	applied []string
}

func (f *fakeEngine) CreateProject(ctx context.Context, projectID, name, architecture string) ([]GeneratedFile, error) {
	return []GeneratedFile{
		{Path: "pubspec.yaml", Content: []byte("name: " + name + "\n")},
		{Path: "lib/main.dart", Content: []byte("void main() {}\n")},
	}, nil
}

func (f *fakeEngine) ApplyModuleConfig(ctx context.Context, projectID, moduleName string, config map[string]any) error {
	f.applied = append(f.applied, moduleName)
	return nil
}

func (f *fakeEngine) GenerateFiles(ctx context.Context, projectID, moduleName string) ([]GeneratedFile, error) {
	return []GeneratedFile{
		{Path: fmt.Sprintf("lib/%s.dart", moduleName), Content: []byte("// " + moduleName + "\n")},
	}, nil
}

func registerModuleTools(r *Registry, names ...string) {
	ok := func(ctx context.Context, args map[string]any) *ToolResult {
		return &ToolResult{Success: true}
	}
	for _, name := range names {
		m, _ := module.Lookup(name)
		r.Register(m.ConfigureTool, ok)
		r.Register(m.GenerateTool, ok)
	}
}

func twoModuleSchema() *schema.RebuildSchema {
	return &schema.RebuildSchema{
		Project: schema.ProjectDefinition{
			Name:         "shop",
			Architecture: "layer-first",
			Modules: []schema.ModuleSelection{
				{Name: module.ModuleStateManagement, Config: map[string]any{"library": "riverpod"}},
				{Name: module.ModuleDatabase, Config: map[string]any{"engine": "sqflite"}},
			},
		},
	}
}

func newTestExecutor(engine ProjectEngine, tools ToolCaller) *Executor {
	return NewExecutor(engine, tools).WithLogger(logger.NewSilentLogger())
}

func TestRebuild_SecondModuleToolMissing(t *testing.T) {
	out := t.TempDir()
	registry := NewRegistry()
	registerModuleTools(registry, module.ModuleStateManagement)
	// database tools deliberately unregistered

	result, err := newTestExecutor(&fakeEngine{}, registry).
		Rebuild(context.Background(), twoModuleSchema(), Options{OutputPath: out})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, []string{module.ModuleStateManagement}, result.ModulesInstalled)

	// The first module's files landed on disk.
	assert.FileExists(t, filepath.Join(out, "lib", "state_management.dart"))
	assert.FileExists(t, filepath.Join(out, "pubspec.yaml"))
	assert.NoFileExists(t, filepath.Join(out, "lib", "database.dart"))

	require.NotEmpty(t, result.Warnings)
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "database") && strings.Contains(w, "Tool not found") {
			found = true
		}
	}
	assert.True(t, found, "warnings should name the failed module: %v", result.Warnings)
}

func TestRebuild_PreservedFileWinsOverGenerated(t *testing.T) {
	out := t.TempDir()
	src := t.TempDir()

	original := []byte("void main() { runApp(const RealApp()); }\n")
	require.NoError(t, os.WriteFile(filepath.Join(src, "main.dart"), original, 0644))

	registry := NewRegistry()
	registerModuleTools(registry, module.ModuleStateManagement, module.ModuleDatabase)

	result, err := newTestExecutor(&fakeEngine{}, registry).
		Rebuild(context.Background(), twoModuleSchema(), Options{
			OutputPath: out,
			Preserved: []PreservedFile{
				{Path: "lib/main.dart", SrcPath: filepath.Join(src, "main.dart")},
			},
		})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.FilesCopied)

	written, err := os.ReadFile(filepath.Join(out, "lib", "main.dart"))
	require.NoError(t, err)
	assert.Equal(t, original, written)

	// The collision is surfaced as a warning with change stats.
	joined := fmt.Sprint(result.Warnings)
	assert.Contains(t, joined, "lib/main.dart")
	assert.Contains(t, joined, "chars")
}

func TestRebuild_NilCollaboratorIsFatal(t *testing.T) {
	_, err := newTestExecutor(nil, NewRegistry()).
		Rebuild(context.Background(), twoModuleSchema(), Options{OutputPath: t.TempDir()})
	assert.Error(t, err)

	_, err = newTestExecutor(&fakeEngine{}, nil).
		Rebuild(context.Background(), twoModuleSchema(), Options{OutputPath: t.TempDir()})
	assert.Error(t, err)
}

func TestRebuild_OutputPathNotCreatableIsFatal(t *testing.T) {
	parent := t.TempDir()
	blocked := filepath.Join(parent, "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("file, not dir"), 0644))

	registry := NewRegistry()
	registerModuleTools(registry, module.ModuleStateManagement, module.ModuleDatabase)

	result, err := newTestExecutor(&fakeEngine{}, registry).
		Rebuild(context.Background(), twoModuleSchema(), Options{
			OutputPath: filepath.Join(blocked, "out"),
		})

	assert.Error(t, err)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestRebuild_SchemaWarningsCarriedThrough(t *testing.T) {
	s := twoModuleSchema()
	s.Warnings = []string{"low confidence analysis"}

	registry := NewRegistry()
	registerModuleTools(registry, module.ModuleStateManagement, module.ModuleDatabase)

	result, err := newTestExecutor(&fakeEngine{}, registry).
		Rebuild(context.Background(), s, Options{OutputPath: t.TempDir()})

	require.NoError(t, err)
	assert.Contains(t, result.Warnings, "low confidence analysis")
}

func TestRebuild_DryRunWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "never-created")

	registry := NewRegistry()
	registerModuleTools(registry, module.ModuleStateManagement, module.ModuleDatabase)

	result, err := newTestExecutor(&fakeEngine{}, registry).
		Rebuild(context.Background(), twoModuleSchema(), Options{OutputPath: out, DryRun: true})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NoFileExists(t, filepath.Join(out, "pubspec.yaml"))
}
