// Package schema turns a project analysis into a rebuild schema: the
// declarative description of the project to regenerate. Building the schema
// is pure computation; all I/O happens in the executor that consumes it.
package schema

import "github.com/elev8tion/phoenix/internal/analyzer"

// MigrationAction says what the executor should do with one analyzed
// element.
type MigrationAction string

const (
	// ActionKeep carries the analyzed definition into the rebuilt
	// project as-is.
	ActionKeep MigrationAction = "keep"
	// ActionRegenerate rebuilds the element from its structural
	// description through the module generators.
	ActionRegenerate MigrationAction = "regenerate"
)

// ModuleSelection names one feature module to enable, with its
// module-specific configuration.
type ModuleSelection struct {
	Name   string         `yaml:"name"`
	Config map[string]any `yaml:"config,omitempty"`
}

// ProjectDefinition is the target project's identity and shape.
type ProjectDefinition struct {
	Name         string              `yaml:"name"`
	Description  string              `yaml:"description,omitempty"`
	Architecture string              `yaml:"architecture"`
	Modules      []ModuleSelection   `yaml:"modules"`
	Theme        *analyzer.ThemeInfo `yaml:"theme,omitempty"`
}

// ModelMigration is the rebuild decision for one data model.
type ModelMigration struct {
	Definition analyzer.ModelDefinition `yaml:"definition"`
	Action     MigrationAction          `yaml:"action"`
}

// ScreenMigration is the rebuild decision for one screen, with the widgets
// it references that the analysis actually found.
type ScreenMigration struct {
	Definition analyzer.ScreenDefinition   `yaml:"definition"`
	Action     MigrationAction             `yaml:"action"`
	Widgets    []analyzer.WidgetDefinition `yaml:"widgets,omitempty"`
}

// Migrations groups the per-element rebuild decisions.
type Migrations struct {
	Models  []ModelMigration  `yaml:"models"`
	Screens []ScreenMigration `yaml:"screens"`
}

// RebuildSchema is the complete input to the rebuild executor. Immutable
// once built and consumed exactly once.
type RebuildSchema struct {
	Project    ProjectDefinition `yaml:"project"`
	Migrations Migrations        `yaml:"migrations"`
	Warnings   []string          `yaml:"warnings,omitempty"`
}

// Options are the caller's rebuild preferences. Zero value means: derive
// everything from the analysis.
type Options struct {
	// ProjectName overrides the analyzed project name.
	ProjectName string `yaml:"project_name,omitempty" mapstructure:"project_name"`

	// Architecture is a target style, or "keep" to reuse the detected one.
	Architecture string `yaml:"architecture,omitempty" mapstructure:"architecture"`

	// KeepModels carries analyzed models forward instead of regenerating.
	KeepModels bool `yaml:"keep_models,omitempty" mapstructure:"keep_models"`

	// KeepScreenStructure carries analyzed screen structure forward.
	KeepScreenStructure bool `yaml:"keep_screens,omitempty" mapstructure:"keep_screens"`

	// Modules force-enables (true) or force-disables (false) feature
	// modules by name, overriding profile-derived selection.
	Modules map[string]bool `yaml:"modules,omitempty" mapstructure:"modules"`
}

// ArchitectureKeep requests the detected architecture style.
const ArchitectureKeep = "keep"
