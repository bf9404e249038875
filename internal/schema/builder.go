package schema

import (
	"fmt"
	"sort"

	"github.com/elev8tion/phoenix/internal/analyzer"
	"github.com/elev8tion/phoenix/internal/manifest"
	"github.com/elev8tion/phoenix/internal/module"
)

// DefaultProjectName is used when neither the options nor the analysis
// supply a name.
const DefaultProjectName = "flutter_app"

// Build maps an analysis snapshot plus rebuild options onto a rebuild
// schema.
//
// Build never fails. Everything it cannot map confidently becomes a
// warning; the worst case is an empty migration set with warnings, which
// the executor can still turn into a minimal project. The output is
// deterministic: identical inputs produce structurally identical schemas.
func Build(analysis *analyzer.ProjectAnalysis, opts Options) *RebuildSchema {
	var warnings []string

	s := &RebuildSchema{}

	if analysis == nil {
		analysis = &analyzer.ProjectAnalysis{}
		warnings = append(warnings, "no analysis snapshot supplied, building minimal schema")
	}

	profile := manifest.DependencyProfile{
		StateManagement: manifest.ProfileNone,
		Persistence:     manifest.ProfileNone,
		Networking:      manifest.ProfileNone,
		Navigation:      manifest.ProfileNone,
	}
	if analysis.Metadata != nil {
		profile = analysis.Metadata.Profile
	} else {
		warnings = append(warnings, "no project metadata available, dependency profile defaults to none")
	}

	s.Project = ProjectDefinition{
		Name:         projectName(analysis, opts),
		Architecture: resolveArchitecture(analysis, opts, &warnings),
		Theme:        analysis.Theme,
	}
	if analysis.Metadata != nil {
		s.Project.Description = analysis.Metadata.Description
	}

	selected, unknown := module.SelectNames(profile, opts.Modules)
	for _, name := range unknown {
		warnings = append(warnings, fmt.Sprintf("unknown module override %q ignored", name))
	}
	s.Project.Modules = moduleSelections(selected, profile, analysis)

	s.Migrations = buildMigrations(analysis, opts)
	s.Warnings = warnings
	return s
}

func projectName(analysis *analyzer.ProjectAnalysis, opts Options) string {
	if opts.ProjectName != "" {
		return opts.ProjectName
	}
	if analysis.Metadata != nil && analysis.Metadata.Name != "" {
		return analysis.Metadata.Name
	}
	return DefaultProjectName
}

// resolveArchitecture picks the target style. "keep" at zero confidence
// cannot be honored; it degrades to layer-first with a warning.
func resolveArchitecture(analysis *analyzer.ProjectAnalysis, opts Options, warnings *[]string) string {
	requested := opts.Architecture
	if requested == "" {
		requested = ArchitectureKeep
	}

	if requested != ArchitectureKeep {
		return requested
	}

	arch := analysis.Architecture
	if arch == nil || arch.Confidence == 0 {
		*warnings = append(*warnings, "architecture requested as keep but detection confidence was 0, defaulting to layer-first")
		return string(analyzer.ArchLayerFirst)
	}
	return string(arch.Detected)
}

// moduleSelections attaches per-module config derived from the analysis.
func moduleSelections(names []string, profile manifest.DependencyProfile, analysis *analyzer.ProjectAnalysis) []ModuleSelection {
	selections := make([]ModuleSelection, 0, len(names))
	for _, name := range names {
		sel := ModuleSelection{Name: name}
		switch name {
		case module.ModuleStateManagement:
			sel.Config = map[string]any{"library": profile.StateManagement}
		case module.ModuleDatabase:
			sel.Config = map[string]any{
				"engine": profile.Persistence,
				"models": modelNames(analysis.Models),
			}
		case module.ModuleNetworking:
			sel.Config = map[string]any{"client": profile.Networking}
		case module.ModuleNavigation:
			sel.Config = map[string]any{
				"library": profile.Navigation,
				"routes":  screenRoutes(analysis.Screens),
			}
		case module.ModuleTheme:
			if analysis.Theme != nil {
				cfg := map[string]any{}
				if analysis.Theme.PrimaryColor != "" {
					cfg["primary_color"] = analysis.Theme.PrimaryColor
				}
				if analysis.Theme.FontFamily != "" {
					cfg["font_family"] = analysis.Theme.FontFamily
				}
				if len(cfg) > 0 {
					sel.Config = cfg
				}
			}
		}
		selections = append(selections, sel)
	}
	return selections
}

// buildMigrations produces per-element decisions. A class reported by both
// the screen and widget passes counts as a screen only; the widget record
// is dropped before attachment.
func buildMigrations(analysis *analyzer.ProjectAnalysis, opts Options) Migrations {
	var m Migrations

	models := make([]analyzer.ModelDefinition, len(analysis.Models))
	copy(models, analysis.Models)
	sort.Slice(models, func(i, j int) bool { return models[i].Name < models[j].Name })
	for _, def := range models {
		m.Models = append(m.Models, ModelMigration{
			Definition: def,
			Action:     migrationAction(opts.KeepModels),
		})
	}

	screenNames := map[string]bool{}
	for _, s := range analysis.Screens {
		screenNames[s.Name] = true
	}
	widgetsByName := map[string]analyzer.WidgetDefinition{}
	for _, w := range analysis.Widgets {
		if !screenNames[w.Name] {
			widgetsByName[w.Name] = w
		}
	}

	screens := make([]analyzer.ScreenDefinition, len(analysis.Screens))
	copy(screens, analysis.Screens)
	sort.Slice(screens, func(i, j int) bool { return screens[i].Name < screens[j].Name })
	for _, def := range screens {
		var widgets []analyzer.WidgetDefinition
		for _, ref := range def.ReferencedWidgets {
			if w, ok := widgetsByName[ref]; ok {
				widgets = append(widgets, w)
			}
		}
		m.Screens = append(m.Screens, ScreenMigration{
			Definition: def,
			Action:     migrationAction(opts.KeepScreenStructure),
			Widgets:    widgets,
		})
	}

	return m
}

func migrationAction(keep bool) MigrationAction {
	if keep {
		return ActionKeep
	}
	return ActionRegenerate
}

func modelNames(models []analyzer.ModelDefinition) []string {
	names := make([]string, 0, len(models))
	for _, m := range models {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return names
}

func screenRoutes(screens []analyzer.ScreenDefinition) []string {
	routes := make([]string, 0, len(screens))
	for _, s := range screens {
		if s.Route != "" {
			routes = append(routes, s.Route)
		}
	}
	sort.Strings(routes)
	return routes
}
