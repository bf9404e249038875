// Package module defines the catalog of feature modules the rebuild
// pipeline can enable, and the selection logic that maps a project's
// dependency profile onto that catalog.
package module

import (
	"sort"

	"github.com/elev8tion/phoenix/internal/manifest"
)

// FeatureModule describes one installable feature module: the tool
// operations the executor invokes for it and the config fields it
// contributes to the generated project configuration.
type FeatureModule struct {
	// Name is the catalog identifier (e.g. "state_management").
	Name string

	// Description is a one-line summary shown in CLI output.
	Description string

	// ConfigureTool is the tool operation that applies the module's
	// configuration to the project record.
	ConfigureTool string

	// GenerateTool is the tool operation that materializes the module's
	// files from the applied configuration.
	GenerateTool string

	// ConfigFields declare the module's configuration schema.
	ConfigFields []ConfigField
}

// ConfigField is one field of a module's configuration.
type ConfigField struct {
	Name string // key in the module config map
	Type string // value type as a string ("string", "bool", "list")
	Doc  string
}

const (
	ModuleStateManagement = "state_management"
	ModuleDatabase        = "database"
	ModuleNetworking      = "networking"
	ModuleNavigation      = "navigation"
	ModuleTheme           = "theme"
	ModuleSecurity        = "security"
	ModulePerformance     = "performance"
)

// catalog is declaration-ordered; Catalog and selection preserve this order.
var catalog = []FeatureModule{
	{
		Name:          ModuleStateManagement,
		Description:   "State management scaffolding (providers, notifiers)",
		ConfigureTool: "configure_state_management",
		GenerateTool:  "generate_state_management",
		ConfigFields: []ConfigField{
			{Name: "library", Type: "string", Doc: "state library to wire (riverpod, bloc, provider)"},
		},
	},
	{
		Name:          ModuleDatabase,
		Description:   "Local persistence layer",
		ConfigureTool: "configure_database",
		GenerateTool:  "generate_database",
		ConfigFields: []ConfigField{
			{Name: "engine", Type: "string", Doc: "persistence engine (sqflite, hive, drift)"},
			{Name: "models", Type: "list", Doc: "model names to persist"},
		},
	},
	{
		Name:          ModuleNetworking,
		Description:   "HTTP client and API service layer",
		ConfigureTool: "configure_networking",
		GenerateTool:  "generate_networking",
		ConfigFields: []ConfigField{
			{Name: "client", Type: "string", Doc: "HTTP client package (dio, http)"},
		},
	},
	{
		Name:          ModuleNavigation,
		Description:   "Router and route table generation",
		ConfigureTool: "configure_navigation",
		GenerateTool:  "generate_navigation",
		ConfigFields: []ConfigField{
			{Name: "library", Type: "string", Doc: "routing package (go_router, auto_route)"},
			{Name: "routes", Type: "list", Doc: "route paths to register"},
		},
	},
	{
		Name:          ModuleTheme,
		Description:   "Theme and design-token generation",
		ConfigureTool: "configure_theme",
		GenerateTool:  "generate_theme",
		ConfigFields: []ConfigField{
			{Name: "primary_color", Type: "string", Doc: "hex ARGB primary color"},
			{Name: "font_family", Type: "string", Doc: "default font family"},
		},
	},
	{
		Name:          ModuleSecurity,
		Description:   "Secure storage and input sanitization helpers",
		ConfigureTool: "configure_security",
		GenerateTool:  "generate_security",
	},
	{
		Name:          ModulePerformance,
		Description:   "Lazy loading and image caching helpers",
		ConfigureTool: "configure_performance",
		GenerateTool:  "generate_performance",
	},
}

// Catalog returns the full feature-module catalog in declaration order.
func Catalog() []FeatureModule {
	out := make([]FeatureModule, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a catalog entry by name.
func Lookup(name string) (FeatureModule, bool) {
	for _, m := range catalog {
		if m.Name == name {
			return m, true
		}
	}
	return FeatureModule{}, false
}

// profileModules maps a dependency-profile category value to the module it
// implies. The sentinel "none" implies nothing.
func profileModules(profile manifest.DependencyProfile) []string {
	var names []string
	if profile.StateManagement != manifest.ProfileNone {
		names = append(names, ModuleStateManagement)
	}
	if profile.Persistence != manifest.ProfileNone {
		names = append(names, ModuleDatabase)
	}
	if profile.Networking != manifest.ProfileNone {
		names = append(names, ModuleNetworking)
	}
	if profile.Navigation != manifest.ProfileNone {
		names = append(names, ModuleNavigation)
	}
	return names
}

// SelectNames resolves the module list for a profile plus user overrides.
// Overrides force a module in (true) or out (false) regardless of profile.
// Unknown override names are returned separately so the caller can warn.
func SelectNames(profile manifest.DependencyProfile, overrides map[string]bool) (selected, unknown []string) {
	enabled := map[string]bool{}
	for _, name := range profileModules(profile) {
		enabled[name] = true
	}
	// Theme is always generated; every rebuilt app needs one.
	enabled[ModuleTheme] = true

	overrideNames := make([]string, 0, len(overrides))
	for name := range overrides {
		overrideNames = append(overrideNames, name)
	}
	sort.Strings(overrideNames)

	for _, name := range overrideNames {
		if _, ok := Lookup(name); !ok {
			unknown = append(unknown, name)
			continue
		}
		enabled[name] = overrides[name]
	}

	for _, m := range catalog {
		if enabled[m.Name] {
			selected = append(selected, m.Name)
		}
	}
	return selected, unknown
}
