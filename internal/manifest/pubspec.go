// Package manifest parses pubspec.yaml into project metadata and a
// dependency profile: the inferred state-management, persistence,
// networking, and navigation technology of the source project.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ErrPubspecNotFound is returned when the project has no pubspec.yaml.
var ErrPubspecNotFound = errors.New("pubspec.yaml not found")

// ProjectMetadata describes the source project as declared in its manifest.
type ProjectMetadata struct {
	Name        string
	Description string
	SDKMin      string
	SDKMax      string

	Profile DependencyProfile

	// Code-generation toggles, flagged by direct package presence.
	UsesBuildRunner      bool
	UsesFreezed          bool
	UsesJSONSerializable bool

	// Combined runtime + dev dependency names, in no particular order.
	Dependencies []string
}

// DependencyProfile classifies the project's technology choices. Each field
// holds a category name, or "none" when no known package matched.
type DependencyProfile struct {
	StateManagement string
	Persistence     string
	Networking      string
	Navigation      string
}

// ProfileNone is the sentinel for an unmatched category.
const ProfileNone = "none"

// category maps a profile value to the package names that imply it.
// Categories are tested in declaration order; the first with any member
// present wins.
type category struct {
	name     string
	packages []string
}

var stateManagementCategories = []category{
	{"riverpod", []string{"flutter_riverpod", "hooks_riverpod", "riverpod"}},
	{"bloc", []string{"flutter_bloc", "bloc"}},
	{"provider", []string{"provider"}},
	{"getx", []string{"get"}},
	{"mobx", []string{"mobx", "flutter_mobx"}},
	{"redux", []string{"redux", "flutter_redux"}},
}

var persistenceCategories = []category{
	{"sqflite", []string{"sqflite", "sqflite_common_ffi"}},
	{"hive", []string{"hive", "hive_flutter"}},
	{"drift", []string{"drift", "moor"}},
	{"isar", []string{"isar", "isar_flutter_libs"}},
	{"objectbox", []string{"objectbox", "objectbox_flutter_libs"}},
	{"shared_preferences", []string{"shared_preferences"}},
}

var networkingCategories = []category{
	{"dio", []string{"dio"}},
	{"http", []string{"http"}},
	{"chopper", []string{"chopper"}},
	{"retrofit", []string{"retrofit"}},
	{"graphql", []string{"graphql_flutter", "graphql"}},
}

var navigationCategories = []category{
	{"go_router", []string{"go_router"}},
	{"auto_route", []string{"auto_route"}},
	{"beamer", []string{"beamer"}},
	{"fluro", []string{"fluro"}},
}

// SDK constraint bounds are extracted by two independent expressions over
// the single constraint string; each bound defaults when absent.
var (
	sdkLowerRe = regexp.MustCompile(`>=\s*([0-9]+\.[0-9]+\.[0-9]+[^\s'"]*)`)
	sdkUpperRe = regexp.MustCompile(`<\s*([0-9]+\.[0-9]+\.[0-9]+[^\s'"]*)`)
)

const (
	defaultSDKMin = "2.12.0"
	defaultSDKMax = "4.0.0"
)

// pubspec mirrors the subset of pubspec.yaml the parser cares about.
type pubspec struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Environment map[string]any `yaml:"environment"`
	Deps        map[string]any `yaml:"dependencies"`
	DevDeps     map[string]any `yaml:"dev_dependencies"`
}

// ParsePubspec loads and parses <root>/pubspec.yaml.
func ParsePubspec(root string) (*ProjectMetadata, error) {
	path := filepath.Join(root, "pubspec.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w in %s", ErrPubspecNotFound, root)
		}
		return nil, fmt.Errorf("reading pubspec.yaml: %w", err)
	}
	return ParsePubspecBytes(data)
}

// ParsePubspecBytes parses manifest content already in memory (e.g. from a
// flattened export). Malformed YAML is an error; missing sections are not.
func ParsePubspecBytes(data []byte) (*ProjectMetadata, error) {
	var ps pubspec
	if err := yaml.Unmarshal(data, &ps); err != nil {
		return nil, fmt.Errorf("parsing pubspec.yaml: %w", err)
	}

	meta := &ProjectMetadata{
		Name:        ps.Name,
		Description: ps.Description,
		SDKMin:      defaultSDKMin,
		SDKMax:      defaultSDKMax,
	}
	if meta.Name == "" {
		meta.Name = "flutter_app"
	}

	if sdk, ok := ps.Environment["sdk"].(string); ok {
		if m := sdkLowerRe.FindStringSubmatch(sdk); m != nil {
			meta.SDKMin = m[1]
		}
		if m := sdkUpperRe.FindStringSubmatch(sdk); m != nil {
			meta.SDKMax = m[1]
		}
	}

	declared := make(map[string]bool, len(ps.Deps)+len(ps.DevDeps))
	for name := range ps.Deps {
		declared[name] = true
		meta.Dependencies = append(meta.Dependencies, name)
	}
	for name := range ps.DevDeps {
		declared[name] = true
		meta.Dependencies = append(meta.Dependencies, name)
	}

	meta.Profile = DependencyProfile{
		StateManagement: classify(declared, stateManagementCategories),
		Persistence:     classify(declared, persistenceCategories),
		Networking:      classify(declared, networkingCategories),
		Navigation:      classify(declared, navigationCategories),
	}

	meta.UsesBuildRunner = declared["build_runner"]
	meta.UsesFreezed = declared["freezed"]
	meta.UsesJSONSerializable = declared["json_serializable"]

	return meta, nil
}

// classify returns the first category with any declared member, or "none".
func classify(declared map[string]bool, categories []category) string {
	for _, cat := range categories {
		for _, pkg := range cat.packages {
			if declared[pkg] {
				return cat.name
			}
		}
	}
	return ProfileNone
}
