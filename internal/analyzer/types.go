// Package analyzer extracts a structural model of a Flutter application
// from loosely-structured source text: architecture style, data models,
// screens, widgets, and theme.
//
// There is no compiler front end here. Extraction is a pipeline of
// independent, named predicates and regular expressions over class-body
// strings, each tolerating false positives and negatives in exchange for
// simplicity and speed.
package analyzer

import "github.com/elev8tion/phoenix/internal/manifest"

// WidgetKind classifies a widget class by its superclass.
type WidgetKind string

const (
	KindStateless WidgetKind = "stateless"
	KindStateful  WidgetKind = "stateful"
	KindHook      WidgetKind = "hook"
)

// FieldDefinition is one declared field or constructor parameter.
type FieldDefinition struct {
	Name     string
	Type     string // "dynamic" when no declaration was found
	Nullable bool
	Required bool
}

// WidgetDefinition describes an extracted UI class that is not a screen.
// A widget is reusable iff it declares at least one constructor field.
type WidgetDefinition struct {
	Name       string
	FilePath   string
	Kind       WidgetKind
	Props      []FieldDefinition
	IsReusable bool
}

// ScaffoldFeatures records page-level chrome detected in a screen body.
// The presence tests are independent, not mutually exclusive.
type ScaffoldFeatures struct {
	HasAppBar    bool
	HasBottomNav bool
	HasDrawer    bool
	HasFab       bool
}

// LayoutKind is the dominant layout container of a screen.
type LayoutKind string

const (
	LayoutGrid   LayoutKind = "grid"
	LayoutList   LayoutKind = "list"
	LayoutStack  LayoutKind = "stack"
	LayoutRow    LayoutKind = "row"
	LayoutColumn LayoutKind = "column"
	LayoutCustom LayoutKind = "custom"
)

// ScreenDefinition describes a top-level UI class whose body contains a
// full-page container construct.
type ScreenDefinition struct {
	Name              string
	FilePath          string
	Kind              WidgetKind
	Route             string // empty when even the fallback produced nothing
	Scaffold          ScaffoldFeatures
	BoundProviders    []string
	ReferencedWidgets []string
	DominantLayout    LayoutKind
}

// ModelDefinition describes an extracted data-model class.
type ModelDefinition struct {
	Name                 string
	FilePath             string
	Fields               []FieldDefinition
	HasJSONSerialization bool
	IsFreezed            bool
}

// ThemeInfo is accumulated across all candidate theme files plus the
// entry-point file. Unlike the other analyzers it is a reduction into one
// record, not a per-class emission.
type ThemeInfo struct {
	UseMaterial   bool
	UseCupertino  bool
	PrimaryColor  string // hex ARGB, e.g. "FF2196F3"
	PrimarySwatch string
	FontFamily    string
	Colors        map[string]string // name -> hex ARGB
	ThemeFilePath string            // provenance: first contributing file
}

// ArchitectureStyle is a coarse classification of directory organization.
type ArchitectureStyle string

const (
	ArchClean        ArchitectureStyle = "clean"
	ArchFeatureFirst ArchitectureStyle = "feature-first"
	ArchLayerFirst   ArchitectureStyle = "layer-first"
	ArchCustom       ArchitectureStyle = "custom"
)

// ArchitectureAssessment is produced once per run and never mutated.
// Structure is always non-nil, even at confidence 0: "custom" is a valid
// fallback, never an error.
type ArchitectureAssessment struct {
	Detected   ArchitectureStyle
	Confidence float64 // clamped to [0,1]
	Structure  *DirectoryNode
	Reasoning  string
}

// DirectoryNode is a snapshot of one directory in the source tree.
type DirectoryNode struct {
	Name      string
	Path      string
	FileCount int
	Children  []*DirectoryNode
}

// SizeStats are basic size statistics of the analyzed snapshot.
type SizeStats struct {
	TotalFiles int
	DartFiles  int
	TotalLines int
}

// ProjectAnalysis is the combined structural snapshot of a source project.
// All entities are created fresh per invocation; nothing persists beyond
// the pipeline run.
type ProjectAnalysis struct {
	Metadata     *manifest.ProjectMetadata
	Architecture *ArchitectureAssessment
	Models       []ModelDefinition
	Screens      []ScreenDefinition
	Widgets      []WidgetDefinition
	Theme        *ThemeInfo
	Stats        SizeStats
}
