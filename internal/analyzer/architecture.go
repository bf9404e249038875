package analyzer

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/elev8tion/phoenix/internal/source"
)

// Directory names that signal each architecture style. Scores accumulate
// per matched signal and are clamped to [0,1]; adding a signal never lowers
// a style's score.
var (
	cleanLayerDirs     = []string{"domain", "data", "presentation"}
	cleanSupportDirs   = []string{"usecases", "use_cases", "entities", "repositories", "datasources"}
	layerFirstDirs     = []string{"screens", "pages", "widgets", "models", "services", "providers", "controllers", "views"}
	featureRootSegment = "features"
)

const customThreshold = 0.3

// DetectArchitecture classifies the source tree's directory layout.
//
// Deterministic for identical directory structures: signals are evaluated
// over a sorted directory set. The result always carries a non-nil
// Structure snapshot; "custom" at confidence 0 is the valid fallback.
func DetectArchitecture(files []source.SourceFile) *ArchitectureAssessment {
	dirs := directorySet(files)
	structure := buildTree(files)

	sorted := make([]string, 0, len(dirs))
	for d := range dirs {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)

	var (
		cleanScore, featureScore, layerScore float64
		cleanHits, layerHits                 []string
		featureNames                         []string
	)

	seenSegments := map[string]bool{}
	for _, dir := range sorted {
		for _, segment := range strings.Split(dir, "/") {
			seenSegments[segment] = true
		}

		// lib/features/<name> marks a feature slice.
		segments := strings.Split(dir, "/")
		for i, segment := range segments {
			if segment == featureRootSegment && i+1 < len(segments) {
				featureNames = append(featureNames, segments[i+1])
			}
		}
	}
	featureNames = dedupeSorted(featureNames)

	for _, name := range cleanLayerDirs {
		if seenSegments[name] {
			cleanScore += 0.3
			cleanHits = append(cleanHits, name)
		}
	}
	for _, name := range cleanSupportDirs {
		if seenSegments[name] {
			cleanScore += 0.05
		}
	}

	if len(featureNames) > 0 {
		featureScore = 0.5 + 0.1*float64(len(featureNames))
	}

	for _, name := range layerFirstDirs {
		if seenSegments[name] {
			layerScore += 0.15
			layerHits = append(layerHits, name)
		}
	}

	cleanScore = clamp01(cleanScore)
	featureScore = clamp01(featureScore)
	layerScore = clamp01(layerScore)

	detected := ArchCustom
	confidence := 0.0
	reasoning := "no conventional directory layout recognized"

	switch {
	case cleanScore >= featureScore && cleanScore >= layerScore && cleanScore >= customThreshold:
		detected = ArchClean
		confidence = cleanScore
		reasoning = fmt.Sprintf("clean architecture layers present: %s", strings.Join(cleanHits, ", "))
	case featureScore >= layerScore && featureScore >= customThreshold:
		detected = ArchFeatureFirst
		confidence = featureScore
		reasoning = fmt.Sprintf("feature slices under features/: %s", strings.Join(featureNames, ", "))
	case layerScore >= customThreshold:
		detected = ArchLayerFirst
		confidence = layerScore
		reasoning = fmt.Sprintf("layer directories at the top level: %s", strings.Join(layerHits, ", "))
	}

	return &ArchitectureAssessment{
		Detected:   detected,
		Confidence: clamp01(confidence),
		Structure:  structure,
		Reasoning:  reasoning,
	}
}

// directorySet collects every directory path appearing in the file list.
func directorySet(files []source.SourceFile) map[string]bool {
	dirs := map[string]bool{}
	for _, f := range files {
		dir := path.Dir(f.Path)
		for dir != "." && dir != "/" && dir != "" {
			dirs[dir] = true
			dir = path.Dir(dir)
		}
	}
	return dirs
}

// buildTree reconstructs a directory tree snapshot from file paths.
// The root node is always returned, even for an empty file list.
func buildTree(files []source.SourceFile) *DirectoryNode {
	root := &DirectoryNode{Name: ".", Path: "."}
	index := map[string]*DirectoryNode{".": root}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	sort.Strings(paths)

	for _, p := range paths {
		dir := path.Dir(p)
		node := ensureNode(index, root, dir)
		node.FileCount++
	}

	return root
}

func ensureNode(index map[string]*DirectoryNode, root *DirectoryNode, dir string) *DirectoryNode {
	if dir == "" || dir == "/" {
		dir = "."
	}
	if node, ok := index[dir]; ok {
		return node
	}
	parent := ensureNode(index, root, path.Dir(dir))
	node := &DirectoryNode{Name: path.Base(dir), Path: dir}
	parent.Children = append(parent.Children, node)
	index[dir] = node
	return node
}

func dedupeSorted(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	sort.Strings(values)
	out := values[:1]
	for _, v := range values[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
