package analyzer

import (
	"sort"
	"strings"
	"sync"

	"github.com/elev8tion/phoenix/internal/logger"
	"github.com/elev8tion/phoenix/internal/manifest"
	"github.com/elev8tion/phoenix/internal/source"
)

// Analyzer runs the extraction pipeline over a source snapshot.
type Analyzer struct {
	log   logger.Logger
	decls *declCache
}

// New creates an Analyzer with the default logger.
func New() *Analyzer {
	return &Analyzer{
		log:   logger.Default(),
		decls: newDeclCache(),
	}
}

// WithLogger replaces the analyzer's logger and returns the analyzer.
func (a *Analyzer) WithLogger(log logger.Logger) *Analyzer {
	a.log = log
	return a
}

// Analyze produces the full structural snapshot for a set of source files.
//
// The four class-level extractors are independent and run concurrently;
// the shared declaration cache makes the overlapping scans cheap. File
// order is normalized first so every extractor sees the same deterministic
// sequence regardless of collection order.
func (a *Analyzer) Analyze(files []source.SourceFile, meta *manifest.ProjectMetadata) *ProjectAnalysis {
	sorted := make([]source.SourceFile, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	a.log.Info("analyzing project",
		logger.F("files", len(sorted)),
	)

	analysis := &ProjectAnalysis{
		Metadata: meta,
		Stats:    computeStats(sorted),
	}

	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		analysis.Architecture = DetectArchitecture(sorted)
	}()
	go func() {
		defer wg.Done()
		analysis.Models = a.ExtractModels(sorted)
	}()
	go func() {
		defer wg.Done()
		analysis.Screens = a.ExtractScreens(sorted)
	}()
	go func() {
		defer wg.Done()
		analysis.Widgets = a.ExtractWidgets(sorted)
	}()
	go func() {
		defer wg.Done()
		analysis.Theme = a.ExtractTheme(sorted)
	}()

	wg.Wait()

	a.log.Info("analysis complete",
		logger.F("architecture", string(analysis.Architecture.Detected)),
		logger.F("models", len(analysis.Models)),
		logger.F("screens", len(analysis.Screens)),
		logger.F("widgets", len(analysis.Widgets)),
	)

	return analysis
}

func computeStats(files []source.SourceFile) SizeStats {
	stats := SizeStats{TotalFiles: len(files)}
	for _, f := range files {
		if strings.HasSuffix(f.Path, ".dart") {
			stats.DartFiles++
		}
		stats.TotalLines += strings.Count(f.Content, "\n") + 1
	}
	return stats
}
