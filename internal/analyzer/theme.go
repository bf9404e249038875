package analyzer

import (
	"regexp"
	"strings"

	"github.com/elev8tion/phoenix/internal/source"
)

var (
	primaryColorRe  = regexp.MustCompile(`primaryColor:\s*(?:const\s+)?Color\(0x([0-9A-Fa-f]{8})\)`)
	primarySwatchRe = regexp.MustCompile(`primarySwatch:\s*Colors\.(\w+)`)
	fontFamilyRe    = regexp.MustCompile(`fontFamily:\s*['"]([^'"]+)['"]`)
	namedColorRe    = regexp.MustCompile(`static\s+const\s+Color\s+(\w+)\s*=\s*Color\(0x([0-9A-Fa-f]{8})\)`)
	seedColorRe     = regexp.MustCompile(`seedColor:\s*(?:const\s+)?Color\(0x([0-9A-Fa-f]{8})\)`)
)

// ExtractTheme folds theme signals from every candidate theme file plus the
// entry point into a single record. Later files only fill holes left by
// earlier ones, so candidate ordering (sorted by the caller) decides
// conflicts.
func (a *Analyzer) ExtractTheme(files []source.SourceFile) *ThemeInfo {
	info := &ThemeInfo{Colors: map[string]string{}}

	for _, file := range files {
		if !isThemeCandidate(file.Path) {
			continue
		}
		mergeThemeSignals(info, file)
	}

	return info
}

// isThemeCandidate selects files plausibly holding theme configuration:
// anything under or named theme/colors/styles, plus lib/main.dart where
// the MaterialApp or CupertinoApp is usually configured.
func isThemeCandidate(path string) bool {
	if !strings.HasSuffix(path, ".dart") || isGeneratedPath(path) {
		return false
	}
	if path == "lib/main.dart" || strings.HasSuffix(path, "/main.dart") {
		return true
	}
	base := strings.ToLower(path)
	for _, marker := range []string{"theme", "colors", "color", "styles", "style"} {
		if strings.Contains(base, marker) {
			return true
		}
	}
	return false
}

func mergeThemeSignals(info *ThemeInfo, file source.SourceFile) {
	src := file.Content
	contributed := false

	if strings.Contains(src, "MaterialApp(") {
		info.UseMaterial = true
		contributed = true
	}
	if strings.Contains(src, "CupertinoApp(") {
		info.UseCupertino = true
		contributed = true
	}

	if info.PrimaryColor == "" {
		if m := primaryColorRe.FindStringSubmatch(src); m != nil {
			info.PrimaryColor = strings.ToUpper(m[1])
			contributed = true
		} else if m := seedColorRe.FindStringSubmatch(src); m != nil {
			info.PrimaryColor = strings.ToUpper(m[1])
			contributed = true
		}
	}
	if info.PrimarySwatch == "" {
		if m := primarySwatchRe.FindStringSubmatch(src); m != nil {
			info.PrimarySwatch = m[1]
			contributed = true
		}
	}
	if info.FontFamily == "" {
		if m := fontFamilyRe.FindStringSubmatch(src); m != nil {
			info.FontFamily = m[1]
			contributed = true
		}
	}

	for _, m := range namedColorRe.FindAllStringSubmatch(src, -1) {
		if _, exists := info.Colors[m[1]]; !exists {
			info.Colors[m[1]] = strings.ToUpper(m[2])
			contributed = true
		}
	}

	if contributed && info.ThemeFilePath == "" {
		info.ThemeFilePath = file.Path
	}
}
