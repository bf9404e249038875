package analyzer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/elev8tion/phoenix/internal/source"
)

// containsPageContainer reports whether a class body builds a full-page
// container. This is the sole screen/widget discriminator.
func containsPageContainer(body string) bool {
	return strings.Contains(body, "Scaffold(") ||
		strings.Contains(body, "CupertinoPageScaffold(")
}

var (
	refReadRe       = regexp.MustCompile(`ref\.read\(\s*(\w+)`)
	refWatchRe      = regexp.MustCompile(`ref\.watch\(\s*(\w+)`)
	contextReadRe   = regexp.MustCompile(`context\.read<(\w+)>`)
	contextWatchRe  = regexp.MustCompile(`context\.watch<(\w+)>`)
	providerOfRe    = regexp.MustCompile(`Provider\.of<(\w+)>`)
	widgetRefRe     = regexp.MustCompile(`\b([A-Z]\w*(?:Widget|Button|Card|Tile|Item|View|List|Form))\s*\(`)
	routeNameRe     = regexp.MustCompile(`(?:static\s+const\s+(?:String\s+)?routeName\s*=\s*|routeName:\s*)['"]([^'"]+)['"]`)
	routePathAnnoRe = regexp.MustCompile(`@RoutePage\w*\(\s*(?:path:\s*)?['"]([^'"]+)['"]`)
)

// builtinWidgetNames are framework constructs the referenced-widget scan
// must not report as project widgets.
var builtinWidgetNames = map[string]bool{
	"ListView":             true,
	"GridView":             true,
	"ListTile":             true,
	"TabBarView":           true,
	"PageView":             true,
	"Form":                 true,
	"CustomScrollView":     true,
	"ElevatedButton":       true,
	"TextButton":           true,
	"OutlinedButton":       true,
	"IconButton":           true,
	"FloatingActionButton": true,
	"Card":                 true,
	"BackButton":           true,
	"CloseButton":          true,
	"PopupMenuButton":      true,
	"DropdownButton":       true,
}

// ExtractScreens extracts every class whose body contains a full-page
// container. The route table is built from all files up front so that a
// screen registered in a central router still gets its declared route.
func (a *Analyzer) ExtractScreens(files []source.SourceFile) []ScreenDefinition {
	routes := buildRouteTable(files)

	var screens []ScreenDefinition
	for _, file := range files {
		if !isWidgetCandidate(file.Path) {
			continue
		}

		for _, decl := range a.decls.declsFor(file) {
			kind, ok := WidgetKindOf(decl.Superclass)
			if !ok {
				continue
			}

			body := ExtractClassBody(file.Content, decl.Start)
			if !containsPageContainer(body) {
				// Stateful screens split the page container into the
				// State class. Check sibling State bodies by convention.
				if kind != KindStateful || !stateBodyHasContainer(file, decl.Name, a) {
					continue
				}
				body = stateBody(file, decl.Name, a)
			}

			screens = append(screens, ScreenDefinition{
				Name:              decl.Name,
				FilePath:          file.Path,
				Kind:              kind,
				Route:             inferRoute(decl.Name, file, body, routes),
				Scaffold:          detectScaffoldFeatures(body),
				BoundProviders:    extractProviders(body),
				ReferencedWidgets: extractReferencedWidgets(body),
				DominantLayout:    dominantLayout(body),
			})
		}
	}

	return screens
}

// stateBodyHasContainer checks the conventional "_<Name>State" companion
// class for the page container a stateful screen delegates to.
func stateBodyHasContainer(file source.SourceFile, name string, a *Analyzer) bool {
	return containsPageContainer(stateBody(file, name, a))
}

func stateBody(file source.SourceFile, name string, a *Analyzer) string {
	stateName := "_" + name + "State"
	for _, decl := range a.decls.declsFor(file) {
		if decl.Name == stateName {
			return ExtractClassBody(file.Content, decl.Start)
		}
	}
	return ""
}

func detectScaffoldFeatures(body string) ScaffoldFeatures {
	return ScaffoldFeatures{
		HasAppBar:    strings.Contains(body, "appBar:") || strings.Contains(body, "AppBar("),
		HasBottomNav: strings.Contains(body, "BottomNavigationBar(") || strings.Contains(body, "NavigationBar("),
		HasDrawer:    strings.Contains(body, "drawer:") || strings.Contains(body, "Drawer("),
		HasFab:       strings.Contains(body, "floatingActionButton:") || strings.Contains(body, "FloatingActionButton("),
	}
}

// extractProviders collects state bindings from the five supported access
// patterns. Results are deduplicated and sorted for determinism.
func extractProviders(body string) []string {
	var names []string
	for _, re := range []*regexp.Regexp{refReadRe, refWatchRe, contextReadRe, contextWatchRe, providerOfRe} {
		for _, m := range re.FindAllStringSubmatch(body, -1) {
			names = append(names, m[1])
		}
	}
	return dedupeSorted(names)
}

// extractReferencedWidgets collects PascalCase constructor calls whose name
// carries a widget-like suffix, excluding framework builtins.
func extractReferencedWidgets(body string) []string {
	var names []string
	for _, m := range widgetRefRe.FindAllStringSubmatch(body, -1) {
		if !builtinWidgetNames[m[1]] {
			names = append(names, m[1])
		}
	}
	return dedupeSorted(names)
}

// dominantLayout picks the highest-priority layout container present.
// Priority order, not occurrence count: grid beats list beats stack beats
// row beats column.
func dominantLayout(body string) LayoutKind {
	switch {
	case strings.Contains(body, "GridView"):
		return LayoutGrid
	case strings.Contains(body, "ListView"):
		return LayoutList
	case strings.Contains(body, "Stack("):
		return LayoutStack
	case strings.Contains(body, "Row("):
		return LayoutRow
	case strings.Contains(body, "Column("):
		return LayoutColumn
	default:
		return LayoutCustom
	}
}

// buildRouteTable maps screen class names to route paths declared in route
// tables anywhere in the project, e.g. "'/home': (context) => HomeScreen()".
func buildRouteTable(files []source.SourceFile) map[string]string {
	tableEntryRe := regexp.MustCompile(`['"]([^'"]+)['"]\s*:\s*\([^)]*\)\s*=>\s*(?:const\s+)?([A-Z]\w*)\s*\(`)

	routes := map[string]string{}
	keys := map[string][]string{}
	for _, file := range files {
		if !strings.HasSuffix(file.Path, ".dart") {
			continue
		}
		for _, m := range tableEntryRe.FindAllStringSubmatch(file.Content, -1) {
			keys[m[2]] = append(keys[m[2]], m[1])
		}
	}
	// First route wins when a screen is registered under several paths.
	for name, paths := range keys {
		sort.Strings(paths)
		routes[name] = paths[0]
	}
	return routes
}

// inferRoute resolves a screen's route via, in order: an @RoutePage
// annotation with a path, a routeName declaration in the class body, a
// route-table registration, and finally a kebab-case fallback derived from
// the class name. The fallback is best effort and always produces a path.
func inferRoute(name string, file source.SourceFile, body string, routes map[string]string) string {
	if m := routePathAnnoRe.FindStringSubmatch(file.Content); m != nil {
		return m[1]
	}
	if m := routeNameRe.FindStringSubmatch(body); m != nil {
		return m[1]
	}
	if route, ok := routes[name]; ok {
		return route
	}
	return "/" + kebabRouteName(name)
}

// kebabRouteName strips Screen/Page suffixes and kebab-cases the remainder.
func kebabRouteName(name string) string {
	name = strings.TrimSuffix(name, "Screen")
	name = strings.TrimSuffix(name, "Page")
	if name == "" {
		return "home"
	}

	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
