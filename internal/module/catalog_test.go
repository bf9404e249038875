package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elev8tion/phoenix/internal/manifest"
)

func TestCatalog_EntriesAreComplete(t *testing.T) {
	entries := Catalog()
	require.NotEmpty(t, entries)

	for _, m := range entries {
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.ConfigureTool, m.Name)
		assert.NotEmpty(t, m.GenerateTool, m.Name)
	}
}

func TestLookup(t *testing.T) {
	m, ok := Lookup(ModuleDatabase)
	require.True(t, ok)
	assert.Equal(t, "configure_database", m.ConfigureTool)

	_, ok = Lookup("nonexistent")
	assert.False(t, ok)
}

func TestSelectNames_FromProfile(t *testing.T) {
	profile := manifest.DependencyProfile{
		StateManagement: "riverpod",
		Persistence:     "sqflite",
		Networking:      manifest.ProfileNone,
		Navigation:      "go_router",
	}

	selected, unknown := SelectNames(profile, nil)

	assert.Empty(t, unknown)
	assert.Equal(t, []string{
		ModuleStateManagement,
		ModuleDatabase,
		ModuleNavigation,
		ModuleTheme,
	}, selected)
}

func TestSelectNames_ThemeAlwaysIncluded(t *testing.T) {
	none := manifest.DependencyProfile{
		StateManagement: manifest.ProfileNone,
		Persistence:     manifest.ProfileNone,
		Networking:      manifest.ProfileNone,
		Navigation:      manifest.ProfileNone,
	}

	selected, _ := SelectNames(none, nil)
	assert.Equal(t, []string{ModuleTheme}, selected)
}

func TestSelectNames_Overrides(t *testing.T) {
	none := manifest.DependencyProfile{
		StateManagement: manifest.ProfileNone,
		Persistence:     manifest.ProfileNone,
		Networking:      manifest.ProfileNone,
		Navigation:      manifest.ProfileNone,
	}

	selected, unknown := SelectNames(none, map[string]bool{
		ModuleSecurity: true,
		ModuleTheme:    false,
		"bogus":        true,
	})

	assert.Equal(t, []string{ModuleSecurity}, selected)
	assert.Equal(t, []string{"bogus"}, unknown)
}
