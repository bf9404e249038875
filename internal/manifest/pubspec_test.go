package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePubspecBytes_RiverpodProfile(t *testing.T) {
	meta, err := ParsePubspecBytes([]byte(`
name: my_app
description: A test app.
environment:
  sdk: ">=3.0.0 <4.0.0"
dependencies:
  flutter_riverpod: ^2.4.0
  dio: ^5.0.0
  go_router: ^12.0.0
dev_dependencies:
  build_runner: ^2.4.0
  freezed: ^2.4.0
`))
	require.NoError(t, err)

	assert.Equal(t, "my_app", meta.Name)
	assert.Equal(t, "riverpod", meta.Profile.StateManagement)
	assert.Equal(t, ProfileNone, meta.Profile.Persistence)
	assert.Equal(t, "dio", meta.Profile.Networking)
	assert.Equal(t, "go_router", meta.Profile.Navigation)
	assert.True(t, meta.UsesBuildRunner)
	assert.True(t, meta.UsesFreezed)
	assert.False(t, meta.UsesJSONSerializable)
}

func TestParsePubspecBytes_NoKnownPackages(t *testing.T) {
	meta, err := ParsePubspecBytes([]byte(`
name: plain_app
dependencies:
  cupertino_icons: ^1.0.0
`))
	require.NoError(t, err)

	assert.Equal(t, ProfileNone, meta.Profile.StateManagement)
	assert.Equal(t, ProfileNone, meta.Profile.Persistence)
	assert.Equal(t, ProfileNone, meta.Profile.Networking)
	assert.Equal(t, ProfileNone, meta.Profile.Navigation)
}

func TestParsePubspecBytes_CategoryOrderWins(t *testing.T) {
	// riverpod is declared before bloc in the category table, so a project
	// carrying both resolves to riverpod.
	meta, err := ParsePubspecBytes([]byte(`
name: both
dependencies:
  flutter_bloc: ^8.0.0
  flutter_riverpod: ^2.0.0
`))
	require.NoError(t, err)

	assert.Equal(t, "riverpod", meta.Profile.StateManagement)
}

func TestParsePubspecBytes_SDKBounds(t *testing.T) {
	meta, err := ParsePubspecBytes([]byte(`
name: my_app
environment:
  sdk: ">=2.19.6 <3.0.0"
`))
	require.NoError(t, err)

	assert.Equal(t, "2.19.6", meta.SDKMin)
	assert.Equal(t, "3.0.0", meta.SDKMax)
}

func TestParsePubspecBytes_SDKBoundDefaults(t *testing.T) {
	meta, err := ParsePubspecBytes([]byte("name: my_app\n"))
	require.NoError(t, err)

	assert.Equal(t, "2.12.0", meta.SDKMin)
	assert.Equal(t, "4.0.0", meta.SDKMax)
}

func TestParsePubspecBytes_MissingNameDefaults(t *testing.T) {
	meta, err := ParsePubspecBytes([]byte("description: nameless\n"))
	require.NoError(t, err)

	assert.Equal(t, "flutter_app", meta.Name)
}

func TestParsePubspecBytes_MalformedYAML(t *testing.T) {
	_, err := ParsePubspecBytes([]byte("name: [unclosed"))
	assert.Error(t, err)
}

func TestParsePubspec_NotFound(t *testing.T) {
	_, err := ParsePubspec(t.TempDir())
	assert.ErrorIs(t, err, ErrPubspecNotFound)
}

func TestParsePubspec_ReadsFromRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "pubspec.yaml"),
		[]byte("name: on_disk\ndependencies:\n  sqflite: ^2.0.0\n"), 0644))

	meta, err := ParsePubspec(root)
	require.NoError(t, err)

	assert.Equal(t, "on_disk", meta.Name)
	assert.Equal(t, "sqflite", meta.Profile.Persistence)
}
