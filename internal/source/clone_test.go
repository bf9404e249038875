package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanup_RemovesDirectory(t *testing.T) {
	dir, err := os.MkdirTemp("", "phoenix-clone-")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f.dart"), []byte("x"), 0644))

	require.NoError(t, Cleanup(dir))

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestCleanup_MissingDirectoryIsNotAnError(t *testing.T) {
	assert.NoError(t, Cleanup(filepath.Join(t.TempDir(), "never-created")))
}

func TestCollectSourceFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "lib", "screens"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "build"), 0755))

	write := func(rel, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(root, filepath.FromSlash(rel)), []byte(content), 0644))
	}
	write("pubspec.yaml", "name: my_app")
	write("lib/main.dart", "void main() {}")
	write("lib/screens/home_screen.dart", "class HomeScreen {}")
	write("README.md", "docs")
	write("build/generated.dart", "ignored")

	files, err := CollectSourceFiles(root)
	require.NoError(t, err)

	byPath := map[string]string{}
	for _, f := range files {
		byPath[f.Path] = f.Content
	}

	assert.Equal(t, "name: my_app", byPath["pubspec.yaml"])
	assert.Equal(t, "void main() {}", byPath["lib/main.dart"])
	assert.Contains(t, byPath, "lib/screens/home_screen.dart")
	assert.NotContains(t, byPath, "README.md")
	assert.NotContains(t, byPath, "build/generated.dart")
}
