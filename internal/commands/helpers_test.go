package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRemoteURL(t *testing.T) {
	assert.True(t, isRemoteURL("https://github.com/user/app.git"))
	assert.True(t, isRemoteURL("http://example.com/repo"))
	assert.True(t, isRemoteURL("git@github.com:user/app.git"))
	assert.True(t, isRemoteURL("ssh://git@example.com/repo.git"))
	assert.False(t, isRemoteURL("./local/path"))
	assert.False(t, isRemoteURL("export.txt"))
}

func TestLoadSource_Directory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "lib"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pubspec.yaml"),
		[]byte("name: disk_app\ndependencies:\n  provider: ^6.0.0\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "lib", "main.dart"),
		[]byte("void main() {}"), 0644))

	in, err := loadSource(context.Background(), root, "", 1)
	require.NoError(t, err)
	defer in.Close()

	assert.Equal(t, "disk_app", in.ProjectName)
	assert.Equal(t, root, in.LocalPath)
	require.NotNil(t, in.Meta)
	assert.Equal(t, "provider", in.Meta.Profile.StateManagement)
	assert.Len(t, in.Files, 2)
}

func TestLoadSource_ExportFile(t *testing.T) {
	sep := "================================================"
	export := "Directory structure:\n└── exported_app/\n" +
		sep + "\nFILE: pubspec.yaml\n" + sep + "\nname: exported_app\n" +
		sep + "\nFILE: lib/main.dart\n" + sep + "\nvoid main() {}\n"

	path := filepath.Join(t.TempDir(), "export.txt")
	require.NoError(t, os.WriteFile(path, []byte(export), 0644))

	in, err := loadSource(context.Background(), path, "", 1)
	require.NoError(t, err)
	defer in.Close()

	assert.Equal(t, "exported_app", in.ProjectName)
	assert.Empty(t, in.LocalPath)
	require.NotNil(t, in.Meta)
	assert.Len(t, in.Files, 2)
}

func TestLoadSource_MissingInput(t *testing.T) {
	_, err := loadSource(context.Background(), filepath.Join(t.TempDir(), "nope"), "", 1)
	assert.Error(t, err)
}

func TestSourceInput_CloseIsNilSafe(t *testing.T) {
	var in *sourceInput
	in.Close()
	(&sourceInput{}).Close()
}
