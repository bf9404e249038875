package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sep = "================================================"

func exportWith(blocks ...[2]string) string {
	var b strings.Builder
	b.WriteString("Directory structure:\n")
	b.WriteString("└── my_app/\n")
	b.WriteString("    ├── lib/\n")
	for _, block := range blocks {
		b.WriteString(sep + "\n")
		b.WriteString("FILE: " + block[0] + "\n")
		b.WriteString(sep + "\n")
		b.WriteString(block[1] + "\n")
	}
	return b.String()
}

func TestParseExport_MultipleBlocks(t *testing.T) {
	content := exportWith(
		[2]string{"lib/main.dart", "void main() {}"},
		[2]string{"pubspec.yaml", "name: my_app"},
		[2]string{"lib/screens/home.dart", "class HomeScreen {}"},
	)

	export := ParseExport(content)

	require.Len(t, export.Files, 3)
	assert.Equal(t, "my_app", export.ProjectName)
	assert.Equal(t, "lib/main.dart", export.Files[0].Path)
	assert.Equal(t, "void main() {}", export.Files[0].Content)
	assert.Equal(t, "name: my_app", export.Files[1].Content)

	// DartFiles is exactly the .dart subset.
	require.Len(t, export.DartFiles, 2)
	assert.Equal(t, "lib/main.dart", export.DartFiles[0].Path)
	assert.Equal(t, "lib/screens/home.dart", export.DartFiles[1].Path)
}

func TestParseExport_SingleBlock(t *testing.T) {
	export := ParseExport(exportWith([2]string{"lib/main.dart", "void main() {}"}))

	require.Len(t, export.Files, 1)
	assert.Equal(t, "lib/main.dart", export.Files[0].Path)
}

func TestParseExport_NoBlocks(t *testing.T) {
	export := ParseExport("Directory structure:\n└── my_app/\n")

	assert.Empty(t, export.Files)
	assert.Empty(t, export.DartFiles)
	assert.Equal(t, "my_app", export.ProjectName)
}

func TestParseExport_EmptyInput(t *testing.T) {
	export := ParseExport("")

	assert.Empty(t, export.Files)
	assert.Equal(t, DefaultProjectName, export.ProjectName)
}

func TestParseExport_TruncatedFinalBlockDropped(t *testing.T) {
	content := exportWith([2]string{"lib/main.dart", "void main() {}"})
	// A trailing block that cuts off before its content separator.
	content += sep + "\nFILE: lib/broken.dart\n"

	export := ParseExport(content)

	require.Len(t, export.Files, 1)
	assert.Equal(t, "lib/main.dart", export.Files[0].Path)
}

func TestParseExport_NextFileTerminatesContent(t *testing.T) {
	content := exportWith(
		[2]string{"a.dart", "first\ncontent"},
		[2]string{"b.dart", "second"},
	)

	export := ParseExport(content)

	require.Len(t, export.Files, 2)
	assert.Equal(t, "first\ncontent", export.Files[0].Content)
	assert.NotContains(t, export.Files[0].Content, "second")
}

func TestParseExport_NoPreambleName(t *testing.T) {
	content := sep + "\nFILE: lib/main.dart\n" + sep + "\nvoid main() {}\n"

	export := ParseExport(content)

	require.Len(t, export.Files, 1)
	assert.Equal(t, DefaultProjectName, export.ProjectName)
}

func TestExport_Find(t *testing.T) {
	export := ParseExport(exportWith(
		[2]string{"pubspec.yaml", "name: my_app"},
		[2]string{"lib/main.dart", "void main() {}"},
	))

	require.NotNil(t, export.Find("pubspec.yaml"))
	assert.Equal(t, "name: my_app", export.Find("pubspec.yaml").Content)
	assert.Nil(t, export.Find("missing.dart"))
}
