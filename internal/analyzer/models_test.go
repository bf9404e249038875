package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elev8tion/phoenix/internal/source"
)

func TestExtractModels_FieldsAndSerialization(t *testing.T) {
	files := []source.SourceFile{widgetFile("lib/models/user.dart", `
class User {
  const User({required this.id, required this.name, this.email});

  final int id;
  final String name;
  final String? email;

  factory User.fromJson(Map<String, dynamic> json) => User(
        id: json['id'] as int,
        name: json['name'] as String,
      );

  Map<String, dynamic> toJson() => {'id': id, 'name': name};
}
`)}

	models := New().ExtractModels(files)
	require.Len(t, models, 1)

	m := models[0]
	assert.Equal(t, "User", m.Name)
	assert.True(t, m.HasJSONSerialization)
	assert.False(t, m.IsFreezed)
	require.Len(t, m.Fields, 3)

	assert.Equal(t, "id", m.Fields[0].Name)
	assert.Equal(t, "int", m.Fields[0].Type)
	assert.False(t, m.Fields[0].Nullable)

	assert.Equal(t, "email", m.Fields[2].Name)
	assert.Equal(t, "String?", m.Fields[2].Type)
	assert.True(t, m.Fields[2].Nullable)
}

func TestExtractModels_FreezedAnnotation(t *testing.T) {
	files := []source.SourceFile{widgetFile("lib/models/order.dart", `
@freezed
class Order with _$Order {
  const factory Order({required String id}) = _Order;
}
`)}

	models := New().ExtractModels(files)
	require.Len(t, models, 1)
	assert.True(t, models[0].IsFreezed)
}

func TestExtractModels_ScopedToModelDirectories(t *testing.T) {
	files := []source.SourceFile{
		widgetFile("lib/domain/entities/product.dart", "class Product {\n  final String sku;\n}\n"),
		widgetFile("lib/screens/home_screen.dart", "class NotAModel {\n  final int x;\n}\n"),
		widgetFile("lib/models/user.g.dart", "class Generated {}\n"),
	}

	models := New().ExtractModels(files)
	require.Len(t, models, 1)
	assert.Equal(t, "Product", models[0].Name)
}

func TestExtractModels_WidgetsInModelDirSkipped(t *testing.T) {
	files := []source.SourceFile{widgetFile("lib/models/misfiled.dart", `
class MisfiledCard extends StatelessWidget {
  const MisfiledCard({super.key});
}
`)}

	assert.Empty(t, New().ExtractModels(files))
}

func TestExtractModels_NoJSONWithoutBothHooks(t *testing.T) {
	files := []source.SourceFile{widgetFile("lib/models/note.dart", `
class Note {
  final String text;
  Map<String, dynamic> toJson() => {'text': text};
}
`)}

	models := New().ExtractModels(files)
	require.Len(t, models, 1)
	assert.False(t, models[0].HasJSONSerialization)
}
