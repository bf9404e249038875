package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindClassDeclarations(t *testing.T) {
	src := `
import 'package:flutter/material.dart';

class HomeScreen extends StatelessWidget {
  const HomeScreen({super.key});
}

abstract class Repository {
  void save();
}

class User {
  final String name;
}
`
	decls := FindClassDeclarations(src)
	require.Len(t, decls, 3)

	assert.Equal(t, "HomeScreen", decls[0].Name)
	assert.Equal(t, "StatelessWidget", decls[0].Superclass)
	assert.Equal(t, "Repository", decls[1].Name)
	assert.Empty(t, decls[1].Superclass)
	assert.Equal(t, "User", decls[2].Name)

	// Start points at the declaration keyword, not preceding whitespace.
	for _, d := range decls {
		assert.True(t, strings.HasPrefix(src[d.Start:], "class ") ||
			strings.HasPrefix(src[d.Start:], "abstract class "))
	}
}

func TestExtractClassBody_Balanced(t *testing.T) {
	src := `class Counter {
  int value = 0;
  void bump() {
    if (value < 10) { value++; }
  }
}
class Next {}`

	body := ExtractClassBody(src, 0)

	assert.True(t, strings.HasPrefix(body, "class Counter {"))
	assert.True(t, strings.HasSuffix(body, "}"))
	assert.NotContains(t, body, "Next")
	assert.Contains(t, body, "value++")
}

func TestExtractClassBody_IgnoresBracesBeforeOpen(t *testing.T) {
	// A generic bound with braces on the declaration line must not count.
	src := "class Box<T extends Map<String, {int}>> {\n  T? item;\n}\nclass After {}"

	body := ExtractClassBody(src, 0)
	assert.NotContains(t, body, "After")
}

func TestExtractClassBody_Unbalanced(t *testing.T) {
	src := `class Broken {
  void m() {
`
	body := ExtractClassBody(src, 0)
	assert.Equal(t, src, body)
}

func TestExtractClassBody_OutOfRangeStart(t *testing.T) {
	assert.Empty(t, ExtractClassBody("class A {}", -1))
	assert.Empty(t, ExtractClassBody("class A {}", 100))
}

func TestWidgetKindOf(t *testing.T) {
	cases := map[string]WidgetKind{
		"StatelessWidget":        KindStateless,
		"ConsumerWidget":         KindStateless,
		"StatefulWidget":         KindStateful,
		"ConsumerStatefulWidget": KindStateful,
		"HookWidget":             KindHook,
		"HookConsumerWidget":     KindHook,
	}
	for super, want := range cases {
		kind, ok := WidgetKindOf(super)
		require.True(t, ok, super)
		assert.Equal(t, want, kind, super)
	}

	_, ok := WidgetKindOf("Object")
	assert.False(t, ok)
}

func TestIsGeneratedPath(t *testing.T) {
	assert.True(t, isGeneratedPath("lib/models/user.g.dart"))
	assert.True(t, isGeneratedPath("lib/models/user.freezed.dart"))
	assert.True(t, isGeneratedPath("lib/router.gr.dart"))
	assert.False(t, isGeneratedPath("lib/models/user.dart"))
}
