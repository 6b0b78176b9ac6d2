package scaffold

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeapk/apk-builder-backend/internal/catalog"
)

func TestScaffold_CalculatorTree(t *testing.T) {
	engine := NewEngine(catalog.New())
	dir := t.TempDir()

	err := engine.Scaffold(dir, catalog.ArchetypeCalculator, "com.forge.calc.demo", nil)
	require.NoError(t, err)

	for _, rel := range []string{
		"app/src/main/AndroidManifest.xml",
		"app/src/main/java/com/forge/calc/demo/MainActivity.java",
		"app/src/main/res/layout/activity_main.xml",
		"app/src/main/res/values/strings.xml",
		"app/src/main/res/values/styles.xml",
		"app/build.gradle",
		"build.gradle",
		"settings.gradle",
		"gradle.properties",
		StubArtifactRelPath,
	} {
		_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
		assert.NoError(t, err, "missing %s", rel)
	}

	manifest, err := os.ReadFile(filepath.Join(dir, "app", "src", "main", "AndroidManifest.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), `package="com.forge.calc.demo"`)

	gradleFile, err := os.ReadFile(filepath.Join(dir, "app", "build.gradle"))
	require.NoError(t, err)
	assert.Contains(t, string(gradleFile), `applicationId "com.forge.calc.demo"`)
}

func TestScaffold_StylesOnlyForCalculator(t *testing.T) {
	engine := NewEngine(catalog.New())

	for _, a := range []catalog.Archetype{catalog.ArchetypeWebview, catalog.ArchetypeTodo, catalog.ArchetypeNotes} {
		dir := t.TempDir()
		require.NoError(t, engine.Scaffold(dir, a, "com.forge.x", nil))

		_, err := os.Stat(filepath.Join(dir, "app", "src", "main", "res", "values", "styles.xml"))
		assert.True(t, os.IsNotExist(err), "styles.xml should not exist for %s", a)
	}
}

func TestScaffold_GenericFallbackEchoesArchetype(t *testing.T) {
	engine := NewEngine(catalog.New())
	dir := t.TempDir()

	require.NoError(t, engine.Scaffold(dir, catalog.ArchetypeWeather, "com.forge.wx", nil))

	src, err := os.ReadFile(filepath.Join(dir, "app", "src", "main", "java", "com", "forge", "wx", "MainActivity.java"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "Welcome to your weather app!")
	assert.Contains(t, string(src), "package com.forge.wx;")
}

func TestScaffold_Idempotent(t *testing.T) {
	engine := NewEngine(catalog.New())
	dirA := t.TempDir()
	dirB := t.TempDir()

	require.NoError(t, engine.Scaffold(dirA, catalog.ArchetypeTodo, "com.forge.todo.app", []catalog.Feature{catalog.FeatureDarkMode}))
	require.NoError(t, engine.Scaffold(dirB, catalog.ArchetypeTodo, "com.forge.todo.app", []catalog.Feature{catalog.FeatureDarkMode}))

	// re-scaffolding an already populated tree must also be a no-op
	require.NoError(t, engine.Scaffold(dirA, catalog.ArchetypeTodo, "com.forge.todo.app", []catalog.Feature{catalog.FeatureDarkMode}))

	assert.Equal(t, treeSnapshot(t, dirA), treeSnapshot(t, dirB))
}

func TestScaffold_BadTargetDir(t *testing.T) {
	engine := NewEngine(catalog.New())
	dir := t.TempDir()

	// a file where a directory is needed makes MkdirAll fail
	blocker := filepath.Join(dir, "app")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := engine.Scaffold(dir, catalog.ArchetypeTodo, "com.forge.y", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scaffold")
}

// treeSnapshot maps relative paths to file contents.
func treeSnapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(path, root)
		out[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return out
}
