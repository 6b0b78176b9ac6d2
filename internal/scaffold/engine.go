// Package scaffold materializes a parameterized Android project tree from
// the archetype templates. All rendering is pure string substitution, so
// scaffolding the same inputs twice produces byte-identical output.
package scaffold

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/forgeapk/apk-builder-backend/internal/builds/domain"
	"github.com/forgeapk/apk-builder-backend/internal/catalog"
)

// StubArtifactRelPath is the conventional debug APK output location, used
// for the placeholder artifact written during scaffolding.
const StubArtifactRelPath = "app/build/outputs/apk/debug/app-debug.apk"

// Engine renders project trees for catalog archetypes.
type Engine struct {
	cat *catalog.Catalog
}

func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Scaffold writes the full project tree for an archetype under targetDir:
// manifest, main activity source, layout and string resources, styling for
// archetypes that need it, gradle build configuration, and the placeholder
// artifact. Existing files are overwritten.
func (e *Engine) Scaffold(targetDir string, archetype catalog.Archetype, packageName string, features []catalog.Feature) error {
	srcMain := filepath.Join(targetDir, "app", "src", "main")
	javaDir := filepath.Join(srcMain, "java", filepath.FromSlash(strings.ReplaceAll(packageName, ".", "/")))

	dirs := []string{
		javaDir,
		filepath.Join(srcMain, "res", "layout"),
		filepath.Join(srcMain, "res", "values"),
		filepath.Join(srcMain, "res", "drawable"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &domain.ScaffoldError{Path: dir, Err: err}
		}
	}

	sub := strings.NewReplacer(
		"__PACKAGE__", packageName,
		"__APP_TYPE__", string(archetype),
		"__APP_NAME__", e.cat.AppName(archetype),
	)

	activityRel := "app/src/main/java/" + strings.ReplaceAll(packageName, ".", "/") + "/MainActivity.java"

	files := []struct {
		rel     string
		content string
	}{
		{"app/src/main/AndroidManifest.xml", manifestTemplate},
		{activityRel, activityTemplate(archetype)},
		{"app/src/main/res/layout/activity_main.xml", layoutTemplate(archetype)},
		{"app/src/main/res/values/strings.xml", stringsTemplate},
		{"app/build.gradle", appBuildGradleTemplate},
		{"build.gradle", rootBuildGradleTemplate},
		{"settings.gradle", settingsGradleTemplate},
		{"gradle.properties", gradlePropertiesTemplate},
	}

	if archetype == catalog.ArchetypeCalculator {
		files = append(files, struct {
			rel     string
			content string
		}{"app/src/main/res/values/styles.xml", calculatorStylesTemplate})
	}

	for _, f := range files {
		if err := writeFile(filepath.Join(targetDir, filepath.FromSlash(f.rel)), sub.Replace(f.content)); err != nil {
			return err
		}
	}

	return e.writeStubArtifact(targetDir)
}

// writeStubArtifact drops the placeholder APK at the conventional gradle
// output path. The real build overwrites it.
func (e *Engine) writeStubArtifact(targetDir string) error {
	stub := filepath.Join(targetDir, filepath.FromSlash(StubArtifactRelPath))
	if err := os.MkdirAll(filepath.Dir(stub), 0o755); err != nil {
		return &domain.ScaffoldError{Path: filepath.Dir(stub), Err: err}
	}
	return writeFile(stub, stubArtifactContent)
}

// activityTemplate selects the source entry template for an archetype. The
// switch is total over the catalog; anything else gets the generic template.
func activityTemplate(a catalog.Archetype) string {
	switch a {
	case catalog.ArchetypeCalculator:
		return calculatorActivityTemplate
	case catalog.ArchetypeWebview:
		return webviewActivityTemplate
	case catalog.ArchetypeTodo:
		return todoActivityTemplate
	case catalog.ArchetypeNotes, catalog.ArchetypeWeather, catalog.ArchetypeGame:
		return genericActivityTemplate
	default:
		return genericActivityTemplate
	}
}

func layoutTemplate(a catalog.Archetype) string {
	switch a {
	case catalog.ArchetypeCalculator:
		return calculatorLayoutTemplate
	case catalog.ArchetypeWebview:
		return webviewLayoutTemplate
	case catalog.ArchetypeTodo:
		return todoLayoutTemplate
	case catalog.ArchetypeNotes, catalog.ArchetypeWeather, catalog.ArchetypeGame:
		return genericLayoutTemplate
	default:
		return genericLayoutTemplate
	}
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &domain.ScaffoldError{Path: path, Err: err}
	}
	return nil
}
