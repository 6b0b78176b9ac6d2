// Package classify turns a free-text app description into an archetype,
// feature set and package identifier. Classification is deterministic
// keyword dispatch, not language understanding.
package classify

import (
	"strings"

	"github.com/forgeapk/apk-builder-backend/internal/catalog"
)

const (
	// PackagePrefix is the fixed namespace every generated package id starts with.
	PackagePrefix = "com.forge."
	// MaxPackageLen bounds the derived package identifier.
	MaxPackageLen = 50
)

// Classification is the result of analyzing one description. It is embedded
// into the project record and never persisted on its own.
type Classification struct {
	Archetype        catalog.Archetype `json:"app_type"`
	Features         []catalog.Feature `json:"features"`
	PackageName      string            `json:"package_name"`
	DetectedFeatures int               `json:"detected_features"`
}

// Classify analyzes a description against the catalog. It never fails: when
// no archetype keyword matches, the catalog default is returned.
//
// Archetype resolution walks the catalog in priority order and the first
// archetype with any keyword hit wins, regardless of how many keywords of a
// later archetype also match. A description mentioning both "website" and
// "todo" therefore always resolves to the archetype listed first.
func Classify(cat *catalog.Catalog, description string) Classification {
	text := strings.ToLower(description)

	archetype := catalog.DefaultArchetype
	for _, def := range cat.Archetypes() {
		if containsAny(text, def.Keywords) {
			archetype = def.ID
			break
		}
	}

	var features []catalog.Feature
	seen := make(map[catalog.Feature]bool)
	for _, fd := range cat.Features() {
		if seen[fd.ID] {
			continue
		}
		if containsAny(text, fd.Keywords) {
			features = append(features, fd.ID)
			seen[fd.ID] = true
		}
	}

	return Classification{
		Archetype:        archetype,
		Features:         features,
		PackageName:      derivePackageName(text),
		DetectedFeatures: len(features),
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// derivePackageName builds a dotted identifier from the first three words of
// the lower-cased description, e.g. "i want a calculator" -> "com.forge.i.want.a".
// Characters outside [a-z0-9._] are dropped and the result is capped at
// MaxPackageLen.
func derivePackageName(loweredText string) string {
	words := strings.Fields(loweredText)
	if len(words) > 3 {
		words = words[:3]
	}

	name := PackagePrefix + strings.Join(words, ".")
	name = strings.ReplaceAll(name, " ", "_")

	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' || r == '_' {
			b.WriteRune(r)
		}
	}
	name = b.String()

	if len(name) > MaxPackageLen {
		name = name[:MaxPackageLen]
	}
	return name
}
