// Package catalog holds the static registry of application archetypes the
// builder can scaffold. The catalog is constructed once at process start and
// passed to the classifier and scaffolding engine; it is never mutated.
package catalog

// Archetype identifies one of the supported application categories.
type Archetype string

const (
	ArchetypeCalculator Archetype = "calculator"
	ArchetypeWebview    Archetype = "webview"
	ArchetypeTodo       Archetype = "todo"
	ArchetypeNotes      Archetype = "notes"
	ArchetypeWeather    Archetype = "weather"
	ArchetypeGame       Archetype = "game"
)

// DefaultArchetype is selected when no keyword matches the description.
const DefaultArchetype = ArchetypeWebview

// Feature identifies an optional capability detected in a description.
type Feature string

const (
	FeatureDarkMode       Feature = "dark_mode"
	FeatureNotifications  Feature = "notifications"
	FeatureDatabase       Feature = "database"
	FeatureSharing        Feature = "sharing"
	FeatureAuthentication Feature = "authentication"
)

// Definition describes one archetype: display metadata plus the keyword set
// that maps free text onto it.
type Definition struct {
	ID          Archetype `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Complexity  string    `json:"complexity"`
	Keywords    []string  `json:"-"`
}

// FeatureDefinition pairs a feature flag with its trigger keywords.
type FeatureDefinition struct {
	ID       Feature
	Keywords []string
}

// Catalog is the immutable archetype registry.
type Catalog struct {
	archetypes []Definition
	features   []FeatureDefinition
	byID       map[Archetype]Definition
}

// New builds the fixed catalog. Archetype order is significant: the
// classifier resolves keyword ties by position in this slice, so reordering
// entries changes classification results.
func New() *Catalog {
	archetypes := []Definition{
		{
			ID:          ArchetypeCalculator,
			Name:        "Calculator",
			Description: "A simple calculator app with basic operations",
			Icon:        "🧮",
			Complexity:  "simple",
			Keywords:    []string{"calculator", "calculate", "math", "arithmetic", "add", "subtract"},
		},
		{
			ID:          ArchetypeWebview,
			Name:        "WebView App",
			Description: "An Android app that displays a website",
			Icon:        "🌐",
			Complexity:  "simple",
			Keywords:    []string{"website", "web", "http", "blog", "site", "browser"},
		},
		{
			ID:          ArchetypeTodo,
			Name:        "Todo List",
			Description: "A simple todo list app",
			Icon:        "✅",
			Complexity:  "medium",
			Keywords:    []string{"todo", "to-do", "task", "checklist", "reminder", "schedule"},
		},
		{
			ID:          ArchetypeNotes,
			Name:        "Notes App",
			Description: "A note-taking application",
			Icon:        "📝",
			Complexity:  "medium",
			Keywords:    []string{"note", "notepad", "write", "journal", "diary"},
		},
		{
			ID:          ArchetypeWeather,
			Name:        "Weather App",
			Description: "A weather forecast application",
			Icon:        "⛅",
			Complexity:  "advanced",
			Keywords:    []string{"weather", "forecast", "temperature", "climate"},
		},
		{
			ID:          ArchetypeGame,
			Name:        "Simple Game",
			Description: "A basic game like tic-tac-toe",
			Icon:        "🎮",
			Complexity:  "advanced",
			Keywords:    []string{"game", "play", "fun", "entertain", "tic-tac-toe", "puzzle"},
		},
	}

	features := []FeatureDefinition{
		{ID: FeatureDarkMode, Keywords: []string{"dark", "dark mode"}},
		{ID: FeatureNotifications, Keywords: []string{"notification"}},
		{ID: FeatureDatabase, Keywords: []string{"database", "store", "save"}},
		{ID: FeatureSharing, Keywords: []string{"share"}},
		{ID: FeatureAuthentication, Keywords: []string{"login", "sign in"}},
	}

	byID := make(map[Archetype]Definition, len(archetypes))
	for _, d := range archetypes {
		byID[d.ID] = d
	}

	return &Catalog{archetypes: archetypes, features: features, byID: byID}
}

// Archetypes returns the definitions in priority order.
func (c *Catalog) Archetypes() []Definition {
	out := make([]Definition, len(c.archetypes))
	copy(out, c.archetypes)
	return out
}

// Features returns the feature definitions in detection order.
func (c *Catalog) Features() []FeatureDefinition {
	out := make([]FeatureDefinition, len(c.features))
	copy(out, c.features)
	return out
}

// Lookup returns the definition for an archetype. ok is false for archetypes
// outside the catalog.
func (c *Catalog) Lookup(a Archetype) (Definition, bool) {
	d, ok := c.byID[a]
	return d, ok
}

// AppName returns the launcher display name for an archetype.
func (c *Catalog) AppName(a Archetype) string {
	switch a {
	case ArchetypeCalculator:
		return "Forge Calculator"
	case ArchetypeWebview:
		return "Forge Browser"
	case ArchetypeTodo:
		return "Forge Todo"
	case ArchetypeNotes:
		return "Forge Notes"
	case ArchetypeWeather:
		return "Forge Weather"
	case ArchetypeGame:
		return "Forge Game"
	default:
		return "Forge App"
	}
}
