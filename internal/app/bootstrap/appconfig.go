// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// App keys come from waffle's config layer (flags > env > files >
// defaults). The persona settings themselves are assembled from their own
// layers so that an explicitly empty value can be told apart from an
// unset one; see buildSettingsLayers.
type AppConfig struct {
	// Settings sources
	SettingsFile    string // YAML/TOML/JSON file with author, life_quote, purpose
	RequireSettings bool   // abort startup when a required setting is missing

	// Optional MongoDB settings source (disabled when MongoURI is empty)
	MongoURI      string
	MongoDatabase string
	SeedSettings  bool // copy file settings missing from Mongo into it at connect time

	MetricsEnabled bool

	// Settings layers captured at load time. Mongo sits between them.
	FileSettings map[string]string
	EnvSettings  map[string]string
}

// MongoEnabled reports whether the Mongo settings source is configured.
func (c AppConfig) MongoEnabled() bool {
	return c.MongoURI != ""
}
