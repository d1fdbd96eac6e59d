// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/persona/internal/app/system/settings"
	"github.com/dalemusser/persona/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// EnvPrefix is the prefix for app keys (PERSONA_MONGO_URI, ...) and for
// the settings overlay (PERSONA_AUTHOR, PERSONA_LIFE_QUOTE, PERSONA_PURPOSE).
const EnvPrefix = "PERSONA"

// appConfigKeys defines the configuration keys for the persona service.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: settings_file, mongo_uri, etc.
//   - Environment variables: PERSONA_SETTINGS_FILE, PERSONA_MONGO_URI, etc.
//   - Command-line flags: --settings_file, --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	{Name: "settings_file", Default: "", Desc: "Settings file (.yaml, .yml, .toml or .json) with author, life_quote and purpose"},
	{Name: "require_settings", Default: false, Desc: "Abort startup when author, life_quote or purpose is missing"},
	{Name: "mongo_uri", Default: "", Desc: "MongoDB URI for the persona_settings source (blank disables it)"},
	{Name: "mongo_database", Default: "persona", Desc: "MongoDB database name"},
	{Name: "seed_settings", Default: false, Desc: "Store settings_file values that are missing from MongoDB (requires mongo_uri)"},
	{Name: "metrics_enabled", Default: true, Desc: "Serve Prometheus metrics at /metrics"},
}

// LoadConfig loads WAFFLE core config and app-specific config, then reads
// the file and environment settings layers.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SettingsFile:    appValues.String("settings_file"),
		RequireSettings: appValues.Bool("require_settings"),
		MongoURI:        appValues.String("mongo_uri"),
		MongoDatabase:   appValues.String("mongo_database"),
		SeedSettings:    appValues.Bool("seed_settings"),
		MetricsEnabled:  appValues.Bool("metrics_enabled"),
	}

	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts configured from environment", zap.Int("count", n))
	}

	if err := buildSettingsLayers(&appCfg); err != nil {
		logger.Error("settings load failed", zap.Error(err))
		return nil, AppConfig{}, err
	}
	logger.Info("settings layers loaded",
		zap.String("settings_file", appCfg.SettingsFile),
		zap.Int("file_keys", len(appCfg.FileSettings)),
		zap.Int("env_keys", len(appCfg.EnvSettings)))

	return coreCfg, appCfg, nil
}

// buildSettingsLayers reads the settings file (if any) and the
// PERSONA_<KEY> environment overlay into appCfg.
func buildSettingsLayers(appCfg *AppConfig) error {
	if appCfg.SettingsFile != "" {
		fileSettings, err := settings.LoadFile(appCfg.SettingsFile)
		if err != nil {
			return err
		}
		appCfg.FileSettings = fileSettings
	}
	appCfg.EnvSettings = settings.FromEnv(EnvPrefix, settings.Required()...)
	return nil
}

// ValidateConfig performs app-specific config validation.
//
// The Mongo URI is only checked when the Mongo source is enabled. Missing
// settings are not checked here because the Mongo layer has not been read
// yet; Startup applies that policy.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if !appCfg.MongoEnabled() {
		if appCfg.SeedSettings {
			return fmt.Errorf("seed_settings requires mongo_uri to be set")
		}
		return nil
	}
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.MongoDatabase == "" {
		return fmt.Errorf("mongo_database must be set when mongo_uri is set")
	}
	return nil
}
