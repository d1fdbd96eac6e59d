// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/persona/internal/app/system/settings"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup resolves the persona settings and applies the missing-setting
// policy: missing keys are always logged, and abort startup only when
// require_settings is on. Otherwise the affected endpoint answers 500.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	values := resolveSettings(appCfg, deps)
	return checkSettings(values, appCfg.RequireSettings, logger)
}

// resolveSettings merges the layers: file < mongo < environment.
func resolveSettings(appCfg AppConfig, deps DBDeps) settings.Values {
	return settings.New(settings.Merge(appCfg.FileSettings, deps.StoredSettings, appCfg.EnvSettings))
}

func checkSettings(values settings.Values, require bool, logger *zap.Logger) error {
	// Log keys only; values may be anything the operator put there.
	logger.Info("persona settings resolved", zap.Strings("keys", values.Keys()))

	missing := values.Missing(settings.Required()...)
	if len(missing) == 0 {
		return nil
	}
	if require {
		logger.Error("required settings missing", zap.Strings("missing", missing))
		return fmt.Errorf("%w: %v", settings.ErrConfigurationMissing, missing)
	}
	logger.Warn("settings missing; their endpoints will return 500", zap.Strings("missing", missing))
	return nil
}
