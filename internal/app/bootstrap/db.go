// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	settingsstore "github.com/dalemusser/persona/internal/app/store/settings"
	"github.com/dalemusser/persona/internal/app/system/settings"
	"github.com/dalemusser/persona/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB connects to MongoDB when the Mongo settings source is enabled
// and reads the stored settings once. Settings are not re-read while the
// process runs.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if !appCfg.MongoEnabled() {
		logger.Info("mongo settings source disabled")
		return DBDeps{}, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeouts.Schema())
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(appCfg.MongoURI))
	if err != nil {
		logger.Error("mongo connect failed", zap.Error(err))
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, timeouts.Ping())
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		logger.Error("mongo ping failed", zap.Error(err))
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(appCfg.MongoDatabase)
	store := settingsstore.New(db)
	stored, err := loadStoredSettings(ctx, store, logger)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, err
	}
	if appCfg.SeedSettings {
		if err := seedStoredSettings(ctx, store, appCfg.FileSettings, stored, logger); err != nil {
			_ = client.Disconnect(context.Background())
			return DBDeps{}, err
		}
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
		zap.Int("stored_settings", len(stored)))

	return DBDeps{
		PersonaMongoClient:   client,
		PersonaMongoDatabase: db,
		StoredSettings:       stored,
	}, nil
}

func loadStoredSettings(ctx context.Context, store *settingsstore.Store, logger *zap.Logger) (map[string]string, error) {
	readCtx, cancel := timeouts.WithTimeout(ctx, timeouts.Read(), logger, "load stored settings")
	defer cancel()

	stored, err := store.All(readCtx)
	if err != nil {
		logger.Error("load stored settings failed", zap.Error(err))
		return nil, fmt.Errorf("load stored settings: %w", err)
	}
	return stored, nil
}

// seedStoredSettings saves each file setting that has no stored value and
// records it in stored. Existing stored values are never overwritten.
func seedStoredSettings(ctx context.Context, store *settingsstore.Store, file, stored map[string]string, logger *zap.Logger) error {
	writeCtx, cancel := timeouts.WithTimeout(ctx, timeouts.Read(), logger, "seed stored settings")
	defer cancel()

	for _, key := range settings.New(file).Keys() {
		if _, ok := stored[key]; ok {
			continue
		}
		if err := store.Save(writeCtx, key, file[key]); err != nil {
			logger.Error("seed setting failed", zap.String("setting", key), zap.Error(err))
			return fmt.Errorf("seed setting %q: %w", key, err)
		}
		stored[key] = file[key]
		logger.Info("seeded setting into MongoDB", zap.String("setting", key))
	}
	return nil
}

// EnsureSchema creates the persona_settings indexes when Mongo is enabled.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.PersonaMongoDatabase == nil {
		return nil
	}

	schemaCtx, cancel := timeouts.WithTimeout(ctx, timeouts.Schema(), logger, "ensure persona_settings indexes")
	defer cancel()

	if err := settingsstore.New(deps.PersonaMongoDatabase).EnsureIndexes(schemaCtx); err != nil {
		logger.Error("ensure schema failed", zap.Error(err))
		return err
	}
	return nil
}
