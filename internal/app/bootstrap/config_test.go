package bootstrap

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dalemusser/waffle/config"
)

func TestBuildSettingsLayers_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persona.yaml")
	content := "author: File Author\nlife_quote: Carpe diem\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write settings file: %v", err)
	}
	t.Setenv("PERSONA_AUTHOR", "Env Author")
	t.Setenv("PERSONA_LIFE_QUOTE", "")
	os.Unsetenv("PERSONA_LIFE_QUOTE")
	t.Setenv("PERSONA_PURPOSE", "")
	os.Unsetenv("PERSONA_PURPOSE")

	appCfg := AppConfig{SettingsFile: path}
	if err := buildSettingsLayers(&appCfg); err != nil {
		t.Fatalf("buildSettingsLayers: %v", err)
	}

	wantFile := map[string]string{"author": "File Author", "life_quote": "Carpe diem"}
	if !reflect.DeepEqual(appCfg.FileSettings, wantFile) {
		t.Errorf("FileSettings = %v, want %v", appCfg.FileSettings, wantFile)
	}
	wantEnv := map[string]string{"author": "Env Author"}
	if !reflect.DeepEqual(appCfg.EnvSettings, wantEnv) {
		t.Errorf("EnvSettings = %v, want %v", appCfg.EnvSettings, wantEnv)
	}
}

func TestBuildSettingsLayers_NoFile(t *testing.T) {
	appCfg := AppConfig{}
	if err := buildSettingsLayers(&appCfg); err != nil {
		t.Fatalf("buildSettingsLayers: %v", err)
	}
	if appCfg.FileSettings != nil {
		t.Errorf("FileSettings = %v, want nil", appCfg.FileSettings)
	}
}

func TestBuildSettingsLayers_BadFile(t *testing.T) {
	appCfg := AppConfig{SettingsFile: filepath.Join(t.TempDir(), "missing.toml")}
	if err := buildSettingsLayers(&appCfg); err == nil {
		t.Error("expected error for unreadable settings file")
	}
}

func TestValidateConfig_MongoDisabled(t *testing.T) {
	if err := ValidateConfig(&config.CoreConfig{}, AppConfig{}, testLogger()); err != nil {
		t.Errorf("ValidateConfig: %v", err)
	}
}

func TestValidateConfig_MongoDatabaseRequired(t *testing.T) {
	appCfg := AppConfig{MongoURI: "mongodb://localhost:27017"}
	if err := ValidateConfig(&config.CoreConfig{}, appCfg, testLogger()); err == nil {
		t.Error("expected error when mongo_database is empty")
	}
}

func TestMongoEnabled(t *testing.T) {
	if (AppConfig{}).MongoEnabled() {
		t.Error("MongoEnabled should be false without a URI")
	}
	if !(AppConfig{MongoURI: "mongodb://localhost:27017"}).MongoEnabled() {
		t.Error("MongoEnabled should be true with a URI")
	}
}

func TestValidateConfig_SeedRequiresMongo(t *testing.T) {
	appCfg := AppConfig{SeedSettings: true}
	if err := ValidateConfig(&config.CoreConfig{}, appCfg, testLogger()); err == nil {
		t.Error("expected error when seed_settings is set without mongo_uri")
	}
}
