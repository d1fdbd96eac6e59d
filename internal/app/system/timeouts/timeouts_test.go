package timeouts

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaults(t *testing.T) {
	Reset()
	if Ping() != DefaultPing || Read() != DefaultRead || Schema() != DefaultSchema {
		t.Errorf("defaults not applied: %+v", Current())
	}
}

func TestConfigure_IgnoresZero(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	Configure(Config{Read: 7 * time.Second})

	if Read() != 7*time.Second {
		t.Errorf("Read = %v, want 7s", Read())
	}
	if Ping() != DefaultPing {
		t.Errorf("Ping = %v, want default %v", Ping(), DefaultPing)
	}
}

func TestConfigureFromEnv(t *testing.T) {
	t.Cleanup(Reset)
	Reset()
	t.Setenv("PERSONA_TIMEOUT_PING", "500ms")
	t.Setenv("PERSONA_TIMEOUT_READ", "bogus")
	t.Setenv("PERSONA_TIMEOUT_SCHEMA", "-1s")

	if n := ConfigureFromEnv(); n != 1 {
		t.Errorf("ConfigureFromEnv = %d, want 1", n)
	}
	if Ping() != 500*time.Millisecond {
		t.Errorf("Ping = %v, want 500ms", Ping())
	}
	if Read() != DefaultRead || Schema() != DefaultSchema {
		t.Errorf("invalid values should be ignored: %+v", Current())
	}
}

func TestWithTimeout_LogsDeadline(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)

	ctx, cancel := WithTimeout(context.Background(), time.Millisecond, logger, "load settings")
	<-ctx.Done()
	cancel()

	if logs.Len() != 1 {
		t.Fatalf("expected 1 warning, got %d", logs.Len())
	}
	if got := logs.All()[0].ContextMap()["operation"]; got != "load settings" {
		t.Errorf("operation field = %v", got)
	}
}

func TestWithTimeout_NoLogOnCancel(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	_, cancel := WithTimeout(context.Background(), time.Minute, zap.New(core), "ping")
	cancel()

	if logs.Len() != 0 {
		t.Errorf("expected no warnings, got %d", logs.Len())
	}
}
