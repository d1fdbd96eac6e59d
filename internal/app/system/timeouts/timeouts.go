// Package timeouts provides the timeout values used for Mongo calls.
//
//   - Ping: connectivity checks (startup and /health)
//   - Read: loading stored settings
//   - Schema: index creation
//
// Defaults can be overridden once at startup with Configure or
// ConfigureFromEnv.
package timeouts

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultPing   = 2 * time.Second
	DefaultRead   = 5 * time.Second
	DefaultSchema = 30 * time.Second
)

var mu sync.RWMutex

var (
	ping   = DefaultPing
	read   = DefaultRead
	schema = DefaultSchema
)

// Ping returns the timeout for connectivity checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Read returns the timeout for loading stored settings.
func Read() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return read
}

// Schema returns the timeout for index creation.
func Schema() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return schema
}

// Config holds timeout overrides. Zero values keep the current value.
type Config struct {
	Ping   time.Duration
	Read   time.Duration
	Schema time.Duration
}

// Configure applies non-zero values from cfg.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Read > 0 {
		read = cfg.Read
	}
	if cfg.Schema > 0 {
		schema = cfg.Schema
	}
}

// Reset restores the defaults. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	read = DefaultRead
	schema = DefaultSchema
}

// ConfigureFromEnv reads PERSONA_TIMEOUT_PING, PERSONA_TIMEOUT_READ and
// PERSONA_TIMEOUT_SCHEMA (Go duration strings). Invalid or non-positive
// values are ignored. Returns how many values were applied.
func ConfigureFromEnv() int {
	var cfg Config
	n := 0
	for _, e := range []struct {
		name string
		dst  *time.Duration
	}{
		{"PERSONA_TIMEOUT_PING", &cfg.Ping},
		{"PERSONA_TIMEOUT_READ", &cfg.Read},
		{"PERSONA_TIMEOUT_SCHEMA", &cfg.Schema},
	} {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			*e.dst = d
			n++
		}
	}
	Configure(cfg)
	return n
}

// Current returns the active configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Read: read, Schema: schema}
}

// WithTimeout is context.WithTimeout with a cancel func that logs a warning
// when the deadline was hit.
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
