// Package settings holds the process-wide, read-only settings that the
// persona handlers serve.
//
// Values are assembled once during startup from one or more layers (a
// settings file, the optional Mongo store, and the environment) and are
// never mutated afterwards. Handlers receive a Values explicitly; nothing
// in this package is global.
package settings

import (
	"errors"
	"fmt"
	"sort"
)

// Known setting keys.
const (
	KeyAuthor    = "author"
	KeyLifeQuote = "life_quote"
	KeyPurpose   = "purpose"
)

// Required returns the keys the persona endpoints read.
func Required() []string {
	return []string{KeyAuthor, KeyLifeQuote, KeyPurpose}
}

// ErrConfigurationMissing is returned when a requested setting was never loaded.
var ErrConfigurationMissing = errors.New("configuration missing")

// MissingError reports which setting was missing.
// It matches ErrConfigurationMissing with errors.Is.
type MissingError struct {
	Key string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s: %q", ErrConfigurationMissing, e.Key)
}

func (e *MissingError) Is(target error) bool {
	return target == ErrConfigurationMissing
}

// Values is an immutable set of string settings.
// The zero value is valid and contains no settings.
type Values struct {
	m map[string]string
}

// New returns Values holding a copy of m.
func New(m map[string]string) Values {
	cp := make(map[string]string, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Values{m: cp}
}

// Get returns the value stored under key. An empty string is a valid,
// present value; a key that was never set yields a *MissingError.
func (v Values) Get(key string) (string, error) {
	s, ok := v.m[key]
	if !ok {
		return "", &MissingError{Key: key}
	}
	return s, nil
}

// Missing returns the subset of keys that are not set, in argument order.
func (v Values) Missing(keys ...string) []string {
	var out []string
	for _, k := range keys {
		if _, ok := v.m[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}

// Keys returns the set keys in sorted order.
func (v Values) Keys() []string {
	keys := make([]string, 0, len(v.m))
	for k := range v.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of set keys.
func (v Values) Len() int {
	return len(v.m)
}

// Merge combines layers into one map. Later layers override earlier ones
// key by key; nil layers are skipped.
func Merge(layers ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, layer := range layers {
		for k, v := range layer {
			out[k] = v
		}
	}
	return out
}
