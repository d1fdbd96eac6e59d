package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a flat settings file. The format is chosen by extension:
// .yaml/.yml, .toml or .json. Values are kept exactly as written in the
// file: YAML and JSON scalars keep their source text, and TOML values must
// be strings. Null entries are treated as unset.
func LoadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	var out map[string]string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		out, err = parseYAML(data)
	case ".toml":
		out, err = parseTOML(data)
	case ".json":
		out, err = parseJSON(data)
	default:
		return nil, fmt.Errorf("settings file %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse settings file %s: %w", path, err)
	}
	return out, nil
}

func parseYAML(data []byte) (map[string]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	out := make(map[string]string)
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return out, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("top level must be a mapping")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i].Value, root.Content[i+1]
		if val.Kind == yaml.AliasNode && val.Alias != nil {
			val = val.Alias
		}
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%q must be a scalar", key)
		}
		if val.Tag == "!!null" {
			continue
		}
		out[key] = val.Value
	}
	return out, nil
}

func parseJSON(data []byte) (map[string]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top-level object")
	}

	out := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			out[k] = val
		case json.Number:
			out[k] = val.String()
		case bool:
			out[k] = fmt.Sprint(val)
		default:
			return nil, fmt.Errorf("%q must be a scalar", k)
		}
	}
	return out, nil
}

func parseTOML(data []byte) (map[string]string, error) {
	raw := map[string]any{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(raw))
	for k, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%q must be a string, got %T; quote the value", k, v)
		}
		out[k] = s
	}
	return out, nil
}

// FromEnv reads <PREFIX>_<KEY> for each key. A variable that is set but
// empty counts as a present, empty value.
func FromEnv(prefix string, keys ...string) map[string]string {
	out := make(map[string]string)
	for _, k := range keys {
		if v, ok := os.LookupEnv(EnvName(prefix, k)); ok {
			out[k] = v
		}
	}
	return out
}

// EnvName returns the environment variable consulted for key.
func EnvName(prefix, key string) string {
	return strings.ToUpper(prefix + "_" + key)
}
