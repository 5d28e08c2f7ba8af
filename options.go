package tactile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Options is a flat mapping of option name to value. Recognizer defaults are
// merged underneath per detector. A recognizer is disabled entirely by setting
// its name to false.
type Options map[string]any

// Clone returns a shallow copy of o.
func (o Options) Clone() Options {
	c := make(Options, len(o))
	for k, v := range o {
		c[k] = v
	}
	return c
}

// Merge copies every key of defaults that is not already set in o.
func (o Options) Merge(defaults Options) {
	for k, v := range defaults {
		if _, ok := o[k]; !ok {
			o[k] = v
		}
	}
}

// Enabled reports whether the recognizer with the given name may run.
// Only an explicit false disables it.
func (o Options) Enabled(name string) bool {
	if v, ok := o[name].(bool); ok {
		return v
	}
	return true
}

// Float returns the option as float64, or 0 if unset or not numeric.
func (o Options) Float(key string) float64 {
	switch v := o[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	case uint:
		return float64(v)
	case uint64:
		return float64(v)
	case time.Duration:
		return float64(v) / float64(time.Millisecond)
	default:
		return 0
	}
}

// Int returns the option truncated to int.
func (o Options) Int(key string) int {
	return int(o.Float(key))
}

// Bool returns the option as bool, or false if unset or not a bool.
func (o Options) Bool(key string) bool {
	v, _ := o[key].(bool)
	return v
}

// Duration interprets a numeric option as milliseconds. A time.Duration value
// is returned as is.
func (o Options) Duration(key string) time.Duration {
	if d, ok := o[key].(time.Duration); ok {
		return d
	}
	return time.Duration(o.Float(key) * float64(time.Millisecond))
}

// ParseOptionsTOML decodes a flat TOML document into Options.
func ParseOptionsTOML(data []byte) (Options, error) {
	opts := Options{}
	if _, err := toml.Decode(string(data), (*map[string]any)(&opts)); err != nil {
		return nil, fmt.Errorf("parse options: %w", err)
	}
	return opts, nil
}

// ParseOptionsYAML decodes a flat YAML mapping into Options.
func ParseOptionsYAML(data []byte) (Options, error) {
	opts := Options{}
	if err := yaml.Unmarshal(data, (*map[string]any)(&opts)); err != nil {
		return nil, fmt.Errorf("parse options: %w", err)
	}
	return opts, nil
}

// LoadOptionsFile reads an option file, choosing the decoder by extension
// (.toml, .yaml, .yml).
func LoadOptionsFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load options: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseOptionsTOML(data)
	case ".yaml", ".yml":
		return ParseOptionsYAML(data)
	default:
		return nil, fmt.Errorf("load options: unsupported file type %q", filepath.Ext(path))
	}
}

// EncodeOptionsTOML writes o as a flat TOML document with sorted keys.
func EncodeOptionsTOML(o Options) ([]byte, error) {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(map[string]any(o)); err != nil {
		return nil, fmt.Errorf("encode options: %w", err)
	}
	return []byte(sb.String()), nil
}
