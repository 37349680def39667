package expand

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is looked up from the working directory upwards.
const ConfigFileName = "quasi.toml"

// Config is the set of cfg flags visible to conditional compilation.
// A bare name (`#[cfg(test)]`) is enabled when listed in Names; a key/value
// pair (`#[cfg(feature = "x")]`) when the value is listed under the key.
type Config struct {
	Names          []string
	Values         map[string][]string
	MaxDiagnostics int
}

type configFile struct {
	Cfg     cfgSection     `toml:"cfg"`
	Session sessionSection `toml:"session"`
}

type cfgSection struct {
	Names  []string            `toml:"names"`
	Values map[string][]string `toml:"values"`
}

type sessionSection struct {
	MaxDiagnostics int `toml:"max_diagnostics"`
}

// NewConfig returns a config with the given bare names enabled.
func NewConfig(names ...string) *Config {
	return &Config{Names: names, Values: map[string][]string{}}
}

// Enabled reports whether the bare cfg name is set.
func (c *Config) Enabled(name string) bool {
	if c == nil {
		return false
	}
	return slices.Contains(c.Names, name)
}

// EnabledValue reports whether key = "value" is set.
func (c *Config) EnabledValue(key, value string) bool {
	if c == nil {
		return false
	}
	return slices.Contains(c.Values[key], value)
}

// Set enables key = "value"; an empty value enables the bare name.
func (c *Config) Set(key, value string) {
	if value == "" {
		if !slices.Contains(c.Names, key) {
			c.Names = append(c.Names, key)
		}
		return
	}
	if c.Values == nil {
		c.Values = map[string][]string{}
	}
	if !slices.Contains(c.Values[key], value) {
		c.Values[key] = append(c.Values[key], value)
	}
}

// DecodeConfig parses TOML text; name is used in error messages only.
func DecodeConfig(name, text string) (*Config, error) {
	var raw configFile
	meta, err := toml.Decode(text, &raw)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", name, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", name, strings.Join(keys, ", "))
	}
	if raw.Session.MaxDiagnostics < 0 {
		return nil, fmt.Errorf("%s: [session].max_diagnostics must not be negative", name)
	}
	cfg := NewConfig()
	for _, n := range raw.Cfg.Names {
		if strings.TrimSpace(n) == "" {
			return nil, fmt.Errorf("%s: empty name in [cfg].names", name)
		}
		cfg.Set(n, "")
	}
	for k, vs := range raw.Cfg.Values {
		for _, v := range vs {
			cfg.Set(k, v)
		}
	}
	cfg.MaxDiagnostics = raw.Session.MaxDiagnostics
	return cfg, nil
}

// LoadConfig reads and decodes a config file.
func LoadConfig(path string) (*Config, error) {
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return DecodeConfig(path, string(data))
}

// FindConfig walks from startDir up to the filesystem root looking for
// quasi.toml. ok is false when there is none.
func FindConfig(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
