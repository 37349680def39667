package expand

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig("quasi.toml", `
[cfg]
names = ["test", "debug_assertions"]

[cfg.values]
feature = ["serde", "std"]
target_os = ["linux"]

[session]
max_diagnostics = 20
`)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if !cfg.Enabled("test") || cfg.Enabled("release") {
		t.Fatalf("Enabled mismatch: %+v", cfg)
	}
	if !cfg.EnabledValue("feature", "std") || cfg.EnabledValue("feature", "alloc") || cfg.EnabledValue("target_os", "macos") {
		t.Fatalf("EnabledValue mismatch: %+v", cfg.Values)
	}
	if cfg.MaxDiagnostics != 20 {
		t.Fatalf("MaxDiagnostics = %d", cfg.MaxDiagnostics)
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	cases := map[string]string{
		"[cfg\nnames = 1":                 "failed to parse TOML",
		"[cfg]\nnamez = [\"x\"]":          "unknown keys",
		"[session]\nmax_diagnostics = -1": "must not be negative",
		"[cfg]\nnames = [\"ok\", \"  \"]": "empty name",
	}
	for text, want := range cases {
		_, err := DecodeConfig("bad.toml", text)
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Errorf("DecodeConfig(%q) err = %v, want %q", text, err, want)
		}
	}
}

func TestNilConfigDisablesEverything(t *testing.T) {
	var cfg *Config
	if cfg.Enabled("x") || cfg.EnabledValue("k", "v") {
		t.Fatalf("nil config should enable nothing")
	}
}

func TestFindAndLoadConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("[cfg]\nnames = [\"unix\"]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	path, ok, err := FindConfig(nested)
	if err != nil || !ok {
		t.Fatalf("FindConfig = %q, %v, %v", path, ok, err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Enabled("unix") {
		t.Fatalf("unix not enabled")
	}
}
