package version

import (
	"strings"
	"testing"
)

func TestVersionDefault(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if got := Pretty(Version, false); got != Version {
		t.Errorf("Pretty without colour = %q, want %q", got, Version)
	}
}

func TestPrettyColours(t *testing.T) {
	got := Pretty("1.2.3-rc.1", true)
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI codes, got %q", got)
	}
	if !strings.HasSuffix(got, "-rc.1") {
		t.Fatalf("suffix lost: %q", got)
	}
}

func TestPrettyKeepsOddVersions(t *testing.T) {
	for _, v := range []string{"dev", "1.2", "abc123"} {
		if got := Pretty(v, true); got != v {
			t.Errorf("Pretty(%q) = %q", v, got)
		}
	}
}
