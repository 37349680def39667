package checkpipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"quasi/internal/expand"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func writeFiles(t *testing.T, files map[string]string) []string {
	t.Helper()
	dir := t.TempDir()
	var paths []string
	for name, content := range files {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}
	return paths
}

func TestCheckReportsPerFile(t *testing.T) {
	paths := writeFiles(t, map[string]string{
		"good.rs":   "fn a(x: u8) -> u8 { x + 1 }\nstruct P { x: i32 }\nimpl P { fn get(&self) -> i32 { self.x } }\n",
		"broken.rs": "fn b( {}\n",
	})
	sink := &recordingSink{}
	results, err := Check(context.Background(), Request{Files: paths, Jobs: 2, Progress: sink})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(results) != len(paths) {
		t.Fatalf("got %d results", len(results))
	}
	for i, res := range results {
		if res.Path != paths[i] {
			t.Fatalf("result %d is for %s, want %s", i, res.Path, paths[i])
		}
		switch filepath.Base(res.Path) {
		case "good.rs":
			if res.Err != nil || res.Items != 3 || len(res.Mismatches) != 0 {
				t.Errorf("good.rs: err=%v items=%d mismatches=%v", res.Err, res.Items, res.Mismatches)
			}
		case "broken.rs":
			if res.Err == nil || !res.Sess.Bag.HasErrors() {
				t.Errorf("broken.rs should fail with diagnostics")
			}
		}
	}

	var doneFiles, errorFiles, finished int
	for _, ev := range sink.events {
		switch {
		case ev.File == "" && ev.Status == StatusDone:
			finished++
		case ev.Status == StatusDone:
			doneFiles++
		case ev.Status == StatusError:
			errorFiles++
		}
	}
	if doneFiles != 1 || errorFiles != 1 || finished != 1 {
		t.Fatalf("events: done=%d error=%d finished=%d", doneFiles, errorFiles, finished)
	}
}

func TestCheckHonoursConfig(t *testing.T) {
	paths := writeFiles(t, map[string]string{
		"cfg.rs": "#[cfg(test)] fn only_in_test() {}\nfn always() {}\n",
	})
	results, err := Check(context.Background(), Request{Files: paths})
	if err != nil || results[0].Err != nil || results[0].Items != 1 {
		t.Fatalf("without cfg: err=%v items=%d", results[0].Err, results[0].Items)
	}
	results, err = Check(context.Background(), Request{Files: paths, Config: expand.NewConfig("test")})
	if err != nil || results[0].Items != 2 {
		t.Fatalf("with cfg test: items=%d", results[0].Items)
	}
}

func TestCheckMissingFile(t *testing.T) {
	results, err := Check(context.Background(), Request{Files: []string{filepath.Join(t.TempDir(), "nope.rs")}})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Err == nil || !strings.HasPrefix(results[0].Err.Error(), "lex:") {
		t.Fatalf("err = %v", results[0].Err)
	}
}

func TestCheckCancelled(t *testing.T) {
	paths := writeFiles(t, map[string]string{"a.rs": "fn a() {}"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Check(ctx, Request{Files: paths}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestMismatchDiff(t *testing.T) {
	m := Mismatch{Stage: StageQuote, Want: "fn a() {}", Got: "fn b() {}"}
	d := m.Diff()
	if !strings.Contains(d, "-fn a() {}") || !strings.Contains(d, "+fn b() {}") {
		t.Fatalf("diff = %q", d)
	}
}
