package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

// run executes the root command with args. Global flags are reset first;
// subcommand flags are not, so every call passes the ones it relies on.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(args, "--color=off"))
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestParseCommandPrintsItems(t *testing.T) {
	p := writeTemp(t, "a.rs", "fn  a( x:u8 )->u8{x}\nstruct   S ;")
	out, _, err := run(t, "parse", p, "--kind=items")
	if err != nil {
		t.Fatal(err)
	}
	want := "fn a(x: u8) -> u8 {\n    x\n}\n\nstruct S;\n"
	if out != want {
		t.Fatalf("output:\n%q\nwant\n%q", out, want)
	}
}

func TestParseCommandExprKind(t *testing.T) {
	p := writeTemp(t, "e.rs", "1+2*3")
	out, _, err := run(t, "parse", p, "--kind=expr")
	if err != nil {
		t.Fatal(err)
	}
	if out != "1 + 2 * 3\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestParseCommandUnknownKind(t *testing.T) {
	p := writeTemp(t, "e.rs", "x")
	if _, _, err := run(t, "parse", p, "--kind=nope"); err == nil || !strings.Contains(err.Error(), "unknown kind") {
		t.Fatalf("err = %v", err)
	}
}

func TestParseCommandReportsDiagnostics(t *testing.T) {
	p := writeTemp(t, "bad.rs", "fn f( {}")
	_, errOut, err := run(t, "parse", p, "--kind=items")
	if err == nil {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(errOut, "bad.rs:1:") || !strings.Contains(errOut, "ERROR") {
		t.Fatalf("stderr:\n%s", errOut)
	}
}

func TestQuoteCommandJSON(t *testing.T) {
	p := writeTemp(t, "q.rs", "a + b")
	out, _, err := run(t, "quote", p, "--kind=expr", "--format=json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"kind": "Interpolated"`) || !strings.Contains(out, `"nt": "expr"`) {
		t.Fatalf("output:\n%s", out)
	}
}

func TestQuoteCommandConcatenatesNodes(t *testing.T) {
	p := writeTemp(t, "q.rs", "fn a() {}\nstruct B;\n")
	out, _, err := run(t, "quote", p, "--kind=items", "--format=json")
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, `"nt": "item"`); n != 2 {
		t.Fatalf("got %d interpolated items:\n%s", n, out)
	}

	p = writeTemp(t, "m.rs", "m! { a }")
	out, _, err = run(t, "quote", p, "--kind=stmt", "--format=json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"nt": "stmt"`) || strings.Contains(out, `"kind": ";"`) {
		t.Fatalf("brace macro statement output:\n%s", out)
	}
}

func TestTokenizeTrees(t *testing.T) {
	p := writeTemp(t, "t.rs", "f(a)")
	out, _, err := run(t, "tokenize", p, "--trees", "--format=pretty")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "\n  Ident") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ok.rs"), []byte("fn a() {}\nenum E { A, B(u8) }\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, _, err := run(t, "check", dir, "--ui=off", "--jobs=2", "--glob=**/*.rs")
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	if !strings.Contains(out, "checked 1 file(s), 2 item(s), 0 failed") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestCfgFlag(t *testing.T) {
	p := writeTemp(t, "c.rs", "#[cfg(feature = \"x\")] fn gated() {}\nfn open() {}\n")
	out, _, err := run(t, "parse", p, "--kind=items", "--cfg=feature=x")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "fn gated()") {
		t.Fatalf("gated item missing:\n%s", out)
	}
	out, _, err = run(t, "parse", p, "--kind=items", "--cfg=other")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "fn gated()") {
		t.Fatalf("gated item kept without its feature:\n%s", out)
	}
}

func TestVersionJSON(t *testing.T) {
	out, _, err := run(t, "version", "--format=json", "--full=false")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"tool": "quasi"`) {
		t.Fatalf("output:\n%s", out)
	}
}

func TestUIModeFlag(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiAuto, "ON": uiOn, " off ": uiOff, "true": uiOn} {
		var m uiMode
		if err := m.Set(in); err != nil || m != want {
			t.Errorf("Set(%q) = %v, %v", in, m, err)
		}
	}
	var m uiMode
	if err := m.Set("sometimes"); err == nil {
		t.Errorf("invalid mode accepted")
	}
	if uiOff.String() != "off" || uiMode(0).String() != "auto" {
		t.Errorf("String mismatch")
	}
	if _, _, err := run(t, "check", "--ui=maybe", "."); err == nil || !strings.Contains(err.Error(), "auto|on|off") {
		t.Fatalf("err = %v", err)
	}
}

func TestTimingsFlag(t *testing.T) {
	p := writeTemp(t, "a.rs", "fn a() {}")
	_, errOut, err := run(t, "quote", p, "--kind=items", "--format=pretty", "--timings")
	if err != nil {
		t.Fatal(err)
	}
	for _, phase := range []string{"timings:", "lex", "parse", "convert", "total"} {
		if !strings.Contains(errOut, phase) {
			t.Fatalf("stderr lacks %q:\n%s", phase, errOut)
		}
	}
	_, errOut, err = run(t, "parse", p, "--kind=items")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(errOut, "timings:") {
		t.Fatalf("timings printed without the flag:\n%s", errOut)
	}
}

func TestProfilingFlags(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, "a.rs", "fn a() {}")
	cpu := filepath.Join(dir, "cpu.pprof")
	mem := filepath.Join(dir, "mem.pprof")
	if _, _, err := run(t, "parse", p, "--kind=items", "--cpu-profile", cpu, "--mem-profile", mem); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{cpu, mem} {
		if st, err := os.Stat(f); err != nil || st.Size() == 0 {
			t.Fatalf("%s: %v", filepath.Base(f), err)
		}
	}
}

func TestCollectFilesGlob(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.rs", "sub/b.rs", "sub/c.txt", "sub/deep/d.rs"} {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("fn x() {}"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	rel := func(files []string) []string {
		out := make([]string, len(files))
		for i, f := range files {
			r, _ := filepath.Rel(dir, f)
			out[i] = filepath.ToSlash(r)
		}
		return out
	}

	files, err := collectFiles([]string{dir}, "**/*.rs")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(rel(files), ","); got != "a.rs,sub/b.rs,sub/deep/d.rs" {
		t.Fatalf("**/*.rs = %s", got)
	}
	files, err = collectFiles([]string{dir}, "sub/*")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(rel(files), ","); got != "sub/b.rs,sub/c.txt" {
		t.Fatalf("sub/* = %s", got)
	}
	if _, err := collectFiles([]string{dir}, "[a-"); err == nil {
		t.Fatal("invalid pattern accepted")
	}
}

func TestDiagnosticFormats(t *testing.T) {
	p := writeTemp(t, "bad.rs", "fn f( {}")
	_, errOut, err := run(t, "parse", p, "--kind=items", "--diag-format=short", "--path-mode=basename")
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.HasPrefix(errOut, "ERROR SYN") || !strings.Contains(errOut, "bad.rs:1:") {
		t.Fatalf("short stderr:\n%s", errOut)
	}
	_, errOut, _ = run(t, "parse", p, "--kind=items", "--diag-format=json", "--path-mode=basename")
	if !strings.Contains(errOut, `"file": "bad.rs"`) || !strings.Contains(errOut, `"severity": "ERROR"`) {
		t.Fatalf("json stderr:\n%s", errOut)
	}
}
