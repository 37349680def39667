package testkit_test

import (
	"strings"
	"testing"

	"quasi/internal/expand"
	"quasi/internal/parser"
	"quasi/internal/testkit"
)

func TestCheckSpanInvariants(t *testing.T) {
	cx := expand.NewContext(nil, nil)
	src := "fn a() {}\nstruct B;\n"
	f := cx.AddSource("spans.rs", src)
	trees, err := cx.TreesOf(f)
	if err != nil {
		t.Fatal(err)
	}
	items, err := parser.New(cx, trees).ParseItems()
	if err != nil {
		t.Fatal(err)
	}
	if err := testkit.CheckSpanInvariants(items, f); err != nil {
		t.Fatalf("invariants: %v", err)
	}
	items[0], items[1] = items[1], items[0]
	if err := testkit.CheckSpanInvariants(items, f); err == nil {
		t.Fatalf("out-of-order items should be reported")
	}
}

func TestNodeDiffIgnoresSpans(t *testing.T) {
	cx := expand.NewContext(nil, nil)
	p1, _ := parser.NewFromSource(cx, "a.rs", "x + 1")
	p2, _ := parser.NewFromSource(cx, "b.rs", "  x   +   1")
	e1, err1 := p1.ParseExpr()
	e2, err2 := p2.ParseExpr()
	if err1 != nil || err2 != nil {
		t.Fatal(err1, err2)
	}
	if d := testkit.NodeDiff(e1, e2); d != "" {
		t.Fatalf("unexpected diff:\n%s", d)
	}
}

func TestTextDiff(t *testing.T) {
	if d := testkit.TextDiff("a\nb\n", "a\nb\n"); d != "" {
		t.Fatalf("equal texts produced a diff: %q", d)
	}
	d := testkit.TextDiff("a\nb\n", "a\nc\n")
	if !strings.Contains(d, "-b") || !strings.Contains(d, "+c") {
		t.Fatalf("diff = %q", d)
	}
}
