package ast_test

import (
	"testing"

	"quasi/internal/ast"
	"quasi/internal/expand"
	"quasi/internal/parser"
	"quasi/internal/source"
)

func parse(t *testing.T, src string) *parser.Parser {
	t.Helper()
	cx := expand.NewContext(nil, expand.NewSession(16))
	p, err := parser.NewFromSource(cx, "ast.rs", src)
	if err != nil {
		t.Fatalf("lex %q: %v", src, err)
	}
	return p
}

func expr(t *testing.T, src string) *ast.Expr {
	t.Helper()
	e, err := parse(t, src).ParseExpr()
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return e
}

func TestExprRequiresSemiToBeStmt(t *testing.T) {
	cases := map[string]bool{
		"if a { b }":         false,
		"match x { _ => 1 }": false,
		"{ 1 }":              false,
		"while a {}":         false,
		"loop {}":            false,
		"for x in y {}":      false,
		"f()":                true,
		"a = 1":              true,
		"x.y":                true,
	}
	for src, want := range cases {
		if got := ast.ExprRequiresSemiToBeStmt(expr(t, src)); got != want {
			t.Errorf("%q: got %v, want %v", src, got, want)
		}
	}
}

func TestStmtEndsWithSemi(t *testing.T) {
	call := expr(t, "f()")
	cases := []struct {
		name string
		stmt *ast.Stmt
		want bool
	}{
		{"local", &ast.Stmt{Kind: ast.StmtLocal, Local: &ast.Local{}}, true},
		{"item", &ast.Stmt{Kind: ast.StmtItem, Item: &ast.Item{}}, false},
		{"call", &ast.Stmt{Kind: ast.StmtExpr, Expr: call}, true},
		{"if", &ast.Stmt{Kind: ast.StmtExpr, Expr: expr(t, "if a {}")}, false},
		{"brace macro", &ast.Stmt{Kind: ast.StmtExpr, Expr: expr(t, "m! { a }")}, false},
		{"paren macro", &ast.Stmt{Kind: ast.StmtExpr, Expr: expr(t, "m!(a)")}, true},
		{"terminated", &ast.Stmt{Kind: ast.StmtSemi, Expr: call}, false},
	}
	for _, tc := range cases {
		if got := ast.StmtEndsWithSemi(tc.stmt); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestEvalCfg(t *testing.T) {
	cfg := expand.NewConfig("unix")
	cfg.Set("feature", "x")

	cases := map[string]bool{
		`unix`:                             true,
		`windows`:                          false,
		`feature = "x"`:                    true,
		`feature = "y"`:                    false,
		`all(unix, feature = "x")`:         true,
		`all(unix, windows)`:               false,
		`any(windows, unix)`:               true,
		`not(unix)`:                        false,
		`not(any(windows, feature = "z"))`: true,
	}
	for src, want := range cases {
		m, err := parse(t, src).ParseMetaItem()
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		got, err := ast.EvalCfg(m, cfg)
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if got != want {
			t.Errorf("%q: got %v, want %v", src, got, want)
		}
	}

	for _, src := range []string{`bogus(unix)`, `not(a, b)`, `feature = 1`} {
		m, err := parse(t, src).ParseMetaItem()
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		if _, err := ast.EvalCfg(m, cfg); err == nil {
			t.Errorf("%q: expected error", src)
		}
	}
}

func TestCfgEnabledRequiresEveryAttribute(t *testing.T) {
	p := parse(t, `#[cfg(unix)] #[inline] #[cfg(windows)]`)
	var attrs []*ast.Attribute
	for range 3 {
		a, err := p.ParseAttribute(false)
		if err != nil {
			t.Fatal(err)
		}
		attrs = append(attrs, a)
	}
	cfg := expand.NewConfig("unix")
	if ok, err := ast.CfgEnabled(attrs[:2], cfg); err != nil || !ok {
		t.Fatalf("first two attrs: %v, %v", ok, err)
	}
	if ok, err := ast.CfgEnabled(attrs, cfg); err != nil || ok {
		t.Fatalf("all attrs: %v, %v", ok, err)
	}
	if ok, err := ast.CfgEnabled(attrs[:2], nil); err != nil || ok {
		t.Fatalf("nil config must disable unix: %v, %v", ok, err)
	}
}

func TestLitString(t *testing.T) {
	i32, ok := ast.ParseIntTy("i32")
	if !ok {
		t.Fatal("i32 not recognised")
	}
	cases := []struct {
		lit  *ast.Lit
		want string
	}{
		{ast.NewIntLit(5, i32, source.NoSpan), "5i32"},
		{ast.NewIntLit(7, ast.IntTy{}, source.NoSpan), "7"},
		{ast.NewStrLit("a\"b", source.NoSpan), `"a\"b"`},
		{ast.NewBoolLit(false, source.NoSpan), "false"},
		{&ast.Lit{Kind: ast.LitFloat, Float: "1.", FloatSufx: "f32"}, "1.0f32"},
	}
	for _, tc := range cases {
		if got := tc.lit.String(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
	if _, ok := ast.ParseIntTy("i128"); ok {
		t.Errorf("i128 must be rejected")
	}
}

func TestEmptyGenericsPrintNothing(t *testing.T) {
	var g *ast.Generics
	var w *ast.WhereClause
	if g.String() != "" || w.String() != "" {
		t.Fatalf("empty generics printed %q / %q", g.String(), w.String())
	}
	gen, err := parse(t, "<'a, T: Clone = u8>").ParseGenerics()
	if err != nil {
		t.Fatal(err)
	}
	if got := gen.String(); got != "<'a, T: Clone = u8>" {
		t.Fatalf("generics = %q", got)
	}
}
