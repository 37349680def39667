package parser_test

import (
	"testing"

	"quasi/internal/ast"
)

func TestParsePat(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.PatKind
		want  string
	}{
		{"_", ast.PatWild, "_"},
		{"ref mut x", ast.PatIdent, "ref mut x"},
		{"x @ Some(_)", ast.PatIdent, "x @ Some(_)"},
		{"-1", ast.PatLit, "-1"},
		{"0...9", ast.PatRange, "0...9"},
		{"(a, b)", ast.PatTuple, "(a, b)"},
		{"(a,)", ast.PatTuple, "(a,)"},
		{"Some(x)", ast.PatTupleStruct, "Some(x)"},
		{"P { x, y: _, .. }", ast.PatStruct, "P { x, y: _, .. }"},
		{"std::i32::MAX", ast.PatPath, "std::i32::MAX"},
		{"&mut v", ast.PatRef, "&mut v"},
		{"&&v", ast.PatRef, "&&v"},
	}
	for _, tt := range tests {
		p, cx := newParser(t, nil, tt.input)
		pat, err := p.ParsePat()
		if err != nil {
			t.Fatalf("ParsePat(%q): %v (%s)", tt.input, err, diagnosticsSummary(cx.Sess.Bag))
		}
		if pat.Kind != tt.kind {
			t.Errorf("ParsePat(%q).Kind = %v, want %v", tt.input, pat.Kind, tt.kind)
		}
		if got := pat.String(); got != tt.want {
			t.Errorf("ParsePat(%q).String() = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseArmComma(t *testing.T) {
	p, _ := newParser(t, nil, "Some(x) => x, None => {}")
	first, err := p.ParseArm()
	if err != nil {
		t.Fatal(err)
	}
	if first.Body.Kind != ast.ExprPath {
		t.Fatalf("first body = %v", first.Body.Kind)
	}
	second, err := p.ParseArm()
	if err != nil {
		t.Fatal(err)
	}
	if second.Body.Kind != ast.ExprBlock || !p.AtEOF() {
		t.Fatalf("second arm = %+v, eof=%v", second, p.AtEOF())
	}
}

func TestParsePathTypeStyle(t *testing.T) {
	p, _ := newParser(t, nil, "::std::vec::Vec<T>")
	path, err := p.ParsePath()
	if err != nil {
		t.Fatal(err)
	}
	if !path.Global || len(path.Segments) != 3 || path.Segments[2].Args.Empty() {
		t.Fatalf("path = %+v", path)
	}
	if got := path.String(); got != "::std::vec::Vec<T>" {
		t.Fatalf("String() = %q", got)
	}
}
