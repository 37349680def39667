package parser_test

import (
	"errors"
	"testing"

	"quasi/internal/ast"
	"quasi/internal/diag"
	"quasi/internal/expand"
	"quasi/internal/parser"
	"quasi/internal/token"
)

func TestParseItemNoneForExpression(t *testing.T) {
	p, cx := newParser(t, nil, "1 + 2")
	it, err := p.ParseItem()
	if it != nil || err != nil {
		t.Fatalf("ParseItem = %v, %v; want nil, nil", it, err)
	}
	if cx.Sess.Bag.Len() != 0 {
		t.Fatalf("no diagnostics expected, got %s", diagnosticsSummary(cx.Sess.Bag))
	}
}

func TestParseItemConsumesOneItem(t *testing.T) {
	p, _ := newParser(t, nil, "fn a() {} fn b() {}")
	first, err := p.ParseItem()
	if err != nil || first == nil || first.Ident.Name != "a" {
		t.Fatalf("first = %v, %v", first, err)
	}
	second, err := p.ParseItem()
	if err != nil || second == nil || second.Ident.Name != "b" {
		t.Fatalf("second = %v, %v", second, err)
	}
	if !p.AtEOF() {
		t.Fatalf("expected EOF")
	}
}

func TestOutOfLineModuleRejected(t *testing.T) {
	p, _ := newParser(t, nil, "mod x;")
	_, err := p.ParseItem()
	var perr *parser.Error
	if !errors.As(err, &perr) || perr.Code != diag.SynExpectBlock {
		t.Fatalf("want SynExpectBlock, got %v", err)
	}
}

func TestCfgStripping(t *testing.T) {
	cfg := expand.NewConfig("unix")
	cfg.Set("feature", "x")
	src := `
#[cfg(unix)] fn a() {}
#[cfg(not(unix))] fn b() {}
#[cfg(all(unix, feature = "x"))] fn c() {}
#[cfg(any(windows, feature = "y"))] fn d() {}
struct S { #[cfg(windows)] w: u8, u: u8 }
enum E { #[cfg(unix)] A, #[cfg(windows)] B }
fn body() { #[cfg(windows)] let x = 1; let y = 2; }
`
	p, cx := newParser(t, cfg, src)
	items, err := p.ParseItems()
	if err != nil {
		t.Fatalf("ParseItems: %v (%s)", err, diagnosticsSummary(cx.Sess.Bag))
	}
	var names []string
	for _, it := range items {
		names = append(names, it.Ident.Name)
	}
	if got := len(names); got != 5 || names[0] != "a" || names[1] != "c" {
		t.Fatalf("kept items = %v", names)
	}
	if s := items[2]; len(s.Data.Fields) != 1 || s.Data.Fields[0].Ident.Name != "u" {
		t.Fatalf("struct fields after cfg = %v", s.Data.Fields)
	}
	if e := items[3]; len(e.Variants) != 1 || e.Variants[0].Ident.Name != "A" {
		t.Fatalf("variants after cfg = %v", e.Variants)
	}
	if body := items[4].Body; len(body.Stmts) != 1 {
		t.Fatalf("block stmts after cfg = %d", len(body.Stmts))
	}
}

func TestSingleItemIsNeverStripped(t *testing.T) {
	p, _ := newParser(t, expand.NewConfig(), "#[cfg(windows)] fn w() {}")
	it, err := p.ParseItem()
	if err != nil || it == nil {
		t.Fatalf("ParseItem = %v, %v", it, err)
	}
}

func TestMalformedCfgIsError(t *testing.T) {
	p, _ := newParser(t, nil, `#[cfg(unix, windows)] fn a() {}`)
	_, err := p.ParseItems()
	var perr *parser.Error
	if !errors.As(err, &perr) || perr.Code != diag.SynExpectMetaItem {
		t.Fatalf("want SynExpectMetaItem, got %v", err)
	}
}

func TestParseAttribute(t *testing.T) {
	p, _ := newParser(t, nil, `#[doc = "x"]`)
	a, err := p.ParseAttribute(false)
	if err != nil {
		t.Fatal(err)
	}
	if a.Style != ast.AttrOuter || a.Value.Kind != ast.MetaNameValue || a.Value.Lit.Str != "x" {
		t.Fatalf("attribute = %+v", a)
	}

	p, _ = newParser(t, nil, "#![allow(dead_code)]")
	if _, err := p.ParseAttribute(false); err == nil {
		t.Fatalf("inner attribute should be rejected")
	} else {
		var perr *parser.Error
		if !errors.As(err, &perr) || perr.Code != diag.SynInnerAttributeNotAllowed {
			t.Fatalf("want SynInnerAttributeNotAllowed, got %v", err)
		}
	}

	p, _ = newParser(t, nil, "#![allow(dead_code)]")
	a, err = p.ParseAttribute(true)
	if err != nil || a.Style != ast.AttrInner || a.Value.Kind != ast.MetaList {
		t.Fatalf("inner attribute = %+v, %v", a, err)
	}
}

func TestParseInnerAttrsThenItems(t *testing.T) {
	p, _ := newParser(t, nil, "#![no_std] #![feature(x)] fn f() {}")
	attrs, err := p.ParseInnerAttrs()
	if err != nil || len(attrs) != 2 {
		t.Fatalf("inner attrs = %v, %v", attrs, err)
	}
	items, err := p.ParseItems()
	if err != nil || len(items) != 1 {
		t.Fatalf("items = %v, %v", items, err)
	}
}

func TestNestedGenericsSplitShr(t *testing.T) {
	p, _ := newParser(t, nil, "HashMap<K, Vec<Vec<u8>>>")
	ty, err := p.ParseTy()
	if err != nil {
		t.Fatal(err)
	}
	if got := ty.String(); got != "HashMap<K, Vec<Vec<u8>>>" {
		t.Fatalf("String() = %q", got)
	}
	if !p.AtEOF() {
		t.Fatalf("split tokens left over")
	}
}

func TestGenericsAndWhere(t *testing.T) {
	p, _ := newParser(t, nil, "<'a: 'b, T: ?Sized + Clone + 'a = u8> where T: Copy, 'a: 'b")
	g, err := p.ParseGenerics()
	if err != nil {
		t.Fatal(err)
	}
	if got := g.String(); got != "<'a: 'b, T: ?Sized + Clone + 'a = u8>" {
		t.Fatalf("generics = %q", got)
	}
	w, err := p.ParseWhereClause()
	if err != nil {
		t.Fatal(err)
	}
	if got := w.String(); got != "where T: Copy, 'a: 'b" {
		t.Fatalf("where = %q", got)
	}

	p, _ = newParser(t, nil, "fn")
	g, err = p.ParseGenerics()
	if err != nil || !g.Empty() {
		t.Fatalf("generics without `<` should be empty: %v, %v", g, err)
	}
}

func TestImplAndTraitItems(t *testing.T) {
	p, _ := newParser(t, nil, "pub fn get(&self) -> u8 { self.x }")
	ii, err := p.ParseImplItem()
	if err != nil || ii.Kind != ast.ImplItemMethod || ii.Sig.Decl.SelfParam.Kind != ast.SelfRef {
		t.Fatalf("impl item = %+v, %v", ii, err)
	}
	p, _ = newParser(t, nil, "fn area(&self) -> f64;")
	ti, err := p.ParseTraitItem()
	if err != nil || ti.Kind != ast.TraitItemMethod || ti.Body != nil {
		t.Fatalf("trait item = %+v, %v", ti, err)
	}
}

func TestInterpolatedNodes(t *testing.T) {
	p, _ := newParser(t, nil, "1 + 2")
	sum, err := p.ParseExpr()
	if err != nil {
		t.Fatal(err)
	}
	p, _ = newParser(t, nil, "Vec<u8>")
	ty, err := p.ParseTy()
	if err != nil {
		t.Fatal(err)
	}

	// `$sum * 3`
	trees := []token.Tree{
		token.TokenTree(token.NewInterpolated(sum, sum.Span)),
		token.TokenTree(token.New(token.Star, sum.Span)),
		token.TokenTree(token.NewLit(token.IntLit, "3", sum.Span)),
	}
	e, err := newTreeParser(trees).ParseExpr()
	if err != nil {
		t.Fatal(err)
	}
	if e.Kind != ast.ExprBinary || e.X != sum {
		t.Fatalf("interpolated expr should be the left operand as is")
	}
	if got := e.String(); got != "(1 + 2) * 3" {
		t.Fatalf("String() = %q", got)
	}

	// `let v: $ty = x;`
	stmtTrees := []token.Tree{
		token.TokenTree(token.NewIdent("let", ty.Span)),
		token.TokenTree(token.NewIdent("v", ty.Span)),
		token.TokenTree(token.New(token.Colon, ty.Span)),
		token.TokenTree(token.NewInterpolated(ty, ty.Span)),
		token.TokenTree(token.New(token.Eq, ty.Span)),
		token.TokenTree(token.NewIdent("x", ty.Span)),
	}
	s, err := newTreeParser(stmtTrees).ParseStmt()
	if err != nil {
		t.Fatal(err)
	}
	if s.Kind != ast.StmtLocal || s.Local.Ty != ty {
		t.Fatalf("interpolated type not used: %+v", s.Local)
	}
}
