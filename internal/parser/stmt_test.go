package parser_test

import (
	"testing"

	"quasi/internal/ast"
	"quasi/internal/token"
)

func TestParseStmtKinds(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.StmtKind
	}{
		{"let x = 1;", ast.StmtLocal},
		{"let (a, b): (u8, u8);", ast.StmtLocal},
		{"fn inner() {}", ast.StmtItem},
		{"#[inline] fn inner() {}", ast.StmtItem},
		{"x + 1;", ast.StmtExpr},
		{"if a { b }", ast.StmtExpr},
		{"println!(\"hi\");", ast.StmtExpr},
	}
	for _, tt := range tests {
		p, cx := newParser(t, nil, tt.input)
		s, err := p.ParseStmt()
		if err != nil {
			t.Fatalf("ParseStmt(%q): %v (%s)", tt.input, err, diagnosticsSummary(cx.Sess.Bag))
		}
		if s == nil || s.Kind != tt.kind {
			t.Fatalf("ParseStmt(%q) = %+v, want kind %v", tt.input, s, tt.kind)
		}
	}
}

func TestParseStmtLeavesSemicolon(t *testing.T) {
	p, _ := newParser(t, nil, "let x = 1;")
	if _, err := p.ParseStmt(); err != nil {
		t.Fatal(err)
	}
	if p.AtEOF() {
		t.Fatalf("`;` should be left for the caller")
	}
}

func TestParseStmtAtEndReturnsNil(t *testing.T) {
	for _, src := range []string{"", "}"} {
		p, err := newParserAllowingErrors(src)
		if err != nil {
			// `}` alone does not lex into balanced trees
			continue
		}
		s, perr := p.ParseStmt()
		if s != nil || perr != nil {
			t.Fatalf("ParseStmt(%q) = %v, %v; want nil, nil", src, s, perr)
		}
	}
}

func TestBlockStatementsAndTail(t *testing.T) {
	p, cx := newParser(t, nil, "{ let a = 1; f(a); if a { } a }")
	b, err := p.ParseBlock()
	if err != nil {
		t.Fatalf("ParseBlock: %v (%s)", err, diagnosticsSummary(cx.Sess.Bag))
	}
	want := []ast.StmtKind{ast.StmtLocal, ast.StmtSemi, ast.StmtExpr}
	if len(b.Stmts) != len(want) {
		t.Fatalf("got %d stmts, want %d", len(b.Stmts), len(want))
	}
	for i, k := range want {
		if b.Stmts[i].Kind != k {
			t.Errorf("stmt %d kind = %v, want %v", i, b.Stmts[i].Kind, k)
		}
	}
	if b.Expr == nil || b.Expr.Kind != ast.ExprPath {
		t.Fatalf("tail expression missing")
	}
}

func TestBlockRequiresSemicolon(t *testing.T) {
	p, cx := newParser(t, nil, "{ a b }")
	if _, err := p.ParseBlock(); err == nil {
		t.Fatalf("expected error")
	}
	if got := diagnosticsSummary(cx.Sess.Bag); got != "[SYN2010] expected `;` or `}`, found `b`" {
		t.Fatalf("diagnostics = %s", got)
	}
}

func TestInterpolatedStmtInBlock(t *testing.T) {
	p, _ := newParser(t, nil, "f(x)")
	call, err := p.ParseExpr()
	if err != nil {
		t.Fatal(err)
	}
	stmt := &ast.Stmt{Kind: ast.StmtExpr, Expr: call, Span: call.Span}
	trees := []token.Tree{
		token.DelimitedTree(token.Brace, call.Span, []token.Tree{
			token.TokenTree(token.NewInterpolated(stmt, call.Span)),
			token.TokenTree(token.New(token.Semi, call.Span)),
		}),
	}
	bp := newTreeParser(trees)
	b, err := bp.ParseBlock()
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Stmts) != 1 || b.Stmts[0].Kind != ast.StmtSemi || b.Stmts[0].Expr != call {
		t.Fatalf("interpolated stmt should become `f(x);`, got %+v", b.Stmts)
	}
	if stmt.Kind != ast.StmtExpr {
		t.Fatalf("interpolated node was mutated")
	}
}
