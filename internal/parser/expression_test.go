package parser_test

import (
	"errors"
	"testing"

	"quasi/internal/ast"
	"quasi/internal/diag"
	"quasi/internal/parser"
)

func TestParseExprPrintsCanonically(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"precedence", "1 + 2 * 3", "1 + 2 * 3"},
		{"parens kept", "(1 + 2) * 3", "(1 + 2) * 3"},
		{"left assoc", "a - b - c", "a - b - c"},
		{"assign right assoc", "a = b = c", "a = b = c"},
		{"compound assign", "x += 1", "x += 1"},
		{"cast binds tighter", "-x as u8", "-x as u8"},
		{"logical", "a && b || !c", "a && b || !c"},
		{"range", "0..n", "0..n"},
		{"open range", "..", ".."},
		{"call and method", "f(1, 2).g::<i32>(x)", "f(1, 2).g::<i32>(x)"},
		{"field chain", "a.b.c", "a.b.c"},
		{"tuple field chain", "t.0.1", "t.0.1"},
		{"index", "v[i + 1]", "v[i + 1]"},
		{"try", "f()?", "f()?"},
		{"unary", "*&mut x", "*&mut x"},
		{"double ref splits", "&&x", "&&x"},
		{"tuple", "(1,)", "(1,)"},
		{"unit", "()", "()"},
		{"array", "[1, 2, 3]", "[1, 2, 3]"},
		{"repeat", "[0u8; 4]", "[0u8; 4]"},
		{"turbofish path", "Vec::<u8>::new()", "Vec::<u8>::new()"},
		{"struct literal", "Point { x: 1, y }", "Point { x: 1, y }"},
		{"struct base", "S { a: 1, ..d }", "S { a: 1, ..d }"},
		{"macro", "vec![1, 2]", "vec![1, 2]"},
		{"return", "return x", "return x"},
		{"break label", "break 'outer", "break 'outer"},
		{"literals", `"a\n"`, `"a\n"`},
		{"float suffix", "1.5f32", "1.5f32"},
		{"if else", "if a { b } else { c }", "if a {\n    b\n} else {\n    c\n}"},
		{"empty loop", "'l: loop {}", "'l: loop {}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, cx := newParser(t, nil, tt.input)
			e, err := p.ParseExpr()
			if err != nil {
				t.Fatalf("ParseExpr(%q): %v (%s)", tt.input, err, diagnosticsSummary(cx.Sess.Bag))
			}
			if !p.AtEOF() {
				t.Fatalf("ParseExpr(%q) left input unconsumed", tt.input)
			}
			if got := e.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseExprStructure(t *testing.T) {
	p, _ := newParser(t, nil, "1 + 2 * 3")
	e, err := p.ParseExpr()
	if err != nil {
		t.Fatal(err)
	}
	if e.Kind != ast.ExprBinary || e.BinOp != ast.BinAdd {
		t.Fatalf("root = %v %v, want binary +", e.Kind, e.BinOp)
	}
	if e.Y.Kind != ast.ExprBinary || e.Y.BinOp != ast.BinMul {
		t.Fatalf("rhs should be the multiplication, got %v", e.Y.Kind)
	}
}

func TestTupleIndexFromFloatToken(t *testing.T) {
	p, _ := newParser(t, nil, "x.0.1")
	e, err := p.ParseExpr()
	if err != nil {
		t.Fatal(err)
	}
	if e.Kind != ast.ExprTupField || e.Index != 1 {
		t.Fatalf("outer = %v .%d", e.Kind, e.Index)
	}
	if e.X.Kind != ast.ExprTupField || e.X.Index != 0 {
		t.Fatalf("inner = %v .%d", e.X.Kind, e.X.Index)
	}
}

func TestNoStructLiteralInCondition(t *testing.T) {
	p, _ := newParser(t, nil, "if x { y }")
	e, err := p.ParseExpr()
	if err != nil {
		t.Fatal(err)
	}
	if e.Kind != ast.ExprIf || e.X.Kind != ast.ExprPath {
		t.Fatalf("condition should be a plain path, got %v", e.X.Kind)
	}
	if e.Block.Expr == nil || e.Block.Expr.Kind != ast.ExprPath {
		t.Fatalf("body tail should be `y`")
	}
}

func TestMatchArms(t *testing.T) {
	src := "match v { 0 => a, 1 | 2 if ok => { b } _ => c }"
	p, cx := newParser(t, nil, src)
	e, err := p.ParseExpr()
	if err != nil {
		t.Fatalf("ParseExpr: %v (%s)", err, diagnosticsSummary(cx.Sess.Bag))
	}
	if e.Kind != ast.ExprMatch || len(e.Arms) != 3 {
		t.Fatalf("want match with 3 arms, got %v with %d", e.Kind, len(e.Arms))
	}
	if len(e.Arms[1].Pats) != 2 || e.Arms[1].Guard == nil {
		t.Fatalf("second arm should have two patterns and a guard")
	}
}

func TestMatchArmNeedsComma(t *testing.T) {
	p, cx := newParser(t, nil, "match v { 0 => a 1 => b }")
	_, err := p.ParseExpr()
	if err == nil {
		t.Fatalf("expected an error for a missing comma")
	}
	if cx.Sess.Bag.Len() != 1 {
		t.Fatalf("want exactly one diagnostic, got %s", diagnosticsSummary(cx.Sess.Bag))
	}
}

func TestChainedComparisonIsError(t *testing.T) {
	p, _ := newParser(t, nil, "a < b < c")
	if _, err := p.ParseExpr(); err == nil {
		t.Fatalf("chained comparison should fail")
	}
}

func TestErrorPoisonsParser(t *testing.T) {
	p, cx := newParser(t, nil, "fn(")
	_, err := p.ParseExpr()
	var perr *parser.Error
	if !errors.As(err, &perr) {
		t.Fatalf("want *parser.Error, got %T %v", err, err)
	}
	if perr.Code != diag.SynExpectExpression {
		t.Fatalf("code = %v, want SynExpectExpression", perr.Code)
	}
	var de *diag.Error
	if !errors.As(err, &de) {
		t.Fatalf("*parser.Error should unwrap to *diag.Error")
	}
	// второй вызов возвращает ту же ошибку и не пишет новых диагностик
	_, err2 := p.ParseTy()
	if err2 == nil || err2.Error() != err.Error() {
		t.Fatalf("poisoned parser returned %v", err2)
	}
	if !cx.Sess.Bag.HasErrors() || cx.Sess.Bag.Len() != 1 {
		t.Fatalf("bag = %s", diagnosticsSummary(cx.Sess.Bag))
	}
}

func TestIntegerLiteralOverflow(t *testing.T) {
	p, _ := newParser(t, nil, "99999999999999999999999")
	_, err := p.ParseExpr()
	var perr *parser.Error
	if !errors.As(err, &perr) || perr.Code != diag.SynBadLiteral {
		t.Fatalf("want SynBadLiteral, got %v", err)
	}
}
