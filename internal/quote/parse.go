package quote

import (
	"errors"

	"quasi/internal/ast"
	"quasi/internal/diag"
	"quasi/internal/expand"
	"quasi/internal/parser"
	"quasi/internal/token"
)

// ErrorKind separates malformed text from well-formed text that holds no
// node of the requested kind.
type ErrorKind uint8

const (
	ErrSyntax ErrorKind = iota
	ErrNoNode
)

// ParseError is returned by the parsing utilities and carried by the panics
// of their Must* variants.
type ParseError struct {
	Kind ErrorKind
	What string      // "item", "statement", ...
	Diag *diag.Error // first diagnostic, ErrSyntax only
}

func (e *ParseError) Error() string {
	if e.Kind == ErrNoNode {
		return "parse error (no " + e.What + " found)"
	}
	if e.Diag == nil {
		return "parse error (syntax error)"
	}
	return "parse error (syntax error): " + e.Diag.Error()
}

func (e *ParseError) Unwrap() error {
	if e.Diag == nil {
		return nil
	}
	return e.Diag
}

func syntaxError(what string, err error) *ParseError {
	pe := &ParseError{Kind: ErrSyntax, What: what}
	var de *diag.Error
	if errors.As(err, &de) {
		pe.Diag = de
	}
	return pe
}

func newParser(cx *expand.Context, what, s string) (*parser.Parser, error) {
	p, err := parser.NewFromSource(cx, expand.QuoteExpansion, s)
	if err != nil {
		return nil, syntaxError(what, err)
	}
	return p, nil
}

// ParseItem parses the first item of s. Text after the item is ignored.
func ParseItem(cx *expand.Context, s string) (*ast.Item, error) {
	p, err := newParser(cx, "item", s)
	if err != nil {
		return nil, err
	}
	it, err := p.ParseItem()
	if err != nil {
		return nil, syntaxError("item", err)
	}
	if it == nil {
		return nil, &ParseError{Kind: ErrNoNode, What: "item"}
	}
	return it, nil
}

// ParseExpr parses the first expression of s.
func ParseExpr(cx *expand.Context, s string) (*ast.Expr, error) {
	p, err := newParser(cx, "expression", s)
	if err != nil {
		return nil, err
	}
	e, err := p.ParseExpr()
	if err != nil {
		return nil, syntaxError("expression", err)
	}
	return e, nil
}

// ParseStmt parses the first statement of s.
func ParseStmt(cx *expand.Context, s string) (*ast.Stmt, error) {
	p, err := newParser(cx, "statement", s)
	if err != nil {
		return nil, err
	}
	st, err := p.ParseStmt()
	if err != nil {
		return nil, syntaxError("statement", err)
	}
	if st == nil {
		return nil, &ParseError{Kind: ErrNoNode, What: "statement"}
	}
	return st, nil
}

// ParseTTs lexes s into token trees.
func ParseTTs(cx *expand.Context, s string) ([]token.Tree, error) {
	trees, err := cx.ParseTTs(expand.QuoteExpansion, s)
	if err != nil {
		return nil, syntaxError("token trees", err)
	}
	return trees, nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// MustParseItem is ParseItem that panics with *ParseError.
func MustParseItem(cx *expand.Context, s string) *ast.Item { return must(ParseItem(cx, s)) }

// MustParseExpr is ParseExpr that panics with *ParseError.
func MustParseExpr(cx *expand.Context, s string) *ast.Expr { return must(ParseExpr(cx, s)) }

// MustParseStmt is ParseStmt that panics with *ParseError.
func MustParseStmt(cx *expand.Context, s string) *ast.Stmt { return must(ParseStmt(cx, s)) }

// MustParseTTs is ParseTTs that panics with *ParseError.
func MustParseTTs(cx *expand.Context, s string) []token.Tree { return must(ParseTTs(cx, s)) }
