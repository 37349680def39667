package quote

import (
	"quasi/internal/ast"
	"quasi/internal/parser"
)

// Abort-on-failure wrappers over the cursor entry points. Each panics with a
// *ParseError; callers that want to recover use the parser directly.

func mustFrom[T any](what string, v T, err error) T {
	if err != nil {
		panic(syntaxError(what, err))
	}
	return v
}

func MustParseExprFrom(p *parser.Parser) *ast.Expr {
	e, err := p.ParseExpr()
	return mustFrom("expression", e, err)
}

// MustParseItemFrom returns nil when no item starts at the cursor.
func MustParseItemFrom(p *parser.Parser) *ast.Item {
	it, err := p.ParseItem()
	return mustFrom("item", it, err)
}

func MustParsePatFrom(p *parser.Parser) *ast.Pat {
	pat, err := p.ParsePat()
	return mustFrom("pattern", pat, err)
}

func MustParseArmFrom(p *parser.Parser) *ast.Arm {
	arm, err := p.ParseArm()
	return mustFrom("arm", arm, err)
}

func MustParseTyFrom(p *parser.Parser) *ast.Ty {
	ty, err := p.ParseTy()
	return mustFrom("type", ty, err)
}

// MustParseStmtFrom returns nil at the end of a block or of the input.
func MustParseStmtFrom(p *parser.Parser) *ast.Stmt {
	st, err := p.ParseStmt()
	return mustFrom("statement", st, err)
}

func MustParseAttributeFrom(p *parser.Parser, permitInner bool) *ast.Attribute {
	a, err := p.ParseAttribute(permitInner)
	return mustFrom("attribute", a, err)
}
