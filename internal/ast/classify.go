package ast

import "quasi/internal/token"

// ExprRequiresSemiToBeStmt reports whether e needs a `;` to stand as a
// statement. Block-like expressions do not.
func ExprRequiresSemiToBeStmt(e *Expr) bool {
	switch e.Kind {
	case ExprIf, ExprMatch, ExprBlock, ExprWhile, ExprLoop, ExprForLoop:
		return false
	}
	return true
}

// IsBraceMac reports whether e is a macro invocation written with braces,
// `m! { ... }`, which stands as a statement without `;`.
func IsBraceMac(e *Expr) bool {
	return e.Kind == ExprMac && e.Mac != nil && e.Mac.Delim == token.Brace
}

// StmtEndsWithSemi reports whether a `;` must follow s when it is written
// back into a block: locals always, items never, bare expressions when
// ExprRequiresSemiToBeStmt says so and they are not brace macros, and
// already terminated statements never.
func StmtEndsWithSemi(s *Stmt) bool {
	switch s.Kind {
	case StmtLocal:
		return true
	case StmtExpr:
		return ExprRequiresSemiToBeStmt(s.Expr) && !IsBraceMac(s.Expr)
	}
	return false
}
