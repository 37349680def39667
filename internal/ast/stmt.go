package ast

import (
	"quasi/internal/source"
	"quasi/internal/token"
)

type StmtKind uint8

const (
	StmtLocal StmtKind = iota // let Pat: Ty = Init
	StmtItem                  // nested item
	StmtExpr                  // expression without a trailing semicolon
	StmtSemi                  // expression followed by `;`
)

type Stmt struct {
	Kind  StmtKind
	Local *Local
	Item  *Item
	Expr  *Expr
	Span  source.Span
}

type Local struct {
	Attrs []*Attribute
	Pat   *Pat
	Ty    *Ty
	Init  *Expr
	Span  source.Span
}

func (s *Stmt) NtKind() token.NtKind { return token.NtStmt }

func (s *Stmt) String() string {
	return printNode(func(pr *printer) { pr.stmt(s) })
}

type BlockRules uint8

const (
	DefaultBlock BlockRules = iota
	UnsafeBlock
)

// Block is `{ Stmts; Expr }`; Expr is the optional tail expression.
type Block struct {
	Stmts []*Stmt
	Expr  *Expr
	Rules BlockRules
	Span  source.Span
}

func (b *Block) NtKind() token.NtKind { return token.NtBlock }

func (b *Block) String() string {
	return printNode(func(pr *printer) { pr.block(b) })
}

// Arm is one `pats if guard => body` branch of a match.
type Arm struct {
	Attrs []*Attribute
	Pats  []*Pat
	Guard *Expr
	Body  *Expr
	Span  source.Span
}

func (a *Arm) NtKind() token.NtKind { return token.NtArm }

func (a *Arm) String() string {
	return printNode(func(pr *printer) { pr.arm(a) })
}
