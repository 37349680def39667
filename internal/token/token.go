package token

import (
	"quasi/internal/source"
)

// NtKind names the syntactic category of an interpolated node.
type NtKind uint8

const (
	NtExpr NtKind = iota + 1
	NtTy
	NtPat
	NtPath
	NtBlock
	NtStmt
	NtItem
	NtImplItem
	NtTraitItem
	NtArm
	NtMeta
)

func (k NtKind) String() string {
	switch k {
	case NtExpr:
		return "expr"
	case NtTy:
		return "ty"
	case NtPat:
		return "pat"
	case NtPath:
		return "path"
	case NtBlock:
		return "block"
	case NtStmt:
		return "stmt"
	case NtItem:
		return "item"
	case NtImplItem:
		return "impl_item"
	case NtTraitItem:
		return "trait_item"
	case NtArm:
		return "arm"
	case NtMeta:
		return "meta"
	}
	return "nt?"
}

// Nonterminal is a typed syntax node embedded in a token stream.
// Implementations live in internal/ast; the parser type-asserts them back.
type Nonterminal interface {
	NtKind() NtKind
	String() string
}

// Token represents a single token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
	Nt      Nonterminal // только для Kind == Interpolated
}

// New builds a synthesized punctuation or keyword token spelled canonically.
func New(k Kind, sp source.Span) Token {
	return Token{Kind: k, Span: sp, Text: k.String()}
}

// NewIdent builds an identifier token; keywords get their keyword kind.
func NewIdent(name string, sp source.Span) Token {
	if k, ok := LookupKeyword(name); ok {
		return Token{Kind: k, Span: sp, Text: name}
	}
	return Token{Kind: Ident, Span: sp, Text: name}
}

// NewLit builds a literal token from its exact spelling.
func NewLit(k Kind, text string, sp source.Span) Token {
	return Token{Kind: k, Span: sp, Text: text}
}

// NewInterpolated wraps an already-parsed node into a single opaque token.
func NewInterpolated(nt Nonterminal, sp source.Span) Token {
	return Token{Kind: Interpolated, Span: sp, Nt: nt}
}

// IsLiteral reports whether the token is a numeric, character or string literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsInterpolated reports whether the token carries a node of kind k.
func (t Token) IsInterpolated(k NtKind) bool {
	return t.Kind == Interpolated && t.Nt != nil && t.Nt.NtKind() == k
}

// String renders the token the way it would appear in source;
// interpolated nodes are printed through their own printer.
func (t Token) String() string {
	if t.Kind == Interpolated {
		if t.Nt == nil {
			return "<nt?>"
		}
		return t.Nt.String()
	}
	if t.Text != "" {
		return t.Text
	}
	return t.Kind.String()
}
