package token

import (
	"strings"

	"quasi/internal/source"
)

// Delim is the kind of a delimited token group.
type Delim uint8

const (
	Paren   Delim = iota // ( )
	Bracket              // [ ]
	Brace                // { }
)

// Open returns the token kind that opens the group.
func (d Delim) Open() Kind {
	switch d {
	case Bracket:
		return LBracket
	case Brace:
		return LBrace
	default:
		return LParen
	}
}

// Close returns the token kind that closes the group.
func (d Delim) Close() Kind {
	switch d {
	case Bracket:
		return RBracket
	case Brace:
		return RBrace
	default:
		return RParen
	}
}

func (d Delim) String() string {
	return d.Open().String() + d.Close().String()
}

// DelimOf maps an opening or closing delimiter kind to its Delim.
func DelimOf(k Kind) (Delim, bool) {
	switch k {
	case LParen, RParen:
		return Paren, true
	case LBracket, RBracket:
		return Bracket, true
	case LBrace, RBrace:
		return Brace, true
	}
	return 0, false
}

// TreeKind tags the variant held by a Tree.
type TreeKind uint8

const (
	TreeToken TreeKind = iota
	TreeDelimited
)

// Tree is a single token or a delimited group of nested trees.
type Tree struct {
	Kind  TreeKind
	Token Token      // Kind == TreeToken
	Group *Delimited // Kind == TreeDelimited
}

// Delimited is a balanced group: Open Trees... Close.
type Delimited struct {
	Delim     Delim
	OpenSpan  source.Span
	CloseSpan source.Span
	Trees     []Tree
}

// TokenTree wraps a single token.
func TokenTree(tok Token) Tree {
	return Tree{Kind: TreeToken, Token: tok}
}

// DelimitedTree builds a group; both boundary spans are set to sp.
func DelimitedTree(d Delim, sp source.Span, trees []Tree) Tree {
	return Tree{Kind: TreeDelimited, Group: &Delimited{
		Delim:     d,
		OpenSpan:  sp,
		CloseSpan: sp,
		Trees:     trees,
	}}
}

// Span covers the whole tree, delimiters included.
func (t Tree) Span() source.Span {
	if t.Kind == TreeDelimited {
		return t.Group.OpenSpan.Cover(t.Group.CloseSpan)
	}
	return t.Token.Span
}

// OpenToken returns the group's opening delimiter as a token.
func (d *Delimited) OpenToken() Token {
	return New(d.Delim.Open(), d.OpenSpan)
}

// CloseToken returns the group's closing delimiter as a token.
func (d *Delimited) CloseToken() Token {
	return New(d.Delim.Close(), d.CloseSpan)
}

// Flatten linearizes trees into tokens, emitting explicit delimiter tokens
// around every group. No EOF is appended.
func Flatten(trees []Tree) []Token {
	out := make([]Token, 0, len(trees))
	return appendFlat(out, trees)
}

func appendFlat(out []Token, trees []Tree) []Token {
	for _, t := range trees {
		if t.Kind == TreeToken {
			out = append(out, t.Token)
			continue
		}
		out = append(out, t.Group.OpenToken())
		out = appendFlat(out, t.Group.Trees)
		out = append(out, t.Group.CloseToken())
	}
	return out
}

// Render prints trees as space separated tokens; groups hug their contents.
// The output is for humans and tests, not guaranteed to re-lex identically
// when interpolated nodes are present.
func Render(trees []Tree) string {
	var b strings.Builder
	renderTo(&b, trees)
	return b.String()
}

func renderTo(b *strings.Builder, trees []Tree) {
	for i, t := range trees {
		if i > 0 {
			b.WriteByte(' ')
		}
		if t.Kind == TreeToken {
			b.WriteString(t.Token.String())
			continue
		}
		b.WriteString(t.Group.Delim.Open().String())
		renderTo(b, t.Group.Trees)
		b.WriteString(t.Group.Delim.Close().String())
	}
}
