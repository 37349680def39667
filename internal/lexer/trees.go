package lexer

import (
	"quasi/internal/diag"
	"quasi/internal/token"
)

type openGroup struct {
	open  token.Token
	trees []token.Tree
}

// Trees lexes the rest of the input into balanced token trees.
// Unbalanced delimiters are reported and repaired: a stray closer is
// dropped, a wrong closer still closes the innermost group, and groups open
// at EOF are closed there.
func (lx *Lexer) Trees() []token.Tree {
	var top []token.Tree
	var stack []openGroup

	push := func(t token.Tree) {
		if n := len(stack); n > 0 {
			stack[n-1].trees = append(stack[n-1].trees, t)
			return
		}
		top = append(top, t)
	}
	closeGroup := func(closeTok token.Token) {
		g := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		d, _ := token.DelimOf(g.open.Kind)
		push(token.Tree{Kind: token.TreeDelimited, Group: &token.Delimited{
			Delim:     d,
			OpenSpan:  g.open.Span,
			CloseSpan: closeTok.Span,
			Trees:     g.trees,
		}})
	}

	for {
		tok := lx.Next()
		switch tok.Kind {
		case token.EOF:
			for len(stack) > 0 {
				g := stack[len(stack)-1]
				diag.ReportError(lx.opts.Reporter, diag.SynUnclosedDelimiter, tok.Span, "this file contains an unclosed delimiter").
					WithNote(g.open.Span, "unclosed delimiter").
					Emit()
				lx.errors++
				closeGroup(tok)
			}
			return top
		case token.LParen, token.LBracket, token.LBrace:
			stack = append(stack, openGroup{open: tok})
		case token.RParen, token.RBracket, token.RBrace:
			if len(stack) == 0 {
				lx.errLex(diag.SynUnexpectedCloseDelimiter, tok.Span, "unexpected closing delimiter: `"+tok.Kind.String()+"`")
				continue
			}
			g := stack[len(stack)-1]
			want, _ := token.DelimOf(g.open.Kind)
			if got, _ := token.DelimOf(tok.Kind); got != want {
				diag.ReportError(lx.opts.Reporter, diag.SynMismatchedDelimiter, tok.Span,
					"mismatched closing delimiter: `"+tok.Kind.String()+"`").
					WithNote(g.open.Span, "unclosed delimiter").
					Emit()
				lx.errors++
			}
			closeGroup(tok)
		default:
			push(token.TokenTree(tok))
		}
	}
}
