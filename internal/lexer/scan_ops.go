package lexer

import (
	"quasi/internal/diag"
	"quasi/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
// "&&" and ">>" stay single tokens here; the parser splits them when a
// type or pattern needs the halves.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	switch {
	case lx.try3('<', '<', '='):
		return emit(token.ShlEq)
	case lx.try3('>', '>', '='):
		return emit(token.ShrEq)
	case lx.try3('.', '.', '.'):
		return emit(token.DotDotDot)
	}

	for _, op := range twoCharOps {
		if lx.try2(op.a, op.b) {
			return emit(op.kind)
		}
	}

	ch := lx.cursor.Bump()
	if k, ok := oneCharOps[ch]; ok {
		return emit(k)
	}

	// неизвестный символ: съедаем руну целиком
	lx.cursor.Reset(start)
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, "unknown start of token: "+lx.text(sp))
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

var twoCharOps = [...]struct {
	a, b byte
	kind token.Kind
}{
	{'.', '.', token.DotDot},
	{':', ':', token.ModSep},
	{'-', '>', token.RArrow},
	{'=', '>', token.FatArrow},
	{'&', '&', token.AndAnd},
	{'|', '|', token.OrOr},
	{'=', '=', token.EqEq},
	{'!', '=', token.Ne},
	{'<', '=', token.Le},
	{'>', '=', token.Ge},
	{'<', '<', token.Shl},
	{'>', '>', token.Shr},
	{'+', '=', token.PlusEq},
	{'-', '=', token.MinusEq},
	{'*', '=', token.StarEq},
	{'/', '=', token.SlashEq},
	{'%', '=', token.PercentEq},
	{'^', '=', token.CaretEq},
	{'&', '=', token.AmpEq},
	{'|', '=', token.PipeEq},
}

var oneCharOps = map[byte]token.Kind{
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'^': token.Caret,
	'!': token.Bang,
	'&': token.Amp,
	'|': token.Pipe,
	'=': token.Eq,
	'<': token.Lt,
	'>': token.Gt,
	'@': token.At,
	'_': token.Underscore,
	'.': token.Dot,
	',': token.Comma,
	';': token.Semi,
	':': token.Colon,
	'#': token.Pound,
	'$': token.Dollar,
	'?': token.Question,
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
	'{': token.LBrace,
	'}': token.RBrace,
}
