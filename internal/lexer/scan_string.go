package lexer

import (
	"quasi/internal/diag"
	"quasi/internal/token"
)

// scanString: "..." с escape-последовательностями; перевод строки внутри допустим.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StrLit, Span: sp, Text: lx.text(sp)}
		case '\\':
			lx.scanEscape('"')
		default:
			lx.bumpRune()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated double quote string")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanCharOrLifetime различает 'a' (char), '\n' (char) и 'a (lifetime).
func (lx *Lexer) scanCharOrLifetime() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\''

	if lx.cursor.Peek() == '\\' {
		lx.scanEscape('\'')
		return lx.closeChar(start)
	}

	r, sz := lx.peekRune()
	if sz == 0 || r == '\n' {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	lx.bumpRune()
	if lx.cursor.Peek() == '\'' {
		return lx.closeChar(start)
	}
	if !isIdentStartRune(r) {
		return lx.closeChar(start)
	}

	// lifetime: 'ident
	for {
		r2, sz2 := lx.peekRune()
		if sz2 == 0 || !isIdentContinueRune(r2) {
			break
		}
		lx.bumpRune()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Lifetime, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) closeChar(start Mark) token.Token {
	if !lx.cursor.Eat('\'') {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.CharLit, Span: sp, Text: lx.text(sp)}
}

// scanEscape consumes one escape sequence starting at '\\' and reports bad ones.
func (lx *Lexer) scanEscape(quote byte) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\\'
	c := lx.cursor.Bump()
	switch c {
	case 'n', 'r', 't', '\\', '0', '\'', '"':
		return
	case '\n':
		if quote == '"' {
			return
		}
	case 'x':
		hi, lo := lx.cursor.Peek(), lx.cursor.PeekAt(1)
		if isHex(hi) && isHex(lo) {
			lx.cursor.Off += 2
			if hi <= '7' {
				return
			}
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "out of range hex escape")
			return
		}
	case 'u':
		if !lx.cursor.Eat('{') {
			break
		}
		n := 0
		for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			if lx.cursor.Bump() != '_' {
				n++
			}
		}
		if lx.cursor.Eat('}') && n >= 1 && n <= 6 {
			if _, ok := decodeUnicodeEscape(string(lx.file.Content[start:lx.cursor.Off])); ok {
				return
			}
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "invalid unicode character escape")
			return
		}
	case 0:
		return // EOF: the caller reports the unterminated literal
	}
	lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "unknown character escape")
}
