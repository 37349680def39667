package lexer

import (
	"quasi/internal/diag"
	"quasi/internal/token"
)

// Поддержка: 123, 1_000, 0b..., 0o..., 0x..., 1.0, 1., 1e-3, 2.5E+10,
// плюс суффиксы i8..i64/isize, u8..u64/usize, f32/f64.
// "1.foo" and "1..2" keep the dot out of the number. An integer with a float
// suffix ("2f32") is a FloatLit. Bad forms are reported and the token is
// still emitted so the parser can continue.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '0' {
		var base int
		switch lx.cursor.PeekAt(1) {
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		case 'x', 'X':
			base = 16
		}
		if base != 0 {
			lx.cursor.Off += 2
			lx.scanBaseDigits(start, base)
			return lx.finishNumber(start, token.IntLit)
		}
	}

	lx.eatDecDigits()

	// дробная часть
	if lx.cursor.Peek() == '.' {
		next := lx.cursor.PeekAt(1)
		if next != '.' && !isIdentStartByte(next) && next < utf8RuneSelf {
			lx.cursor.Bump()
			kind = token.FloatLit
			lx.eatDecDigits()
		}
	}

	// экспонента
	if c := lx.cursor.Peek(); c == 'e' || c == 'E' {
		sign := lx.cursor.PeekAt(1)
		switch {
		case isDec(sign):
			lx.cursor.Bump()
			lx.eatDecDigits()
			kind = token.FloatLit
		case (sign == '+' || sign == '-') && isDec(lx.cursor.PeekAt(2)):
			lx.cursor.Off += 2
			lx.eatDecDigits()
			kind = token.FloatLit
		case sign == '+' || sign == '-':
			lx.cursor.Off += 2
			lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start), "expected digit after exponent")
			kind = token.FloatLit
		}
	}
	return lx.finishNumber(start, kind)
}

func (lx *Lexer) eatDecDigits() {
	for c := lx.cursor.Peek(); isDec(c) || c == '_'; c = lx.cursor.Peek() {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) scanBaseDigits(start Mark, base int) {
	digits := 0
	for {
		c := lx.cursor.Peek()
		switch {
		case c == '_':
			lx.cursor.Bump()
			continue
		case base == 16 && isHex(c), base != 16 && isDec(c):
			if base != 16 && int(c-'0') >= base {
				lx.cursor.Bump()
				lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start), "invalid digit for a base "+baseName(base)+" literal")
				continue
			}
			lx.cursor.Bump()
			digits++
			continue
		}
		break
	}
	if digits == 0 {
		lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start), "no valid digits found for number")
	}
}

func baseName(base int) string {
	switch base {
	case 2:
		return "2"
	case 8:
		return "8"
	}
	return "16"
}

// finishNumber scans an optional suffix and validates it against kind.
func (lx *Lexer) finishNumber(start Mark, kind token.Kind) token.Token {
	sufStart := lx.cursor.Mark()
	if isIdentStartByte(lx.cursor.Peek()) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	sufSpan := lx.cursor.SpanFrom(sufStart)
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	if suffix := lx.text(sufSpan); suffix != "" {
		_, isInt := intSuffixes[suffix]
		isFloat := suffix == "f32" || suffix == "f64"
		hexOrBin := len(text) > 1 && text[0] == '0' && (text[1] == 'x' || text[1] == 'b' || text[1] == 'o' || text[1] == 'X' || text[1] == 'B' || text[1] == 'O')
		switch {
		case kind == token.IntLit && isInt:
		case isFloat && !hexOrBin:
			kind = token.FloatLit
		default:
			lx.errLex(diag.LexBadSuffix, sufSpan, "invalid suffix `"+suffix+"` for "+literalNoun(kind))
		}
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}

func literalNoun(k token.Kind) string {
	if k == token.FloatLit {
		return "float literal"
	}
	return "integer literal"
}

var intSuffixes = map[string]struct{}{
	"i8": {}, "i16": {}, "i32": {}, "i64": {}, "isize": {},
	"u8": {}, "u16": {}, "u32": {}, "u64": {}, "usize": {},
}
