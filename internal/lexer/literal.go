package lexer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Helpers shared by the parser (cooking literal tokens into values) and the
// printer (spelling values back as tokens).

var errBadLiteral = errors.New("malformed literal")

// CookString returns the value of a StrLit token text, quotes included.
func CookString(text string) (string, error) {
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return "", errBadLiteral
	}
	return unescape(text[1:len(text)-1], '"')
}

// CookChar returns the value of a CharLit token text, quotes included.
func CookChar(text string) (rune, error) {
	if len(text) < 3 || text[0] != '\'' || text[len(text)-1] != '\'' {
		return 0, errBadLiteral
	}
	s, err := unescape(text[1:len(text)-1], '\'')
	if err != nil {
		return 0, err
	}
	r, sz := utf8.DecodeRuneInString(s)
	if sz != len(s) || r == utf8.RuneError && sz <= 1 {
		return 0, fmt.Errorf("character literal may only contain one codepoint: %w", errBadLiteral)
	}
	return r, nil
}

func unescape(body string, quote byte) (string, error) {
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(body) {
			return "", errBadLiteral
		}
		switch esc := body[i+1]; esc {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '0':
			b.WriteByte(0)
		case '\\', '\'', '"':
			b.WriteByte(esc)
		case '\n':
			if quote != '"' {
				return "", errBadLiteral
			}
			// продолжение строки: пропускаем перевод и ведущие пробелы
			i += 2
			for i < len(body) && (body[i] == ' ' || body[i] == '\t' || body[i] == '\n' || body[i] == '\r') {
				i++
			}
			continue
		case 'x':
			if i+4 > len(body) {
				return "", errBadLiteral
			}
			v, err := strconv.ParseUint(body[i+2:i+4], 16, 8)
			if err != nil || v > 0x7f {
				return "", errBadLiteral
			}
			b.WriteByte(byte(v))
			i += 4
			continue
		case 'u':
			end := strings.IndexByte(body[i:], '}')
			if end < 0 {
				return "", errBadLiteral
			}
			r, ok := decodeUnicodeEscape(body[i : i+end+1])
			if !ok {
				return "", errBadLiteral
			}
			b.WriteRune(r)
			i += end + 1
			continue
		default:
			return "", errBadLiteral
		}
		i += 2
	}
	return b.String(), nil
}

// decodeUnicodeEscape decodes "\u{XXXX}".
func decodeUnicodeEscape(s string) (rune, bool) {
	if !strings.HasPrefix(s, `\u{`) || !strings.HasSuffix(s, "}") {
		return 0, false
	}
	digits := strings.ReplaceAll(s[3:len(s)-1], "_", "")
	if digits == "" || len(digits) > 6 {
		return 0, false
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || v > unicode.MaxRune || (v >= 0xD800 && v <= 0xDFFF) {
		return 0, false
	}
	return rune(v), true
}

// SplitNumber separates the digits of a numeric literal from its type suffix:
// "0xffu8" → ("0xff", "u8"), "1.5e3f64" → ("1.5e3", "f64").
func SplitNumber(text string) (body, suffix string) {
	i := 0
	if len(text) > 1 && text[0] == '0' && strings.ContainsRune("xXoObB", rune(text[1])) {
		hex := text[1] == 'x' || text[1] == 'X'
		i = 2
		for i < len(text) && (text[i] == '_' || isDec(text[i]) || hex && isHex(text[i])) {
			i++
		}
		return text[:i], text[i:]
	}
	for i < len(text) && (isDec(text[i]) || text[i] == '_' || text[i] == '.') {
		i++
	}
	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		j := i + 1
		if j < len(text) && (text[j] == '+' || text[j] == '-') {
			j++
		}
		if j < len(text) && isDec(text[j]) {
			i = j
			for i < len(text) && (isDec(text[i]) || text[i] == '_') {
				i++
			}
		}
	}
	return text[:i], text[i:]
}

// ParseIntBody converts the digits returned by SplitNumber into a value.
func ParseIntBody(body string) (uint64, error) {
	base := 10
	if len(body) > 1 && body[0] == '0' {
		switch body[1] {
		case 'x', 'X':
			base, body = 16, body[2:]
		case 'o', 'O':
			base, body = 8, body[2:]
		case 'b', 'B':
			base, body = 2, body[2:]
		}
	}
	return strconv.ParseUint(strings.ReplaceAll(body, "_", ""), base, 64)
}

// QuoteString spells s as a string literal token.
func QuoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		writeEscaped(&b, r, '"')
	}
	b.WriteByte('"')
	return b.String()
}

// QuoteChar spells r as a character literal token.
func QuoteChar(r rune) string {
	var b strings.Builder
	b.WriteByte('\'')
	writeEscaped(&b, r, '\'')
	b.WriteByte('\'')
	return b.String()
}

// writeEscaped spells r; values that are not Unicode scalars (negative,
// surrogates, above U+10FFFF) are written as U+FFFD.
func writeEscaped(b *strings.Builder, r rune, quote rune) {
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	switch {
	case r == quote || r == '\\':
		b.WriteByte('\\')
		b.WriteRune(r)
	case r == '\n':
		b.WriteString(`\n`)
	case r == '\r':
		b.WriteString(`\r`)
	case r == '\t':
		b.WriteString(`\t`)
	case r == 0:
		b.WriteString(`\0`)
	case r == utf8.RuneError || !unicode.IsPrint(r):
		fmt.Fprintf(b, `\u{%x}`, r)
	default:
		b.WriteRune(r)
	}
}
