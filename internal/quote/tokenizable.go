package quote

import (
	"reflect"
	"strconv"

	"quasi/internal/expand"
	"quasi/internal/lexer"
	"quasi/internal/source"
	"quasi/internal/token"
)

// Tokenizable converts a value into token trees for splicing. Errors are
// *diag.Error values; the same diagnostic is also in the session bag.
type Tokenizable interface {
	ToTokens(cx *expand.Context) ([]token.Tree, error)
}

// Func adapts a plain function to Tokenizable.
type Func func(cx *expand.Context) ([]token.Tree, error)

func (f Func) ToTokens(cx *expand.Context) ([]token.Tree, error) { return f(cx) }

func single(tok token.Token) []token.Tree {
	return []token.Tree{token.TokenTree(tok)}
}

// Bool becomes the `true` or `false` keyword.
type Bool bool

func (b Bool) ToTokens(*expand.Context) ([]token.Tree, error) {
	if b {
		return single(token.New(token.KwTrue, source.NoSpan)), nil
	}
	return single(token.New(token.KwFalse, source.NoSpan)), nil
}

// Char becomes an escaped character literal. A value that is not a Unicode
// scalar becomes '\u{fffd}'.
type Char rune

func (c Char) ToTokens(*expand.Context) ([]token.Tree, error) {
	return single(token.NewLit(token.CharLit, lexer.QuoteChar(rune(c)), source.NoSpan)), nil
}

// Str becomes an escaped string literal. Invalid UTF-8 bytes become U+FFFD.
type Str string

func (s Str) ToTokens(*expand.Context) ([]token.Tree, error) {
	return single(token.NewLit(token.StrLit, lexer.QuoteString(string(s)), source.NoSpan)), nil
}

// Unit becomes an empty `()` group.
type Unit struct{}

func (Unit) ToTokens(*expand.Context) ([]token.Tree, error) {
	return []token.Tree{token.DelimitedTree(token.Paren, source.NoSpan, nil)}, nil
}

// Integer is every Go integer type Int accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type intValue[T Integer] struct{ v T }

// Int turns v into an integer literal suffixed with the width of T:
// int32(7) → `7i32`, uint(7) → `7usize`.
//
// Only the magnitude is emitted: Int(int32(-5)) yields `5i32` and no `-`
// token, so the literal alone does not carry the sign of a negative value.
func Int[T Integer](v T) Tokenizable {
	return intValue[T]{v: v}
}

func (n intValue[T]) ToTokens(*expand.Context) ([]token.Tree, error) {
	suffix, signed := intSuffix(reflect.TypeFor[T]().Kind())
	var mag uint64
	if signed {
		i := int64(n.v)
		if i < 0 {
			// -(i+1)+1 stays in range for math.MinInt64
			mag = uint64(-(i + 1)) + 1
		} else {
			mag = uint64(i)
		}
	} else {
		mag = uint64(n.v)
	}
	return single(token.NewLit(token.IntLit, strconv.FormatUint(mag, 10)+suffix, source.NoSpan)), nil
}

func intSuffix(k reflect.Kind) (suffix string, signed bool) {
	switch k {
	case reflect.Int:
		return "isize", true
	case reflect.Int8:
		return "i8", true
	case reflect.Int16:
		return "i16", true
	case reflect.Int32:
		return "i32", true
	case reflect.Int64:
		return "i64", true
	case reflect.Uint8:
		return "u8", false
	case reflect.Uint16:
		return "u16", false
	case reflect.Uint32:
		return "u32", false
	case reflect.Uint64:
		return "u64", false
	}
	return "usize", false // uint, uintptr
}
