package ast

import (
	"strconv"

	"quasi/internal/lexer"
	"quasi/internal/source"
)

type LitKind uint8

const (
	LitStr LitKind = iota
	LitChar
	LitInt
	LitFloat
	LitBool
)

// IntSign tells how an integer literal is suffixed.
type IntSign uint8

const (
	Unsuffixed IntSign = iota
	Signed
	Unsigned
)

// IntWidth is the bit width named by an integer suffix.
type IntWidth uint8

const (
	WidthSize IntWidth = iota // isize/usize
	Width8
	Width16
	Width32
	Width64
)

// IntTy is the type tag of an integer literal (`i32`, `usize`, none).
type IntTy struct {
	Sign  IntSign
	Width IntWidth
}

// Suffix spells the tag as written after the digits.
func (t IntTy) Suffix() string {
	var prefix string
	switch t.Sign {
	case Signed:
		prefix = "i"
	case Unsigned:
		prefix = "u"
	default:
		return ""
	}
	switch t.Width {
	case Width8:
		return prefix + "8"
	case Width16:
		return prefix + "16"
	case Width32:
		return prefix + "32"
	case Width64:
		return prefix + "64"
	}
	return prefix + "size"
}

// ParseIntTy maps a suffix back to its tag; "" is Unsuffixed.
func ParseIntTy(suffix string) (IntTy, bool) {
	if suffix == "" {
		return IntTy{}, true
	}
	var t IntTy
	switch suffix[0] {
	case 'i':
		t.Sign = Signed
	case 'u':
		t.Sign = Unsigned
	default:
		return IntTy{}, false
	}
	switch suffix[1:] {
	case "8":
		t.Width = Width8
	case "16":
		t.Width = Width16
	case "32":
		t.Width = Width32
	case "64":
		t.Width = Width64
	case "size":
		t.Width = WidthSize
	default:
		return IntTy{}, false
	}
	return t, true
}

// Lit is a literal value. Only the fields of its Kind are meaningful.
// Float keeps the digits as written ("1.5e3") so printing is exact.
type Lit struct {
	Kind      LitKind
	Str       string
	Char      rune
	Int       uint64
	IntTy     IntTy
	Float     string
	FloatSufx string // "", "f32" or "f64"
	Bool      bool
	Span      source.Span
}

func NewIntLit(v uint64, ty IntTy, sp source.Span) *Lit {
	return &Lit{Kind: LitInt, Int: v, IntTy: ty, Span: sp}
}

func NewStrLit(s string, sp source.Span) *Lit {
	return &Lit{Kind: LitStr, Str: s, Span: sp}
}

func NewBoolLit(b bool, sp source.Span) *Lit {
	return &Lit{Kind: LitBool, Bool: b, Span: sp}
}

// String spells the literal as a single token.
func (l *Lit) String() string {
	switch l.Kind {
	case LitStr:
		return lexer.QuoteString(l.Str)
	case LitChar:
		return lexer.QuoteChar(l.Char)
	case LitInt:
		return strconv.FormatUint(l.Int, 10) + l.IntTy.Suffix()
	case LitFloat:
		if l.FloatSufx != "" && l.Float[len(l.Float)-1] == '.' {
			// "1.f32" would lex as a field access
			return l.Float + "0" + l.FloatSufx
		}
		return l.Float + l.FloatSufx
	case LitBool:
		if l.Bool {
			return "true"
		}
		return "false"
	}
	return "<lit?>"
}
