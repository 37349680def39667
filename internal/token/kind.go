package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the token stream.
	EOF

	// Ident represents an identifier token.
	Ident
	// Lifetime represents a lifetime token such as 'a.
	Lifetime
	// Interpolated carries an already-parsed syntax node (see Token.Nt).
	Interpolated

	// KwAs represents the 'as' keyword.
	KwAs
	// KwBreak represents the 'break' keyword.
	KwBreak
	// KwConst represents the 'const' keyword.
	KwConst
	// KwContinue represents the 'continue' keyword.
	KwContinue
	// KwCrate represents the 'crate' keyword.
	KwCrate
	// KwElse represents the 'else' keyword.
	KwElse
	// KwEnum represents the 'enum' keyword.
	KwEnum
	// KwExtern represents the 'extern' keyword.
	KwExtern
	// KwFalse represents the 'false' keyword.
	KwFalse
	// KwFn represents the 'fn' keyword.
	KwFn
	// KwFor represents the 'for' keyword.
	KwFor
	// KwIf represents the 'if' keyword.
	KwIf
	// KwImpl represents the 'impl' keyword.
	KwImpl
	// KwIn represents the 'in' keyword.
	KwIn
	// KwLet represents the 'let' keyword.
	KwLet
	// KwLoop represents the 'loop' keyword.
	KwLoop
	// KwMatch represents the 'match' keyword.
	KwMatch
	// KwMod represents the 'mod' keyword.
	KwMod
	// KwMove represents the 'move' keyword.
	KwMove
	// KwMut represents the 'mut' keyword.
	KwMut
	// KwPub represents the 'pub' keyword.
	KwPub
	// KwRef represents the 'ref' keyword.
	KwRef
	// KwReturn represents the 'return' keyword.
	KwReturn
	// KwSelfValue represents the 'self' keyword.
	KwSelfValue
	// KwSelfType represents the 'Self' keyword.
	KwSelfType
	// KwStatic represents the 'static' keyword.
	KwStatic
	// KwStruct represents the 'struct' keyword.
	KwStruct
	// KwSuper represents the 'super' keyword.
	KwSuper
	// KwTrait represents the 'trait' keyword.
	KwTrait
	// KwTrue represents the 'true' keyword.
	KwTrue
	// KwType represents the 'type' keyword.
	KwType
	// KwUnsafe represents the 'unsafe' keyword.
	KwUnsafe
	// KwUse represents the 'use' keyword.
	KwUse
	// KwWhere represents the 'where' keyword.
	KwWhere
	// KwWhile represents the 'while' keyword.
	KwWhile

	// IntLit represents an integer literal, suffix included.
	IntLit
	// FloatLit represents a float literal, suffix included.
	FloatLit
	// StrLit represents a cooked string literal.
	StrLit
	// CharLit represents a character literal.
	CharLit

	Plus       // +
	Minus      // -
	Star       // *
	Slash      // /
	Percent    // %
	Caret      // ^
	Bang       // !
	Amp        // &
	Pipe       // |
	AndAnd     // &&
	OrOr       // ||
	Shl        // <<
	Shr        // >>
	PlusEq     // +=
	MinusEq    // -=
	StarEq     // *=
	SlashEq    // /=
	PercentEq  // %=
	CaretEq    // ^=
	AmpEq      // &=
	PipeEq     // |=
	ShlEq      // <<=
	ShrEq      // >>=
	Eq         // =
	EqEq       // ==
	Ne         // !=
	Lt         // <
	Le         // <=
	Gt         // >
	Ge         // >=
	At         // @
	Underscore // _
	Dot        // .
	DotDot     // ..
	DotDotDot  // ...
	Comma      // ,
	Semi       // ;
	Colon      // :
	ModSep     // ::
	RArrow     // ->
	FatArrow   // =>
	Pound      // #
	Dollar     // $
	Question   // ?
	LParen     // (
	RParen     // )
	LBracket   // [
	RBracket   // ]
	LBrace     // {
	RBrace     // }
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Ident:        "Ident",
	Lifetime:     "Lifetime",
	Interpolated: "Interpolated",
	KwAs:         "as",
	KwBreak:      "break",
	KwConst:      "const",
	KwContinue:   "continue",
	KwCrate:      "crate",
	KwElse:       "else",
	KwEnum:       "enum",
	KwExtern:     "extern",
	KwFalse:      "false",
	KwFn:         "fn",
	KwFor:        "for",
	KwIf:         "if",
	KwImpl:       "impl",
	KwIn:         "in",
	KwLet:        "let",
	KwLoop:       "loop",
	KwMatch:      "match",
	KwMod:        "mod",
	KwMove:       "move",
	KwMut:        "mut",
	KwPub:        "pub",
	KwRef:        "ref",
	KwReturn:     "return",
	KwSelfValue:  "self",
	KwSelfType:   "Self",
	KwStatic:     "static",
	KwStruct:     "struct",
	KwSuper:      "super",
	KwTrait:      "trait",
	KwTrue:       "true",
	KwType:       "type",
	KwUnsafe:     "unsafe",
	KwUse:        "use",
	KwWhere:      "where",
	KwWhile:      "while",
	IntLit:       "IntLit",
	FloatLit:     "FloatLit",
	StrLit:       "StrLit",
	CharLit:      "CharLit",
	Plus:         "+",
	Minus:        "-",
	Star:         "*",
	Slash:        "/",
	Percent:      "%",
	Caret:        "^",
	Bang:         "!",
	Amp:          "&",
	Pipe:         "|",
	AndAnd:       "&&",
	OrOr:         "||",
	Shl:          "<<",
	Shr:          ">>",
	PlusEq:       "+=",
	MinusEq:      "-=",
	StarEq:       "*=",
	SlashEq:      "/=",
	PercentEq:    "%=",
	CaretEq:      "^=",
	AmpEq:        "&=",
	PipeEq:       "|=",
	ShlEq:        "<<=",
	ShrEq:        ">>=",
	Eq:           "=",
	EqEq:         "==",
	Ne:           "!=",
	Lt:           "<",
	Le:           "<=",
	Gt:           ">",
	Ge:           ">=",
	At:           "@",
	Underscore:   "_",
	Dot:          ".",
	DotDot:       "..",
	DotDotDot:    "...",
	Comma:        ",",
	Semi:         ";",
	Colon:        ":",
	ModSep:       "::",
	RArrow:       "->",
	FatArrow:     "=>",
	Pound:        "#",
	Dollar:       "$",
	Question:     "?",
	LParen:       "(",
	RParen:       ")",
	LBracket:     "[",
	RBracket:     "]",
	LBrace:       "{",
	RBrace:       "}",
}

// String returns the canonical spelling of punctuation and keywords and the
// kind name for everything else.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind?"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwAs && k <= KwWhile
}

// IsLiteral reports whether k is a literal token kind.
func (k Kind) IsLiteral() bool {
	return k >= IntLit && k <= CharLit
}

// IsPunct reports whether k is punctuation or an operator (delimiters included).
func (k Kind) IsPunct() bool {
	return k >= Plus && k <= RBrace
}
