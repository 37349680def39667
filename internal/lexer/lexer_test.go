package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"quasi/internal/diag"
	"quasi/internal/lexer"
	"quasi/internal/source"
	"quasi/internal/token"
)

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string, keepTrivia bool) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.rs", []byte(input))
	bag := diag.NewBag(0)
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: bag}, KeepTrivia: keepTrivia})
	return lx, bag
}

// collectAllTokens собирает все токены до EOF (без самого EOF)
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func errorMessages(bag *diag.Bag) []string {
	out := make([]string, 0, bag.Len())
	for _, d := range bag.Items() {
		out = append(out, fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message))
	}
	return out
}

// expectTokens проверяет последовательность токенов и отсутствие ошибок
func expectTokens(t *testing.T, input string, expected ...token.Kind) []token.Token {
	t.Helper()
	lx, bag := makeTestLexer(input, false)
	tokens := collectAllTokens(lx)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors for %q: %v", input, errorMessages(bag))
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\nInput: %q\nTokens: %s", len(expected), len(tokens), input, tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text: %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
	return tokens
}

func expectError(t *testing.T, input string, code diag.Code) {
	t.Helper()
	lx, bag := makeTestLexer(input, false)
	collectAllTokens(lx)
	for _, d := range bag.Items() {
		if d.Code == code {
			return
		}
	}
	t.Fatalf("expected %s for %q, got %v", code.ID(), input, errorMessages(bag))
}

func TestIdentifiersAndKeywords(t *testing.T) {
	toks := expectTokens(t, "fn foo _bar _ Self self r#x",
		token.KwFn, token.Ident, token.Ident, token.Underscore, token.KwSelfType, token.KwSelfValue,
		token.Ident, token.Pound, token.Ident)
	if toks[1].Text != "foo" || toks[2].Text != "_bar" {
		t.Fatalf("unexpected texts: %s", tokensToString(toks))
	}
}

func TestIdentifierNFC(t *testing.T) {
	// "é" as e + combining acute accent
	toks := expectTokens(t, "cafe\u0301", token.Ident)
	if toks[0].Text != "caf\u00e9" {
		t.Fatalf("identifier not NFC-normalized: %q", toks[0].Text)
	}
	if toks[0].Span.Len() != uint32(len("cafe\u0301")) {
		t.Fatalf("span should cover source bytes, got %v", toks[0].Span)
	}
}

func TestNumbers(t *testing.T) {
	cases := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.IntLit},
		{"1_000", token.IntLit},
		{"0xffu8", token.IntLit},
		{"0b1010_i64", token.IntLit},
		{"0o777", token.IntLit},
		{"5i32", token.IntLit},
		{"7usize", token.IntLit},
		{"1.5", token.FloatLit},
		{"1.", token.FloatLit},
		{"1e10", token.FloatLit},
		{"2.5E-3", token.FloatLit},
		{"3f32", token.FloatLit},
		{"1.0f64", token.FloatLit},
	}
	for _, tt := range cases {
		t.Run(tt.input, func(t *testing.T) {
			toks := expectTokens(t, tt.input, tt.kind)
			if toks[0].Text != tt.input {
				t.Fatalf("text = %q", toks[0].Text)
			}
		})
	}
}

func TestNumberDotDisambiguation(t *testing.T) {
	expectTokens(t, "1..2", token.IntLit, token.DotDot, token.IntLit)
	expectTokens(t, "1.foo()", token.IntLit, token.Dot, token.Ident, token.LParen, token.RParen)
	expectTokens(t, "x.0", token.Ident, token.Dot, token.IntLit)
}

func TestNumberErrors(t *testing.T) {
	expectError(t, "0x", diag.LexBadNumber)
	expectError(t, "0b102", diag.LexBadNumber)
	expectError(t, "1e+", diag.LexBadNumber)
	expectError(t, "5i7", diag.LexBadSuffix)
	expectError(t, "1.5u8", diag.LexBadSuffix)
}

func TestStringsAndChars(t *testing.T) {
	expectTokens(t, `"hello\n" 'a' '\'' '\u{1F600}' "multi
line"`, token.StrLit, token.CharLit, token.CharLit, token.CharLit, token.StrLit)
	expectError(t, `"open`, diag.LexUnterminatedString)
	expectError(t, `"\q"`, diag.LexBadEscape)
	expectError(t, `"\xff"`, diag.LexBadEscape)
	expectError(t, `'ab'`, diag.LexUnterminatedChar)
}

func TestLifetimes(t *testing.T) {
	toks := expectTokens(t, "&'a mut T 'static 'x'", token.Amp, token.Lifetime, token.KwMut, token.Ident, token.Lifetime, token.CharLit)
	if toks[1].Text != "'a" || toks[4].Text != "'static" {
		t.Fatalf("lifetimes: %s", tokensToString(toks))
	}
}

func TestOperatorsGreedy(t *testing.T) {
	expectTokens(t, "<<= >>= ... .. :: -> => && || == != <= >= += -= *= /= %= ^= &= |=",
		token.ShlEq, token.ShrEq, token.DotDotDot, token.DotDot, token.ModSep, token.RArrow, token.FatArrow,
		token.AndAnd, token.OrOr, token.EqEq, token.Ne, token.Le, token.Ge, token.PlusEq, token.MinusEq,
		token.StarEq, token.SlashEq, token.PercentEq, token.CaretEq, token.AmpEq, token.PipeEq)
	expectTokens(t, "#![a] $x?", token.Pound, token.Bang, token.LBracket, token.Ident, token.RBracket,
		token.Dollar, token.Ident, token.Question)
}

func TestUnknownChar(t *testing.T) {
	expectError(t, "a ~ b", diag.LexUnknownChar)
	expectError(t, "a € b", diag.LexUnknownChar)
}

func TestTrivia(t *testing.T) {
	lx, bag := makeTestLexer("  // line\n/* a /* nested */ b */x", true)
	tok := lx.Next()
	if bag.HasErrors() {
		t.Fatalf("errors: %v", errorMessages(bag))
	}
	want := []token.TriviaKind{token.TriviaSpace, token.TriviaLineComment, token.TriviaNewline, token.TriviaBlockComment}
	if len(tok.Leading) != len(want) {
		t.Fatalf("leading = %+v", tok.Leading)
	}
	for i, k := range want {
		if tok.Leading[i].Kind != k {
			t.Errorf("leading[%d] = %v, want %v", i, tok.Leading[i].Kind, k)
		}
	}
	if tok.Leading[3].Text != "/* a /* nested */ b */" {
		t.Errorf("block comment text = %q", tok.Leading[3].Text)
	}
	expectError(t, "/* open", diag.LexUnterminatedBlockComment)
}

func TestTriviaDroppedByDefault(t *testing.T) {
	lx, _ := makeTestLexer("  // c\n x", false)
	if tok := lx.Next(); len(tok.Leading) != 0 {
		t.Fatalf("expected no trivia, got %+v", tok.Leading)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b", false)
	if lx.Peek().Text != "a" || lx.Next().Text != "a" || lx.Next().Text != "b" {
		t.Fatalf("peek/next mismatch")
	}
	if lx.Next().Kind != token.EOF || lx.Next().Kind != token.EOF {
		t.Fatalf("EOF should be sticky")
	}
}

func TestSpansAreByteOffsets(t *testing.T) {
	toks := expectTokens(t, "let  x", token.KwLet, token.Ident)
	if toks[0].Span.Start != 0 || toks[0].Span.End != 3 || toks[1].Span.Start != 5 {
		t.Fatalf("spans: %v %v", toks[0].Span, toks[1].Span)
	}
}
