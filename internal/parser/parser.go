package parser

import (
	"slices"

	"quasi/internal/diag"
	"quasi/internal/expand"
	"quasi/internal/source"
	"quasi/internal/token"
)

// Parser: курсор по плоскому потоку токенов, полученному из token trees.
// Delimiter tokens are explicit and the stream always ends with EOF.
// There is no error recovery: the first error poisons the parser and every
// later entry point returns it.
type Parser struct {
	cx       *expand.Context
	toks     []token.Token
	pos      int
	lastSpan source.Span // span последнего съеденного токена
	noStruct bool        // struct literals are not allowed (if/while/match heads)
	err      *Error
}

// New builds a parser over trees.
func New(cx *expand.Context, trees []token.Tree) *Parser {
	toks := token.Flatten(trees)
	eof := source.NoSpan
	if n := len(toks); n > 0 {
		last := toks[n-1].Span
		eof = source.Span{File: last.File, Start: last.End, End: last.End}
	}
	toks = append(toks, token.Token{Kind: token.EOF, Span: eof})
	return &Parser{cx: cx, toks: toks}
}

// NewFromSource lexes src as a virtual file called name and builds a parser
// over the result. Lexical errors come back as *diag.Error.
func NewFromSource(cx *expand.Context, name, src string) (*Parser, error) {
	trees, err := cx.ParseTTs(name, src)
	if err != nil {
		return nil, err
	}
	return New(cx, trees), nil
}

// AtEOF reports whether every token has been consumed.
func (p *Parser) AtEOF() bool {
	return p.at(token.EOF)
}

// Err returns the error that stopped the parser, if any.
func (p *Parser) Err() error {
	if p.err == nil {
		return nil
	}
	return p.err
}

// ===== токены =====

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) peekAt(n int) token.Token {
	if i := p.pos + n; i < len(p.toks) {
		return p.toks[i]
	}
	return p.toks[len(p.toks)-1]
}

func (p *Parser) at(k token.Kind) bool {
	return p.toks[p.pos].Kind == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.toks[p.pos].Kind)
}

// advance съедает текущий токен; EOF никогда не съедается.
func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// expect ожидает конкретный токен, иначе ошибка "expected `k`, found ...".
func (p *Parser) expect(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return token.Token{}, p.unexpected(diag.SynUnexpectedToken, "`"+k.String()+"`")
}

// atNt reports whether the current token is an interpolated node of kind k.
func (p *Parser) atNt(k token.NtKind) bool {
	return p.peek().IsInterpolated(k)
}

// spanFrom covers everything from start to the last consumed token.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSpan)
}

// ===== ошибки =====

// fail records the first error at the current token and returns false.
func (p *Parser) fail(code diag.Code, msg string) bool {
	return p.failAt(code, p.peek().Span, msg)
}

func (p *Parser) failAt(code diag.Code, sp source.Span, msg string) bool {
	if p.err != nil {
		return false
	}
	d := diag.NewError(code, sp, msg)
	p.err = &Error{Diagnostic: d}
	if p.cx != nil {
		p.cx.Sess.Reporter().Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes)
	}
	return false
}

// unexpected reports "expected <what>, found <current token>".
func (p *Parser) unexpected(code diag.Code, what string) bool {
	return p.fail(code, "expected "+what+", found "+describe(p.peek()))
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of input"
	case token.Interpolated:
		if tok.Nt != nil {
			return "interpolated " + tok.Nt.NtKind().String()
		}
	}
	return "`" + tok.String() + "`"
}

// ===== составные токены =====

// eatGt consumes one `>`, splitting `>>`, `>=` and `>>=` so that nested
// generic lists can close one level at a time.
func (p *Parser) eatGt() bool {
	var rest token.Kind
	switch p.peek().Kind {
	case token.Gt:
		p.advance()
		return true
	case token.Shr:
		rest = token.Gt
	case token.Ge:
		rest = token.Eq
	case token.ShrEq:
		rest = token.Ge
	default:
		return false
	}
	p.splitFirst(token.Gt, rest)
	return true
}

// eatAmp consumes one `&`, splitting `&&`.
func (p *Parser) eatAmp() bool {
	switch p.peek().Kind {
	case token.Amp:
		p.advance()
		return true
	case token.AndAnd:
		p.splitFirst(token.Amp, token.Amp)
		return true
	}
	return false
}

// splitFirst consumes the first byte of a compound token as first and leaves
// the remainder in place as rest.
func (p *Parser) splitFirst(first, rest token.Kind) {
	tok := p.peek()
	firstSpan, restSpan := tok.Span, tok.Span
	if tok.Span.Len() > 1 {
		firstSpan.End = firstSpan.Start + 1
		restSpan.Start++
	}
	p.lastSpan = firstSpan
	remainder := token.New(rest, restSpan)
	remainder.Leading = nil
	p.toks[p.pos] = remainder
}
