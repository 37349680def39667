package lexer

import (
	"quasi/internal/diag"
	"quasi/internal/source"
)

// maxTokenLength caps a single token; longer input is reported and the
// lexer skips to EOF.
const maxTokenLength = 1 << 16

type Options struct {
	Reporter diag.Reporter // может быть nil, тогда ошибки игнорируем (но продолжаем лексить)
	// KeepTrivia attaches whitespace and comments to Token.Leading.
	// Re-lexing printed fragments does not need them.
	KeepTrivia bool
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.errors++
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
