package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"quasi/internal/diag"
	"quasi/internal/expand"
	"quasi/internal/parser"
	"quasi/internal/token"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

// newParser lexes src into a fresh context and returns a parser over it.
func newParser(t *testing.T, cfg *expand.Config, src string) (*parser.Parser, *expand.Context) {
	t.Helper()
	cx := expand.NewContext(cfg, expand.NewSession(64))
	p, err := parser.NewFromSource(cx, "test.rs", src)
	if err != nil {
		t.Fatalf("lex %q: %v", src, err)
	}
	return p, cx
}

func newParserAllowingErrors(src string) (*parser.Parser, error) {
	cx := expand.NewContext(nil, expand.NewSession(64))
	return parser.NewFromSource(cx, "test.rs", src)
}

func newTreeParser(trees []token.Tree) *parser.Parser {
	return parser.New(expand.NewContext(nil, nil), trees)
}
