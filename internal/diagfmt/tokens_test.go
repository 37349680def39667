package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"quasi/internal/lexer"
	"quasi/internal/source"
	"quasi/internal/token"
)

func lexFile(t *testing.T, src string) (*source.FileSet, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("tokens.rs", []byte(src))
	return fs, fs.Get(id)
}

func TestParseTokenFormat(t *testing.T) {
	for in, want := range map[string]TokenFormat{"": TokenFormatPretty, "json": TokenFormatJSON, "msgpack": TokenFormatMsgpack} {
		got, err := ParseTokenFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseTokenFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseTokenFormat("yaml"); err == nil {
		t.Errorf("yaml should be rejected")
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs, f := lexFile(t, "let x = 1;")
	toks := lexer.Tokenize(f, lexer.Options{KeepTrivia: true})
	var buf bytes.Buffer
	if err := FormatTokens(&buf, TokenFormatPretty, toks, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "  1: let") || !strings.Contains(out, "\"x\" at 1:5-1:6") {
		t.Fatalf("unexpected dump:\n%s", out)
	}
	if !strings.Contains(out, "(leading: Space)") {
		t.Fatalf("leading trivia missing:\n%s", out)
	}
}

func TestFormatTokensEncodings(t *testing.T) {
	fs, f := lexFile(t, "a + 1")
	toks := lexer.Tokenize(f, lexer.Options{})

	var js bytes.Buffer
	if err := FormatTokens(&js, TokenFormatJSON, toks, fs); err != nil {
		t.Fatal(err)
	}
	var fromJSON []TokenOutput
	if err := json.Unmarshal(js.Bytes(), &fromJSON); err != nil {
		t.Fatal(err)
	}

	var mp bytes.Buffer
	if err := FormatTokens(&mp, TokenFormatMsgpack, toks, fs); err != nil {
		t.Fatal(err)
	}
	var fromMsgpack []TokenOutput
	if err := msgpack.Unmarshal(mp.Bytes(), &fromMsgpack); err != nil {
		t.Fatal(err)
	}

	if len(fromJSON) != len(fromMsgpack) || len(fromJSON) == 0 {
		t.Fatalf("json %d tokens, msgpack %d tokens", len(fromJSON), len(fromMsgpack))
	}
	for i := range fromJSON {
		if fromJSON[i].Kind != fromMsgpack[i].Kind || fromJSON[i].Span != fromMsgpack[i].Span {
			t.Errorf("token %d differs: %+v vs %+v", i, fromJSON[i], fromMsgpack[i])
		}
	}
	if last := fromJSON[len(fromJSON)-1]; last.Kind != token.EOF.String() {
		t.Errorf("last token = %s, want EOF", last.Kind)
	}
}

func TestFormatTreesNesting(t *testing.T) {
	fs, f := lexFile(t, "f(a, [b])")
	trees := lexer.New(f, lexer.Options{}).Trees()

	var buf bytes.Buffer
	if err := FormatTrees(&buf, TokenFormatPretty, trees, fs); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\n    Ident") {
		t.Fatalf("nested ident should be indented twice:\n%s", buf.String())
	}

	out := BuildTreesOutput(trees)
	if len(out) != 2 || out[1].Delim != "()" || len(out[1].Children) != 3 || out[1].Children[2].Delim != "[]" {
		t.Fatalf("tree output = %+v", out)
	}
}
