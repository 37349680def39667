package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"quasi/internal/source"
	"quasi/internal/token"
)

// TokenFormat selects the encoding of a token dump.
type TokenFormat uint8

const (
	TokenFormatPretty TokenFormat = iota
	TokenFormatJSON
	TokenFormatMsgpack
)

// ParseTokenFormat maps a --format value to a TokenFormat.
func ParseTokenFormat(s string) (TokenFormat, error) {
	switch s {
	case "", "pretty":
		return TokenFormatPretty, nil
	case "json":
		return TokenFormatJSON, nil
	case "msgpack":
		return TokenFormatMsgpack, nil
	}
	return TokenFormatPretty, fmt.Errorf("unknown format %q (want pretty, json or msgpack)", s)
}

type TokenOutput struct {
	Kind    string      `json:"kind" msgpack:"kind"`
	Text    string      `json:"text,omitempty" msgpack:"text,omitempty"`
	Nt      string      `json:"nt,omitempty" msgpack:"nt,omitempty"`
	Span    source.Span `json:"span" msgpack:"span"`
	Leading []string    `json:"leading,omitempty" msgpack:"leading,omitempty"`
}

// TreeOutput is one token tree; exactly one of Token and Delim is set.
type TreeOutput struct {
	Token    *TokenOutput `json:"token,omitempty" msgpack:"token,omitempty"`
	Delim    string       `json:"delim,omitempty" msgpack:"delim,omitempty"`
	Children []TreeOutput `json:"children,omitempty" msgpack:"children,omitempty"`
	Span     source.Span  `json:"span" msgpack:"span"`
}

func tokenOutput(tok token.Token) TokenOutput {
	out := TokenOutput{Kind: tok.Kind.String(), Text: tok.Text, Span: tok.Span}
	if tok.Kind == token.Interpolated && tok.Nt != nil {
		out.Nt = tok.Nt.NtKind().String()
		out.Text = tok.Nt.String()
	}
	for _, tr := range tok.Leading {
		out.Leading = append(out.Leading, tr.Kind.String())
	}
	return out
}

// BuildTokensOutput converts tokens up to and including EOF.
func BuildTokensOutput(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tokenOutput(tok))
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

// BuildTreesOutput converts trees recursively.
func BuildTreesOutput(trees []token.Tree) []TreeOutput {
	out := make([]TreeOutput, 0, len(trees))
	for _, t := range trees {
		if t.Kind == token.TreeToken {
			tok := tokenOutput(t.Token)
			out = append(out, TreeOutput{Token: &tok, Span: t.Span()})
			continue
		}
		out = append(out, TreeOutput{
			Delim:    t.Group.Delim.String(),
			Children: BuildTreesOutput(t.Group.Trees),
			Span:     t.Span(),
		})
	}
	return out
}

// FormatTokens writes tokens in the requested format.
func FormatTokens(w io.Writer, format TokenFormat, tokens []token.Token, fs *source.FileSet) error {
	switch format {
	case TokenFormatJSON:
		return encodeJSON(w, BuildTokensOutput(tokens))
	case TokenFormatMsgpack:
		return msgpack.NewEncoder(w).Encode(BuildTokensOutput(tokens))
	}
	return FormatTokensPretty(w, tokens, fs)
}

// FormatTrees writes token trees in the requested format.
func FormatTrees(w io.Writer, format TokenFormat, trees []token.Tree, fs *source.FileSet) error {
	switch format {
	case TokenFormatJSON:
		return encodeJSON(w, BuildTreesOutput(trees))
	case TokenFormatMsgpack:
		return msgpack.NewEncoder(w).Encode(BuildTreesOutput(trees))
	}
	return FormatTreesPretty(w, trees, fs)
}

func encodeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	var b strings.Builder
	for i, tok := range tokens {
		writeTokenLine(&b, fmt.Sprintf("%3d: ", i+1), tok, fs)
		if tok.Kind == token.EOF {
			break
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatTreesPretty prints one line per token, groups indented under their
// opening delimiter.
func FormatTreesPretty(w io.Writer, trees []token.Tree, fs *source.FileSet) error {
	var b strings.Builder
	writeTrees(&b, trees, fs, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTrees(b *strings.Builder, trees []token.Tree, fs *source.FileSet, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, t := range trees {
		if t.Kind == token.TreeToken {
			writeTokenLine(b, indent, t.Token, fs)
			continue
		}
		writeTokenLine(b, indent, t.Group.OpenToken(), fs)
		writeTrees(b, t.Group.Trees, fs, depth+1)
		writeTokenLine(b, indent, t.Group.CloseToken(), fs)
	}
}

func writeTokenLine(b *strings.Builder, prefix string, tok token.Token, fs *source.FileSet) {
	out := tokenOutput(tok)
	fmt.Fprintf(b, "%s%-15s", prefix, out.Kind)
	switch {
	case out.Nt != "":
		fmt.Fprintf(b, " %s %q", out.Nt, out.Text)
	case tok.Text != "" && tok.Text != out.Kind:
		fmt.Fprintf(b, " %q", out.Text)
	}
	if fs != nil && fs.Get(tok.Span.File) != nil {
		startPos, endPos := fs.Resolve(tok.Span)
		fmt.Fprintf(b, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
	}
	if len(out.Leading) > 0 {
		fmt.Fprintf(b, " (leading: %s)", strings.Join(out.Leading, ", "))
	}
	b.WriteByte('\n')
}
