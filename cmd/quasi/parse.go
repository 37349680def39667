package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"quasi/internal/diagfmt"
	"quasi/internal/parser"
	"quasi/internal/quote"
	"quasi/internal/token"
)

// node is what every parse kind yields: printable and quotable.
type node interface {
	quote.Tokenizable
	String() string
}

type parseFunc func(p *parser.Parser) ([]node, error)

func one[T node](v T, err error) ([]node, error) {
	if err != nil {
		return nil, err
	}
	return []node{v}, nil
}

// parseKinds maps --kind values to cursor entry points. Every kind but
// items parses the first node and ignores what follows.
var parseKinds = map[string]parseFunc{
	"items": func(p *parser.Parser) ([]node, error) {
		items, err := p.ParseItems()
		if err != nil {
			return nil, err
		}
		out := make([]node, len(items))
		for i, it := range items {
			out[i] = it
		}
		return out, nil
	},
	"item": func(p *parser.Parser) ([]node, error) {
		it, err := p.ParseItem()
		if err == nil && it == nil {
			return nil, fmt.Errorf("no item found")
		}
		return one(it, err)
	},
	"stmt": func(p *parser.Parser) ([]node, error) {
		st, err := p.ParseStmt()
		if err == nil && st == nil {
			return nil, fmt.Errorf("no statement found")
		}
		return one(st, err)
	},
	"expr":       func(p *parser.Parser) ([]node, error) { return one(p.ParseExpr()) },
	"pat":        func(p *parser.Parser) ([]node, error) { return one(p.ParsePat()) },
	"ty":         func(p *parser.Parser) ([]node, error) { return one(p.ParseTy()) },
	"arm":        func(p *parser.Parser) ([]node, error) { return one(p.ParseArm()) },
	"attr":       func(p *parser.Parser) ([]node, error) { return one(p.ParseAttribute(true)) },
	"meta":       func(p *parser.Parser) ([]node, error) { return one(p.ParseMetaItem()) },
	"generics":   func(p *parser.Parser) ([]node, error) { return one(p.ParseGenerics()) },
	"where":      func(p *parser.Parser) ([]node, error) { return one(p.ParseWhereClause()) },
	"block":      func(p *parser.Parser) ([]node, error) { return one(p.ParseBlock()) },
	"path":       func(p *parser.Parser) ([]node, error) { return one(p.ParsePath()) },
	"impl-item":  func(p *parser.Parser) ([]node, error) { return one(p.ParseImplItem()) },
	"trait-item": func(p *parser.Parser) ([]node, error) { return one(p.ParseTraitItem()) },
}

func kindNames() string {
	names := make([]string, 0, len(parseKinds))
	for k := range parseKinds {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

var parseCmd = &cobra.Command{
	Use:   "parse [flags] FILE",
	Short: "Parse a file as one syntactic kind and pretty-print it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(cmd, args[0], false)
	},
}

var quoteCmd = &cobra.Command{
	Use:   "quote [flags] FILE",
	Short: "Parse a file, convert the nodes to token trees and dump them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(cmd, args[0], true)
	},
}

func init() {
	for _, c := range []*cobra.Command{parseCmd, quoteCmd} {
		c.Flags().String("kind", "items", "what to parse ("+kindNames()+")")
	}
	quoteCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
}

func runParse(cmd *cobra.Command, path string, quoted bool) error {
	kind, err := cmd.Flags().GetString("kind")
	if err != nil {
		return fmt.Errorf("failed to get kind flag: %w", err)
	}
	parse, ok := parseKinds[kind]
	if !ok {
		return fmt.Errorf("unknown kind %q (expected %s)", kind, kindNames())
	}
	format := diagfmt.TokenFormatPretty
	if quoted {
		formatFlag, flagErr := cmd.Flags().GetString("format")
		if flagErr != nil {
			return fmt.Errorf("failed to get format flag: %w", flagErr)
		}
		if format, err = diagfmt.ParseTokenFormat(formatFlag); err != nil {
			return err
		}
	}

	cx, err := newContext(cmd)
	if err != nil {
		return err
	}
	defer printDiagnostics(cmd, cx.Sess)

	timer := newTimer(cmd)
	defer printTimings(cmd, timer)

	var trees []token.Tree
	if err = timer.Track("lex", func() (lexErr error) {
		trees, lexErr = loadTrees(cx, path)
		return lexErr
	}); err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	var nodes []node
	if err = timer.Track("parse", func() (parseErr error) {
		nodes, parseErr = parse(parser.New(cx, trees))
		return parseErr
	}); err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if !quoted {
		for i, n := range nodes {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, n.String())
		}
		return nil
	}

	parts := make([]quote.Tokenizable, len(nodes))
	for i, n := range nodes {
		parts[i] = n
	}
	var all []token.Tree
	if err = timer.Track("convert", func() (convErr error) {
		all, convErr = quote.Concat(cx, parts...)
		return convErr
	}); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	return diagfmt.FormatTrees(out, format, all, cx.Sess.FileSet)
}
