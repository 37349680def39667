package fuzztests

import (
	"testing"

	"quasi/internal/diag"
	"quasi/internal/lexer"
	"quasi/internal/source"
	"quasi/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.rs", input))

		bag := diag.NewBag(64)
		toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}, KeepTrivia: true})
		if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
			t.Fatalf("token stream does not end with EOF")
		}
		end := uint32(len(file.Content)) // #nosec G115 -- clamped above
		for _, tok := range toks {
			if tok.Span.Start > tok.Span.End || tok.Span.End > end {
				t.Fatalf("token %v has span %v outside the input", tok.Kind, tok.Span)
			}
		}
	})
}

func FuzzLexerTrees(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.rs", input))

		bag := diag.NewBag(64)
		trees := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}}).Trees()
		if bag.HasErrors() {
			return
		}
		// без ошибок развёрнутые деревья совпадают с плоским потоком
		flat := token.Flatten(trees)
		toks := lexer.Tokenize(file, lexer.Options{})
		if len(flat) != len(toks)-1 {
			t.Fatalf("flattened %d tokens, lexer produced %d", len(flat), len(toks)-1)
		}
	})
}
