package fuzztests

import (
	"context"
	"testing"
	"time"

	"quasi/internal/expand"
	"quasi/internal/parser"
	"quasi/internal/quote"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func FuzzParserItems(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		cx := expand.NewContext(expand.NewConfig("test"), expand.NewSession(128))
		p, err := parser.NewFromSource(cx, "fuzz.rs", string(input))
		if err != nil {
			return
		}
		items, err := p.ParseItems()
		if err != nil {
			return
		}
		// успешно разобранный элемент переживает конверсию в токены
		for _, it := range items {
			trees, err := it.ToTokens(cx)
			if err != nil {
				t.Fatalf("ToTokens: %v", err)
			}
			back := quote.MustParseItemFrom(parser.New(cx, trees))
			if back == nil || back.String() != it.String() {
				t.Fatalf("item changed through tokens:\n%s", it.String())
			}
		}
	})
}

func FuzzTextEntryPoints(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		s := string(clampInput(input))
		cx := expand.NewContext(nil, expand.NewSession(128))
		// ошибки ожидаемы, паники нет
		_, _ = quote.ParseItem(cx, s)
		_, _ = quote.ParseExpr(cx, s)
		_, _ = quote.ParseStmt(cx, s)
		_, _ = quote.ParseTTs(cx, s)
	})
}

// FuzzParserNoHang checks that parsing terminates on every input.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Add([]byte("fn f() { { { { } } } }"))
	f.Add([]byte("fn f() { loop { if x { } else if y { } } }"))
	f.Add([]byte("a < b > c >> d >>= e"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			cx := expand.NewContext(nil, expand.NewSession(128))
			if p, err := parser.NewFromSource(cx, "fuzz.rs", string(input)); err == nil {
				_, _ = p.ParseItems()
			}
			if p, err := parser.NewFromSource(cx, "fuzz.rs", string(input)); err == nil {
				_, _ = p.ParseExpr()
			}
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hung on input of %d bytes", len(input))
		}
	})
}
