package checkpipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"quasi/internal/ast"
	"quasi/internal/expand"
	"quasi/internal/parser"
	"quasi/internal/token"
)

// ErrMismatch is wrapped by FileResult.Err when at least one item did not
// survive the round trip.
var ErrMismatch = errors.New("round trip mismatch")

// Request configures a check run.
type Request struct {
	Files          []string
	Jobs           int // <= 0: GOMAXPROCS
	Config         *expand.Config
	MaxDiagnostics int
	Progress       ProgressSink
}

// Mismatch describes one item whose round trip changed its printed form.
type Mismatch struct {
	Item  int
	Stage Stage
	Want  string
	Got   string
}

// Diff returns a unified diff of Want and Got.
func (m Mismatch) Diff() string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(m.Want + "\n"),
		B:        difflib.SplitLines(m.Got + "\n"),
		FromFile: "original",
		ToFile:   string(m.Stage),
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

// FileResult is the outcome for one file. Sess holds the file's sources and
// diagnostics; each file is checked in its own session.
type FileResult struct {
	Path       string
	Items      int
	Mismatches []Mismatch
	Sess       *expand.Session
	Err        error
	Timings    Timings
}

// Check round-trips every item of every file in parallel: parse, convert to
// tokens and re-parse, then re-parse the printed text. Results keep the
// order of req.Files. A failing file does not stop the others; the returned
// error is only set when ctx is cancelled.
func Check(ctx context.Context, req Request) ([]FileResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]FileResult, len(req.Files))
	if len(req.Files) == 0 {
		return results, nil
	}
	for _, path := range req.Files {
		emit(req.Progress, Event{File: path, Status: StatusQueued})
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(req.Files)))
	for i, path := range req.Files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = checkFile(path, req)
			status := StatusDone
			if results[i].Err != nil {
				status = StatusError
			}
			emit(req.Progress, Event{File: path, Status: status, Err: results[i].Err, Elapsed: results[i].Timings.Total()})
			return nil
		})
	}
	err := g.Wait()
	emit(req.Progress, Event{Status: StatusDone, Err: err})
	return results, err
}

func emit(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}

func checkFile(path string, req Request) FileResult {
	res := FileResult{Path: path}
	cx := expand.NewContext(req.Config, expand.NewSession(req.MaxDiagnostics))
	res.Sess = cx.Sess

	stage := func(s Stage, f func() error) error {
		emit(req.Progress, Event{File: path, Stage: s, Status: StatusWorking})
		start := time.Now()
		err := f()
		res.Timings.Set(s, time.Since(start))
		if err != nil {
			return fmt.Errorf("%s: %w", s, err)
		}
		return nil
	}

	var trees []token.Tree
	var items []*ast.Item
	res.Err = stage(StageLex, func() error {
		id, err := cx.Sess.FileSet.Load(path)
		if err != nil {
			return err
		}
		trees, err = cx.TreesOf(cx.Sess.FileSet.Get(id))
		return err
	})
	if res.Err != nil {
		return res
	}
	res.Err = stage(StageParse, func() error {
		var err error
		items, err = parser.New(cx, trees).ParseItems()
		return err
	})
	if res.Err != nil {
		return res
	}
	res.Items = len(items)

	res.Err = stage(StageQuote, func() error {
		for i, it := range items {
			got, err := quoteItem(cx, it)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			if want := it.String(); got != want {
				res.Mismatches = append(res.Mismatches, Mismatch{Item: i, Stage: StageQuote, Want: want, Got: got})
			}
		}
		return nil
	})
	if res.Err != nil {
		return res
	}
	res.Err = stage(StagePrint, func() error {
		for i, it := range items {
			want := it.String()
			p, err := parser.NewFromSource(cx, expand.QuoteExpansion, want)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			again, err := p.ParseItem()
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			got := ""
			if again != nil {
				got = again.String()
			}
			if got != want {
				res.Mismatches = append(res.Mismatches, Mismatch{Item: i, Stage: StagePrint, Want: want, Got: got})
			}
		}
		return nil
	})
	if res.Err == nil && len(res.Mismatches) > 0 {
		res.Err = fmt.Errorf("%w: %d of %d items", ErrMismatch, len(res.Mismatches), res.Items)
	}
	return res
}

// quoteItem converts it to tokens and parses the result back.
func quoteItem(cx *expand.Context, it *ast.Item) (string, error) {
	trees, err := it.ToTokens(cx)
	if err != nil {
		return "", err
	}
	back, err := parser.New(cx, trees).ParseItem()
	if err != nil {
		return "", err
	}
	if back == nil {
		return "", nil
	}
	return back.String(), nil
}
