package testkit

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pmezard/go-difflib/difflib"

	"quasi/internal/source"
	"quasi/internal/token"
)

// NodeOptions compare syntax trees structurally: spans and trivia are
// ignored, everything else must match.
var NodeOptions = cmp.Options{
	cmpopts.IgnoreTypes(source.Span{}),
	cmpopts.IgnoreFields(token.Token{}, "Leading"),
	cmpopts.EquateEmpty(),
}

// NodeDiff returns "" when want and got are structurally equal, otherwise a
// (-want +got) report.
func NodeDiff(want, got any) string {
	return cmp.Diff(want, got, NodeOptions)
}

// TextDiff returns a unified diff of two printed texts, "" when equal.
func TextDiff(want, got string) string {
	if want == got {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}
