package diag

import (
	"errors"
	"fmt"
	"testing"

	"quasi/internal/source"
)

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		LexUnknownChar:     "LEX1001",
		SynUnexpectedToken: "SYN2001",
		QuoteRelexFailed:   "QQ4001",
		IOLoadFileError:    "IO5000",
		UnknownCode:        "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
	if SynMismatchedDelimiter.Title() != "Mismatched closing delimiter" {
		t.Errorf("unexpected title %q", SynMismatchedDelimiter.Title())
	}
}

func TestBagLimitAndFirstError(t *testing.T) {
	bag := NewBag(2)
	bag.Add(New(SevWarning, LexBadSuffix, source.NoSpan, "w"))
	bag.Add(NewError(SynUnexpectedToken, source.NoSpan, "e1"))
	if bag.Add(NewError(SynExpectType, source.NoSpan, "e2")) {
		t.Fatalf("bag accepted a diagnostic over its limit")
	}
	first, ok := bag.FirstError()
	if !ok || first.Message != "e1" {
		t.Fatalf("FirstError = %+v, %v", first, ok)
	}
	if !bag.HasWarnings() || !bag.HasErrors() {
		t.Fatalf("HasWarnings/HasErrors = false")
	}
}

func TestBagSort(t *testing.T) {
	bag := NewBag(0)
	bag.Add(NewError(SynExpectType, source.Span{File: 1, Start: 5, End: 6}, "b"))
	bag.Add(NewError(SynExpectType, source.Span{File: 0, Start: 9, End: 9}, "a"))
	bag.Add(New(SevWarning, LexBadSuffix, source.Span{File: 1, Start: 5, End: 6}, "c"))
	bag.Sort()
	got := ""
	for _, d := range bag.Items() {
		got += d.Message
	}
	if got != "abc" {
		t.Fatalf("sorted order = %q, want abc", got)
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(0)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{Start: 1, End: 2}
	r.Report(LexUnknownChar, SevError, sp, "unknown character", nil)
	r.Report(LexUnknownChar, SevError, sp, "unknown character", nil)
	r.Report(LexUnknownChar, SevError, sp.ShiftRight(1), "unknown character", nil)
	if bag.Len() != 2 {
		t.Fatalf("bag.Len() = %d, want 2", bag.Len())
	}
}

func TestErrorUnwrapsDiagnostic(t *testing.T) {
	var err error = fmt.Errorf("relex: %w", AsError(NewError(QuoteRelexFailed, source.NoSpan, "boom")))
	var de *Error
	if !errors.As(err, &de) {
		t.Fatalf("errors.As failed for %v", err)
	}
	if de.Code != QuoteRelexFailed || de.Message != "boom" {
		t.Fatalf("unexpected diagnostic %+v", de.Diagnostic)
	}
}

func TestFormatShort(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<quote expansion>", []byte("fn(\n"))
	d := NewError(SynExpectIdentifier, source.Span{File: id, Start: 2, End: 3}, "expected identifier, found `(`").
		WithNote(source.Span{File: id, Start: 0, End: 2}, "item starts here")
	got := FormatShort([]Diagnostic{d}, fs, true)
	want := "ERROR SYN2005 <quote expansion>:1:3 expected identifier, found `(`\n" +
		"note SYN2005 <quote expansion>:1:1 item starts here"
	if got != want {
		t.Fatalf("FormatShort =\n%s\nwant\n%s", got, want)
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(0)
	b := ReportError(BagReporter{Bag: bag}, SynExpectType, source.NoSpan, "expected type").
		WithNote(source.NoSpan, "here")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 || len(bag.Items()[0].Notes) != 1 {
		t.Fatalf("bag = %+v", bag.Items())
	}
}
