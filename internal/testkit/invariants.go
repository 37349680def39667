package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"quasi/internal/ast"
	"quasi/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on parsed items:
// 1) every item span is non-empty and points into sf
// 2) every item span lies within the file content
// 3) items are in source order and do not overlap
func CheckSpanInvariants(items []*ast.Item, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	var prevEnd uint32
	for i, it := range items {
		if it == nil {
			return fmt.Errorf("nil item at index %d", i)
		}
		sp := it.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("empty item span: %v", sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("item %d span points to different file id: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End > lenContent {
			return fmt.Errorf("item %d span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("item %d span %v overlaps the previous item", i, sp)
		}
		prevEnd = sp.End
	}
	return nil
}
