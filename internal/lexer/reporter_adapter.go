package lexer

import "quasi/internal/diag"

// ReporterAdapter адаптирует diag.Bag под Options.Reporter
type ReporterAdapter struct {
	Bag *diag.Bag
}

// Reporter returns a reporter that drops exact duplicates before they reach the bag.
func (r *ReporterAdapter) Reporter() diag.Reporter {
	return diag.NewDedupReporter(diag.BagReporter{Bag: r.Bag})
}
