package parser

import (
	"errors"

	"quasi/internal/ast"
	"quasi/internal/diag"
)

// cfgKeep evaluates the `#[cfg(...)]` attributes of a container member.
// A malformed predicate poisons the parser like any syntax error.
func (p *Parser) cfgKeep(attrs []*ast.Attribute) (bool, bool) {
	if len(attrs) == 0 || p.cx == nil {
		return true, true
	}
	keep, err := ast.CfgEnabled(attrs, p.cx.Config)
	if err != nil {
		var de *diag.Error
		if errors.As(err, &de) {
			return false, p.failAt(de.Code, de.Primary, de.Message)
		}
		return false, p.fail(diag.SynExpectMetaItem, err.Error())
	}
	return keep, true
}
