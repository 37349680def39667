package ast

import (
	"quasi/internal/diag"
	"quasi/internal/expand"
)

// CfgEnabled evaluates every `#[cfg(pred)]` in attrs against cfg; all must
// hold. Malformed predicates are reported as *diag.Error.
func CfgEnabled(attrs []*Attribute, cfg *expand.Config) (bool, error) {
	for _, a := range FindAttrs(attrs, "cfg") {
		m := a.Value
		if m.Kind != MetaList || len(m.List) != 1 {
			return false, diag.AsError(diag.NewError(diag.SynExpectMetaItem, m.Span, "`cfg` takes exactly one predicate"))
		}
		ok, err := EvalCfg(m.List[0], cfg)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// EvalCfg evaluates one predicate: `name`, `name = "v"`, `all(..)`,
// `any(..)`, `not(p)`.
func EvalCfg(m *MetaItem, cfg *expand.Config) (bool, error) {
	switch m.Kind {
	case MetaWord:
		return cfg.Enabled(m.Name), nil
	case MetaNameValue:
		if m.Lit == nil || m.Lit.Kind != LitStr {
			return false, diag.AsError(diag.NewError(diag.SynBadLiteral, m.Span, "cfg value must be a string literal"))
		}
		return cfg.EnabledValue(m.Name, m.Lit.Str), nil
	}
	switch m.Name {
	case "all":
		for _, sub := range m.List {
			ok, err := EvalCfg(sub, cfg)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	case "any":
		for _, sub := range m.List {
			ok, err := EvalCfg(sub, cfg)
			if err != nil || ok {
				return ok, err
			}
		}
		return false, nil
	case "not":
		if len(m.List) != 1 {
			return false, diag.AsError(diag.NewError(diag.SynExpectMetaItem, m.Span, "`not` takes exactly one predicate"))
		}
		ok, err := EvalCfg(m.List[0], cfg)
		return !ok && err == nil, err
	}
	return false, diag.AsError(diag.NewError(diag.SynExpectMetaItem, m.Span, "invalid cfg predicate `"+m.Name+"`"))
}
