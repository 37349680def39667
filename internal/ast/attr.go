package ast

import (
	"quasi/internal/source"
	"quasi/internal/token"
)

type AttrStyle uint8

const (
	AttrOuter AttrStyle = iota // #[...]
	AttrInner                  // #![...]
)

type Attribute struct {
	Style AttrStyle
	Value *MetaItem
	Span  source.Span
}

func (a *Attribute) String() string {
	return printNode(func(pr *printer) { pr.attr(a) })
}

type MetaKind uint8

const (
	MetaWord      MetaKind = iota // name
	MetaList                      // name(items...)
	MetaNameValue                 // name = lit
)

type MetaItem struct {
	Kind MetaKind
	Name string
	List []*MetaItem
	Lit  *Lit
	Span source.Span
}

func (m *MetaItem) NtKind() token.NtKind { return token.NtMeta }

func (m *MetaItem) String() string {
	return printNode(func(pr *printer) { pr.meta(m) })
}

// FindAttrs returns the attributes named name, in order.
func FindAttrs(attrs []*Attribute, name string) []*Attribute {
	var out []*Attribute
	for _, a := range attrs {
		if a.Value != nil && a.Value.Name == name {
			out = append(out, a)
		}
	}
	return out
}
