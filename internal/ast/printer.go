package ast

import (
	"strconv"

	"quasi/internal/token"
)

type printer struct {
	w writer
}

func printNode(f func(pr *printer)) string {
	var pr printer
	f(&pr)
	return pr.w.String()
}

func (p *printer) word(s string) {
	p.w.WriteString(s)
}

// commaSep prints n elements separated by ", ".
func (p *printer) commaSep(n int, elem func(i int)) {
	for i := range n {
		if i > 0 {
			p.word(", ")
		}
		elem(i)
	}
}

// ===== пути и типы =====

// path prints p; exprStyle writes generic args as turbofish `::<...>`.
func (p *printer) path(path *Path, exprStyle bool) {
	if path == nil {
		return
	}
	if path.Global {
		p.word("::")
	}
	for i, seg := range path.Segments {
		if i > 0 {
			p.word("::")
		}
		p.word(seg.Ident.String())
		if !seg.Args.Empty() {
			if exprStyle {
				p.word("::")
			}
			p.genericArgs(seg.Args)
		}
	}
}

func (p *printer) genericArgs(a *GenericArgs) {
	p.word("<")
	n := 0
	sep := func() {
		if n > 0 {
			p.word(", ")
		}
		n++
	}
	for _, lt := range a.Lifetimes {
		sep()
		p.word(lt.Name)
	}
	for _, t := range a.Types {
		sep()
		p.ty(t)
	}
	for _, b := range a.Bindings {
		sep()
		p.word(b.Ident.String())
		p.word(" = ")
		p.ty(b.Ty)
	}
	p.word(">")
}

func (p *printer) ty(t *Ty) {
	switch t.Kind {
	case TyPath:
		p.path(t.Path, false)
	case TyRef:
		p.word("&")
		if t.Lifetime != nil {
			p.word(t.Lifetime.Name)
			p.word(" ")
		}
		if t.Mut {
			p.word("mut ")
		}
		p.ty(t.Elem)
	case TySlice:
		p.word("[")
		p.ty(t.Elem)
		p.word("]")
	case TyArray:
		p.word("[")
		p.ty(t.Elem)
		p.word("; ")
		p.expr(t.Len)
		p.word("]")
	case TyTuple:
		p.word("(")
		p.commaSep(len(t.Elems), func(i int) { p.ty(t.Elems[i]) })
		if len(t.Elems) == 1 {
			p.word(",")
		}
		p.word(")")
	case TyNever:
		p.word("!")
	case TyInfer:
		p.word("_")
	case TyParen:
		p.word("(")
		p.ty(t.Elem)
		p.word(")")
	}
}

// ===== generics =====

func (p *printer) generics(g *Generics) {
	if g.Empty() {
		return
	}
	p.word("<")
	n := 0
	for _, ld := range g.Lifetimes {
		if n > 0 {
			p.word(", ")
		}
		n++
		p.word(ld.Lifetime.Name)
		if len(ld.Bounds) > 0 {
			p.word(": ")
			p.lifetimes(ld.Bounds)
		}
	}
	for _, tp := range g.TyParams {
		if n > 0 {
			p.word(", ")
		}
		n++
		p.word(tp.Ident.String())
		if len(tp.Bounds) > 0 {
			p.word(": ")
			p.bounds(tp.Bounds)
		}
		if tp.Default != nil {
			p.word(" = ")
			p.ty(tp.Default)
		}
	}
	p.word(">")
}

func (p *printer) lifetimes(lts []*Lifetime) {
	for i, lt := range lts {
		if i > 0 {
			p.word(" + ")
		}
		p.word(lt.Name)
	}
}

func (p *printer) bounds(bs []*TyParamBound) {
	for i, b := range bs {
		if i > 0 {
			p.word(" + ")
		}
		if b.Kind == BoundLifetime {
			p.word(b.Lifetime.Name)
			continue
		}
		if b.Maybe {
			p.word("?")
		}
		p.path(b.Path, false)
	}
}

func (p *printer) whereClause(w *WhereClause) {
	if w.Empty() {
		return
	}
	p.word("where ")
	p.commaSep(len(w.Predicates), func(i int) {
		pred := w.Predicates[i]
		if pred.Kind == WhereLifetime {
			p.word(pred.Lifetime.Name)
			p.word(": ")
			p.lifetimes(pred.LifetimeBounds)
			return
		}
		p.ty(pred.BoundedTy)
		p.word(": ")
		p.bounds(pred.Bounds)
	})
}

// spacedWhere prints " where ..." when the clause is not empty.
func (p *printer) spacedWhere(g *Generics) {
	if g != nil && !g.Where.Empty() {
		p.word(" ")
		p.whereClause(g.Where)
	}
}

// ===== атрибуты =====

func (p *printer) attr(a *Attribute) {
	p.word("#")
	if a.Style == AttrInner {
		p.word("!")
	}
	p.word("[")
	p.meta(a.Value)
	p.word("]")
}

func (p *printer) outerAttrs(attrs []*Attribute) {
	for _, a := range attrs {
		p.attr(a)
		p.w.Newline()
	}
}

// inlineAttrs prints attributes on the same line, used for fields and params.
func (p *printer) inlineAttrs(attrs []*Attribute) {
	for _, a := range attrs {
		p.attr(a)
		p.word(" ")
	}
}

func (p *printer) meta(m *MetaItem) {
	p.word(m.Name)
	switch m.Kind {
	case MetaList:
		p.word("(")
		p.commaSep(len(m.List), func(i int) { p.meta(m.List[i]) })
		p.word(")")
	case MetaNameValue:
		p.word(" = ")
		p.word(m.Lit.String())
	}
}

// ===== паттерны =====

func (p *printer) pat(pt *Pat) {
	switch pt.Kind {
	case PatWild:
		p.word("_")
	case PatIdent:
		if pt.Binding == ByRef {
			p.word("ref ")
		}
		if pt.Mut {
			p.word("mut ")
		}
		p.word(pt.Ident.String())
		if pt.Sub != nil {
			p.word(" @ ")
			p.pat(pt.Sub)
		}
	case PatLit:
		p.expr(pt.Expr)
	case PatRange:
		p.expr(pt.Expr)
		p.word("...")
		p.expr(pt.Hi)
	case PatTuple:
		p.word("(")
		p.commaSep(len(pt.Pats), func(i int) { p.pat(pt.Pats[i]) })
		if len(pt.Pats) == 1 {
			p.word(",")
		}
		p.word(")")
	case PatTupleStruct:
		p.path(pt.Path, true)
		p.word("(")
		p.commaSep(len(pt.Pats), func(i int) { p.pat(pt.Pats[i]) })
		p.word(")")
	case PatStruct:
		p.path(pt.Path, true)
		p.word(" {")
		if len(pt.Fields) == 0 && !pt.Etc {
			p.word("}")
			return
		}
		p.word(" ")
		p.commaSep(len(pt.Fields), func(i int) {
			f := pt.Fields[i]
			if f.Shorthand {
				p.pat(f.Pat)
				return
			}
			p.word(f.Ident.String())
			p.word(": ")
			p.pat(f.Pat)
		})
		if pt.Etc {
			if len(pt.Fields) > 0 {
				p.word(", ")
			}
			p.word("..")
		}
		p.word(" }")
	case PatPath:
		p.path(pt.Path, true)
	case PatRef:
		p.word("&")
		if pt.Mut {
			p.word("mut ")
		}
		p.pat(pt.Sub)
	}
}

// ===== token trees (macro bodies) =====

// tts prints token trees so that they re-lex to the same tokens: spaces are
// dropped only where no two tokens can glue together.
func (p *printer) tts(trees []token.Tree) {
	var prev *token.Token
	for i := range trees {
		t := trees[i]
		if t.Kind == token.TreeDelimited {
			if prev != nil && needSpaceBefore(prev, t.Group.Delim.Open()) {
				p.word(" ")
			}
			p.word(t.Group.Delim.Open().String())
			p.tts(t.Group.Trees)
			p.word(t.Group.Delim.Close().String())
			closeTok := t.Group.CloseToken()
			prev = &closeTok
			continue
		}
		tok := t.Token
		if prev != nil && needSpaceBefore(prev, tok.Kind) {
			p.word(" ")
		}
		p.word(tokenText(tok))
		prev = &trees[i].Token
	}
}

func tokenText(tok token.Token) string {
	if tok.Kind == token.Interpolated && tok.Nt != nil {
		// a printed expression might otherwise bind with its neighbours
		if tok.Nt.NtKind() == token.NtExpr {
			return "(" + tok.Nt.String() + ")"
		}
	}
	return tok.String()
}

func needSpaceBefore(prev *token.Token, next token.Kind) bool {
	switch prev.Kind {
	case token.LParen, token.LBracket, token.LBrace, token.Dollar, token.Pound:
		return false
	}
	switch next {
	case token.RParen, token.RBracket, token.RBrace, token.Comma, token.Semi:
		return false
	case token.LParen, token.LBracket:
		return !(prev.Kind == token.Ident || prev.Kind == token.Bang || prev.Kind.IsKeyword())
	}
	return true
}

func quoteIndex(i uint32) string {
	return strconv.FormatUint(uint64(i), 10)
}
