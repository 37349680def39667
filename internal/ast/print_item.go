package ast

import "quasi/internal/token"

func (p *printer) item(it *Item) {
	p.outerAttrs(it.Attrs)
	p.word(it.Vis.prefix())
	switch it.Kind {
	case ItemFn:
		if it.Unsafe {
			p.word("unsafe ")
		}
		p.word("fn ")
		p.word(it.Ident.String())
		p.generics(it.Generics)
		p.fnDecl(it.Decl)
		p.spacedWhere(it.Generics)
		p.word(" ")
		p.block(it.Body)
	case ItemStruct:
		p.word("struct ")
		p.word(it.Ident.String())
		p.generics(it.Generics)
		switch it.Data.Kind {
		case DataStruct:
			p.spacedWhere(it.Generics)
			p.word(" ")
			p.structFields(it.Data.Fields)
		case DataTuple:
			p.tupleFields(it.Data.Fields)
			p.spacedWhere(it.Generics)
			p.word(";")
		default:
			p.spacedWhere(it.Generics)
			p.word(";")
		}
	case ItemEnum:
		p.word("enum ")
		p.word(it.Ident.String())
		p.generics(it.Generics)
		p.spacedWhere(it.Generics)
		p.word(" {")
		if len(it.Variants) == 0 {
			p.word("}")
			return
		}
		p.w.Newline()
		p.w.IndentPush()
		for _, v := range it.Variants {
			p.variant(v)
			p.word(",")
			p.w.Newline()
		}
		p.w.IndentPop()
		p.word("}")
	case ItemImpl:
		if it.Unsafe {
			p.word("unsafe ")
		}
		p.word("impl")
		p.generics(it.Generics)
		p.word(" ")
		if it.Trait != nil {
			p.path(it.Trait, false)
			p.word(" for ")
		}
		p.ty(it.SelfTy)
		p.spacedWhere(it.Generics)
		p.word(" {")
		p.body(len(it.ImplItems), func(i int) { p.implItem(it.ImplItems[i]) })
	case ItemTrait:
		if it.Unsafe {
			p.word("unsafe ")
		}
		p.word("trait ")
		p.word(it.Ident.String())
		p.generics(it.Generics)
		if len(it.Supertraits) > 0 {
			p.word(": ")
			p.bounds(it.Supertraits)
		}
		p.spacedWhere(it.Generics)
		p.word(" {")
		p.body(len(it.TraitItems), func(i int) { p.traitItem(it.TraitItems[i]) })
	case ItemUse:
		p.word("use ")
		p.useTree(it.Use)
		p.word(";")
	case ItemConst:
		p.word("const ")
		p.word(it.Ident.String())
		p.word(": ")
		p.ty(it.Ty)
		p.word(" = ")
		p.expr(it.Expr)
		p.word(";")
	case ItemStatic:
		p.word("static ")
		if it.Mut {
			p.word("mut ")
		}
		p.word(it.Ident.String())
		p.word(": ")
		p.ty(it.Ty)
		p.word(" = ")
		p.expr(it.Expr)
		p.word(";")
	case ItemTy:
		p.word("type ")
		p.word(it.Ident.String())
		p.generics(it.Generics)
		p.spacedWhere(it.Generics)
		p.word(" = ")
		p.ty(it.Ty)
		p.word(";")
	case ItemMod:
		p.word("mod ")
		p.word(it.Ident.String())
		p.word(" {")
		p.body(len(it.Items), func(i int) { p.item(it.Items[i]) })
	case ItemExternCrate:
		p.word("extern crate ")
		if it.Orig != nil {
			p.word(it.Orig.String())
			p.word(" as ")
		}
		p.word(it.Ident.String())
		p.word(";")
	case ItemMac:
		p.mac(it.Mac)
		if it.Mac.Delim != token.Brace {
			p.word(";")
		}
	}
}

// body prints n members inside an already opened `{`.
func (p *printer) body(n int, member func(i int)) {
	if n == 0 {
		p.word("}")
		return
	}
	p.w.Newline()
	p.w.IndentPush()
	for i := range n {
		if i > 0 {
			p.w.Newline()
		}
		member(i)
		p.w.Newline()
	}
	p.w.IndentPop()
	p.word("}")
}

func (p *printer) fnDecl(d *FnDecl) {
	p.word("(")
	n := 0
	if sp := d.SelfParam; sp != nil {
		n++
		switch sp.Kind {
		case SelfRef:
			p.word("&")
			if sp.Lifetime != nil {
				p.word(sp.Lifetime.Name + " ")
			}
			if sp.Mut {
				p.word("mut ")
			}
			p.word("self")
		case SelfExplicit:
			if sp.Mut {
				p.word("mut ")
			}
			p.word("self: ")
			p.ty(sp.Ty)
		default:
			if sp.Mut {
				p.word("mut ")
			}
			p.word("self")
		}
	}
	for _, param := range d.Inputs {
		if n > 0 {
			p.word(", ")
		}
		n++
		p.pat(param.Pat)
		p.word(": ")
		p.ty(param.Ty)
	}
	p.word(")")
	if d.Output != nil {
		p.word(" -> ")
		p.ty(d.Output)
	}
}

func (p *printer) structFields(fields []*StructField) {
	p.word("{")
	if len(fields) == 0 {
		p.word("}")
		return
	}
	p.w.Newline()
	p.w.IndentPush()
	for _, f := range fields {
		p.outerAttrs(f.Attrs)
		p.word(f.Vis.prefix())
		p.word(f.Ident.String())
		p.word(": ")
		p.ty(f.Ty)
		p.word(",")
		p.w.Newline()
	}
	p.w.IndentPop()
	p.word("}")
}

func (p *printer) tupleFields(fields []*StructField) {
	p.word("(")
	p.commaSep(len(fields), func(i int) {
		f := fields[i]
		p.inlineAttrs(f.Attrs)
		p.word(f.Vis.prefix())
		p.ty(f.Ty)
	})
	p.word(")")
}

func (p *printer) variant(v *Variant) {
	p.outerAttrs(v.Attrs)
	p.word(v.Ident.String())
	switch v.Data.Kind {
	case DataStruct:
		p.word(" ")
		p.structFields(v.Data.Fields)
	case DataTuple:
		p.tupleFields(v.Data.Fields)
	}
	if v.Disr != nil {
		p.word(" = ")
		p.expr(v.Disr)
	}
}

func (p *printer) useTree(u *UseTree) {
	hasPrefix := u.Prefix != nil && len(u.Prefix.Segments) > 0
	p.path(u.Prefix, false)
	switch u.Kind {
	case UseSimple:
		if u.Rename != nil {
			p.word(" as ")
			p.word(u.Rename.String())
		}
	case UseGlob:
		if hasPrefix {
			p.word("::")
		}
		p.word("*")
	case UseList:
		if hasPrefix {
			p.word("::")
		}
		p.word("{")
		p.commaSep(len(u.List), func(i int) { p.useTree(u.List[i]) })
		p.word("}")
	}
}

func (p *printer) methodSig(ident *Ident, sig *MethodSig) {
	if sig.Unsafe {
		p.word("unsafe ")
	}
	p.word("fn ")
	p.word(ident.String())
	p.generics(sig.Generics)
	p.fnDecl(sig.Decl)
	p.spacedWhere(sig.Generics)
}

func (p *printer) implItem(it *ImplItem) {
	p.outerAttrs(it.Attrs)
	p.word(it.Vis.prefix())
	switch it.Kind {
	case ImplItemConst:
		p.word("const ")
		p.word(it.Ident.String())
		p.word(": ")
		p.ty(it.Ty)
		p.word(" = ")
		p.expr(it.Expr)
		p.word(";")
	case ImplItemMethod:
		p.methodSig(it.Ident, it.Sig)
		p.word(" ")
		p.block(it.Body)
	case ImplItemType:
		p.word("type ")
		p.word(it.Ident.String())
		p.word(" = ")
		p.ty(it.Ty)
		p.word(";")
	case ImplItemMac:
		p.mac(it.Mac)
		if it.Mac.Delim != token.Brace {
			p.word(";")
		}
	}
}

func (p *printer) traitItem(it *TraitItem) {
	p.outerAttrs(it.Attrs)
	switch it.Kind {
	case TraitItemConst:
		p.word("const ")
		p.word(it.Ident.String())
		p.word(": ")
		p.ty(it.Ty)
		if it.Expr != nil {
			p.word(" = ")
			p.expr(it.Expr)
		}
		p.word(";")
	case TraitItemMethod:
		p.methodSig(it.Ident, it.Sig)
		if it.Body == nil {
			p.word(";")
			return
		}
		p.word(" ")
		p.block(it.Body)
	case TraitItemType:
		p.word("type ")
		p.word(it.Ident.String())
		if len(it.Bounds) > 0 {
			p.word(": ")
			p.bounds(it.Bounds)
		}
		if it.Ty != nil {
			p.word(" = ")
			p.ty(it.Ty)
		}
		p.word(";")
	}
}
