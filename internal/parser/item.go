package parser

import (
	"quasi/internal/ast"
	"quasi/internal/diag"
	"quasi/internal/source"
	"quasi/internal/token"
)

// atItemStart reports whether an item begins at the current token (after
// attributes). Macro invocations count only where macros may be items.
func (p *Parser) atItemStart(macros bool) bool {
	switch p.peek().Kind {
	case token.KwPub, token.KwFn, token.KwStruct, token.KwEnum, token.KwImpl, token.KwTrait,
		token.KwUse, token.KwConst, token.KwStatic, token.KwType, token.KwMod:
		return true
	case token.KwExtern:
		return p.peekAt(1).Kind == token.KwCrate
	case token.KwUnsafe:
		switch p.peekAt(1).Kind {
		case token.KwFn, token.KwImpl, token.KwTrait:
			return true
		}
		return false
	case token.Interpolated:
		return p.atNt(token.NtItem)
	}
	return macros && p.atMacroItem()
}

func (p *Parser) atMacroItem() bool {
	return (p.at(token.Ident) || p.atNt(token.NtPath)) && p.peekAt(1).Kind == token.Bang
}

// parseItem returns nil when no item starts here and nothing was consumed.
func (p *Parser) parseItem() (*ast.Item, bool) {
	attrs, ok := p.parseOuterAttrs()
	if !ok {
		return nil, false
	}
	if len(attrs) == 0 && !p.atItemStart(true) {
		return nil, true
	}
	return p.parseItemWithAttrs(attrs, true)
}

func (p *Parser) parseItemWithAttrs(attrs []*ast.Attribute, macros bool) (*ast.Item, bool) {
	start := p.peek().Span
	if len(attrs) > 0 {
		start = attrs[0].Span
	}
	if p.atNt(token.NtItem) {
		it := p.advance().Nt.(*ast.Item)
		if len(attrs) == 0 {
			return it, true
		}
		// атрибуты снаружи интерполированного item: копия, исходный узел не трогаем
		cp := *it
		cp.Attrs = append(append([]*ast.Attribute(nil), attrs...), it.Attrs...)
		cp.Span = start.Cover(it.Span)
		return &cp, true
	}
	if !p.atItemStart(macros) {
		return nil, p.unexpected(diag.SynExpectItem, "item")
	}

	it := &ast.Item{Attrs: attrs}
	if p.eat(token.KwPub) {
		it.Vis = ast.VisPublic
	}
	var ok bool
	switch p.peek().Kind {
	case token.KwUnsafe:
		p.advance()
		it.Unsafe = true
		switch p.peek().Kind {
		case token.KwFn:
			ok = p.parseFnItem(it)
		case token.KwImpl:
			ok = p.parseImpl(it)
		case token.KwTrait:
			ok = p.parseTrait(it)
		default:
			return nil, p.unexpected(diag.SynExpectItem, "`fn`, `impl` or `trait`")
		}
	case token.KwFn:
		ok = p.parseFnItem(it)
	case token.KwStruct:
		ok = p.parseStruct(it)
	case token.KwEnum:
		ok = p.parseEnum(it)
	case token.KwImpl:
		ok = p.parseImpl(it)
	case token.KwTrait:
		ok = p.parseTrait(it)
	case token.KwUse:
		ok = p.parseUse(it)
	case token.KwConst, token.KwStatic:
		ok = p.parseConstOrStatic(it)
	case token.KwType:
		ok = p.parseTypeAlias(it)
	case token.KwMod:
		ok = p.parseMod(it)
	case token.KwExtern:
		ok = p.parseExternCrate(it)
	default:
		if !macros || !p.atMacroItem() {
			return nil, p.unexpected(diag.SynExpectItem, "item")
		}
		ok = p.parseMacItem(it)
	}
	if !ok {
		return nil, false
	}
	it.Span = p.spanFrom(start)
	return it, true
}

func (p *Parser) parseFnItem(it *ast.Item) bool {
	p.advance() // fn
	it.Kind = ast.ItemFn
	var ok bool
	if it.Ident, ok = p.parseIdent(); !ok {
		return false
	}
	if it.Generics, ok = p.parseGenerics(); !ok {
		return false
	}
	if it.Decl, ok = p.parseFnDecl(); !ok {
		return false
	}
	if !p.attachWhere(it.Generics) {
		return false
	}
	it.Body, ok = p.parseBlock()
	return ok
}

// parseFnDecl разбирает `(self, a: T) -> R`.
func (p *Parser) parseFnDecl() (*ast.FnDecl, bool) {
	if _, ok := p.expect(token.LParen); !ok {
		return nil, false
	}
	decl := &ast.FnDecl{}
	sp, ok := p.parseSelfParam()
	if !ok {
		return nil, false
	}
	decl.SelfParam = sp
	if sp != nil && !p.at(token.RParen) {
		if _, ok := p.expect(token.Comma); !ok {
			return nil, false
		}
	}
	for !p.at(token.RParen) {
		start := p.peek().Span
		pat, ok := p.parsePat()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Colon); !ok {
			return nil, false
		}
		ty, ok := p.parseTy()
		if !ok {
			return nil, false
		}
		decl.Inputs = append(decl.Inputs, &ast.Param{Pat: pat, Ty: ty, Span: p.spanFrom(start)})
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen); !ok {
		return nil, false
	}
	if p.eat(token.RArrow) {
		out, ok := p.parseTy()
		if !ok {
			return nil, false
		}
		decl.Output = out
	}
	return decl, true
}

// parseSelfParam returns nil when the first parameter is not a self parameter.
func (p *Parser) parseSelfParam() (*ast.SelfParam, bool) {
	start := p.peek().Span
	switch {
	case p.at(token.KwSelfValue):
		p.advance()
		return p.finishSelfValue(&ast.SelfParam{Kind: ast.SelfValue}, start)
	case p.at(token.KwMut) && p.peekAt(1).Kind == token.KwSelfValue:
		p.advance()
		p.advance()
		return p.finishSelfValue(&ast.SelfParam{Kind: ast.SelfValue, Mut: true}, start)
	case p.atAny(token.Amp, token.AndAnd) && p.selfAfterAmp():
		p.eatAmp()
		sp := &ast.SelfParam{Kind: ast.SelfRef}
		if p.at(token.Lifetime) {
			sp.Lifetime, _ = p.parseLifetime()
		}
		sp.Mut = p.eat(token.KwMut)
		if _, ok := p.expect(token.KwSelfValue); !ok {
			return nil, false
		}
		sp.Span = p.spanFrom(start)
		return sp, true
	}
	return nil, true
}

func (p *Parser) selfAfterAmp() bool {
	if p.at(token.AndAnd) {
		return false
	}
	i := 1
	if p.peekAt(i).Kind == token.Lifetime {
		i++
	}
	if p.peekAt(i).Kind == token.KwMut {
		i++
	}
	return p.peekAt(i).Kind == token.KwSelfValue
}

func (p *Parser) finishSelfValue(sp *ast.SelfParam, start source.Span) (*ast.SelfParam, bool) {
	if p.eat(token.Colon) {
		ty, ok := p.parseTy()
		if !ok {
			return nil, false
		}
		sp.Kind = ast.SelfExplicit
		sp.Ty = ty
	}
	sp.Span = p.spanFrom(start)
	return sp, true
}

func (p *Parser) parseConstOrStatic(it *ast.Item) bool {
	it.Kind = ast.ItemConst
	if p.advance().Kind == token.KwStatic {
		it.Kind = ast.ItemStatic
		it.Mut = p.eat(token.KwMut)
	}
	var ok bool
	if it.Ident, ok = p.parseIdent(); !ok {
		return false
	}
	if _, ok = p.expect(token.Colon); !ok {
		return false
	}
	if it.Ty, ok = p.parseTy(); !ok {
		return false
	}
	if _, ok = p.expect(token.Eq); !ok {
		return false
	}
	if it.Expr, ok = p.parseExprFresh(); !ok {
		return false
	}
	_, ok = p.expect(token.Semi)
	return ok
}

func (p *Parser) parseTypeAlias(it *ast.Item) bool {
	p.advance() // type
	it.Kind = ast.ItemTy
	var ok bool
	if it.Ident, ok = p.parseIdent(); !ok {
		return false
	}
	if it.Generics, ok = p.parseGenerics(); !ok {
		return false
	}
	if !p.attachWhere(it.Generics) {
		return false
	}
	if _, ok = p.expect(token.Eq); !ok {
		return false
	}
	if it.Ty, ok = p.parseTy(); !ok {
		return false
	}
	_, ok = p.expect(token.Semi)
	return ok
}

// parseMod разбирает только `mod name { ... }`; внешние файлы не загружаются.
func (p *Parser) parseMod(it *ast.Item) bool {
	p.advance() // mod
	it.Kind = ast.ItemMod
	var ok bool
	if it.Ident, ok = p.parseIdent(); !ok {
		return false
	}
	if p.at(token.Semi) {
		return p.fail(diag.SynExpectBlock, "out-of-line modules are not supported; expected `{`")
	}
	if _, ok = p.expect(token.LBrace); !ok {
		return false
	}
	items, ok := p.parseItemsUntil(token.RBrace)
	if !ok {
		return false
	}
	it.Items = items
	_, ok = p.expect(token.RBrace)
	return ok
}

// parseItemsUntil collects items up to end, dropping cfg-disabled ones.
func (p *Parser) parseItemsUntil(end token.Kind) ([]*ast.Item, bool) {
	var items []*ast.Item
	for !p.at(end) {
		item, ok := p.parseItem()
		if !ok {
			return nil, false
		}
		if item == nil {
			return nil, p.unexpected(diag.SynExpectItem, "item")
		}
		keep, ok := p.cfgKeep(item.Attrs)
		if !ok {
			return nil, false
		}
		if keep {
			items = append(items, item)
		}
	}
	return items, true
}

func (p *Parser) parseExternCrate(it *ast.Item) bool {
	p.advance() // extern
	if _, ok := p.expect(token.KwCrate); !ok {
		return false
	}
	it.Kind = ast.ItemExternCrate
	name, ok := p.parseIdent()
	if !ok {
		return false
	}
	it.Ident = name
	if p.eat(token.KwAs) {
		rename, ok := p.parseIdent()
		if !ok {
			return false
		}
		it.Orig = name
		it.Ident = rename
	}
	_, ok = p.expect(token.Semi)
	return ok
}

func (p *Parser) parseMacItem(it *ast.Item) bool {
	mac, ok := p.parseMacInvocation()
	if !ok {
		return false
	}
	it.Kind = ast.ItemMac
	it.Mac = mac
	return true
}

// parseMacInvocation разбирает `path!(...)` и `;` после не-фигурных скобок.
func (p *Parser) parseMacInvocation() (*ast.Mac, bool) {
	path, ok := p.parsePath(pathExpr)
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Bang); !ok {
		return nil, false
	}
	mac, ok := p.parseMacBody(path)
	if !ok {
		return nil, false
	}
	if mac.Delim != token.Brace {
		if _, ok := p.expect(token.Semi); !ok {
			return nil, false
		}
	}
	return mac, true
}
