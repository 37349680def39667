package parser

import (
	"quasi/internal/ast"
	"quasi/internal/diag"
	"quasi/internal/token"
)

// parseImpl разбирает `impl<T> Trait for Ty where ... { items }` и `impl Ty { }`.
func (p *Parser) parseImpl(it *ast.Item) bool {
	p.advance() // impl
	it.Kind = ast.ItemImpl
	var ok bool
	if it.Generics, ok = p.parseGenerics(); !ok {
		return false
	}
	first, ok := p.parseTy()
	if !ok {
		return false
	}
	if p.eat(token.KwFor) {
		if first.Kind != ast.TyPath {
			return p.failAt(diag.SynExpectType, first.Span, "expected a trait path before `for`")
		}
		it.Trait = first.Path
		if it.SelfTy, ok = p.parseTy(); !ok {
			return false
		}
	} else {
		it.SelfTy = first
	}
	if !p.attachWhere(it.Generics) {
		return false
	}
	if _, ok = p.expect(token.LBrace); !ok {
		return false
	}
	for !p.at(token.RBrace) {
		member, ok := p.parseImplItem()
		if !ok {
			return false
		}
		keep, ok := p.cfgKeep(member.Attrs)
		if !ok {
			return false
		}
		if keep {
			it.ImplItems = append(it.ImplItems, member)
		}
	}
	p.advance() // }
	return true
}

func (p *Parser) parseImplItem() (*ast.ImplItem, bool) {
	if p.atNt(token.NtImplItem) {
		return p.advance().Nt.(*ast.ImplItem), true
	}
	start := p.peek().Span
	attrs, ok := p.parseOuterAttrs()
	if !ok {
		return nil, false
	}
	it := &ast.ImplItem{Attrs: attrs}
	if p.eat(token.KwPub) {
		it.Vis = ast.VisPublic
	}
	switch {
	case p.at(token.KwConst) && p.peekAt(1).Kind != token.KwFn:
		p.advance()
		it.Kind = ast.ImplItemConst
		if it.Ident, ok = p.parseIdent(); !ok {
			return nil, false
		}
		if _, ok = p.expect(token.Colon); !ok {
			return nil, false
		}
		if it.Ty, ok = p.parseTy(); !ok {
			return nil, false
		}
		if _, ok = p.expect(token.Eq); !ok {
			return nil, false
		}
		if it.Expr, ok = p.parseExprFresh(); !ok {
			return nil, false
		}
		if _, ok = p.expect(token.Semi); !ok {
			return nil, false
		}
	case p.at(token.KwType):
		p.advance()
		it.Kind = ast.ImplItemType
		if it.Ident, ok = p.parseIdent(); !ok {
			return nil, false
		}
		if _, ok = p.expect(token.Eq); !ok {
			return nil, false
		}
		if it.Ty, ok = p.parseTy(); !ok {
			return nil, false
		}
		if _, ok = p.expect(token.Semi); !ok {
			return nil, false
		}
	case p.atAny(token.KwFn, token.KwUnsafe):
		it.Kind = ast.ImplItemMethod
		if it.Ident, it.Sig, ok = p.parseMethodSig(); !ok {
			return nil, false
		}
		if it.Body, ok = p.parseBlock(); !ok {
			return nil, false
		}
	case p.atMacroItem():
		if it.Vis == ast.VisPublic {
			return nil, p.fail(diag.SynUnexpectedToken, "macro invocations in impls cannot be `pub`")
		}
		it.Kind = ast.ImplItemMac
		if it.Mac, ok = p.parseMacInvocation(); !ok {
			return nil, false
		}
	default:
		return nil, p.unexpected(diag.SynExpectItem, "`const`, `type`, `fn` or macro invocation")
	}
	it.Span = p.spanFrom(start)
	return it, true
}

// parseMethodSig разбирает `unsafe fn name<T>(&self, ...) -> R where ...`.
func (p *Parser) parseMethodSig() (*ast.Ident, *ast.MethodSig, bool) {
	sig := &ast.MethodSig{Unsafe: p.eat(token.KwUnsafe)}
	if _, ok := p.expect(token.KwFn); !ok {
		return nil, nil, false
	}
	ident, ok := p.parseIdent()
	if !ok {
		return nil, nil, false
	}
	if sig.Generics, ok = p.parseGenerics(); !ok {
		return nil, nil, false
	}
	if sig.Decl, ok = p.parseFnDecl(); !ok {
		return nil, nil, false
	}
	if !p.attachWhere(sig.Generics) {
		return nil, nil, false
	}
	return ident, sig, true
}

func (p *Parser) parseTrait(it *ast.Item) bool {
	p.advance() // trait
	it.Kind = ast.ItemTrait
	var ok bool
	if it.Ident, ok = p.parseIdent(); !ok {
		return false
	}
	if it.Generics, ok = p.parseGenerics(); !ok {
		return false
	}
	if p.eat(token.Colon) {
		if it.Supertraits, ok = p.parseBounds(); !ok {
			return false
		}
	}
	if !p.attachWhere(it.Generics) {
		return false
	}
	if _, ok = p.expect(token.LBrace); !ok {
		return false
	}
	for !p.at(token.RBrace) {
		member, ok := p.parseTraitItem()
		if !ok {
			return false
		}
		keep, ok := p.cfgKeep(member.Attrs)
		if !ok {
			return false
		}
		if keep {
			it.TraitItems = append(it.TraitItems, member)
		}
	}
	p.advance() // }
	return true
}

func (p *Parser) parseTraitItem() (*ast.TraitItem, bool) {
	if p.atNt(token.NtTraitItem) {
		return p.advance().Nt.(*ast.TraitItem), true
	}
	start := p.peek().Span
	attrs, ok := p.parseOuterAttrs()
	if !ok {
		return nil, false
	}
	it := &ast.TraitItem{Attrs: attrs}
	switch {
	case p.at(token.KwConst) && p.peekAt(1).Kind != token.KwFn:
		p.advance()
		it.Kind = ast.TraitItemConst
		if it.Ident, ok = p.parseIdent(); !ok {
			return nil, false
		}
		if _, ok = p.expect(token.Colon); !ok {
			return nil, false
		}
		if it.Ty, ok = p.parseTy(); !ok {
			return nil, false
		}
		if p.eat(token.Eq) {
			if it.Expr, ok = p.parseExprFresh(); !ok {
				return nil, false
			}
		}
		if _, ok = p.expect(token.Semi); !ok {
			return nil, false
		}
	case p.at(token.KwType):
		p.advance()
		it.Kind = ast.TraitItemType
		if it.Ident, ok = p.parseIdent(); !ok {
			return nil, false
		}
		if p.eat(token.Colon) {
			if it.Bounds, ok = p.parseBounds(); !ok {
				return nil, false
			}
		}
		if p.eat(token.Eq) {
			if it.Ty, ok = p.parseTy(); !ok {
				return nil, false
			}
		}
		if _, ok = p.expect(token.Semi); !ok {
			return nil, false
		}
	case p.atAny(token.KwFn, token.KwUnsafe):
		it.Kind = ast.TraitItemMethod
		if it.Ident, it.Sig, ok = p.parseMethodSig(); !ok {
			return nil, false
		}
		if !p.eat(token.Semi) {
			if it.Body, ok = p.parseBlock(); !ok {
				return nil, false
			}
		}
	default:
		return nil, p.unexpected(diag.SynExpectItem, "`const`, `type` or `fn`")
	}
	it.Span = p.spanFrom(start)
	return it, true
}
