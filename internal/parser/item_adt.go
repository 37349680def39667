package parser

import (
	"quasi/internal/ast"
	"quasi/internal/diag"
	"quasi/internal/token"
)

func (p *Parser) parseStruct(it *ast.Item) bool {
	p.advance() // struct
	it.Kind = ast.ItemStruct
	var ok bool
	if it.Ident, ok = p.parseIdent(); !ok {
		return false
	}
	if it.Generics, ok = p.parseGenerics(); !ok {
		return false
	}
	switch {
	case p.at(token.LParen):
		fields, ok := p.parseTupleFields()
		if !ok {
			return false
		}
		it.Data = &ast.VariantData{Kind: ast.DataTuple, Fields: fields}
		if !p.attachWhere(it.Generics) {
			return false
		}
		_, ok = p.expect(token.Semi)
		return ok
	default:
		if !p.attachWhere(it.Generics) {
			return false
		}
		if p.eat(token.Semi) {
			it.Data = &ast.VariantData{Kind: ast.DataUnit}
			return true
		}
		fields, ok := p.parseStructFields()
		if !ok {
			return false
		}
		it.Data = &ast.VariantData{Kind: ast.DataStruct, Fields: fields}
		return true
	}
}

// parseStructFields разбирает `{ pub a: T, b: U }` с cfg-фильтрацией.
func (p *Parser) parseStructFields() ([]*ast.StructField, bool) {
	if _, ok := p.expect(token.LBrace); !ok {
		return nil, false
	}
	var fields []*ast.StructField
	for !p.at(token.RBrace) {
		start := p.peek().Span
		attrs, ok := p.parseOuterAttrs()
		if !ok {
			return nil, false
		}
		f := &ast.StructField{Attrs: attrs}
		if p.eat(token.KwPub) {
			f.Vis = ast.VisPublic
		}
		if f.Ident, ok = p.parseIdent(); !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Colon); !ok {
			return nil, false
		}
		if f.Ty, ok = p.parseTy(); !ok {
			return nil, false
		}
		f.Span = p.spanFrom(start)
		keep, ok := p.cfgKeep(attrs)
		if !ok {
			return nil, false
		}
		if keep {
			fields = append(fields, f)
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RBrace); !ok {
		return nil, false
	}
	return fields, true
}

// parseTupleFields разбирает `(pub T, U)`.
func (p *Parser) parseTupleFields() ([]*ast.StructField, bool) {
	if _, ok := p.expect(token.LParen); !ok {
		return nil, false
	}
	var fields []*ast.StructField
	for !p.at(token.RParen) {
		start := p.peek().Span
		attrs, ok := p.parseOuterAttrs()
		if !ok {
			return nil, false
		}
		f := &ast.StructField{Attrs: attrs}
		if p.eat(token.KwPub) {
			f.Vis = ast.VisPublic
		}
		if f.Ty, ok = p.parseTy(); !ok {
			return nil, false
		}
		f.Span = p.spanFrom(start)
		keep, ok := p.cfgKeep(attrs)
		if !ok {
			return nil, false
		}
		if keep {
			fields = append(fields, f)
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen); !ok {
		return nil, false
	}
	return fields, true
}

func (p *Parser) parseEnum(it *ast.Item) bool {
	p.advance() // enum
	it.Kind = ast.ItemEnum
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
	if _, ok = p.expect(token.LBrace); !ok {
		return false
	}
	for !p.at(token.RBrace) {
		v, ok := p.parseVariant()
		if !ok {
			return false
		}
		keep, ok := p.cfgKeep(v.Attrs)
		if !ok {
			return false
		}
		if keep {
			it.Variants = append(it.Variants, v)
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	_, ok = p.expect(token.RBrace)
	return ok
}

func (p *Parser) parseVariant() (*ast.Variant, bool) {
	start := p.peek().Span
	attrs, ok := p.parseOuterAttrs()
	if !ok {
		return nil, false
	}
	v := &ast.Variant{Attrs: attrs, Data: &ast.VariantData{Kind: ast.DataUnit}}
	if v.Ident, ok = p.parseIdent(); !ok {
		return nil, false
	}
	switch p.peek().Kind {
	case token.LBrace:
		fields, ok := p.parseStructFields()
		if !ok {
			return nil, false
		}
		v.Data = &ast.VariantData{Kind: ast.DataStruct, Fields: fields}
	case token.LParen:
		fields, ok := p.parseTupleFields()
		if !ok {
			return nil, false
		}
		v.Data = &ast.VariantData{Kind: ast.DataTuple, Fields: fields}
	case token.Eq:
		p.advance()
		if v.Disr, ok = p.parseExprFresh(); !ok {
			return nil, false
		}
	}
	v.Span = p.spanFrom(start)
	return v, true
}

// ===== use =====

func (p *Parser) parseUse(it *ast.Item) bool {
	p.advance() // use
	it.Kind = ast.ItemUse
	tree, ok := p.parseUseTree()
	if !ok {
		return false
	}
	it.Use = tree
	_, ok = p.expect(token.Semi)
	return ok
}

// parseUseTree разбирает `a::b`, `a::b as c`, `a::*`, `a::{b, c}`.
func (p *Parser) parseUseTree() (*ast.UseTree, bool) {
	start := p.peek().Span
	tree := &ast.UseTree{Kind: ast.UseSimple, Prefix: &ast.Path{}}

	// префикс без сегментов: `::{...}`, `{...}`, `*`
	if p.at(token.ModSep) && !isPathSegmentStart(p.peekAt(1).Kind) {
		p.advance()
		tree.Prefix.Global = true
	} else if !p.atAny(token.LBrace, token.Star) {
		path, ok := p.parsePath(pathExpr)
		if !ok {
			return nil, false
		}
		tree.Prefix = path
		if !p.at(token.ModSep) {
			if p.eat(token.KwAs) {
				if tree.Rename, ok = p.parseIdent(); !ok {
					return nil, false
				}
			}
			tree.Span = p.spanFrom(start)
			return tree, true
		}
		p.advance() // ::
	}

	switch {
	case p.eat(token.Star):
		tree.Kind = ast.UseGlob
	case p.eat(token.LBrace):
		tree.Kind = ast.UseList
		for !p.at(token.RBrace) {
			sub, ok := p.parseUseTree()
			if !ok {
				return nil, false
			}
			tree.List = append(tree.List, sub)
			if !p.eat(token.Comma) {
				break
			}
		}
		if _, ok := p.expect(token.RBrace); !ok {
			return nil, false
		}
	default:
		return nil, p.unexpected(diag.SynExpectIdentifier, "identifier, `*` or `{`")
	}
	tree.Span = p.spanFrom(start)
	return tree, true
}
