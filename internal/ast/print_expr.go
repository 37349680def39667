package ast

func (p *printer) expr(e *Expr) {
	switch e.Kind {
	case ExprLit:
		p.word(e.Lit.String())
	case ExprPath:
		p.path(e.Path, true)
	case ExprUnary:
		p.word(e.UnOp.String())
		p.operand(e.X, PrecPrefix)
	case ExprAddrOf:
		p.word("&")
		if e.Mut {
			p.word("mut ")
		}
		p.operand(e.X, PrecPrefix)
	case ExprBinary:
		prec := e.BinOp.Precedence()
		left := prec
		if e.BinOp.IsComparison() {
			left = prec + 1
		}
		if e.X.Kind == ExprCast && (e.BinOp == BinLt || e.BinOp == BinShl) {
			// `x as T < y` would read `<` as the start of generic args
			left = PrecPostfix + 1
		}
		p.operand(e.X, left)
		p.word(" " + e.BinOp.String() + " ")
		p.operand(e.Y, prec+1)
	case ExprAssign:
		p.operand(e.X, PrecAssign+1)
		p.word(" = ")
		p.operand(e.Y, PrecAssign)
	case ExprAssignOp:
		p.operand(e.X, PrecAssign+1)
		p.word(" " + e.BinOp.String() + "= ")
		p.operand(e.Y, PrecAssign)
	case ExprCast:
		p.operand(e.X, PrecCast)
		p.word(" as ")
		p.ty(e.Ty)
	case ExprRange:
		if e.X != nil {
			p.operand(e.X, PrecRange+1)
		}
		p.word("..")
		if e.Y != nil {
			p.operand(e.Y, PrecRange+1)
		}
	case ExprCall:
		p.operand(e.X, PrecPostfix)
		p.args(e.Args)
	case ExprMethodCall:
		p.operand(e.X, PrecPostfix)
		p.word(".")
		p.word(e.Ident.String())
		if len(e.Types) > 0 {
			p.word("::<")
			p.commaSep(len(e.Types), func(i int) { p.ty(e.Types[i]) })
			p.word(">")
		}
		p.args(e.Args)
	case ExprField:
		p.operand(e.X, PrecPostfix)
		p.word(".")
		p.word(e.Ident.String())
	case ExprTupField:
		p.operand(e.X, PrecPostfix)
		p.word(".")
		p.word(quoteIndex(e.Index))
	case ExprIndex:
		p.operand(e.X, PrecPostfix)
		p.word("[")
		p.expr(e.Y)
		p.word("]")
	case ExprTry:
		p.operand(e.X, PrecPostfix)
		p.word("?")
	case ExprTuple:
		p.word("(")
		p.commaSep(len(e.Args), func(i int) { p.expr(e.Args[i]) })
		if len(e.Args) == 1 {
			p.word(",")
		}
		p.word(")")
	case ExprArray:
		p.word("[")
		p.commaSep(len(e.Args), func(i int) { p.expr(e.Args[i]) })
		p.word("]")
	case ExprRepeat:
		p.word("[")
		p.expr(e.X)
		p.word("; ")
		p.expr(e.Y)
		p.word("]")
	case ExprParen:
		p.word("(")
		p.expr(e.X)
		p.word(")")
	case ExprBlock:
		p.block(e.Block)
	case ExprIf:
		p.ifExpr(e)
	case ExprWhile:
		p.label(e.Label)
		p.word("while ")
		p.cond(e.X)
		p.word(" ")
		p.block(e.Block)
	case ExprLoop:
		p.label(e.Label)
		p.word("loop ")
		p.block(e.Block)
	case ExprForLoop:
		p.label(e.Label)
		p.word("for ")
		p.pat(e.Pat)
		p.word(" in ")
		p.cond(e.X)
		p.word(" ")
		p.block(e.Block)
	case ExprMatch:
		p.word("match ")
		p.cond(e.X)
		p.word(" {")
		if len(e.Arms) == 0 {
			p.word("}")
			return
		}
		p.w.Newline()
		p.w.IndentPush()
		for _, a := range e.Arms {
			p.arm(a)
			if a.Body.Kind != ExprBlock {
				p.word(",")
			}
			p.w.Newline()
		}
		p.w.IndentPop()
		p.word("}")
	case ExprRet:
		p.word("return")
		if e.X != nil {
			p.word(" ")
			p.expr(e.X)
		}
	case ExprBreak:
		p.word("break")
		if e.Label != nil {
			p.word(" " + e.Label.Name)
		}
	case ExprContinue:
		p.word("continue")
		if e.Label != nil {
			p.word(" " + e.Label.Name)
		}
	case ExprStruct:
		p.path(e.Path, true)
		p.word(" {")
		if len(e.Fields) == 0 && e.Base == nil {
			p.word("}")
			return
		}
		p.word(" ")
		p.commaSep(len(e.Fields), func(i int) {
			f := e.Fields[i]
			p.word(f.Name.Node.String())
			if !f.Shorthand {
				p.word(": ")
				p.expr(f.Expr)
			}
		})
		if e.Base != nil {
			if len(e.Fields) > 0 {
				p.word(", ")
			}
			p.word("..")
			p.expr(e.Base)
		}
		p.word(" }")
	case ExprMac:
		p.mac(e.Mac)
	}
}

// operand prints e, parenthesized when it binds looser than minPrec.
func (p *printer) operand(e *Expr, minPrec int) {
	if e.Precedence() < minPrec {
		p.word("(")
		p.expr(e)
		p.word(")")
		return
	}
	p.expr(e)
}

// cond prints the head of if/while/for/match where a bare struct literal
// would be read as the body.
func (p *printer) cond(e *Expr) {
	if hasBareStruct(e) {
		p.word("(")
		p.expr(e)
		p.word(")")
		return
	}
	p.expr(e)
}

func hasBareStruct(e *Expr) bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case ExprStruct:
		return true
	case ExprBinary, ExprAssign, ExprAssignOp, ExprRange:
		return hasBareStruct(e.X) || hasBareStruct(e.Y)
	case ExprCast, ExprField, ExprTupField, ExprMethodCall, ExprCall, ExprIndex, ExprTry, ExprUnary, ExprAddrOf, ExprRet:
		return hasBareStruct(e.X)
	}
	return false
}

func (p *printer) args(args []*Expr) {
	p.word("(")
	p.commaSep(len(args), func(i int) { p.expr(args[i]) })
	p.word(")")
}

func (p *printer) label(lt *Lifetime) {
	if lt != nil {
		p.word(lt.Name + ": ")
	}
}

func (p *printer) ifExpr(e *Expr) {
	p.word("if ")
	p.cond(e.X)
	p.word(" ")
	p.block(e.Block)
	if e.Else != nil {
		p.word(" else ")
		p.expr(e.Else)
	}
}

func (p *printer) mac(m *Mac) {
	p.path(m.Path, true)
	p.word("!")
	p.word(m.Delim.Open().String())
	p.tts(m.Tts)
	p.word(m.Delim.Close().String())
}

func (p *printer) block(b *Block) {
	if b.Rules == UnsafeBlock {
		p.word("unsafe ")
	}
	if len(b.Stmts) == 0 && b.Expr == nil {
		p.word("{}")
		return
	}
	p.word("{")
	p.w.Newline()
	p.w.IndentPush()
	for _, s := range b.Stmts {
		p.stmt(s)
		p.w.Newline()
	}
	if b.Expr != nil {
		p.expr(b.Expr)
		p.w.Newline()
	}
	p.w.IndentPop()
	p.word("}")
}

func (p *printer) stmt(s *Stmt) {
	switch s.Kind {
	case StmtLocal:
		p.outerAttrs(s.Local.Attrs)
		p.word("let ")
		p.pat(s.Local.Pat)
		if s.Local.Ty != nil {
			p.word(": ")
			p.ty(s.Local.Ty)
		}
		if s.Local.Init != nil {
			p.word(" = ")
			p.expr(s.Local.Init)
		}
		p.word(";")
	case StmtItem:
		p.item(s.Item)
	case StmtExpr:
		p.expr(s.Expr)
	case StmtSemi:
		p.expr(s.Expr)
		p.word(";")
	}
}

func (p *printer) arm(a *Arm) {
	p.outerAttrs(a.Attrs)
	for i, pt := range a.Pats {
		if i > 0 {
			p.word(" | ")
		}
		p.pat(pt)
	}
	if a.Guard != nil {
		p.word(" if ")
		p.expr(a.Guard)
	}
	p.word(" => ")
	p.expr(a.Body)
}
