package ast

import (
	"quasi/internal/source"
	"quasi/internal/token"
)

type ExprKind uint8

const (
	ExprLit        ExprKind = iota // Lit
	ExprPath                       // Path
	ExprUnary                      // UnOp X
	ExprAddrOf                     // &mut X
	ExprBinary                     // X BinOp Y
	ExprAssign                     // X = Y
	ExprAssignOp                   // X BinOp= Y
	ExprCast                       // X as Ty
	ExprRange                      // X .. Y, both optional
	ExprCall                       // X(Args)
	ExprMethodCall                 // X.Ident::<Types>(Args)
	ExprField                      // X.Ident
	ExprTupField                   // X.Index
	ExprIndex                      // X[Y]
	ExprTuple                      // (Args)
	ExprArray                      // [Args]
	ExprRepeat                     // [X; Y]
	ExprParen                      // (X)
	ExprBlock                      // Block (unsafe via Block.Rules)
	ExprIf                         // if X Block else Else
	ExprWhile                      // 'Label: while X Block
	ExprLoop                       // 'Label: loop Block
	ExprForLoop                    // 'Label: for Pat in X Block
	ExprMatch                      // match X { Arms }
	ExprRet                        // return X
	ExprBreak                      // break 'Label
	ExprContinue                   // continue 'Label
	ExprStruct                     // Path { Fields, ..Base }
	ExprMac                        // Mac
	ExprTry                        // X?
)

type UnOp uint8

const (
	UnDeref UnOp = iota // *
	UnNot               // !
	UnNeg               // -
)

func (op UnOp) String() string {
	switch op {
	case UnDeref:
		return "*"
	case UnNot:
		return "!"
	}
	return "-"
}

type BinOp uint8

const (
	BinAdd BinOp = iota
	BinSub
	BinMul
	BinDiv
	BinRem
	BinAnd
	BinOr
	BinBitXor
	BinBitAnd
	BinBitOr
	BinShl
	BinShr
	BinEq
	BinLt
	BinLe
	BinNe
	BinGe
	BinGt
)

var binOpText = [...]string{
	BinAdd:    "+",
	BinSub:    "-",
	BinMul:    "*",
	BinDiv:    "/",
	BinRem:    "%",
	BinAnd:    "&&",
	BinOr:     "||",
	BinBitXor: "^",
	BinBitAnd: "&",
	BinBitOr:  "|",
	BinShl:    "<<",
	BinShr:    ">>",
	BinEq:     "==",
	BinLt:     "<",
	BinLe:     "<=",
	BinNe:     "!=",
	BinGe:     ">=",
	BinGt:     ">",
}

func (op BinOp) String() string {
	if int(op) < len(binOpText) {
		return binOpText[op]
	}
	return "?"
}

// Precedence follows Rust: higher binds tighter.
func (op BinOp) Precedence() int {
	switch op {
	case BinMul, BinDiv, BinRem:
		return 10
	case BinAdd, BinSub:
		return 9
	case BinShl, BinShr:
		return 8
	case BinBitAnd:
		return 7
	case BinBitXor:
		return 6
	case BinBitOr:
		return 5
	case BinEq, BinLt, BinLe, BinNe, BinGe, BinGt:
		return 4
	case BinAnd:
		return 3
	}
	return 2 // BinOr
}

// IsComparison reports ==, <, <=, !=, >=, >; they do not chain.
func (op BinOp) IsComparison() bool {
	return op >= BinEq && op <= BinGt
}

// Precedence levels of the non-binary forms.
const (
	PrecAssign  = 0
	PrecRange   = 1
	PrecCast    = 11
	PrecPrefix  = 12
	PrecPostfix = 13
)

type Expr struct {
	Kind   ExprKind
	Lit    *Lit
	Path   *Path
	UnOp   UnOp
	BinOp  BinOp
	Mut    bool
	X      *Expr
	Y      *Expr
	Ty     *Ty
	Types  []*Ty // method call turbofish
	Ident  *Ident
	Index  uint32
	Args   []*Expr
	Block  *Block
	Else   *Expr
	Pat    *Pat
	Arms   []*Arm
	Label  *Lifetime
	Fields []*FieldInit
	Base   *Expr
	Mac    *Mac
	Span   source.Span
}

// FieldInit is `name: expr` in a struct literal; Shorthand is `name`.
type FieldInit struct {
	Name      Spanned[*Ident]
	Expr      *Expr
	Shorthand bool
	Span      source.Span
}

// Mac is a macro invocation `path!(tts)`; the body is kept as token trees.
type Mac struct {
	Path  *Path
	Delim token.Delim
	Tts   []token.Tree
	Span  source.Span
}

func (e *Expr) NtKind() token.NtKind { return token.NtExpr }

func (e *Expr) String() string {
	return printNode(func(pr *printer) { pr.expr(e) })
}

// Precedence of the expression's outermost operator.
func (e *Expr) Precedence() int {
	switch e.Kind {
	case ExprAssign, ExprAssignOp:
		return PrecAssign
	case ExprRange:
		return PrecRange
	case ExprBinary:
		return e.BinOp.Precedence()
	case ExprCast:
		return PrecCast
	case ExprUnary, ExprAddrOf:
		return PrecPrefix
	case ExprRet, ExprBreak, ExprContinue:
		return PrecAssign
	}
	return PrecPostfix
}

func (m *Mac) String() string {
	return printNode(func(pr *printer) { pr.mac(m) })
}
