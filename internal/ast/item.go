package ast

import (
	"quasi/internal/source"
	"quasi/internal/token"
)

type ItemKind uint8

const (
	ItemFn          ItemKind = iota // fn Ident Generics (Decl) Body
	ItemStruct                      // struct Ident Generics Data
	ItemEnum                        // enum Ident Generics { Variants }
	ItemImpl                        // impl Generics Trait for SelfTy { ImplItems }
	ItemTrait                       // trait Ident Generics: Supertraits { TraitItems }
	ItemUse                         // use UseTree;
	ItemConst                       // const Ident: Ty = Expr;
	ItemStatic                      // static mut Ident: Ty = Expr;
	ItemTy                          // type Ident Generics = Ty;
	ItemMod                         // mod Ident { Items }
	ItemExternCrate                 // extern crate Orig as Ident;
	ItemMac                         // path!(...);
)

// Item is a top-level or nested declaration. Payload fields are used
// according to Kind, see the ItemKind comments.
type Item struct {
	Kind        ItemKind
	Attrs       []*Attribute
	Vis         Visibility
	Ident       *Ident
	Unsafe      bool
	Mut         bool
	Generics    *Generics
	Decl        *FnDecl
	Body        *Block
	Data        *VariantData
	Variants    []*Variant
	Trait       *Path
	SelfTy      *Ty
	ImplItems   []*ImplItem
	Supertraits []*TyParamBound
	TraitItems  []*TraitItem
	Use         *UseTree
	Ty          *Ty
	Expr        *Expr
	Items       []*Item
	Orig        *Ident
	Mac         *Mac
	Span        source.Span
}

func (it *Item) NtKind() token.NtKind { return token.NtItem }

func (it *Item) String() string {
	return printNode(func(pr *printer) { pr.item(it) })
}

// FnDecl is the signature part of a function: `(self, a: T) -> R`.
type FnDecl struct {
	SelfParam *SelfParam
	Inputs    []*Param
	Output    *Ty // nil means `()`
}

type Param struct {
	Pat  *Pat
	Ty   *Ty
	Span source.Span
}

type SelfKind uint8

const (
	SelfValue    SelfKind = iota // self, mut self
	SelfRef                      // &'a mut self
	SelfExplicit                 // self: Ty
)

type SelfParam struct {
	Kind     SelfKind
	Mut      bool
	Lifetime *Lifetime
	Ty       *Ty
	Span     source.Span
}

type VariantDataKind uint8

const (
	DataStruct VariantDataKind = iota // { a: T }
	DataTuple                         // (T)
	DataUnit                          //
)

type VariantData struct {
	Kind   VariantDataKind
	Fields []*StructField
}

// StructField has a nil Ident inside tuple data.
type StructField struct {
	Attrs []*Attribute
	Vis   Visibility
	Ident *Ident
	Ty    *Ty
	Span  source.Span
}

type Variant struct {
	Attrs []*Attribute
	Ident *Ident
	Data  *VariantData
	Disr  *Expr
	Span  source.Span
}

type UseTreeKind uint8

const (
	UseSimple UseTreeKind = iota // a::b, a::b as c
	UseGlob                      // a::*
	UseList                      // a::{b, c}
)

type UseTree struct {
	Kind   UseTreeKind
	Prefix *Path // may have zero segments inside a list (`{self}`) or `{a, b}` at top
	Rename *Ident
	List   []*UseTree
	Span   source.Span
}

type ImplItemKind uint8

const (
	ImplItemConst  ImplItemKind = iota // const Ident: Ty = Expr;
	ImplItemMethod                     // fn Ident Sig Body
	ImplItemType                       // type Ident = Ty;
	ImplItemMac                        // path!(...);
)

// MethodSig is shared by impl and trait methods.
type MethodSig struct {
	Unsafe   bool
	Generics *Generics
	Decl     *FnDecl
}

type ImplItem struct {
	Kind  ImplItemKind
	Attrs []*Attribute
	Vis   Visibility
	Ident *Ident
	Ty    *Ty
	Expr  *Expr
	Sig   *MethodSig
	Body  *Block
	Mac   *Mac
	Span  source.Span
}

func (it *ImplItem) NtKind() token.NtKind { return token.NtImplItem }

func (it *ImplItem) String() string {
	return printNode(func(pr *printer) { pr.implItem(it) })
}

type TraitItemKind uint8

const (
	TraitItemConst  TraitItemKind = iota // const Ident: Ty (= Expr);
	TraitItemMethod                      // fn Ident Sig (Body | ;)
	TraitItemType                        // type Ident: Bounds (= Ty);
)

type TraitItem struct {
	Kind   TraitItemKind
	Attrs  []*Attribute
	Ident  *Ident
	Ty     *Ty
	Expr   *Expr
	Sig    *MethodSig
	Body   *Block
	Bounds []*TyParamBound
	Span   source.Span
}

func (it *TraitItem) NtKind() token.NtKind { return token.NtTraitItem }

func (it *TraitItem) String() string {
	return printNode(func(pr *printer) { pr.traitItem(it) })
}
