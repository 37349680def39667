package quote

import (
	"quasi/internal/ast"
	"quasi/internal/expand"
	"quasi/internal/source"
	"quasi/internal/token"
)

// Option is an optional Tokenizable: nothing when absent, the value's own
// tokens when present.
type Option[T Tokenizable] struct {
	value T
	ok    bool
}

func Some[T Tokenizable](v T) Option[T] { return Option[T]{value: v, ok: true} }

func None[T Tokenizable]() Option[T] { return Option[T]{} }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

func (o Option[T]) ToTokens(cx *expand.Context) ([]token.Tree, error) {
	if !o.ok {
		return nil, nil
	}
	return o.value.ToTokens(cx)
}

// Seq concatenates the conversions of xs. The first failure aborts the
// whole sequence.
func Seq[T Tokenizable](xs []T) Tokenizable {
	return Join(xs)
}

// Join is Seq with sep inserted between neighbouring elements.
func Join[T Tokenizable](xs []T, sep ...token.Tree) Tokenizable {
	return Func(func(cx *expand.Context) ([]token.Tree, error) {
		var out []token.Tree
		for i, x := range xs {
			if i > 0 {
				out = append(out, sep...)
			}
			trees, err := x.ToTokens(cx)
			if err != nil {
				return nil, err
			}
			out = append(out, trees...)
		}
		return out, nil
	})
}

// Comma is the separator Types uses.
func Comma() token.Tree {
	return token.TokenTree(token.New(token.Comma, source.NoSpan))
}

// Types joins types with commas: `A, B, C`.
func Types(tys []*ast.Ty) Tokenizable {
	return Join(tys, Comma())
}

// Items concatenates items.
func Items(items []*ast.Item) Tokenizable {
	return Seq(items)
}

// Spanned converts the wrapped node; the wrapper's span is not emitted.
func Spanned[T Tokenizable](s ast.Spanned[T]) Tokenizable {
	return s.Node
}

// Tree splices one ready-made tree.
func Tree(t token.Tree) Tokenizable {
	return Func(func(*expand.Context) ([]token.Tree, error) {
		return []token.Tree{t}, nil
	})
}

// Trees splices ready-made trees unchanged.
func Trees(ts []token.Tree) Tokenizable {
	return Func(func(*expand.Context) ([]token.Tree, error) {
		return ts, nil
	})
}

// Concat converts parts in order and concatenates the results. It is the
// splice helper generated expansion code calls.
func Concat(cx *expand.Context, parts ...Tokenizable) ([]token.Tree, error) {
	return Seq(parts).ToTokens(cx)
}

// Group wraps the converted parts in one delimited tree.
func Group(delim token.Delim, parts ...Tokenizable) Tokenizable {
	return Func(func(cx *expand.Context) ([]token.Tree, error) {
		inner, err := Concat(cx, parts...)
		if err != nil {
			return nil, err
		}
		return []token.Tree{token.DelimitedTree(delim, source.NoSpan, inner)}, nil
	})
}

// Punct is a single punctuation or keyword token.
func Punct(k token.Kind) Tokenizable {
	return Tree(token.TokenTree(token.New(k, source.NoSpan)))
}
