package ir

// Scope1 is the body of a single-variable binder (Lam, Let). Occurrences of
// the bound variable are Locals with Index 0 whose Up counts the scopes
// crossed between occurrence and this binder.
type Scope1[V any] struct{ Body Expr[V] }

// ScopeN is the body of a pattern binder: one scope binding every index the
// branch's pattern declares. A ScopeN with no indices is still a scope, so
// placeholders for outer binders count it in Up.
type ScopeN[V any] struct{ Body Expr[V] }

// Abstract1 closes body over v: free occurrences of v become the bound
// variable of the returned scope.
func Abstract1[V Variable[V]](v V, body Expr[V]) Scope1[V] {
	return Scope1[V]{Body: abstractWalk(body, func(w V) (int, bool) {
		return 0, w.Compare(v) == 0
	})}
}

// AbstractN closes body over the free variables index selects, each at the
// slot index reports for it.
func AbstractN[V any](index func(V) (int, bool), body Expr[V]) ScopeN[V] {
	return ScopeN[V]{Body: abstractWalk(body, index)}
}

// Instantiate opens the scope, replacing the bound variable with arg.
func (s Scope1[V]) Instantiate(arg Expr[V]) Expr[V] {
	return instantiateWalk(s.Body, func(int) Expr[V] { return arg })
}

// Instantiate opens the scope, replacing the placeholder for each bound
// index with at(index). at must cover every index the scope binds.
func (s ScopeN[V]) Instantiate(at func(int) Expr[V]) Expr[V] {
	return instantiateWalk(s.Body, at)
}

// shift adds by to every placeholder pointing past cutoff binders. It keeps
// references intact when a subtree moves under extra binders, or out from
// under one.
func shift[V any](e Expr[V], by, cutoff int) Expr[V] {
	if by == 0 {
		return e
	}
	return rewriter[V]{
		onLocal: func(l Local[V], depth int) Expr[V] {
			if l.Up >= depth {
				return Local[V]{Up: l.Up + by, Index: l.Index}
			}
			return l
		},
	}.rewrite(e, cutoff)
}

// abstractWalk turns selected free variables into placeholders for a new
// outermost binder. Placeholders that already pointed out of body gain one
// level of Up: the new binder now sits between them and theirs.
func abstractWalk[V any](body Expr[V], index func(V) (int, bool)) Expr[V] {
	return rewriter[V]{
		onVar: func(v V, depth int) Expr[V] {
			if i, ok := index(v); ok {
				return Local[V]{Up: depth, Index: i}
			}
			return Var[V]{Value: v}
		},
		onLocal: func(l Local[V], depth int) Expr[V] {
			if l.Up >= depth {
				return Local[V]{Up: l.Up + 1, Index: l.Index}
			}
			return l
		},
	}.rewrite(body, 0)
}

// instantiateWalk removes the outermost binder of body, splicing at(index)
// where its placeholders were. Spliced trees are shifted by the depth they
// land at, so their own outward references survive; placeholders that
// pointed past the removed binder lose one level of Up.
func instantiateWalk[V any](body Expr[V], at func(int) Expr[V]) Expr[V] {
	return rewriter[V]{
		onLocal: func(l Local[V], depth int) Expr[V] {
			switch {
			case l.Up == depth:
				return shift[V](at(l.Index), depth, 0)
			case l.Up > depth:
				return Local[V]{Up: l.Up - 1, Index: l.Index}
			}
			return l
		},
	}.rewrite(body, 0)
}
