package ir

import "fmt"

// Bind substitutes every free variable of e, replacing each Var with f of
// its value. The result may be over a different variable representation, so
// Bind with the identity-shaped f is also the generic traversal of a tree.
//
// Scope placeholders are never passed to f: they belong to their binders,
// not to the substitution. When a substituted tree lands under binders, its
// own placeholders are shifted past them, so nothing e binds can capture
// anything f produced.
func Bind[V, W any](e Expr[V], f func(V) Expr[W]) Expr[W] {
	return bindWalk(e, f, 0)
}

func bindWalk[V, W any](e Expr[V], f func(V) Expr[W], depth int) Expr[W] {
	switch e := e.(type) {
	case Var[V]:
		return shift[W](f(e.Value), depth, 0)
	case Local[V]:
		return Local[W]{Up: e.Up, Index: e.Index}
	case Global[V]:
		return Global[W]{Name: e.Name}
	case App[V]:
		return App[W]{Fn: bindWalk(e.Fn, f, depth), Arg: bindWalk(e.Arg, f, depth)}
	case Let[V]:
		return Let[W]{
			Value: bindWalk(e.Value, f, depth),
			Body:  Scope1[W]{Body: bindWalk(e.Body.Body, f, depth+1)},
		}
	case Lam[V]:
		return Lam[W]{Body: Scope1[W]{Body: bindWalk(e.Body.Body, f, depth+1)}}
	case Record[V]:
		fields := make([]FieldAssign[W], len(e.Fields))
		for i, field := range e.Fields {
			fields[i] = FieldAssign[W]{Name: field.Name, Value: bindWalk(field.Value, f, depth)}
		}
		return Record[W]{Fields: fields}
	case Proj[V]:
		return Proj[W]{Field: e.Field}
	case Case[V]:
		branches := make([]CaseBranch[W], len(e.Branches))
		for i, branch := range e.Branches {
			branches[i] = CaseBranch[W]{
				Pattern: branch.Pattern,
				Body:    ScopeN[W]{Body: bindWalk(branch.Body.Body, f, depth+1)},
			}
		}
		return Case[W]{Scrutinee: bindWalk(e.Scrutinee, f, depth), Branches: branches}
	case List[V]:
		items := make([]Expr[W], len(e.Items))
		for i, item := range e.Items {
			items[i] = bindWalk(item, f, depth)
		}
		return List[W]{Items: items}
	case String[V]:
		return String[W]{Value: e.Value}
	case Int[V]:
		return Int[W]{Value: e.Value}
	case Float[V]:
		return Float[W]{Value: e.Value}
	}
	panic(fmt.Sprintf("ir: unexpected expression type %T", e))
}
