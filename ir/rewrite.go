package ir

import (
	"fmt"
	"github.com/cottand/elmgen/name"
)

// rewriter rebuilds an expression tree, applying its hooks where they are
// set and copying structurally everywhere else. depth counts the binders
// crossed since the root of the rewrite.
type rewriter[V any] struct {
	onVar     func(v V, depth int) Expr[V]
	onLocal   func(l Local[V], depth int) Expr[V]
	onGlobal  func(g Global[V]) Expr[V]
	onPattern func(p Pattern[int]) Pattern[int]
}

func (r rewriter[V]) rewrite(e Expr[V], depth int) Expr[V] {
	switch e := e.(type) {
	case Var[V]:
		if r.onVar == nil {
			return e
		}
		return r.onVar(e.Value, depth)
	case Local[V]:
		if r.onLocal == nil {
			return e
		}
		return r.onLocal(e, depth)
	case Global[V]:
		if r.onGlobal == nil {
			return e
		}
		return r.onGlobal(e)
	case App[V]:
		return App[V]{Fn: r.rewrite(e.Fn, depth), Arg: r.rewrite(e.Arg, depth)}
	case Let[V]:
		return Let[V]{
			Value: r.rewrite(e.Value, depth),
			Body:  Scope1[V]{Body: r.rewrite(e.Body.Body, depth+1)},
		}
	case Lam[V]:
		return Lam[V]{Body: Scope1[V]{Body: r.rewrite(e.Body.Body, depth+1)}}
	case Record[V]:
		fields := make([]FieldAssign[V], len(e.Fields))
		for i, field := range e.Fields {
			fields[i] = FieldAssign[V]{Name: field.Name, Value: r.rewrite(field.Value, depth)}
		}
		return Record[V]{Fields: fields}
	case Proj[V], String[V], Int[V], Float[V]:
		return e
	case Case[V]:
		branches := make([]CaseBranch[V], len(e.Branches))
		for i, branch := range e.Branches {
			pattern := branch.Pattern
			if r.onPattern != nil {
				pattern = r.onPattern(pattern)
			}
			branches[i] = CaseBranch[V]{
				Pattern: pattern,
				Body:    ScopeN[V]{Body: r.rewrite(branch.Body.Body, depth+1)},
			}
		}
		return Case[V]{Scrutinee: r.rewrite(e.Scrutinee, depth), Branches: branches}
	case List[V]:
		items := make([]Expr[V], len(e.Items))
		for i, item := range e.Items {
			items[i] = r.rewrite(item, depth)
		}
		return List[V]{Items: items}
	}
	panic(fmt.Sprintf("ir: unexpected expression type %T", e))
}

// RenameExprGlobals rewrites every qualified name e mentions through f,
// constructor names in case patterns included.
func RenameExprGlobals[V any](e Expr[V], f func(name.Qualified) name.Qualified) Expr[V] {
	return rewriter[V]{
		onGlobal: func(g Global[V]) Expr[V] {
			return Global[V]{Name: f(g.Name)}
		},
		onPattern: func(p Pattern[int]) Pattern[int] {
			return renamePatternGlobals(p, f)
		},
	}.rewrite(e, 0)
}

// RenameTypeGlobals rewrites every qualified name t mentions through f.
func RenameTypeGlobals[V any](t Type[V], f func(name.Qualified) name.Qualified) Type[V] {
	switch t := t.(type) {
	case TypeGlobal[V]:
		return TypeGlobal[V]{Name: f(t.Name)}
	case TypeApp[V]:
		return TypeApp[V]{Fn: RenameTypeGlobals[V](t.Fn, f), Arg: RenameTypeGlobals[V](t.Arg, f)}
	case FnType[V]:
		return FnType[V]{From: RenameTypeGlobals[V](t.From, f), To: RenameTypeGlobals[V](t.To, f)}
	case RecordType[V]:
		fields := make([]TypeField[V], len(t.Fields))
		for i, field := range t.Fields {
			fields[i] = TypeField[V]{Name: field.Name, Type: RenameTypeGlobals[V](field.Type, f)}
		}
		return RecordType[V]{Fields: fields}
	}
	return t
}

// RenameDefinitionGlobals rewrites every qualified name the definition
// refers to through f. The defined name itself is left alone.
func RenameDefinitionGlobals(def Definition, f func(name.Qualified) name.Qualified) Definition {
	switch def := def.(type) {
	case Constant:
		return Constant{
			Name:   def.Name,
			Params: def.Params,
			Type:   RenameTypeGlobals[Never](def.Type, f),
			Body:   RenameExprGlobals[Never](def.Body, f),
		}
	case CustomType:
		cons := make([]Con, len(def.Constructors))
		for i, con := range def.Constructors {
			args := make([]Type[Never], len(con.Args))
			for j, arg := range con.Args {
				args[j] = RenameTypeGlobals[Never](arg, f)
			}
			cons[i] = Con{Name: con.Name, Args: args}
		}
		return CustomType{Name: def.Name, Params: def.Params, Constructors: cons}
	case Alias:
		return Alias{Name: def.Name, Params: def.Params, Type: RenameTypeGlobals[Never](def.Type, f)}
	}
	panic(fmt.Sprintf("ir: unexpected definition type %T", def))
}

func renamePatternGlobals(p Pattern[int], f func(name.Qualified) name.Qualified) Pattern[int] {
	con, ok := p.(ConPattern[int])
	if !ok {
		return p
	}
	args := make([]Pattern[int], len(con.Args))
	for i, arg := range con.Args {
		args[i] = renamePatternGlobals(arg, f)
	}
	return ConPattern[int]{Name: f(con.Name), Args: args}
}
