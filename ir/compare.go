package ir

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Compare orders expressions structurally: by variant first, then by fields
// left to right. The order is total and deterministic; it carries no
// meaning beyond that.
func Compare[V Variable[V]](a, b Expr[V]) int {
	if c := cmp.Compare(exprRank[V](a), exprRank[V](b)); c != 0 {
		return c
	}
	switch a := a.(type) {
	case Var[V]:
		return a.Value.Compare(b.(Var[V]).Value)
	case Local[V]:
		other := b.(Local[V])
		if c := cmp.Compare(a.Up, other.Up); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, other.Index)
	case Global[V]:
		return a.Name.Compare(b.(Global[V]).Name)
	case App[V]:
		other := b.(App[V])
		if c := Compare[V](a.Fn, other.Fn); c != 0 {
			return c
		}
		return Compare[V](a.Arg, other.Arg)
	case Let[V]:
		other := b.(Let[V])
		if c := Compare[V](a.Value, other.Value); c != 0 {
			return c
		}
		return Compare[V](a.Body.Body, other.Body.Body)
	case Lam[V]:
		return Compare[V](a.Body.Body, b.(Lam[V]).Body.Body)
	case Record[V]:
		return slices.CompareFunc(a.Fields, b.(Record[V]).Fields, func(x, y FieldAssign[V]) int {
			if c := strings.Compare(string(x.Name), string(y.Name)); c != 0 {
				return c
			}
			return Compare[V](x.Value, y.Value)
		})
	case Proj[V]:
		return strings.Compare(string(a.Field), string(b.(Proj[V]).Field))
	case Case[V]:
		other := b.(Case[V])
		if c := Compare[V](a.Scrutinee, other.Scrutinee); c != 0 {
			return c
		}
		return slices.CompareFunc(a.Branches, other.Branches, func(x, y CaseBranch[V]) int {
			if c := ComparePatterns(x.Pattern, y.Pattern); c != 0 {
				return c
			}
			return Compare[V](x.Body.Body, y.Body.Body)
		})
	case List[V]:
		return slices.CompareFunc(a.Items, b.(List[V]).Items, Compare[V])
	case String[V]:
		return strings.Compare(a.Value, b.(String[V]).Value)
	case Int[V]:
		return cmp.Compare(a.Value, b.(Int[V]).Value)
	case Float[V]:
		return cmp.Compare(a.Value, b.(Float[V]).Value)
	}
	panic(fmt.Sprintf("ir: unexpected expression type %T", a))
}

// Equal reports structural equality.
func Equal[V Variable[V]](a, b Expr[V]) bool { return Compare[V](a, b) == 0 }

// ComparePatterns orders patterns the way Compare orders expressions.
func ComparePatterns(a, b Pattern[int]) int {
	if c := cmp.Compare(patternRank(a), patternRank(b)); c != 0 {
		return c
	}
	switch a := a.(type) {
	case VarPattern[int]:
		return cmp.Compare(a.Value, b.(VarPattern[int]).Value)
	case WildcardPattern[int]:
		return 0
	case ConPattern[int]:
		other := b.(ConPattern[int])
		if c := a.Name.Compare(other.Name); c != 0 {
			return c
		}
		return slices.CompareFunc(a.Args, other.Args, ComparePatterns)
	case IntPattern[int]:
		return cmp.Compare(a.Value, b.(IntPattern[int]).Value)
	case StringPattern[int]:
		return strings.Compare(a.Value, b.(StringPattern[int]).Value)
	case FloatPattern[int]:
		return cmp.Compare(a.Value, b.(FloatPattern[int]).Value)
	}
	panic(fmt.Sprintf("ir: unexpected pattern type %T", a))
}

// CompareTypes orders type expressions the way Compare orders expressions.
func CompareTypes[V Variable[V]](a, b Type[V]) int {
	if c := cmp.Compare(typeRank[V](a), typeRank[V](b)); c != 0 {
		return c
	}
	switch a := a.(type) {
	case TypeVar[V]:
		return a.Value.Compare(b.(TypeVar[V]).Value)
	case TypeBound[V]:
		return cmp.Compare(a.Index, b.(TypeBound[V]).Index)
	case TypeGlobal[V]:
		return a.Name.Compare(b.(TypeGlobal[V]).Name)
	case TypeApp[V]:
		other := b.(TypeApp[V])
		if c := CompareTypes[V](a.Fn, other.Fn); c != 0 {
			return c
		}
		return CompareTypes[V](a.Arg, other.Arg)
	case FnType[V]:
		other := b.(FnType[V])
		if c := CompareTypes[V](a.From, other.From); c != 0 {
			return c
		}
		return CompareTypes[V](a.To, other.To)
	case RecordType[V]:
		return slices.CompareFunc(a.Fields, b.(RecordType[V]).Fields, func(x, y TypeField[V]) int {
			if c := strings.Compare(string(x.Name), string(y.Name)); c != 0 {
				return c
			}
			return CompareTypes[V](x.Type, y.Type)
		})
	}
	panic(fmt.Sprintf("ir: unexpected type %T", a))
}

func exprRank[V any](e Expr[V]) int {
	switch e.(type) {
	case Var[V]:
		return 0
	case Local[V]:
		return 1
	case Global[V]:
		return 2
	case App[V]:
		return 3
	case Let[V]:
		return 4
	case Lam[V]:
		return 5
	case Record[V]:
		return 6
	case Proj[V]:
		return 7
	case Case[V]:
		return 8
	case List[V]:
		return 9
	case String[V]:
		return 10
	case Int[V]:
		return 11
	case Float[V]:
		return 12
	}
	panic(fmt.Sprintf("ir: unexpected expression type %T", e))
}

func patternRank(p Pattern[int]) int {
	switch p.(type) {
	case VarPattern[int]:
		return 0
	case WildcardPattern[int]:
		return 1
	case ConPattern[int]:
		return 2
	case IntPattern[int]:
		return 3
	case StringPattern[int]:
		return 4
	case FloatPattern[int]:
		return 5
	}
	panic(fmt.Sprintf("ir: unexpected pattern type %T", p))
}

func typeRank[V any](t Type[V]) int {
	switch t.(type) {
	case TypeVar[V]:
		return 0
	case TypeBound[V]:
		return 1
	case TypeGlobal[V]:
		return 2
	case TypeApp[V]:
		return 3
	case FnType[V]:
		return 4
	case RecordType[V]:
		return 5
	}
	panic(fmt.Sprintf("ir: unexpected type %T", t))
}
