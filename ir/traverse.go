package ir

import (
	"fmt"
	"github.com/cottand/elmgen/name"
	"github.com/cottand/elmgen/util"
	"iter"
)

// Globals yields every qualified name referenced anywhere in e, including
// constructor names in case patterns. Order follows the tree left to right;
// duplicates are not removed.
func Globals[V any](e Expr[V]) iter.Seq[name.Qualified] {
	switch e := e.(type) {
	case Global[V]:
		return util.SingleIter(e.Name)
	case App[V]:
		return util.ConcatIter(Globals[V](e.Fn), Globals[V](e.Arg))
	case Let[V]:
		return util.ConcatIter(Globals[V](e.Value), Globals[V](e.Body.Body))
	case Lam[V]:
		return Globals[V](e.Body.Body)
	case Record[V]:
		its := make([]iter.Seq[name.Qualified], len(e.Fields))
		for i, field := range e.Fields {
			its[i] = Globals[V](field.Value)
		}
		return util.ConcatIter(its...)
	case Case[V]:
		its := []iter.Seq[name.Qualified]{Globals[V](e.Scrutinee)}
		for _, branch := range e.Branches {
			its = append(its, PatternGlobals[int](branch.Pattern), Globals[V](branch.Body.Body))
		}
		return util.ConcatIter(its...)
	case List[V]:
		its := make([]iter.Seq[name.Qualified], len(e.Items))
		for i, item := range e.Items {
			its[i] = Globals[V](item)
		}
		return util.ConcatIter(its...)
	}
	return util.ConcatIter[name.Qualified]()
}

// PatternGlobals yields the constructor names p matches against, outermost
// first.
func PatternGlobals[V any](p Pattern[V]) iter.Seq[name.Qualified] {
	con, ok := p.(ConPattern[V])
	if !ok {
		return util.ConcatIter[name.Qualified]()
	}
	its := []iter.Seq[name.Qualified]{util.SingleIter(con.Name)}
	for _, arg := range con.Args {
		its = append(its, PatternGlobals[V](arg))
	}
	return util.ConcatIter(its...)
}

// TypeGlobals yields every named type t mentions.
func TypeGlobals[V any](t Type[V]) iter.Seq[name.Qualified] {
	switch t := t.(type) {
	case TypeGlobal[V]:
		return util.SingleIter(t.Name)
	case TypeApp[V]:
		return util.ConcatIter(TypeGlobals[V](t.Fn), TypeGlobals[V](t.Arg))
	case FnType[V]:
		return util.ConcatIter(TypeGlobals[V](t.From), TypeGlobals[V](t.To))
	case RecordType[V]:
		its := make([]iter.Seq[name.Qualified], len(t.Fields))
		for i, field := range t.Fields {
			its[i] = TypeGlobals[V](field.Type)
		}
		return util.ConcatIter(its...)
	}
	return util.ConcatIter[name.Qualified]()
}

// DefinitionGlobals yields every qualified name the definition refers to,
// its own name excluded unless the body mentions it.
func DefinitionGlobals(def Definition) iter.Seq[name.Qualified] {
	switch def := def.(type) {
	case Constant:
		return util.ConcatIter(TypeGlobals[Never](def.Type), Globals[Never](def.Body))
	case CustomType:
		var its []iter.Seq[name.Qualified]
		for _, con := range def.Constructors {
			for _, arg := range con.Args {
				its = append(its, TypeGlobals[Never](arg))
			}
		}
		return util.ConcatIter(its...)
	case Alias:
		return TypeGlobals[Never](def.Type)
	}
	panic(fmt.Sprintf("ir: unexpected definition type %T", def))
}
