package backend

import (
	"github.com/cottand/elmgen/ir"
	"github.com/cottand/elmgen/name"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestModuleHeaderImportsAndBodies(t *testing.T) {
	defs := []ir.Definition{
		ir.CustomType{Name: name.Q("Acme.Status"), Constructors: []ir.Con{{Name: "Active"}, {Name: "Banned"}}},
		ir.Constant{
			Name: name.Q("Acme.label"),
			Type: ir.FnType[ir.Never]{
				From: ir.TypeGlobal[ir.Never]{Name: name.Q("Acme.Status")},
				To:   ir.TypeGlobal[ir.Never]{Name: name.Q("String.String")},
			},
			Body: lam(ir.Apps(global("Acme.Util.display"), local(0, 0))),
		},
	}

	want := `module Acme exposing (Status(..), label)

import Acme.Util


type Status
    = Active
    | Banned


label : Status -> String
label a =
    Acme.Util.display a
`
	assert.Equal(t, want, Module("Acme", defs))
}

func TestModuleUnqualifiesOwnReferencesEverywhere(t *testing.T) {
	caseOver := lam(ir.Case[ir.Never]{
		Scrutinee: local(0, 0),
		Branches: []ir.CaseBranch[ir.Never]{{
			Pattern: ir.ConPattern[int]{Name: name.Q("Acme.Active")},
			Body:    ir.ScopeN[ir.Never]{Body: global("Acme.fallback")},
		}},
	})
	defs := []ir.Definition{ir.Constant{
		Name: name.Q("Acme.pick"),
		Type: ir.FnType[ir.Never]{
			From: ir.TypeGlobal[ir.Never]{Name: name.Q("Acme.Status")},
			To:   ir.TypeGlobal[ir.Never]{Name: name.Q("Acme.Status")},
		},
		Body: caseOver,
	}}

	rendered := Module("Acme", defs)

	assert.Contains(t, rendered, "pick : Status -> Status")
	assert.Contains(t, rendered, "        Active ->\n            fallback")
	assert.NotContains(t, rendered, "Acme.")
	assert.NotContains(t, rendered, "import")
}

func TestModuleSkipsImplicitImports(t *testing.T) {
	defs := []ir.Definition{ir.Constant{
		Name: name.Q("Acme.first"),
		Type: ir.TypeApp[ir.Never]{
			Fn:  ir.TypeGlobal[ir.Never]{Name: name.Q("Maybe.Maybe")},
			Arg: ir.TypeGlobal[ir.Never]{Name: name.Q("Basics.Int")},
		},
		Body: ir.Apps(global("List.head"), ir.List[ir.Never]{Items: []ir.Closed{intLit(1)}}),
	}}

	rendered := Module("Acme", defs)

	assert.NotContains(t, rendered, "import")
	assert.Contains(t, rendered, "first : Maybe Int\nfirst =\n    List.head [ 1 ]\n")
}

func TestModulesGroupsByDefinitionModule(t *testing.T) {
	intType := ir.TypeGlobal[ir.Never]{Name: name.Q("Basics.Int")}
	defs := []ir.Definition{
		ir.Constant{Name: name.Q("A.one"), Type: intType, Body: intLit(1)},
		ir.Constant{Name: name.Q("B.two"), Type: intType, Body: intLit(2)},
		ir.Constant{Name: name.Q("A.three"), Type: intType, Body: intLit(3)},
	}

	rendered := Modules(defs)

	assert.Len(t, rendered, 2)
	assert.Contains(t, rendered["A"], "module A exposing (one, three)")
	assert.Contains(t, rendered["A"], "one =\n    1")
	assert.Contains(t, rendered["A"], "three =\n    3")
	assert.Contains(t, rendered["B"], "module B exposing (two)")
}
