package backend

import (
	"github.com/cottand/elmgen/ir"
	"github.com/cottand/elmgen/name"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestConstantDeclaration(t *testing.T) {
	def := ir.Constant{
		Name: name.Q("Acme.greeting"),
		Type: ir.TypeGlobal[ir.Never]{Name: name.Q("String.String")},
		Body: str("hello"),
	}

	want := "greeting : String\n" +
		"greeting =\n" +
		"    \"hello\""
	assert.Equal(t, want, Definition(def))
}

func TestConstantTurnsLambdasIntoArguments(t *testing.T) {
	def := ir.Constant{
		Name:   name.Q("Acme.apply"),
		Params: 2,
		Type: ir.FnType[ir.Never]{
			From: ir.FnType[ir.Never]{From: ir.TypeBound[ir.Never]{Index: 0}, To: ir.TypeBound[ir.Never]{Index: 1}},
			To:   ir.FnType[ir.Never]{From: ir.TypeBound[ir.Never]{Index: 0}, To: ir.TypeBound[ir.Never]{Index: 1}},
		},
		Body: lam(lam(ir.Apps(local(1, 0), local(0, 0)))),
	}

	want := "apply : (a -> b) -> a -> b\n" +
		"apply a b =\n" +
		"    a b"
	assert.Equal(t, want, Definition(def))
}

func TestCustomTypeDeclaration(t *testing.T) {
	def := ir.CustomType{
		Name:   name.Q("Acme.Tree"),
		Params: 1,
		Constructors: []ir.Con{
			{Name: "Leaf"},
			{Name: "Node", Args: []ir.Type[ir.Never]{
				ir.TypeApp[ir.Never]{Fn: ir.TypeGlobal[ir.Never]{Name: name.Q("Tree")}, Arg: ir.TypeBound[ir.Never]{Index: 0}},
				ir.TypeBound[ir.Never]{Index: 0},
			}},
		},
	}

	want := "type Tree a\n" +
		"    = Leaf\n" +
		"    | Node (Tree a) a"
	assert.Equal(t, want, Definition(def))
}

func TestAliasDeclaration(t *testing.T) {
	def := ir.Alias{
		Name:   name.Q("Acme.Tagged"),
		Params: 1,
		Type: ir.RecordType[ir.Never]{Fields: []ir.TypeField[ir.Never]{
			{Name: "tag", Type: ir.TypeGlobal[ir.Never]{Name: name.Q("String.String")}},
			{Name: "value", Type: ir.TypeBound[ir.Never]{Index: 0}},
		}},
	}

	want := "type alias Tagged a =\n" +
		"    { tag : String, value : a }"
	assert.Equal(t, want, Definition(def))
}

func TestFunctionTypeSignatureParenthesisation(t *testing.T) {
	maybe := func(of ir.Type[ir.Never]) ir.Type[ir.Never] {
		return ir.TypeApp[ir.Never]{Fn: ir.TypeGlobal[ir.Never]{Name: name.Q("Maybe.Maybe")}, Arg: of}
	}
	def := ir.Constant{
		Name:   name.Q("Acme.lift"),
		Params: 2,
		Type: ir.FnType[ir.Never]{
			From: ir.FnType[ir.Never]{From: ir.TypeBound[ir.Never]{Index: 0}, To: ir.TypeBound[ir.Never]{Index: 1}},
			To: ir.FnType[ir.Never]{
				From: maybe(ir.TypeBound[ir.Never]{Index: 0}),
				To:   maybe(ir.TypeBound[ir.Never]{Index: 1}),
			},
		},
		Body: lam(ir.Apps(global("Maybe.map"), local(0, 0))),
	}

	want := "lift : (a -> b) -> Maybe a -> Maybe b\n" +
		"lift a =\n" +
		"    Maybe.map a"
	assert.Equal(t, want, Definition(def))
}
