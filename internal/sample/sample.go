// Package sample builds a small set of definitions spanning most of what
// the renderer can print: records, custom types, case expressions, lets,
// pipelines and cross-module references. The generate command writes it to
// disk and the end-to-end test pins its exact output.
package sample

import (
	"github.com/cottand/elmgen/ir"
	"github.com/cottand/elmgen/name"
)

var (
	userType   = name.Q("Acme.Api.User")
	statusType = name.Q("Acme.Api.Status")
)

func global(dotted string) ir.Closed {
	return ir.Global[ir.Never]{Name: name.Q(dotted)}
}

func typeGlobal(dotted string) ir.Type[ir.Never] {
	return ir.TypeGlobal[ir.Never]{Name: name.Q(dotted)}
}

func str(s string) ir.Closed { return ir.String[ir.Never]{Value: s} }

func intLit(i int64) ir.Closed { return ir.Int[ir.Never]{Value: i} }

func local(up, index int) ir.Closed { return ir.Local[ir.Never]{Up: up, Index: index} }

func lam(body ir.Closed) ir.Closed {
	return ir.Lam[ir.Never]{Body: ir.Scope1[ir.Never]{Body: body}}
}

// Definitions returns the sample definitions, spread over two modules.
func Definitions() []ir.Definition {
	return []ir.Definition{
		userAlias(),
		taggedAlias(),
		statusCustomType(),
		version(),
		seed(),
		describe(),
		isAdult(),
		summary(),
		statuses(),
		decoder(),
	}
}

// type alias User =
//     { name : String, age : Int }
func userAlias() ir.Definition {
	return ir.Alias{
		Name: userType,
		Type: ir.RecordType[ir.Never]{Fields: []ir.TypeField[ir.Never]{
			{Name: "name", Type: typeGlobal("String.String")},
			{Name: "age", Type: typeGlobal("Basics.Int")},
		}},
	}
}

// type alias Tagged a =
//     { tag : String, value : a }
func taggedAlias() ir.Definition {
	return ir.Alias{
		Name:   name.Q("Acme.Api.Tagged"),
		Params: 1,
		Type: ir.RecordType[ir.Never]{Fields: []ir.TypeField[ir.Never]{
			{Name: "tag", Type: typeGlobal("String.String")},
			{Name: "value", Type: ir.TypeBound[ir.Never]{Index: 0}},
		}},
	}
}

// type Status
//     = Active
//     | Banned String
func statusCustomType() ir.Definition {
	return ir.CustomType{
		Name: statusType,
		Constructors: []ir.Con{
			{Name: "Active"},
			{Name: "Banned", Args: []ir.Type[ir.Never]{typeGlobal("String.String")}},
		},
	}
}

// version : Float
func version() ir.Definition {
	return ir.Constant{
		Name: name.Q("Acme.Api.version"),
		Type: typeGlobal("Basics.Float"),
		Body: ir.Float[ir.Never]{Value: 1},
	}
}

// seed : List User
func seed() ir.Definition {
	user := func(userName string, age int64) ir.Closed {
		return ir.Record[ir.Never]{Fields: []ir.FieldAssign[ir.Never]{
			{Name: "name", Value: str(userName)},
			{Name: "age", Value: intLit(age)},
		}}
	}
	return ir.Constant{
		Name: name.Q("Acme.Api.seed"),
		Type: ir.TypeApp[ir.Never]{Fn: typeGlobal("List.List"), Arg: ir.TypeGlobal[ir.Never]{Name: userType}},
		Body: ir.List[ir.Never]{Items: []ir.Closed{user("Ada", 36), user("Lin", 7)}},
	}
}

// describe : Status -> String, a case over both constructors
func describe() ir.Definition {
	branches := []ir.CaseBranch[ir.Never]{
		{
			Pattern: ir.ConPattern[int]{Name: name.Q("Acme.Api.Active")},
			Body:    ir.ScopeN[ir.Never]{Body: str("active")},
		},
		{
			Pattern: ir.ConPattern[int]{Name: name.Q("Acme.Api.Banned"), Args: []ir.Pattern[int]{ir.VarPattern[int]{Value: 0}}},
			Body: ir.ScopeN[ir.Never]{Body: ir.Apps(
				global("Basics.++"), str("banned: "), local(0, 0),
			)},
		},
	}
	return ir.Constant{
		Name: name.Q("Acme.Api.describe"),
		Type: ir.FnType[ir.Never]{From: ir.TypeGlobal[ir.Never]{Name: statusType}, To: typeGlobal("String.String")},
		Body: lam(ir.Case[ir.Never]{Scrutinee: local(0, 0), Branches: branches}),
	}
}

// isAdult : User -> Bool
func isAdult() ir.Definition {
	age := ir.App[ir.Never]{Fn: ir.Proj[ir.Never]{Field: "age"}, Arg: local(0, 0)}
	return ir.Constant{
		Name: name.Q("Acme.Api.isAdult"),
		Type: ir.FnType[ir.Never]{From: ir.TypeGlobal[ir.Never]{Name: userType}, To: typeGlobal("Basics.Bool")},
		Body: lam(ir.Apps(global("Basics.>="), age, intLit(18))),
	}
}

// summary : List User -> String, with a let binding
func summary() ir.Definition {
	count := ir.App[ir.Never]{Fn: global("List.length"), Arg: local(0, 0)}
	body := ir.Let[ir.Never]{
		Value: count,
		Body: ir.Scope1[ir.Never]{Body: ir.Apps(
			global("Basics.++"),
			str("count: "),
			ir.App[ir.Never]{Fn: global("String.fromInt"), Arg: local(0, 0)},
		)},
	}
	return ir.Constant{
		Name: name.Q("Acme.Api.summary"),
		Type: ir.FnType[ir.Never]{
			From: ir.TypeApp[ir.Never]{Fn: typeGlobal("List.List"), Arg: ir.TypeGlobal[ir.Never]{Name: userType}},
			To:   typeGlobal("String.String"),
		},
		Body: lam(body),
	}
}

// statuses : List Status -> List String, a pipeline
func statuses() ir.Definition {
	mapDescribe := ir.App[ir.Never]{Fn: global("List.map"), Arg: ir.Global[ir.Never]{Name: name.Q("Acme.Api.describe")}}
	return ir.Constant{
		Name: name.Q("Acme.Api.statuses"),
		Type: ir.FnType[ir.Never]{
			From: ir.TypeApp[ir.Never]{Fn: typeGlobal("List.List"), Arg: ir.TypeGlobal[ir.Never]{Name: statusType}},
			To:   ir.TypeApp[ir.Never]{Fn: typeGlobal("List.List"), Arg: typeGlobal("String.String")},
		},
		Body: lam(ir.Pipe(local(0, 0), mapDescribe)),
	}
}

// decoder lives in its own module and references Acme.Api across modules:
//
//	user : Json.Decode.Decoder Acme.Api.User
func decoder() ir.Definition {
	field := func(fieldName string, of ir.Closed) ir.Closed {
		return ir.Apps(global("Json.Decode.field"), str(fieldName), of)
	}
	return ir.Constant{
		Name: name.Q("Acme.Api.Decode.user"),
		Type: ir.TypeApp[ir.Never]{
			Fn:  typeGlobal("Json.Decode.Decoder"),
			Arg: ir.TypeGlobal[ir.Never]{Name: userType},
		},
		Body: ir.Apps(
			global("Json.Decode.map2"),
			ir.Global[ir.Never]{Name: userType},
			field("name", global("Json.Decode.string")),
			field("age", global("Json.Decode.int")),
		),
	}
}
