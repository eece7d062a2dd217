package backend

import (
	"github.com/cottand/elmgen/ir"
	"github.com/cottand/elmgen/name"
	"github.com/stretchr/testify/assert"
	"testing"
)

func global(dotted string) ir.Closed { return ir.Global[ir.Never]{Name: name.Q(dotted)} }
func str(s string) ir.Closed         { return ir.String[ir.Never]{Value: s} }
func intLit(i int64) ir.Closed       { return ir.Int[ir.Never]{Value: i} }
func local(up, index int) ir.Closed  { return ir.Local[ir.Never]{Up: up, Index: index} }

func lam(body ir.Closed) ir.Closed {
	return ir.Lam[ir.Never]{Body: ir.Scope1[ir.Never]{Body: body}}
}

// op applies a Basics operator to closed arguments
func op(symbol string, args ...ir.Closed) ir.Closed {
	return ir.Apps(global("Basics."+symbol), args...)
}

func varE(s string) ir.Expr[name.Local] { return ir.Var[name.Local]{Value: name.Local(s)} }

func vop(dotted string, args ...ir.Expr[name.Local]) ir.Expr[name.Local] {
	return ir.Apps[name.Local](ir.Global[name.Local]{Name: name.Q(dotted)}, args...)
}

func TestExpressionPrecedence(t *testing.T) {
	tru, fls := global("Basics.True"), global("Basics.False")
	cases := []struct {
		name string
		expr ir.Closed
		want string
	}{
		{"addition", op("+", intLit(1), intLit(2)), "1 + 2"},
		{"tighter operand needs no parens", op("+", intLit(1), op("*", intLit(2), intLit(3))), "1 + 2 * 3"},
		{"looser operand gets parens", op("*", intLit(1), op("+", intLit(2), intLit(3))), "1 * (2 + 3)"},
		{"left assoc flat", op("-", op("-", intLit(10), intLit(3)), intLit(1)), "10 - 3 - 1"},
		{"left assoc right nesting parenthesised", op("-", intLit(10), op("-", intLit(3), intLit(1))), "10 - (3 - 1)"},
		{"integer division", op("//", intLit(7), intLit(2)), "7 // 2"},
		{"right assoc flat", op("++", str("a"), op("++", str("b"), str("c"))), `"a" ++ "b" ++ "c"`},
		{"right assoc left nesting parenthesised", op("++", op("++", str("a"), str("b")), str("c")), `("a" ++ "b") ++ "c"`},
		{"exponent right assoc", op("^", intLit(2), op("^", intLit(3), intLit(4))), "2 ^ 3 ^ 4"},
		{"exponent left nesting parenthesised", op("^", op("^", intLit(2), intLit(3)), intLit(4)), "(2 ^ 3) ^ 4"},
		{"non assoc always parenthesises", op("==", op("==", intLit(1), intLit(2)), intLit(3)), "(1 == 2) == 3"},
		{"or flat", op("||", op("||", tru, fls), tru), "True || False || True"},
		{"and right assoc", op("&&", tru, op("&&", fls, tru)), "True && False && True"},
		{"and left nesting parenthesised", op("&&", op("&&", tru, fls), tru), "(True && False) && True"},
		{"bare operator section", global("Basics.+"), "(+)"},
		{"half applied operator", op("+", intLit(1)), "(+) 1"},
		{"oversaturated operator", op("+", intLit(1), intLit(2), intLit(3)), "(1 + 2) 3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Expression(c.expr))
		})
	}
}

func TestExpressionLiterals(t *testing.T) {
	cases := []struct {
		name string
		expr ir.Closed
		want string
	}{
		{"float forces decimal point", ir.Float[ir.Never]{Value: 1}, "1.0"},
		{"float keeps its own point", ir.Float[ir.Never]{Value: 2.5}, "2.5"},
		{"small float", ir.Float[ir.Never]{Value: 0.25}, "0.25"},
		{"large float in exponent form", ir.Float[ir.Never]{Value: 1e21}, "1e+21"},
		{"string", str("hi"), `"hi"`},
		{"negative int", intLit(-4), "-4"},
		{"empty list", ir.List[ir.Never]{}, "[]"},
		{"list", ir.List[ir.Never]{Items: []ir.Closed{intLit(1), intLit(2)}}, "[ 1, 2 ]"},
		{"empty record", ir.Record[ir.Never]{}, "{}"},
		{
			"record",
			ir.Record[ir.Never]{Fields: []ir.FieldAssign[ir.Never]{
				{Name: "name", Value: str("q")},
				{Name: "size", Value: ir.Float[ir.Never]{Value: 2.5}},
			}},
			`{ name = "q", size = 2.5 }`,
		},
		{"field accessor", ir.Proj[ir.Never]{Field: "age"}, ".age"},
		{"qualified name", global("Json.Decode.map"), "Json.Decode.map"},
		{"default import shortened", global("Maybe.Just"), "Just"},
		{"basics unqualified", global("Basics.identity"), "identity"},
		{"result shortened", global("Result.Ok"), "Ok"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Expression(c.expr))
		})
	}
}

func TestExpressionApplication(t *testing.T) {
	assert.Equal(t, "f x y", Expression(ir.Apps(varE("f"), varE("x"), varE("y"))))
	assert.Equal(t, "f (g x)", Expression(ir.Apps(varE("f"), ir.Apps(varE("g"), varE("x")))))
	assert.Equal(t, "List.foldl (+) 0", Expression(ir.Apps(global("List.foldl"), global("Basics.+"), intLit(0))))
	assert.Equal(t, `List.map (\a -> a)`, Expression(ir.Apps(global("List.map"), lam(local(0, 0)))))

	accessed := ir.Apps(global("String.length"), ir.Apps[ir.Never](ir.Proj[ir.Never]{Field: "name"}, local(0, 0)))
	assert.Equal(t, `\a -> String.length (.name a)`, Expression(lam(accessed)))
}

func TestExpressionLambda(t *testing.T) {
	assert.Equal(t, `\a b -> a`, Expression(lam(lam(local(1, 0)))))
}

func TestExpressionLet(t *testing.T) {
	var e ir.Closed = ir.Let[ir.Never]{
		Value: intLit(1),
		Body: ir.Scope1[ir.Never]{Body: ir.Let[ir.Never]{
			Value: op("+", local(0, 0), intLit(1)),
			Body:  ir.Scope1[ir.Never]{Body: op("+", local(1, 0), local(0, 0))},
		}},
	}

	want := "let\n" +
		"    a =\n" +
		"        1\n" +
		"    b =\n" +
		"        a + 1\n" +
		"in\n" +
		"a + b"
	assert.Equal(t, want, Expression(e))
}

func TestExpressionCase(t *testing.T) {
	var e ir.Expr[name.Local] = ir.Case[name.Local]{
		Scrutinee: varE("x"),
		Branches: []ir.CaseBranch[name.Local]{{
			Pattern: ir.ConPattern[int]{Name: name.Q("Maybe.Just"), Args: []ir.Pattern[int]{ir.VarPattern[int]{Value: 0}}},
			Body:    ir.ScopeN[name.Local]{Body: ir.Local[name.Local]{Up: 0, Index: 0}},
		}},
	}

	want := "case x of\n" +
		"    Just a ->\n" +
		"        a"
	assert.Equal(t, want, Expression(e))
}

func TestExpressionCaseConsPatterns(t *testing.T) {
	var e ir.Expr[name.Local] = ir.Case[name.Local]{
		Scrutinee: varE("xs"),
		Branches: []ir.CaseBranch[name.Local]{
			{
				Pattern: ir.ConPattern[int]{Name: name.Q("List.::"), Args: []ir.Pattern[int]{
					ir.VarPattern[int]{Value: 0},
					ir.ConPattern[int]{Name: name.Q("List.::"), Args: []ir.Pattern[int]{
						ir.VarPattern[int]{Value: 1},
						ir.WildcardPattern[int]{},
					}},
				}},
				Body: ir.ScopeN[name.Local]{Body: ir.Local[name.Local]{Up: 0, Index: 1}},
			},
			{
				Pattern: ir.WildcardPattern[int]{},
				Body:    ir.ScopeN[name.Local]{Body: ir.Int[name.Local]{Value: 0}},
			},
		},
	}

	want := "case xs of\n" +
		"    a :: b :: _ ->\n" +
		"        b\n" +
		"\n" +
		"    _ ->\n" +
		"        0"
	assert.Equal(t, want, Expression(e))
}

func TestExpressionCaseAsArgument(t *testing.T) {
	caseOf := ir.Case[name.Local]{
		Scrutinee: varE("x"),
		Branches: []ir.CaseBranch[name.Local]{{
			Pattern: ir.ConPattern[int]{Name: name.Q("Maybe.Just"), Args: []ir.Pattern[int]{ir.VarPattern[int]{Value: 0}}},
			Body:    ir.ScopeN[name.Local]{Body: ir.Local[name.Local]{Up: 0, Index: 0}},
		}},
	}

	want := "f (case x of\n" +
		"    Just a ->\n" +
		"        a)"
	assert.Equal(t, want, Expression(ir.Apps(varE("f"), caseOf)))
}

func TestExpressionPipelines(t *testing.T) {
	pipeline := vop("Basics.|>", vop("Basics.|>", varE("x"), varE("f")), varE("g"))
	assert.Equal(t, "x |>\n    f |>\n    g", Expression(pipeline))

	composed := vop("Basics.<<", varE("f"), vop("Basics.<<", varE("g"), varE("h")))
	assert.Equal(t, "f <<\n    g <<\n        h", Expression(composed))

	parser := vop("Parser.|=", vop("Parser.|.", varE("p"), varE("q")), varE("r"))
	assert.Equal(t, "p |. q |= r", Expression(parser))
}

func TestExpressionBackPipeKeepsCaseBare(t *testing.T) {
	caseOf := ir.Case[name.Local]{
		Scrutinee: varE("x"),
		Branches: []ir.CaseBranch[name.Local]{{
			Pattern: ir.ConPattern[int]{Name: name.Q("Maybe.Just"), Args: []ir.Pattern[int]{ir.VarPattern[int]{Value: 0}}},
			Body:    ir.ScopeN[name.Local]{Body: ir.Local[name.Local]{Up: 0, Index: 0}},
		}},
	}

	want := "f <|\n" +
		"    case x of\n" +
		"        Just a ->\n" +
		"            a"
	assert.Equal(t, want, Expression(vop("Basics.<|", varE("f"), caseOf)))
}

func TestSharedScopesRenderIndependently(t *testing.T) {
	shared := ir.Scope1[ir.Never]{Body: local(0, 0)}
	var identity ir.Closed = ir.Lam[ir.Never]{Body: shared}
	e := ir.Apps(identity, identity)

	assert.Equal(t, `(\a -> a) (\a -> a)`, Expression(e))
	assert.Equal(t, Expression(e), Expression(e))
}
