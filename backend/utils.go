package backend

import (
	"github.com/cottand/elmgen/ir"
	"slices"
	"strconv"
	"strings"
)

func withParensIf(when bool, str string) string {
	if when {
		return "(" + str + ")"
	}
	return str
}

func pad(indent int) string {
	return strings.Repeat(" ", indent)
}

// spine unwinds nested applications into the applied head and its arguments
// in application order.
func spine[V ir.Variable[V]](e ir.Expr[V]) (ir.Expr[V], []ir.Expr[V]) {
	var args []ir.Expr[V]
	for {
		app, ok := e.(ir.App[V])
		if !ok {
			break
		}
		args = append(args, app.Arg)
		e = app.Fn
	}
	slices.Reverse(args)
	return e, args
}

// typeSpine is spine for type application chains.
func typeSpine[V ir.Variable[V]](t ir.Type[V]) (ir.Type[V], []ir.Type[V]) {
	var args []ir.Type[V]
	for {
		app, ok := t.(ir.TypeApp[V])
		if !ok {
			break
		}
		args = append(args, app.Arg)
		t = app.Fn
	}
	slices.Reverse(args)
	return t, args
}

// formatFloat renders a float the way elm spells them: shortest form that
// round-trips, with a decimal point forced in since elm has no bare float
// literals like `1`.
func formatFloat(v float64) string {
	formatted := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(formatted, ".e") {
		formatted += ".0"
	}
	return formatted
}
