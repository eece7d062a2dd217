// Package backend renders ir trees as Elm source text.
//
// Rendering is precedence driven: every printing function takes the minimum
// precedence its context demands and parenthesises itself only when its own
// precedence falls strictly below it. Names for bound variables come from an
// Environment threaded through the walk, never from the tree, so rendering
// the same scope twice in different positions is safe.
package backend

import (
	"github.com/cottand/elmgen/ir"
	"log/slog"
)

var logger = slog.With("section", "backend")

// Expression renders e at the top of a line, with no ambient precedence.
// Free variables print with their String form; a closed tree (V = ir.Never)
// cannot have any.
func Expression[V ir.Variable[V]](e ir.Expr[V]) string {
	return renderExpr(e, NewEnvironment(), 0, 0)
}
