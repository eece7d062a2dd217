package ir

import "github.com/cottand/elmgen/name"

var (
	qPipe      = name.Q("Basics.|>")
	qTuplePair = name.Q("Tuple.pair")
)

// Apps applies fn to args, left to right.
func Apps[V any](fn Expr[V], args ...Expr[V]) Expr[V] {
	for _, arg := range args {
		fn = App[V]{Fn: fn, Arg: arg}
	}
	return fn
}

// Pipe pipes e1 into e2: `e1 |> e2`.
func Pipe[V any](e1, e2 Expr[V]) Expr[V] {
	return Apps[V](Global[V]{Name: qPipe}, e1, e2)
}

// Pair builds a two-tuple with Tuple.pair.
func Pair[V any](e1, e2 Expr[V]) Expr[V] {
	return Apps[V](Global[V]{Name: qTuplePair}, e1, e2)
}
