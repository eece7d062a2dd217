// Package ir defines the expression tree that frontends build and the
// backend package renders as Elm source.
//
// Expr is generic over V, the representation of free variables: an
// Expr[Never] is closed. Variables bound by Lam, Let and Case bodies never
// appear as Var nodes; they are Local placeholders, addressed by the number
// of scopes between occurrence and binder (Up) and by the binder's slot
// (Index). Bind only ever touches Var nodes, so no substitution can rewrite
// or capture a placeholder that belongs to a scope.
//
// Trees are immutable values: subtrees and scopes may be shared freely.
package ir

import (
	"fmt"
	"github.com/cottand/elmgen/name"
)

// Expr is an expression over free variables of type V.
type Expr[V any] interface {
	exprNode()
}

// Variable is what a free-variable representation must provide for the
// derived operations (Compare, Equal, ExprString) and for the renderer,
// which prints free variables with String. name.Local satisfies it.
type Variable[V any] interface {
	Compare(other V) int
	fmt.Stringer
}

// Never is the free-variable type of closed trees. It has no legitimate
// values, so every variable in a Closed tree is a Local bound by a scope.
type Never struct{}

func (Never) Compare(Never) int { panic("ir: Never has no values") }
func (Never) String() string    { panic("ir: Never has no values") }

// Closed is an expression with no free variables.
type Closed = Expr[Never]

// Var is a free variable.
type Var[V any] struct{ Value V }

// Local is a variable bound by an enclosing scope. Up counts the scopes
// crossed between occurrence and binder; Index picks the binder's slot,
// which is always 0 for a Scope1 binder.
type Local[V any] struct{ Up, Index int }

// Global references a definition by qualified name.
type Global[V any] struct{ Name name.Qualified }

// App applies Fn to a single argument. Multi-argument application is a
// chain of Apps; see Apps, and the spine flattening done by the renderer.
type App[V any] struct{ Fn, Arg Expr[V] }

// Let binds Value inside Body. Value sits outside the scope, so a binding
// cannot refer to itself.
type Let[V any] struct {
	Value Expr[V]
	Body  Scope1[V]
}

// Lam is a one-argument function; functions of several arguments are
// nested Lams.
type Lam[V any] struct{ Body Scope1[V] }

// Record is a record literal. Field order is kept exactly as written.
type Record[V any] struct{ Fields []FieldAssign[V] }

// FieldAssign is one `field = value` entry of a Record.
type FieldAssign[V any] struct {
	Name  name.Field
	Value Expr[V]
}

// Proj is a field accessor function, like `.name`.
type Proj[V any] struct{ Field name.Field }

// Case scrutinises an expression against pattern branches.
type Case[V any] struct {
	Scrutinee Expr[V]
	Branches  []CaseBranch[V]
}

// CaseBranch pairs a pattern with its body. The integer variables the
// pattern declares are exactly the indices the body's ScopeN binds.
type CaseBranch[V any] struct {
	Pattern Pattern[int]
	Body    ScopeN[V]
}

// List is a list literal.
type List[V any] struct{ Items []Expr[V] }

// String is a string literal. Value is written between quotes verbatim, so
// it must already be escaped.
type String[V any] struct{ Value string }

// Int is an integer literal.
type Int[V any] struct{ Value int64 }

// Float is a floating point literal.
type Float[V any] struct{ Value float64 }

func (Var[V]) exprNode()    {}
func (Local[V]) exprNode()  {}
func (Global[V]) exprNode() {}
func (App[V]) exprNode()    {}
func (Let[V]) exprNode()    {}
func (Lam[V]) exprNode()    {}
func (Record[V]) exprNode() {}
func (Proj[V]) exprNode()   {}
func (Case[V]) exprNode()   {}
func (List[V]) exprNode()   {}
func (String[V]) exprNode() {}
func (Int[V]) exprNode()    {}
func (Float[V]) exprNode()  {}

var _ Expr[Never] = Var[Never]{}
var _ Expr[Never] = Local[Never]{}
var _ Expr[Never] = Global[Never]{}
var _ Expr[Never] = App[Never]{}
var _ Expr[Never] = Let[Never]{}
var _ Expr[Never] = Lam[Never]{}
var _ Expr[Never] = Record[Never]{}
var _ Expr[Never] = Proj[Never]{}
var _ Expr[Never] = Case[Never]{}
var _ Expr[Never] = List[Never]{}
var _ Expr[Never] = String[Never]{}
var _ Expr[Never] = Int[Never]{}
var _ Expr[Never] = Float[Never]{}

var _ Variable[Never] = Never{}
var _ Variable[name.Local] = name.Local("")
