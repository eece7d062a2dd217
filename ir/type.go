package ir

import "github.com/cottand/elmgen/name"

// Type is a type expression over type variables of type V. Only closed
// types reach the renderer; the generic form exists for frontends that
// manipulate them before committing to a definition.
type Type[V any] interface {
	typeNode()
}

// TypeVar is a free type variable.
type TypeVar[V any] struct{ Value V }

// TypeBound refers to a parameter of the enclosing definition by position.
// Definitions are the only type binders and they do not nest, so no Up
// component is needed.
type TypeBound[V any] struct{ Index int }

// TypeGlobal references a named type.
type TypeGlobal[V any] struct{ Name name.Qualified }

// TypeApp applies a type constructor to a single argument; n-ary
// application is a chain, like App.
type TypeApp[V any] struct{ Fn, Arg Type[V] }

// FnType is the function arrow. Chains of arrows nest to the right.
type FnType[V any] struct{ From, To Type[V] }

// RecordType is a record type; field order is kept as written.
type RecordType[V any] struct{ Fields []TypeField[V] }

// TypeField is one `field : type` entry of a RecordType.
type TypeField[V any] struct {
	Name name.Field
	Type Type[V]
}

func (TypeVar[V]) typeNode()    {}
func (TypeBound[V]) typeNode()  {}
func (TypeGlobal[V]) typeNode() {}
func (TypeApp[V]) typeNode()    {}
func (FnType[V]) typeNode()     {}
func (RecordType[V]) typeNode() {}

var _ Type[Never] = TypeVar[Never]{}
var _ Type[Never] = TypeBound[Never]{}
var _ Type[Never] = TypeGlobal[Never]{}
var _ Type[Never] = TypeApp[Never]{}
var _ Type[Never] = FnType[Never]{}
var _ Type[Never] = RecordType[Never]{}
