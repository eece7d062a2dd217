package ir

import "github.com/cottand/elmgen/name"

// Definition is a top-level declaration. The module of DefinedName decides
// which file the definition lands in when whole modules are rendered.
type Definition interface {
	defNode()
	DefinedName() name.Qualified
}

// Constant is a value definition with an explicit type signature. Params
// counts the type parameters the signature quantifies over; TypeBound
// indices below Params refer to them.
type Constant struct {
	Name   name.Qualified
	Params int
	Type   Type[Never]
	Body   Closed
}

// CustomType introduces a sum type with Params type parameters.
type CustomType struct {
	Name         name.Qualified
	Params       int
	Constructors []Con
}

// Con is one constructor of a CustomType.
type Con struct {
	Name name.Constructor
	Args []Type[Never]
}

// Alias names a type expression; TypeBound indices below Params refer to
// the alias's parameters.
type Alias struct {
	Name   name.Qualified
	Params int
	Type   Type[Never]
}

func (Constant) defNode()   {}
func (CustomType) defNode() {}
func (Alias) defNode()      {}

func (d Constant) DefinedName() name.Qualified   { return d.Name }
func (d CustomType) DefinedName() name.Qualified { return d.Name }
func (d Alias) DefinedName() name.Qualified      { return d.Name }

var _ Definition = Constant{}
var _ Definition = CustomType{}
var _ Definition = Alias{}
