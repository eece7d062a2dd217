// Package name holds the identifier value types shared by the expression
// tree and the renderer.
package name

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Module is a dotted Elm module path, like "Json.Decode".
type Module string

// Qualified points at a value, type or constructor defined in some module.
// An empty Module means the name needs no qualification.
type Qualified struct {
	Module Module
	Name   string
}

// Local is a display name chosen for a variable bound inside an expression.
type Local string

// Field is a record field label.
type Field string

// Constructor is the unqualified name of a custom type constructor, as it
// appears in the type's own definition.
type Constructor string

func (m Module) String() string { return string(m) }

func (l Local) String() string { return string(l) }

// Compare orders locals lexicographically.
func (l Local) Compare(other Local) int {
	return strings.Compare(string(l), string(other))
}

func (q Qualified) String() string {
	if q.Module == "" {
		return q.Name
	}
	return string(q.Module) + "." + q.Name
}

// Compare orders by module first, then by name.
func (q Qualified) Compare(other Qualified) int {
	if c := strings.Compare(string(q.Module), string(other.Module)); c != 0 {
		return c
	}
	return strings.Compare(q.Name, other.Name)
}

// Q builds a Qualified from its dotted spelling: the module is the longest
// leading run of capitalised dot-segments that still leaves a name behind.
// That rule keeps operators whole, including ones that contain dots:
//
//	Q("Json.Decode.map") // {"Json.Decode", "map"}
//	Q("Basics.+")        // {"Basics", "+"}
//	Q("Parser.|.")       // {"Parser", "|."}
func Q(dotted string) Qualified {
	segments := strings.Split(dotted, ".")
	moduleLen := 0
	for moduleLen < len(segments)-1 && isCapitalised(segments[moduleLen]) {
		moduleLen++
	}
	return Qualified{
		Module: Module(strings.Join(segments[:moduleLen], ".")),
		Name:   strings.Join(segments[moduleLen:], "."),
	}
}

func isCapitalised(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsUpper(r)
}
