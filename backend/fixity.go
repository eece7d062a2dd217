package backend

import "github.com/cottand/elmgen/name"

// Operator precedences run 0 to 9, below function application; an atom
// outranks both. A construct prints parentheses exactly when the ambient
// minimum precedence strictly exceeds its own.
const (
	appPrec  = 10
	atomPrec = 11
)

type assoc uint8

const (
	assocNone assoc = iota
	assocLeft
	assocRight
)

type fixity struct {
	prec  int
	assoc assoc
	// newline lays the right operand out on a fresh line one step deeper,
	// the way elm code writes pipelines and compositions.
	newline bool
}

// fixities lists the operators rendered infix, with the precedence and
// associativity their defining modules declare.
var fixities = map[name.Qualified]fixity{
	name.Q("Basics.<<"): {prec: 9, assoc: assocRight, newline: true},
	name.Q("Basics.>>"): {prec: 9, assoc: assocLeft, newline: true},
	name.Q("Basics.^"):  {prec: 8, assoc: assocRight},
	name.Q("Basics.*"):  {prec: 7, assoc: assocLeft},
	name.Q("Basics./"):  {prec: 7, assoc: assocLeft},
	name.Q("Basics.//"): {prec: 7, assoc: assocLeft},
	name.Q("Basics.+"):  {prec: 6, assoc: assocLeft},
	name.Q("Basics.-"):  {prec: 6, assoc: assocLeft},
	name.Q("Parser.|."): {prec: 6, assoc: assocLeft},
	name.Q("Parser.|="): {prec: 5, assoc: assocLeft},
	name.Q("Basics.++"): {prec: 5, assoc: assocRight},
	name.Q("List.::"):   {prec: 5, assoc: assocRight},
	name.Q("Basics.=="): {prec: 4, assoc: assocNone},
	name.Q("Basics./="): {prec: 4, assoc: assocNone},
	name.Q("Basics.<"):  {prec: 4, assoc: assocNone},
	name.Q("Basics.>"):  {prec: 4, assoc: assocNone},
	name.Q("Basics.<="): {prec: 4, assoc: assocNone},
	name.Q("Basics.>="): {prec: 4, assoc: assocNone},
	name.Q("Basics.&&"): {prec: 3, assoc: assocRight},
	// core declares || infixr; rendered left associative on purpose, so
	// chains print flat instead of nesting to the right
	name.Q("Basics.||"): {prec: 2, assoc: assocLeft},
	name.Q("Basics.<|"): {prec: 0, assoc: assocRight, newline: true},
	name.Q("Basics.|>"): {prec: 0, assoc: assocLeft, newline: true},
}

// shortNames maps well-known names to the spelling elm files get through
// default imports. Everything in Basics is exposed unqualified, so that
// module is handled wholesale in shortName.
var shortNames = map[name.Qualified]string{
	name.Q("List.List"):     "List",
	name.Q("Maybe.Maybe"):   "Maybe",
	name.Q("Maybe.Just"):    "Just",
	name.Q("Maybe.Nothing"): "Nothing",
	name.Q("Result.Result"): "Result",
	name.Q("Result.Ok"):     "Ok",
	name.Q("Result.Err"):    "Err",
	name.Q("String.String"): "String",
	name.Q("Char.Char"):     "Char",
}

func shortName(q name.Qualified) string {
	if q.Module == "Basics" {
		return q.Name
	}
	if short, ok := shortNames[q]; ok {
		return short
	}
	return q.String()
}

// implicitImports are the modules every elm file imports by default; module
// rendering never emits import lines for them.
var implicitImports = map[name.Module]bool{
	"Basics":       true,
	"List":         true,
	"Maybe":        true,
	"Result":       true,
	"String":       true,
	"Char":         true,
	"Tuple":        true,
	"Debug":        true,
	"Platform":     true,
	"Platform.Cmd": true,
	"Platform.Sub": true,
}
