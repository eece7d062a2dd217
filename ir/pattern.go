package ir

import "github.com/cottand/elmgen/name"

// Pattern is a match pattern over variables of type V. Inside expression
// trees patterns are always Pattern[int]: the variables are the slot
// indices that the owning CaseBranch's ScopeN binds.
type Pattern[V any] interface {
	patternNode()
}

// VarPattern binds whatever the scrutinee holds at this position.
type VarPattern[V any] struct{ Value V }

// WildcardPattern matches anything and binds nothing.
type WildcardPattern[V any] struct{}

// ConPattern matches a constructor applied to sub-patterns.
type ConPattern[V any] struct {
	Name name.Qualified
	Args []Pattern[V]
}

// IntPattern matches an integer literal.
type IntPattern[V any] struct{ Value int64 }

// StringPattern matches a string literal; Value is pre-escaped like
// String's.
type StringPattern[V any] struct{ Value string }

// FloatPattern matches a floating point literal.
type FloatPattern[V any] struct{ Value float64 }

func (VarPattern[V]) patternNode()      {}
func (WildcardPattern[V]) patternNode() {}
func (ConPattern[V]) patternNode()      {}
func (IntPattern[V]) patternNode()      {}
func (StringPattern[V]) patternNode()   {}
func (FloatPattern[V]) patternNode()    {}

var _ Pattern[int] = VarPattern[int]{}
var _ Pattern[int] = WildcardPattern[int]{}
var _ Pattern[int] = ConPattern[int]{}
var _ Pattern[int] = IntPattern[int]{}
var _ Pattern[int] = StringPattern[int]{}
var _ Pattern[int] = FloatPattern[int]{}

// PatternVars collects the variables p declares, left to right, depth
// first. Duplicates are kept.
func PatternVars[V any](p Pattern[V]) []V {
	var vars []V
	patternVarsWalk(p, &vars)
	return vars
}

func patternVarsWalk[V any](p Pattern[V], into *[]V) {
	switch p := p.(type) {
	case VarPattern[V]:
		*into = append(*into, p.Value)
	case ConPattern[V]:
		for _, arg := range p.Args {
			patternVarsWalk(arg, into)
		}
	}
}
