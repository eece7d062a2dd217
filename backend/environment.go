package backend

import (
	"fmt"
	"github.com/benbjohnson/immutable"
	"github.com/cottand/elmgen/ir"
	"github.com/cottand/elmgen/name"
	"github.com/xtgo/set"
	"sort"
	"strconv"
)

// Environment assigns display names to the binders in scope at the current
// point of the tree being rendered. It is persistent: Extend and
// ExtendForPattern return a child and leave the receiver untouched, so
// sibling branches each extend the same parent without seeing each other's
// names. Names may repeat across siblings; scopes that never overlap can
// safely share them.
type Environment struct {
	parent *Environment
	// bindings maps this binder's slot indices to their display names. nil
	// only on the root environment, which binds nothing.
	bindings *immutable.Map[int, name.Local]
	// next indexes into the name supply, threaded parent to child.
	next int
}

// NewEnvironment is the environment of a closed tree: no binders in scope.
func NewEnvironment() *Environment {
	return &Environment{}
}

// Extend enters a single-variable binder, choosing a fresh name for it.
func (env *Environment) Extend() (*Environment, name.Local) {
	chosen := supplyName(env.next)
	return &Environment{
		parent:   env,
		bindings: immutable.NewMap[int, name.Local](nil).Set(0, chosen),
		next:     env.next + 1,
	}, chosen
}

// ExtendForPattern enters a case branch: every distinct index the pattern
// declares gets a fresh name, assigned in increasing index order. A pattern
// declaring no variables still pushes a binder level, since its branch body
// is a scope either way.
func (env *Environment) ExtendForPattern(pattern ir.Pattern[int]) *Environment {
	indices := ir.PatternVars(pattern)
	sort.Ints(indices)
	indices = indices[:set.Uniq(sort.IntSlice(indices))]

	next := env.next
	builder := immutable.NewMapBuilder[int, name.Local](nil)
	for _, index := range indices {
		builder.Set(index, supplyName(next))
		next++
	}
	return &Environment{parent: env, bindings: builder.Map(), next: next}
}

// Resolve looks up the display name of a bound placeholder. A failed lookup
// means the tree refers to a binder that does not exist, which no caller
// can recover from.
func (env *Environment) Resolve(up, index int) name.Local {
	level := env
	for steps := up; steps > 0; steps-- {
		if level.parent == nil {
			panic(fmt.Sprintf("backend: unbound variable: no binder %d scopes up", up))
		}
		level = level.parent
	}
	if level.bindings == nil {
		panic(fmt.Sprintf("backend: unbound variable: no binder %d scopes up", up))
	}
	chosen, ok := level.bindings.Get(index)
	if !ok {
		panic(fmt.Sprintf("backend: unbound variable: binder %d scopes up has no slot %d", up, index))
	}
	return chosen
}

// supplyName is the infinite name supply: a..z, then a0..z0, a1..z1, and so
// on. It is pure; callers thread the counter.
func supplyName(i int) name.Local {
	if i < 0 {
		panic("backend: name supply index overflowed")
	}
	letter := rune('a' + i%26)
	if i < 26 {
		return name.Local(letter)
	}
	return name.Local(string(letter) + strconv.Itoa(i/26-1))
}
