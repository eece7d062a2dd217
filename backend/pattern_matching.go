package backend

import (
	"fmt"
	"github.com/cottand/elmgen/ir"
	"strconv"
	"strings"
)

// renderPattern renders pattern with the names its branch environment
// chose. minPrec distinguishes constructor-argument positions from the top
// of an arm, same as for expressions.
func renderPattern(pattern ir.Pattern[int], env *Environment, minPrec int) string {
	switch pattern := pattern.(type) {
	case ir.VarPattern[int]:
		return string(env.Resolve(0, pattern.Value))
	case ir.WildcardPattern[int]:
		return "_"
	case ir.ConPattern[int]:
		return renderConPattern(pattern, env, minPrec)
	case ir.IntPattern[int]:
		return strconv.FormatInt(pattern.Value, 10)
	case ir.StringPattern[int]:
		return `"` + pattern.Value + `"`
	case ir.FloatPattern[int]:
		return formatFloat(pattern.Value)
	}
	panic(fmt.Sprintf("backend: unexpected pattern type %T", pattern))
}

func renderConPattern(pattern ir.ConPattern[int], env *Environment, minPrec int) string {
	// operator constructors with both arguments, `x :: rest` mostly, print
	// infix in patterns just like in expressions
	if fix, isOperator := fixities[pattern.Name]; isOperator && len(pattern.Args) == 2 {
		leftPrec, rightPrec := fix.prec+1, fix.prec+1
		switch fix.assoc {
		case assocLeft:
			leftPrec = fix.prec
		case assocRight:
			rightPrec = fix.prec
		}
		left := renderPattern(pattern.Args[0], env, leftPrec)
		right := renderPattern(pattern.Args[1], env, rightPrec)
		return withParensIf(minPrec > fix.prec, left+" "+pattern.Name.Name+" "+right)
	}
	if len(pattern.Args) == 0 {
		return shortName(pattern.Name)
	}
	parts := make([]string, 0, len(pattern.Args)+1)
	parts = append(parts, shortName(pattern.Name))
	for _, arg := range pattern.Args {
		parts = append(parts, renderPattern(arg, env, appPrec+1))
	}
	return withParensIf(minPrec > appPrec, strings.Join(parts, " "))
}
