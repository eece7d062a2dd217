package backend

import (
	"fmt"
	"github.com/cottand/elmgen/ir"
	"strings"
)

// renderType renders a type expression. The arrow sits at precedence 0 and
// associates right; type application shares the expression levels.
func renderType[V ir.Variable[V]](t ir.Type[V], env *Environment, minPrec, indent int) string {
	switch t := t.(type) {
	case ir.TypeVar[V]:
		return t.Value.String()
	case ir.TypeBound[V]:
		return string(env.Resolve(0, t.Index))
	case ir.TypeGlobal[V]:
		return shortName(t.Name)
	case ir.TypeApp[V]:
		head, args := typeSpine[V](t)
		parts := make([]string, 0, len(args)+1)
		parts = append(parts, renderType(head, env, atomPrec, indent))
		for _, arg := range args {
			parts = append(parts, renderType(arg, env, appPrec+1, indent))
		}
		return withParensIf(minPrec > appPrec, strings.Join(parts, " "))
	case ir.FnType[V]:
		from := renderType(t.From, env, 1, indent)
		to := renderType(t.To, env, 0, indent)
		return withParensIf(minPrec > 0, from+" -> "+to)
	case ir.RecordType[V]:
		if len(t.Fields) == 0 {
			return "{}"
		}
		fields := make([]string, len(t.Fields))
		for i, field := range t.Fields {
			fields[i] = string(field.Name) + " : " + renderType(field.Type, env, 0, indent)
		}
		return "{ " + strings.Join(fields, ", ") + " }"
	}
	panic(fmt.Sprintf("backend: unexpected type %T", t))
}
