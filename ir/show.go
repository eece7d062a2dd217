package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// ExprString is the compact single-line diagnostic form used in logs.
// Bound placeholders show as #up.index and pattern variables as $index;
// Elm source comes out of the backend package instead.
func ExprString[V Variable[V]](e Expr[V]) string {
	sb := &strings.Builder{}
	showExprWalker[V](sb, e)
	return sb.String()
}

func showExprWalker[V Variable[V]](sb *strings.Builder, e Expr[V]) {
	switch e := e.(type) {
	case Var[V]:
		sb.WriteString(e.Value.String())
	case Local[V]:
		fmt.Fprintf(sb, "#%d.%d", e.Up, e.Index)
	case Global[V]:
		sb.WriteString(e.Name.String())
	case App[V]:
		sb.WriteString("(")
		showExprWalker[V](sb, e.Fn)
		sb.WriteString(" ")
		showExprWalker[V](sb, e.Arg)
		sb.WriteString(")")
	case Let[V]:
		sb.WriteString("(let ")
		showExprWalker[V](sb, e.Value)
		sb.WriteString(" in ")
		showExprWalker[V](sb, e.Body.Body)
		sb.WriteString(")")
	case Lam[V]:
		sb.WriteString("(\\ ")
		showExprWalker[V](sb, e.Body.Body)
		sb.WriteString(")")
	case Record[V]:
		sb.WriteString("{")
		for i, field := range e.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(string(field.Name))
			sb.WriteString(" = ")
			showExprWalker[V](sb, field.Value)
		}
		sb.WriteString("}")
	case Proj[V]:
		sb.WriteString("." + string(e.Field))
	case Case[V]:
		sb.WriteString("(case ")
		showExprWalker[V](sb, e.Scrutinee)
		for _, branch := range e.Branches {
			sb.WriteString(" | ")
			sb.WriteString(PatternString(branch.Pattern))
			sb.WriteString(" -> ")
			showExprWalker[V](sb, branch.Body.Body)
		}
		sb.WriteString(")")
	case List[V]:
		sb.WriteString("[")
		for i, item := range e.Items {
			if i > 0 {
				sb.WriteString(", ")
			}
			showExprWalker[V](sb, item)
		}
		sb.WriteString("]")
	case String[V]:
		sb.WriteString(strconv.Quote(e.Value))
	case Int[V]:
		sb.WriteString(strconv.FormatInt(e.Value, 10))
	case Float[V]:
		sb.WriteString(strconv.FormatFloat(e.Value, 'g', -1, 64))
	default:
		fmt.Fprintf(sb, "<%T>", e)
	}
}

// PatternString is the diagnostic form of a pattern.
func PatternString(p Pattern[int]) string {
	switch p := p.(type) {
	case VarPattern[int]:
		return "$" + strconv.Itoa(p.Value)
	case WildcardPattern[int]:
		return "_"
	case ConPattern[int]:
		sb := &strings.Builder{}
		sb.WriteString("(")
		sb.WriteString(p.Name.String())
		for _, arg := range p.Args {
			sb.WriteString(" ")
			sb.WriteString(PatternString(arg))
		}
		sb.WriteString(")")
		return sb.String()
	case IntPattern[int]:
		return strconv.FormatInt(p.Value, 10)
	case StringPattern[int]:
		return strconv.Quote(p.Value)
	case FloatPattern[int]:
		return strconv.FormatFloat(p.Value, 'g', -1, 64)
	}
	return fmt.Sprintf("<%T>", p)
}

// TypeString is the diagnostic form of a type expression.
func TypeString[V Variable[V]](t Type[V]) string {
	switch t := t.(type) {
	case TypeVar[V]:
		return t.Value.String()
	case TypeBound[V]:
		return "$" + strconv.Itoa(t.Index)
	case TypeGlobal[V]:
		return t.Name.String()
	case TypeApp[V]:
		return "(" + TypeString[V](t.Fn) + " " + TypeString[V](t.Arg) + ")"
	case FnType[V]:
		return "(" + TypeString[V](t.From) + " -> " + TypeString[V](t.To) + ")"
	case RecordType[V]:
		sb := &strings.Builder{}
		sb.WriteString("{")
		for i, field := range t.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(string(field.Name))
			sb.WriteString(" : ")
			sb.WriteString(TypeString[V](field.Type))
		}
		sb.WriteString("}")
		return sb.String()
	}
	return fmt.Sprintf("<%T>", t)
}
