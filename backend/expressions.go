package backend

import (
	"fmt"
	"github.com/cottand/elmgen/ir"
	"github.com/cottand/elmgen/name"
	"strconv"
	"strings"
)

// renderExpr renders e with minPrec as the ambient precedence floor and
// indent as the column the current line starts at. Constructs whose own
// precedence falls strictly below minPrec wrap themselves in parentheses;
// multi-line constructs indent relative to indent.
func renderExpr[V ir.Variable[V]](e ir.Expr[V], env *Environment, minPrec, indent int) string {
	switch e := e.(type) {
	case ir.Var[V]:
		return e.Value.String()
	case ir.Local[V]:
		return string(env.Resolve(e.Up, e.Index))
	case ir.Global[V]:
		if _, isOperator := fixities[e.Name]; isOperator {
			return "(" + e.Name.Name + ")"
		}
		return shortName(e.Name)
	case ir.App[V]:
		return renderApp(e, env, minPrec, indent)
	case ir.Let[V]:
		return withParensIf(minPrec > 0, renderLet(e, env, indent))
	case ir.Lam[V]:
		return withParensIf(minPrec > 0, renderLam(e, env, indent))
	case ir.Record[V]:
		if len(e.Fields) == 0 {
			return "{}"
		}
		fields := make([]string, len(e.Fields))
		for i, field := range e.Fields {
			fields[i] = string(field.Name) + " = " + renderExpr(field.Value, env, 0, indent)
		}
		return "{ " + strings.Join(fields, ", ") + " }"
	case ir.Proj[V]:
		return "." + string(e.Field)
	case ir.Case[V]:
		return withParensIf(minPrec > 0, renderCase(e, env, indent))
	case ir.List[V]:
		if len(e.Items) == 0 {
			return "[]"
		}
		items := make([]string, len(e.Items))
		for i, item := range e.Items {
			items[i] = renderExpr(item, env, 0, indent)
		}
		return "[ " + strings.Join(items, ", ") + " ]"
	case ir.String[V]:
		return `"` + e.Value + `"`
	case ir.Int[V]:
		return strconv.FormatInt(e.Value, 10)
	case ir.Float[V]:
		return formatFloat(e.Value)
	}
	panic(fmt.Sprintf("backend: unexpected expression type %T", e))
}

// renderApp flattens the application spine and decides between operator
// layout and plain prefix application.
func renderApp[V ir.Variable[V]](e ir.App[V], env *Environment, minPrec, indent int) string {
	head, args := spine[V](e)
	if global, ok := head.(ir.Global[V]); ok {
		if fix, isOperator := fixities[global.Name]; isOperator {
			return renderOperator(global.Name, fix, args, env, minPrec, indent)
		}
	}
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, renderExpr(head, env, atomPrec, indent))
	for _, arg := range args {
		parts = append(parts, renderExpr(arg, env, appPrec+1, indent))
	}
	return withParensIf(minPrec > appPrec, strings.Join(parts, " "))
}

// renderOperator prints op according to how saturated it is: infix with
// exactly two arguments, an applied section below that, and a saturated
// parenthesised pair applied prefix-style above.
func renderOperator[V ir.Variable[V]](op name.Qualified, fix fixity, args []ir.Expr[V], env *Environment, minPrec, indent int) string {
	switch {
	case len(args) == 0:
		return "(" + op.Name + ")"
	case len(args) == 1:
		section := "(" + op.Name + ") " + renderExpr(args[0], env, appPrec+1, indent)
		return withParensIf(minPrec > appPrec, section)
	case len(args) > 2:
		parts := make([]string, 0, len(args)-1)
		parts = append(parts, renderOperator(op, fix, args[:2], env, atomPrec, indent))
		for _, arg := range args[2:] {
			parts = append(parts, renderExpr(arg, env, appPrec+1, indent))
		}
		return withParensIf(minPrec > appPrec, strings.Join(parts, " "))
	}

	leftPrec, rightPrec := fix.prec+1, fix.prec+1
	switch fix.assoc {
	case assocLeft:
		leftPrec = fix.prec
	case assocRight:
		rightPrec = fix.prec
	}
	left := renderExpr(args[0], env, leftPrec, indent)
	if fix.newline {
		right := renderExpr(args[1], env, rightPrec, indent+4)
		return withParensIf(minPrec > fix.prec, left+" "+op.Name+"\n"+pad(indent+4)+right)
	}
	right := renderExpr(args[1], env, rightPrec, indent)
	return withParensIf(minPrec > fix.prec, left+" "+op.Name+" "+right)
}

// renderLet flattens a chain of Lets into a single let block. Each bound
// value renders under the environment of its own position: bindings see the
// names of the bindings above them, the body sees all of them.
func renderLet[V ir.Variable[V]](e ir.Let[V], env *Environment, indent int) string {
	sb := &strings.Builder{}
	sb.WriteString("let\n")
	var body ir.Expr[V] = e
	for {
		let, ok := body.(ir.Let[V])
		if !ok {
			break
		}
		child, chosen := env.Extend()
		sb.WriteString(pad(indent + 4))
		sb.WriteString(string(chosen))
		sb.WriteString(" =\n")
		sb.WriteString(pad(indent + 8))
		sb.WriteString(renderExpr(let.Value, env, 0, indent+8))
		sb.WriteString("\n")
		env = child
		body = let.Body.Body
	}
	sb.WriteString(pad(indent))
	sb.WriteString("in\n")
	sb.WriteString(pad(indent))
	sb.WriteString(renderExpr(body, env, 0, indent))
	return sb.String()
}

// renderLam flattens nested Lams into one `\a b -> body`.
func renderLam[V ir.Variable[V]](e ir.Lam[V], env *Environment, indent int) string {
	var args []string
	var body ir.Expr[V] = e
	for {
		lam, ok := body.(ir.Lam[V])
		if !ok {
			break
		}
		child, chosen := env.Extend()
		args = append(args, string(chosen))
		env = child
		body = lam.Body.Body
	}
	return "\\" + strings.Join(args, " ") + " -> " + renderExpr(body, env, 0, indent)
}

// renderCase prints one arm per branch, blank-line separated. Every branch
// extends env on its own: a sibling's names never leak in.
func renderCase[V ir.Variable[V]](e ir.Case[V], env *Environment, indent int) string {
	sb := &strings.Builder{}
	sb.WriteString("case ")
	sb.WriteString(renderExpr(e.Scrutinee, env, 0, indent))
	sb.WriteString(" of")
	for i, branch := range e.Branches {
		if i > 0 {
			sb.WriteString("\n")
		}
		branchEnv := env.ExtendForPattern(branch.Pattern)
		sb.WriteString("\n")
		sb.WriteString(pad(indent + 4))
		sb.WriteString(renderPattern(branch.Pattern, branchEnv, 0))
		sb.WriteString(" ->\n")
		sb.WriteString(pad(indent + 8))
		sb.WriteString(renderExpr(branch.Body.Body, branchEnv, 0, indent+8))
	}
	return sb.String()
}
