package backend

import (
	"fmt"
	"github.com/cottand/elmgen/ir"
	"strings"
)

// Definition renders a single top-level definition, signature included.
func Definition(def ir.Definition) string {
	switch def := def.(type) {
	case ir.Constant:
		return renderConstant(def)
	case ir.CustomType:
		return renderCustomType(def)
	case ir.Alias:
		return renderAlias(def)
	}
	panic(fmt.Sprintf("backend: unexpected definition type %T", def))
}

func renderConstant(def ir.Constant) string {
	typeEnv, _ := typeParamEnv(def.Params)
	sb := &strings.Builder{}
	sb.WriteString(def.Name.Name)
	sb.WriteString(" : ")
	sb.WriteString(renderType(def.Type, typeEnv, 0, 0))
	sb.WriteString("\n")
	sb.WriteString(def.Name.Name)

	// leading lambdas become the equation's arguments
	env := NewEnvironment()
	var body ir.Closed = def.Body
	for {
		lam, ok := body.(ir.Lam[ir.Never])
		if !ok {
			break
		}
		child, chosen := env.Extend()
		sb.WriteString(" ")
		sb.WriteString(string(chosen))
		env = child
		body = lam.Body.Body
	}
	sb.WriteString(" =\n")
	sb.WriteString(pad(4))
	sb.WriteString(renderExpr(body, env, 0, 4))
	return sb.String()
}

func renderCustomType(def ir.CustomType) string {
	typeEnv, params := typeParamEnv(def.Params)
	sb := &strings.Builder{}
	sb.WriteString("type ")
	sb.WriteString(def.Name.Name)
	for _, param := range params {
		sb.WriteString(" ")
		sb.WriteString(param)
	}
	for i, con := range def.Constructors {
		sb.WriteString("\n")
		sb.WriteString(pad(4))
		if i == 0 {
			sb.WriteString("= ")
		} else {
			sb.WriteString("| ")
		}
		sb.WriteString(string(con.Name))
		for _, arg := range con.Args {
			sb.WriteString(" ")
			sb.WriteString(renderType(arg, typeEnv, appPrec+1, 4))
		}
	}
	return sb.String()
}

func renderAlias(def ir.Alias) string {
	typeEnv, params := typeParamEnv(def.Params)
	sb := &strings.Builder{}
	sb.WriteString("type alias ")
	sb.WriteString(def.Name.Name)
	for _, param := range params {
		sb.WriteString(" ")
		sb.WriteString(param)
	}
	sb.WriteString(" =\n")
	sb.WriteString(pad(4))
	sb.WriteString(renderType(def.Type, typeEnv, 0, 4))
	return sb.String()
}

// typeParamEnv names a definition's type parameters: slot i gets the i-th
// supply name. Also returns the names in slot order for rendering headers.
func typeParamEnv(params int) (*Environment, []string) {
	vars := make([]ir.Pattern[int], params)
	for i := range vars {
		vars[i] = ir.VarPattern[int]{Value: i}
	}
	env := NewEnvironment().ExtendForPattern(ir.ConPattern[int]{Args: vars})
	names := make([]string, params)
	for i := range names {
		names[i] = string(env.Resolve(0, i))
	}
	return env, names
}
