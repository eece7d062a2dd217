package backend

import (
	"github.com/cottand/elmgen/ir"
	"github.com/cottand/elmgen/name"
	"github.com/cottand/elmgen/util"
	"github.com/hashicorp/go-set/v3"
	"github.com/samber/lo"
	"slices"
	"strings"
)

// Modules renders definitions into complete files, grouped by the module of
// each definition's name. Definitions keep their given order within a
// module.
func Modules(defs []ir.Definition) map[name.Module]string {
	grouped := map[name.Module][]ir.Definition{}
	var order []name.Module
	for _, def := range defs {
		module := def.DefinedName().Module
		if _, seen := grouped[module]; !seen {
			order = append(order, module)
		}
		grouped[module] = append(grouped[module], def)
	}
	rendered := make(map[name.Module]string, len(order))
	for _, module := range order {
		rendered[module] = Module(module, grouped[module])
	}
	return rendered
}

// Module renders one complete file: header, imports, then the definitions
// two blank lines apart. References into the module itself lose their
// qualification; references into other modules produce import lines.
func Module(module name.Module, defs []ir.Definition) string {
	logger.Debug("rendering module", "module", module, "definitions", len(defs))

	exposing := lo.Map(defs, func(def ir.Definition, _ int) string {
		if _, isCustom := def.(ir.CustomType); isCustom {
			return def.DefinedName().Name + "(..)"
		}
		return def.DefinedName().Name
	})
	slices.Sort(exposing)

	unqualify := func(q name.Qualified) name.Qualified {
		if q.Module == module {
			return name.Qualified{Name: q.Name}
		}
		return q
	}

	imports := set.New[name.Module](0)
	bodies := make([]string, len(defs))
	for i, def := range defs {
		for referenced := range util.MapIter(ir.DefinitionGlobals(def), func(q name.Qualified) name.Module { return q.Module }) {
			if referenced != "" && referenced != module && !implicitImports[referenced] {
				imports.Insert(referenced)
			}
		}
		bodies[i] = Definition(ir.RenameDefinitionGlobals(def, unqualify))
	}
	importList := imports.Slice()
	slices.Sort(importList)

	sb := &strings.Builder{}
	sb.WriteString("module ")
	sb.WriteString(string(module))
	sb.WriteString(" exposing (")
	sb.WriteString(strings.Join(exposing, ", "))
	sb.WriteString(")\n")
	if len(importList) > 0 {
		sb.WriteString("\n")
		for _, imported := range importList {
			sb.WriteString("import ")
			sb.WriteString(string(imported))
			sb.WriteString("\n")
		}
	}
	for _, body := range bodies {
		sb.WriteString("\n\n")
		sb.WriteString(body)
		sb.WriteString("\n")
	}
	return sb.String()
}
