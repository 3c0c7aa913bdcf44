package ninja

import (
	"strings"

	"github.com/ardnew/mkdef/model"
	"github.com/ardnew/mkdef/pkg"
)

// componentBuildStatements emits the compile and link statements for a
// component and its subcomponents. Components shared between executables
// (or pulled in by more than one component) build once; built tracks the
// component directories already emitted.
func (g *Generator) componentBuildStatements(c *model.Component, built map[string]bool) {
	if built[c.Dir] {
		return
	}

	built[c.Dir] = true

	for _, sub := range c.SubComponents {
		g.componentBuildStatements(sub, built)
	}

	if !c.HasCOrCxxCode() {
		return
	}

	var objs []string

	for _, src := range c.CSources {
		obj := g.objectPath(c, src)
		objs = append(objs, obj)

		g.printf("build %s : CompileC %s\n", obj, src)
		g.flagOverride("cFlags", c.CFlags)
		g.printf("\n")
	}

	for _, src := range c.CxxSources {
		obj := g.objectPath(c, src)
		objs = append(objs, obj)

		g.printf("build %s : CompileCxx %s\n", obj, src)
		g.flagOverride("cxxFlags", c.CxxFlags)
		g.printf("\n")
	}

	g.printf("build $builddir/%s : Link %s\n", c.Lib, strings.Join(objs, " "))
	g.printf("  linkFlags = -shared -fPIC\n")
	g.linkOverride(c)
	g.printf("\n")
}

// objectPath returns the object file path for one of the component's
// source files.
func (g *Generator) objectPath(c *model.Component, src string) string {
	return "$builddir/" + c.WorkingDir + "/obj/" + pkg.GetLastNode(src) + ".o"
}

// flagOverride emits a per-statement compiler flag override when the
// component declares flags of its own.
func (g *Generator) flagOverride(name string, flags []string) {
	if len(flags) == 0 {
		return
	}

	g.printf("  %s = $%s %s\n", name, name, strings.Join(flags, " "))
}

// linkOverride emits a per-statement linker flag override carrying the
// component's own ldflags and required libraries.
func (g *Generator) linkOverride(c *model.Component) {
	if len(c.LdFlags) == 0 && len(c.RequiredLibs) == 0 {
		return
	}

	var sb strings.Builder

	sb.WriteString("  ldFlags = $ldFlags")

	for _, flag := range c.LdFlags {
		sb.WriteString(" ")
		sb.WriteString(flag)
	}

	for _, lib := range c.RequiredLibs {
		sb.WriteString(" -l")
		sb.WriteString(lib)
	}

	g.printf("%s\n", sb.String())
}
