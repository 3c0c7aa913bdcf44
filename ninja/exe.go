package ninja

import (
	"fmt"
	"os"
	"strings"

	"github.com/ardnew/mkdef/model"
	"github.com/ardnew/mkdef/pkg"
	"github.com/ardnew/mkdef/tree"
)

// exeBuildStatements emits the main-source generation, compile, and link
// statements for every executable in the app.
func (g *Generator) exeBuildStatements(app *model.App) *tree.Error {
	for _, name := range sortedKeys(app.Executables) {
		exe := app.Executables[name]

		if !exe.HasCOrCxxCode {
			continue
		}

		if err := g.exeMainSource(app, exe); err != nil {
			return err
		}

		mainSrc := "$builddir/" + app.WorkingDir + "/src/" + exe.Name +
			"/_main.c"
		mainObj := "$builddir/" + app.WorkingDir + "/" + exe.MainObjectFile()

		g.printf("build %s : CompileC %s\n\n", mainObj, mainSrc)

		inputs := []string{mainObj}
		inputs = append(inputs, componentLibs(exe, map[string]bool{})...)

		g.printf("build %s : Link %s\n\n",
			g.exeOutputPath(app, exe), strings.Join(inputs, " "))
	}

	return nil
}

// exeOutputPath returns the link output path for an executable, before it
// is bundled into the staging area.
func (g *Generator) exeOutputPath(app *model.App, exe *model.Executable) string {
	return "$builddir/" + app.WorkingDir + "/bin/" + exe.Name
}

// componentLibs collects the shared-library paths of an executable's
// component instances, including subcomponents, deduplicated by component
// directory.
func componentLibs(exe *model.Executable, seen map[string]bool) []string {
	var libs []string

	var collect func(c *model.Component)
	collect = func(c *model.Component) {
		if seen[c.Dir] {
			return
		}

		seen[c.Dir] = true

		if c.HasCOrCxxCode() {
			libs = append(libs, "$builddir/"+c.Lib)
		}

		for _, sub := range c.SubComponents {
			collect(sub)
		}
	}

	for _, instance := range exe.ComponentInstances {
		collect(instance.Component)
	}

	return libs
}

// exeMainSource writes the generated main source file for an executable.
// The main runs each component instance's init function in declaration
// order.
func (g *Generator) exeMainSource(app *model.App, exe *model.Executable) *tree.Error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "/* Generated main for executable '%s'. Do not edit. */\n\n",
		exe.Name)

	names := make([]string, 0, len(exe.ComponentInstances))

	for _, instance := range exe.ComponentInstances {
		if !instance.Component.HasCOrCxxCode() {
			continue
		}

		name := pkg.GetIdentifierSafeName(instance.Component.Name)
		names = append(names, name)

		fmt.Fprintf(&sb, "extern void %s_ComponentInit(void);\n", name)
	}

	sb.WriteString("\nint main(int argc, const char** argv)\n{\n")
	sb.WriteString("    (void)argc;\n    (void)argv;\n\n")

	for _, name := range names {
		fmt.Fprintf(&sb, "    %s_ComponentInit();\n", name)
	}

	sb.WriteString("\n    return 0;\n}\n")

	dir := pkg.Combine(g.Params.WorkingDir,
		pkg.Combine(app.WorkingDir, "src/"+exe.Name))

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return tree.NewError(tree.InternalError,
			"Failed to create directory '"+dir+"'.").Wrap(err)
	}

	path := pkg.Combine(dir, "_main.c")

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return tree.NewError(tree.InternalError,
			"Failed to write generated source '"+path+"'.").Wrap(err)
	}

	return nil
}
