// Package ninja emits ninja build scripts realizing an application model:
// compiling and linking its components and executables, staging its
// bundled files, and packaging the result.
package ninja

import (
	"fmt"
	"os"
	"strings"

	"github.com/ardnew/mkdef/model"
	"github.com/ardnew/mkdef/params"
	"github.com/ardnew/mkdef/pkg"
	"github.com/ardnew/mkdef/tree"
)

// Generator accumulates the text of one build script.
type Generator struct {
	Params *params.Params

	// apiFiles is the registry of every .api file the model pulled in,
	// keyed by path. Binary packs copy these in alongside the staged tree.
	apiFiles map[string]*model.ApiFile

	script strings.Builder
}

// NewGenerator creates a build script generator for the given build.
func NewGenerator(p *params.Params, apiFiles map[string]*model.ApiFile) *Generator {
	return &Generator{Params: p, apiFiles: apiFiles}
}

func (g *Generator) printf(format string, args ...any) {
	fmt.Fprintf(&g.script, format, args...)
}

// String returns the script text generated so far.
func (g *Generator) String() string { return g.script.String() }

// commentHeader starts the script with its do-not-edit banner.
func (g *Generator) commentHeader(app *model.App) {
	g.printf("# Build script for application '%s'\n\n", app.Name)
	g.printf("# == Auto-generated file.  Do not edit. ==\n\n")
}

// fileHeader emits the file-level variable definitions.
func (g *Generator) fileHeader() {
	var includes strings.Builder

	fmt.Fprintf(&includes, " -I %s", g.Params.WorkingDir)

	for _, dir := range g.Params.InterfaceDirs {
		fmt.Fprintf(&includes, " -I%s", dir)
	}

	g.printf("builddir =%s\n\n", g.Params.WorkingDir)
	g.printf("cc = %s\n\n", g.Params.Toolchain.CCompiler)
	g.printf("cxx = %s\n\n", g.Params.Toolchain.CxxCompiler)
	g.printf("cFlags =%s%s\n\n", flagString(g.Params.CFlags), includes.String())
	g.printf("cxxFlags =%s%s\n\n", flagString(g.Params.CxxFlags), includes.String())
	g.printf("ldFlags =%s\n\n", flagString(g.Params.LdFlags))
	g.printf("target = %s\n\n", g.Params.Target)
}

func flagString(flags string) string {
	if flags == "" {
		return ""
	}

	return " " + flags
}

// Generate emits the complete build script for an application and writes
// it to build.ninja in the build working directory. apiFiles is the
// modelling context's .api file registry.
func Generate(app *model.App, apiFiles map[string]*model.ApiFile, p *params.Params) *tree.Error {
	g := NewGenerator(p, apiFiles)

	g.commentHeader(app)
	g.fileHeader()
	g.buildRules()

	if !p.CodeGenOnly {
		built := map[string]bool{}
		for _, component := range app.Components {
			g.componentBuildStatements(component, built)
		}

		if err := g.exeBuildStatements(app); err != nil {
			return err
		}

		if err := g.appBundleBuildStatement(app); err != nil {
			return err
		}
	}

	g.regenStatement(app)

	path := pkg.Combine(p.WorkingDir, "build.ninja")

	if err := os.MkdirAll(p.WorkingDir, 0o755); err != nil {
		return tree.NewError(tree.InternalError, err.Error())
	}

	if err := os.WriteFile(path, []byte(g.String()), 0o644); err != nil {
		return tree.NewError(tree.InternalError,
			"Failed to write build script '"+path+"'.").Wrap(err)
	}

	return nil
}
