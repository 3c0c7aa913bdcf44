package ninja

import (
	"maps"
	"slices"
	"strings"

	"github.com/ardnew/mkdef/model"
	"github.com/ardnew/mkdef/pkg"
	"github.com/ardnew/mkdef/tree"
)

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

// appBundleBuildStatement emits the staging bundle statements followed by
// the info.properties and packaging statements.
func (g *Generator) appBundleBuildStatement(app *model.App) *tree.Error {
	bundled := &model.FileSystemObjectSet{}

	if err := g.stagingBundleStatements(app, bundled); err != nil {
		return err
	}

	stagingDir := "$builddir/" + pkg.Combine(app.WorkingDir, "staging")
	infoPath := stagingDir + "/info.properties"

	// info.properties is the last thing added to the staging area, so it
	// depends on every staged file and executable.
	g.printf("build %s : MakeAppInfoProperties |", infoPath)

	for _, obj := range bundled.All() {
		g.printf(" %s", obj.Dest)
	}

	for _, name := range sortedKeys(app.Executables) {
		g.printf(" $builddir/%s/staging/read-only/bin/%s",
			app.WorkingDir, app.Executables[name].Name)
	}

	g.printf("\n")
	g.printf("  name = %s\n", app.Name)
	g.printf("  version = %s\n", app.Version)
	g.printf("  workingDir = $builddir/%s\n\n", app.WorkingDir)

	outputFile := pkg.Combine(g.Params.OutputDir, app.Name) +
		".$target.update"

	g.printf("build %s: PackApp %s\n", outputFile, infoPath)
	g.printf("  name = %s\n", app.Name)
	g.printf("  adefPath = %s\n", app.DefFile.Path)
	g.printf("  version = %s\n", app.Version)
	g.printf("  workingDir = $builddir/%s\n\n", app.WorkingDir)

	if g.Params.BinPack {
		g.binPackStatements(app, stagingDir)
	}

	return nil
}

// binPackStatements emits the statements that produce a binary app pack:
// the interface files are copied in alongside the staged tree so the pack
// can be rebuilt against without its sources.
func (g *Generator) binPackStatements(app *model.App, stagingDir string) {
	packDir := "$builddir/" + app.Name
	interfacesDir := packDir + "/interfaces"

	apiPaths := sortedKeys(g.apiFiles)

	for _, path := range apiPaths {
		g.printf("build %s/%s: CopyFile %s\n\n",
			interfacesDir, pkg.GetLastNode(path), path)
	}

	outputFile := pkg.Combine(g.Params.OutputDir, app.Name) + ".$target.app"

	g.printf("build %s: BinPackApp %s/info.properties", outputFile, stagingDir)

	if len(apiPaths) > 0 {
		g.printf(" ||")

		for _, path := range apiPaths {
			g.printf(" %s/%s", interfacesDir, pkg.GetLastNode(path))
		}
	}

	g.printf("\n")
	g.printf("  adefPath = %s\n", app.DefFile.Path)
	g.printf("  stagingDir = %s\n", stagingDir)
	g.printf("  workingDir = %s\n\n", packDir)
}

// regenStatement emits the statement that regenerates this build script
// when any definition file it was derived from changes.
func (g *Generator) regenStatement(app *model.App) {
	deps := map[string]bool{app.DefFile.Path: true}

	for _, component := range app.Components {
		collectRegenDeps(component, deps)
	}

	g.printf("rule RegenNinjaScript\n")
	g.printf("  description = Regenerating build script\n")
	g.printf("  generator = 1\n")
	g.printf("  command = %s\n\n", strings.Join(g.Params.Args, " "))

	g.printf("build %s: RegenNinjaScript |",
		pkg.Combine(g.Params.WorkingDir, "build.ninja"))

	for _, path := range sortedKeys(deps) {
		g.printf(" %s", path)
	}

	g.printf("\n")
}

// collectRegenDeps adds the component's cdef and every api file it uses,
// directly or through usetypes includes, to the dependency set.
func collectRegenDeps(c *model.Component, deps map[string]bool) {
	if deps[c.DefFile.Path] {
		return
	}

	deps[c.DefFile.Path] = true

	for _, api := range c.TypesOnlyApis {
		deps[api.ApiFile.Path] = true
	}

	for _, api := range c.ClientApis {
		deps[api.ApiFile.Path] = true
	}

	for _, api := range c.ServerApis {
		deps[api.ApiFile.Path] = true
	}

	for _, apiFile := range c.ClientUsetypesApis {
		deps[apiFile.Path] = true
	}

	for _, apiFile := range c.ServerUsetypesApis {
		deps[apiFile.Path] = true
	}

	for _, sub := range c.SubComponents {
		collectRegenDeps(sub, deps)
	}
}
