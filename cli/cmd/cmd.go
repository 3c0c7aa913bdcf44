package cmd

import (
	"log/slog"

	"github.com/ardnew/mkdef/log"
	"github.com/ardnew/mkdef/model"
	"github.com/ardnew/mkdef/modeller"
	"github.com/ardnew/mkdef/params"
	"github.com/ardnew/mkdef/pkg"
)

// buildFlags holds the build parameters shared by every command that
// models an application definition.
type buildFlags struct {
	Adef string `arg:"" help:"Application definition (.adef) file" type:"existingfile"`

	Target      string `default:"localhost" help:"Build target name."                         short:"t"`
	TargetsFile string `                    help:"Toolchain configuration file."              short:"T" optional:"" type:"existingfile"`
	OutputDir   string `default:"."         help:"Output directory for the packaged app."     short:"o"             type:"path"`
	WorkingDir  string `                    help:"Build working directory."                   short:"w"             type:"path"`

	InterfaceSearch []string `help:"Directory to search for interface (.api) files." short:"i" type:"existingdir"`
	ComponentSearch []string `help:"Directory to search for components and sources." short:"c" type:"existingdir"`

	CFlags   string `help:"Flags passed to the C compiler."`
	CxxFlags string `help:"Flags passed to the C++ compiler."`
	LdFlags  string `help:"Flags passed to the linker."`

	GenerateCode bool `help:"Generate code without producing build statements." name:"generate-code"`
	BinPack      bool `help:"Additionally pack a binary app for distribution."  name:"bin-pack"`

	Verbose bool `help:"Print a summary of the application model." short:"v"`
}

// params converts the parsed flags into build parameters, resolving the
// target toolchain and finalizing the search paths.
func (f *buildFlags) params() (*params.Params, error) {
	p := params.New()

	p.Verbose = f.Verbose
	p.Target = f.Target
	p.InterfaceDirs = f.InterfaceSearch
	p.SourceDirs = f.ComponentSearch
	p.OutputDir = f.OutputDir
	p.WorkingDir = f.WorkingDir
	p.CFlags = f.CFlags
	p.CxxFlags = f.CxxFlags
	p.LdFlags = f.LdFlags
	p.CodeGenOnly = f.GenerateCode
	p.BinPack = f.BinPack

	if p.WorkingDir == "" {
		p.WorkingDir = "./_build_" +
			pkg.RemoveSuffix(pkg.GetLastNode(f.Adef), ".adef") +
			"." + p.Target
	}

	p.FinalizeSearchPaths()

	if err := p.ResolveToolchain(f.TargetsFile); err != nil {
		return nil, err
	}

	return p, nil
}

// buildModel parses and models the application definition, then resolves
// its client-side interface bindings. Limit conflicts are reported as
// warnings, not errors.
func (f *buildFlags) buildModel(
	logger log.Logger,
	p *params.Params,
) (*model.App, *modeller.Context, error) {
	ctx := modeller.NewContext(p)

	app, err := ctx.GetApp(f.Adef)
	if err != nil {
		return nil, nil, err
	}

	if err := modeller.EnsureClientInterfacesSatisfied(app); err != nil {
		return nil, nil, err
	}

	for _, warning := range modeller.CheckForLimitsConflicts(app) {
		logger.Warn(warning, slog.String("app", app.Name))
	}

	return app, ctx, nil
}
