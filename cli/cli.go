package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/mkdef/cli/cmd"
	"github.com/ardnew/mkdef/pkg"
)

// CLI is the top-level command-line interface for mkdef.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	App     cmd.App     `cmd:"" default:"withargs" help:"Generate a build script from an application definition"`
	Inspect cmd.Inspect `cmd:""                    help:"Model an application definition and print its summary"`
}

// Run executes the mkdef CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon
// completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(resolve, configPath(baseConfig)),
		cli.Pprof.vars(),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The logger is built only after parsing so that flag and config-file
	// values both apply.
	logger := cli.Log.make()

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx, logger)()

	// Execute the selected command
	return ktx.Run(ctx, logger)
}
