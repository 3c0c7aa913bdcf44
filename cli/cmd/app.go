package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/mkdef/log"
	"github.com/ardnew/mkdef/modeller"
	"github.com/ardnew/mkdef/ninja"
)

// App generates a ninja build script for an application definition.
type App struct {
	buildFlags
}

func (a *App) Run(_ context.Context, logger log.Logger) error {
	p, err := a.params()
	if err != nil {
		return err
	}

	logger.Debug("resolved toolchain",
		slog.String("target", p.Target),
		slog.String("cc", p.Toolchain.CCompiler),
	)

	app, ctx, buildErr := a.buildModel(logger, p)
	if buildErr != nil {
		return buildErr
	}

	if p.Verbose {
		modeller.PrintSummary(os.Stdout, app)
	}

	if genErr := ninja.Generate(app, ctx.ApiFiles(), p); genErr != nil {
		return genErr
	}

	logger.Info("generated build script",
		slog.String("app", app.Name),
		slog.String("workingDir", p.WorkingDir),
	)

	return nil
}
