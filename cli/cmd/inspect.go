package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/mkdef/log"
	"github.com/ardnew/mkdef/modeller"
)

// Inspect models an application definition and prints its summary without
// generating anything.
type Inspect struct {
	buildFlags
}

func (c *Inspect) Run(_ context.Context, logger log.Logger) error {
	p, err := c.params()
	if err != nil {
		return err
	}

	app, _, buildErr := c.buildModel(logger, p)
	if buildErr != nil {
		return buildErr
	}

	logger.Debug("modelled application",
		slog.String("app", app.Name),
		slog.String("config", app.ConfigFilePath()),
	)

	modeller.PrintSummary(os.Stdout, app)

	return nil
}
