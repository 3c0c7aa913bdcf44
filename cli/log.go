package cli

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/mkdef/log"
)

type logConfig struct {
	Level      string `default:"warn" enum:"trace,debug,info,warn,error" help:"Set log level."`
	Format     string `default:"text" enum:"text,json"                   help:"Set log format."`
	TimeLayout string `default:"none"                                    help:"Set timestamp format."`
	Caller     bool   `default:"false"                                   help:"Include caller information." negatable:""`
	Pretty     bool   `default:"true"                                    help:"Enable colorized output."    negatable:""`
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

// make builds the logger from the parsed flag values. Diagnostics go to
// stderr so generated output on stdout stays clean.
func (f *logConfig) make() log.Logger {
	return log.Make(os.Stderr,
		log.WithLevel(log.ParseLevel(f.Level)),
		log.WithFormat(log.ParseFormat(f.Format)),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)
}
