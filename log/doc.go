// Package log provides a simplified logging interface based on [log/slog].
//
// Loggers are configured once at creation time using functional options
// and are immutable afterwards: build tools configure logging from the
// command line at startup and never reconfigure it mid-run.
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText))
//	logger.Info("modelled application", slog.String("app", name))
//
// Derived loggers carrying extra attributes come from [Logger.With]:
//
//	logger = logger.With(slog.String("component", name))
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Messages below the configured level are
// discarded. Output is text (optionally colorized) or JSON.
package log
