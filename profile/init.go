package profile

// Config functions return all supported pprof configuration parameters.
type Config func() (mode, path string, quiet bool)

// set returns a Config with the given parameters replacing those of the
// receiver wherever the corresponding replace flag is true.
func (c Config) set(mode, path string, quiet, replaceQuiet bool) Config {
	m, p, q := c()

	if mode != "" {
		m = mode
	}

	if path != "" {
		p = path
	}

	if replaceQuiet {
		q = quiet
	}

	return func() (string, string, bool) { return m, p, q }
}

// Start initializes the profiler and returns an interface for stopping it.
//
// Mode selects the profiler mode, and path the output directory where
// profiling data is written.
//
// If the pprof build tag or the mode is unset, Start returns a no-op
// implementation. Both Start and Stop are always safely callable.
func (c Config) Start() interface{ Stop() } {
	mode, path, quiet := c()

	if mode == "" {
		return noop{}
	}

	return start(mode, path, quiet)
}

// WithMode returns a functional option for setting a profiler's mode.
func WithMode(mode string) func(Config) Config {
	return func(c Config) Config {
		return c.set(mode, "", false, false)
	}
}

// WithPath returns a functional option for setting a profiler's output path.
func WithPath(path string) func(Config) Config {
	return func(c Config) Config {
		return c.set("", path, false, false)
	}
}

// WithQuiet returns a functional option for setting a profiler's quiet flag.
func WithQuiet(quiet bool) func(Config) Config {
	return func(c Config) Config {
		return c.set("", "", quiet, true)
	}
}

type noop struct{}

func (noop) Stop() {}
