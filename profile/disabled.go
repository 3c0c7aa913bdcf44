//go:build !pprof

package profile

// Modes returns nil when built without the pprof build tag.
func Modes() []string { return nil }

// start always returns the no-op profiler when built without the pprof
// build tag.
func start(_, _ string, _ bool) interface{ Stop() } {
	return noop{}
}
