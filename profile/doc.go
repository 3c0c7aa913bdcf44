// Package profile provides optional runtime profiling for mkdef.
//
// # Overview
//
// This package integrates [github.com/pkg/profile] to provide runtime
// profiling with conditional compilation support. Profiling is optional
// and must be enabled at build time using the "pprof" build tag.
//
// When built without the tag (the default), all operations are no-ops with
// zero runtime overhead.
//
// # Available Profiling Modes
//
// The following profiling modes are supported when built with the pprof
// tag:
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// Use [Modes] to retrieve the list of supported modes programmatically.
//
// # Command-Line Usage
//
// The mkdef command supports profiling through command-line flags when
// built with the pprof tag:
//
//	# Enable CPU profiling (writes to default cache directory)
//	mkdef --pprof-mode cpu myApp.adef
//
//	# Enable heap profiling with custom output directory
//	mkdef --pprof-mode heap --pprof-dir ./profiles myApp.adef
//
// Profile files are written to the output directory with names matching
// the profiling mode (e.g., cpu.pprof, mem.pprof), and can be analyzed
// with:
//
//	go tool pprof /path/to/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
