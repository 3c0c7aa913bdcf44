// Package cli contains the command line interface for mkdef.
//
// # Usage
//
// The default command generates a ninja build script from an application
// definition file:
//
//	mkdef myApp.adef -t wp76xx -w build -i interfaces -c components
//
// The inspect command models the definition and prints a readable summary
// of the application instead of generating anything:
//
//	mkdef inspect myApp.adef
//
// # Configuration
//
// Flag defaults are read from config.yaml in the user configuration
// directory. Toolchains for cross-compilation targets are read from
// targets.yaml in the same directory (see the params package).
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, none, ...)
//   - --log-caller: Include caller information in log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu,
//     goroutine, heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
package cli
