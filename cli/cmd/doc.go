// Package cmd provides the app and inspect subcommands: both model an
// application definition file; app additionally emits its build script.
package cmd
