// Package cli turns command-line arguments into an app.Config. Informational
// requests such as --help and --version are printed to the given writer and
// reported with shouldExit; invalid options are returned as *ExitError.
package cli
