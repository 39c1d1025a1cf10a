// Package app contains the hurlfmt pipeline. It reads every input in order,
// optionally adapts curl commands, parses them, and then either lints or
// renders each document before routing the result to its destination. The
// package is decoupled from the CLI: cmd/hurlfmt builds a Config, wires the
// default collaborators and maps the returned Outcome to an exit status.
package app
