package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/vk/hurlfmt/internal/app"
	"github.com/vk/hurlfmt/internal/format"
	"github.com/vk/hurlfmt/internal/fsutil"
	"github.com/vk/hurlfmt/internal/source"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// Terminal and environment probes, replaced in tests.
var (
	stdinIsTerminal  = func() bool { return isTerminal(os.Stdin) }
	stdoutIsTerminal = func() bool { return isTerminal(os.Stdout) }
	getenv           = os.Getenv
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func optionError(err error) *ExitError {
	return &ExitError{Code: 1, Message: err.Error()}
}

const usageHeader = `hurlfmt - Format, lint and convert Hurl files.

Usage:
  hurlfmt [OPTIONS] [FILES]...

Arguments:
  FILES
    Hurl files or directories containing .hurl files. Reads standard input
    when no file is given.

Options:
`

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	fs := pflag.NewFlagSet("hurlfmt", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprint(output, usageHeader)
		fmt.Fprint(output, fs.FlagUsages())
	}

	check := fs.Bool("check", false, "Run in check mode: report lint issues instead of formatting.")
	color := fs.Bool("color", false, "Colorize output.")
	noColor := fs.Bool("no-color", false, "Do not colorize output.")
	inFlag := fs.String("in", "hurl", "Input format: 'hurl' or 'curl'.")
	outFlag := fs.String("out", "hurl", "Output format: 'hurl', 'json' or 'html'.")
	standalone := fs.Bool("standalone", false, "Output a standalone HTML document (html output only).")
	inPlace := fs.Bool("in-place", false, "Modify input files in place.")
	outputFile := fs.StringP("output", "o", "", "Write output to `FILE` instead of stdout.")
	logLevelFlag := fs.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := fs.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	help := fs.BoolP("help", "h", false, "Print help.")
	version := fs.BoolP("version", "V", false, "Print version.")

	if err := fs.Parse(args); err != nil {
		return nil, false, optionError(err)
	}
	slog.Debug("Arguments parsed successfully.")

	if *help {
		fs.Usage()
		return nil, true, nil
	}
	if *version {
		fmt.Fprintf(output, "hurlfmt %s\n", Version)
		return nil, true, nil
	}

	inputFormat, err := app.ParseInputFormat(strings.ToLower(*inFlag))
	if err != nil {
		return nil, false, optionError(err)
	}
	outputFormat, err := format.ParseKind(strings.ToLower(*outFlag))
	if err != nil {
		return nil, false, optionError(err)
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 1, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 1, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	inputs, err := fsutil.ExpandPaths(fs.Args(), ".hurl")
	if err != nil {
		return nil, false, optionError(err)
	}
	if len(fs.Args()) == 0 {
		if stdinIsTerminal() {
			return nil, false, &ExitError{Code: 1, Message: "Input file is missing"}
		}
		inputs = []string{source.Stdin}
	}
	slog.Debug("Inputs determined.", "inputs", inputs)

	config, err := app.NewConfig(app.Config{
		InputFiles:   inputs,
		InputFormat:  inputFormat,
		Check:        *check,
		OutputFormat: outputFormat,
		Standalone:   *standalone,
		InPlace:      *inPlace,
		OutputFile:   *outputFile,
		Color:        useColor(*color, *noColor, *inPlace || *outputFile != ""),
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, optionError(err)
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// useColor resolves the color preference. --no-color wins over --color;
// without either, color is used only when writing to a terminal and NO_COLOR
// is not set.
func useColor(color, noColor, toFile bool) bool {
	switch {
	case noColor:
		return false
	case color:
		return true
	case toFile:
		return false
	}
	return stdoutIsTerminal() && getenv("NO_COLOR") == ""
}
