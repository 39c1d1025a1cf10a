package app

import (
	"errors"
	"fmt"

	"github.com/vk/hurlfmt/internal/format"
	"github.com/vk/hurlfmt/internal/source"
)

// InputFormat is the syntax of the input files.
type InputFormat string

const (
	InputHurl InputFormat = "hurl"
	InputCurl InputFormat = "curl"
)

// ParseInputFormat validates a user supplied input format name.
func ParseInputFormat(s string) (InputFormat, error) {
	switch f := InputFormat(s); f {
	case InputHurl, InputCurl:
		return f, nil
	}
	return "", fmt.Errorf("invalid input format %q: must be 'hurl' or 'curl'", s)
}

// Mode selects what the run does with each parsed document.
type Mode int

const (
	ModeTransform Mode = iota
	ModeCheck
)

func (m Mode) String() string {
	if m == ModeCheck {
		return "check"
	}
	return "transform"
}

// Destination is where transformed output goes.
type Destination int

const (
	// DestinationCombined accumulates every output and writes it once, to
	// Config.OutputFile or to stdout when no file is set.
	DestinationCombined Destination = iota
	// DestinationInPlace rewrites each input file with its own output.
	DestinationInPlace
)

func (d Destination) String() string {
	if d == DestinationInPlace {
		return "in-place"
	}
	return "combined"
}

// Config holds everything an App needs for one run. It is immutable once
// returned by NewConfig.
type Config struct {
	InputFiles   []string
	InputFormat  InputFormat
	Check        bool
	OutputFormat format.Kind
	Standalone   bool
	InPlace      bool
	OutputFile   string
	Color        bool

	LogFormat string
	LogLevel  string
}

// Mode reports whether the run lints or transforms.
func (c *Config) Mode() Mode {
	if c.Check {
		return ModeCheck
	}
	return ModeTransform
}

// Destination reports the output policy of a transform run.
func (c *Config) Destination() Destination {
	if c.InPlace {
		return DestinationInPlace
	}
	return DestinationCombined
}

// NewConfig validates cfg and returns a copy of it with defaults applied.
// Violations are returned as *ConfigError.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.InputFiles) == 0 {
		return nil, &ConfigError{Err: errors.New("Input file is missing")}
	}
	if cfg.InputFormat == "" {
		cfg.InputFormat = InputHurl
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = format.KindHurl
	}
	if _, err := ParseInputFormat(string(cfg.InputFormat)); err != nil {
		return nil, &ConfigError{Err: err}
	}
	if _, err := format.ParseKind(string(cfg.OutputFormat)); err != nil {
		return nil, &ConfigError{Err: err}
	}
	if cfg.Standalone && cfg.OutputFormat != format.KindHTML {
		return nil, &ConfigError{Err: errors.New("use --standalone option only with html output")}
	}
	if cfg.InPlace {
		switch {
		case cfg.Check:
			return nil, &ConfigError{Err: errors.New("you can not use --in-place with --check")}
		case cfg.OutputFormat != format.KindHurl:
			return nil, &ConfigError{Err: errors.New("you can use --in-place only with hurl output")}
		case cfg.OutputFile != "":
			return nil, &ConfigError{Err: errors.New("you can not use --in-place with --output")}
		}
		for _, in := range cfg.InputFiles {
			if in == source.Stdin {
				return nil, &ConfigError{Err: errors.New("you can not use --in-place with standard input stream")}
			}
		}
	}

	cfg.InputFiles = append([]string(nil), cfg.InputFiles...)
	return &cfg, nil
}
