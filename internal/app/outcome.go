package app

import "errors"

// Outcome is the final classification of a run.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeError
	OutcomeInvalidInput
	OutcomeLintIssues
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeError:
		return "error"
	case OutcomeInvalidInput:
		return "invalid-input"
	case OutcomeLintIssues:
		return "lint-issues"
	}
	return "unknown"
}

// ExitCode is the process exit status for the outcome.
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomeOK:
		return 0
	case OutcomeInvalidInput:
		return 2
	case OutcomeLintIssues:
		return 3
	}
	return 1
}

// OutcomeOf maps the error that ended a run to its outcome.
func OutcomeOf(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	if errors.Is(err, ErrLintIssues) {
		return OutcomeLintIssues
	}

	var (
		readErr  *ReadError
		adaptErr *AdaptError
		parseErr *ParseError
	)
	if errors.As(err, &readErr) || errors.As(err, &adaptErr) || errors.As(err, &parseErr) {
		return OutcomeInvalidInput
	}
	return OutcomeError
}
