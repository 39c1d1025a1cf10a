package app

import (
	"context"
	"errors"

	"github.com/vk/hurlfmt/internal/ctxlog"
)

// Run processes every input in order and returns the outcome of the run. The
// first failure stops the run; remaining inputs are not read.
func (a *App) Run(ctx context.Context) Outcome {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "inputs", len(a.cfg.InputFiles), "mode", a.cfg.Mode().String(), "destination", a.cfg.Destination().String())

	err := a.run(ctx)
	outcome := OutcomeOf(err)
	a.logger.Debug("App.Run method finished.", "outcome", outcome.String(), "exit_code", outcome.ExitCode())
	return outcome
}

func (a *App) run(ctx context.Context) error {
	out := newRouter(a.cfg, a.deps.Stdout, a.deps.WriteFile)

	for _, id := range a.cfg.InputFiles {
		if err := ctx.Err(); err != nil {
			return err
		}
		ctx := ctxlog.With(ctx, "input", id)
		logger := ctxlog.FromContext(ctx)
		logger.Debug("Processing input.")

		raw, err := a.deps.Source.Read(id)
		if err != nil {
			return a.fail(&ReadError{Input: id, Err: err})
		}

		text := string(raw)
		if a.cfg.InputFormat == InputCurl {
			text, err = a.deps.Adapter.Adapt(text)
			if err != nil {
				return a.fail(&AdaptError{Input: id, Err: err})
			}
			logger.Debug("Input adapted from curl.")
		}

		src := []byte(text)
		doc, diags := a.deps.Parser.Parse(id, src)
		if diags.HasErrors() {
			return a.fail(&ParseError{Input: id, Source: src, Diags: diags})
		}

		res, err := a.dispatch(ctx, id, doc)
		if err != nil {
			return a.fail(err)
		}

		// In check mode the first input decides the run.
		if a.cfg.Mode() == ModeCheck {
			for _, f := range res.findings {
				a.deps.Reporter.WarnLint(src, id, f)
			}
			if len(res.findings) > 0 {
				return ErrLintIssues
			}
			return nil
		}

		if err := out.route(id, res.output); err != nil {
			return a.fail(err)
		}
	}

	ctxlog.FromContext(ctx).Debug("Flushing output.", "destination", a.cfg.Destination().String())
	if err := out.flush(); err != nil {
		return a.fail(err)
	}
	return nil
}

// fail reports err to the user and returns it.
func (a *App) fail(err error) error {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		a.deps.Reporter.ErrorParsing(parseErr.Source, parseErr.Input, parseErr.Diags)
	} else {
		a.deps.Reporter.Error(err.Error())
	}
	return err
}
