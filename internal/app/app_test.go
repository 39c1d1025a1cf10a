package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vk/hurlfmt/internal/app"
	"github.com/vk/hurlfmt/internal/ast"
	"github.com/vk/hurlfmt/internal/format"
	"github.com/vk/hurlfmt/internal/lint"
	"github.com/vk/hurlfmt/internal/testutil"
)

// countingWriter counts Write calls on top of a buffer.
type countingWriter struct {
	buf    bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.buf.Write(p)
}

func (w *countingWriter) String() string {
	return w.buf.String()
}

type fixture struct {
	source   *testutil.MockSourceReader
	adapter  *testutil.MockAdapter
	parser   *testutil.MockParser
	linter   *testutil.MockLinter
	renderer *testutil.MockRenderer
	reporter *testutil.MockReporter
	stdout   *countingWriter
	files    *testutil.FileWriter
}

func newFixture() *fixture {
	return &fixture{
		source:   &testutil.MockSourceReader{},
		adapter:  &testutil.MockAdapter{},
		parser:   &testutil.MockParser{},
		linter:   &testutil.MockLinter{},
		renderer: &testutil.MockRenderer{},
		reporter: &testutil.MockReporter{},
		stdout:   &countingWriter{},
		files:    &testutil.FileWriter{},
	}
}

func (f *fixture) run(t *testing.T, cfg app.Config) app.Outcome {
	t.Helper()

	config, err := app.NewConfig(cfg)
	require.NoError(t, err)

	deps := app.Deps{
		Source:        f.source,
		Adapter:       f.adapter,
		Parser:        f.parser,
		Linter:        f.linter,
		Canonicalizer: f.linter,
		Renderer:      f.renderer,
		Reporter:      f.reporter,
		Stdout:        f.stdout,
		WriteFile:     f.files.WriteFile,
	}
	return app.New(config, deps, io.Discard).Run(context.Background())
}

func (f *fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.source.AssertExpectations(t)
	f.adapter.AssertExpectations(t)
	f.parser.AssertExpectations(t)
	f.linter.AssertExpectations(t)
	f.renderer.AssertExpectations(t)
	f.reporter.AssertExpectations(t)
}

// input makes id readable and parseable into doc.
func (f *fixture) input(id string, doc *ast.File) {
	src := []byte("source of " + id)
	f.source.On("Read", id).Return(src, nil).Once()
	f.parser.On("Parse", id, src).Return(doc, hcl.Diagnostics(nil)).Once()
}

func parseFailure(id string) hcl.Diagnostics {
	rng := hcl.Range{Filename: id, Start: hcl.Pos{Line: 1, Column: 1}, End: hcl.Pos{Line: 1, Column: 2, Byte: 1}}
	return hcl.Diagnostics{{Severity: hcl.DiagError, Summary: "Invalid request line", Subject: &rng}}
}

func TestRun_TransformCombinedToStdout(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	f := newFixture()
	docA, docB := &ast.File{Filename: "a.hurl"}, &ast.File{Filename: "b.hurl"}
	canonA := &ast.File{Filename: "a.hurl", Comments: []*ast.Comment{{Text: "# canonical a"}}}
	canonB := &ast.File{Filename: "b.hurl", Comments: []*ast.Comment{{Text: "# canonical b"}}}
	f.input("a.hurl", docA)
	f.input("b.hurl", docB)
	f.linter.On("Canonicalize", docA).Return(canonA).Once()
	f.linter.On("Canonicalize", docB).Return(canonB).Once()
	f.renderer.On("Render", canonA, format.KindHurl, format.Options{Color: true}).Return("A\n", nil).Once()
	f.renderer.On("Render", canonB, format.KindHurl, format.Options{Color: true}).Return("B", nil).Once()

	// --- Act ---
	outcome := f.run(t, app.Config{InputFiles: []string{"a.hurl", "b.hurl"}, Color: true})

	// --- Assert ---
	assert.Equal(t, app.OutcomeOK, outcome)
	assert.Equal(t, "A\nB\n", f.stdout.String())
	assert.Equal(t, 1, f.stdout.writes, "combined output is written once")
	assert.Empty(t, f.files.Paths)
	f.assertExpectations(t)
}

func TestRun_JSONSkipsCanonicalization(t *testing.T) {
	t.Parallel()

	f := newFixture()
	doc := &ast.File{Filename: "a.hurl"}
	f.input("a.hurl", doc)
	f.renderer.On("Render", doc, format.KindJSON, format.Options{}).Return("{}", nil).Once()

	outcome := f.run(t, app.Config{InputFiles: []string{"a.hurl"}, OutputFormat: format.KindJSON, OutputFile: "out.json"})

	assert.Equal(t, app.OutcomeOK, outcome)
	assert.Equal(t, []string{"out.json"}, f.files.Paths)
	assert.Equal(t, []string{"{}\n"}, f.files.Contents)
	assert.Empty(t, f.stdout.String())
	f.linter.AssertNotCalled(t, "Canonicalize", mock.Anything)
	f.assertExpectations(t)
}

func TestRun_HTMLStandalone(t *testing.T) {
	t.Parallel()

	f := newFixture()
	doc := &ast.File{Filename: "a.hurl"}
	f.input("a.hurl", doc)
	f.renderer.On("Render", doc, format.KindHTML, format.Options{Standalone: true}).Return("<html></html>\n\n", nil).Once()

	outcome := f.run(t, app.Config{InputFiles: []string{"a.hurl"}, OutputFormat: format.KindHTML, Standalone: true})

	assert.Equal(t, app.OutcomeOK, outcome)
	assert.Equal(t, "<html></html>\n\n", f.stdout.String(), "content already ending with newlines is kept")
	f.assertExpectations(t)
}

func TestRun_InPlace(t *testing.T) {
	t.Parallel()

	f := newFixture()
	inputs := []string{"a.hurl", "b.hurl", "c.hurl"}
	for _, id := range inputs {
		doc := &ast.File{Filename: id}
		f.input(id, doc)
		f.linter.On("Canonicalize", doc).Return(doc).Once()
		f.renderer.On("Render", doc, format.KindHurl, format.Options{}).Return("GET http://"+id, nil).Once()
	}

	outcome := f.run(t, app.Config{InputFiles: inputs, InPlace: true})

	assert.Equal(t, app.OutcomeOK, outcome)
	assert.Equal(t, inputs, f.files.Paths)
	assert.Equal(t, []string{"GET http://a.hurl\n", "GET http://b.hurl\n", "GET http://c.hurl\n"}, f.files.Contents)
	assert.Zero(t, f.stdout.writes)
	f.assertExpectations(t)
}

func TestRun_ParseFailureStopsRun(t *testing.T) {
	t.Parallel()

	for _, check := range []bool{false, true} {
		t.Run(map[bool]string{false: "transform", true: "check"}[check], func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			f := newFixture()
			src := []byte("GET\n")
			diags := parseFailure("a.hurl")
			f.source.On("Read", "a.hurl").Return(src, nil).Once()
			f.parser.On("Parse", "a.hurl", src).Return((*ast.File)(nil), diags).Once()
			f.reporter.On("ErrorParsing", src, "a.hurl", diags).Once()

			// --- Act ---
			outcome := f.run(t, app.Config{InputFiles: []string{"a.hurl", "b.hurl"}, Check: check})

			// --- Assert ---
			assert.Equal(t, app.OutcomeInvalidInput, outcome)
			assert.Equal(t, 2, outcome.ExitCode())
			f.source.AssertNotCalled(t, "Read", "b.hurl")
			f.renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything, mock.Anything)
			assert.Zero(t, f.stdout.writes, "no partial output")
			f.assertExpectations(t)
		})
	}
}

func TestRun_ReadFailure(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.source.On("Read", "missing.hurl").Return([]byte(nil), errors.New("no such file")).Once()
	f.reporter.On("Error", "Input file missing.hurl can not be read - no such file").Once()

	outcome := f.run(t, app.Config{InputFiles: []string{"missing.hurl", "b.hurl"}})

	assert.Equal(t, app.OutcomeInvalidInput, outcome)
	f.source.AssertNotCalled(t, "Read", "b.hurl")
	f.parser.AssertNotCalled(t, "Parse", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestRun_CurlInput(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	f := newFixture()
	raw := []byte("curl http://example.org")
	adapted := "GET http://example.org\n"
	doc := &ast.File{Filename: "cmd.curl"}
	f.source.On("Read", "cmd.curl").Return(raw, nil).Once()
	f.adapter.On("Adapt", string(raw)).Return(adapted, nil).Once()
	f.parser.On("Parse", "cmd.curl", []byte(adapted)).Return(doc, hcl.Diagnostics(nil)).Once()
	f.linter.On("Canonicalize", doc).Return(doc).Once()
	f.renderer.On("Render", doc, format.KindHurl, format.Options{}).Return(adapted, nil).Once()

	// --- Act ---
	outcome := f.run(t, app.Config{InputFiles: []string{"cmd.curl"}, InputFormat: app.InputCurl})

	// --- Assert ---
	assert.Equal(t, app.OutcomeOK, outcome)
	assert.Equal(t, adapted, f.stdout.String())
	f.assertExpectations(t)
}

func TestRun_CurlParseErrorIsReportedAgainstAdaptedText(t *testing.T) {
	t.Parallel()

	f := newFixture()
	raw := []byte("curl http://example.org")
	adapted := "GET http://example.org\n"
	diags := parseFailure("cmd.curl")
	f.source.On("Read", "cmd.curl").Return(raw, nil).Once()
	f.adapter.On("Adapt", string(raw)).Return(adapted, nil).Once()
	f.parser.On("Parse", "cmd.curl", []byte(adapted)).Return((*ast.File)(nil), diags).Once()
	f.reporter.On("ErrorParsing", []byte(adapted), "cmd.curl", diags).Once()

	outcome := f.run(t, app.Config{InputFiles: []string{"cmd.curl"}, InputFormat: app.InputCurl})

	assert.Equal(t, app.OutcomeInvalidInput, outcome)
	f.assertExpectations(t)
}

func TestRun_AdaptFailure(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.source.On("Read", "cmd.curl").Return([]byte("wget x"), nil).Once()
	f.adapter.On("Adapt", "wget x").Return("", errors.New("Can not parse curl command at line 1")).Once()
	f.reporter.On("Error", "Can not parse curl command at line 1").Once()

	outcome := f.run(t, app.Config{InputFiles: []string{"cmd.curl"}, InputFormat: app.InputCurl})

	assert.Equal(t, app.OutcomeInvalidInput, outcome)
	f.parser.AssertNotCalled(t, "Parse", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestRun_CheckClean(t *testing.T) {
	t.Parallel()

	f := newFixture()
	doc := &ast.File{Filename: "a.hurl"}
	f.input("a.hurl", doc)
	f.linter.On("Check", doc).Return([]lint.Finding(nil)).Once()

	outcome := f.run(t, app.Config{InputFiles: []string{"a.hurl"}, Check: true})

	assert.Equal(t, app.OutcomeOK, outcome)
	assert.Equal(t, 0, outcome.ExitCode())
	f.renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything, mock.Anything)
	f.reporter.AssertNotCalled(t, "WarnLint", mock.Anything, mock.Anything, mock.Anything)
	assert.Zero(t, f.stdout.writes)
	f.assertExpectations(t)
}

func TestRun_CheckWithFindings(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	f := newFixture()
	doc := &ast.File{Filename: "a.hurl"}
	findings := []lint.Finding{
		{Rule: lint.RuleTrailingSpace, Summary: "Unnecessary trailing whitespace"},
		{Rule: lint.RuleSectionAlias, Summary: "Section alias [FormParams]"},
	}
	f.input("a.hurl", doc)
	f.linter.On("Check", doc).Return(findings).Once()
	for _, finding := range findings {
		f.reporter.On("WarnLint", []byte("source of a.hurl"), "a.hurl", finding).Once()
	}

	// --- Act ---
	outcome := f.run(t, app.Config{InputFiles: []string{"a.hurl", "b.hurl"}, Check: true})

	// --- Assert ---
	assert.Equal(t, app.OutcomeLintIssues, outcome)
	assert.Equal(t, 3, outcome.ExitCode())
	f.reporter.AssertNumberOfCalls(t, "WarnLint", 2)
	f.renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestRun_CheckFirstInputDecides(t *testing.T) {
	t.Parallel()

	f := newFixture()
	doc := &ast.File{Filename: "a.hurl"}
	f.input("a.hurl", doc)
	f.linter.On("Check", doc).Return([]lint.Finding(nil)).Once()

	outcome := f.run(t, app.Config{InputFiles: []string{"a.hurl", "b.hurl"}, Check: true})

	assert.Equal(t, app.OutcomeOK, outcome)
	f.source.AssertNotCalled(t, "Read", "b.hurl")
	f.assertExpectations(t)
}

func TestRun_RenderFailure(t *testing.T) {
	t.Parallel()

	f := newFixture()
	doc := &ast.File{Filename: "a.hurl"}
	f.input("a.hurl", doc)
	f.renderer.On("Render", doc, format.KindJSON, format.Options{}).Return("", errors.New("unsupported value")).Once()
	f.reporter.On("Error", "Can not render a.hurl: unsupported value").Once()

	outcome := f.run(t, app.Config{InputFiles: []string{"a.hurl"}, OutputFormat: format.KindJSON})

	assert.Equal(t, app.OutcomeError, outcome)
	assert.Zero(t, f.stdout.writes)
	f.assertExpectations(t)
}

func TestRun_WriteFailure(t *testing.T) {
	t.Parallel()

	f := newFixture()
	doc := &ast.File{Filename: "a.hurl"}
	f.input("a.hurl", doc)
	f.linter.On("Canonicalize", doc).Return(doc).Once()
	f.renderer.On("Render", doc, format.KindHurl, format.Options{}).Return("GET http://a\n", nil).Once()
	f.files.Fail = map[string]error{"out.hurl": errors.New("disk full")}
	f.reporter.On("Error", "Issue writing to out.hurl: disk full").Once()

	outcome := f.run(t, app.Config{InputFiles: []string{"a.hurl"}, OutputFile: "out.hurl"})

	assert.Equal(t, app.OutcomeError, outcome)
	assert.Equal(t, 1, outcome.ExitCode())
	f.assertExpectations(t)
}

func TestRun_CanceledContext(t *testing.T) {
	t.Parallel()

	f := newFixture()
	config, err := app.NewConfig(app.Config{InputFiles: []string{"a.hurl"}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	deps := app.Deps{Source: f.source, Reporter: f.reporter, Stdout: f.stdout}
	outcome := app.New(config, deps, io.Discard).Run(ctx)

	assert.Equal(t, app.OutcomeError, outcome)
	f.source.AssertNotCalled(t, "Read", mock.Anything)
}

func TestRun_DebugLogs(t *testing.T) {
	t.Parallel()

	f := newFixture()
	doc := &ast.File{Filename: "a.hurl"}
	f.input("a.hurl", doc)
	f.linter.On("Check", doc).Return([]lint.Finding(nil)).Once()

	config, err := app.NewConfig(app.Config{InputFiles: []string{"a.hurl"}, Check: true, LogLevel: "debug", LogFormat: "json"})
	require.NoError(t, err)
	logs := &testutil.SafeBuffer{}
	deps := app.Deps{Source: f.source, Parser: f.parser, Linter: f.linter, Reporter: f.reporter, Stdout: f.stdout}
	app.New(config, deps, logs).Run(context.Background())

	assert.Contains(t, logs.String(), `"msg":"Processing input."`)
	assert.Contains(t, logs.String(), `"input":"a.hurl"`)
	assert.Contains(t, logs.String(), `"outcome":"ok"`)
}
