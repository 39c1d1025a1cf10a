package testutil

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/mock"
	"github.com/vk/hurlfmt/internal/ast"
	"github.com/vk/hurlfmt/internal/format"
	"github.com/vk/hurlfmt/internal/lint"
)

// MockSourceReader mocks app.SourceReader.
type MockSourceReader struct {
	mock.Mock
}

// Read mocks the Read method.
func (m *MockSourceReader) Read(id string) ([]byte, error) {
	args := m.Called(id)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

// MockAdapter mocks app.Adapter.
type MockAdapter struct {
	mock.Mock
}

// Adapt mocks the Adapt method.
func (m *MockAdapter) Adapt(text string) (string, error) {
	args := m.Called(text)
	return args.String(0), args.Error(1)
}

// MockParser mocks app.Parser.
type MockParser struct {
	mock.Mock
}

// Parse mocks the Parse method.
func (m *MockParser) Parse(filename string, src []byte) (*ast.File, hcl.Diagnostics) {
	args := m.Called(filename, src)
	f, _ := args.Get(0).(*ast.File)
	diags, _ := args.Get(1).(hcl.Diagnostics)
	return f, diags
}

// MockLinter mocks app.Linter and app.Canonicalizer.
type MockLinter struct {
	mock.Mock
}

// Check mocks the Check method.
func (m *MockLinter) Check(f *ast.File) []lint.Finding {
	args := m.Called(f)
	findings, _ := args.Get(0).([]lint.Finding)
	return findings
}

// Canonicalize mocks the Canonicalize method.
func (m *MockLinter) Canonicalize(f *ast.File) *ast.File {
	args := m.Called(f)
	out, _ := args.Get(0).(*ast.File)
	return out
}

// MockRenderer mocks app.Renderer.
type MockRenderer struct {
	mock.Mock
}

// Render mocks the Render method.
func (m *MockRenderer) Render(f *ast.File, kind format.Kind, opts format.Options) (string, error) {
	args := m.Called(f, kind, opts)
	return args.String(0), args.Error(1)
}

// MockReporter mocks app.Reporter.
type MockReporter struct {
	mock.Mock
}

// Error mocks the Error method.
func (m *MockReporter) Error(msg string) {
	m.Called(msg)
}

// ErrorParsing mocks the ErrorParsing method.
func (m *MockReporter) ErrorParsing(src []byte, filename string, diags hcl.Diagnostics) {
	m.Called(src, filename, diags)
}

// WarnLint mocks the WarnLint method.
func (m *MockReporter) WarnLint(src []byte, filename string, f lint.Finding) {
	m.Called(src, filename, f)
}

// FileWriter records WriteFile calls in order. Fail, when set, is returned
// for every write to that path.
type FileWriter struct {
	Paths    []string
	Contents []string
	Fail     map[string]error
}

// WriteFile has the signature of app.Deps.WriteFile.
func (w *FileWriter) WriteFile(path string, data []byte) error {
	if err := w.Fail[path]; err != nil {
		return err
	}
	w.Paths = append(w.Paths, path)
	w.Contents = append(w.Contents, string(data))
	return nil
}
