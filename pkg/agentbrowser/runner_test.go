package agentbrowser

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeCall records one subprocess invocation made through the fake runner.
type fakeCall struct {
	argv  []string
	stdin string
}

// fakeRunner stands in for the agent-browser subprocess in tests. The
// handler maps an invocation to stdout/stderr/err; a nil handler returns
// empty output.
type fakeRunner struct {
	calls   []fakeCall
	handler func(argv []string, stdin string) (stdout, stderr string, err error)
}

func (f *fakeRunner) Run(_ context.Context, argv []string, stdin io.Reader) ([]byte, []byte, error) {
	var in string
	if stdin != nil {
		raw, _ := io.ReadAll(stdin)
		in = string(raw)
	}
	f.calls = append(f.calls, fakeCall{argv: argv, stdin: in})
	if f.handler == nil {
		return nil, nil, nil
	}
	stdout, stderr, err := f.handler(argv, in)
	return []byte(stdout), []byte(stderr), err
}

// lastCall returns the most recent invocation.
func (f *fakeRunner) lastCall(t *testing.T) fakeCall {
	t.Helper()
	require.NotEmpty(t, f.calls, "expected at least one subprocess invocation")
	return f.calls[len(f.calls)-1]
}

// newTestBrowser builds a Browser wired to a fake runner.
func newTestBrowser(t *testing.T, opts ...Option) (*Browser, *fakeRunner) {
	t.Helper()
	browser, err := New(opts...)
	require.NoError(t, err)
	runner := &fakeRunner{}
	browser.runner = runner
	return browser, runner
}

// envelopeJSON is a shorthand for a success envelope with the given data.
func envelopeJSON(data string) string {
	return `{"success": true, "data": ` + data + `, "error": null}`
}
