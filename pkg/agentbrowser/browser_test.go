package agentbrowser

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshyun/agent-browser-go/pkg/config"
)

func TestWithConfigAppliesFileSettings(t *testing.T) {
	cfg := config.Default()
	cfg.Binary = "/opt/agent-browser"
	cfg.Session = "scraper"
	cfg.Headers = map[string]string{"X-From": "config"}
	cfg.CDPPort = 9222
	cfg.Close.Retries = 5
	cfg.Close.DelayMS = 50

	browser, err := New(WithConfig(cfg))
	require.NoError(t, err)

	assert.Equal(t, "/opt/agent-browser", browser.binary)
	assert.Equal(t, "scraper", browser.Session())
	assert.Equal(t, map[string]string{"X-From": "config"}, browser.headers)
	assert.Equal(t, 9222, browser.cdpPort)
	assert.Equal(t, 5, browser.closeRetries)
	assert.Equal(t, 50*time.Millisecond, browser.closeDelay)
}

func TestWithConfigLaterOptionsWin(t *testing.T) {
	cfg := config.Default()
	cfg.Session = "from-file"

	browser, err := New(WithConfig(cfg), WithSession("from-code"))
	require.NoError(t, err)
	assert.Equal(t, "from-code", browser.Session())
}

func TestWithConfigRejectsBadAllowlist(t *testing.T) {
	cfg := config.Default()
	cfg.AllowedURLs = []string{"https://[invalid"}

	_, err := New(WithConfig(cfg))
	assert.Error(t, err)
}

func TestEvalReturnsDataUnchanged(t *testing.T) {
	browser, runner := newTestBrowser(t)
	runner.handler = func(argv []string, _ string) (string, string, error) {
		return envelopeJSON(`{"answer": 42}`), "", nil
	}

	data, err := browser.Eval(context.Background(), "1+41")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"answer": float64(42)}, data)
}

func TestEvalNullData(t *testing.T) {
	browser, runner := newTestBrowser(t)
	runner.handler = func(argv []string, _ string) (string, string, error) {
		return `{"success": true, "data": null, "error": null}`, "", nil
	}

	data, err := browser.Eval(context.Background(), "void 0")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFailureEnvelopeCarriesExactMessage(t *testing.T) {
	browser, runner := newTestBrowser(t)
	runner.handler = func(argv []string, _ string) (string, string, error) {
		return `{"success": false, "data": null, "error": "element not found: #missing"}`, "", nil
	}

	_, err := browser.GetText(context.Background(), "#missing")
	require.Error(t, err)

	var abErr *Error
	require.ErrorAs(t, err, &abErr)
	assert.Equal(t, "element not found: #missing", abErr.Message)
}

func TestMalformedJSONOutput(t *testing.T) {
	browser, runner := newTestBrowser(t)
	runner.handler = func(argv []string, _ string) (string, string, error) {
		return "not json at all", "", nil
	}

	_, err := browser.GetTitle(context.Background())
	require.Error(t, err)

	var abErr *Error
	require.ErrorAs(t, err, &abErr)
	assert.Contains(t, abErr.Message, "failed to parse JSON output")
}

func TestNonZeroExitUsesStderr(t *testing.T) {
	browser, runner := newTestBrowser(t)
	runner.handler = func(argv []string, _ string) (string, string, error) {
		return "", "browser not running\n", errors.New("exit status 1")
	}

	err := browser.Click(context.Background(), "#button")
	require.Error(t, err)

	var abErr *Error
	require.ErrorAs(t, err, &abErr)
	assert.Equal(t, "command failed: browser not running", abErr.Message)
	assert.Equal(t, "click", abErr.Op)
}

func TestGetTextUnwrapsPayloadShapes(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "object payload", data: `{"text": "hello"}`, want: "hello"},
		{name: "bare string payload", data: `"hello"`, want: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			browser, runner := newTestBrowser(t)
			runner.handler = func(argv []string, _ string) (string, string, error) {
				return envelopeJSON(tt.data), "", nil
			}

			text, err := browser.GetText(context.Background(), "h1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestGetCount(t *testing.T) {
	browser, runner := newTestBrowser(t)
	runner.handler = func(argv []string, _ string) (string, string, error) {
		return envelopeJSON(`{"count": 7}`), "", nil
	}

	count, err := browser.GetCount(context.Background(), "li")
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestGetBox(t *testing.T) {
	browser, runner := newTestBrowser(t)
	runner.handler = func(argv []string, _ string) (string, string, error) {
		return envelopeJSON(`{"box": {"x": 10, "y": 20, "width": 100, "height": 50}}`), "", nil
	}

	box, err := browser.GetBox(context.Background(), "#hero")
	require.NoError(t, err)
	assert.Equal(t, &Box{X: 10, Y: 20, Width: 100, Height: 50}, box)
}

func TestGetBoxBarePayload(t *testing.T) {
	browser, runner := newTestBrowser(t)
	runner.handler = func(argv []string, _ string) (string, string, error) {
		return envelopeJSON(`{"x": 10, "y": 20, "width": 100, "height": 50}`), "", nil
	}

	box, err := browser.GetBox(context.Background(), "#hero")
	require.NoError(t, err)
	assert.Equal(t, &Box{X: 10, Y: 20, Width: 100, Height: 50}, box)
}

func TestIsVisiblePayloadShapes(t *testing.T) {
	tests := []struct {
		name string
		data string
		want bool
	}{
		{name: "bare bool", data: `true`, want: true},
		{name: "wrapped bool", data: `{"visible": true}`, want: true},
		{name: "false", data: `false`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			browser, runner := newTestBrowser(t)
			runner.handler = func(argv []string, _ string) (string, string, error) {
				return envelopeJSON(tt.data), "", nil
			}

			visible, err := browser.IsVisible(context.Background(), "#hero")
			require.NoError(t, err)
			assert.Equal(t, tt.want, visible)
		})
	}
}

func TestTakeSnapshot(t *testing.T) {
	browser, runner := newTestBrowser(t)
	runner.handler = func(argv []string, _ string) (string, string, error) {
		return envelopeJSON(`{"snapshot": "- button \"Submit\" @e1", "refs": {"@e1": {"role": "button"}}}`), "", nil
	}

	snap, err := browser.TakeSnapshot(context.Background(), SnapshotOptions{
		InteractiveOnly: true,
		Compact:         true,
		Depth:           3,
		Selector:        "main",
	})
	require.NoError(t, err)
	assert.Contains(t, snap.Tree, "@e1")
	assert.Contains(t, snap.Refs, "@e1")

	call := runner.lastCall(t)
	assert.Equal(t, []string{"agent-browser", "snapshot", "-i", "-c", "-d", "3", "-s", "main", "--json"}, call.argv)
}

func TestScreenshotToStdout(t *testing.T) {
	browser, runner := newTestBrowser(t)
	runner.handler = func(argv []string, _ string) (string, string, error) {
		return "aGVsbG8=\n", "", nil
	}

	data, err := browser.Screenshot(context.Background(), "", false)
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", data)

	call := runner.lastCall(t)
	assert.Equal(t, []string{"agent-browser", "screenshot"}, call.argv)
}

func TestScreenshotToFileFullPage(t *testing.T) {
	browser, runner := newTestBrowser(t)

	_, err := browser.Screenshot(context.Background(), "/tmp/page.png", true)
	require.NoError(t, err)

	call := runner.lastCall(t)
	assert.Equal(t, []string{"agent-browser", "screenshot", "/tmp/page.png", "--full"}, call.argv)
}

func TestConsoleSplitsLines(t *testing.T) {
	browser, runner := newTestBrowser(t)
	runner.handler = func(argv []string, _ string) (string, string, error) {
		return "log: ready\nwarn: slow request\n", "", nil
	}

	lines, err := browser.Console(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"log: ready", "warn: slow request"}, lines)

	call := runner.lastCall(t)
	assert.Equal(t, []string{"agent-browser", "console", "--clear"}, call.argv)
}

func TestConsoleEmpty(t *testing.T) {
	browser, _ := newTestBrowser(t)

	lines, err := browser.Console(context.Background(), false)
	require.NoError(t, err)
	assert.Nil(t, lines)
}

func TestOpenUsesDefaultHeaders(t *testing.T) {
	browser, runner := newTestBrowser(t, WithHeaders(map[string]string{"X-Test": "1"}))

	err := browser.Open(context.Background(), "https://example.com")
	require.NoError(t, err)

	call := runner.lastCall(t)
	assert.Equal(t, []string{
		"agent-browser", "open", "https://example.com",
		"--headers", `{"X-Test":"1"}`,
	}, call.argv)
}

func TestOpenWithHeadersOverridesDefaults(t *testing.T) {
	browser, runner := newTestBrowser(t, WithHeaders(map[string]string{"X-Test": "1"}))

	err := browser.OpenWithHeaders(context.Background(), "https://example.com", map[string]string{"Authorization": "Bearer tok"})
	require.NoError(t, err)

	call := runner.lastCall(t)
	assert.Contains(t, call.argv, `{"Authorization":"Bearer tok"}`)
	assert.NotContains(t, call.argv, `{"X-Test":"1"}`)
}

func TestOpenWithoutHeaders(t *testing.T) {
	browser, runner := newTestBrowser(t)

	err := browser.Open(context.Background(), "https://example.com")
	require.NoError(t, err)

	call := runner.lastCall(t)
	assert.Equal(t, []string{"agent-browser", "open", "https://example.com"}, call.argv)
}

func TestCloseIsIdempotent(t *testing.T) {
	browser, runner := newTestBrowser(t)

	require.NoError(t, browser.Close(context.Background()))
	require.NoError(t, browser.Close(context.Background()))

	assert.Len(t, runner.calls, 1, "second close must not spawn a process")
}

func TestQuitAliasesClose(t *testing.T) {
	browser, runner := newTestBrowser(t)

	require.NoError(t, browser.Quit(context.Background()))
	require.NoError(t, browser.Close(context.Background()))

	require.Len(t, runner.calls, 1)
	assert.Contains(t, runner.calls[0].argv, "close")
}

func TestCloseRemainsRetryableAfterFailure(t *testing.T) {
	browser, runner := newTestBrowser(t)

	fail := true
	runner.handler = func(argv []string, _ string) (string, string, error) {
		if fail {
			return "", "no session\n", errors.New("exit status 1")
		}
		return "", "", nil
	}

	require.Error(t, browser.Close(context.Background()))
	fail = false
	require.NoError(t, browser.Close(context.Background()))
	require.NoError(t, browser.Close(context.Background()))

	assert.Len(t, runner.calls, 2)
}

func TestWaitForCombinesConditions(t *testing.T) {
	browser, runner := newTestBrowser(t)

	err := browser.WaitFor(context.Background(), WaitOptions{
		Selector:  "#result",
		Text:      "done",
		LoadState: "networkidle",
	})
	require.NoError(t, err)

	call := runner.lastCall(t)
	assert.Equal(t, []string{
		"agent-browser", "wait", "#result",
		"--text", "done", "--load", "networkidle",
	}, call.argv)
}

func TestGetPageUnsupportedFormat(t *testing.T) {
	browser, _ := newTestBrowser(t)

	_, err := browser.GetPage(context.Background(), PageFormat("pdf"))
	require.Error(t, err)

	var abErr *Error
	require.ErrorAs(t, err, &abErr)
	assert.Contains(t, abErr.Message, "unsupported page format")
}

func TestFindRoleJSONOnlyForTextAction(t *testing.T) {
	browser, runner := newTestBrowser(t)
	runner.handler = func(argv []string, _ string) (string, string, error) {
		return envelopeJSON(`{"text": "Sign in"}`), "", nil
	}

	_, err := browser.FindRole(context.Background(), "button", "text", FindOptions{Name: "Sign in"})
	require.NoError(t, err)
	assert.Contains(t, runner.lastCall(t).argv, "--json")

	runner.handler = nil
	_, err = browser.FindRole(context.Background(), "button", "click", FindOptions{})
	require.NoError(t, err)
	assert.NotContains(t, runner.lastCall(t).argv, "--json")
}
