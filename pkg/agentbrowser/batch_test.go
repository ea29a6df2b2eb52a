package agentbrowser

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchDistributesResultsPositionally(t *testing.T) {
	browser, runner := newTestBrowser(t, WithSession("batch-test"))
	runner.handler = func(argv []string, _ string) (string, string, error) {
		return `[
			{"success": true, "data": null, "error": null},
			{"success": true, "data": {"title": "Example"}, "error": null},
			{"success": true, "data": {"url": "https://example.com/"}, "error": null}
		]`, "", nil
	}

	batch := browser.Batch()
	batch.Open("https://example.com").GetTitle().GetURL()

	results, err := batch.Flush(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Nil(t, results[0].Data)
	assert.Equal(t, map[string]any{"title": "Example"}, results[1].Data)
	assert.Equal(t, map[string]any{"url": "https://example.com/"}, results[2].Data)

	assert.Len(t, runner.calls, 1, "a batch is one subprocess invocation")
}

func TestBatchCountMismatchFailsWholeBatch(t *testing.T) {
	browser, runner := newTestBrowser(t)
	runner.handler = func(argv []string, _ string) (string, string, error) {
		return `[{"success": true, "data": null, "error": null}]`, "", nil
	}

	batch := browser.Batch()
	batch.Click("#a").Click("#b")

	_, err := batch.Flush(context.Background())
	require.Error(t, err)

	var abErr *Error
	require.ErrorAs(t, err, &abErr)
	assert.Contains(t, abErr.Message, "result count mismatch")
	assert.Contains(t, abErr.Message, "queued 2 commands, got 1 results")
}

func TestBatchEmptyFlushIsNoOp(t *testing.T) {
	browser, runner := newTestBrowser(t)

	results, err := browser.Batch().Flush(context.Background())
	require.NoError(t, err)
	assert.Nil(t, results)
	assert.Empty(t, runner.calls, "empty batch must not spawn a process")
}

func TestBatchInvocationAndStdin(t *testing.T) {
	browser, runner := newTestBrowser(t, WithSession("s1"))
	runner.handler = func(argv []string, _ string) (string, string, error) {
		return `[
			{"success": true, "data": null, "error": null},
			{"success": true, "data": null, "error": null}
		]`, "", nil
	}

	batch := browser.Batch()
	batch.Fill("#user", "alice smith").Press("Enter")

	_, err := batch.Flush(context.Background())
	require.NoError(t, err)

	call := runner.lastCall(t)
	assert.Equal(t, []string{"agent-browser", "--session", "s1", "batch", "--json"}, call.argv)

	lines := strings.Split(strings.TrimSpace(call.stdin), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `["fill", "#user", "alice smith"]`, lines[0])
	assert.JSONEq(t, `["press", "Enter"]`, lines[1])
}

func TestBatchPartialFailureStaysInSlot(t *testing.T) {
	browser, runner := newTestBrowser(t)
	runner.handler = func(argv []string, _ string) (string, string, error) {
		return `[
			{"success": true, "data": null, "error": null},
			{"success": false, "data": null, "error": "element not found: #gone"},
			{"success": true, "data": {"title": "Still here"}, "error": null}
		]`, "", nil
	}

	batch := browser.Batch()
	batch.Click("#ok").Click("#gone").GetTitle()

	results, err := batch.Flush(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	require.Error(t, results[1].Err)
	var abErr *Error
	require.ErrorAs(t, results[1].Err, &abErr)
	assert.Equal(t, "element not found: #gone", abErr.Message)
	assert.Equal(t, map[string]any{"title": "Still here"}, results[2].Data)
}

func TestBatchSingleUse(t *testing.T) {
	browser, runner := newTestBrowser(t)
	runner.handler = func(argv []string, _ string) (string, string, error) {
		return `[{"success": true, "data": null, "error": null}]`, "", nil
	}

	batch := browser.Batch()
	batch.Click("#a")
	_, err := batch.Flush(context.Background())
	require.NoError(t, err)

	_, err = batch.Flush(context.Background())
	require.Error(t, err)
	assert.Len(t, runner.calls, 1)
}

func TestBatchExecutionFailure(t *testing.T) {
	browser, runner := newTestBrowser(t)
	runner.handler = func(argv []string, _ string) (string, string, error) {
		return "", "batch mode unsupported\n", assert.AnError
	}

	batch := browser.Batch()
	batch.Click("#a")

	_, err := batch.Flush(context.Background())
	require.Error(t, err)

	var abErr *Error
	require.ErrorAs(t, err, &abErr)
	assert.Contains(t, abErr.Message, "batch mode unsupported")
}

func TestWithBatchFlushesOnSuccess(t *testing.T) {
	browser, runner := newTestBrowser(t)
	runner.handler = func(argv []string, _ string) (string, string, error) {
		return `[
			{"success": true, "data": {"title": "Example"}, "error": null}
		]`, "", nil
	}

	results, err := browser.WithBatch(context.Background(), func(b *Batch) error {
		b.GetTitle()
		return nil
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, map[string]any{"title": "Example"}, results[0].Data)
}

func TestWithBatchSkipsFlushOnError(t *testing.T) {
	browser, runner := newTestBrowser(t)

	_, err := browser.WithBatch(context.Background(), func(b *Batch) error {
		b.GetTitle()
		return assert.AnError
	})
	require.Error(t, err)
	assert.Empty(t, runner.calls, "failed scope must not flush")
}

func TestBatchGetPage(t *testing.T) {
	browser, runner := newTestBrowser(t)
	runner.handler = func(argv []string, _ string) (string, string, error) {
		return `[{"success": true, "data": "<html></html>", "error": null}]`, "", nil
	}

	batch := browser.Batch()
	batch.GetPage(PageHTML)

	results, err := batch.Flush(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", results[0].Data)

	call := runner.lastCall(t)
	assert.JSONEq(t, `["eval", "document.documentElement.outerHTML"]`, strings.TrimSpace(call.stdin))
}
