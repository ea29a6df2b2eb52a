package agentbrowser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowlistBlocksLocally(t *testing.T) {
	browser, runner := newTestBrowser(t, WithAllowedURLs("https://*.example.com/*"))

	err := browser.Open(context.Background(), "https://evil.test/login")
	require.Error(t, err)

	var abErr *Error
	require.ErrorAs(t, err, &abErr)
	assert.Contains(t, abErr.Message, "not permitted by allowlist")
	assert.Empty(t, runner.calls, "blocked navigation must not spawn a process")
}

func TestAllowlistPermitsMatchingURL(t *testing.T) {
	browser, runner := newTestBrowser(t, WithAllowedURLs("https://*.example.com/*", "https://example.com/*"))

	err := browser.Open(context.Background(), "https://docs.example.com/guide")
	require.NoError(t, err)
	assert.Len(t, runner.calls, 1)
}

func TestAllowlistAppliesToNewTab(t *testing.T) {
	browser, runner := newTestBrowser(t, WithAllowedURLs("https://example.com/*"))

	err := browser.NewTab(context.Background(), "https://other.test/")
	require.Error(t, err)
	assert.Empty(t, runner.calls)

	// A tab without a URL is always fine.
	require.NoError(t, browser.NewTab(context.Background(), ""))
	assert.Len(t, runner.calls, 1)
}

func TestAllowlistAppliesToBatchOpen(t *testing.T) {
	browser, runner := newTestBrowser(t, WithAllowedURLs("https://example.com/*"))

	batch := browser.Batch()
	batch.Open("https://blocked.test/")

	_, err := batch.Flush(context.Background())
	require.Error(t, err)
	assert.Empty(t, runner.calls)
}

func TestEmptyAllowlistPermitsEverything(t *testing.T) {
	browser, runner := newTestBrowser(t)

	require.NoError(t, browser.Open(context.Background(), "https://anywhere.test/"))
	assert.Len(t, runner.calls, 1)
}

func TestInvalidAllowlistPatternFailsNew(t *testing.T) {
	_, err := New(WithAllowedURLs("https://[invalid"))
	require.Error(t, err)

	var abErr *Error
	require.ErrorAs(t, err, &abErr)
	assert.Contains(t, abErr.Message, "invalid allowlist pattern")
}
