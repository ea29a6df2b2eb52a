package agentbrowser

import (
	"context"
	"encoding/json"
)

// Open navigates to a URL. The Browser's default headers, if any, are
// forwarded to the tool scoped to the URL's origin.
func (b *Browser) Open(ctx context.Context, url string) error {
	return b.OpenWithHeaders(ctx, url, nil)
}

// OpenWithHeaders navigates to a URL with extra HTTP headers. Explicit
// headers replace the Browser's defaults for this navigation.
func (b *Browser) OpenWithHeaders(ctx context.Context, url string, headers map[string]string) error {
	if err := b.checkAllowed("open", url); err != nil {
		return err
	}

	op := []string{"open", url}
	if headers == nil {
		headers = b.headers
	}
	if len(headers) > 0 {
		encoded, err := json.Marshal(headers)
		if err != nil {
			return wrapError("open", "failed to encode headers", err)
		}
		op = append(op, "--headers", string(encoded))
	}
	_, err := b.run(ctx, op...)
	return err
}

// Goto is an alias for Open.
func (b *Browser) Goto(ctx context.Context, url string) error {
	return b.Open(ctx, url)
}

// Back goes back in history.
func (b *Browser) Back(ctx context.Context) error {
	_, err := b.run(ctx, "back")
	return err
}

// Forward goes forward in history.
func (b *Browser) Forward(ctx context.Context) error {
	_, err := b.run(ctx, "forward")
	return err
}

// Reload reloads the current page.
func (b *Browser) Reload(ctx context.Context) error {
	_, err := b.run(ctx, "reload")
	return err
}
