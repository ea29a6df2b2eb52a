package agentbrowser

import (
	"context"
	"encoding/json"
)

// RouteOptions configures request interception for a URL pattern.
type RouteOptions struct {
	// Abort blocks matching requests outright.
	Abort bool

	// Body fulfills matching requests with a mock JSON response body.
	Body any
}

// NetworkRoute intercepts requests matching a URL pattern.
func (b *Browser) NetworkRoute(ctx context.Context, url string, opts RouteOptions) error {
	op := []string{"network", "route", url}
	if opts.Abort {
		op = append(op, "--abort")
	}
	if opts.Body != nil {
		encoded, err := json.Marshal(opts.Body)
		if err != nil {
			return wrapError("network", "failed to encode mock body", err)
		}
		op = append(op, "--body", string(encoded))
	}
	_, err := b.run(ctx, op...)
	return err
}

// NetworkUnroute removes interception for a URL pattern, or all patterns
// when url is empty.
func (b *Browser) NetworkUnroute(ctx context.Context, url string) error {
	op := []string{"network", "unroute"}
	if url != "" {
		op = append(op, url)
	}
	_, err := b.run(ctx, op...)
	return err
}

// NetworkRequests returns the tracked requests, optionally filtered by a
// substring the tool applies server-side.
func (b *Browser) NetworkRequests(ctx context.Context, filter string) ([]map[string]any, error) {
	op := []string{"network", "requests"}
	if filter != "" {
		op = append(op, "--filter", filter)
	}
	var requests []map[string]any
	if err := b.runJSONInto(ctx, &requests, op...); err != nil {
		return nil, err
	}
	return requests, nil
}
