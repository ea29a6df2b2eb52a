package agentbrowser

import "context"

// WaitOptions describes a wait condition. Fields combine; the tool waits
// for all of them.
type WaitOptions struct {
	// Selector is an element selector, or a duration in milliseconds
	// given as digits.
	Selector string

	// Text waits for the text to appear on the page.
	Text string

	// URL waits for the page URL to match a pattern.
	URL string

	// LoadState waits for "load", "domcontentloaded", or "networkidle".
	LoadState string

	// Function waits for a JavaScript condition to become truthy.
	Function string
}

// Wait waits for an element to appear, or sleeps when given milliseconds as
// digits (e.g. "500").
func (b *Browser) Wait(ctx context.Context, selectorOrMS string) error {
	return b.WaitFor(ctx, WaitOptions{Selector: selectorOrMS})
}

// WaitFor waits for the combined condition described by opts.
func (b *Browser) WaitFor(ctx context.Context, opts WaitOptions) error {
	op := []string{"wait"}
	if opts.Selector != "" {
		op = append(op, opts.Selector)
	}
	if opts.Text != "" {
		op = append(op, "--text", opts.Text)
	}
	if opts.URL != "" {
		op = append(op, "--url", opts.URL)
	}
	if opts.LoadState != "" {
		op = append(op, "--load", opts.LoadState)
	}
	if opts.Function != "" {
		op = append(op, "--fn", opts.Function)
	}
	_, err := b.run(ctx, op...)
	return err
}
