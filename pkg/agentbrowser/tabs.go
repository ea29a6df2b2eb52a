package agentbrowser

import (
	"context"
	"strconv"
)

// ListTabs returns the open tabs with whatever details the tool reports
// (index, URL, title).
func (b *Browser) ListTabs(ctx context.Context) ([]map[string]any, error) {
	var tabs []map[string]any
	if err := b.runJSONInto(ctx, &tabs, "tab"); err != nil {
		return nil, err
	}
	return tabs, nil
}

// NewTab opens a new tab, navigating to url when it is non-empty.
func (b *Browser) NewTab(ctx context.Context, url string) error {
	op := []string{"tab", "new"}
	if url != "" {
		if err := b.checkAllowed("tab", url); err != nil {
			return err
		}
		op = append(op, url)
	}
	_, err := b.run(ctx, op...)
	return err
}

// SwitchTab switches to the tab at index.
func (b *Browser) SwitchTab(ctx context.Context, index int) error {
	_, err := b.run(ctx, "tab", strconv.Itoa(index))
	return err
}

// CloseTab closes the tab at index, or the current tab when index is
// negative.
func (b *Browser) CloseTab(ctx context.Context, index int) error {
	op := []string{"tab", "close"}
	if index >= 0 {
		op = append(op, strconv.Itoa(index))
	}
	_, err := b.run(ctx, op...)
	return err
}

// NewWindow opens a new browser window.
func (b *Browser) NewWindow(ctx context.Context) error {
	_, err := b.run(ctx, "window", "new")
	return err
}

// SwitchFrame switches command targeting into an iframe.
func (b *Browser) SwitchFrame(ctx context.Context, selector string) error {
	_, err := b.run(ctx, "frame", selector)
	return err
}

// MainFrame switches command targeting back to the top document.
func (b *Browser) MainFrame(ctx context.Context) error {
	_, err := b.run(ctx, "frame", "main")
	return err
}

// AcceptDialog accepts the pending dialog, typing text into prompts when
// text is non-empty.
func (b *Browser) AcceptDialog(ctx context.Context, text string) error {
	op := []string{"dialog", "accept"}
	if text != "" {
		op = append(op, text)
	}
	_, err := b.run(ctx, op...)
	return err
}

// DismissDialog dismisses the pending dialog.
func (b *Browser) DismissDialog(ctx context.Context) error {
	_, err := b.run(ctx, "dialog", "dismiss")
	return err
}
