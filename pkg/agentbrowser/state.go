package agentbrowser

import "context"

// isCheck runs one "is" subcommand and decodes the boolean payload, which
// the tool returns either bare or wrapped in an object keyed by the check
// name.
func (b *Browser) isCheck(ctx context.Context, check, selector string) (bool, error) {
	data, err := b.runJSON(ctx, "is", check, selector)
	if err != nil {
		return false, err
	}
	switch v := data.(type) {
	case bool:
		return v, nil
	case map[string]any:
		if val, ok := v[check].(bool); ok {
			return val, nil
		}
	}
	return false, nil
}

// IsVisible reports whether an element is visible.
func (b *Browser) IsVisible(ctx context.Context, selector string) (bool, error) {
	return b.isCheck(ctx, "visible", selector)
}

// IsEnabled reports whether an element is enabled.
func (b *Browser) IsEnabled(ctx context.Context, selector string) (bool, error) {
	return b.isCheck(ctx, "enabled", selector)
}

// IsChecked reports whether a checkbox is checked.
func (b *Browser) IsChecked(ctx context.Context, selector string) (bool, error) {
	return b.isCheck(ctx, "checked", selector)
}
