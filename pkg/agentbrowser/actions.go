package agentbrowser

import (
	"context"
	"strconv"
)

// Click clicks an element by selector or snapshot ref (e.g. "@e2").
func (b *Browser) Click(ctx context.Context, selector string) error {
	_, err := b.run(ctx, "click", selector)
	return err
}

// DblClick double-clicks an element.
func (b *Browser) DblClick(ctx context.Context, selector string) error {
	_, err := b.run(ctx, "dblclick", selector)
	return err
}

// Focus focuses an element.
func (b *Browser) Focus(ctx context.Context, selector string) error {
	_, err := b.run(ctx, "focus", selector)
	return err
}

// Type types text into an element, keystroke by keystroke.
func (b *Browser) Type(ctx context.Context, selector, text string) error {
	_, err := b.run(ctx, "type", selector, text)
	return err
}

// Fill clears an element and fills it with text.
func (b *Browser) Fill(ctx context.Context, selector, text string) error {
	_, err := b.run(ctx, "fill", selector, text)
	return err
}

// Press presses a key, e.g. "Enter", "Tab", or "Control+a".
func (b *Browser) Press(ctx context.Context, key string) error {
	_, err := b.run(ctx, "press", key)
	return err
}

// Key is an alias for Press.
func (b *Browser) Key(ctx context.Context, key string) error {
	return b.Press(ctx, key)
}

// KeyDown holds a key down.
func (b *Browser) KeyDown(ctx context.Context, key string) error {
	_, err := b.run(ctx, "keydown", key)
	return err
}

// KeyUp releases a key.
func (b *Browser) KeyUp(ctx context.Context, key string) error {
	_, err := b.run(ctx, "keyup", key)
	return err
}

// Hover hovers over an element.
func (b *Browser) Hover(ctx context.Context, selector string) error {
	_, err := b.run(ctx, "hover", selector)
	return err
}

// Select selects a dropdown option by value.
func (b *Browser) Select(ctx context.Context, selector, value string) error {
	_, err := b.run(ctx, "select", selector, value)
	return err
}

// Check checks a checkbox.
func (b *Browser) Check(ctx context.Context, selector string) error {
	_, err := b.run(ctx, "check", selector)
	return err
}

// Uncheck unchecks a checkbox.
func (b *Browser) Uncheck(ctx context.Context, selector string) error {
	_, err := b.run(ctx, "uncheck", selector)
	return err
}

// Scroll scrolls the page in a direction ("up", "down", "left", "right").
// A pixels value of 0 or less uses the tool's default distance.
func (b *Browser) Scroll(ctx context.Context, direction string, pixels int) error {
	op := []string{"scroll", direction}
	if pixels > 0 {
		op = append(op, strconv.Itoa(pixels))
	}
	_, err := b.run(ctx, op...)
	return err
}

// ScrollIntoView scrolls an element into view.
func (b *Browser) ScrollIntoView(ctx context.Context, selector string) error {
	_, err := b.run(ctx, "scrollintoview", selector)
	return err
}

// Drag drags from a source element and drops on a target element.
func (b *Browser) Drag(ctx context.Context, source, target string) error {
	_, err := b.run(ctx, "drag", source, target)
	return err
}

// Upload uploads one or more files to a file input element.
func (b *Browser) Upload(ctx context.Context, selector string, files ...string) error {
	op := append([]string{"upload", selector}, files...)
	_, err := b.run(ctx, op...)
	return err
}

// Highlight visually highlights an element.
func (b *Browser) Highlight(ctx context.Context, selector string) error {
	_, err := b.run(ctx, "highlight", selector)
	return err
}
