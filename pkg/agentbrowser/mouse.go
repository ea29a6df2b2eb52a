package agentbrowser

import (
	"context"
	"strconv"
)

// MouseButton identifies a mouse button for MouseDown and MouseUp.
type MouseButton string

const (
	MouseLeft   MouseButton = "left"
	MouseRight  MouseButton = "right"
	MouseMiddle MouseButton = "middle"
)

// MouseMove moves the mouse to viewport coordinates.
func (b *Browser) MouseMove(ctx context.Context, x, y int) error {
	_, err := b.run(ctx, "mouse", "move", strconv.Itoa(x), strconv.Itoa(y))
	return err
}

// MouseDown presses a mouse button. An empty button means left.
func (b *Browser) MouseDown(ctx context.Context, button MouseButton) error {
	if button == "" {
		button = MouseLeft
	}
	_, err := b.run(ctx, "mouse", "down", string(button))
	return err
}

// MouseUp releases a mouse button. An empty button means left.
func (b *Browser) MouseUp(ctx context.Context, button MouseButton) error {
	if button == "" {
		button = MouseLeft
	}
	_, err := b.run(ctx, "mouse", "up", string(button))
	return err
}

// MouseWheel scrolls the wheel by dy vertically and dx horizontally.
func (b *Browser) MouseWheel(ctx context.Context, dy, dx int) error {
	_, err := b.run(ctx, "mouse", "wheel", strconv.Itoa(dy), strconv.Itoa(dx))
	return err
}
