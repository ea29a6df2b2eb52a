package agentbrowser

import (
	"context"
	"strings"
)

// StartTrace starts recording a Playwright trace, optionally to a path.
func (b *Browser) StartTrace(ctx context.Context, path string) error {
	op := []string{"trace", "start"}
	if path != "" {
		op = append(op, path)
	}
	_, err := b.run(ctx, op...)
	return err
}

// StopTrace stops recording and saves the trace.
func (b *Browser) StopTrace(ctx context.Context, path string) error {
	op := []string{"trace", "stop"}
	if path != "" {
		op = append(op, path)
	}
	_, err := b.run(ctx, op...)
	return err
}

// Console returns the captured console messages, one per line. With clear
// set, the tool empties its buffer after reporting.
func (b *Browser) Console(ctx context.Context, clear bool) ([]string, error) {
	return b.lineReport(ctx, "console", clear)
}

// PageErrors returns the captured page errors, one per line.
func (b *Browser) PageErrors(ctx context.Context, clear bool) ([]string, error) {
	return b.lineReport(ctx, "errors", clear)
}

func (b *Browser) lineReport(ctx context.Context, command string, clear bool) ([]string, error) {
	op := []string{command}
	if clear {
		op = append(op, "--clear")
	}
	out, err := b.run(ctx, op...)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// SaveState saves the session's authentication state (cookies, storage) to
// a file the tool writes.
func (b *Browser) SaveState(ctx context.Context, path string) error {
	_, err := b.run(ctx, "state", "save", path)
	return err
}

// LoadState restores authentication state from a file.
func (b *Browser) LoadState(ctx context.Context, path string) error {
	_, err := b.run(ctx, "state", "load", path)
	return err
}
