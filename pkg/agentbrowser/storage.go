package agentbrowser

import "context"

// storageScope is the tool's storage subcommand scope.
type storageScope string

const (
	localScope   storageScope = "local"
	sessionScope storageScope = "session"
)

func (b *Browser) getStorage(ctx context.Context, scope storageScope, key string) (any, error) {
	op := []string{"storage", string(scope)}
	if key != "" {
		op = append(op, key)
	}
	return b.runJSON(ctx, op...)
}

// GetLocalStorage returns localStorage. An empty key returns the whole
// store; a non-empty key returns that entry.
func (b *Browser) GetLocalStorage(ctx context.Context, key string) (any, error) {
	return b.getStorage(ctx, localScope, key)
}

// SetLocalStorage sets a localStorage entry.
func (b *Browser) SetLocalStorage(ctx context.Context, key, value string) error {
	_, err := b.run(ctx, "storage", "local", "set", key, value)
	return err
}

// ClearLocalStorage clears localStorage.
func (b *Browser) ClearLocalStorage(ctx context.Context) error {
	_, err := b.run(ctx, "storage", "local", "clear")
	return err
}

// GetSessionStorage returns sessionStorage, whole store or one entry.
func (b *Browser) GetSessionStorage(ctx context.Context, key string) (any, error) {
	return b.getStorage(ctx, sessionScope, key)
}

// SetSessionStorage sets a sessionStorage entry.
func (b *Browser) SetSessionStorage(ctx context.Context, key, value string) error {
	_, err := b.run(ctx, "storage", "session", "set", key, value)
	return err
}

// ClearSessionStorage clears sessionStorage.
func (b *Browser) ClearSessionStorage(ctx context.Context) error {
	_, err := b.run(ctx, "storage", "session", "clear")
	return err
}
