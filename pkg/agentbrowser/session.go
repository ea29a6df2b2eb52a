package agentbrowser

import (
	"context"
	"time"
)

// ShutdownOptions controls session sweep behavior. The retry-with-delay
// policy is configurable rather than fixed; zero values use the package
// defaults.
type ShutdownOptions struct {
	// Binary overrides the agent-browser executable.
	Binary string

	// Retries is how many passes to make over the remaining sessions.
	Retries int

	// Delay is the pause between passes.
	Delay time.Duration

	// SettleWait is how long Shutdown waits after the final pass before
	// re-checking for survivors.
	SettleWait time.Duration
}

func (o ShutdownOptions) withDefaults() ShutdownOptions {
	if o.Binary == "" {
		o.Binary = DefaultBinary
	}
	if o.Retries <= 0 {
		o.Retries = DefaultCloseRetries
	}
	if o.Delay <= 0 {
		o.Delay = DefaultCloseDelay
	}
	return o
}

// ShutdownReport summarizes a Shutdown run.
type ShutdownReport struct {
	// SessionsClosed counts sessions closed across all passes.
	SessionsClosed int

	// Remaining lists sessions still alive after the settle wait.
	Remaining []string
}

// CurrentSession returns the session name the tool resolves for this
// client, or "default" when it reports none.
func (b *Browser) CurrentSession(ctx context.Context) (string, error) {
	data, err := b.runJSON(ctx, "session")
	if err != nil {
		return "", err
	}
	if name := stringField(data, "session"); name != "" {
		return name, nil
	}
	return "default", nil
}

// IsSessionActive reports whether this client's session appears in the
// tool's active session list.
func (b *Browser) IsSessionActive(ctx context.Context) (bool, error) {
	sessions, err := listSessions(ctx, b.runner, b.binary)
	if err != nil {
		return false, err
	}
	current := b.session
	if current == "" {
		current = "default"
	}
	for _, name := range sessions {
		if name == current {
			return true, nil
		}
	}
	return false, nil
}

// ListSessions returns the names of all active browser sessions.
func ListSessions(ctx context.Context) ([]string, error) {
	return listSessions(ctx, execRunner{}, DefaultBinary)
}

// ListSessionsWith is ListSessions against a specific agent-browser
// executable. An empty binary uses DefaultBinary.
func ListSessionsWith(ctx context.Context, binary string) ([]string, error) {
	if binary == "" {
		binary = DefaultBinary
	}
	return listSessions(ctx, execRunner{}, binary)
}

func listSessions(ctx context.Context, r runner, binary string) ([]string, error) {
	argv := []string{binary, "session", "list", "--json"}
	stdout, stderr, err := r.Run(ctx, argv, nil)
	if err != nil {
		return nil, commandFailed("session", stderr, err)
	}
	data, err := decodeEnvelope("session", stdout)
	if err != nil {
		return nil, err
	}
	payload, err := decodeAny("session", data)
	if err != nil {
		return nil, err
	}
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, nil
	}
	raw, ok := obj["sessions"].([]any)
	if !ok {
		return nil, nil
	}
	sessions := make([]string, 0, len(raw))
	for _, entry := range raw {
		if name, ok := entry.(string); ok {
			sessions = append(sessions, name)
		}
	}
	return sessions, nil
}

// CloseAllSessions closes every active session, retrying per the options
// since sessions can respawn while a pass is in flight. It returns the
// number of sessions closed.
func CloseAllSessions(ctx context.Context, opts ShutdownOptions) (int, error) {
	opts = opts.withDefaults()
	return closeAllSessions(ctx, execRunner{}, opts)
}

// CloseAllSessions sweeps every active session using this client's binary
// and configured retry policy.
func (b *Browser) CloseAllSessions(ctx context.Context) (int, error) {
	opts := ShutdownOptions{
		Binary:  b.binary,
		Retries: b.closeRetries,
		Delay:   b.closeDelay,
	}
	return closeAllSessions(ctx, b.runner, opts.withDefaults())
}

func closeAllSessions(ctx context.Context, r runner, opts ShutdownOptions) (int, error) {
	totalClosed := 0

	for attempt := 0; attempt < opts.Retries; attempt++ {
		sessions, err := listSessions(ctx, r, opts.Binary)
		if err != nil {
			return totalClosed, err
		}
		if len(sessions) == 0 {
			break
		}

		for _, name := range sessions {
			client := &Browser{
				binary:  opts.Binary,
				session: name,
				runner:  r,
			}
			if err := client.Close(ctx); err == nil {
				totalClosed++
			}
		}

		if attempt < opts.Retries-1 {
			remaining, err := listSessions(ctx, r, opts.Binary)
			if err != nil || len(remaining) == 0 {
				break
			}
			if err := sleepCtx(ctx, opts.Delay); err != nil {
				return totalClosed, err
			}
		}
	}

	return totalClosed, nil
}

// Shutdown closes all sessions, waits for the tool to settle, and reports
// what was closed and what survived.
func Shutdown(ctx context.Context, opts ShutdownOptions) (ShutdownReport, error) {
	opts = opts.withDefaults()
	return shutdown(ctx, execRunner{}, opts)
}

func shutdown(ctx context.Context, r runner, opts ShutdownOptions) (ShutdownReport, error) {
	var report ShutdownReport

	closed, err := closeAllSessions(ctx, r, opts)
	report.SessionsClosed = closed
	if err != nil {
		return report, err
	}

	if opts.SettleWait > 0 {
		if err := sleepCtx(ctx, opts.SettleWait); err != nil {
			return report, err
		}
	}

	remaining, err := listSessions(ctx, r, opts.Binary)
	if err != nil {
		return report, err
	}
	report.Remaining = remaining
	return report, nil
}

// sleepCtx sleeps for d unless the context ends first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
