package agentbrowser

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/gobwas/glob"

	"github.com/eshyun/agent-browser-go/pkg/config"
	"github.com/eshyun/agent-browser-go/pkg/logging"
)

const (
	// DefaultBinary is the agent-browser executable resolved from PATH.
	DefaultBinary = "agent-browser"

	// DefaultCloseRetries is how many passes CloseAllSessions makes over
	// the session list before giving up.
	DefaultCloseRetries = 2

	// DefaultCloseDelay is the pause between close passes.
	DefaultCloseDelay = 500 * time.Millisecond
)

// Browser is a client for one agent-browser session. Its configuration is
// immutable after New; every method spawns an independent subprocess, so a
// Browser is safe for concurrent use. Two Browsers sharing a session name
// race at the tool's layer, not here.
type Browser struct {
	binary         string
	session        string
	executablePath string
	headers        map[string]string
	headed         bool
	debug          bool
	cdpPort        int

	allowlist    []glob.Glob
	allowErr     error
	closeRetries int
	closeDelay   time.Duration

	runner runner
	logger *logging.Logger

	mu     sync.Mutex
	closed bool
}

// Option configures a Browser.
type Option func(*Browser)

// WithSession names the tool-managed session this client drives. An empty
// name uses the tool's default session.
func WithSession(name string) Option {
	return func(b *Browser) { b.session = name }
}

// WithBinary overrides the agent-browser executable name or path.
func WithBinary(path string) Option {
	return func(b *Browser) { b.binary = path }
}

// WithExecutablePath sets a custom browser executable, forwarded to the
// tool as --executable-path.
func WithExecutablePath(path string) Option {
	return func(b *Browser) { b.executablePath = path }
}

// WithHeaders sets default HTTP headers applied by Open.
func WithHeaders(headers map[string]string) Option {
	return func(b *Browser) { b.headers = headers }
}

// WithHeaded shows the browser window instead of running headless.
func WithHeaded(headed bool) Option {
	return func(b *Browser) { b.headed = headed }
}

// WithDebug enables the tool's debug output and command logging to the
// session log file.
func WithDebug(debug bool) Option {
	return func(b *Browser) { b.debug = debug }
}

// WithCDPPort connects the tool to an existing browser over the Chrome
// DevTools Protocol.
func WithCDPPort(port int) Option {
	return func(b *Browser) { b.cdpPort = port }
}

// WithCloseRetries sets the retry policy used when closing all sessions.
func WithCloseRetries(retries int, delay time.Duration) Option {
	return func(b *Browser) {
		b.closeRetries = retries
		b.closeDelay = delay
	}
}

// WithConfig applies settings loaded from an on-disk config file. Options
// placed after it override the file's values.
func WithConfig(cfg *config.Config) Option {
	return func(b *Browser) {
		if cfg == nil {
			return
		}
		if cfg.Binary != "" {
			b.binary = cfg.Binary
		}
		if cfg.Session != "" {
			b.session = cfg.Session
		}
		if cfg.ExecutablePath != "" {
			b.executablePath = cfg.ExecutablePath
		}
		if len(cfg.Headers) > 0 {
			b.headers = cfg.Headers
		}
		b.headed = cfg.Headed
		b.debug = cfg.Debug
		if cfg.CDPPort > 0 {
			b.cdpPort = cfg.CDPPort
		}
		if cfg.Close.Retries > 0 {
			b.closeRetries = cfg.Close.Retries
		}
		if cfg.Close.DelayMS > 0 {
			b.closeDelay = time.Duration(cfg.Close.DelayMS) * time.Millisecond
		}
		if len(cfg.AllowedURLs) > 0 {
			WithAllowedURLs(cfg.AllowedURLs...)(b)
		}
	}
}

// New creates a Browser client. It spawns nothing; the first subprocess
// runs when an operation is invoked. New fails if an allowlist pattern does
// not compile or the debug log file cannot be opened.
func New(opts ...Option) (*Browser, error) {
	b := &Browser{
		binary:       DefaultBinary,
		closeRetries: DefaultCloseRetries,
		closeDelay:   DefaultCloseDelay,
		runner:       execRunner{},
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.allowErr != nil {
		return nil, b.allowErr
	}
	if b.debug {
		logger, err := logging.NewLogger("agentbrowser")
		if err != nil {
			return nil, wrapError("init", "failed to open debug log", err)
		}
		b.logger = logger
	}
	return b, nil
}

// Session returns the configured session name ("" means the tool default).
func (b *Browser) Session() string {
	return b.session
}

// Connect attaches the session to an already-running browser exposing the
// given CDP port.
func (b *Browser) Connect(ctx context.Context, port int) error {
	_, err := b.run(ctx, "connect", strconv.Itoa(port))
	return err
}

// Close shuts down the session's browser. Closing an already-closed Browser
// is a no-op and spawns no process.
func (b *Browser) Close(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	if _, err := b.run(ctx, "close"); err != nil {
		return err
	}
	b.closed = true
	if b.logger != nil {
		b.logger.Close()
	}
	return nil
}

// Quit is an alias for Close.
func (b *Browser) Quit(ctx context.Context) error {
	return b.Close(ctx)
}

// logf writes to the debug log when one is attached.
func (b *Browser) logf(format string, args ...any) {
	if b.logger != nil {
		b.logger.Debugf(format, args...)
	}
}
