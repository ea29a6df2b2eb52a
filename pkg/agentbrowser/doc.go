// Package agentbrowser provides a Go client for the agent-browser CLI.
//
// The agent-browser tool owns all browser control: it launches and manages
// named, persistent browser sessions and exposes every page operation as a
// subcommand. This package is the binding layer on top of it. Each method
// translates its arguments into an argv token list, runs the tool as a
// subprocess (never through a shell), and decodes the JSON response envelope
// the tool prints on stdout.
//
// # Architecture
//
// The package is built around three core concepts:
//
// 1. Browser: an immutable client configuration (session name, tool binary,
// headed/debug flags, CDP port) plus the subprocess runner
// 2. Response envelope: the {success, data, error} JSON structure every
// JSON-mode invocation returns
// 3. Batch: an accumulator that queues several commands and submits them as
// one subprocess invocation, replaying the returned envelopes in order
//
// # Sessions
//
// Sessions are managed entirely by the external tool. Two Browser values
// configured with the same session name drive the same browser; the binding
// adds no coordination between them. Close is idempotent: closing an
// already-closed Browser is a no-op and spawns no process.
//
// # Errors
//
// Every failure surfaces as *Error carrying a human-readable message,
// whether the subprocess could not be spawned, exited non-zero, reported
// success=false, or printed output that was not valid JSON.
//
// # Example Usage
//
//	browser, err := agentbrowser.New(agentbrowser.WithSession("research"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer browser.Close(context.Background())
//
//	ctx := context.Background()
//	if err := browser.Open(ctx, "https://example.com"); err != nil {
//	    log.Fatal(err)
//	}
//	title, err := browser.GetTitle(ctx)
//
// Batched execution amortizes the per-call process spawn:
//
//	results, err := browser.WithBatch(ctx, func(b *agentbrowser.Batch) error {
//	    b.Open("https://example.com").GetTitle().GetURL()
//	    return nil
//	})
package agentbrowser
