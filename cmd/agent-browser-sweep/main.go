// Package main provides agent-browser-sweep, a small utility that closes
// every active agent-browser session. It is meant for CI teardown and for
// cleaning up after crashed scripts that left sessions behind.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eshyun/agent-browser-go/pkg/agentbrowser"
)

func main() {
	binary := flag.String("binary", agentbrowser.DefaultBinary, "agent-browser executable name or path")
	retries := flag.Int("retries", agentbrowser.DefaultCloseRetries, "passes to make over remaining sessions")
	delay := flag.Duration("delay", agentbrowser.DefaultCloseDelay, "pause between passes")
	settle := flag.Duration("settle", 2*time.Second, "wait before re-checking for survivors")
	quiet := flag.Bool("quiet", false, "suppress progress output")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions, err := agentbrowser.ListSessionsWith(ctx, *binary)
	if err != nil {
		fmt.Fprintf(os.Stderr, "agent-browser-sweep: %v\n", err)
		os.Exit(1)
	}
	if len(sessions) == 0 {
		if !*quiet {
			fmt.Println("No active sessions.")
		}
		return
	}
	if !*quiet {
		fmt.Printf("Shutting down %d session(s)...\n", len(sessions))
	}

	report, err := agentbrowser.Shutdown(ctx, agentbrowser.ShutdownOptions{
		Binary:     *binary,
		Retries:    *retries,
		Delay:      *delay,
		SettleWait: *settle,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "agent-browser-sweep: %v\n", err)
		os.Exit(1)
	}

	if !*quiet {
		fmt.Printf("Closed %d session(s).\n", report.SessionsClosed)
	}
	if len(report.Remaining) > 0 {
		fmt.Fprintf(os.Stderr, "Sessions still alive: %v\n", report.Remaining)
		os.Exit(1)
	}
	if !*quiet {
		fmt.Println("Shutdown complete.")
	}
}
