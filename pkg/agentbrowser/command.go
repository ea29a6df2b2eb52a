package agentbrowser

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
)

// buildArgs translates an operation's tokens into the full argv for one
// tool invocation: binary, global options in fixed order (each exactly
// once), the operation tokens in caller order, then --json when structured
// output is requested.
func (b *Browser) buildArgs(jsonOutput bool, op ...string) []string {
	argv := make([]string, 0, len(op)+10)
	argv = append(argv, b.binary)

	if b.session != "" {
		argv = append(argv, "--session", b.session)
	}
	if b.executablePath != "" {
		argv = append(argv, "--executable-path", b.executablePath)
	}
	if b.headed {
		argv = append(argv, "--headed")
	}
	if b.debug {
		argv = append(argv, "--debug")
	}
	if b.cdpPort > 0 {
		argv = append(argv, "--cdp", strconv.Itoa(b.cdpPort))
	}

	argv = append(argv, op...)
	if jsonOutput {
		argv = append(argv, "--json")
	}
	return argv
}

// run executes one plain-text operation and returns trimmed stdout. A spawn
// failure or non-zero exit becomes *Error carrying the tool's stderr.
func (b *Browser) run(ctx context.Context, op ...string) (string, error) {
	argv := b.buildArgs(false, op...)
	b.logf("run: %v", argv)

	stdout, stderr, err := b.runner.Run(ctx, argv, nil)
	if err != nil {
		return "", commandFailed(op[0], stderr, err)
	}
	return strings.TrimSpace(string(stdout)), nil
}

// runJSON executes one JSON-mode operation and returns the decoded data
// payload from the response envelope.
func (b *Browser) runJSON(ctx context.Context, op ...string) (any, error) {
	argv := b.buildArgs(true, op...)
	b.logf("run: %v", argv)

	stdout, stderr, err := b.runner.Run(ctx, argv, nil)
	if err != nil {
		return nil, commandFailed(op[0], stderr, err)
	}
	data, err := decodeEnvelope(op[0], stdout)
	if err != nil {
		return nil, err
	}
	return decodeAny(op[0], data)
}

// runJSONInto executes a JSON-mode operation and unmarshals the data
// payload into out.
func (b *Browser) runJSONInto(ctx context.Context, out any, op ...string) error {
	argv := b.buildArgs(true, op...)
	b.logf("run: %v", argv)

	stdout, stderr, err := b.runner.Run(ctx, argv, nil)
	if err != nil {
		return commandFailed(op[0], stderr, err)
	}
	data, err := decodeEnvelope(op[0], stdout)
	if err != nil {
		return err
	}
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return wrapError(op[0], "failed to decode data payload", err)
	}
	return nil
}

// commandFailed converts a subprocess failure into *Error, preferring the
// tool's stderr text over the raw exec error.
func commandFailed(op string, stderr []byte, err error) *Error {
	msg := strings.TrimSpace(string(stderr))
	if msg == "" {
		return wrapError(op, "command failed", err)
	}
	return wrapError(op, "command failed: "+msg, err)
}
