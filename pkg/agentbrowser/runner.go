package agentbrowser

import (
	"bytes"
	"context"
	"io"
	"os/exec"
)

// runner executes one argv token list as a subprocess. It is the only seam
// between the binding and the operating system; tests replace it with a
// fake so no real tool is required.
type runner interface {
	// Run executes argv (argv[0] is the binary) with optional stdin and
	// returns captured stdout and stderr. A non-zero exit status is
	// reported through err alongside whatever output was produced.
	Run(ctx context.Context, argv []string, stdin io.Reader) (stdout, stderr []byte, err error)
}

// execRunner runs commands with os/exec. The argv slice is passed to the
// kernel as-is; no shell is involved, so arguments are never reinterpreted.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, argv []string, stdin io.Reader) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
