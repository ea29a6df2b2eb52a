package agentbrowser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Batch accumulates commands and submits them in one subprocess invocation,
// amortizing the per-call process spawn. Queue methods record the command's
// token list without executing anything; Flush sends every queued token
// list to the tool's batch interface and replays the returned envelopes in
// submission order.
//
// A Batch is not safe for concurrent use and is single-use: after a
// successful Flush it accepts no further commands.
type Batch struct {
	browser  *Browser
	commands [][]string
	queueErr error
	flushed  bool
}

// BatchResult is the outcome of one queued command. Exactly one of Data and
// Err is meaningful; commands with no structured output yield a nil Data.
type BatchResult struct {
	Data any
	Err  error
}

// Batch starts a new command accumulator bound to this client.
func (b *Browser) Batch() *Batch {
	return &Batch{browser: b}
}

// WithBatch runs fn with a fresh Batch and flushes it when fn returns nil,
// mirroring scoped accumulate-then-flush semantics. When fn returns an
// error the queue is discarded and nothing executes.
func (b *Browser) WithBatch(ctx context.Context, fn func(*Batch) error) ([]BatchResult, error) {
	batch := b.Batch()
	if err := fn(batch); err != nil {
		return nil, err
	}
	return batch.Flush(ctx)
}

// queue records one command's operation tokens.
func (bt *Batch) queue(op ...string) *Batch {
	if bt.flushed {
		bt.fail(newError("batch", "batch already flushed"))
		return bt
	}
	bt.commands = append(bt.commands, op)
	return bt
}

// fail records the first queue-time error; Flush reports it.
func (bt *Batch) fail(err error) {
	if bt.queueErr == nil {
		bt.queueErr = err
	}
}

// Len returns the number of queued commands.
func (bt *Batch) Len() int {
	return len(bt.commands)
}

// Open queues a navigation using the client's default headers.
func (bt *Batch) Open(url string) *Batch {
	return bt.OpenWithHeaders(url, nil)
}

// OpenWithHeaders queues a navigation with explicit headers.
func (bt *Batch) OpenWithHeaders(url string, headers map[string]string) *Batch {
	if err := bt.browser.checkAllowed("open", url); err != nil {
		bt.fail(err)
		return bt
	}
	op := []string{"open", url}
	if headers == nil {
		headers = bt.browser.headers
	}
	if len(headers) > 0 {
		encoded, err := json.Marshal(headers)
		if err != nil {
			bt.fail(wrapError("open", "failed to encode headers", err))
			return bt
		}
		op = append(op, "--headers", string(encoded))
	}
	return bt.queue(op...)
}

// Click queues a click.
func (bt *Batch) Click(selector string) *Batch {
	return bt.queue("click", selector)
}

// Fill queues a clear-and-fill.
func (bt *Batch) Fill(selector, text string) *Batch {
	return bt.queue("fill", selector, text)
}

// Type queues keystroke typing.
func (bt *Batch) Type(selector, text string) *Batch {
	return bt.queue("type", selector, text)
}

// Press queues a key press.
func (bt *Batch) Press(key string) *Batch {
	return bt.queue("press", key)
}

// Hover queues a hover.
func (bt *Batch) Hover(selector string) *Batch {
	return bt.queue("hover", selector)
}

// Wait queues a wait for a selector or a millisecond count given as digits.
func (bt *Batch) Wait(selectorOrMS string) *Batch {
	return bt.queue("wait", selectorOrMS)
}

// GetTitle queues a page title fetch.
func (bt *Batch) GetTitle() *Batch {
	return bt.queue("get", "title")
}

// GetURL queues a current URL fetch.
func (bt *Batch) GetURL() *Batch {
	return bt.queue("get", "url")
}

// GetText queues a text content fetch.
func (bt *Batch) GetText(selector string) *Batch {
	return bt.queue("get", "text", selector)
}

// GetPage queues a whole-page fetch in the given format.
func (bt *Batch) GetPage(format PageFormat) *Batch {
	switch format {
	case PageHTML:
		return bt.queue("eval", "document.documentElement.outerHTML")
	case PageText:
		return bt.queue("eval", "document.body.innerText")
	default:
		bt.fail(newError("batch", fmt.Sprintf("unsupported page format: %s", format)))
		return bt
	}
}

// Eval queues a JavaScript evaluation.
func (bt *Batch) Eval(javascript string) *Batch {
	return bt.queue("eval", javascript)
}

// Screenshot queues a screenshot, written to path or returned as base64
// when path is empty.
func (bt *Batch) Screenshot(path string) *Batch {
	op := []string{"screenshot"}
	if path != "" {
		op = append(op, path)
	}
	return bt.queue(op...)
}

// TakeSnapshot queues an accessibility snapshot.
func (bt *Batch) TakeSnapshot(interactiveOnly, compact bool) *Batch {
	op := []string{"snapshot"}
	if interactiveOnly {
		op = append(op, "-i")
	}
	if compact {
		op = append(op, "-c")
	}
	return bt.queue(op...)
}

// Flush submits every queued command as one invocation of the tool's batch
// interface and distributes the returned envelopes positionally: result i
// belongs to queued command i. The tool must return exactly one envelope
// per command; any other count fails the whole batch. A command the tool
// reports as failed gets the error in its own slot; whether later commands
// still ran is the tool's decision, not this layer's.
//
// Flushing an empty batch is a no-op.
func (bt *Batch) Flush(ctx context.Context) ([]BatchResult, error) {
	if bt.queueErr != nil {
		return nil, bt.queueErr
	}
	if bt.flushed {
		return nil, newError("batch", "batch already flushed")
	}
	if len(bt.commands) == 0 {
		return nil, nil
	}

	// One JSON array of tokens per line on the child's stdin; the tool
	// replies with a JSON array of envelopes on stdout.
	var stdin bytes.Buffer
	enc := json.NewEncoder(&stdin)
	for _, op := range bt.commands {
		if err := enc.Encode(op); err != nil {
			return nil, wrapError("batch", "failed to encode command", err)
		}
	}

	b := bt.browser
	argv := b.buildArgs(true, "batch")
	b.logf("batch run: %v (%d commands)", argv, len(bt.commands))

	stdout, stderr, err := b.runner.Run(ctx, argv, &stdin)
	if err != nil {
		return nil, commandFailed("batch", stderr, err)
	}

	var envelopes []envelope
	if err := json.Unmarshal(stdout, &envelopes); err != nil {
		return nil, wrapError("batch", "failed to parse batch output", err)
	}
	if len(envelopes) != len(bt.commands) {
		return nil, newError("batch", fmt.Sprintf(
			"result count mismatch: queued %d commands, got %d results",
			len(bt.commands), len(envelopes)))
	}

	results := make([]BatchResult, len(envelopes))
	for i, env := range envelopes {
		if !env.Success {
			msg := env.Error
			if msg == "" {
				msg = "command failed"
			}
			results[i].Err = newError("batch", msg)
			continue
		}
		data, err := decodeAny("batch", env.Data)
		if err != nil {
			results[i].Err = err
			continue
		}
		results[i].Data = data
	}

	bt.flushed = true
	return results, nil
}
