package agentbrowser

import (
	"context"
	"strconv"
)

// Snapshot is an accessibility-tree snapshot of the page. Tree is the
// rendered outline; Refs maps element refs (e.g. "@e2") to element details
// usable as selectors in later commands.
type Snapshot struct {
	Tree string         `json:"snapshot"`
	Refs map[string]any `json:"refs"`
}

// SnapshotOptions tunes the snapshot payload.
type SnapshotOptions struct {
	// InteractiveOnly limits the tree to interactive elements.
	InteractiveOnly bool

	// Compact removes empty structural elements.
	Compact bool

	// Depth limits the tree depth (0 means unlimited).
	Depth int

	// Selector scopes the snapshot to a CSS selector.
	Selector string
}

// args translates options into the tool's snapshot flags.
func (o SnapshotOptions) args() []string {
	op := []string{"snapshot"}
	if o.InteractiveOnly {
		op = append(op, "-i")
	}
	if o.Compact {
		op = append(op, "-c")
	}
	if o.Depth > 0 {
		op = append(op, "-d", strconv.Itoa(o.Depth))
	}
	if o.Selector != "" {
		op = append(op, "-s", o.Selector)
	}
	return op
}

// TakeSnapshot returns the accessibility tree with element refs.
func (b *Browser) TakeSnapshot(ctx context.Context, opts SnapshotOptions) (*Snapshot, error) {
	var snap Snapshot
	if err := b.runJSONInto(ctx, &snap, opts.args()...); err != nil {
		return nil, err
	}
	return &snap, nil
}
