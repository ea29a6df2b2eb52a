package agentbrowser

import "context"

// FindOptions refines a semantic locator.
type FindOptions struct {
	// Value is the value for actions that take one (e.g. "fill").
	Value string

	// Name matches the accessible name when locating by role.
	Name string
}

// findReturnsJSON reports whether a find action returns structured data.
func findReturnsJSON(action string) bool {
	return action == "text"
}

// FindRole locates an element by ARIA role and performs an action on it
// ("click", "fill", "text", ...). The result is the action's output for
// actions that produce one.
func (b *Browser) FindRole(ctx context.Context, role, action string, opts FindOptions) (any, error) {
	op := []string{"find", "role", role, action}
	if opts.Value != "" {
		op = append(op, opts.Value)
	}
	if opts.Name != "" {
		op = append(op, "--name", opts.Name)
	}
	return b.find(ctx, action, op)
}

// FindText locates an element by its text content and performs an action.
func (b *Browser) FindText(ctx context.Context, text, action string) (any, error) {
	return b.find(ctx, action, []string{"find", "text", text, action})
}

// FindLabel locates a form control by its label and performs an action.
func (b *Browser) FindLabel(ctx context.Context, label, action, value string) (any, error) {
	op := []string{"find", "label", label, action}
	if value != "" {
		op = append(op, value)
	}
	return b.find(ctx, action, op)
}

func (b *Browser) find(ctx context.Context, action string, op []string) (any, error) {
	if findReturnsJSON(action) {
		return b.runJSON(ctx, op...)
	}
	out, err := b.run(ctx, op...)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return out, nil
}
