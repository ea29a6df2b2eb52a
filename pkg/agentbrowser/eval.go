package agentbrowser

import "context"

// Eval executes JavaScript in the page and returns the decoded result.
func (b *Browser) Eval(ctx context.Context, javascript string) (any, error) {
	return b.runJSON(ctx, "eval", javascript)
}

// EvalString executes JavaScript whose result is a string.
func (b *Browser) EvalString(ctx context.Context, javascript string) (string, error) {
	data, err := b.Eval(ctx, javascript)
	if err != nil {
		return "", err
	}
	return stringField(data, "result"), nil
}
