package agentbrowser

import "context"

// Screenshot captures the page. With a non-empty path the image is written
// to disk by the tool and the returned string is empty; with an empty path
// the tool prints the PNG as base64 on stdout, which is returned.
func (b *Browser) Screenshot(ctx context.Context, path string, fullPage bool) (string, error) {
	op := []string{"screenshot"}
	if path != "" {
		op = append(op, path)
	}
	if fullPage {
		op = append(op, "--full")
	}
	return b.run(ctx, op...)
}

// PDF saves the page as a PDF at the given path.
func (b *Browser) PDF(ctx context.Context, path string) error {
	_, err := b.run(ctx, "pdf", path)
	return err
}
