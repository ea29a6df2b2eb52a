package agentbrowser

import (
	"context"
	"fmt"
)

// Box is an element's bounding box in page coordinates.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// GetText returns the text content of an element.
func (b *Browser) GetText(ctx context.Context, selector string) (string, error) {
	data, err := b.runJSON(ctx, "get", "text", selector)
	if err != nil {
		return "", err
	}
	return stringField(data, "text"), nil
}

// GetHTML returns the innerHTML of an element.
func (b *Browser) GetHTML(ctx context.Context, selector string) (string, error) {
	data, err := b.runJSON(ctx, "get", "html", selector)
	if err != nil {
		return "", err
	}
	return stringField(data, "html"), nil
}

// GetValue returns an input element's value.
func (b *Browser) GetValue(ctx context.Context, selector string) (string, error) {
	data, err := b.runJSON(ctx, "get", "value", selector)
	if err != nil {
		return "", err
	}
	return stringField(data, "value"), nil
}

// GetAttr returns an attribute value of an element.
func (b *Browser) GetAttr(ctx context.Context, selector, attr string) (string, error) {
	data, err := b.runJSON(ctx, "get", "attr", selector, attr)
	if err != nil {
		return "", err
	}
	return stringField(data, "value"), nil
}

// GetTitle returns the page title.
func (b *Browser) GetTitle(ctx context.Context) (string, error) {
	data, err := b.runJSON(ctx, "get", "title")
	if err != nil {
		return "", err
	}
	return stringField(data, "title"), nil
}

// GetURL returns the current page URL.
func (b *Browser) GetURL(ctx context.Context) (string, error) {
	data, err := b.runJSON(ctx, "get", "url")
	if err != nil {
		return "", err
	}
	return stringField(data, "url"), nil
}

// GetCount returns the number of elements matching a selector.
func (b *Browser) GetCount(ctx context.Context, selector string) (int, error) {
	data, err := b.runJSON(ctx, "get", "count", selector)
	if err != nil {
		return 0, err
	}
	return intField(data, "count"), nil
}

// GetBox returns an element's bounding box. The tool emits either a bare
// box object or one wrapped as {"box": {...}}; both are accepted.
func (b *Browser) GetBox(ctx context.Context, selector string) (*Box, error) {
	var payload struct {
		Box
		Wrapped *Box `json:"box"`
	}
	if err := b.runJSONInto(ctx, &payload, "get", "box", selector); err != nil {
		return nil, err
	}
	if payload.Wrapped != nil {
		return payload.Wrapped, nil
	}
	box := payload.Box
	return &box, nil
}

// PageFormat selects how GetPage renders the document.
type PageFormat string

const (
	// PageHTML returns the full document markup.
	PageHTML PageFormat = "html"

	// PageText returns the body's rendered text.
	PageText PageFormat = "text"
)

// GetPage returns the current page in the requested format, evaluated in
// the page itself so the result reflects the live DOM.
func (b *Browser) GetPage(ctx context.Context, format PageFormat) (string, error) {
	switch format {
	case PageHTML:
		return b.EvalString(ctx, "document.documentElement.outerHTML")
	case PageText:
		return b.EvalString(ctx, "document.body.innerText")
	default:
		return "", newError("get", fmt.Sprintf("unsupported page format: %s", format))
	}
}

// GetContent returns the raw HTML of the current page.
func (b *Browser) GetContent(ctx context.Context) (string, error) {
	return b.GetPage(ctx, PageHTML)
}
