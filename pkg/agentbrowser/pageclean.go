package agentbrowser

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// CleanedPage is page markup reduced to what matters for inspection:
// scripts, styles, and embeds stripped, semantic structure and targeting
// attributes kept.
type CleanedPage struct {
	HTML        string
	Title       string
	Description string
	Truncated   bool
}

// DefaultCleanLength bounds CleanContent output when no limit is given.
const DefaultCleanLength = 50000

// CleanContent fetches the live page HTML and returns a cleaned, bounded
// rendition of it. A maxLength of 0 or less uses DefaultCleanLength.
func (b *Browser) CleanContent(ctx context.Context, maxLength int) (*CleanedPage, error) {
	raw, err := b.GetContent(ctx)
	if err != nil {
		return nil, err
	}
	if maxLength <= 0 {
		maxLength = DefaultCleanLength
	}
	page, err := CleanPage(raw, maxLength)
	if err != nil {
		return nil, wrapError("eval", "failed to clean page content", err)
	}
	return page, nil
}

// CleanPage parses raw HTML and rebuilds it without noise elements,
// truncating the output once maxLength characters of content have been
// emitted.
func CleanPage(rawHTML string, maxLength int) (*CleanedPage, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	c := &pageCleaner{limit: maxLength}
	c.walk(doc, 0)

	return &CleanedPage{
		HTML:        c.out.String(),
		Title:       findTitle(doc),
		Description: findMetaDescription(doc),
		Truncated:   c.truncated,
	}, nil
}

// pageCleaner rebuilds a document while tracking the emitted length.
type pageCleaner struct {
	out       strings.Builder
	length    int
	limit     int
	truncated bool
}

func (c *pageCleaner) walk(n *html.Node, depth int) {
	if c.truncated {
		return
	}
	// Tag overhead in writeElement can push length past the limit between
	// text nodes, so truncation is re-checked at every node entry.
	if c.length >= c.limit {
		c.truncated = true
		return
	}

	switch n.Type {
	case html.CommentNode:
		return
	case html.TextNode:
		c.writeText(n.Data)
		return
	case html.ElementNode:
		tag := strings.ToLower(n.Data)
		if skippedElements[tag] {
			return
		}
		c.writeElement(n, tag, depth)
		return
	}

	// Document and fragment nodes only carry children.
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.walk(child, depth)
	}
}

func (c *pageCleaner) writeText(data string) {
	text := strings.TrimSpace(data)
	if text == "" {
		return
	}
	if c.length+len(text) > c.limit {
		c.out.WriteString(text[:c.limit-c.length])
		c.out.WriteString("...")
		c.length = c.limit
		c.truncated = true
		return
	}
	c.out.WriteString(text)
	c.length += len(text)
}

func (c *pageCleaner) writeElement(n *html.Node, tag string, depth int) {
	if depth > 0 && blockElements[tag] {
		c.out.WriteString("\n")
		c.out.WriteString(strings.Repeat("  ", depth))
	}

	c.out.WriteString("<")
	c.out.WriteString(tag)
	for _, attr := range n.Attr {
		if keepAttribute(tag, attr.Key) {
			fmt.Fprintf(&c.out, ` %s="%s"`, attr.Key, html.EscapeString(attr.Val))
		}
	}
	c.out.WriteString(">")
	c.length += len(tag) + 2

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.walk(child, depth+1)
		if c.truncated {
			break
		}
	}

	if voidElements[tag] {
		return
	}
	if blockElements[tag] {
		c.out.WriteString("\n")
		c.out.WriteString(strings.Repeat("  ", depth))
	}
	c.out.WriteString("</")
	c.out.WriteString(tag)
	c.out.WriteString(">")
	c.length += len(tag) + 3
}

var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"embed":    true,
	"object":   true,
	"svg":      true,
}

var blockElements = map[string]bool{
	"div": true, "p": true, "section": true, "article": true,
	"header": true, "footer": true, "nav": true, "main": true, "aside": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "li": true,
	"table": true, "tr": true, "td": true, "th": true,
	"form": true, "fieldset": true, "blockquote": true, "pre": true,
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

var globalAttributes = map[string]bool{
	"id":               true,
	"class":            true,
	"role":             true,
	"aria-label":       true,
	"aria-describedby": true,
}

// keepAttribute decides whether an attribute survives cleaning: global
// identity attributes, data-* hooks, and a few per-tag attributes useful
// for selector targeting.
func keepAttribute(tag, name string) bool {
	name = strings.ToLower(name)
	if globalAttributes[name] {
		return true
	}
	if strings.HasPrefix(name, "data-") {
		return true
	}
	switch tag {
	case "a":
		return name == "href" || name == "target"
	case "img":
		return name == "src" || name == "alt"
	case "input", "textarea", "select":
		return name == "name" || name == "type" || name == "placeholder" || name == "value"
	case "button":
		return name == "type" || name == "name"
	case "form":
		return name == "action" || name == "method"
	case "table":
		return name == "summary"
	}
	return false
}

func findTitle(doc *html.Node) string {
	var title string
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				title = strings.TrimSpace(n.FirstChild.Data)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)
	return title
}

func findMetaDescription(doc *html.Node) string {
	var description string
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if description != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "meta" {
			var isDescription bool
			var content string
			for _, attr := range n.Attr {
				switch attr.Key {
				case "name":
					isDescription = attr.Val == "description"
				case "content":
					content = attr.Val
				}
			}
			if isDescription && content != "" {
				description = strings.TrimSpace(content)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)
	return description
}
