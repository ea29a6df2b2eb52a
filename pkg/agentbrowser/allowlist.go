package agentbrowser

import (
	"fmt"

	"github.com/gobwas/glob"
)

// WithAllowedURLs restricts navigation to URLs matching at least one glob
// pattern (e.g. "https://*.example.com/*"). Open and NewTab calls whose URL
// matches no pattern fail locally, before any subprocess is spawned. An
// empty allowlist permits every URL.
func WithAllowedURLs(patterns ...string) Option {
	return func(b *Browser) {
		for _, pattern := range patterns {
			g, err := glob.Compile(pattern)
			if err != nil {
				b.allowErr = wrapError("init", fmt.Sprintf("invalid allowlist pattern %q", pattern), err)
				return
			}
			b.allowlist = append(b.allowlist, g)
		}
	}
}

// checkAllowed enforces the navigation allowlist for op against url.
func (b *Browser) checkAllowed(op, url string) error {
	if len(b.allowlist) == 0 {
		return nil
	}
	for _, g := range b.allowlist {
		if g.Match(url) {
			return nil
		}
	}
	return newError(op, fmt.Sprintf("url %q not permitted by allowlist", url))
}
