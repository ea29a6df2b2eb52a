package agentbrowser

import "context"

// Cookie is one browser cookie as reported by the tool.
type Cookie struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Domain   string  `json:"domain,omitempty"`
	Path     string  `json:"path,omitempty"`
	Expires  float64 `json:"expires,omitempty"`
	HTTPOnly bool    `json:"httpOnly,omitempty"`
	Secure   bool    `json:"secure,omitempty"`
	SameSite string  `json:"sameSite,omitempty"`
}

// GetCookies returns all cookies for the session.
func (b *Browser) GetCookies(ctx context.Context) ([]Cookie, error) {
	var cookies []Cookie
	if err := b.runJSONInto(ctx, &cookies, "cookies"); err != nil {
		return nil, err
	}
	return cookies, nil
}

// SetCookie sets a cookie on the current page.
func (b *Browser) SetCookie(ctx context.Context, name, value string) error {
	_, err := b.run(ctx, "cookies", "set", name, value)
	return err
}

// ClearCookies removes all cookies.
func (b *Browser) ClearCookies(ctx context.Context) error {
	_, err := b.run(ctx, "cookies", "clear")
	return err
}
