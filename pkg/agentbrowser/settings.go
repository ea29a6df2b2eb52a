package agentbrowser

import (
	"context"
	"encoding/json"
	"strconv"
)

// SetViewport sets the viewport size in pixels.
func (b *Browser) SetViewport(ctx context.Context, width, height int) error {
	_, err := b.run(ctx, "set", "viewport", strconv.Itoa(width), strconv.Itoa(height))
	return err
}

// SetDevice emulates a named device, e.g. "iPhone 14".
func (b *Browser) SetDevice(ctx context.Context, name string) error {
	_, err := b.run(ctx, "set", "device", name)
	return err
}

// SetGeolocation overrides the reported geolocation.
func (b *Browser) SetGeolocation(ctx context.Context, latitude, longitude float64) error {
	_, err := b.run(ctx, "set", "geo",
		strconv.FormatFloat(latitude, 'f', -1, 64),
		strconv.FormatFloat(longitude, 'f', -1, 64))
	return err
}

// SetOffline toggles offline network emulation.
func (b *Browser) SetOffline(ctx context.Context, enabled bool) error {
	state := "off"
	if enabled {
		state = "on"
	}
	_, err := b.run(ctx, "set", "offline", state)
	return err
}

// SetHeaders sets extra HTTP headers for all subsequent requests.
func (b *Browser) SetHeaders(ctx context.Context, headers map[string]string) error {
	encoded, err := json.Marshal(headers)
	if err != nil {
		return wrapError("set", "failed to encode headers", err)
	}
	_, err = b.run(ctx, "set", "headers", string(encoded))
	return err
}

// SetCredentials sets HTTP basic auth credentials.
func (b *Browser) SetCredentials(ctx context.Context, username, password string) error {
	_, err := b.run(ctx, "set", "credentials", username, password)
	return err
}

// SetMedia emulates a color scheme, "dark" or "light".
func (b *Browser) SetMedia(ctx context.Context, scheme string) error {
	_, err := b.run(ctx, "set", "media", scheme)
	return err
}
