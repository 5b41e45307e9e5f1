package client

import (
	"context"
	"encoding/json"
)

// Hydrate synchronously decodes the cached value for path into out so a
// view can seed its initial state before any asynchronous fetch resolves.
// It reports false on a cache miss (or an undecodable entry), leaving out
// untouched. Key derivation is shared with Get, so a hydrate after a
// successful fetch of the same path always hits. out may be nil to test for
// presence alone.
func (c *Client) Hydrate(path string, out any) bool {
	body, ok := c.store.Peek(c.key(path))
	if !ok {
		return false
	}
	if out == nil {
		return true
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Warn().
			Err(err).
			Str("path", path).
			Msg("Undecodable cache entry during hydration")
		return false
	}
	return true
}

// Prefetch warms the cache for path without blocking the caller. When the
// key is already cached it does nothing; otherwise the GET flow runs in the
// background, detached from the caller's cancellation, and the result is
// discarded. Prefetch failures never surface - the triggering caller is not
// awaiting anything - and are logged at debug level only.
func (c *Client) Prefetch(ctx context.Context, kind Kind, path string) {
	if c.store.Has(c.key(path)) {
		return
	}

	go func() {
		bg := context.WithoutCancel(ctx)
		if _, _, err := c.fetch(bg, kind, path); err != nil {
			c.logger.Debug().
				Err(err).
				Str("kind", string(kind)).
				Str("path", path).
				Msg("Prefetch failed")
		}
	}()
}
