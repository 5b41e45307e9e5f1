package profile

import (
	"context"

	"github.com/aivault/profile-client/pkg/client"
)

// GenerateJSONLDFeed asks the backend to synthesize a fresh Schema.org
// feed from the business's profile, services, coupons, media and
// operational info. This is a mutation: it persists a feed record and
// clears the cache.
func (a *API) GenerateJSONLDFeed(ctx context.Context, businessID string) (*JSONLDFeed, error) {
	var out JSONLDFeed
	path := "/jsonld/generate?business_id=" + businessID
	if err := a.client.Post(ctx, client.KindJSONLD, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// JSONLDFeeds lists a business's generated feeds, newest first.
func (a *API) JSONLDFeeds(ctx context.Context, businessID string, limit, offset int) ([]JSONLDFeed, error) {
	var out []JSONLDFeed
	path := listPath("/jsonld/", businessID, limit, offset)
	if _, err := a.client.Get(ctx, client.KindJSONLD, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// JSONLDFeed fetches a single feed by ID.
func (a *API) JSONLDFeed(ctx context.Context, feedID string) (*JSONLDFeed, error) {
	var out JSONLDFeed
	if _, err := a.client.Get(ctx, client.KindJSONLD, "/jsonld/"+feedID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteJSONLDFeed removes a feed record.
func (a *API) DeleteJSONLDFeed(ctx context.Context, feedID string) error {
	return a.client.Delete(ctx, client.KindJSONLD, "/jsonld/"+feedID)
}
