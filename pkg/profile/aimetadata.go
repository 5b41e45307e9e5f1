package profile

import (
	"context"
	"fmt"

	"github.com/aivault/profile-client/pkg/client"
)

// CreateAIMetadata records an externally produced metadata entry.
func (a *API) CreateAIMetadata(ctx context.Context, in AIMetadataCreate) (*AIMetadata, error) {
	if err := a.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("validate ai metadata: %w", err)
	}

	var out AIMetadata
	if err := a.client.Post(ctx, client.KindAIMetadata, "/ai-metadata/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AIMetadataList lists a business's metadata entries, newest first.
func (a *API) AIMetadataList(ctx context.Context, businessID string, limit, offset int) ([]AIMetadata, error) {
	var out []AIMetadata
	path := listPath("/ai-metadata/", businessID, limit, offset)
	if _, err := a.client.Get(ctx, client.KindAIMetadata, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AIMetadataByID fetches a single metadata entry.
func (a *API) AIMetadataByID(ctx context.Context, metadataID string) (*AIMetadata, error) {
	var out AIMetadata
	if _, err := a.client.Get(ctx, client.KindAIMetadata, "/ai-metadata/"+metadataID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAIMetadata removes a metadata entry.
func (a *API) DeleteAIMetadata(ctx context.Context, metadataID string) error {
	return a.client.Delete(ctx, client.KindAIMetadata, "/ai-metadata/"+metadataID)
}

// GenerateAIMetadata asks the backend to derive fresh metadata from the
// business's current profile, services and operational info. This is a
// mutation: it creates a record and clears the cache.
func (a *API) GenerateAIMetadata(ctx context.Context, businessID string) (*AIMetadata, error) {
	var out AIMetadata
	path := "/ai-metadata/generate?business_id=" + businessID
	if err := a.client.Post(ctx, client.KindAIMetadata, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
