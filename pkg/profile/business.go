package profile

import (
	"context"
	"fmt"

	"github.com/aivault/profile-client/pkg/client"
)

const directoryPath = "/business/directory-view"

// CreateBusiness registers a new business profile.
func (a *API) CreateBusiness(ctx context.Context, in BusinessCreate) (*Business, error) {
	if err := a.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("validate business: %w", err)
	}

	var out Business
	if err := a.client.Post(ctx, client.KindBusiness, "/business/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Business fetches a single business profile by ID.
func (a *API) Business(ctx context.Context, businessID string) (*Business, error) {
	var out Business
	if _, err := a.client.Get(ctx, client.KindBusiness, "/business/"+businessID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Businesses lists all business profiles.
func (a *API) Businesses(ctx context.Context) ([]Business, error) {
	var out []Business
	if _, err := a.client.Get(ctx, client.KindBusiness, "/business/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// BusinessByOwner fetches the business owned by ownerID. An owner who has
// not created a business yet is a valid state: the result is nil with a
// nil error, and nothing is cached for the path.
func (a *API) BusinessByOwner(ctx context.Context, ownerID string) (*Business, error) {
	var out Business
	found, err := a.client.Get(ctx, client.KindOwnerBusiness, "/business/by-owner/"+ownerID, &out)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &out, nil
}

// UpdateBusiness applies a partial update to a business profile.
func (a *API) UpdateBusiness(ctx context.Context, businessID string, in BusinessUpdate) (*Business, error) {
	if err := a.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("validate business update: %w", err)
	}

	var out Business
	if err := a.client.Patch(ctx, client.KindBusiness, "/business/"+businessID, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Directory fetches the aggregated public directory view.
func (a *API) Directory(ctx context.Context) ([]DirectoryEntry, error) {
	var out []DirectoryEntry
	if _, err := a.client.Get(ctx, client.KindDirectory, directoryPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// HydrateBusiness synchronously returns the cached business profile, if a
// previous fetch saw it, so a view can render before its fetch resolves.
func (a *API) HydrateBusiness(businessID string) (*Business, bool) {
	var out Business
	if !a.client.Hydrate("/business/"+businessID, &out) {
		return nil, false
	}
	return &out, true
}

// HydrateDirectory synchronously returns the cached directory view.
func (a *API) HydrateDirectory() ([]DirectoryEntry, bool) {
	var out []DirectoryEntry
	if !a.client.Hydrate(directoryPath, &out) {
		return nil, false
	}
	return out, true
}

// PrefetchDirectory warms the directory view without blocking the caller.
func (a *API) PrefetchDirectory(ctx context.Context) {
	a.client.Prefetch(ctx, client.KindDirectory, directoryPath)
}

// PrefetchBusiness warms a single business profile.
func (a *API) PrefetchBusiness(ctx context.Context, businessID string) {
	a.client.Prefetch(ctx, client.KindBusiness, "/business/"+businessID)
}
