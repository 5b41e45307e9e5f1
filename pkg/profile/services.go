package profile

import (
	"context"
	"fmt"

	"github.com/aivault/profile-client/pkg/client"
)

// CreateService registers a new service offering.
func (a *API) CreateService(ctx context.Context, in ServiceCreate) (*Service, error) {
	if err := a.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("validate service: %w", err)
	}

	var out Service
	if err := a.client.Post(ctx, client.KindService, "/services/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Service fetches a single service by ID.
func (a *API) Service(ctx context.Context, serviceID string) (*Service, error) {
	var out Service
	if _, err := a.client.Get(ctx, client.KindService, "/services/"+serviceID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Services lists a business's service offerings.
func (a *API) Services(ctx context.Context, businessID string, limit, offset int) ([]Service, error) {
	var out []Service
	path := listPath("/services/", businessID, limit, offset)
	if _, err := a.client.Get(ctx, client.KindService, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteService removes a service offering.
func (a *API) DeleteService(ctx context.Context, serviceID string) error {
	return a.client.Delete(ctx, client.KindService, "/services/"+serviceID)
}

// HydrateServices synchronously returns the cached service list for the
// same pagination window, if a previous fetch saw it.
func (a *API) HydrateServices(businessID string, limit, offset int) ([]Service, bool) {
	var out []Service
	if !a.client.Hydrate(listPath("/services/", businessID, limit, offset), &out) {
		return nil, false
	}
	return out, true
}
