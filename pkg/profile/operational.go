package profile

import (
	"context"
	"fmt"

	"github.com/aivault/profile-client/pkg/client"
)

func operationalPath(businessID string) string {
	return "/operational-info/by-business/" + businessID
}

// CreateOperationalInfo establishes a business's operational record.
func (a *API) CreateOperationalInfo(ctx context.Context, in OperationalInfoCreate) (*OperationalInfo, error) {
	if err := a.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("validate operational info: %w", err)
	}

	var out OperationalInfo
	if err := a.client.Post(ctx, client.KindOperationalInfo, "/operational-info/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OperationalInfoByBusiness fetches a business's operational record. A
// business that has never configured one is a valid state: the result is
// nil with a nil error, and the absence is not memoized (the next call
// retries the network).
func (a *API) OperationalInfoByBusiness(ctx context.Context, businessID string) (*OperationalInfo, error) {
	var out OperationalInfo
	found, err := a.client.Get(ctx, client.KindOperationalInfo, operationalPath(businessID), &out)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &out, nil
}

// UpdateOperationalInfo applies a partial update to a business's
// operational record.
func (a *API) UpdateOperationalInfo(ctx context.Context, businessID string, in OperationalInfoCreate) (*OperationalInfo, error) {
	if err := a.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("validate operational info: %w", err)
	}

	var out OperationalInfo
	if err := a.client.Patch(ctx, client.KindOperationalInfo, operationalPath(businessID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteOperationalInfo removes a business's operational record.
func (a *API) DeleteOperationalInfo(ctx context.Context, businessID string) error {
	return a.client.Delete(ctx, client.KindOperationalInfo, operationalPath(businessID))
}

// HydrateOperationalInfo synchronously returns the cached operational
// record, if a previous fetch saw it.
func (a *API) HydrateOperationalInfo(businessID string) (*OperationalInfo, bool) {
	var out OperationalInfo
	if !a.client.Hydrate(operationalPath(businessID), &out) {
		return nil, false
	}
	return &out, true
}

// PrefetchOperationalInfo warms a business's operational record.
func (a *API) PrefetchOperationalInfo(ctx context.Context, businessID string) {
	a.client.Prefetch(ctx, client.KindOperationalInfo, operationalPath(businessID))
}
