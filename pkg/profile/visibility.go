package profile

import (
	"context"
	"fmt"

	"github.com/aivault/profile-client/pkg/client"
)

// SubmitVisibilityCheck logs a new audit request for a business.
func (a *API) SubmitVisibilityCheck(ctx context.Context, in VisibilityCheckCreate) (*VisibilityCheck, error) {
	if err := a.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("validate visibility check: %w", err)
	}

	var out VisibilityCheck
	if err := a.client.Post(ctx, client.KindVisibility, "/visibility/check", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VisibilityChecks lists a business's audit request history.
func (a *API) VisibilityChecks(ctx context.Context, businessID string, limit, offset int) ([]VisibilityCheck, error) {
	var out []VisibilityCheck
	path := listPath("/visibility/check", businessID, limit, offset)
	if _, err := a.client.Get(ctx, client.KindVisibility, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// VisibilityResults lists a business's completed audit reports.
func (a *API) VisibilityResults(ctx context.Context, businessID string, limit, offset int) ([]VisibilityResult, error) {
	var out []VisibilityResult
	path := listPath("/visibility/result", businessID, limit, offset)
	if _, err := a.client.Get(ctx, client.KindVisibility, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// VisibilitySuggestions lists a business's open improvement tasks.
func (a *API) VisibilitySuggestions(ctx context.Context, businessID string, limit, offset int) ([]VisibilitySuggestion, error) {
	var out []VisibilitySuggestion
	path := listPath("/visibility/suggestion", businessID, limit, offset)
	if _, err := a.client.Get(ctx, client.KindVisibility, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RunVisibilityCheck runs a full audit against the business's current
// profile and returns the scored report. This is a mutation: the audit
// records a request and a result, so the cache is cleared.
func (a *API) RunVisibilityCheck(ctx context.Context, businessID string) (*VisibilityResult, error) {
	var out VisibilityResult
	path := "/visibility/run?business_id=" + businessID
	if err := a.client.Post(ctx, client.KindVisibility, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
