package profile

import (
	"fmt"

	"github.com/aivault/profile-client/pkg/client"
	"github.com/go-playground/validator/v10"
)

// defaultListLimit mirrors the backend's default page size.
const defaultListLimit = 10

// API exposes the typed resource operations. All reads and writes flow
// through the shared caching client.
type API struct {
	client   *client.Client
	validate *validator.Validate
}

// New creates a typed API over c.
func New(c *client.Client) *API {
	return &API{
		client:   c,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Client returns the underlying caching client.
func (a *API) Client() *client.Client {
	return a.client
}

// listPath builds a paginated list path with its query parameters in a
// fixed order, so repeated calls map to the same cache key.
func listPath(prefix, businessID string, limit, offset int) string {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return fmt.Sprintf("%s?business_id=%s&limit=%d&offset=%d", prefix, businessID, limit, offset)
}
