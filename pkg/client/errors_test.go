package client

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		apiError *APIError
		expected string
	}{
		{
			name: "error with body",
			apiError: &APIError{
				StatusCode: 500,
				Method:     "GET",
				Path:       "/business/",
				Body:       `{"detail": "Internal server error"}`,
			},
			expected: `backend error (status 500) on GET /business/: {"detail": "Internal server error"}`,
		},
		{
			name: "error without body",
			apiError: &APIError{
				StatusCode: 404,
				Method:     "DELETE",
				Path:       "/coupons/7",
			},
			expected: "backend error (status 404) on DELETE /coupons/7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.apiError.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAPIError_IsNotFound(t *testing.T) {
	if !(&APIError{StatusCode: 404}).IsNotFound() {
		t.Error("404 should report IsNotFound")
	}
	if (&APIError{StatusCode: 500}).IsNotFound() {
		t.Error("500 should not report IsNotFound")
	}
}

func TestAsAPIError(t *testing.T) {
	apiErr := &APIError{StatusCode: 422, Method: "POST", Path: "/coupons/"}
	wrapped := fmt.Errorf("create coupon: %w", apiErr)

	got, ok := AsAPIError(wrapped)
	if !ok {
		t.Fatal("AsAPIError should unwrap a wrapped *APIError")
	}
	if got.StatusCode != 422 {
		t.Errorf("StatusCode = %d, want 422", got.StatusCode)
	}

	if _, ok := AsAPIError(errors.New("plain")); ok {
		t.Error("AsAPIError on a plain error should report false")
	}
}

func TestKind_Optional(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected bool
	}{
		{KindOperationalInfo, true},
		{KindOwnerBusiness, true},
		{KindBusiness, false},
		{KindCoupon, false},
		{KindMedia, false},
		{KindDirectory, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.Optional(); got != tt.expected {
				t.Errorf("Optional() = %v, want %v", got, tt.expected)
			}
		})
	}
}
