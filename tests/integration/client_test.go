// Package integration exercises the full stack: typed API, caching client,
// store and warmer against a mock backend.
package integration

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/aivault/profile-client/internal/testutil"
	"github.com/aivault/profile-client/pkg/cache"
	"github.com/aivault/profile-client/pkg/client"
	"github.com/aivault/profile-client/pkg/profile"
	"github.com/aivault/profile-client/pkg/warmup"
)

const businessID = "3b241101-e2bb-4255-8caf-4136c566a962"

func setup(t *testing.T) (*profile.API, *cache.Store, *testutil.MockBackend) {
	t.Helper()

	mock := testutil.NewMockBackend()
	t.Cleanup(mock.Close)

	store := cache.NewStore()
	c, err := client.New(client.Config{
		BaseURL: mock.URL(),
		Store:   store,
	})
	if err != nil {
		t.Fatalf("client.New() error = %v", err)
	}

	return profile.New(c), store, mock
}

func seedBusiness(mock *testutil.MockBackend, name string, version int) {
	mock.SetResponse("/business/"+businessID, testutil.NewJSONResponse(
		`{"business_id": "`+businessID+`", "owner_id": "b6f0e0f2-61b3-4a6f-9b8a-2c1d4e5f6a7b", "name": "`+name+`", "published": true, "version": `+strconv.Itoa(version)+`, "created_at": "2026-08-01T09:00:00Z"}`))
}

// TestDashboardSession walks the lifecycle a dashboard session produces:
// first read over the network, repeats from the store, one write wiping
// everything, and the following read refetching fresh state.
func TestDashboardSession(t *testing.T) {
	api, store, mock := setup(t)
	ctx := context.Background()

	bizPath := "/business/" + businessID
	couponsPath := "/coupons/"
	seedBusiness(mock, "Corner Cafe", 1)
	mock.SetResponse(couponsPath, testutil.NewJSONResponse(`[]`))

	// First read: network.
	biz, err := api.Business(ctx, businessID)
	if err != nil {
		t.Fatalf("Business() error = %v", err)
	}
	if biz.Version != 1 {
		t.Fatalf("Version = %d, want 1", biz.Version)
	}

	// Repeat reads: store only.
	for i := 0; i < 5; i++ {
		if _, err := api.Business(ctx, businessID); err != nil {
			t.Fatalf("repeat Business() error = %v", err)
		}
	}
	if got := mock.GetPathCount(bizPath); got != 1 {
		t.Fatalf("expected 1 backend request after repeats, got %d", got)
	}

	// Coupon list joins the store.
	if _, err := api.Coupons(ctx, businessID, 10, 0); err != nil {
		t.Fatalf("Coupons() error = %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("store.Len() = %d, want 2", store.Len())
	}

	// One write invalidates everything, even unrelated resources.
	seedBusiness(mock, "Corner Cafe & Bakery", 2)
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	mock.SetResponse(couponsPath, testutil.NewJSONResponse(
		`{"coupon_id": "c-1", "business_id": "`+businessID+`", "code": "FALL10", "discount_value": "10%", "valid_from": "2026-09-01T00:00:00Z", "valid_until": "2026-10-01T00:00:00Z", "is_active": true}`))

	if _, err := api.CreateCoupon(ctx, profile.CouponCreate{
		BusinessID:    businessID,
		Code:          "FALL10",
		DiscountValue: "10%",
		ValidFrom:     from,
		ValidUntil:    from.AddDate(0, 1, 0),
		IsActive:      true,
	}); err != nil {
		t.Fatalf("CreateCoupon() error = %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("store.Len() = %d after mutation, want 0", store.Len())
	}

	// Next read refetches and observes the new version.
	biz, err = api.Business(ctx, businessID)
	if err != nil {
		t.Fatalf("Business() after mutation error = %v", err)
	}
	if biz.Version != 2 || biz.Name != "Corner Cafe & Bakery" {
		t.Errorf("stale business after mutation: %+v", biz)
	}
	if got := mock.GetPathCount(bizPath); got != 2 {
		t.Errorf("expected exactly 2 business fetches, got %d", got)
	}
}

// TestWarmupThenHydrate verifies a warmed store serves hydration without
// any further network traffic.
func TestWarmupThenHydrate(t *testing.T) {
	api, _, mock := setup(t)

	seedBusiness(mock, "Corner Cafe", 1)
	mock.SetResponse("/business/directory-view", testutil.NewJSONResponse(
		`[{"business_id": "`+businessID+`", "name": "Corner Cafe", "media": [], "services": [], "coupons": []}]`))
	mock.SetResponse("/operational-info/by-business/"+businessID,
		testutil.NewNotFoundResponse("Operational info not found"))

	warmer := warmup.New(api.Client(), warmup.DefaultConfig())
	warmed, err := warmer.Warm(context.Background(), warmup.BusinessTargets(businessID))
	if err != nil {
		t.Fatalf("Warm() error = %v", err)
	}
	if warmed == 0 {
		t.Fatal("expected at least one warmed target")
	}

	before := mock.GetRequestCount()

	biz, ok := api.HydrateBusiness(businessID)
	if !ok {
		t.Fatal("business did not hydrate after warmup")
	}
	if biz.Name != "Corner Cafe" {
		t.Errorf("hydrated Name = %q, want %q", biz.Name, "Corner Cafe")
	}
	if _, ok := api.HydrateDirectory(); !ok {
		t.Error("directory did not hydrate after warmup")
	}

	if after := mock.GetRequestCount(); after != before {
		t.Errorf("hydration made %d network requests", after-before)
	}
}

// TestOptionalResourceLifecycle covers the configure-later flow for
// operational info: absent, then created, then visible.
func TestOptionalResourceLifecycle(t *testing.T) {
	api, _, mock := setup(t)
	ctx := context.Background()

	infoPath := "/operational-info/by-business/" + businessID
	mock.SetResponse(infoPath, testutil.NewNotFoundResponse("Operational info not found"))

	info, err := api.OperationalInfoByBusiness(ctx, businessID)
	if err != nil {
		t.Fatalf("OperationalInfoByBusiness() error = %v", err)
	}
	if info != nil {
		t.Fatalf("expected absent operational info, got %+v", info)
	}

	infoBody := `{"info_id": "i-1", "business_id": "` + businessID + `", "opening_hours": "09:00", "closing_hours": "18:00", "off_days": [], "wifi_available": true, "created_at": "2026-08-01T09:00:00Z"}`
	mock.SetResponse("/operational-info/", testutil.NewJSONResponse(infoBody))
	mock.SetResponse(infoPath, testutil.NewJSONResponse(infoBody))

	created, err := api.CreateOperationalInfo(ctx, profile.OperationalInfoCreate{
		BusinessID:   businessID,
		OpeningHours: "09:00",
		ClosingHours: "18:00",
	})
	if err != nil {
		t.Fatalf("CreateOperationalInfo() error = %v", err)
	}
	if created.InfoID != "i-1" {
		t.Errorf("InfoID = %q, want %q", created.InfoID, "i-1")
	}

	info, err = api.OperationalInfoByBusiness(ctx, businessID)
	if err != nil {
		t.Fatalf("OperationalInfoByBusiness() after create error = %v", err)
	}
	if info == nil {
		t.Fatal("operational info still absent after create")
	}
}
