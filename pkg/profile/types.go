package profile

import (
	"time"
)

// ServiceType classifies a business service.
type ServiceType string

const (
	ServiceTypeSalon      ServiceType = "salon"
	ServiceTypeRestaurant ServiceType = "restaurant"
	ServiceTypeClinic     ServiceType = "clinic"
)

// Business is a public business profile.
type Business struct {
	BusinessID         string     `json:"business_id"`
	OwnerID            string     `json:"owner_id"`
	Name               string     `json:"name"`
	Description        *string    `json:"description"`
	BusinessType       *string    `json:"business_type"`
	Phone              *string    `json:"phone"`
	Website            *string    `json:"website"`
	Address            *string    `json:"address"`
	Latitude           *float64   `json:"latitude"`
	Longitude          *float64   `json:"longitude"`
	Timezone           *string    `json:"timezone"`
	QuoteSlogan        *string    `json:"quote_slogan"`
	IdentificationMark *string    `json:"identification_mark"`
	Published          bool       `json:"published"`
	Version            int        `json:"version"`
	CreatedAt          time.Time  `json:"created_at"`
	Updated            *time.Time `json:"updated,omitempty"`
}

// BusinessCreate registers a new business.
type BusinessCreate struct {
	OwnerID            string   `json:"owner_id" validate:"required,uuid4"`
	Name               string   `json:"name" validate:"required"`
	Description        *string  `json:"description,omitempty"`
	BusinessType       *string  `json:"business_type,omitempty"`
	Phone              *string  `json:"phone,omitempty"`
	Website            *string  `json:"website,omitempty" validate:"omitempty,url"`
	Address            *string  `json:"address,omitempty"`
	Latitude           *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude          *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Timezone           *string  `json:"timezone,omitempty"`
	QuoteSlogan        *string  `json:"quote_slogan,omitempty"`
	IdentificationMark *string  `json:"identification_mark,omitempty"`
	Published          bool     `json:"published"`
}

// BusinessUpdate carries a partial update; only non-nil fields are sent.
type BusinessUpdate struct {
	Name               *string  `json:"name,omitempty"`
	Description        *string  `json:"description,omitempty"`
	BusinessType       *string  `json:"business_type,omitempty"`
	Phone              *string  `json:"phone,omitempty"`
	Website            *string  `json:"website,omitempty" validate:"omitempty,url"`
	Address            *string  `json:"address,omitempty"`
	Latitude           *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude          *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Timezone           *string  `json:"timezone,omitempty"`
	QuoteSlogan        *string  `json:"quote_slogan,omitempty"`
	IdentificationMark *string  `json:"identification_mark,omitempty"`
	Published          *bool    `json:"published,omitempty"`
}

// DirectoryEntry is the aggregated directory view: a business bundled with
// its nested media, services, coupons and operational info so the public
// page renders from a single response.
type DirectoryEntry struct {
	BusinessID         string           `json:"business_id"`
	Name               string           `json:"name"`
	Description        *string          `json:"description,omitempty"`
	Address            *string          `json:"address,omitempty"`
	BusinessType       *string          `json:"business_type,omitempty"`
	QuoteSlogan        *string          `json:"quote_slogan,omitempty"`
	IdentificationMark *string          `json:"identification_mark,omitempty"`
	Latitude           *float64         `json:"latitude,omitempty"`
	Longitude          *float64         `json:"longitude,omitempty"`
	OperationalInfo    *OperationalInfo `json:"operational_info,omitempty"`
	Media              []MediaAsset     `json:"media"`
	Services           []Service        `json:"services"`
	Coupons            []Coupon         `json:"coupons"`
}

// Service is one offering of a business.
type Service struct {
	ServiceID   string    `json:"service_id"`
	BusinessID  string    `json:"business_id"`
	ServiceType string    `json:"service_type"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

// ServiceCreate registers a new service.
type ServiceCreate struct {
	BusinessID  string      `json:"business_id" validate:"required,uuid4"`
	ServiceType ServiceType `json:"service_type" validate:"required,oneof=salon restaurant clinic"`
	Name        string      `json:"name" validate:"required"`
	Description *string     `json:"description,omitempty"`
	Price       float64     `json:"price" validate:"gte=0"`
}

// Coupon is a promotional offer.
type Coupon struct {
	CouponID        string    `json:"coupon_id"`
	BusinessID      string    `json:"business_id"`
	Code            string    `json:"code"`
	Description     *string   `json:"description"`
	DiscountValue   string    `json:"discount_value"`
	ValidFrom       time.Time `json:"valid_from"`
	ValidUntil      time.Time `json:"valid_until"`
	TermsConditions *string   `json:"terms_conditions"`
	IsActive        bool      `json:"is_active"`
}

// CouponCreate registers a new promotional offer.
type CouponCreate struct {
	BusinessID      string    `json:"business_id" validate:"required,uuid4"`
	Code            string    `json:"code" validate:"required"`
	Description     *string   `json:"description,omitempty"`
	DiscountValue   string    `json:"discount_value" validate:"required"`
	ValidFrom       time.Time `json:"valid_from" validate:"required"`
	ValidUntil      time.Time `json:"valid_until" validate:"required,gtfield=ValidFrom"`
	TermsConditions *string   `json:"terms_conditions,omitempty"`
	IsActive        bool      `json:"is_active"`
}

// CouponUpdate carries a partial coupon update.
type CouponUpdate struct {
	Code            *string    `json:"code,omitempty"`
	Description     *string    `json:"description,omitempty"`
	DiscountValue   *string    `json:"discount_value,omitempty"`
	ValidFrom       *time.Time `json:"valid_from,omitempty"`
	ValidUntil      *time.Time `json:"valid_until,omitempty"`
	TermsConditions *string    `json:"terms_conditions,omitempty"`
	IsActive        *bool      `json:"is_active,omitempty"`
}

// MediaAsset is a stored media record (image, video or document).
type MediaAsset struct {
	AssetID    string    `json:"asset_id"`
	BusinessID string    `json:"business_id"`
	MediaType  string    `json:"media_type"`
	URL        string    `json:"url"`
	AltText    *string   `json:"alt_text"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// OperationalInfo holds a business's hours and facility details. This
// resource is optional: a business that has never configured it simply has
// no record, and reads resolve to absent rather than failing.
type OperationalInfo struct {
	InfoID                string     `json:"info_id"`
	BusinessID            string     `json:"business_id"`
	OpeningHours          string     `json:"opening_hours"`
	ClosingHours          string     `json:"closing_hours"`
	OffDays               []string   `json:"off_days"`
	DeliveryOptions       *string    `json:"delivery_options"`
	ReservationOptions    *string    `json:"reservation_options"`
	WifiAvailable         bool       `json:"wifi_available"`
	AccessibilityFeatures *string    `json:"accessibility_features"`
	SpecialNotes          *string    `json:"special_notes,omitempty"`
	NearbyParkingSpot     *string    `json:"nearby_parking_spot"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             *time.Time `json:"updated_at,omitempty"`
}

// OperationalInfoCreate establishes the operational record. The backend
// uses the same shape for partial updates via PATCH.
type OperationalInfoCreate struct {
	BusinessID            string   `json:"business_id" validate:"required,uuid4"`
	OpeningHours          string   `json:"opening_hours" validate:"required"`
	ClosingHours          string   `json:"closing_hours" validate:"required"`
	OffDays               []string `json:"off_days,omitempty"`
	DeliveryOptions       *string  `json:"delivery_options,omitempty"`
	ReservationOptions    *string  `json:"reservation_options,omitempty"`
	WifiAvailable         bool     `json:"wifi_available"`
	AccessibilityFeatures *string  `json:"accessibility_features,omitempty"`
	SpecialNotes          *string  `json:"special_notes,omitempty"`
	NearbyParkingSpot     *string  `json:"nearby_parking_spot,omitempty"`
}

// AIMetadata is an AI-derived metadata record for a business.
type AIMetadata struct {
	AIMetadataID      string    `json:"ai_metadata_id"`
	BusinessID        string    `json:"business_id"`
	ExtractedInsights *string   `json:"extracted_insights"`
	DetectedEntities  *string   `json:"detected_entities"`
	Keywords          *string   `json:"keywords"`
	IntentLabels      *string   `json:"intent_labels"`
	GeneratedAt       time.Time `json:"generated_at"`
}

// AIMetadataCreate records externally produced metadata.
type AIMetadataCreate struct {
	BusinessID        string  `json:"business_id" validate:"required,uuid4"`
	ExtractedInsights *string `json:"extracted_insights,omitempty"`
	DetectedEntities  *string `json:"detected_entities,omitempty"`
	Keywords          *string `json:"keywords,omitempty"`
	IntentLabels      *string `json:"intent_labels,omitempty"`
}

// VisibilityCheck is a logged audit request.
type VisibilityCheck struct {
	RequestID   string    `json:"request_id"`
	BusinessID  string    `json:"business_id"`
	CheckType   string    `json:"check_type"`
	InputData   *string   `json:"input_data"`
	RequestedAt time.Time `json:"requested_at"`
}

// VisibilityCheckCreate logs a new audit request.
type VisibilityCheckCreate struct {
	BusinessID string  `json:"business_id" validate:"required,uuid4"`
	CheckType  string  `json:"check_type" validate:"required"`
	InputData  *string `json:"input_data,omitempty"`
}

// VisibilityResult is a completed audit report.
type VisibilityResult struct {
	ResultID        string    `json:"result_id"`
	RequestID       string    `json:"request_id"`
	BusinessID      string    `json:"business_id"`
	VisibilityScore *float64  `json:"visibility_score"`
	IssuesFound     *string   `json:"issues_found"`
	Recommendations *string   `json:"recommendations"`
	OutputSnapshot  *string   `json:"output_snapshot"`
	CompletedAt     time.Time `json:"completed_at"`
}

// VisibilitySuggestion is one actionable improvement task.
type VisibilitySuggestion struct {
	SuggestionID   string    `json:"suggestion_id"`
	BusinessID     string    `json:"business_id"`
	SuggestionType string    `json:"suggestion_type"`
	Title          string    `json:"title"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// JSONLDFeed is a generated Schema.org structured-data feed.
type JSONLDFeed struct {
	FeedID           string    `json:"feed_id"`
	BusinessID       string    `json:"business_id"`
	SchemaType       string    `json:"schema_type"`
	JSONLDData       string    `json:"jsonld_data"`
	IsValid          bool      `json:"is_valid"`
	ValidationErrors *string   `json:"validation_errors"`
	GeneratedAt      time.Time `json:"generated_at"`
}
