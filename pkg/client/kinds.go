package client

// Kind identifies the logical resource behind a request path. It replaces
// substring matching on paths: optional-resource behavior is an explicit
// per-kind capability, not a guess derived from the URL shape.
type Kind string

const (
	// KindBusiness is a single business profile or the profile list.
	KindBusiness Kind = "business"

	// KindOwnerBusiness is a business looked up by its owner. An owner who
	// has not created a business yet legitimately has no record.
	KindOwnerBusiness Kind = "owner_business"

	// KindDirectory is the aggregated public directory view.
	KindDirectory Kind = "directory"

	// KindService is a business service or service list.
	KindService Kind = "service"

	// KindCoupon is a promotional coupon or coupon list.
	KindCoupon Kind = "coupon"

	// KindMedia is a media asset record or asset list.
	KindMedia Kind = "media"

	// KindOperationalInfo is a business's hours/facility record. A business
	// that has never configured operational info legitimately has no record.
	KindOperationalInfo Kind = "operational_info"

	// KindAIMetadata is an AI-derived metadata record or list.
	KindAIMetadata Kind = "ai_metadata"

	// KindVisibility is a visibility audit request, result or suggestion.
	KindVisibility Kind = "visibility"

	// KindJSONLD is a structured-data feed or feed list.
	KindJSONLD Kind = "jsonld"
)

// Optional reports whether a 404 for this resource is a valid "not
// configured yet" state rather than an error. Optional 404s resolve to an
// absent result and are never cached, so the next read retries the network.
func (k Kind) Optional() bool {
	switch k {
	case KindOperationalInfo, KindOwnerBusiness:
		return true
	default:
		return false
	}
}
