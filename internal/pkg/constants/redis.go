package constants

// Redis key formats
const (
	KeyCrowdSnapshot = "crowd:snapshot:%s" // Format: crowd:snapshot:{location_id}
	KeyCrowdIndex    = "crowd:locations"   // Set of location IDs with a snapshot
)

// Redis hash fields
const (
	FieldPayload   = "payload"
	FieldUpdatedAt = "updated_at"
)
