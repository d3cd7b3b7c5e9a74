package db_models

// TripRecord stores one generated itinerary for an account. The document
// itself is kept as serialized JSON; the core's schema guarantees are enforced
// before anything reaches this table.
type TripRecord struct {
	BaseModel
	AccountID   string `gorm:"index;not null"`
	Title       string
	Destination string `gorm:"index"`
	StartDate   int64  // unix seconds
	EndDate     int64  // unix seconds
	Degraded    bool
	Document    string `gorm:"type:jsonb"`
}
