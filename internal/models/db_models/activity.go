package db_models

import (
	"github.com/google/uuid"
)

// StopID is nullable: an activity with no stop lives in the trip's
// unassigned bucket and never appears in per-day groupings.
type Activity struct {
	BaseModel
	TripID        uuid.UUID  `gorm:"type:uuid;index"`
	StopID        *uuid.UUID `gorm:"type:uuid;index"`
	Title         string
	Notes         *string
	StartTime     *string
	EndTime       *string
	EstimatedCost *float64
	Lat           *float64
	Lng           *float64
	BookingURL    *string
}
