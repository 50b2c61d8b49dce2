package db_models

import (
	"github.com/google/uuid"
	"time"
)

// OrderIndex is zero-based within a trip. Display sorts ascending;
// gaps left by removals are tolerated.
type TripStop struct {
	BaseModel
	TripID     uuid.UUID `gorm:"type:uuid;index:idx_trip_stop_order"`
	City       string
	Country    *string
	Lat        *float64
	Lng        *float64
	StartDate  time.Time `gorm:"type:date"`
	EndDate    time.Time `gorm:"type:date"`
	OrderIndex int       `gorm:"index:idx_trip_stop_order"`

	Activities []Activity `gorm:"foreignKey:StopID"`
}
