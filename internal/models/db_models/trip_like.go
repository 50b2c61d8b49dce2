package db_models

import (
	"github.com/google/uuid"
)

// One like per (trip, user) pair; presence means "liked".
type TripLike struct {
	BaseModel
	TripID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_trip_like_user"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_trip_like_user"`
}
