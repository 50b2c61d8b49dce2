package db_models

import (
	"github.com/google/uuid"
)

// Comments are immutable once posted; there is no edit path.
type TripComment struct {
	BaseModel
	TripID  uuid.UUID `gorm:"type:uuid;index"`
	UserID  uuid.UUID `gorm:"type:uuid"`
	Content string
}
