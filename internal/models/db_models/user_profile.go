package db_models

import (
	"github.com/google/uuid"
)

type UserProfile struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	DisplayName string
	Bio         *string
	AvatarURL   *string
	Location    *string
}
