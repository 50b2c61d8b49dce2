package db_models

import (
	"github.com/google/uuid"
)

type UserSettings struct {
	BaseModel
	UserID               uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	EmailNotifications   bool      `gorm:"default:true"`
	PushNotifications    bool      `gorm:"default:true"`
	PrivacyPublicProfile bool      `gorm:"default:true"`
	Language             string    `gorm:"size:8;default:'en'"`
	Timezone             string    `gorm:"default:'UTC'"`
}
