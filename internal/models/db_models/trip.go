package db_models

import (
	"github.com/google/uuid"
	"time"
)

type Trip struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Description *string
	StartDate   time.Time `gorm:"type:date"`
	EndDate     time.Time `gorm:"type:date"`
	CoverURL    *string
	IsPublic    bool `gorm:"default:false"`

	Stops      []TripStop `gorm:"foreignKey:TripID"`
	Activities []Activity `gorm:"foreignKey:TripID"`
}
