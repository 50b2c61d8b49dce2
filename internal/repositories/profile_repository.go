package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "globetrotter/internal/models/db_models"
)

type ProfileRepository interface {
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*dbm.UserProfile, error)
	UpsertProfile(ctx context.Context, profile *dbm.UserProfile) error
	GetSettingsByUserID(ctx context.Context, userID uuid.UUID) (*dbm.UserSettings, error)
	UpsertSettings(ctx context.Context, settings *dbm.UserSettings) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*dbm.UserProfile, error) {
	var profile dbm.UserProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) UpsertProfile(ctx context.Context, profile *dbm.UserProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(profile).Error
}

func (r *profileRepository) GetSettingsByUserID(ctx context.Context, userID uuid.UUID) (*dbm.UserSettings, error) {
	var settings dbm.UserSettings
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *profileRepository) UpsertSettings(ctx context.Context, settings *dbm.UserSettings) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(settings).Error
}
