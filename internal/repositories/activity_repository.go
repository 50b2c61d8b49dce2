package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "globetrotter/internal/models/db_models"
)

type ActivityRepository interface {
	AddActivity(ctx context.Context, activity *dbm.Activity) error
	GetActivityByID(ctx context.Context, activityID uuid.UUID) (*dbm.Activity, error)
	ListActivitiesByTripID(ctx context.Context, tripID uuid.UUID) ([]dbm.Activity, error)
	RemoveActivity(ctx context.Context, activityID uuid.UUID) error
	FillMissingCosts(ctx context.Context, tripID uuid.UUID, defaultCost float64) error
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) AddActivity(ctx context.Context, activity *dbm.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) GetActivityByID(ctx context.Context, activityID uuid.UUID) (*dbm.Activity, error) {
	var activity dbm.Activity
	err := r.db.WithContext(ctx).Where("id = ?", activityID).First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) ListActivitiesByTripID(ctx context.Context, tripID uuid.UUID) ([]dbm.Activity, error) {
	var activities []dbm.Activity
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at ASC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) RemoveActivity(ctx context.Context, activityID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", activityID).Delete(&dbm.Activity{}).Error
}

// FillMissingCosts gives every activity on the trip with a null
// estimated_cost the baseline value. Already-priced rows are untouched.
func (r *activityRepository) FillMissingCosts(ctx context.Context, tripID uuid.UUID, defaultCost float64) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Activity{}).
		Where("trip_id = ? AND estimated_cost IS NULL", tripID).
		Update("estimated_cost", defaultCost).Error
}
