package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "globetrotter/internal/models/db_models"
)

type StopRepository interface {
	AddStop(ctx context.Context, stop *dbm.TripStop) error
	GetStopByID(ctx context.Context, stopID uuid.UUID) (*dbm.TripStop, error)
	ListStopsByTripID(ctx context.Context, tripID uuid.UUID) ([]dbm.TripStop, error)
	NextOrderIndex(ctx context.Context, tripID uuid.UUID) (int, error)
	ReorderStops(ctx context.Context, tripID uuid.UUID, order map[uuid.UUID]int) error
	RemoveStop(ctx context.Context, stopID uuid.UUID) error
}

type stopRepository struct {
	db *gorm.DB
}

func NewStopRepository(db *gorm.DB) StopRepository {
	return &stopRepository{db: db}
}

func (r *stopRepository) AddStop(ctx context.Context, stop *dbm.TripStop) error {
	return r.db.WithContext(ctx).Create(stop).Error
}

func (r *stopRepository) GetStopByID(ctx context.Context, stopID uuid.UUID) (*dbm.TripStop, error) {
	var stop dbm.TripStop
	err := r.db.WithContext(ctx).Where("id = ?", stopID).First(&stop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stop, nil
}

func (r *stopRepository) ListStopsByTripID(ctx context.Context, tripID uuid.UUID) ([]dbm.TripStop, error) {
	var stops []dbm.TripStop
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("order_index ASC").
		Find(&stops).Error
	if err != nil {
		return nil, err
	}
	return stops, nil
}

// NextOrderIndex returns one past the highest order_index on the trip, so
// a fresh trip starts at 0.
func (r *stopRepository) NextOrderIndex(ctx context.Context, tripID uuid.UUID) (int, error) {
	var last dbm.TripStop
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("order_index DESC").
		First(&last).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return last.OrderIndex + 1, nil
}

// ReorderStops rewrites order_index for the given stops in one
// transaction. Stops not belonging to the trip are skipped by the WHERE
// clause rather than reported; the caller validates ownership upfront.
func (r *stopRepository) ReorderStops(ctx context.Context, tripID uuid.UUID, order map[uuid.UUID]int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for stopID, index := range order {
			err := tx.Model(&dbm.TripStop{}).
				Where("id = ? AND trip_id = ?", stopID, tripID).
				Update("order_index", index).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// RemoveStop deletes the stop and unassigns its activities; the activity
// rows themselves survive in the trip's unassigned bucket.
func (r *stopRepository) RemoveStop(ctx context.Context, stopID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&dbm.Activity{}).
			Where("stop_id = ?", stopID).
			Update("stop_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Where("id = ?", stopID).Delete(&dbm.TripStop{}).Error
	})
}
