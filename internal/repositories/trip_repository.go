package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "globetrotter/internal/models/db_models"
)

type TripRepository interface {
	CreateTrip(ctx context.Context, trip *dbm.Trip) error
	GetTripByID(ctx context.Context, tripID string) (*dbm.Trip, error)
	GetTripWithItinerary(ctx context.Context, tripID string) (*dbm.Trip, error)
	ListTripsByUserID(ctx context.Context, page int, pageSize int, userID string) ([]dbm.Trip, error)
	ListPublicTrips(ctx context.Context, search string, page int, pageSize int) ([]dbm.Trip, error)
	UpdateTrip(ctx context.Context, trip *dbm.Trip) error
	SetTripVisibility(ctx context.Context, tripID uuid.UUID, isPublic bool) error
	DeleteTrip(ctx context.Context, tripID uuid.UUID) error

	CloneTripTree(ctx context.Context, sourceTripID uuid.UUID, targetUserID uuid.UUID) (uuid.UUID, error)
	MaterializeDraft(ctx context.Context, trip *dbm.Trip, stops []dbm.TripStop, activitiesByStop map[int][]dbm.Activity) (uuid.UUID, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateTrip(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) GetTripByID(ctx context.Context, tripID string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripID).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) GetTripWithItinerary(ctx context.Context, tripID string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripID).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListTripsByUserID(ctx context.Context, page int, pageSize int, userID string) ([]dbm.Trip, error) {
	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) ListPublicTrips(ctx context.Context, search string, page int, pageSize int) ([]dbm.Trip, error) {
	q := r.db.WithContext(ctx).Where("is_public = ?", true)
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var trips []dbm.Trip
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) UpdateTrip(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *tripRepository) SetTripVisibility(ctx context.Context, tripID uuid.UUID, isPublic bool) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("id = ?", tripID).
		Update("is_public", isPublic).Error
}

// DeleteTrip removes a trip and its subtree. Likes and comments go with
// the trip; the store has no cascade configured for soft deletes.
func (r *tripRepository) DeleteTrip(ctx context.Context, tripID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", tripID).Delete(&dbm.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripID).Delete(&dbm.TripStop{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripID).Delete(&dbm.TripLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripID).Delete(&dbm.TripComment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", tripID).Delete(&dbm.Trip{}).Error
	})
}

// buildTripClone maps a source subtree onto fresh rows owned by
// targetUserID. Ids are assigned here, before anything is written, so
// every activity can be re-pointed at its cloned stop through an old-id
// to new-id map. A source activity whose stop is absent from the map
// comes back with a null stop reference instead of aborting the copy.
// The clone is always private regardless of the source visibility.
func buildTripClone(
	source *dbm.Trip,
	stops []dbm.TripStop,
	activities []dbm.Activity,
	targetUserID uuid.UUID,
) (dbm.Trip, []dbm.TripStop, []dbm.Activity) {

	clone := dbm.Trip{
		UserID:      targetUserID,
		Name:        source.Name,
		Description: source.Description,
		StartDate:   source.StartDate,
		EndDate:     source.EndDate,
		CoverURL:    source.CoverURL,
		IsPublic:    false,
	}
	clone.ID = uuid.New()

	stopIDMap := make(map[uuid.UUID]uuid.UUID, len(stops))
	newStops := make([]dbm.TripStop, 0, len(stops))
	for _, s := range stops {
		ns := dbm.TripStop{
			TripID:     clone.ID,
			City:       s.City,
			Country:    s.Country,
			Lat:        s.Lat,
			Lng:        s.Lng,
			StartDate:  s.StartDate,
			EndDate:    s.EndDate,
			OrderIndex: s.OrderIndex,
		}
		ns.ID = uuid.New()
		stopIDMap[s.ID] = ns.ID
		newStops = append(newStops, ns)
	}

	newActivities := make([]dbm.Activity, 0, len(activities))
	for _, a := range activities {
		var stopID *uuid.UUID
		if a.StopID != nil {
			if mapped, ok := stopIDMap[*a.StopID]; ok {
				id := mapped
				stopID = &id
			}
		}
		na := dbm.Activity{
			TripID:        clone.ID,
			StopID:        stopID,
			Title:         a.Title,
			Notes:         a.Notes,
			StartTime:     a.StartTime,
			EndTime:       a.EndTime,
			EstimatedCost: a.EstimatedCost,
			Lat:           a.Lat,
			Lng:           a.Lng,
			BookingURL:    a.BookingURL,
		}
		na.ID = uuid.New()
		newActivities = append(newActivities, na)
	}

	return clone, newStops, newActivities
}

// CloneTripTree copies a trip header plus every stop and activity under a
// new owner inside one transaction: either the whole subtree lands or
// nothing does. The row mapping itself is buildTripClone; this wraps it
// in the fetch and insert plumbing.
func (r *tripRepository) CloneTripTree(
	ctx context.Context,
	sourceTripID uuid.UUID,
	targetUserID uuid.UUID,
) (uuid.UUID, error) {

	var newTripID uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var source dbm.Trip
		if err := tx.First(&source, "id = ?", sourceTripID).Error; err != nil {
			return err
		}

		var stops []dbm.TripStop
		if err := tx.Where("trip_id = ?", sourceTripID).Find(&stops).Error; err != nil {
			return err
		}

		var activities []dbm.Activity
		if err := tx.Where("trip_id = ?", sourceTripID).Find(&activities).Error; err != nil {
			return err
		}

		clone, newStops, newActivities := buildTripClone(&source, stops, activities, targetUserID)

		if err := tx.Create(&clone).Error; err != nil {
			return err
		}
		newTripID = clone.ID

		if len(newStops) > 0 {
			if err := tx.Create(&newStops).Error; err != nil {
				return err
			}
		}
		if len(newActivities) > 0 {
			if err := tx.Create(&newActivities).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return uuid.Nil, err
	}
	return newTripID, nil
}

// MaterializeDraft writes a generated itinerary as a real trip. Stops are
// keyed by position in the slice; activitiesByStop maps that position to
// the activities attached to it. Runs in one transaction.
func (r *tripRepository) MaterializeDraft(
	ctx context.Context,
	trip *dbm.Trip,
	stops []dbm.TripStop,
	activitiesByStop map[int][]dbm.Activity,
) (uuid.UUID, error) {

	var tripID uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}
		tripID = trip.ID

		for i := range stops {
			stops[i].TripID = tripID
			if err := tx.Create(&stops[i]).Error; err != nil {
				return err
			}

			acts := activitiesByStop[i]
			for j := range acts {
				acts[j].TripID = tripID
				stopID := stops[i].ID
				acts[j].StopID = &stopID
			}
			if len(acts) > 0 {
				if err := tx.Create(&acts).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})

	if err != nil {
		return uuid.Nil, err
	}
	return tripID, nil
}
