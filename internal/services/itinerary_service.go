package services

import (
	"context"

	"github.com/google/uuid"
	dbm "globetrotter/internal/models/db_models"
	req "globetrotter/internal/models/request_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

// ItineraryService covers the stop and activity operations of the trip
// builder. Every mutation checks trip ownership before touching rows.
type ItineraryServiceInterface interface {
	AddStop(ctx context.Context, userID string, tripID string, request req.AddStopRequest) (*dbm.TripStop, error)
	ReorderStops(ctx context.Context, userID string, tripID string, request req.ReorderStopsRequest) error
	RemoveStop(ctx context.Context, userID string, stopID string) error
	AddActivity(ctx context.Context, userID string, tripID string, request req.AddActivityRequest) (*dbm.Activity, error)
	RemoveActivity(ctx context.Context, userID string, activityID string) error
	FillMissingCosts(ctx context.Context, userID string, tripID string) error
}

// Baseline cost filled into unpriced activities, a city-average stand-in.
const defaultActivityCost = 30

type ItineraryService struct {
	tripRepo     repositories.TripRepository
	stopRepo     repositories.StopRepository
	activityRepo repositories.ActivityRepository
}

func NewItineraryService(
	tripRepo repositories.TripRepository,
	stopRepo repositories.StopRepository,
	activityRepo repositories.ActivityRepository,
) ItineraryServiceInterface {
	return &ItineraryService{
		tripRepo:     tripRepo,
		stopRepo:     stopRepo,
		activityRepo: activityRepo,
	}
}

func (s *ItineraryService) AddStop(ctx context.Context, userID string, tripID string, request req.AddStopRequest) (*dbm.TripStop, error) {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	start, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := utils.ParseDate(request.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if end.Before(start) {
		return nil, utils.ErrInvalidInput
	}

	nextIndex, err := s.stopRepo.NextOrderIndex(ctx, trip.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	stop := dbm.TripStop{
		TripID:     trip.ID,
		City:       request.City,
		Country:    request.Country,
		Lat:        request.Lat,
		Lng:        request.Lng,
		StartDate:  start,
		EndDate:    end,
		OrderIndex: nextIndex,
	}
	if err := s.stopRepo.AddStop(ctx, &stop); err != nil {
		return nil, utils.ErrWriteFailed
	}
	return &stop, nil
}

func (s *ItineraryService) ReorderStops(ctx context.Context, userID string, tripID string, request req.ReorderStopsRequest) error {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return err
	}

	order := make(map[uuid.UUID]int, len(request.Order))
	for _, o := range request.Order {
		stopID, err := uuid.Parse(o.StopID)
		if err != nil || o.OrderIndex < 0 {
			return utils.ErrInvalidInput
		}
		order[stopID] = o.OrderIndex
	}

	if err := s.stopRepo.ReorderStops(ctx, trip.ID, order); err != nil {
		return utils.ErrWriteFailed
	}
	return nil
}

func (s *ItineraryService) RemoveStop(ctx context.Context, userID string, stopID string) error {
	id, err := uuid.Parse(stopID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	stop, err := s.stopRepo.GetStopByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if stop == nil {
		return utils.ErrStopNotFound
	}
	if _, err := s.ownedTrip(ctx, userID, stop.TripID.String()); err != nil {
		return err
	}

	if err := s.stopRepo.RemoveStop(ctx, id); err != nil {
		return utils.ErrWriteFailed
	}
	return nil
}

func (s *ItineraryService) AddActivity(ctx context.Context, userID string, tripID string, request req.AddActivityRequest) (*dbm.Activity, error) {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	if request.EstimatedCost != nil && *request.EstimatedCost < 0 {
		return nil, utils.ErrInvalidInput
	}

	var stopID *uuid.UUID
	if request.StopID != nil && *request.StopID != "" {
		id, err := uuid.Parse(*request.StopID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		stop, err := s.stopRepo.GetStopByID(ctx, id)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		// An activity may only point at a stop of its own trip.
		if stop == nil || stop.TripID != trip.ID {
			return nil, utils.ErrInvalidInput
		}
		stopID = &id
	}

	activity := dbm.Activity{
		TripID:        trip.ID,
		StopID:        stopID,
		Title:         request.Title,
		Notes:         request.Notes,
		StartTime:     request.StartTime,
		EndTime:       request.EndTime,
		EstimatedCost: request.EstimatedCost,
		Lat:           request.Lat,
		Lng:           request.Lng,
		BookingURL:    request.BookingURL,
	}
	if err := s.activityRepo.AddActivity(ctx, &activity); err != nil {
		return nil, utils.ErrWriteFailed
	}
	return &activity, nil
}

func (s *ItineraryService) RemoveActivity(ctx context.Context, userID string, activityID string) error {
	id, err := uuid.Parse(activityID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	activity, err := s.activityRepo.GetActivityByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if activity == nil {
		return utils.ErrActivityNotFound
	}
	if _, err := s.ownedTrip(ctx, userID, activity.TripID.String()); err != nil {
		return err
	}

	if err := s.activityRepo.RemoveActivity(ctx, id); err != nil {
		return utils.ErrWriteFailed
	}
	return nil
}

func (s *ItineraryService) FillMissingCosts(ctx context.Context, userID string, tripID string) error {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return err
	}

	if err := s.activityRepo.FillMissingCosts(ctx, trip.ID, defaultActivityCost); err != nil {
		return utils.ErrWriteFailed
	}
	return nil
}

func (s *ItineraryService) ownedTrip(ctx context.Context, userID string, tripID string) (*dbm.Trip, error) {
	trip, err := s.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.UserID.String() != userID {
		return nil, utils.ErrForbidden
	}
	return trip, nil
}
