package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "globetrotter/internal/models/db_models"
	req "globetrotter/internal/models/request_models"
	resp "globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"

	"errors"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, userID string, request req.CreateTripRequest) (*resp.TripResponse, error)
	GetTripDetail(ctx context.Context, tripID string, viewerID string) (*resp.TripDetailResponse, error)
	ListMyTrips(ctx context.Context, userID string, page int, pageSize int) ([]resp.TripResponse, error)
	ListPublicTrips(ctx context.Context, search string, page int, pageSize int) ([]resp.TripResponse, error)
	UpdateTrip(ctx context.Context, userID string, tripID string, request req.UpdateTripRequest) error
	SetTripVisibility(ctx context.Context, userID string, tripID string, isPublic bool) error
	DeleteTrip(ctx context.Context, userID string, tripID string) error
	CopyTrip(ctx context.Context, sourceTripID string, targetUserID string) (string, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

func (s *TripService) CreateTrip(ctx context.Context, userID string, request req.CreateTripRequest) (*resp.TripResponse, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrUnauthenticated
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

	trip := dbm.Trip{
		UserID:      owner,
		Name:        request.Name,
		Description: request.Description,
		StartDate:   start,
		EndDate:     end,
		CoverURL:    request.CoverURL,
		IsPublic:    false,
	}
	if err := s.tripRepo.CreateTrip(ctx, &trip); err != nil {
		return nil, utils.ErrWriteFailed
	}

	out := buildTripResponse(&trip)
	return &out, nil
}

// GetTripDetail serves public trips to anyone; a private trip is visible
// to its owner only and reads as not-found for everyone else, so its
// existence is not disclosed.
func (s *TripService) GetTripDetail(ctx context.Context, tripID string, viewerID string) (*resp.TripDetailResponse, error) {
	trip, err := s.tripRepo.GetTripWithItinerary(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if !trip.IsPublic && trip.UserID.String() != viewerID {
		return nil, utils.ErrTripNotFound
	}

	stops := make([]resp.TripStopResponse, 0, len(trip.Stops))
	for _, stop := range trip.Stops {
		stops = append(stops, resp.TripStopResponse{
			ID:         stop.ID.String(),
			City:       stop.City,
			Country:    stop.Country,
			Lat:        stop.Lat,
			Lng:        stop.Lng,
			StartDate:  utils.FormatDate(stop.StartDate),
			EndDate:    utils.FormatDate(stop.EndDate),
			OrderIndex: stop.OrderIndex,
		})
	}

	activities := make([]resp.ActivityResponse, 0, len(trip.Activities))
	for _, a := range trip.Activities {
		activities = append(activities, buildActivityResponse(a))
	}

	byStop := make(map[string][]resp.ActivityResponse)
	for stopID, acts := range ActivitiesByStop(trip.Activities) {
		group := make([]resp.ActivityResponse, 0, len(acts))
		for _, a := range acts {
			group = append(group, buildActivityResponse(a))
		}
		byStop[stopID.String()] = group
	}

	return &resp.TripDetailResponse{
		Trip:       buildTripResponse(trip),
		Stops:      stops,
		Activities: activities,
		ByStop:     byStop,
		Budget:     CostByDay(trip.Stops, trip.Activities),
		TotalCost:  TotalCost(trip.Activities),
	}, nil
}

func (s *TripService) ListMyTrips(ctx context.Context, userID string, page int, pageSize int) ([]resp.TripResponse, error) {
	trips, err := s.tripRepo.ListTripsByUserID(ctx, page, pageSize, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return buildTripResponses(trips), nil
}

func (s *TripService) ListPublicTrips(ctx context.Context, search string, page int, pageSize int) ([]resp.TripResponse, error) {
	trips, err := s.tripRepo.ListPublicTrips(ctx, search, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return buildTripResponses(trips), nil
}

func (s *TripService) UpdateTrip(ctx context.Context, userID string, tripID string, request req.UpdateTripRequest) error {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return err
	}

	if request.Name != nil {
		if *request.Name == "" {
			return utils.ErrInvalidInput
		}
		trip.Name = *request.Name
	}
	if request.Description != nil {
		trip.Description = request.Description
	}
	if request.CoverURL != nil {
		trip.CoverURL = request.CoverURL
	}
	if request.StartDate != nil {
		start, err := utils.ParseDate(*request.StartDate)
		if err != nil {
			return utils.ErrInvalidInput
		}
		trip.StartDate = start
	}
	if request.EndDate != nil {
		end, err := utils.ParseDate(*request.EndDate)
		if err != nil {
			return utils.ErrInvalidInput
		}
		trip.EndDate = end
	}
	if trip.EndDate.Before(trip.StartDate) {
		return utils.ErrInvalidInput
	}

	if err := s.tripRepo.UpdateTrip(ctx, trip); err != nil {
		return utils.ErrWriteFailed
	}
	return nil
}

func (s *TripService) SetTripVisibility(ctx context.Context, userID string, tripID string, isPublic bool) error {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return err
	}

	if err := s.tripRepo.SetTripVisibility(ctx, trip.ID, isPublic); err != nil {
		return utils.ErrWriteFailed
	}
	return nil
}

func (s *TripService) DeleteTrip(ctx context.Context, userID string, tripID string) error {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return err
	}

	if err := s.tripRepo.DeleteTrip(ctx, trip.ID); err != nil {
		return utils.ErrWriteFailed
	}
	return nil
}

// CopyTrip clones a trip subtree under a new owner and returns the new
// trip id. The caller is responsible for visibility checks on the
// source; target user validity is assumed, not re-checked here.
func (s *TripService) CopyTrip(ctx context.Context, sourceTripID string, targetUserID string) (string, error) {
	sourceID, err := uuid.Parse(sourceTripID)
	if err != nil {
		return "", utils.ErrInvalidInput
	}
	targetID, err := uuid.Parse(targetUserID)
	if err != nil {
		return "", utils.ErrUnauthenticated
	}

	newID, err := s.tripRepo.CloneTripTree(ctx, sourceID, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", utils.ErrTripNotFound
		}
		return "", utils.ErrWriteFailed
	}
	return newID.String(), nil
}

func (s *TripService) ownedTrip(ctx context.Context, userID string, tripID string) (*dbm.Trip, error) {
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

func buildTripResponse(trip *dbm.Trip) resp.TripResponse {
	return resp.TripResponse{
		ID:          trip.ID.String(),
		UserID:      trip.UserID.String(),
		Name:        trip.Name,
		Description: trip.Description,
		StartDate:   utils.FormatDate(trip.StartDate),
		EndDate:     utils.FormatDate(trip.EndDate),
		CoverURL:    trip.CoverURL,
		IsPublic:    trip.IsPublic,
		CreatedAt:   trip.CreatedAt,
	}
}

func buildTripResponses(trips []dbm.Trip) []resp.TripResponse {
	out := make([]resp.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, buildTripResponse(&trips[i]))
	}
	return out
}

func buildActivityResponse(a dbm.Activity) resp.ActivityResponse {
	var stopID *string
	if a.StopID != nil {
		v := a.StopID.String()
		stopID = &v
	}
	return resp.ActivityResponse{
		ID:            a.ID.String(),
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
}
