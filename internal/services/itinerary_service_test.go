package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "globetrotter/internal/models/db_models"
	req "globetrotter/internal/models/request_models"
	"globetrotter/pkg/utils"
)

type stopRepoStub struct {
	addStop        func(ctx context.Context, stop *dbm.TripStop) error
	getStopByID    func(ctx context.Context, stopID uuid.UUID) (*dbm.TripStop, error)
	nextOrderIndex func(ctx context.Context, tripID uuid.UUID) (int, error)
	reorderStops   func(ctx context.Context, tripID uuid.UUID, order map[uuid.UUID]int) error
	removeStop     func(ctx context.Context, stopID uuid.UUID) error
}

func (s *stopRepoStub) AddStop(ctx context.Context, stop *dbm.TripStop) error {
	return s.addStop(ctx, stop)
}

func (s *stopRepoStub) GetStopByID(ctx context.Context, stopID uuid.UUID) (*dbm.TripStop, error) {
	return s.getStopByID(ctx, stopID)
}

func (s *stopRepoStub) ListStopsByTripID(ctx context.Context, tripID uuid.UUID) ([]dbm.TripStop, error) {
	return nil, nil
}

func (s *stopRepoStub) NextOrderIndex(ctx context.Context, tripID uuid.UUID) (int, error) {
	return s.nextOrderIndex(ctx, tripID)
}

func (s *stopRepoStub) ReorderStops(ctx context.Context, tripID uuid.UUID, order map[uuid.UUID]int) error {
	return s.reorderStops(ctx, tripID, order)
}

func (s *stopRepoStub) RemoveStop(ctx context.Context, stopID uuid.UUID) error {
	return s.removeStop(ctx, stopID)
}

type activityRepoStub struct {
	addActivity      func(ctx context.Context, activity *dbm.Activity) error
	getActivityByID  func(ctx context.Context, activityID uuid.UUID) (*dbm.Activity, error)
	removeActivity   func(ctx context.Context, activityID uuid.UUID) error
	fillMissingCosts func(ctx context.Context, tripID uuid.UUID, defaultCost float64) error
}

func (s *activityRepoStub) AddActivity(ctx context.Context, activity *dbm.Activity) error {
	return s.addActivity(ctx, activity)
}

func (s *activityRepoStub) GetActivityByID(ctx context.Context, activityID uuid.UUID) (*dbm.Activity, error) {
	return s.getActivityByID(ctx, activityID)
}

func (s *activityRepoStub) ListActivitiesByTripID(ctx context.Context, tripID uuid.UUID) ([]dbm.Activity, error) {
	return nil, nil
}

func (s *activityRepoStub) RemoveActivity(ctx context.Context, activityID uuid.UUID) error {
	return s.removeActivity(ctx, activityID)
}

func (s *activityRepoStub) FillMissingCosts(ctx context.Context, tripID uuid.UUID, defaultCost float64) error {
	return s.fillMissingCosts(ctx, tripID, defaultCost)
}

func TestAddStopAppendsAtEnd(t *testing.T) {
	owner := uuid.New()
	trip := ownedTestTrip(owner)

	var added *dbm.TripStop
	stops := &stopRepoStub{
		nextOrderIndex: func(ctx context.Context, tripID uuid.UUID) (int, error) { return 3, nil },
		addStop: func(ctx context.Context, stop *dbm.TripStop) error {
			added = stop
			return nil
		},
	}
	svc := NewItineraryService(existingTripRepo(trip), stops, &activityRepoStub{})

	out, err := svc.AddStop(context.Background(), owner.String(), trip.ID.String(), req.AddStopRequest{
		City:      "Lisbon",
		StartDate: "2026-06-01",
		EndDate:   "2026-06-03",
	})
	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, 3, added.OrderIndex)
	assert.Equal(t, trip.ID, added.TripID)
	assert.Equal(t, "Lisbon", out.City)
}

func TestReorderStopsRejectsNegativeIndex(t *testing.T) {
	owner := uuid.New()
	trip := ownedTestTrip(owner)
	svc := NewItineraryService(existingTripRepo(trip), &stopRepoStub{}, &activityRepoStub{})

	err := svc.ReorderStops(context.Background(), owner.String(), trip.ID.String(), req.ReorderStopsRequest{
		Order: []req.StopOrder{{StopID: uuid.New().String(), OrderIndex: -1}},
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestAddActivityRejectsForeignStop(t *testing.T) {
	owner := uuid.New()
	trip := ownedTestTrip(owner)

	otherStop := stop("Elsewhere", 0)
	otherStop.TripID = uuid.New() // belongs to a different trip

	stops := &stopRepoStub{
		getStopByID: func(ctx context.Context, stopID uuid.UUID) (*dbm.TripStop, error) {
			return &otherStop, nil
		},
	}
	svc := NewItineraryService(existingTripRepo(trip), stops, &activityRepoStub{})

	stopID := otherStop.ID.String()
	_, err := svc.AddActivity(context.Background(), owner.String(), trip.ID.String(), req.AddActivityRequest{
		Title:  "Dinner",
		StopID: &stopID,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestAddActivityRejectsNegativeCost(t *testing.T) {
	owner := uuid.New()
	trip := ownedTestTrip(owner)
	svc := NewItineraryService(existingTripRepo(trip), &stopRepoStub{}, &activityRepoStub{})

	cost := -1.0
	_, err := svc.AddActivity(context.Background(), owner.String(), trip.ID.String(), req.AddActivityRequest{
		Title:         "Dinner",
		EstimatedCost: &cost,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestAddActivityUnassignedStop(t *testing.T) {
	owner := uuid.New()
	trip := ownedTestTrip(owner)

	var added *dbm.Activity
	activities := &activityRepoStub{
		addActivity: func(ctx context.Context, activity *dbm.Activity) error {
			added = activity
			return nil
		},
	}
	svc := NewItineraryService(existingTripRepo(trip), &stopRepoStub{}, activities)

	_, err := svc.AddActivity(context.Background(), owner.String(), trip.ID.String(), req.AddActivityRequest{
		Title: "Airport transfer",
	})
	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Nil(t, added.StopID)
	assert.Equal(t, trip.ID, added.TripID)
}

func TestRemoveStopChecksOwnershipViaTrip(t *testing.T) {
	owner := uuid.New()
	trip := ownedTestTrip(owner)

	victim := stop("Lyon", 0)
	victim.TripID = trip.ID

	stops := &stopRepoStub{
		getStopByID: func(ctx context.Context, stopID uuid.UUID) (*dbm.TripStop, error) {
			return &victim, nil
		},
	}
	svc := NewItineraryService(existingTripRepo(trip), stops, &activityRepoStub{})

	err := svc.RemoveStop(context.Background(), uuid.New().String(), victim.ID.String())
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestFillMissingCostsUsesBaseline(t *testing.T) {
	owner := uuid.New()
	trip := ownedTestTrip(owner)

	var gotDefault float64
	activities := &activityRepoStub{
		fillMissingCosts: func(ctx context.Context, tripID uuid.UUID, defaultCost float64) error {
			gotDefault = defaultCost
			return nil
		},
	}
	svc := NewItineraryService(existingTripRepo(trip), &stopRepoStub{}, activities)

	err := svc.FillMissingCosts(context.Background(), owner.String(), trip.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 30.0, gotDefault)
}
