package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbm "globetrotter/internal/models/db_models"
	req "globetrotter/internal/models/request_models"
	"globetrotter/pkg/utils"
)

// tripRepoStub lets each test override just the methods it exercises.
type tripRepoStub struct {
	createTrip           func(ctx context.Context, trip *dbm.Trip) error
	getTripByID          func(ctx context.Context, tripID string) (*dbm.Trip, error)
	getTripWithItinerary func(ctx context.Context, tripID string) (*dbm.Trip, error)
	listTripsByUserID    func(ctx context.Context, page, pageSize int, userID string) ([]dbm.Trip, error)
	listPublicTrips      func(ctx context.Context, search string, page, pageSize int) ([]dbm.Trip, error)
	updateTrip           func(ctx context.Context, trip *dbm.Trip) error
	setTripVisibility    func(ctx context.Context, tripID uuid.UUID, isPublic bool) error
	deleteTrip           func(ctx context.Context, tripID uuid.UUID) error
	cloneTripTree        func(ctx context.Context, sourceTripID, targetUserID uuid.UUID) (uuid.UUID, error)
	materializeDraft     func(ctx context.Context, trip *dbm.Trip, stops []dbm.TripStop, activitiesByStop map[int][]dbm.Activity) (uuid.UUID, error)
}

func (s *tripRepoStub) CreateTrip(ctx context.Context, trip *dbm.Trip) error {
	return s.createTrip(ctx, trip)
}

func (s *tripRepoStub) GetTripByID(ctx context.Context, tripID string) (*dbm.Trip, error) {
	return s.getTripByID(ctx, tripID)
}

func (s *tripRepoStub) GetTripWithItinerary(ctx context.Context, tripID string) (*dbm.Trip, error) {
	return s.getTripWithItinerary(ctx, tripID)
}

func (s *tripRepoStub) ListTripsByUserID(ctx context.Context, page, pageSize int, userID string) ([]dbm.Trip, error) {
	return s.listTripsByUserID(ctx, page, pageSize, userID)
}

func (s *tripRepoStub) ListPublicTrips(ctx context.Context, search string, page, pageSize int) ([]dbm.Trip, error) {
	return s.listPublicTrips(ctx, search, page, pageSize)
}

func (s *tripRepoStub) UpdateTrip(ctx context.Context, trip *dbm.Trip) error {
	return s.updateTrip(ctx, trip)
}

func (s *tripRepoStub) SetTripVisibility(ctx context.Context, tripID uuid.UUID, isPublic bool) error {
	return s.setTripVisibility(ctx, tripID, isPublic)
}

func (s *tripRepoStub) DeleteTrip(ctx context.Context, tripID uuid.UUID) error {
	return s.deleteTrip(ctx, tripID)
}

func (s *tripRepoStub) CloneTripTree(ctx context.Context, sourceTripID, targetUserID uuid.UUID) (uuid.UUID, error) {
	return s.cloneTripTree(ctx, sourceTripID, targetUserID)
}

func (s *tripRepoStub) MaterializeDraft(ctx context.Context, trip *dbm.Trip, stops []dbm.TripStop, activitiesByStop map[int][]dbm.Activity) (uuid.UUID, error) {
	return s.materializeDraft(ctx, trip, stops, activitiesByStop)
}

func ownedTestTrip(owner uuid.UUID) *dbm.Trip {
	trip := &dbm.Trip{UserID: owner, Name: "Alps"}
	trip.ID = uuid.New()
	return trip
}

func TestCreateTripRejectsReversedDates(t *testing.T) {
	svc := NewTripService(&tripRepoStub{})
	owner := uuid.New().String()

	_, err := svc.CreateTrip(context.Background(), owner, req.CreateTripRequest{
		Name:      "Backwards",
		StartDate: "2026-06-10",
		EndDate:   "2026-06-01",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestCreateTripDefaultsToPrivate(t *testing.T) {
	var created *dbm.Trip
	repo := &tripRepoStub{
		createTrip: func(ctx context.Context, trip *dbm.Trip) error {
			created = trip
			return nil
		},
	}
	svc := NewTripService(repo)

	out, err := svc.CreateTrip(context.Background(), uuid.New().String(), req.CreateTripRequest{
		Name:      "Summer",
		StartDate: "2026-06-01",
		EndDate:   "2026-06-10",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.False(t, created.IsPublic)
	assert.False(t, out.IsPublic)
}

func TestUpdateTripRequiresOwnership(t *testing.T) {
	owner := uuid.New()
	trip := ownedTestTrip(owner)
	repo := &tripRepoStub{
		getTripByID: func(ctx context.Context, tripID string) (*dbm.Trip, error) {
			return trip, nil
		},
	}
	svc := NewTripService(repo)

	name := "Renamed"
	err := svc.UpdateTrip(context.Background(), uuid.New().String(), trip.ID.String(), req.UpdateTripRequest{Name: &name})
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestUpdateTripMissingTrip(t *testing.T) {
	repo := &tripRepoStub{
		getTripByID: func(ctx context.Context, tripID string) (*dbm.Trip, error) {
			return nil, nil
		},
	}
	svc := NewTripService(repo)

	name := "Renamed"
	err := svc.UpdateTrip(context.Background(), uuid.New().String(), uuid.New().String(), req.UpdateTripRequest{Name: &name})
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestCopyTripPassesIDsThrough(t *testing.T) {
	source := uuid.New()
	target := uuid.New()
	cloned := uuid.New()

	var gotSource, gotTarget uuid.UUID
	repo := &tripRepoStub{
		cloneTripTree: func(ctx context.Context, sourceTripID, targetUserID uuid.UUID) (uuid.UUID, error) {
			gotSource, gotTarget = sourceTripID, targetUserID
			return cloned, nil
		},
	}
	svc := NewTripService(repo)

	newID, err := svc.CopyTrip(context.Background(), source.String(), target.String())
	require.NoError(t, err)
	assert.Equal(t, cloned.String(), newID)
	assert.Equal(t, source, gotSource)
	assert.Equal(t, target, gotTarget)
}

func TestCopyTripMapsMissingSource(t *testing.T) {
	repo := &tripRepoStub{
		cloneTripTree: func(ctx context.Context, sourceTripID, targetUserID uuid.UUID) (uuid.UUID, error) {
			return uuid.Nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewTripService(repo)

	_, err := svc.CopyTrip(context.Background(), uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestCopyTripMapsWriteFailure(t *testing.T) {
	repo := &tripRepoStub{
		cloneTripTree: func(ctx context.Context, sourceTripID, targetUserID uuid.UUID) (uuid.UUID, error) {
			return uuid.Nil, errors.New("deadlock detected")
		},
	}
	svc := NewTripService(repo)

	_, err := svc.CopyTrip(context.Background(), uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrWriteFailed)
}

func TestCopyTripRejectsBadIDs(t *testing.T) {
	svc := NewTripService(&tripRepoStub{})

	_, err := svc.CopyTrip(context.Background(), "not-a-uuid", uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.CopyTrip(context.Background(), uuid.New().String(), "not-a-uuid")
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
}

func TestGetTripDetailAssemblesBudget(t *testing.T) {
	owner := uuid.New()
	trip := ownedTestTrip(owner)
	trip.IsPublic = true

	paris := stop("Paris", 0)
	paris.TripID = trip.ID
	lyon := stop("Lyon", 1)
	lyon.TripID = trip.ID
	trip.Stops = []dbm.TripStop{paris, lyon}
	trip.Activities = []dbm.Activity{
		activity(&paris.ID, fptr(10)),
		activity(&lyon.ID, fptr(20)),
		activity(nil, fptr(5)),
	}

	repo := &tripRepoStub{
		getTripWithItinerary: func(ctx context.Context, tripID string) (*dbm.Trip, error) {
			return trip, nil
		},
	}
	svc := NewTripService(repo)

	detail, err := svc.GetTripDetail(context.Background(), trip.ID.String(), "")
	require.NoError(t, err)

	assert.Len(t, detail.Stops, 2)
	assert.Len(t, detail.Activities, 3)
	assert.Len(t, detail.ByStop, 2)
	require.Len(t, detail.Budget, 2)
	assert.Equal(t, "Day 1: Paris", detail.Budget[0].Label)
	assert.Equal(t, "Day 2: Lyon", detail.Budget[1].Label)
	assert.Equal(t, 30.0, detail.TotalCost)
}

func TestGetTripDetailMissingTrip(t *testing.T) {
	repo := &tripRepoStub{
		getTripWithItinerary: func(ctx context.Context, tripID string) (*dbm.Trip, error) {
			return nil, nil
		},
	}
	svc := NewTripService(repo)

	_, err := svc.GetTripDetail(context.Background(), uuid.New().String(), "")
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestGetTripDetailHidesPrivateTripFromStrangers(t *testing.T) {
	owner := uuid.New()
	trip := ownedTestTrip(owner) // private by default

	repo := &tripRepoStub{
		getTripWithItinerary: func(ctx context.Context, tripID string) (*dbm.Trip, error) {
			return trip, nil
		},
	}
	svc := NewTripService(repo)

	// Anonymous viewer.
	_, err := svc.GetTripDetail(context.Background(), trip.ID.String(), "")
	assert.ErrorIs(t, err, utils.ErrTripNotFound)

	// Signed-in non-owner. A private trip reads as not-found, never as
	// forbidden, so its existence is not disclosed.
	_, err = svc.GetTripDetail(context.Background(), trip.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestGetTripDetailServesPrivateTripToOwner(t *testing.T) {
	owner := uuid.New()
	trip := ownedTestTrip(owner)

	repo := &tripRepoStub{
		getTripWithItinerary: func(ctx context.Context, tripID string) (*dbm.Trip, error) {
			return trip, nil
		},
	}
	svc := NewTripService(repo)

	detail, err := svc.GetTripDetail(context.Background(), trip.ID.String(), owner.String())
	require.NoError(t, err)
	assert.Equal(t, trip.ID.String(), detail.Trip.ID)
}
