package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "globetrotter/internal/models/db_models"
)

func cloneSourceTrip(owner uuid.UUID) *dbm.Trip {
	desc := "Two cities in a week"
	cover := "https://img.example/alps.jpg"
	trip := &dbm.Trip{
		UserID:      owner,
		Name:        "Alps",
		Description: &desc,
		CoverURL:    &cover,
		IsPublic:    true,
	}
	trip.ID = uuid.New()
	return trip
}

func cloneSourceStop(tripID uuid.UUID, city string, orderIndex int) dbm.TripStop {
	s := dbm.TripStop{TripID: tripID, City: city, OrderIndex: orderIndex}
	s.ID = uuid.New()
	return s
}

func cloneSourceActivity(tripID uuid.UUID, stopID *uuid.UUID, title string) dbm.Activity {
	cost := 25.0
	a := dbm.Activity{TripID: tripID, StopID: stopID, Title: title, EstimatedCost: &cost}
	a.ID = uuid.New()
	return a
}

func TestBuildTripCloneRemapsStopReferences(t *testing.T) {
	source := cloneSourceTrip(uuid.New())
	stopA := cloneSourceStop(source.ID, "Annecy", 0)
	stopB := cloneSourceStop(source.ID, "Bern", 1)

	actX := cloneSourceActivity(source.ID, &stopA.ID, "Lake walk")
	actY := cloneSourceActivity(source.ID, &stopB.ID, "Old town tour")
	actZ := cloneSourceActivity(source.ID, nil, "Buy rail pass")

	target := uuid.New()
	clone, stops, activities := buildTripClone(source,
		[]dbm.TripStop{stopA, stopB},
		[]dbm.Activity{actX, actY, actZ},
		target)

	// Completeness: one row per source row.
	require.Len(t, stops, 2)
	require.Len(t, activities, 3)

	// Header copied, ownership moved, visibility reset.
	assert.Equal(t, target, clone.UserID)
	assert.False(t, clone.IsPublic)
	assert.Equal(t, source.Name, clone.Name)
	assert.Equal(t, source.Description, clone.Description)
	assert.Equal(t, source.CoverURL, clone.CoverURL)
	assert.NotEqual(t, source.ID, clone.ID)

	// Stops re-parented with fresh ids, order preserved.
	oldStopIDs := map[uuid.UUID]bool{stopA.ID: true, stopB.ID: true}
	for i, s := range stops {
		assert.Equal(t, clone.ID, s.TripID)
		assert.False(t, oldStopIDs[s.ID], "stop %d kept its source id", i)
	}
	assert.Equal(t, 0, stops[0].OrderIndex)
	assert.Equal(t, 1, stops[1].OrderIndex)

	// Activities point at the cloned stops, never at the source ones.
	assert.Equal(t, stops[0].ID, *activities[0].StopID)
	assert.Equal(t, stops[1].ID, *activities[1].StopID)
	assert.Nil(t, activities[2].StopID)
	for i, a := range activities {
		assert.Equal(t, clone.ID, a.TripID)
		if a.StopID != nil {
			assert.False(t, oldStopIDs[*a.StopID], "activity %d kept a source stop id", i)
		}
	}
}

func TestBuildTripCloneOrphanStopReference(t *testing.T) {
	source := cloneSourceTrip(uuid.New())

	// An activity pointing at a stop that no longer exists under the
	// trip is cloned unassigned rather than aborting the copy.
	ghost := uuid.New()
	orphan := cloneSourceActivity(source.ID, &ghost, "Ghost stop visit")

	clone, stops, activities := buildTripClone(source, nil, []dbm.Activity{orphan}, uuid.New())

	assert.Empty(t, stops)
	require.Len(t, activities, 1)
	assert.Nil(t, activities[0].StopID)
	assert.Equal(t, clone.ID, activities[0].TripID)
	assert.Equal(t, "Ghost stop visit", activities[0].Title)
}

func TestBuildTripCloneEmptySubtree(t *testing.T) {
	source := cloneSourceTrip(uuid.New())

	clone, stops, activities := buildTripClone(source, nil, nil, uuid.New())

	assert.Empty(t, stops)
	assert.Empty(t, activities)
	assert.False(t, clone.IsPublic)
}
