package services

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	dbm "globetrotter/internal/models/db_models"
	resp "globetrotter/internal/models/response_models"
)

// Pure transforms over an already-loaded (stops, activities) pair. No
// state, recomputed per request; the inputs are dozens of rows at most.

// CostByDay sums estimated costs per stop, ordered by order_index, and
// labels each slice "Day N: city" with N counted from 1 in display
// order. Stops whose total is zero are dropped from the chart. A nil
// estimated cost counts as zero; activities with no stop reference are
// not part of any day.
func CostByDay(stops []dbm.TripStop, activities []dbm.Activity) []resp.BudgetSlice {
	ordered := make([]dbm.TripStop, len(stops))
	copy(ordered, stops)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OrderIndex < ordered[j].OrderIndex
	})

	totals := make(map[uuid.UUID]float64, len(ordered))
	for _, a := range activities {
		if a.StopID == nil || a.EstimatedCost == nil {
			continue
		}
		totals[*a.StopID] += *a.EstimatedCost
	}

	slices := make([]resp.BudgetSlice, 0, len(ordered))
	for i, stop := range ordered {
		total := totals[stop.ID]
		if total <= 0 {
			continue
		}
		slices = append(slices, resp.BudgetSlice{
			Label: fmt.Sprintf("Day %d: %s", i+1, stop.City),
			Total: total,
		})
	}
	return slices
}

// ActivitiesByStop groups the flat activity list by stop id. Unassigned
// activities are omitted; they belong to the trip-level bucket, not to
// any day.
func ActivitiesByStop(activities []dbm.Activity) map[uuid.UUID][]dbm.Activity {
	grouped := make(map[uuid.UUID][]dbm.Activity)
	for _, a := range activities {
		if a.StopID == nil {
			continue
		}
		grouped[*a.StopID] = append(grouped[*a.StopID], a)
	}
	return grouped
}

// TotalCost is the sum over activities assigned to a stop. Unassigned
// activities are excluded so the grand total always equals the sum of
// the per-day slices.
func TotalCost(activities []dbm.Activity) float64 {
	var total float64
	for _, a := range activities {
		if a.StopID == nil || a.EstimatedCost == nil {
			continue
		}
		total += *a.EstimatedCost
	}
	return total
}
