package response_models

// Shape requested from the text-generation model, one entry per day.
type ItineraryDraft struct {
	Stops []DraftDay `json:"stops"`
}

type DraftDay struct {
	Day        int             `json:"day"`
	Title      string          `json:"title"`
	Activities []DraftActivity `json:"activities"`
}

type DraftActivity struct {
	Title         string  `json:"title"`
	StartTime     string  `json:"start_time"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimated_cost"`
}

type TripOverviewResponse struct {
	Summary string `json:"summary"`
}
