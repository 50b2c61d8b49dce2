package response_models

type TripResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	CoverURL    *string `json:"cover_url,omitempty"`
	IsPublic    bool    `json:"is_public"`
	CreatedAt   int64   `json:"created_at"`
}

type TripStopResponse struct {
	ID         string   `json:"id"`
	City       string   `json:"city"`
	Country    *string  `json:"country,omitempty"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	OrderIndex int      `json:"order_index"`
}

type ActivityResponse struct {
	ID            string   `json:"id"`
	StopID        *string  `json:"stop_id,omitempty"`
	Title         string   `json:"title"`
	Notes         *string  `json:"notes,omitempty"`
	StartTime     *string  `json:"start_time,omitempty"`
	EndTime       *string  `json:"end_time,omitempty"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty"`
	Lat           *float64 `json:"lat,omitempty"`
	Lng           *float64 `json:"lng,omitempty"`
	BookingURL    *string  `json:"booking_url,omitempty"`
}

type TripDetailResponse struct {
	Trip       TripResponse                  `json:"trip"`
	Stops      []TripStopResponse            `json:"stops"`
	Activities []ActivityResponse            `json:"activities"`
	ByStop     map[string][]ActivityResponse `json:"activities_by_stop"`
	Budget     []BudgetSlice                 `json:"budget"`
	TotalCost  float64                       `json:"total_cost"`
}

type CopyTripResponse struct {
	ID string `json:"id"`
}
