package request_models

type AddActivityRequest struct {
	StopID        *string  `json:"stop_id"`
	Title         string   `json:"title" binding:"required"`
	Notes         *string  `json:"notes"`
	StartTime     *string  `json:"start_time"`
	EndTime       *string  `json:"end_time"`
	EstimatedCost *float64 `json:"estimated_cost"`
	Lat           *float64 `json:"lat"`
	Lng           *float64 `json:"lng"`
	BookingURL    *string  `json:"booking_url"`
}
