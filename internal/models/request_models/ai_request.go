package request_models

type TripOverviewRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type GenerateItineraryRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type DraftActivityInput struct {
	Title         string  `json:"title" binding:"required"`
	StartTime     string  `json:"start_time"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimated_cost"`
}

type DraftDayInput struct {
	Day        int                  `json:"day" binding:"required,min=1"`
	Title      string               `json:"title" binding:"required"`
	Activities []DraftActivityInput `json:"activities"`
}

type CreateTripFromDraftRequest struct {
	Name        string          `json:"name" binding:"required"`
	Destination string          `json:"destination" binding:"required"`
	StartDate   string          `json:"start_date" binding:"required"`
	EndDate     string          `json:"end_date" binding:"required"`
	Stops       []DraftDayInput `json:"stops" binding:"required,min=1,dive"`
}
