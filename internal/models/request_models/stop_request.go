package request_models

type AddStopRequest struct {
	City      string   `json:"city" binding:"required"`
	Country   *string  `json:"country"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	StartDate string   `json:"start_date" binding:"required"`
	EndDate   string   `json:"end_date" binding:"required"`
}

type StopOrder struct {
	StopID     string `json:"stop_id" binding:"required,uuid4"`
	OrderIndex int    `json:"order_index"`
}

type ReorderStopsRequest struct {
	Order []StopOrder `json:"order" binding:"required,min=1,dive"`
}
