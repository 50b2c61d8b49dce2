package request_models

type CreateTripRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	// Calendar dates, "2006-01-02"
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   string  `json:"end_date" binding:"required"`
	CoverURL  *string `json:"cover_url"`
}

type UpdateTripRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	CoverURL    *string `json:"cover_url"`
}

type SetVisibilityRequest struct {
	IsPublic bool `json:"is_public"`
}

type CopyTripRequest struct {
	SourceTripID string `json:"source_trip_id" binding:"required,uuid4"`
}
