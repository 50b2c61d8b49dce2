package response_models

type DestinationResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	Region      string  `json:"region"`
	PriceRange  string  `json:"price_range"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url,omitempty"`
	Rating      float64 `json:"rating"`
}
