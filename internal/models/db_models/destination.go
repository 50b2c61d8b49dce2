package db_models

type Destination struct {
	BaseModel
	Name        string
	Country     string
	Region      string `gorm:"index"`
	PriceRange  string `gorm:"index"` // "budget" | "moderate" | "luxury"
	Description string
	ImageURL    *string
	Rating      float64
}
