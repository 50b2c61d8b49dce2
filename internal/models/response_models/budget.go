package response_models

// One slice of the per-day budget chart, e.g. {"Day 2: Kyoto", 140}.
type BudgetSlice struct {
	Label string  `json:"label"`
	Total float64 `json:"total"`
}
