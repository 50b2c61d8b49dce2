package response_models

type LikeStatusResponse struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}

type CommentResponse struct {
	ID        string `json:"id"`
	TripID    string `json:"trip_id"`
	UserID    string `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"`
}
