package request_models

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
