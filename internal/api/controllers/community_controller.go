package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type CommunityController struct {
	tripService      services.TripServiceInterface
	communityService services.CommunityServiceInterface
}

func NewCommunityController(
	tripService services.TripServiceInterface,
	communityService services.CommunityServiceInterface,
) *CommunityController {
	return &CommunityController{
		tripService:      tripService,
		communityService: communityService,
	}
}

func (cc *CommunityController) ListPublicTrips(c *gin.Context) {
	page, pageSize, ok := parsePaging(c)
	if !ok {
		return
	}

	search := c.Query("search")

	trips, err := cc.tripService.ListPublicTrips(c.Request.Context(), search, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Public trips fetched successfully")
}

func (cc *CommunityController) ToggleLike(c *gin.Context) {
	tripID := c.Param("tripId")
	userID := c.GetString("user_id")

	status, err := cc.communityService.ToggleLike(c.Request.Context(), tripID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "Like toggled successfully")
}

// LikeStatus is public; user_id comes as a query parameter so signed-out
// visitors still see the count.
func (cc *CommunityController) LikeStatus(c *gin.Context) {
	tripID := c.Param("tripId")
	userID := c.Query("user_id")

	status, err := cc.communityService.LikeStatus(c.Request.Context(), tripID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "Like status fetched successfully")
}

func (cc *CommunityController) AddComment(c *gin.Context) {
	tripID := c.Param("tripId")
	var req request_models.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Content is required")
		return
	}

	userID := c.GetString("user_id")

	comment, err := cc.communityService.AddComment(c.Request.Context(), tripID, userID, req.Content)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comment, "Comment added successfully")
}

func (cc *CommunityController) ListComments(c *gin.Context) {
	tripID := c.Param("tripId")
	page, pageSize, ok := parsePaging(c)
	if !ok {
		return
	}

	comments, err := cc.communityService.ListComments(c.Request.Context(), tripID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comments, "Comments fetched successfully")
}
