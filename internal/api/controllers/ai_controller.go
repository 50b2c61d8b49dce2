package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type AIController struct {
	draftService services.DraftServiceInterface
}

func NewAIController(draftService services.DraftServiceInterface) *AIController {
	return &AIController{draftService: draftService}
}

func (a *AIController) TripOverview(c *gin.Context) {
	var req request_models.TripOverviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name is required")
		return
	}

	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	summary, err := a.draftService.TripOverview(c.Request.Context(), req.Name, description)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.TripOverviewResponse{Summary: summary}, "Overview generated")
}

func (a *AIController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Prompt is required")
		return
	}

	draft, err := a.draftService.GenerateItinerary(c.Request.Context(), req.Prompt)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, draft, "Itinerary generated")
}

func (a *AIController) CreateTripFromDraft(c *gin.Context) {
	var req request_models.CreateTripFromDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	tripID, err := a.draftService.CreateTripFromDraft(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.CopyTripResponse{ID: tripID}, "Trip created from draft")
}
