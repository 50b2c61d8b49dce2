package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

func (i *ItineraryController) AddStop(c *gin.Context) {
	tripID := c.Param("tripId")
	var req request_models.AddStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "City and date range are required")
		return
	}

	userID := c.GetString("user_id")

	stop, err := i.itineraryService.AddStop(c.Request.Context(), userID, tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stop, "Stop added successfully")
}

func (i *ItineraryController) ReorderStops(c *gin.Context) {
	tripID := c.Param("tripId")
	var req request_models.ReorderStopsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Stop order is required")
		return
	}

	userID := c.GetString("user_id")

	if err := i.itineraryService.ReorderStops(c.Request.Context(), userID, tripID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Stops reordered successfully")
}

func (i *ItineraryController) RemoveStop(c *gin.Context) {
	stopID := c.Param("stopId")
	userID := c.GetString("user_id")

	if err := i.itineraryService.RemoveStop(c.Request.Context(), userID, stopID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Stop removed successfully")
}

func (i *ItineraryController) AddActivity(c *gin.Context) {
	tripID := c.Param("tripId")
	var req request_models.AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title is required")
		return
	}

	userID := c.GetString("user_id")

	activity, err := i.itineraryService.AddActivity(c.Request.Context(), userID, tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity added successfully")
}

func (i *ItineraryController) RemoveActivity(c *gin.Context) {
	activityID := c.Param("activityId")
	userID := c.GetString("user_id")

	if err := i.itineraryService.RemoveActivity(c.Request.Context(), userID, activityID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity removed successfully")
}

func (i *ItineraryController) FillMissingCosts(c *gin.Context) {
	tripID := c.Param("tripId")
	userID := c.GetString("user_id")

	if err := i.itineraryService.FillMissingCosts(c.Request.Context(), userID, tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Missing costs estimated")
}
