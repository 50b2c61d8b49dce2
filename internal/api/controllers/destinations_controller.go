package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type DestinationsController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationsController(destinationService services.DestinationServiceInterface) *DestinationsController {
	return &DestinationsController{destinationService: destinationService}
}

func (d *DestinationsController) ListDestinations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	filter := repositories.DestinationFilter{
		Region:     c.Query("region"),
		PriceRange: c.Query("price_range"),
		Search:     c.Query("search"),
		Limit:      limit,
	}

	destinations, err := d.destinationService.ListDestinations(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

func (d *DestinationsController) SuggestDestinations(c *gin.Context) {
	query := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "8"))

	suggestions, err := d.destinationService.SuggestDestinations(c.Request.Context(), query, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestions, "Suggestions fetched successfully")
}

func (d *DestinationsController) IndexDestination(c *gin.Context) {
	destinationID := c.Param("destinationId")

	if err := d.destinationService.IndexDestination(c.Request.Context(), destinationID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Destination indexed successfully")
}
