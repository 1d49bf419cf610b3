package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamio/internal/models/request_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
	packingService services.PackingServiceInterface
}

func NewPlannerController(
	plannerService services.PlannerServiceInterface,
	packingService services.PackingServiceInterface,
) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
		packingService: packingService,
	}
}

// PlanTripHandler accepts a TripRequest and returns the normalized
// itinerary. Regeneration is the same endpoint with refresh=true; the
// previous plan is simply discarded client-side.
func (p *PlannerController) PlanTripHandler(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := p.plannerService.PlanTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Trip plan generated")
}

func (p *PlannerController) PackingListHandler(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	list, err := p.packingService.BuildPackingList(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, list, "Packing list generated")
}

func (p *PlannerController) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
