package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamio/internal/models/response_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

// ExportController turns an itinerary the client already holds into a
// downloadable file. Nothing is stored server-side, so the plan travels
// back in the request body.
type ExportController struct {
	exportService services.ExportServiceInterface
}

func NewExportController(exportService services.ExportServiceInterface) *ExportController {
	return &ExportController{exportService: exportService}
}

func (e *ExportController) ExportCSVHandler(c *gin.Context) {
	result, ok := bindPlanResult(c)
	if !ok {
		return
	}

	data, filename, err := e.exportService.ExportCSV(result)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func (e *ExportController) ExportPDFHandler(c *gin.Context) {
	result, ok := bindPlanResult(c)
	if !ok {
		return
	}

	data, filename, err := e.exportService.ExportPDF(result)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func bindPlanResult(c *gin.Context) (response_models.PlanResult, bool) {
	var result response_models.PlanResult
	if err := c.ShouldBindJSON(&result); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary payload")
		return result, false
	}
	if len(result.Itinerary.Days) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary has no days to export")
		return result, false
	}
	return result, true
}
