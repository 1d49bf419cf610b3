package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roamio/internal/models/response_models"
	"roamio/internal/services"
)

func newExportRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewExportController(services.NewExportService(zap.NewNop()))
	r.POST("/plan/export/csv", ctrl.ExportCSVHandler)
	r.POST("/plan/export/pdf", ctrl.ExportPDFHandler)
	return r
}

func exportableResult() response_models.PlanResult {
	return response_models.PlanResult{
		Itinerary: response_models.Itinerary{
			Destination: "Lisbon",
			Days: []response_models.DayPlan{
				{
					Day:   1,
					Date:  "2026-09-01",
					Theme: "Arrival",
					Activities: []response_models.Activity{
						{TimeSlot: "09:00", Description: "Check in", Category: response_models.CategoryLodging, EstimatedCost: 120},
					},
					DailyTotal: 120,
				},
			},
			Budget: response_models.BudgetBreakdown{"lodging": 120},
		},
	}
}

func TestExportCSVHandler(t *testing.T) {
	r := newExportRouter()

	w := postJSON(t, r, "/plan/export/csv", exportableResult())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), "Check in")
}

func TestExportPDFHandler(t *testing.T) {
	r := newExportRouter()

	w := postJSON(t, r, "/plan/export/pdf", exportableResult())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, len(w.Body.Bytes()) > 0)
}

func TestExportHandlerRejectsEmptyItinerary(t *testing.T) {
	r := newExportRouter()

	w := postJSON(t, r, "/plan/export/csv", response_models.PlanResult{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no days to export")
}
