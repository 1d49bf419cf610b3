package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
)

func testRequest(days int) request_models.TripRequest {
	return request_models.TripRequest{
		Budget:       2000,
		Destination:  "Lisbon",
		DurationDays: days,
		StartDate:    "2026-09-01",
		TravelStyle:  "mid-range",
		GroupType:    "couple",
		Interests:    []string{"Museums", "Food Tours"},
	}
}

// modelJSON synthesizes a well-formed model response covering the given
// number of days.
func modelJSON(days int, breakdown string) string {
	var dayObjs []string
	for i := 1; i <= days; i++ {
		dayObjs = append(dayObjs, fmt.Sprintf(`{
			"day": %d,
			"date": "2026-09-%02d",
			"theme": "Day %d exploring",
			"activities": [
				{"time": "09:00", "description": "Morning walk", "category": "sightseeing", "cost": 15.0},
				{"time": "13:00", "description": "Lunch downtown", "category": "meal", "cost": 25.0}
			],
			"daily_total": 40.0
		}`, i, i, i))
	}
	return fmt.Sprintf(`{
		"summary": {
			"total_estimated_cost": 1800.0,
			"currency": "USD",
			"cost_breakdown": %s
		},
		"days": [%s],
		"recommendations": ["Buy a transit pass", "Book museums ahead"]
	}`, breakdown, strings.Join(dayObjs, ","))
}

const defaultBreakdown = `{"lodging": 800.0, "food": 500.0, "transport": 200.0, "activities": 300.0}`

func newTestNormalizer() *Normalizer {
	return NewNormalizer(zap.NewNop())
}

func TestNormalizeWellFormedResponse(t *testing.T) {
	n := newTestNormalizer()
	req := testRequest(5)

	result := n.Normalize(modelJSON(5, defaultBreakdown), req)

	require.NotNil(t, result)
	assert.False(t, result.IsFallback)
	require.Len(t, result.Itinerary.Days, 5)
	for i, day := range result.Itinerary.Days {
		assert.Equal(t, i+1, day.Day)
		assert.False(t, day.Placeholder)
		assert.Len(t, day.Activities, 2)
		assert.InDelta(t, 40.0, day.DailyTotal, 0.001)
	}
	assert.Equal(t, []string{"Buy a transit pass", "Book museums ahead"}, result.Itinerary.Recommendations)
	assert.InDelta(t, 1800.0, result.Itinerary.Budget.Total(), 0.001)
}

func TestNormalizeEmptyResponseFallsBack(t *testing.T) {
	n := newTestNormalizer()
	req := testRequest(4)

	for _, raw := range []string{"", "   ", "\n\t "} {
		result := n.Normalize(raw, req)

		require.NotNil(t, result)
		assert.True(t, result.IsFallback)
		require.Len(t, result.Itinerary.Days, 4)
		assert.NotEmpty(t, result.Itinerary.Budget)
		assert.NotEmpty(t, result.Notes)
		for _, day := range result.Itinerary.Days {
			assert.True(t, day.Placeholder)
			assert.NotEmpty(t, day.Activities)
		}
	}
}

func TestNormalizeExtractionIsIdempotent(t *testing.T) {
	n := newTestNormalizer()
	req := testRequest(3)

	clean := modelJSON(3, defaultBreakdown)
	noisy := "Sure! Here is your itinerary:\n```json\n" + clean + "\n```\nLet me know if you want changes."

	fromClean := n.Normalize(clean, req)
	fromNoisy := n.Normalize(noisy, req)

	assert.False(t, fromNoisy.IsFallback)
	assert.Equal(t, fromClean.Itinerary, fromNoisy.Itinerary)
}

func TestNormalizeRescalesOverBudgetBreakdown(t *testing.T) {
	n := newTestNormalizer()
	req := testRequest(2)

	// 150% of the 2000 budget, lodging:food ratio 2:1.
	over := `{"lodging": 2000.0, "food": 1000.0}`
	result := n.Normalize(modelJSON(2, over), req)

	require.False(t, result.IsFallback)
	total := result.Itinerary.Budget.Total()
	assert.InDelta(t, req.Budget, total, req.Budget*0.01)
	assert.InDelta(t, 2.0, result.Itinerary.Budget["lodging"]/result.Itinerary.Budget["food"], 0.01)

	foundNote := false
	for _, note := range result.Notes {
		if strings.Contains(note, "rescaled") {
			foundNote = true
		}
	}
	assert.True(t, foundNote, "expected a rescaling note")

	foundRec := false
	for _, rec := range result.Itinerary.Recommendations {
		if strings.Contains(rec, "scaled down") {
			foundRec = true
		}
	}
	assert.True(t, foundRec, "expected an adjustment recommendation")
}

func TestNormalizeWithinToleranceNotRescaled(t *testing.T) {
	n := newTestNormalizer()
	req := testRequest(2)

	// 105% of budget, inside the 10% tolerance.
	slight := `{"lodging": 1200.0, "food": 900.0}`
	result := n.Normalize(modelJSON(2, slight), req)

	assert.InDelta(t, 2100.0, result.Itinerary.Budget.Total(), 0.001)
}

func TestNormalizeTruncatesExcessDays(t *testing.T) {
	n := newTestNormalizer()
	req := testRequest(5)

	result := n.Normalize(modelJSON(10, defaultBreakdown), req)

	require.False(t, result.IsFallback)
	require.Len(t, result.Itinerary.Days, 5)
	assert.Equal(t, 5, result.Itinerary.Days[4].Day)

	foundNote := false
	for _, note := range result.Notes {
		if strings.Contains(note, "trimmed") {
			foundNote = true
		}
	}
	assert.True(t, foundNote)
}

func TestNormalizePadsMissingDays(t *testing.T) {
	n := newTestNormalizer()
	req := testRequest(5)

	result := n.Normalize(modelJSON(3, defaultBreakdown), req)

	require.False(t, result.IsFallback)
	require.Len(t, result.Itinerary.Days, 5)

	for i := 0; i < 3; i++ {
		assert.False(t, result.Itinerary.Days[i].Placeholder)
	}
	for i := 3; i < 5; i++ {
		day := result.Itinerary.Days[i]
		assert.True(t, day.Placeholder, "day %d should be a placeholder", i+1)
		assert.Equal(t, i+1, day.Day)
		assert.Equal(t, "To be planned", day.Theme)
		assert.NotEmpty(t, day.Activities)
	}
}

func TestNormalizeCoercesStringCosts(t *testing.T) {
	n := newTestNormalizer()
	req := testRequest(1)

	raw := `{
		"summary": {"cost_breakdown": {"lodging": "$1,200.50", "food": "300"}},
		"days": [
			{"day": 1, "theme": "Arrival", "activities": [
				{"time": "10:00", "description": "Museum", "category": "sightseeing", "cost": "€12.50"},
				{"time": "12:00", "description": "Lunch", "category": "meal", "cost": "not a number"}
			]}
		]
	}`
	result := n.Normalize(raw, req)

	require.False(t, result.IsFallback)
	assert.InDelta(t, 1200.50, result.Itinerary.Budget["lodging"], 0.001)
	assert.InDelta(t, 300.0, result.Itinerary.Budget["food"], 0.001)

	acts := result.Itinerary.Days[0].Activities
	require.Len(t, acts, 2)
	assert.InDelta(t, 12.50, acts[0].EstimatedCost, 0.001)
	assert.Zero(t, acts[1].EstimatedCost)

	foundNote := false
	for _, note := range result.Notes {
		if strings.Contains(note, "defaulted to 0") {
			foundNote = true
		}
	}
	assert.True(t, foundNote, "coercion failure should leave a note")
}

func TestNormalizeObjectWhereArrayExpected(t *testing.T) {
	n := newTestNormalizer()
	req := testRequest(1)

	raw := `{
		"summary": {"cost_breakdown": {"lodging": 100}},
		"days": [
			{"day": 1, "theme": "Odd", "activities": {"time": "09:00"}}
		]
	}`
	result := n.Normalize(raw, req)

	require.False(t, result.IsFallback)
	assert.Empty(t, result.Itinerary.Days[0].Activities)

	foundNote := false
	for _, note := range result.Notes {
		if strings.Contains(note, "malformed") {
			foundNote = true
		}
	}
	assert.True(t, foundNote)
}

func TestNormalizeMissingDayArrayFallsBack(t *testing.T) {
	n := newTestNormalizer()
	req := testRequest(3)

	for _, raw := range []string{
		`{"summary": {"cost_breakdown": {"lodging": 100}}}`,
		`{"days": {}}`,
		`{"days": []}`,
		`this is not json at all`,
	} {
		result := n.Normalize(raw, req)
		assert.True(t, result.IsFallback, "raw %q should fall back", raw)
		assert.Len(t, result.Itinerary.Days, 3)
	}
}

func TestNormalizeMissingBreakdownDefaultsToEvenSplit(t *testing.T) {
	n := newTestNormalizer()
	req := testRequest(2)

	raw := `{"days": [{"day": 1, "activities": []}, {"day": 2, "activities": []}]}`
	result := n.Normalize(raw, req)

	require.False(t, result.IsFallback)
	assert.Len(t, result.Itinerary.Budget, 4)
	assert.InDelta(t, req.Budget, result.Itinerary.Budget.Total(), 0.01)
	for _, c := range []string{"lodging", "food", "transport", "activities"} {
		assert.InDelta(t, 500.0, result.Itinerary.Budget[c], 0.001)
	}
}

func TestNormalizeDefaultsMissingLabels(t *testing.T) {
	n := newTestNormalizer()
	req := testRequest(1)

	raw := `{"days": [{"day": 1, "activities": [{"cost": 10}]}]}`
	result := n.Normalize(raw, req)

	require.False(t, result.IsFallback)
	day := result.Itinerary.Days[0]
	assert.Equal(t, "N/A", day.Theme)
	require.Len(t, day.Activities, 1)
	assert.Equal(t, "N/A", day.Activities[0].TimeSlot)
	assert.Equal(t, "N/A", day.Activities[0].Description)
	assert.Equal(t, response_models.CategoryOther, day.Activities[0].Category)
}

func TestNormalizeUnknownCategoryFoldsToOther(t *testing.T) {
	n := newTestNormalizer()
	req := testRequest(1)

	raw := `{"days": [{"day": 1, "activities": [
		{"description": "Spa", "category": "wellness", "cost": 50},
		{"description": "Hotel", "category": "Accommodation", "cost": 100}
	]}]}`
	result := n.Normalize(raw, req)

	acts := result.Itinerary.Days[0].Activities
	require.Len(t, acts, 2)
	assert.Equal(t, response_models.CategoryOther, acts[0].Category)
	assert.Equal(t, response_models.CategoryLodging, acts[1].Category)
}

func TestNormalizeDailyTotalRecomputedWhenMissing(t *testing.T) {
	n := newTestNormalizer()
	req := testRequest(1)

	raw := `{"days": [{"day": 1, "activities": [
		{"description": "A", "category": "meal", "cost": 12.5},
		{"description": "B", "category": "transport", "cost": 7.5}
	]}]}`
	result := n.Normalize(raw, req)

	assert.InDelta(t, 20.0, result.Itinerary.Days[0].DailyTotal, 0.001)
}

func TestFallbackBudgetSplitIsEven(t *testing.T) {
	n := newTestNormalizer()
	req := testRequest(3)

	result := n.Normalize("", req)

	require.True(t, result.IsFallback)
	require.Len(t, result.Itinerary.Budget, 4)
	for _, amount := range result.Itinerary.Budget {
		assert.InDelta(t, 500.0, amount, 0.001)
	}
	require.NotEmpty(t, result.Itinerary.Recommendations)
	assert.Contains(t, result.Itinerary.Recommendations[0], "generated locally")
}
