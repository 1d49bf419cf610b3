package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/pkg/utils"
)

// budgetTolerance is how far the model's cost breakdown may exceed the
// requested budget before the normalizer rescales it.
const budgetTolerance = 0.10

// fallbackCategories receive an even budget split when the plan has to be
// generated locally.
var fallbackCategories = []string{"lodging", "food", "transport", "activities"}

// Normalizer converts raw, untrusted model output into a validated
// itinerary. It never fails outward: whatever the model returned, the
// caller gets something renderable back, with IsFallback and Notes telling
// it how much trust to place in the result.
type Normalizer struct {
	logger *zap.Logger
}

func NewNormalizer(logger *zap.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Wire shapes for the model's JSON. Numeric fields stay as json.RawMessage
// so a string-typed cost degrades that one field instead of killing the
// whole document.
type rawItinerary struct {
	Summary struct {
		TotalEstimatedCost json.RawMessage            `json:"total_estimated_cost"`
		Currency           string                     `json:"currency"`
		CostBreakdown      map[string]json.RawMessage `json:"cost_breakdown"`
	} `json:"summary"`
	Days            json.RawMessage `json:"days"`
	Recommendations json.RawMessage `json:"recommendations"`
}

type rawDay struct {
	Day        json.RawMessage `json:"day"`
	Date       string          `json:"date"`
	Theme      string          `json:"theme"`
	Activities json.RawMessage `json:"activities"`
	DailyTotal json.RawMessage `json:"daily_total"`
}

type rawActivity struct {
	Time        string          `json:"time"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Cost        json.RawMessage `json:"cost"`
}

// Normalize runs the full pipeline: extract, parse, coerce, reconcile.
// Any unrecoverable step routes to the deterministic fallback itinerary.
func (n *Normalizer) Normalize(raw string, req request_models.TripRequest) *response_models.PlanResult {
	if strings.TrimSpace(raw) == "" {
		return n.fallback(req, "empty model response")
	}

	wire, days, err := n.parse(raw)
	if err != nil {
		n.logger.Warn("model response unusable", zap.Error(err), zap.Int("raw_len", len(raw)))
		return n.fallback(req, strings.TrimPrefix(err.Error(), utils.ErrMalformedResponse.Error()+": "))
	}

	var notes []string
	itinerary := response_models.Itinerary{
		Destination: req.Destination,
	}

	itinerary.Days = n.reconcileDays(days, req, &notes)
	itinerary.Recommendations = coerceStringList(wire.Recommendations, "recommendations", &notes)
	itinerary.Budget = n.reconcileBudget(wire.Summary.CostBreakdown, req, &notes, &itinerary)

	return &response_models.PlanResult{
		Itinerary:  itinerary,
		IsFallback: false,
		Notes:      notes,
	}
}

// parse extracts and decodes the JSON block. Every failure mode wraps
// ErrMalformedResponse; Normalize routes it to the fallback rather than
// surfacing it.
func (n *Normalizer) parse(raw string) (rawItinerary, []rawDay, error) {
	var wire rawItinerary

	block, ok := utils.ExtractJSONBlock(raw)
	if !ok {
		return wire, nil, fmt.Errorf("%w: no JSON found in model response", utils.ErrMalformedResponse)
	}

	if err := json.Unmarshal([]byte(block), &wire); err != nil {
		return wire, nil, fmt.Errorf("%w: model response was not valid JSON", utils.ErrMalformedResponse)
	}

	var days []rawDay
	if len(wire.Days) == 0 || json.Unmarshal(wire.Days, &days) != nil || len(days) == 0 {
		return wire, nil, fmt.Errorf("%w: model response had no day-by-day plan", utils.ErrMalformedResponse)
	}

	return wire, days, nil
}

// reconcileDays coerces each day entry and forces the plan to exactly
// req.DurationDays entries: excess days are dropped, missing days are
// padded with placeholders for manual completion.
func (n *Normalizer) reconcileDays(days []rawDay, req request_models.TripRequest, notes *[]string) []response_models.DayPlan {
	dates := utils.TripDates(req.StartDate, req.DurationDays)

	if len(days) > req.DurationDays {
		*notes = append(*notes, fmt.Sprintf("model returned %d days; trimmed to the requested %d", len(days), req.DurationDays))
		days = days[:req.DurationDays]
	}

	out := make([]response_models.DayPlan, 0, req.DurationDays)
	for i, d := range days {
		plan := response_models.DayPlan{
			Day:   i + 1,
			Date:  dates[i],
			Theme: d.Theme,
		}
		if plan.Theme == "" {
			plan.Theme = "N/A"
		}

		plan.Activities = n.coerceActivities(d.Activities, i+1, notes)
		plan.DailyTotal = coerceAmount(d.DailyTotal, fmt.Sprintf("day %d daily_total", i+1), notes)
		if plan.DailyTotal == 0 {
			for _, a := range plan.Activities {
				plan.DailyTotal += a.EstimatedCost
			}
			plan.DailyTotal = utils.Round2(plan.DailyTotal)
		}

		out = append(out, plan)
	}

	for len(out) < req.DurationDays {
		day := len(out) + 1
		out = append(out, placeholderDay(day, dates[day-1]))
	}
	if len(days) < req.DurationDays {
		*notes = append(*notes, fmt.Sprintf("model covered only %d of %d days; remaining days added as placeholders", len(days), req.DurationDays))
	}

	return out
}

func (n *Normalizer) coerceActivities(raw json.RawMessage, day int, notes *[]string) []response_models.Activity {
	if len(raw) == 0 {
		return []response_models.Activity{}
	}

	var rawActs []rawActivity
	if err := json.Unmarshal(raw, &rawActs); err != nil {
		// Object where an array was expected: invalid for this field.
		*notes = append(*notes, fmt.Sprintf("day %d activities were malformed; defaulted to empty", day))
		return []response_models.Activity{}
	}

	out := make([]response_models.Activity, 0, len(rawActs))
	for i, a := range rawActs {
		act := response_models.Activity{
			TimeSlot:      a.Time,
			Description:   a.Description,
			Category:      normalizeCategory(a.Category),
			EstimatedCost: coerceAmount(a.Cost, fmt.Sprintf("day %d activity %d cost", day, i+1), notes),
		}
		if act.TimeSlot == "" {
			act.TimeSlot = "N/A"
		}
		if act.Description == "" {
			act.Description = "N/A"
		}
		out = append(out, act)
	}
	return out
}

// reconcileBudget coerces the cost breakdown and rescales it when the
// model overshoots the budget beyond tolerance, preserving category ratios.
func (n *Normalizer) reconcileBudget(raw map[string]json.RawMessage, req request_models.TripRequest, notes *[]string, itinerary *response_models.Itinerary) response_models.BudgetBreakdown {
	breakdown := response_models.BudgetBreakdown{}

	for category, v := range raw {
		key := strings.ToLower(strings.TrimSpace(category))
		if key == "" {
			continue
		}
		breakdown[key] = coerceAmount(v, fmt.Sprintf("budget category %q", key), notes)
	}

	if len(breakdown) == 0 {
		*notes = append(*notes, "model omitted the cost breakdown; defaulted to an even split")
		return evenBudgetSplit(req.Budget)
	}

	sum := breakdown.Total()
	if sum > req.Budget*(1+budgetTolerance) {
		scale := req.Budget / sum
		for k, v := range breakdown {
			breakdown[k] = utils.Round2(v * scale)
		}
		adjustment := fmt.Sprintf("Cost breakdown totalled %.2f which exceeds your %.2f budget; allocations were scaled down proportionally.", sum, req.Budget)
		itinerary.Recommendations = append(itinerary.Recommendations, adjustment)
		*notes = append(*notes, "budget breakdown rescaled to fit the requested budget")
	}

	return breakdown
}

// fallback builds the deterministic local itinerary used whenever the
// model's output cannot be trusted. Availability over correctness: the UI
// always has something to render.
func (n *Normalizer) fallback(req request_models.TripRequest, reason string) *response_models.PlanResult {
	dates := utils.TripDates(req.StartDate, req.DurationDays)

	days := make([]response_models.DayPlan, 0, req.DurationDays)
	for i := 0; i < req.DurationDays; i++ {
		day := placeholderDay(i+1, dates[i])
		day.Activities = []response_models.Activity{
			{
				TimeSlot:      "09:00",
				Description:   fmt.Sprintf("Explore %s at your own pace", req.Destination),
				Category:      response_models.CategoryOther,
				EstimatedCost: 0,
			},
		}
		days = append(days, day)
	}

	return &response_models.PlanResult{
		Itinerary: response_models.Itinerary{
			Destination: req.Destination,
			Days:        days,
			Budget:      evenBudgetSplit(req.Budget),
			Recommendations: []string{
				"This plan was generated locally because the travel model's response could not be used. Regenerate to try again.",
			},
		},
		IsFallback: true,
		Notes:      []string{reason},
	}
}

func placeholderDay(day int, date string) response_models.DayPlan {
	return response_models.DayPlan{
		Day:   day,
		Date:  date,
		Theme: "To be planned",
		Activities: []response_models.Activity{
			{
				TimeSlot:      "09:00",
				Description:   "Free day - plan your own activities",
				Category:      response_models.CategoryOther,
				EstimatedCost: 0,
			},
		},
		DailyTotal:  0,
		Placeholder: true,
	}
}

func evenBudgetSplit(budget float64) response_models.BudgetBreakdown {
	share := utils.Round2(budget / float64(len(fallbackCategories)))
	split := response_models.BudgetBreakdown{}
	for _, c := range fallbackCategories {
		split[c] = share
	}
	return split
}

// coerceAmount accepts a JSON number or a numeric string (with currency
// noise). A field that cannot be coerced defaults to zero and is recorded
// in notes rather than aborting the itinerary.
func coerceAmount(raw json.RawMessage, field string, notes *[]string) float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return 0
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return utils.Round2(f)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := utils.ParseAmount(s); err == nil {
			return utils.Round2(v)
		}
	}

	*notes = append(*notes, fmt.Sprintf("%s could not be read as a number; defaulted to 0", field))
	return 0
}

func coerceStringList(raw json.RawMessage, field string, notes *[]string) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}
	}

	*notes = append(*notes, fmt.Sprintf("%s were malformed; defaulted to empty", field))
	return nil
}

func normalizeCategory(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case response_models.CategorySightseeing:
		return response_models.CategorySightseeing
	case response_models.CategoryMeal, "food", "dining":
		return response_models.CategoryMeal
	case response_models.CategoryTransport, "transit", "travel":
		return response_models.CategoryTransport
	case response_models.CategoryLodging, "accommodation", "hotel":
		return response_models.CategoryLodging
	default:
		return response_models.CategoryOther
	}
}
