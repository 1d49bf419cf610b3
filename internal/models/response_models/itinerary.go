package response_models

// Activity categories recognised by the normalizer. Anything else the model
// invents is folded into CategoryOther.
const (
	CategorySightseeing = "sightseeing"
	CategoryMeal        = "meal"
	CategoryTransport   = "transport"
	CategoryLodging     = "lodging"
	CategoryOther       = "other"
)

type Activity struct {
	TimeSlot      string  `json:"time_slot"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	EstimatedCost float64 `json:"estimated_cost"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	Date       string     `json:"date,omitempty"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
	DailyTotal float64    `json:"daily_total"`

	// Placeholder marks days the model did not cover; the UI renders them
	// as "fill in yourself" slots.
	Placeholder bool `json:"placeholder,omitempty"`
}

// BudgetBreakdown maps spending category to allocated amount.
type BudgetBreakdown map[string]float64

// Total sums all category allocations.
func (b BudgetBreakdown) Total() float64 {
	var sum float64
	for _, v := range b {
		sum += v
	}
	return sum
}

type Itinerary struct {
	Destination     string          `json:"destination"`
	Days            []DayPlan       `json:"days"`
	Budget          BudgetBreakdown `json:"budget_breakdown"`
	Recommendations []string        `json:"recommendations"`
}

// PlanResult is what the pipeline hands back to the presentation layer.
// IsFallback tells the UI to show a "locally generated plan" notice; Notes
// lists every adjustment the normalizer made along the way.
type PlanResult struct {
	Itinerary  Itinerary `json:"itinerary"`
	IsFallback bool      `json:"is_fallback"`
	Notes      []string  `json:"notes"`
}
