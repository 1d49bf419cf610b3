package request_models

// TripRequest carries the trip parameters submitted by the presentation layer.
// It is treated as immutable once it reaches the planning pipeline.
type TripRequest struct {
	Budget            float64  `json:"budget" binding:"required"`
	Destination       string   `json:"destination" binding:"required"`
	DurationDays      int      `json:"duration_days" binding:"required"`
	StartDate         string   `json:"start_date"`
	TravelStyle       string   `json:"travel_style"`
	GroupType         string   `json:"group_type"`
	DietaryPreference string   `json:"dietary_preference"`
	Interests         []string `json:"interests"`

	// Refresh skips the result cache so regeneration always reruns the
	// full pipeline.
	Refresh bool `json:"refresh,omitempty"`
}

// Supported enumerations. Free-text values outside these lists are rejected
// before any prompt is built.
var (
	TravelStyles = []string{"budget", "mid-range", "luxury"}
	GroupTypes   = []string{"solo", "couple", "family", "group"}
)

const (
	MinBudget   = 1.0
	MaxBudget   = 50000.0
	MinDuration = 1
	MaxDuration = 30
)
