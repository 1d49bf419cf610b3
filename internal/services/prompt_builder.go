package services

import (
	"fmt"
	"strings"
	"time"

	"roamio/internal/models/request_models"
	"roamio/pkg/utils"
)

func parseStrictDate(s string) (time.Time, error) {
	return time.Parse(utils.DateLayout, s)
}

// ValidateTripRequest runs the range checks that must pass before any
// external call is made. All problems are collected so the frontend can
// show them at once.
func ValidateTripRequest(req request_models.TripRequest) error {
	var issues []string

	if strings.TrimSpace(req.Destination) == "" {
		issues = append(issues, "destination is required")
	}
	if req.Budget < request_models.MinBudget {
		issues = append(issues, fmt.Sprintf("budget must be at least %.0f", request_models.MinBudget))
	}
	if req.Budget > request_models.MaxBudget {
		issues = append(issues, fmt.Sprintf("budget must not exceed %.0f", request_models.MaxBudget))
	}
	if req.DurationDays < request_models.MinDuration || req.DurationDays > request_models.MaxDuration {
		issues = append(issues, fmt.Sprintf("duration must be between %d and %d days",
			request_models.MinDuration, request_models.MaxDuration))
	}
	if req.TravelStyle != "" && !containsFold(request_models.TravelStyles, req.TravelStyle) {
		issues = append(issues, "travel_style must be one of: "+strings.Join(request_models.TravelStyles, ", "))
	}
	if req.GroupType != "" && !containsFold(request_models.GroupTypes, req.GroupType) {
		issues = append(issues, "group_type must be one of: "+strings.Join(request_models.GroupTypes, ", "))
	}
	if req.StartDate != "" {
		if _, err := parseStrictDate(req.StartDate); err != nil {
			issues = append(issues, "start_date must be formatted as YYYY-MM-DD")
		}
	}

	if len(issues) > 0 {
		return fmt.Errorf("%w: %s", utils.ErrInvalidRequest, strings.Join(issues, "; "))
	}
	return nil
}

// BuildPrompt turns a validated TripRequest into the single instruction
// string sent to the model. Pure template substitution; the JSON shape the
// model must return is spelled out field by field so the normalizer has a
// stable schema to validate against.
func BuildPrompt(req request_models.TripRequest) (string, error) {
	if err := ValidateTripRequest(req); err != nil {
		return "", err
	}

	style := strings.ToLower(req.TravelStyle)
	if style == "" {
		style = "mid-range"
	}
	group := strings.ToLower(req.GroupType)
	if group == "" {
		group = "solo"
	}
	diet := req.DietaryPreference
	if diet == "" {
		diet = "no restrictions"
	}
	interests := strings.Join(req.Interests, ", ")
	if interests == "" {
		interests = "general sightseeing"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed %d-day travel itinerary.\n\n", req.DurationDays)
	b.WriteString("Trip details:\n")
	fmt.Fprintf(&b, "- Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "- Total budget: %.2f USD (fixed, all costs must fit within it)\n", req.Budget)
	fmt.Fprintf(&b, "- Duration: %d days starting %s\n", req.DurationDays, utils.ParseTripDate(req.StartDate).Format(utils.DateLayout))
	fmt.Fprintf(&b, "- Travel style: %s\n", style)
	fmt.Fprintf(&b, "- Group: %s\n", group)
	fmt.Fprintf(&b, "- Dietary preference: %s\n", diet)
	fmt.Fprintf(&b, "- Interests: %s\n", interests)

	b.WriteString("\nReturn ONLY a JSON object that exactly matches this schema. No prose, no markdown fences, no comments:\n")
	b.WriteString(`{
  "summary": {
    "total_estimated_cost": 0.0,
    "currency": "USD",
    "cost_breakdown": {"lodging": 0.0, "food": 0.0, "transport": 0.0, "activities": 0.0, "miscellaneous": 0.0}
  },
  "days": [
    {
      "day": 1,
      "date": "YYYY-MM-DD",
      "theme": "string",
      "activities": [
        {"time": "HH:MM", "description": "string", "category": "sightseeing|meal|transport|lodging|other", "cost": 0.0}
      ],
      "daily_total": 0.0
    }
  ],
  "recommendations": ["string"]
}`)

	fmt.Fprintf(&b, "\n\nHard constraints:\n")
	fmt.Fprintf(&b, "1. Exactly %d entries in \"days\", day numbered 1..%d with no gaps.\n", req.DurationDays, req.DurationDays)
	b.WriteString("2. All costs are plain numbers in USD. No currency symbols, no strings.\n")
	b.WriteString("3. cost_breakdown values must sum to no more than the total budget.\n")
	b.WriteString("4. Use realistic time slots between 08:00 and 22:00.\n")

	return b.String(), nil
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}
