package utils

import "time"

const DateLayout = "2006-01-02"

// ParseTripDate accepts the wire date format used across the API. An empty
// value falls back to today so the pipeline never stalls on a missing date.
func ParseTripDate(s string) time.Time {
	if s == "" {
		return time.Now()
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Now()
	}
	return t
}

// TripDates generates one date string per trip day starting at startDate.
func TripDates(startDate string, days int) []string {
	start := ParseTripDate(startDate)
	out := make([]string, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, start.AddDate(0, 0, i).Format(DateLayout))
	}
	return out
}
