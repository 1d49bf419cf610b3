package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Currency symbols rendered in exports.
var currencySymbols = map[string]string{
	"USD": "$", "EUR": "€", "GBP": "£", "JPY": "¥",
	"CAD": "C$", "AUD": "A$", "INR": "₹",
}

func FormatCurrency(amount float64, currency string) string {
	symbol, ok := currencySymbols[strings.ToUpper(currency)]
	if !ok {
		symbol = "$"
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// ParseAmount coerces a numeric string from model output into a float.
// Currency symbols, grouping commas and surrounding noise are stripped
// first, so "$1,250.50" and "≈ 1250 USD" both parse.
func ParseAmount(s string) (float64, error) {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, fmt.Errorf("no numeric content in %q", s)
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return v, nil
}

// Round2 rounds to two decimal places for money values.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DailyBudget splits a total evenly across trip days.
func DailyBudget(total float64, days int) float64 {
	if days <= 0 {
		return 0
	}
	return Round2(total / float64(days))
}
