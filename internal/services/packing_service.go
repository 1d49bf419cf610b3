package services

import (
	"strings"

	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
)

type PackingServiceInterface interface {
	BuildPackingList(req request_models.TripRequest) (response_models.PackingList, error)
}

// PackingService produces a deterministic packing checklist from trip
// parameters. Entirely local logic; no model call involved.
type PackingService struct{}

func NewPackingService() PackingServiceInterface {
	return &PackingService{}
}

func (s *PackingService) BuildPackingList(req request_models.TripRequest) (response_models.PackingList, error) {
	if err := ValidateTripRequest(req); err != nil {
		return nil, err
	}

	list := response_models.PackingList{
		"Documents": {
			"Passport/ID", "Travel insurance", "Tickets",
			"Accommodation confirmations", "Emergency contacts",
		},
		"Electronics": {
			"Phone charger", "Power adapter", "Portable battery", "Headphones",
		},
		"Clothing": {
			"Underwear", "Socks", "Comfortable shoes", "Casual clothes", "Sleepwear",
		},
		"Health & Hygiene": {
			"Toothbrush", "Toothpaste", "Medications",
			"First aid kit", "Sunscreen", "Hand sanitizer",
		},
	}

	switch strings.ToLower(req.TravelStyle) {
	case "luxury":
		list["Clothing"] = append(list["Clothing"], "Formal wear", "Dress shoes")
	case "budget":
		list["General"] = append(list["General"], "Reusable water bottle", "Travel towel")
	}

	for _, interest := range req.Interests {
		switch strings.ToLower(interest) {
		case "beaches":
			list["Beach"] = []string{"Swimwear", "Beach towel", "Flip-flops", "Waterproof bag"}
		case "nature/hiking", "hiking":
			list["Outdoor"] = []string{"Hiking boots", "Backpack", "Weather jacket", "Hat"}
		case "photography":
			list["Photography"] = []string{"Camera", "Spare batteries", "Memory cards", "Tripod"}
		}
	}

	if req.DurationDays > 7 {
		list["Health & Hygiene"] = append(list["Health & Hygiene"], "Laundry detergent")
	}

	return list, nil
}
