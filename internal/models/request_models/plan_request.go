package request_models

import (
	"fmt"
	"strings"

	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

// PlanRequest carries the validated trip parameters for one itinerary
// generation. The UI validates presence and types before calling; the
// planner re-checks the shape defensively.
type PlanRequest struct {
	Destination   string `json:"destination"`
	StartDate     string `json:"start_date"` // YYYY-MM-DD
	EndDate       string `json:"end_date"`   // YYYY-MM-DD
	Budget        string `json:"budget"`
	Accommodation string `json:"accommodation"`
	Travelers     string `json:"travelers"`
	DietaryPlan   string `json:"dietary_plan"`
	Notes         string `json:"notes,omitempty"`
}

var (
	BudgetTiers        = []string{"budget", "moderate", "luxury", "ultra-luxury"}
	AccommodationTiers = []string{"hostel", "guesthouse", "hotel", "resort", "villa"}
	TravelerGroups     = []string{"solo", "couple", "family", "friends"}
	DietaryPlans       = []string{"none", "vegetarian", "vegan", "halal", "kosher", "gluten-free"}
)

// Validate performs the defensive shape re-check. Every violation wraps
// ErrInvalidRequest so the handler maps it to a 400.
func (r *PlanRequest) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return fmt.Errorf("%w: destination is required", utils.ErrInvalidRequest)
	}

	start, err := utils.ParseDate(r.StartDate)
	if err != nil {
		return fmt.Errorf("%w: start_date must be YYYY-MM-DD", utils.ErrInvalidRequest)
	}
	end, err := utils.ParseDate(r.EndDate)
	if err != nil {
		return fmt.Errorf("%w: end_date must be YYYY-MM-DD", utils.ErrInvalidRequest)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end_date is before start_date", utils.ErrInvalidRequest)
	}

	for _, f := range []struct {
		name   string
		value  string
		domain []string
	}{
		{"budget", r.Budget, BudgetTiers},
		{"accommodation", r.Accommodation, AccommodationTiers},
		{"travelers", r.Travelers, TravelerGroups},
		{"dietary_plan", r.DietaryPlan, DietaryPlans},
	} {
		if !contains(f.domain, f.value) {
			return fmt.Errorf("%w: %s must be one of %s",
				utils.ErrInvalidRequest, f.name, strings.Join(f.domain, ", "))
		}
	}

	return nil
}

func contains(domain []string, v string) bool {
	for _, d := range domain {
		if d == v {
			return true
		}
	}
	return false
}

// ChatRequest is the unstructured travel-assistant input.
type ChatRequest struct {
	Message string   `json:"message"`
	History []string `json:"history,omitempty"`
}

// SaveTripRequest attaches a generated itinerary to the caller's account.
type SaveTripRequest struct {
	Title     string                           `json:"title"`
	Request   PlanRequest                      `json:"request"`
	Degraded  bool                             `json:"degraded"`
	Itinerary *response_models.TravelItinerary `json:"itinerary"`
}
