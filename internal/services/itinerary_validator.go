package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

// itineraryDocument mirrors TravelItinerary with pointer sections so presence
// can be distinguished from zero values.
type itineraryDocument struct {
	TripOverview   *response_models.TripOverview   `json:"trip_overview"`
	Itinerary      []response_models.DayPlan       `json:"itinerary"`
	AdditionalInfo *response_models.AdditionalInfo `json:"additional_info"`
}

// parseItinerary decodes extracted JSON and enforces the minimal shape the
// rest of the system depends on: the three top-level sections and the seven
// mandatory overview fields. Day-level content is model-authored best-effort
// and deliberately not deep-validated. Checks fail fast, first violation wins.
func parseItinerary(jsonText string) (*response_models.TravelItinerary, error) {
	var doc itineraryDocument
	if err := json.Unmarshal([]byte(jsonText), &doc); err != nil {
		log.Printf("itinerary decode failed: %v", err)
		return nil, fmt.Errorf("%w: document does not match itinerary shape", utils.ErrMalformedItinerary)
	}

	if doc.TripOverview == nil {
		return nil, fmt.Errorf("%w: missing trip_overview", utils.ErrMalformedItinerary)
	}
	if len(doc.Itinerary) == 0 {
		return nil, fmt.Errorf("%w: itinerary must be a non-empty array", utils.ErrMalformedItinerary)
	}
	if doc.AdditionalInfo == nil {
		return nil, fmt.Errorf("%w: missing additional_info", utils.ErrMalformedItinerary)
	}

	ov := doc.TripOverview
	for _, f := range []struct {
		name  string
		value string
	}{
		{"trip_overview.destination", ov.Destination},
		{"trip_overview.dates", ov.Dates},
		{"trip_overview.duration", ov.Duration},
		{"trip_overview.budget_level", ov.BudgetLevel},
		{"trip_overview.accommodation", ov.Accommodation},
		{"trip_overview.travelers", ov.Travelers},
		{"trip_overview.dietary_plan", ov.DietaryPlan},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, fmt.Errorf("%w: missing %s", utils.ErrMalformedItinerary, f.name)
		}
	}

	return &response_models.TravelItinerary{
		TripOverview:   *doc.TripOverview,
		Itinerary:      doc.Itinerary,
		AdditionalInfo: *doc.AdditionalInfo,
	}, nil
}

// reconcileFacts overwrites the objectively verifiable fields with the
// provider's values. The model fabricates weather, rates and phone numbers
// convincingly, so external data always wins here regardless of what was
// generated. Everything else passes through untouched.
func reconcileFacts(it *response_models.TravelItinerary, facts *response_models.DestinationFacts) {
	it.AdditionalInfo.WeatherForecast = facts.WeatherForecast
	it.AdditionalInfo.LocalCurrency = facts.Currency
	it.AdditionalInfo.Emergency = facts.Emergency
}
