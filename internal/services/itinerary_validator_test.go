package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

func validDocument(days int) map[string]interface{} {
	dayList := make([]interface{}, 0, days)
	for i := 1; i <= days; i++ {
		dayList = append(dayList, map[string]interface{}{
			"day":       i,
			"title":     "Exploring",
			"morning":   []interface{}{map[string]interface{}{"time": "09:00", "title": "Walk", "description": "Old town", "location": "Centre"}},
			"afternoon": []interface{}{},
			"evening":   []interface{}{},
			"meals":     []interface{}{},
		})
	}
	return map[string]interface{}{
		"trip_overview": map[string]interface{}{
			"destination":   "Paris",
			"dates":         "June 1 - June 5, 2025",
			"duration":      "5 days",
			"budget_level":  "moderate",
			"accommodation": "hotel",
			"travelers":     "couple",
			"dietary_plan":  "none",
		},
		"itinerary": dayList,
		"additional_info": map[string]interface{}{
			"weather_forecast": "Sunny, around 24°C",
			"local_currency":   map[string]interface{}{"code": "EUR", "exchange_rate": 0.92},
			"emergency":        map[string]interface{}{"police": "17", "ambulance": "15"},
		},
	}
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestParseItinerary_Valid(t *testing.T) {
	it, err := parseItinerary(mustJSON(t, validDocument(3)))
	require.NoError(t, err)

	assert.Equal(t, "Paris", it.TripOverview.Destination)
	assert.Len(t, it.Itinerary, 3)
	assert.Equal(t, "EUR", it.AdditionalInfo.LocalCurrency.Code)
}

func TestParseItinerary_MissingSections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(doc map[string]interface{})
		wantMsg string
	}{
		{"no trip_overview", func(d map[string]interface{}) { delete(d, "trip_overview") }, "trip_overview"},
		{"no additional_info", func(d map[string]interface{}) { delete(d, "additional_info") }, "additional_info"},
		{"no itinerary", func(d map[string]interface{}) { delete(d, "itinerary") }, "itinerary"},
		{"empty itinerary", func(d map[string]interface{}) { d["itinerary"] = []interface{}{} }, "itinerary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument(2)
			tt.mutate(doc)

			_, err := parseItinerary(mustJSON(t, doc))
			require.ErrorIs(t, err, utils.ErrMalformedItinerary)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseItinerary_MandatoryOverviewFields(t *testing.T) {
	fields := []string{
		"destination", "dates", "duration", "budget_level",
		"accommodation", "travelers", "dietary_plan",
	}

	for _, field := range fields {
		t.Run("missing "+field, func(t *testing.T) {
			doc := validDocument(1)
			doc["trip_overview"].(map[string]interface{})[field] = ""

			_, err := parseItinerary(mustJSON(t, doc))
			require.ErrorIs(t, err, utils.ErrMalformedItinerary)
			assert.Contains(t, err.Error(), "trip_overview."+field)
		})
	}
}

func TestParseItinerary_NotAnItineraryShape(t *testing.T) {
	_, err := parseItinerary(`{"itinerary": "not an array"}`)
	assert.ErrorIs(t, err, utils.ErrMalformedItinerary)
}

func TestReconcileFacts_AlwaysOverwrites(t *testing.T) {
	it, err := parseItinerary(mustJSON(t, validDocument(2)))
	require.NoError(t, err)

	facts := &response_models.DestinationFacts{
		WeatherForecast: "Next 5 days: rain, highs around 12°C, lows around 6°C",
		Currency:        response_models.LocalCurrency{Code: "GBP", ExchangeRate: 0.79},
		Emergency:       response_models.EmergencyContacts{Police: "999", Ambulance: "999", TouristPolice: "101"},
	}

	reconcileFacts(it, facts)

	assert.Equal(t, facts.WeatherForecast, it.AdditionalInfo.WeatherForecast)
	assert.Equal(t, facts.Currency, it.AdditionalInfo.LocalCurrency)
	assert.Equal(t, facts.Emergency, it.AdditionalInfo.Emergency)
	// Everything else untouched.
	assert.Equal(t, "Paris", it.TripOverview.Destination)
	assert.Len(t, it.Itinerary, 2)
}
