package services

import (
	"fmt"
	"strings"

	"voyago/internal/models/request_models"
	"voyago/pkg/utils"
)

// itinerarySchema is the exact document shape the model must return. The
// validator only enforces the top-level guarantees, but spelling out the full
// nesting here is what keeps day-level content usable.
const itinerarySchema = `{
  "trip_overview": {
    "destination": "string (mandatory)",
    "dates": "string, human-readable range (mandatory)",
    "duration": "string, e.g. \"5 days\" (mandatory)",
    "budget_level": "string (mandatory)",
    "accommodation": "string (mandatory)",
    "travelers": "string (mandatory)",
    "dietary_plan": "string (mandatory)"
  },
  "itinerary": [
    {
      "day": 1,
      "title": "string",
      "description": "string",
      "highlights": ["string"],
      "estimated_cost": "string",
      "morning": [
        {
          "time": "HH:MM",
          "title": "string",
          "description": "string",
          "location": "string",
          "cost": "string (optional)",
          "duration": "string (optional)",
          "special_features": ["string"] (optional),
          "tip": "string (optional)",
          "booking_note": "string (optional)"
        }
      ],
      "afternoon": [ same shape as morning ],
      "evening": [ same shape as morning ],
      "meals": [
        {
          "time": "breakfast|lunch|dinner",
          "restaurant": "string",
          "cuisine": "string",
          "location": "string",
          "cost_range": "string",
          "must_try_dishes": ["string"],
          "reservation_required": true,
          "special_features": ["string"] (optional),
          "tip": "string (optional)"
        }
      ]
    }
  ],
  "additional_info": {
    "weather_forecast": "string",
    "packing_tips": ["string"],
    "local_currency": {"code": "ISO 4217", "exchange_rate": 1.0},
    "transportation": ["string"],
    "emergency": {"police": "string", "ambulance": "string", "tourist_police": "string (optional)"},
    "local_customs": ["string"] (optional),
    "best_times_to_visit": ["string"] (optional),
    "money_saving_tips": ["string"] (optional),
    "etiquette": ["string"] (optional),
    "useful_phrases": ["string"] (optional),
    "key_facts": ["string"] (optional)
  }
}`

// BuildItineraryPrompt turns a validated request into the single generation
// prompt. Pure: the schema and content rules are fixed, only the parameter
// block varies per call. The request must already have parseable dates.
func BuildItineraryPrompt(req *request_models.PlanRequest) string {
	start, _ := utils.ParseDate(req.StartDate)
	end, _ := utils.ParseDate(req.EndDate)
	days := utils.TripDays(start, end)

	var b strings.Builder

	b.WriteString("You are an expert travel planner creating a personalized multi-day itinerary.\n\n")

	b.WriteString("Return a single JSON object matching this exact schema:\n")
	b.WriteString(itinerarySchema)
	b.WriteString("\n\n")

	b.WriteString("Trip parameters:\n")
	fmt.Fprintf(&b, "- Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "- Dates: %s to %s (%d days)\n", req.StartDate, req.EndDate, days)
	fmt.Fprintf(&b, "- Budget level: %s\n", req.Budget)
	fmt.Fprintf(&b, "- Accommodation: %s\n", req.Accommodation)
	fmt.Fprintf(&b, "- Travelers: %s\n", req.Travelers)
	fmt.Fprintf(&b, "- Dietary plan: %s\n", req.DietaryPlan)
	if strings.TrimSpace(req.Notes) != "" {
		fmt.Fprintf(&b, "- Traveler notes: %s\n", req.Notes)
	}

	b.WriteString("\nCONTENT REQUIREMENTS:\n")
	fmt.Fprintf(&b, "1. \"itinerary\" must contain exactly %d day objects, day = 1..%d with no gaps.\n", days, days)
	b.WriteString("2. Each day must include 2-3 activities in each of morning, afternoon and evening.\n")
	b.WriteString("3. Each day must include breakfast, lunch and dinner in \"meals\".\n")
	fmt.Fprintf(&b, "4. Every meal must respect the \"%s\" dietary plan.\n", req.DietaryPlan)
	fmt.Fprintf(&b, "5. Activity and meal costs must fit a \"%s\" budget at \"%s\" accommodation.\n", req.Budget, req.Accommodation)
	b.WriteString("6. All seven trip_overview fields are mandatory and must be non-empty.\n")
	b.WriteString("7. Return ONLY the JSON object. No surrounding text, no markdown fences.\n")

	return b.String()
}
