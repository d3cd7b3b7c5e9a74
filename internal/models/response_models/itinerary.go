package response_models

// TravelItinerary is the structured document the generation pipeline
// guarantees. trip_overview, a non-empty itinerary and additional_info are
// validated; day-level content is model-authored and passed through
// best-effort, except for the fields the reconciler overwrites with
// authoritative data (weather_forecast, local_currency, emergency).
type TravelItinerary struct {
	TripOverview   TripOverview   `json:"trip_overview"`
	Itinerary      []DayPlan      `json:"itinerary"`
	AdditionalInfo AdditionalInfo `json:"additional_info"`
}

type TripOverview struct {
	Destination   string `json:"destination"`
	Dates         string `json:"dates"`
	Duration      string `json:"duration"`
	BudgetLevel   string `json:"budget_level"`
	Accommodation string `json:"accommodation"`
	Travelers     string `json:"travelers"`
	DietaryPlan   string `json:"dietary_plan"`
}

type DayPlan struct {
	Day           int        `json:"day"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Highlights    []string   `json:"highlights,omitempty"`
	EstimatedCost string     `json:"estimated_cost,omitempty"`
	Morning       []Activity `json:"morning"`
	Afternoon     []Activity `json:"afternoon"`
	Evening       []Activity `json:"evening"`
	Meals         []Meal     `json:"meals"`
}

type Activity struct {
	Time            string   `json:"time"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Location        string   `json:"location"`
	Cost            string   `json:"cost,omitempty"`
	Duration        string   `json:"duration,omitempty"`
	SpecialFeatures []string `json:"special_features,omitempty"`
	Tip             string   `json:"tip,omitempty"`
	BookingNote     string   `json:"booking_note,omitempty"`
}

type Meal struct {
	Time                string   `json:"time"`
	Restaurant          string   `json:"restaurant"`
	Cuisine             string   `json:"cuisine"`
	Location            string   `json:"location"`
	CostRange           string   `json:"cost_range"`
	MustTryDishes       []string `json:"must_try_dishes,omitempty"`
	ReservationRequired bool     `json:"reservation_required"`
	SpecialFeatures     []string `json:"special_features,omitempty"`
	Tip                 string   `json:"tip,omitempty"`
}

type AdditionalInfo struct {
	WeatherForecast  string            `json:"weather_forecast"`
	PackingTips      []string          `json:"packing_tips,omitempty"`
	LocalCurrency    LocalCurrency     `json:"local_currency"`
	Transportation   []string          `json:"transportation,omitempty"`
	Emergency        EmergencyContacts `json:"emergency"`
	LocalCustoms     []string          `json:"local_customs,omitempty"`
	BestTimesToVisit []string          `json:"best_times_to_visit,omitempty"`
	MoneySavingTips  []string          `json:"money_saving_tips,omitempty"`
	Etiquette        []string          `json:"etiquette,omitempty"`
	UsefulPhrases    []string          `json:"useful_phrases,omitempty"`
	KeyFacts         []string          `json:"key_facts,omitempty"`
}

type LocalCurrency struct {
	Code         string  `json:"code"`
	ExchangeRate float64 `json:"exchange_rate"` // units per USD
}

type EmergencyContacts struct {
	Police        string `json:"police"`
	Ambulance     string `json:"ambulance"`
	TouristPolice string `json:"tourist_police,omitempty"`
}

// PlanResult is what POST /plans/generate returns. Degraded is set when the
// destination facts fetch failed and additional_info kept the model-authored
// weather/currency/emergency values.
type PlanResult struct {
	Itinerary *TravelItinerary `json:"itinerary"`
	Degraded  bool             `json:"degraded"`
}
