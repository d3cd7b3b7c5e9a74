package response_models

// DestinationFacts holds the authoritative, non-generative data fetched per
// request. It is consumed by the reconciler and discarded; nothing persists it.
type DestinationFacts struct {
	WeatherForecast string            `json:"weather_forecast"`
	Currency        LocalCurrency     `json:"currency"`
	Emergency       EmergencyContacts `json:"emergency"`
}
