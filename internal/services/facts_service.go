package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"voyago/internal/models/response_models"
	"voyago/pkg/memcache"
	"voyago/pkg/utils"
)

// DestinationFactsProvider supplies the authoritative, non-generative facts
// the reconciler writes over the model's output. Best-effort by contract: a
// failure here degrades the itinerary, it never aborts the request.
type DestinationFactsProvider interface {
	GetDestinationFacts(ctx context.Context, destination string) (*response_models.DestinationFacts, error)
}

// HTTPFactsProvider resolves a destination through the Open-Meteo geocoder,
// summarizes its forecast, and looks up the local currency's USD rate.
// Emergency numbers come from an embedded per-country table.
type HTTPFactsProvider struct {
	client      *http.Client
	geocodeURL  string
	forecastURL string
	ratesURL    string
}

func NewHTTPFactsProvider(timeout time.Duration) DestinationFactsProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPFactsProvider{
		client:      &http.Client{Timeout: timeout},
		geocodeURL:  "https://geocoding-api.open-meteo.com/v1/search",
		forecastURL: "https://api.open-meteo.com/v1/forecast",
		ratesURL:    "https://open.er-api.com/v6/latest/USD",
	}
}

func (p *HTTPFactsProvider) GetDestinationFacts(ctx context.Context, destination string) (*response_models.DestinationFacts, error) {
	place, err := p.geocode(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDestinationFactsUnavailable, err)
	}

	forecast, err := p.forecastSummary(ctx, place.Latitude, place.Longitude)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDestinationFactsUnavailable, err)
	}

	currency := currencyForCountry(place.CountryCode)
	rate, err := p.exchangeRate(ctx, currency)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDestinationFactsUnavailable, err)
	}

	return &response_models.DestinationFacts{
		WeatherForecast: forecast,
		Currency: response_models.LocalCurrency{
			Code:         currency,
			ExchangeRate: rate,
		},
		Emergency: emergencyForCountry(place.CountryCode),
	}, nil
}

type geocodedPlace struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CountryCode string  `json:"country_code"`
}

func (p *HTTPFactsProvider) geocode(ctx context.Context, destination string) (*geocodedPlace, error) {
	u := fmt.Sprintf("%s?name=%s&count=1", p.geocodeURL, url.QueryEscape(destination))

	var payload struct {
		Results []geocodedPlace `json:"results"`
	}
	if err := p.getJSON(ctx, u, &payload); err != nil {
		return nil, err
	}
	if len(payload.Results) == 0 {
		return nil, fmt.Errorf("no geocoding match for %q", destination)
	}
	return &payload.Results[0], nil
}

func (p *HTTPFactsProvider) forecastSummary(ctx context.Context, lat, lon float64) (string, error) {
	u := fmt.Sprintf("%s?latitude=%.4f&longitude=%.4f&daily=temperature_2m_max,temperature_2m_min,weathercode&forecast_days=5&timezone=auto",
		p.forecastURL, lat, lon)

	var payload struct {
		Daily struct {
			TempMax     []float64 `json:"temperature_2m_max"`
			TempMin     []float64 `json:"temperature_2m_min"`
			WeatherCode []int     `json:"weathercode"`
		} `json:"daily"`
	}
	if err := p.getJSON(ctx, u, &payload); err != nil {
		return "", err
	}
	if len(payload.Daily.TempMax) == 0 || len(payload.Daily.TempMin) == 0 {
		return "", fmt.Errorf("empty forecast response")
	}

	var maxSum, minSum float64
	for _, t := range payload.Daily.TempMax {
		maxSum += t
	}
	for _, t := range payload.Daily.TempMin {
		minSum += t
	}
	avgMax := maxSum / float64(len(payload.Daily.TempMax))
	avgMin := minSum / float64(len(payload.Daily.TempMin))

	condition := "mixed conditions"
	if len(payload.Daily.WeatherCode) > 0 {
		condition = describeWeatherCode(predominantCode(payload.Daily.WeatherCode))
	}

	return fmt.Sprintf("Next 5 days: %s, highs around %.0f°C, lows around %.0f°C", condition, avgMax, avgMin), nil
}

func (p *HTTPFactsProvider) exchangeRate(ctx context.Context, currency string) (float64, error) {
	if currency == "USD" {
		return 1, nil
	}

	var payload struct {
		Result string             `json:"result"`
		Rates  map[string]float64 `json:"rates"`
	}
	if err := p.getJSON(ctx, p.ratesURL, &payload); err != nil {
		return 0, err
	}
	rate, ok := payload.Rates[currency]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("no exchange rate for %s", currency)
	}
	return rate, nil
}

func (p *HTTPFactsProvider) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func predominantCode(codes []int) int {
	counts := make(map[int]int)
	best, bestCount := codes[0], 0
	for _, c := range codes {
		counts[c]++
		if counts[c] > bestCount {
			best, bestCount = c, counts[c]
		}
	}
	return best
}

// WMO weather interpretation codes, coarse buckets.
func describeWeatherCode(code int) string {
	switch {
	case code == 0:
		return "clear skies"
	case code <= 3:
		return "partly cloudy"
	case code <= 48:
		return "foggy"
	case code <= 57:
		return "drizzle"
	case code <= 67:
		return "rain"
	case code <= 77:
		return "snow"
	case code <= 82:
		return "rain showers"
	case code <= 86:
		return "snow showers"
	default:
		return "thunderstorms"
	}
}

// CachedFactsProvider fronts a provider with the in-process TTL cache, so a
// user retrying generation for the same destination doesn't re-hit the
// external APIs.
type CachedFactsProvider struct {
	provider DestinationFactsProvider
	cache    *memcache.FactsCache
}

func NewCachedFactsProvider(provider DestinationFactsProvider, cache *memcache.FactsCache) DestinationFactsProvider {
	return &CachedFactsProvider{provider: provider, cache: cache}
}

func (c *CachedFactsProvider) GetDestinationFacts(ctx context.Context, destination string) (*response_models.DestinationFacts, error) {
	if facts, ok := c.cache.Get(destination); ok {
		return facts, nil
	}

	facts, err := c.provider.GetDestinationFacts(ctx, destination)
	if err != nil {
		log.Printf("destination facts fetch failed for %q: %v", destination, err)
		return nil, err
	}

	c.cache.Set(destination, facts)
	return facts, nil
}

var countryCurrencies = map[string]string{
	"US": "USD", "GB": "GBP", "FR": "EUR", "DE": "EUR", "IT": "EUR",
	"ES": "EUR", "PT": "EUR", "NL": "EUR", "GR": "EUR", "AT": "EUR",
	"IE": "EUR", "BE": "EUR", "FI": "EUR", "JP": "JPY", "KR": "KRW",
	"CN": "CNY", "TW": "TWD", "HK": "HKD", "SG": "SGD", "TH": "THB",
	"VN": "VND", "ID": "IDR", "MY": "MYR", "PH": "PHP", "IN": "INR",
	"AU": "AUD", "NZ": "NZD", "CA": "CAD", "MX": "MXN", "BR": "BRL",
	"AR": "ARS", "CL": "CLP", "PE": "PEN", "CO": "COP", "ZA": "ZAR",
	"EG": "EGP", "MA": "MAD", "TR": "TRY", "AE": "AED", "SA": "SAR",
	"IL": "ILS", "CH": "CHF", "SE": "SEK", "NO": "NOK", "DK": "DKK",
	"PL": "PLN", "CZ": "CZK", "HU": "HUF", "RO": "RON", "IS": "ISK",
}

func currencyForCountry(countryCode string) string {
	if c, ok := countryCurrencies[strings.ToUpper(countryCode)]; ok {
		return c
	}
	return "USD"
}

var countryEmergency = map[string]response_models.EmergencyContacts{
	"US": {Police: "911", Ambulance: "911"},
	"CA": {Police: "911", Ambulance: "911"},
	"GB": {Police: "999", Ambulance: "999"},
	"FR": {Police: "17", Ambulance: "15"},
	"DE": {Police: "110", Ambulance: "112"},
	"IT": {Police: "113", Ambulance: "118"},
	"ES": {Police: "091", Ambulance: "061"},
	"PT": {Police: "112", Ambulance: "112"},
	"NL": {Police: "112", Ambulance: "112"},
	"GR": {Police: "100", Ambulance: "166", TouristPolice: "171"},
	"AT": {Police: "133", Ambulance: "144"},
	"IE": {Police: "999", Ambulance: "999"},
	"BE": {Police: "101", Ambulance: "100"},
	"FI": {Police: "112", Ambulance: "112"},
	"CH": {Police: "117", Ambulance: "144"},
	"SE": {Police: "112", Ambulance: "112"},
	"NO": {Police: "112", Ambulance: "113"},
	"DK": {Police: "112", Ambulance: "112"},
	"PL": {Police: "997", Ambulance: "999"},
	"CZ": {Police: "158", Ambulance: "155"},
	"HU": {Police: "107", Ambulance: "104"},
	"RO": {Police: "112", Ambulance: "112"},
	"IS": {Police: "112", Ambulance: "112"},
	"IL": {Police: "100", Ambulance: "101"},
	"MA": {Police: "19", Ambulance: "15"},
	"SA": {Police: "999", Ambulance: "997"},
	"AU": {Police: "000", Ambulance: "000"},
	"NZ": {Police: "111", Ambulance: "111"},
	"JP": {Police: "110", Ambulance: "119"},
	"KR": {Police: "112", Ambulance: "119"},
	"CN": {Police: "110", Ambulance: "120"},
	"TW": {Police: "110", Ambulance: "119"},
	"TH": {Police: "191", Ambulance: "1669", TouristPolice: "1155"},
	"VN": {Police: "113", Ambulance: "115"},
	"ID": {Police: "110", Ambulance: "118"},
	"MY": {Police: "999", Ambulance: "999"},
	"PH": {Police: "911", Ambulance: "911"},
	"IN": {Police: "100", Ambulance: "102"},
	"SG": {Police: "999", Ambulance: "995"},
	"MX": {Police: "911", Ambulance: "911"},
	"BR": {Police: "190", Ambulance: "192"},
	"EG": {Police: "122", Ambulance: "123", TouristPolice: "126"},
	"TR": {Police: "155", Ambulance: "112", TouristPolice: "527 45 03"},
	"AE": {Police: "999", Ambulance: "998"},
	"ZA": {Police: "10111", Ambulance: "10177"},
}

// emergencyForCountry falls back to the EU-wide 112, which also works in most
// countries that route it.
func emergencyForCountry(countryCode string) response_models.EmergencyContacts {
	if e, ok := countryEmergency[strings.ToUpper(countryCode)]; ok {
		return e
	}
	return response_models.EmergencyContacts{Police: "112", Ambulance: "112"}
}
