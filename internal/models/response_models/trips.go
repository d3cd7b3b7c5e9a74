package response_models

// TripSummary is the list view of a stored trip.
type TripSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Degraded    bool   `json:"degraded"`
	CreatedAt   int64  `json:"created_at"`
}

// TripDetail is the full stored record including the itinerary document.
type TripDetail struct {
	TripSummary
	Itinerary *TravelItinerary `json:"itinerary"`
}

// ChatReply wraps the assistant's unstructured completion.
type ChatReply struct {
	Reply string `json:"reply"`
}
