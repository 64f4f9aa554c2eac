package domain_models

// Monastery is an immutable catalog record. Visitors never mutate it;
// selecting one for a trip copies its identifier and display fields into
// the itinerary.
type Monastery struct {
	ID          string
	Name        string
	Location    string
	Latitude    float64
	Longitude   float64
	Era         string
	Founded     int
	Description string
	ImageURL    string
	AudioURL    string
}
