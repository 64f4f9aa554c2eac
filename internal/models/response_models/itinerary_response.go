package response_models

type StopResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Location  string  `json:"location"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type EventPickResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

type ItineraryResponse struct {
	ID        string              `json:"id"`
	CreatedAt string              `json:"created_at"`
	Stops     []StopResponse      `json:"stops"`
	Events    []EventPickResponse `json:"events"`
}

// DayPlanResponse is a derived view: consecutive fixed-size groups of the
// stop sequence, one group per notional day. Recomputed on every read.
type DayPlanResponse struct {
	PerDay int              `json:"per_day"`
	Days   [][]StopResponse `json:"days"`
}

// SummaryResponse carries the heuristic aggregate estimate: stop count
// multiplied by fixed per-stop constants, not a routing computation.
type SummaryResponse struct {
	StopCount      int     `json:"stop_count"`
	EventCount     int     `json:"event_count"`
	DayCount       int     `json:"day_count"`
	EstimatedHours float64 `json:"estimated_hours"`
	EstimatedKm    float64 `json:"estimated_km"`
	EstimatedCost  float64 `json:"estimated_cost"`
	Currency       string  `json:"currency"`
}
