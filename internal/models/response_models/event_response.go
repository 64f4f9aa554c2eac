package response_models

type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"` // RFC 3339, IST
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
	// MonasteryID is resolved from the event's monastery name at read time;
	// empty when the name matches nothing in the catalog.
	MonasteryID   string `json:"monastery_id,omitempty"`
	MonasteryName string `json:"monastery_name,omitempty"`
}
