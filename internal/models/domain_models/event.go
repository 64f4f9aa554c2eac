package domain_models

import "time"

// Event is a cultural-calendar entry. MonasteryName links back to the
// catalog by display name rather than by id; the linkage is resolved at
// read time and may legitimately miss.
type Event struct {
	ID            string
	Title         string
	Date          time.Time
	Location      string
	Description   string
	MonasteryName string
}
