package model

const (
	EntityName = "workshop"
)

// Workshop is the read model for a bookable service location. It is sourced
// from the external provider, cached, and never persisted locally; only an
// active workshop is usable for booking.
type Workshop struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
	Active  bool    `json:"active"`
}
