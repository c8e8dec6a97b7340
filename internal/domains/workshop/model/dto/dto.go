package dto

import (
	"time"

	"boxes/internal/domains/workshop/model"
)

type WorkshopResponse struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
	Active  bool    `json:"active"`
}

func (r *WorkshopResponse) FromModel(workshop model.Workshop) {
	r.ID = workshop.ID
	r.Name = workshop.Name
	r.Address = workshop.Address
	r.Active = workshop.Active
}

// ListWorkshopsQuery is the one cacheable request in the system: one minute
// at the pipeline level, layered on top of the longer-lived cache inside the
// workshop lookup wrapper.
type ListWorkshopsQuery struct{}

func (ListWorkshopsQuery) CacheKey() string {
	return "query:workshops"
}

func (ListWorkshopsQuery) Expiration() time.Duration {
	return time.Minute
}
