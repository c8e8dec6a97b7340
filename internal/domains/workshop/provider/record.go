package provider

import (
	"bytes"
	"encoding/json"
	"strings"
)

// WorkshopRecord is the provider's workshop payload. Field names match
// case-insensitively and almost everything is optional; only the identity
// and the active flag are load-bearing. The remaining fields are carried
// through untouched for external consumers.
type WorkshopRecord struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Address   *Address        `json:"address"`
	Active    bool            `json:"active"`
	Phone     string          `json:"phone,omitempty"`
	Email     string          `json:"email,omitempty"`
	Website   string          `json:"website,omitempty"`
	City      string          `json:"city,omitempty"`
	Province  string          `json:"province,omitempty"`
	Zip       string          `json:"zip,omitempty"`
	Brands    []string        `json:"brands,omitempty"`
	Schedules json.RawMessage `json:"schedules,omitempty"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Geometry struct {
	Location Location `json:"location"`
}

// Address is the provider's geocoded address. The provider sends it either
// as a structured object or as a JSON-encoded string; UnmarshalJSON inspects
// the raw token and decodes accordingly, so callers always see one shape.
// An empty or malformed value decodes to the zero Address.
type Address struct {
	Name             string    `json:"name"`
	FormattedAddress string    `json:"formatted_address"`
	Vicinity         string    `json:"vicinity"`
	PlaceID          string    `json:"place_id"`
	URL              string    `json:"url"`
	Types            []string  `json:"types"`
	Geometry         *Geometry `json:"geometry"`
}

// plainAddress avoids recursing into Address.UnmarshalJSON.
type plainAddress Address

func (a *Address) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '"' {
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil
		}

		if strings.TrimSpace(raw) == "" {
			return nil
		}

		var plain plainAddress
		if err := json.Unmarshal([]byte(raw), &plain); err != nil {
			return nil
		}

		*a = Address(plain)

		return nil
	}

	var plain plainAddress
	if err := json.Unmarshal(trimmed, &plain); err != nil {
		return err
	}

	*a = Address(plain)

	return nil
}

// Empty reports whether the address decoded to nothing usable.
func (a *Address) Empty() bool {
	return a == nil || (a.FormattedAddress == "" && a.Name == "" && a.Vicinity == "")
}

// Formatted returns the best human-readable rendering of the address, or
// empty when absent.
func (a *Address) Formatted() string {
	if a == nil {
		return ""
	}

	if a.FormattedAddress != "" {
		return a.FormattedAddress
	}

	if a.Vicinity != "" {
		return a.Vicinity
	}

	return a.Name
}
