package models

import "encoding/json"

// CreateEventResult is what the remote createEvent operation returns on
// success. Data carries the server-side enrichment (reference identifiers
// resolved to display names) and is passed through without interpretation.
type CreateEventResult struct {
	EventID string          `json:"eventId"`
	Data    json.RawMessage `json:"data"`
}
