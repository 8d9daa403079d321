package models

import "encoding/json"

// Record is the generic shape of one planner entity row as returned to the
// client: the assigned id plus the descriptor's field values keyed by field
// name. Values are JSON-ready (string, int32, bool).
type Record struct {
	ID     int32
	Fields map[string]any
}

// MarshalJSON flattens the record into a single JSON object with the id
// alongside the entity-specific fields, matching the wire format of the
// GET /data/{entity} endpoint.
func (r Record) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(r.Fields)+1)
	for name, value := range r.Fields {
		flat[name] = value
	}
	flat["id"] = r.ID

	return json.Marshal(flat)
}

// IDResponse is the JSON body returned by the create/update and delete
// data endpoints.
type IDResponse struct {
	ID int32 `json:"id"`
}
