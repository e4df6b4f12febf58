package pulse

import "encoding/json"

// Region is a top-level organizational grouping.
type Region struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
}

// Location is a site inside a region.
type Location struct {
	ID     json.Number `json:"id"`
	Name   string      `json:"name"`
	Region string      `json:"-"` // resolved display value, see envelope.go
}

// RoomCreated is the result of a successful room creation.
//
// DEC is the device enrollment code the API returns; it may be empty
// even on success, in which case the room exists but no code was
// issued in the response.
type RoomCreated struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
	DEC  string      `json:"dec"`
}
