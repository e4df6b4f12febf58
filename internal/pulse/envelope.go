package pulse

import (
	"encoding/json"
	"fmt"
)

// decodeList normalizes the API's list response shapes into an ordered
// slice of raw records. The body may be:
//
//   - a bare JSON array
//   - an object wrapping the array under the resource key
//     (e.g. "regions", "locations")
//   - an object wrapping the array under "data"
//   - a single object, treated as a one-element list
//
// Callers decode the returned elements into their typed records.
func decodeList(body []byte, resourceKey string) ([]json.RawMessage, error) {
	var probe any
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	switch probe.(type) {
	case []any:
		var items []json.RawMessage
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, fmt.Errorf("parse response list: %w", err)
		}
		return items, nil

	case map[string]any:
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(body, &wrapper); err != nil {
			return nil, fmt.Errorf("parse response object: %w", err)
		}
		for _, key := range []string{resourceKey, "data"} {
			raw, ok := wrapper[key]
			if !ok {
				continue
			}
			var items []json.RawMessage
			if err := json.Unmarshal(raw, &items); err != nil {
				return nil, fmt.Errorf("parse %q list: %w", key, err)
			}
			return items, nil
		}
		// No known wrapper key: treat the object itself as one record.
		return []json.RawMessage{json.RawMessage(body)}, nil

	default:
		return nil, fmt.Errorf("unexpected response shape %T", probe)
	}
}

// resolveRegion extracts a displayable region reference from a raw
// location record. The API has been observed to return regionId, a
// region object with name or id, or a scalar region value.
func resolveRegion(raw map[string]json.RawMessage) string {
	if v, ok := raw["regionId"]; ok {
		return scalarString(v)
	}
	v, ok := raw["region"]
	if !ok {
		return "N/A"
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(v, &obj); err == nil {
		if name, ok := obj["name"]; ok {
			return scalarString(name)
		}
		if id, ok := obj["id"]; ok {
			return scalarString(id)
		}
		return "N/A"
	}
	return scalarString(v)
}

// scalarString renders a raw JSON scalar without quotes.
func scalarString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return "N/A"
		}
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return string(raw)
}
