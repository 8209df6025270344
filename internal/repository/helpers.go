package repository

import (
	"encoding/json"
	"fmt"
	"time"
)

// marshalJSONColumn serializes a value for storage in a TEXT column. A nil
// slice or map serializes as its empty form rather than "null" so the
// column defaults stay meaningful.
func marshalJSONColumn(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding json column: %w", err)
	}
	s := string(data)
	if s == "null" {
		return "", fmt.Errorf("encoding json column: unexpected null")
	}
	return s, nil
}

// unmarshalJSONColumn deserializes a TEXT column into out. An empty string
// is treated as absent and leaves out untouched.
func unmarshalJSONColumn(raw string, out any) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decoding json column: %w", err)
	}
	return nil
}

// timeLayout is the storage form for timestamps; dates use the bare
// calendar form with no timezone component.
const timeLayout = time.RFC3339

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(timeLayout)
}

func parseRFC3339(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp: %w", err)
	}
	return t, nil
}
