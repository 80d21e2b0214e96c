package eval

import (
	"encoding/json"

	"github.com/google/uuid"
)

func jsonUnmarshal(data string, v any) error {
	return json.Unmarshal([]byte(data), v)
}

// parseUUID is for wire fields that ought to carry a UUID but may not; the
// zero UUID signals "unknown" to the caller.
func parseUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
