package repositories

import (
	"encoding/json"

	"ayudamosBack/internal/models"
)

// The JSON columns (images, service_areas, available_hours) travel through
// the driver as raw bytes; these helpers keep the scan/exec sites short and
// make sure empty collections round-trip as [] / {} rather than NULL.

func encodeJSON(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func decodeStringList(raw []byte) []string {
	out := []string{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	if out == nil {
		out = []string{}
	}
	return out
}

func decodeHours(raw []byte) map[string]models.HourRange {
	out := map[string]models.HourRange{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	if out == nil {
		out = map[string]models.HourRange{}
	}
	return out
}
