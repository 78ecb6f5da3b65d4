package service

import (
	"encoding/json"
	"strings"
)

// ParseStringList is the deliberately lenient collection parser for
// amenities and images. It accepts a JSON array, a JSON string holding a
// comma-separated list, or a bare comma-separated string. Malformed input
// becomes an empty collection with ok=false rather than a hard error; the
// caller decides whether "empty" is acceptable.
func ParseStringList(raw json.RawMessage) ([]string, bool) {
	if len(raw) == 0 {
		return []string{}, false
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, true
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return splitCommaList(single), true
	}

	return []string{}, false
}

func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
