package float

import (
	"encoding/json"
	"strings"
)

// maxSummaryWidth bounds the one-line summary shown in the UI.
const maxSummaryWidth = 120

// messageResponse is the JSON envelope returned by the default login
// endpoint: {"message": "...", "status": "success"}.
type messageResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Summarize reduces a response body to a single display line. JSON bodies
// with a "message" field yield that field; anything else yields its first
// non-blank line.
func Summarize(body string) string {
	var payload messageResponse
	if err := json.Unmarshal([]byte(body), &payload); err == nil {
		if msg := strings.TrimSpace(payload.Message); msg != "" {
			return truncate(msg, maxSummaryWidth)
		}
	}
	for _, line := range strings.Split(body, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return truncate(trimmed, maxSummaryWidth)
		}
	}
	return ""
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
