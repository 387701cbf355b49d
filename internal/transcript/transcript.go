// Package transcript decodes recognizer results into normalized utterance text.
package transcript

import (
	"encoding/json"
	"fmt"
	"strings"
)

// result mirrors the final-result JSON emitted by the recognizer.
type result struct {
	Text string `json:"text"`
}

// ParseResult extracts and normalizes the text of one final recognizer
// result. An empty string means nothing was recognized.
func ParseResult(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	var r result
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return "", fmt.Errorf("decode recognizer result: %w", err)
	}
	return Normalize(r.Text), nil
}

// Normalize trims, lowercases, and collapses internal whitespace.
func Normalize(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
