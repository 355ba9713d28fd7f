// Package llmjson recovers and validates JSON from model output. Model text
// is untrusted input: it may be wrapped in markdown fences, prefixed with
// prose, or cut off mid-object. All call sites share this one routine instead
// of parsing ad hoc.
package llmjson

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNonJSONOutput means no JSON object could be recovered from the model
// text after every repair attempt.
var ErrNonJSONOutput = errors.New("model returned non-JSON output")

// StripCodeFences removes markdown ```json / ``` wrappers.
func StripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// Recover extracts a JSON object from raw model text. Attempts, in order:
// direct parse, first-{ to last-} substring, then an incremental scan that
// keeps the largest valid object starting at the first brace. JSON-syntax
// repair only; schema problems are left to validation.
func Recover(raw string) (json.RawMessage, error) {
	cleaned := StripCodeFences(raw)

	if json.Valid([]byte(cleaned)) && strings.HasPrefix(strings.TrimSpace(cleaned), "{") {
		return json.RawMessage(cleaned), nil
	}

	first := strings.Index(cleaned, "{")
	if first < 0 {
		return nil, ErrNonJSONOutput
	}
	last := strings.LastIndex(cleaned, "}")
	if last > first {
		candidate := cleaned[first : last+1]
		if json.Valid([]byte(candidate)) {
			return json.RawMessage(candidate), nil
		}
	}

	// Salvage the largest parseable object prefix.
	var best string
	for i := first + 1; i <= len(cleaned); i++ {
		if cleaned[i-1] != '}' {
			continue
		}
		candidate := cleaned[first:i]
		if json.Valid([]byte(candidate)) {
			best = candidate
		}
	}
	if best != "" {
		return json.RawMessage(best), nil
	}
	return nil, ErrNonJSONOutput
}
