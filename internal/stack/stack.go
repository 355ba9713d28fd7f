// Package stack normalizes the "required technologies" input. Two forms are
// derived from the same tokenization: the display list sent to the model and
// the canonical key used for cache lookups and the uniqueness constraint.
package stack

import (
	"regexp"
	"sort"
	"strings"

	"github.com/hireview/hireview-backend/internal/dtos"
)

var splitRe = regexp.MustCompile(`[,;\s]+`)

// Parse resolves a required-tech value to a deduplicated list preserving
// first-seen order. This is the form sent to the model and stored for display.
func Parse(v dtos.RequiredTech) []string {
	tokens := tokens(v)

	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// Key derives the cache/uniqueness key: lowercased, deduplicated, sorted,
// comma-joined. "React, Node.js" and "node.js,react" produce the same key.
func Key(v dtos.RequiredTech) string {
	tokens := tokens(v)

	seen := make(map[string]bool, len(tokens))
	lowered := make([]string, 0, len(tokens))
	for _, t := range tokens {
		l := strings.ToLower(t)
		if seen[l] {
			continue
		}
		seen[l] = true
		lowered = append(lowered, l)
	}
	sort.Strings(lowered)
	return strings.Join(lowered, ",")
}

func tokens(v dtos.RequiredTech) []string {
	var raw []string
	if s, ok := v.Raw(); ok {
		raw = splitRe.Split(s, -1)
	} else {
		raw = v.Values
	}

	out := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
