package extract

import (
	"regexp"
	"strings"
)

// MaxPromptChars bounds the text sent to the model; anything longer is cut and
// flagged with TruncationMarker. Truncation is deliberate data loss, the
// marker makes it visible to the caller.
const (
	MaxPromptChars   = 12000
	TruncationMarker = "\n[TRUNCATED]"
)

var (
	hspaceRe  = regexp.MustCompile(`[ \t]+`)
	newlineRe = regexp.MustCompile(`\n{3,}`)
	bulletRe  = regexp.MustCompile("[•·▪●]")
)

// Normalize canonicalizes whitespace and bullets: CR to LF, runs of horizontal
// whitespace to one space, 3+ newlines to exactly 2, bullet glyphs to "-".
func Normalize(input string) string {
	s := strings.ReplaceAll(input, "\r", "\n")
	s = hspaceRe.ReplaceAllString(s, " ")
	s = newlineRe.ReplaceAllString(s, "\n\n")
	s = bulletRe.ReplaceAllString(s, "-")
	return strings.TrimSpace(s)
}

// Clamp cuts text to maxChars and appends the truncation marker when it does.
func Clamp(text string, maxChars int) string {
	if text == "" {
		return ""
	}
	if len(text) > maxChars {
		return text[:maxChars] + TruncationMarker
	}
	return text
}
