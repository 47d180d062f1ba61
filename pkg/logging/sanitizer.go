package logging

import (
	"regexp"
)

const (
	// MaxFieldLogLength is the maximum length of free-form user text to log.
	MaxFieldLogLength = 120
	// MaxSampleLogCount is the maximum number of sample values to log.
	MaxSampleLogCount = 3
	// RedactedText is the replacement text for sensitive data.
	RedactedText = "[REDACTED]"
)

// Matches API keys and bearer tokens that providers sometimes echo back in
// error messages.
var apiKeyPattern = regexp.MustCompile(`(?i)(api[_-]?key|bearer|token)[=:\s]+[A-Za-z0-9._-]{8,}`)

// Truncate shortens free-form user text (descriptions, queries, cell
// values) before it reaches a log line.
func Truncate(s string) string {
	if len(s) <= MaxFieldLogLength {
		return s
	}
	return s[:MaxFieldLogLength] + "..."
}

// SampleValues returns at most MaxSampleLogCount truncated sample values,
// so a large column never ends up in the logs wholesale.
func SampleValues(samples []string) []string {
	n := len(samples)
	if n > MaxSampleLogCount {
		n = MaxSampleLogCount
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = Truncate(samples[i])
	}
	return out
}

// SanitizeError scrubs credentials from an error before logging. External
// provider errors can include the request's authorization header.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return apiKeyPattern.ReplaceAllString(err.Error(), "${1}="+RedactedText)
}
