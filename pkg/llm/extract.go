package llm

import (
	"regexp"
	"strings"
)

// thinkPattern matches <think>...</think> blocks some models prepend.
var thinkPattern = regexp.MustCompile(`(?s)<think>.*?</think>`)

// fencePattern matches a markdown code fence around the pattern.
var fencePattern = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*(.*?)\\s*```")

// CleanResponse extracts a bare pattern from a model response that may be
// wrapped in think tags, code fences, quotes, or trailing prose. Only the
// first non-empty line survives.
func CleanResponse(response string) string {
	s := thinkPattern.ReplaceAllString(response, "")

	if m := fencePattern.FindStringSubmatch(s); len(m) == 2 {
		s = m[1]
	}

	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		line = strings.Trim(line, "\"'`")
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}
