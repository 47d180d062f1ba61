package llm

import (
	"fmt"
	"strings"

	"github.com/rhombus-ai/pattern-engine/pkg/models"
)

// systemPrompt keeps model output to a bare pattern so CleanResponse has as
// little to strip as possible.
const systemPrompt = "You convert natural language descriptions into regular expressions. " +
	"Respond with a single regular expression on one line and nothing else. " +
	"Do not add explanations, quotes, or code fences."

// maxPromptSamples caps how many column samples are sent to the provider.
const maxPromptSamples = 5

// BuildPrompt renders a synthesis request as a provider-neutral prompt.
func BuildPrompt(req *models.PatternRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Convert to regex: %s.", strings.TrimSpace(req.Description))
	if ctx := strings.TrimSpace(req.Context); ctx != "" {
		fmt.Fprintf(&b, " Context: %s.", ctx)
	}
	if len(req.ColumnData) > 0 {
		samples := req.ColumnData
		if len(samples) > maxPromptSamples {
			samples = samples[:maxPromptSamples]
		}
		fmt.Fprintf(&b, " Sample values the pattern should match: %s.", strings.Join(samples, ", "))
	}
	b.WriteString(" Return only the regex pattern:")
	return b.String()
}
