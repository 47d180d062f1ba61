// Package patterns holds the static synonym library mapping semantic
// categories (email, phone, URL, ...) to canonical regular expressions.
package patterns

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/jinzhu/inflection"
	"gopkg.in/yaml.v3"
)

// GenericFallback matches one or more non-whitespace characters. It is the
// last-resort pattern for unrecognized categories and is considered
// low-confidence by callers.
const GenericFallback = `\S+`

// Canonical category keys.
const (
	CategoryEmail      = "email"
	CategoryPhone      = "phone"
	CategoryURL        = "url"
	CategoryDate       = "date"
	CategoryTime       = "time"
	CategoryCurrency   = "currency"
	CategoryZip        = "zip"
	CategoryIP         = "ip"
	CategoryCreditCard = "credit_card"
	CategoryNumber     = "number"
	CategoryWord       = "word"
)

// detector maps cue keywords found in a description to a category key.
// Detection runs in slice order so more specific categories win: "phone
// number" must hit phone before the bare "number" cue, and "credit card
// number" must hit credit_card before either.
type detector struct {
	category string
	keywords []string
}

var detectors = []detector{
	{CategoryEmail, []string{"email", "e-mail", "mail address"}},
	{CategoryURL, []string{"url", "link", "website", "web address"}},
	{CategoryIP, []string{"ip address", "ipv4", "ip"}},
	{CategoryPhone, []string{"phone", "telephone", "mobile"}},
	{CategoryCreditCard, []string{"credit card", "card number"}},
	{CategoryZip, []string{"zip", "postal code", "postcode"}},
	{CategoryDate, []string{"date", "birthday"}},
	{CategoryTime, []string{"time", "timestamp"}},
	{CategoryCurrency, []string{"currency", "price", "dollar", "amount", "cost"}},
	{CategoryNumber, []string{"number", "digit", "numeric"}},
	{CategoryWord, []string{"word"}},
}

// Library is the process-wide, read-only pattern table. It is built once at
// startup; lookups are safe for concurrent use.
type Library struct {
	patterns map[string]string
}

// NewLibrary returns a library with the built-in category patterns.
func NewLibrary() *Library {
	return &Library{patterns: map[string]string{
		CategoryEmail:      `[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`,
		CategoryPhone:      `\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`,
		CategoryURL:        `https?://[^\s]+`,
		CategoryDate:       `\d{4}-\d{2}-\d{2}|\d{1,2}[/-]\d{1,2}[/-]\d{4}`,
		CategoryTime:       `\d{1,2}:\d{2}(?::\d{2})?`,
		CategoryCurrency:   `\$\d+(?:,\d{3})*(?:\.\d{2})?`,
		CategoryZip:        `\d{5}(?:-\d{4})?`,
		CategoryIP:         `\b(?:\d{1,3}\.){3}\d{1,3}\b`,
		CategoryCreditCard: `\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{4}`,
		CategoryNumber:     `\d+(?:\.\d+)?`,
		CategoryWord:       `\b\w+\b`,
	}}
}

// Lookup returns the canonical pattern for a category, or false when the
// category is unknown. Callers handle the miss with GenericFallback.
func (l *Library) Lookup(category string) (string, bool) {
	p, ok := l.patterns[category]
	return p, ok
}

// Categories returns the known category keys, sorted.
func (l *Library) Categories() []string {
	keys := make([]string, 0, len(l.patterns))
	for k := range l.patterns {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Detect scans a description for category cue keywords and returns the
// matching category key, or "" when none is recognized.
func (l *Library) Detect(description string) string {
	lowered := strings.ToLower(description)
	for _, d := range detectors {
		if _, known := l.patterns[d.category]; !known {
			continue
		}
		for _, kw := range d.keywords {
			if hasKeyword(lowered, kw) {
				return d.category
			}
		}
	}
	return ""
}

// hasKeyword reports whether text contains kw. Multi-word cues match as
// substrings; single words must match a whole token so "ip" does not fire
// inside "zip" or "description". Tokens are singularized before comparing,
// so "currencies" hits the "currency" cue.
func hasKeyword(text, kw string) bool {
	if strings.Contains(kw, " ") || strings.Contains(kw, "-") {
		return strings.Contains(text, kw)
	}
	for _, tok := range strings.Fields(text) {
		tok = strings.Trim(tok, `.,;:!?"'()`)
		if tok == kw || inflection.Singular(tok) == kw {
			return true
		}
	}
	return false
}

// LoadOverrides merges user-supplied category patterns from a YAML file of
// category -> pattern pairs. Patterns that fail to compile are rejected.
func (l *Library) LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read pattern overrides: %w", err)
	}

	overrides := make(map[string]string)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("parse pattern overrides: %w", err)
	}

	for category, pattern := range overrides {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("override for %q does not compile: %w", category, err)
		}
		l.patterns[strings.ToLower(strings.TrimSpace(category))] = pattern
	}
	return nil
}
