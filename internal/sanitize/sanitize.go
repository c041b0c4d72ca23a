// Package sanitize cleans free-text form input before it is validated and
// sent to the catalog backend. Uses bluemonday's strict policy so any markup
// a user pastes into a name or description is dropped, leaving plain text.
package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// policy is the singleton strict policy. Initialized once via sync.Once for
// thread-safe lazy initialization.
var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// getPolicy returns the shared strict policy, initializing it on first call.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// Text strips every HTML element from input and trims surrounding whitespace.
// Entities produced by the policy are decoded again so "Tom & Jerry" round
// trips unchanged; templ escapes the value when it is rendered.
func Text(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(getPolicy().Sanitize(input)))
}

// URL trims a URL field. Markup is not stripped here because the validator
// rejects anything that does not parse as a URL.
func URL(input string) string {
	return strings.TrimSpace(input)
}
