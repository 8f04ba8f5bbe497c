// Package markup wraps the HTML sanitizer applied to user-submitted post
// bodies before storage.
package markup

import (
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips unsafe markup with bluemonday's user-generated-content
// policy: common formatting and links survive, scripts and event handlers
// do not. It satisfies posts.Sanitizer.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a sanitizer with the UGC policy
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.UGCPolicy()}
}

// Sanitize returns the input with disallowed markup removed
func (s *Sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
