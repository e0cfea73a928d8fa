// Package sanitize provides the whitelist HTML sanitizer applied to
// user-supplied profile text before it is rendered back as markup.
//
// The policy is deny-by-default: only the single container tag named in the
// whitelist survives, and on it only the whitelisted attribute names are
// preserved (with escaped values). Everything else is stripped. The content
// of script elements is removed entirely, not merely the tags.
package sanitize

import "github.com/microcosm-cc/bluemonday"

// Whitelist: one container tag, one event-handler-style attribute name.
const (
	allowedTag       = "body"
	allowedEventAttr = "onhashchange"
)

// Sanitizer cleans untrusted text so it is safe to interpolate into HTML.
// It is immutable after construction and safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New constructs the profile-field sanitizer.
func New() *Sanitizer {
	policy := bluemonday.NewPolicy()
	policy.AllowElements(allowedTag)
	policy.AllowAttrs(allowedEventAttr).OnElements(allowedTag)
	policy.SkipElementsContent("script")

	return &Sanitizer{policy: policy}
}

// Clean returns input with every tag outside the whitelist stripped, script
// content removed, and attribute values escaped.
//
// Clean is idempotent: Clean(Clean(x)) == Clean(x).
func (s *Sanitizer) Clean(input string) string {
	return s.policy.Sanitize(input)
}
