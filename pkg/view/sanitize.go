package view

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans rendered item markup before it reaches a host.
type Sanitizer interface {
	Sanitize(fragment string) string
}

// SanitizerFunc adapts a function to Sanitizer.
type SanitizerFunc func(string) string

func (f SanitizerFunc) Sanitize(fragment string) string { return f(fragment) }

var (
	fragmentPolicyOnce sync.Once
	fragmentPolicy     *bluemonday.Policy
)

// HTMLSanitizer returns the shared policy applied to item fragments inside
// HTML rows: user generated content rules, no link targets without rel.
func HTMLSanitizer() Sanitizer {
	fragmentPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)
		policy.AllowAttrs("class").Globally()
		fragmentPolicy = policy
	})
	return SanitizerFunc(func(fragment string) string {
		if strings.TrimSpace(fragment) == "" {
			return ""
		}
		return fragmentPolicy.Sanitize(fragment)
	})
}

// StrictSanitizer strips every tag, leaving escaped text.
func StrictSanitizer() Sanitizer {
	policy := bluemonday.StrictPolicy()
	return SanitizerFunc(policy.Sanitize)
}
