package tag

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans untrusted markup. *bluemonday.Policy satisfies it.
type Sanitizer interface {
	Sanitize(string) string
}

var (
	cellPolicyOnce sync.Once
	cellPolicy     *bluemonday.Policy
)

// CellSanitizer returns the shared policy used for display-callback markup:
// bluemonday's user generated content policy plus class attributes and links
// opened in new tabs.
func CellSanitizer() *bluemonday.Policy {
	cellPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		policy.AddTargetBlankToFullyQualifiedLinks(true)
		cellPolicy = policy
	})
	return cellPolicy
}

// Sanitize runs markup through s, returning trusted HTML. A nil sanitizer
// trusts the markup as-is.
func Sanitize(s Sanitizer, markup string) HTML {
	if s == nil {
		return HTML(markup)
	}
	return HTML(strings.TrimSpace(s.Sanitize(markup)))
}
