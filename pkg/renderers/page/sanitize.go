package page

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	headPolicyOnce sync.Once
	headPolicy     *bluemonday.Policy
)

// sanitizeTitle strips markup from the page title. The result is plain text;
// the template escapes it again.
func sanitizeTitle(raw string) string {
	return strings.TrimSpace(html.UnescapeString(bluemonday.StrictPolicy().Sanitize(raw)))
}

// sanitizeHead keeps link and meta elements. Script and style bodies are
// dropped along with everything else.
func sanitizeHead(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(headSanitizer().Sanitize(trimmed))
}

func headSanitizer() *bluemonday.Policy {
	headPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("link", "meta")
		policy.AllowAttrs("rel", "href", "type", "media", "crossorigin", "integrity").OnElements("link")
		policy.AllowAttrs("name", "content", "property", "charset").OnElements("meta")
		policy.AllowURLSchemes("http", "https")
		policy.AllowRelativeURLs(true)
		headPolicy = policy
	})
	return headPolicy
}
