package preview

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	customPolicyOnce sync.Once
	customPolicy     *bluemonday.Policy
)

// sanitizeCustomHTML cleans user-authored custom-block markup before it is
// admitted into the node tree as raw content.
func sanitizeCustomHTML(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(customSanitizer().Sanitize(trimmed))
}

func customSanitizer() *bluemonday.Policy {
	customPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()

		// The alignment tricks READMEs rely on are attribute-based.
		policy.AllowAttrs("align").OnElements("p", "div", "h1", "h2", "h3", "h4", "h5", "h6", "img", "td", "th")
		policy.AllowAttrs("width", "height").OnElements("img")
		policy.AllowElements("details", "summary", "picture", "source")
		policy.AllowAttrs("srcset", "media", "type").OnElements("source")
		policy.AllowAttrs("open").OnElements("details")

		customPolicy = policy
	})
	return customPolicy
}
