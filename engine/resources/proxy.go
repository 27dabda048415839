package resources

import (
	"net/url"
	"strings"

	"github.com/spaghettifunk/orbis/engine/core"
)

// DefaultProxy routes resource requests through a proxy endpoint by passing
// the original URL as the query string.
type DefaultProxy struct {
	Proxy string
}

func NewDefaultProxy(proxy string) *DefaultProxy {
	return &DefaultProxy{Proxy: proxy}
}

// GetURL returns the proxied form of resource: Proxy + "?" + the
// URI-component encoding of resource.
func (p *DefaultProxy) GetURL(resource string) string {
	if core.ChecksEnabled {
		core.Assert(p.Proxy != "", "proxy is required")
	}
	return p.Proxy + "?" + encodeURIComponent(resource)
}

// encodeURIComponent escapes everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func encodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	for _, r := range []string{"!", "'", "(", ")", "*"} {
		escaped = strings.ReplaceAll(escaped, url.QueryEscape(r), r)
	}
	return escaped
}
