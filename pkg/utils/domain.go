package utils

import (
	"net/url"
	"strings"
)

// NormalizeDomain reduces a URL or host to a bare hostname without the
// leading "www.". Returns "" when nothing usable is left.
func NormalizeDomain(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}

	host := raw
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return ""
		}
		host = u.Hostname()
	} else {
		if i := strings.IndexAny(host, "/?#"); i >= 0 {
			host = host[:i]
		}
		if i := strings.LastIndex(host, ":"); i >= 0 {
			host = host[:i]
		}
	}

	return strings.TrimPrefix(host, "www.")
}
