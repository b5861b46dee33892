package urlutil

import (
	"net/url"
	"strings"
)

// privilegedSchemes are browser-internal pages that are never subject to limits.
var privilegedSchemes = map[string]struct{}{
	"about":            {},
	"chrome":           {},
	"chrome-extension": {},
	"chrome-search":    {},
	"data":             {},
	"devtools":         {},
	"edge":             {},
	"file":             {},
	"javascript":       {},
	"moz-extension":    {},
	"view-source":      {},
}

// Hostname returns the lowercased host of raw without a leading "www.".
// ok is false when raw does not parse or has no host.
func Hostname(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", false
	}
	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if host == "" {
		return "", false
	}
	return host, true
}

// IsPrivileged reports whether raw uses an internal browser scheme.
func IsPrivileged(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	idx := strings.Index(trimmed, ":")
	if idx <= 0 {
		return false
	}
	_, ok := privilegedSchemes[strings.ToLower(trimmed[:idx])]
	return ok
}
