// Package hostmatch decides which configured site, if any, a navigation belongs to.
package hostmatch

import (
	"net"
	"strings"

	"visitcap/internal/model"
	"visitcap/internal/urlutil"
)

// WildcardPrefix marks a pattern as "this domain and all subdomains".
const WildcardPrefix = "*."

// Domain returns pattern without its wildcard marker.
func Domain(pattern string) string {
	return strings.TrimPrefix(pattern, WildcardPrefix)
}

// MatchHost reports whether host belongs to pattern. Bare patterns include subdomains too,
// so "x.com" and "*.x.com" behave the same.
func MatchHost(pattern, host string) bool {
	domain := Domain(pattern)
	if domain == "" || host == "" {
		return false
	}
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// NormalizeHost returns the lowercase hostname of rawURL without a leading "www.".
func NormalizeHost(rawURL string) (string, bool) {
	return urlutil.Hostname(rawURL)
}

// FindMatch returns the first limit whose pattern matches the host of rawURL.
// Order is the caller's; no specificity ranking is applied.
func FindMatch(rawURL string, limits []model.SiteLimit) (*model.SiteLimit, bool) {
	host, ok := NormalizeHost(rawURL)
	if !ok {
		return nil, false
	}
	for i := range limits {
		if MatchHost(limits[i].Pattern, host) {
			return &limits[i], true
		}
	}
	return nil, false
}

// NormalizePattern turns popup input such as "https://www.YouTube.com/watch" into "youtube.com".
// A leading "*." survives normalization.
func NormalizePattern(input string) string {
	p := strings.ToLower(strings.TrimSpace(input))
	if idx := strings.Index(p, "://"); idx >= 0 {
		p = p[idx+3:]
	}

	wildcard := strings.HasPrefix(p, WildcardPrefix)
	p = strings.TrimPrefix(p, WildcardPrefix)
	p = strings.TrimPrefix(p, "www.")

	if idx := strings.IndexAny(p, "/?#"); idx >= 0 {
		p = p[:idx]
	}
	if idx := strings.LastIndex(p, "@"); idx >= 0 {
		p = p[idx+1:]
	}
	if host, _, err := net.SplitHostPort(p); err == nil {
		p = host
	}
	p = strings.TrimRight(p, "/.")

	if p == "" {
		return ""
	}
	if wildcard {
		return WildcardPrefix + p
	}
	return p
}

// IsValidPattern reports whether a normalized pattern names a usable host.
func IsValidPattern(pattern string) bool {
	return isValidHost(Domain(pattern))
}

func isValidHost(host string) bool {
	if host == "" || len(host) > 253 {
		return false
	}
	if host == "localhost" || net.ParseIP(strings.Trim(host, "[]")) != nil {
		return true
	}
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" || len(label) > 63 {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, r := range label {
			if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
				return false
			}
		}
	}
	return true
}
