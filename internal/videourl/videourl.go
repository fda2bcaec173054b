// Package videourl classifies strings as well-formed video URLs for the
// supported platform. Checks are purely syntactic; nothing here verifies
// that a video exists or is reachable.
package videourl

import (
	"net/url"
	"strings"
)

// hostMarkers are the platform domains a URL host must contain to be
// considered downloadable. Subdomains match via suffix comparison.
var hostMarkers = []string{
	"youtube.com",
	"youtu.be",
}

// Supported reports whether raw parses as an http(s) URL whose host belongs
// to a recognized video platform. Malformed input returns false.
func Supported(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return false
	}
	for _, marker := range hostMarkers {
		if host == marker || strings.HasSuffix(host, "."+marker) {
			return true
		}
	}
	return false
}
