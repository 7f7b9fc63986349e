package util

import (
	"net/url"
	"strings"
)

// IsHTTPOrHTTPSURL returns true if s is a valid URL with scheme "http" or "https" and a non-empty host.
func IsHTTPOrHTTPSURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsHostOf returns true if the host of rawURL, without port, matches one of hosts.
// Comparison is case-insensitive.
func IsHostOf(rawURL string, hosts []string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	hostname := u.Hostname()
	if hostname == "" {
		return false
	}

	for _, h := range hosts {
		if strings.EqualFold(hostname, strings.TrimSpace(h)) {
			return true
		}
	}

	return false
}

// SplitList splits a comma separated list, dropping empty entries.
func SplitList(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
