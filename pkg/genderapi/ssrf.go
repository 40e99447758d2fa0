package genderapi

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"
)

// validURLPattern matches safe URL schemes (http/https only)
var validURLPattern = regexp.MustCompile(`^https?://`)

// metadataHosts are cloud metadata endpoints that are never a valid API host.
var metadataHosts = map[string]bool{
	"169.254.169.254":          true,
	"metadata.google.internal": true,
}

// validateBaseURL rejects non-http(s) schemes and private or link-local
// addresses. Loopback is allowed for local testing.
func validateBaseURL(baseURL string) error {
	if !validURLPattern.MatchString(baseURL) {
		return fmt.Errorf("invalid URL scheme: only http and https are allowed")
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	hostname := parsedURL.Hostname()
	if hostname == "" {
		return fmt.Errorf("URL has no hostname")
	}
	if parsedURL.RawQuery != "" || parsedURL.Fragment != "" {
		return fmt.Errorf("base URL must not carry a query or fragment")
	}

	if metadataHosts[strings.ToLower(hostname)] {
		return fmt.Errorf("SSRF protection: cannot connect to metadata endpoint: %s", hostname)
	}

	if ip := net.ParseIP(hostname); ip != nil {
		if ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() || ip.IsUnspecified() {
			return fmt.Errorf("SSRF protection: cannot connect to private/internal network: %s", hostname)
		}
	}

	return nil
}
