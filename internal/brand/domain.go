// Package brand maps free-form QR input to a brand label, decides which
// brands stay monochrome, and loads their logos from disk.
package brand

import (
	"net/url"
	"strings"
)

// ExtractDomain returns the lowercased domain of an email address or URL.
// Text that is neither yields "".
func ExtractDomain(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if i := strings.LastIndex(text, "@"); i >= 0 {
		return strings.ToLower(text[i+1:])
	}

	u, err := url.Parse(text)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// PrimaryLabel returns the first dot-separated label of domain, e.g.
// "github" for "github.com".
func PrimaryLabel(domain string) string {
	label, _, _ := strings.Cut(strings.ToLower(domain), ".")
	return label
}
