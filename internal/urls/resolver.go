// Package urls builds absolute URLs for uploaded resources.
package urls

import "strings"

// DefaultBase is used when no external base URL is configured.
const DefaultBase = "http://localhost:8080"

// Resolver turns relative resource paths into absolute URLs using a base
// configured at startup (typically an ngrok tunnel address).
type Resolver struct {
	base string
}

// NewResolver returns a Resolver for the given base URL. An empty base means
// DefaultBase. A trailing slash on the base is trimmed.
func NewResolver(base string) *Resolver {
	if base == "" {
		base = DefaultBase
	}
	return &Resolver{base: strings.TrimRight(base, "/")}
}

// Resolve returns the absolute URL for a relative path such as "/images/x.png".
func (r *Resolver) Resolve(relativePath string) string {
	return r.base + relativePath
}
