package client

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultBaseURL is the public Zenv Hub instance.
const DefaultBaseURL = "https://zenv-hub.onrender.com"

// URLs constructs endpoint URLs for a hub instance.
type URLs struct {
	base string
}

// NewURLs creates a URL builder for the given base URL. An empty base
// falls back to the public hub.
func NewURLs(base string) *URLs {
	if base == "" {
		base = DefaultBaseURL
	}
	return &URLs{base: strings.TrimSuffix(base, "/")}
}

// Base returns the normalized base URL.
func (u *URLs) Base() string {
	return u.base
}

// Packages returns the package listing endpoint.
func (u *URLs) Packages() string {
	return u.base + "/api/packages"
}

// Badges returns the badge listing endpoint.
func (u *URLs) Badges() string {
	return u.base + "/api/badges"
}

// Health returns the server health endpoint.
func (u *URLs) Health() string {
	return u.base + "/api/health"
}

// Download returns the artifact download endpoint for a package version.
// Name and version are escaped before path insertion.
func (u *URLs) Download(name, version string) string {
	return fmt.Sprintf("%s/api/packages/download/%s/%s",
		u.base, url.PathEscape(name), url.PathEscape(version))
}

// Login returns the login endpoint.
func (u *URLs) Login() string {
	return u.base + "/api/auth/login"
}

// Register returns the registration endpoint.
func (u *URLs) Register() string {
	return u.base + "/api/auth/register"
}
