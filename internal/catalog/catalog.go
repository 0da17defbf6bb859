// Package catalog derives display-ready views of the package list. All
// functions are pure: they never mutate the underlying slice and have no
// side effects.
package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/git-pkgs/purl"
	"github.com/github/go-spdx/v2/spdxexp"

	"github.com/zenv-lang/zenvhub/internal/core"
)

// Recent returns the first n packages in store order. Store order is
// arrival order from the gateway; no sorting happens here. Short lists
// are returned whole.
func Recent(pkgs []core.Package, n int) []core.Package {
	if n < 0 {
		n = 0
	}
	if n > len(pkgs) {
		n = len(pkgs)
	}
	return pkgs[:n]
}

// Search filters packages by a case-insensitive substring match against
// name, description, and author. An empty term returns the unfiltered
// list; a non-matching term returns an empty slice.
func Search(pkgs []core.Package, term string) []core.Package {
	if term == "" {
		return pkgs
	}
	term = strings.ToLower(term)

	matched := []core.Package{}
	for _, p := range pkgs {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(p.Author), term) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Find returns the first package with an exact name match, or nil.
func Find(pkgs []core.Package, name string) *core.Package {
	for i := range pkgs {
		if pkgs[i].Name == name {
			return &pkgs[i]
		}
	}
	return nil
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatSize renders a byte count using base-1024 units with two decimal
// places, e.g. 1536 -> "1.50 KB". Zero renders as the literal "0 Bytes".
// Sizes past the GB range stay in GB.
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	const k = 1024
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(k)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	return fmt.Sprintf("%.2f %s", float64(bytes)/math.Pow(k, float64(i)), sizeUnits[i])
}

// PackageURL returns the purl identifying a package version,
// e.g. "pkg:zenv/my-tool@1.2.0".
func PackageURL(p core.Package) string {
	return fmt.Sprintf("pkg:zenv/%s@%s", p.Name, p.Version)
}

// ParseRef resolves a package reference to (name, version). Accepted
// forms are "name@version" and a full purl like "pkg:zenv/name@version".
// The version may be empty, in which case callers default to "latest".
func ParseRef(ref string) (name, version string, err error) {
	if strings.HasPrefix(ref, "pkg:") {
		p, err := purl.Parse(ref)
		if err != nil {
			return "", "", fmt.Errorf("invalid package reference %q: %w", ref, err)
		}
		name = p.Name
		if p.Namespace != "" {
			name = p.Namespace + "/" + p.Name
		}
		return name, p.Version, nil
	}

	if at := strings.LastIndex(ref, "@"); at > 0 {
		return ref[:at], ref[at+1:], nil
	}
	if ref == "" {
		return "", "", fmt.Errorf("empty package reference")
	}
	return ref, "", nil
}

// ValidLicense reports whether a package's license field is a valid SPDX
// expression. An empty field is treated as valid (license is optional).
func ValidLicense(expr string) bool {
	if expr == "" {
		return true
	}
	ok, _ := spdxexp.ValidateLicenses([]string{expr})
	return ok
}
