// Package badge builds shareable badge image URLs for the Zenv Hub badge
// service. Building is pure and total: any combination of inputs,
// including empty strings, yields a valid URL.
package badge

import (
	"fmt"
	"net/url"
	"strings"
)

// Defaults substituted for missing segments.
const (
	DefaultLabel = "zenv"
	DefaultValue = "1.0.0"
	DefaultColor = "blue"
)

// Params describes a badge to render. Zero-value fields fall back to the
// package defaults; Logo and Style are optional and omitted when empty.
type Params struct {
	Label string
	Value string
	Color string
	Logo  string
	Style string
}

func (p Params) withDefaults() Params {
	if p.Label == "" {
		p.Label = DefaultLabel
	}
	if p.Value == "" {
		p.Value = DefaultValue
	}
	if p.Color == "" {
		p.Color = DefaultColor
	}
	return p
}

// CustomURL returns the custom-style badge image URL:
// {base}/badge/custom/{label}/{value}/{color}[/{logo}].
// User-supplied segments are percent-encoded; an empty logo appends
// nothing, so the URL never ends in a separator.
func CustomURL(base string, p Params) string {
	p = p.withDefaults()
	u := fmt.Sprintf("%s/badge/custom/%s/%s/%s",
		strings.TrimSuffix(base, "/"),
		url.PathEscape(p.Label),
		url.PathEscape(p.Value),
		url.PathEscape(p.Color))
	if p.Logo != "" {
		u += "/" + url.PathEscape(p.Logo)
	}
	return u
}

// ShieldsURL returns the shields-compatible badge image URL:
// {base}/badge/shields/{label}/{value}/{color}[/{logo}[/{style}]].
// The style segment nests under logo, so a style with no logo is dropped.
func ShieldsURL(base string, p Params) string {
	p = p.withDefaults()
	u := fmt.Sprintf("%s/badge/shields/%s/%s/%s",
		strings.TrimSuffix(base, "/"),
		url.PathEscape(p.Label),
		url.PathEscape(p.Value),
		url.PathEscape(p.Color))
	if p.Logo != "" {
		u += "/" + url.PathEscape(p.Logo)
		if p.Style != "" {
			u += "/" + url.PathEscape(p.Style)
		}
	}
	return u
}

// ErrorURL returns the fixed fallback badge substituted by consumers when
// a badge image fails to load. Substitution is a presentation concern;
// the builder only publishes the well-known URL.
func ErrorURL(base string) string {
	return CustomURL(base, Params{Label: "error", Value: "unavailable", Color: "red"})
}

// Markdown returns an embeddable markdown snippet for the badge image.
func Markdown(p Params, imageURL string) string {
	p = p.withDefaults()
	return fmt.Sprintf("![%s](%s)", p.Label, imageURL)
}
