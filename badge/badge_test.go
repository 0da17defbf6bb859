package badge

import (
	"net/url"
	"strings"
	"testing"
)

const base = "https://zenv-hub.onrender.com"

func TestCustomURL_Defaults(t *testing.T) {
	got := CustomURL(base, Params{})
	want := base + "/badge/custom/zenv/1.0.0/blue"
	if got != want {
		t.Errorf("CustomURL with empty params = %q, want %q", got, want)
	}
}

func TestCustomURL_NoTrailingSeparator(t *testing.T) {
	got := CustomURL(base, Params{Label: "build", Value: "passing", Color: "green"})
	if strings.HasSuffix(got, "/") {
		t.Errorf("URL has trailing separator: %q", got)
	}
	if strings.Contains(got, "//badge") {
		t.Errorf("URL has doubled separator: %q", got)
	}
}

func TestCustomURL_Logo(t *testing.T) {
	got := CustomURL(base, Params{Label: "build", Value: "ok", Color: "green", Logo: "zenv"})
	want := base + "/badge/custom/build/ok/green/zenv"
	if got != want {
		t.Errorf("CustomURL = %q, want %q", got, want)
	}
}

func TestCustomURL_EscapingRoundTrip(t *testing.T) {
	tests := []struct {
		label, value, logo string
	}{
		{"C++ / Go", "v1.0 beta", "my logo.png"},
		{"100%", "a&b", "p?q"},
		{"läbel", "wert", ""},
		{"a#b", "c/d", "e f"},
	}

	for _, tt := range tests {
		got := CustomURL(base, Params{Label: tt.label, Value: tt.value, Color: "blue", Logo: tt.logo})

		rest := strings.TrimPrefix(got, base+"/badge/custom/")
		segs := strings.Split(rest, "/")
		wantSegs := 3
		if tt.logo != "" {
			wantSegs = 4
		}
		if len(segs) != wantSegs {
			t.Fatalf("URL %q split into %d segments, want %d", got, len(segs), wantSegs)
		}

		label, err := url.PathUnescape(segs[0])
		if err != nil || label != tt.label {
			t.Errorf("label round-trip = %q (%v), want %q", label, err, tt.label)
		}
		value, err := url.PathUnescape(segs[1])
		if err != nil || value != tt.value {
			t.Errorf("value round-trip = %q (%v), want %q", value, err, tt.value)
		}
		if tt.logo != "" {
			logo, err := url.PathUnescape(segs[3])
			if err != nil || logo != tt.logo {
				t.Errorf("logo round-trip = %q (%v), want %q", logo, err, tt.logo)
			}
		}
	}
}

func TestShieldsURL_StyleRequiresLogo(t *testing.T) {
	// A style with no logo would shift into the logo position; it is
	// dropped instead.
	got := ShieldsURL(base, Params{Label: "dl", Value: "12", Color: "blue", Style: "flat"})
	want := base + "/badge/shields/dl/12/blue"
	if got != want {
		t.Errorf("ShieldsURL without logo = %q, want %q", got, want)
	}
}

func TestShieldsURL_LogoAndStyle(t *testing.T) {
	got := ShieldsURL(base, Params{Label: "dl", Value: "12", Color: "blue", Logo: "zenv", Style: "flat-square"})
	want := base + "/badge/shields/dl/12/blue/zenv/flat-square"
	if got != want {
		t.Errorf("ShieldsURL = %q, want %q", got, want)
	}
}

func TestBuild_TotalOnAnyInput(t *testing.T) {
	// Every input combination must produce a parseable URL.
	inputs := []Params{
		{},
		{Label: ""},
		{Value: " "},
		{Label: "///", Value: "%%%", Color: "", Logo: "???", Style: "###"},
	}
	for _, p := range inputs {
		for _, u := range []string{CustomURL(base, p), ShieldsURL(base, p)} {
			if _, err := url.Parse(u); err != nil {
				t.Errorf("Params %+v produced unparseable URL %q: %v", p, u, err)
			}
		}
	}
}

func TestErrorURL(t *testing.T) {
	got := ErrorURL(base)
	want := base + "/badge/custom/error/unavailable/red"
	if got != want {
		t.Errorf("ErrorURL = %q, want %q", got, want)
	}
}

func TestMarkdown(t *testing.T) {
	p := Params{Label: "build", Value: "ok"}
	img := CustomURL(base, p)
	got := Markdown(p, img)
	want := "![build](" + img + ")"
	if got != want {
		t.Errorf("Markdown = %q, want %q", got, want)
	}
}
