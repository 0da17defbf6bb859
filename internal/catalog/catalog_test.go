package catalog

import (
	"testing"

	"github.com/zenv-lang/zenvhub/internal/core"
)

func samplePackages() []core.Package {
	return []core.Package{
		{Name: "my-db-tool", Version: "1.2.0", Description: "CLI for database dumps", Author: "ada"},
		{Name: "webkit", Version: "0.4.1", Description: "HTTP helpers", Author: "grace"},
		{Name: "mathx", Version: "2.0.0", Description: "extended math", Author: "Databyte"},
	}
}

func TestRecent(t *testing.T) {
	pkgs := samplePackages()

	got := Recent(pkgs, 5)
	if len(got) != 3 {
		t.Fatalf("Recent(5) on 3 packages returned %d entries", len(got))
	}
	for i := range pkgs {
		if got[i].Name != pkgs[i].Name {
			t.Errorf("Recent changed order at %d: got %q, want %q", i, got[i].Name, pkgs[i].Name)
		}
	}

	eight := make([]core.Package, 8)
	for i := range eight {
		eight[i] = core.Package{Name: string(rune('a' + i))}
	}
	got = Recent(eight, 5)
	if len(got) != 5 {
		t.Fatalf("Recent(5) on 8 packages returned %d entries", len(got))
	}
	if got[0].Name != "a" || got[4].Name != "e" {
		t.Errorf("Recent(5) = %v, want first five in order", got)
	}

	if got := Recent(eight, -1); len(got) != 0 {
		t.Errorf("Recent(-1) returned %d entries, want 0", len(got))
	}
}

func TestSearch(t *testing.T) {
	pkgs := samplePackages()

	if got := Search(pkgs, ""); len(got) != len(pkgs) {
		t.Errorf("Search(\"\") returned %d entries, want %d", len(got), len(pkgs))
	}

	if got := Search(pkgs, "zz-no-match"); len(got) != 0 {
		t.Errorf("Search(no match) returned %d entries, want 0", len(got))
	}

	// Case-insensitive, matches name, description, and author.
	got := Search(pkgs, "DB")
	names := map[string]bool{}
	for _, p := range got {
		names[p.Name] = true
	}
	if !names["my-db-tool"] {
		t.Errorf("Search(\"DB\") missed my-db-tool (name match): %v", got)
	}
	if !names["mathx"] {
		t.Errorf("Search(\"DB\") missed mathx (author Databyte): %v", got)
	}

	if got := Search(pkgs, "http"); len(got) != 1 || got[0].Name != "webkit" {
		t.Errorf("Search(\"http\") = %v, want webkit via description", got)
	}
}

func TestFind(t *testing.T) {
	pkgs := samplePackages()
	if p := Find(pkgs, "webkit"); p == nil || p.Version != "0.4.1" {
		t.Errorf("Find(webkit) = %v", p)
	}
	if p := Find(pkgs, "web"); p != nil {
		t.Errorf("Find requires exact match, got %v for %q", p, "web")
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{-10, "0 Bytes"},
		{1, "1.00 Bytes"},
		{512, "512.00 Bytes"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
		{5 * 1024 * 1024 * 1024, "5.00 GB"},
		{3 * 1024 * 1024 * 1024 * 1024, "3072.00 GB"}, // clamped at GB
	}
	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestPackageURL(t *testing.T) {
	p := core.Package{Name: "my-tool", Version: "1.2.0"}
	if got := PackageURL(p); got != "pkg:zenv/my-tool@1.2.0" {
		t.Errorf("PackageURL = %q", got)
	}
}

func TestParseRef(t *testing.T) {
	tests := []struct {
		ref         string
		wantName    string
		wantVersion string
		wantErr     bool
	}{
		{"my-tool@1.2.0", "my-tool", "1.2.0", false},
		{"my-tool", "my-tool", "", false},
		{"pkg:zenv/my-tool@1.2.0", "my-tool", "1.2.0", false},
		{"", "", "", true},
		{"pkg:", "", "", true},
	}
	for _, tt := range tests {
		name, version, err := ParseRef(tt.ref)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRef(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if name != tt.wantName || version != tt.wantVersion {
			t.Errorf("ParseRef(%q) = (%q, %q), want (%q, %q)",
				tt.ref, name, version, tt.wantName, tt.wantVersion)
		}
	}
}

func TestValidLicense(t *testing.T) {
	tests := []struct {
		expr string
		want bool
	}{
		{"", true},
		{"MIT", true},
		{"Apache-2.0", true},
		{"MIT OR Apache-2.0", true},
		{"Not A License", false},
	}
	for _, tt := range tests {
		if got := ValidLicense(tt.expr); got != tt.want {
			t.Errorf("ValidLicense(%q) = %v, want %v", tt.expr, got, tt.want)
		}
	}
}
