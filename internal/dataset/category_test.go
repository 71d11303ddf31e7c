package dataset

import (
	"strings"
	"testing"
)

func TestDetectCategories(t *testing.T) {
	cases := []struct {
		genres string
		want   string
	}{
		{"hip hop, west coast hip hop", "Hip Hop/Rap"},
		{"rap metal", "Hip Hop/Rap; Rock/Metal"},
		{"moroccan rap", "Hip Hop/Rap; International"},
		{"HIP HOP", "Hip Hop/Rap"},
		{"r&b; soul", "R&B"},
		{"obscure microgenre", ""},
		{"", ""},
		{"  ", ""},
	}
	for _, c := range cases {
		if got := DetectCategories(c.genres); got != c.want {
			t.Errorf("DetectCategories(%q) = %q, want %q", c.genres, got, c.want)
		}
	}
}

func TestLoadDerivesCategories(t *testing.T) {
	// Harvested exports carry genres but no category column yet.
	csv := `name,genres
Kendrick Lamar,"hip hop, west coast hip hop"
Björk,"art pop; electronica"
Mystery Artist,obscure microgenre
`
	ds, err := Load(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	rec, _ := ds.Lookup("Kendrick Lamar")
	if rec.Categories != "Hip Hop/Rap" {
		t.Errorf("derived Categories = %q, want %q", rec.Categories, "Hip Hop/Rap")
	}
	rec, _ = ds.Lookup("Björk")
	if rec.Categories != "Electronic; Pop" {
		t.Errorf("derived Categories = %q, want %q", rec.Categories, "Electronic; Pop")
	}
	rec, _ = ds.Lookup("Mystery Artist")
	if rec.Categories != "" {
		t.Errorf("unknown genres should derive nothing, got %q", rec.Categories)
	}
}

func TestLoadKeepsExplicitCategories(t *testing.T) {
	csv := "name,genres,detected category\nMF DOOM,hip hop,Custom Category\n"
	ds, err := Load(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	rec, _ := ds.Lookup("MF DOOM")
	if rec.Categories != "Custom Category" {
		t.Errorf("explicit category overridden: %q", rec.Categories)
	}
}
