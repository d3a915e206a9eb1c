package resolver

import (
	"strings"
	"testing"

	"brandfind/internal/logging"
)

func TestFind_ColorsUnavailable(t *testing.T) {
	logger, _ := logging.NewTestLogger()
	r := New(testInventory(t), nil, logger, Options{})

	for _, q := range []string{"brand colors", "color palette", "design system colors", "blues"} {
		resp := r.Find(q)
		if resp.Kind != KindError {
			t.Errorf("Find(%q): expected error shape without a palette, got %q", q, resp.Kind)
		}
		if resp.Error != "Color data not loaded" {
			t.Errorf("Find(%q): unexpected error %q", q, resp.Error)
		}
		if resp.Suggestion == "" {
			t.Errorf("Find(%q): degraded response must carry a suggestion", q)
		}
	}
}

func TestFind_ColorOverview(t *testing.T) {
	r := newTestResolver(t, Options{})

	resp := r.Find("color palette")
	if resp.Kind != KindColorOverview {
		t.Fatalf("expected color overview, got %q", resp.Kind)
	}
	if resp.Overview == nil {
		t.Fatal("overview missing")
	}
	if resp.Overview.TotalProperties != 8 || resp.Overview.ColorFamilies != 2 {
		t.Errorf("unexpected overview counts: %+v", resp.Overview)
	}
	if resp.Overview.Categories.BrandColors != 2 || resp.Overview.Categories.UtilityColors != 4 {
		t.Errorf("unexpected category counts: %+v", resp.Overview.Categories)
	}

	// Families sorted by name, with shade extremes from the ordered ramp.
	if len(resp.Families) != 2 {
		t.Fatalf("expected 2 family summaries, got %d", len(resp.Families))
	}
	blue := resp.Families[0]
	if blue.Family != "blue" || blue.Lightest != "100" || blue.Darkest != "900" {
		t.Errorf("unexpected blue summary: %+v", blue)
	}
	if blue.Example != "--utility-blue-500" {
		t.Errorf("unexpected example property: %q", blue.Example)
	}
	if resp.Families[1].Family != "green" {
		t.Errorf("families not sorted: %+v", resp.Families)
	}
}

func TestFind_ColorFamilyDetail(t *testing.T) {
	r := newTestResolver(t, Options{})

	resp := r.Find("blues")
	if resp.Kind != KindColorFamily {
		t.Fatalf("expected family detail, got %q", resp.Kind)
	}
	if resp.Family != "blue" || resp.TotalShades != 3 {
		t.Errorf("unexpected family response: family=%q total=%d", resp.Family, resp.TotalShades)
	}

	first := resp.Shades[0]
	if first.Shade != "100" {
		t.Errorf("shades not ascending: first is %q", first.Shade)
	}
	if first.Property != "--utility-blue-100" {
		t.Errorf("property missing CSS prefix: %q", first.Property)
	}
	if first.CSS != "var(--utility-blue-100)" {
		t.Errorf("unexpected css form: %q", first.CSS)
	}
	if !strings.Contains(resp.Usage, "blue") {
		t.Errorf("usage note should name the family: %q", resp.Usage)
	}
}

func TestFind_ColorFamiliesList(t *testing.T) {
	r := newTestResolver(t, Options{})

	resp := r.Find("color family")
	if resp.Kind != KindColorFamilies {
		t.Fatalf("expected families list, got %q", resp.Kind)
	}
	if resp.TotalFamilies != 2 || len(resp.Families) != 2 {
		t.Errorf("expected 2 families, got total=%d len=%d", resp.TotalFamilies, len(resp.Families))
	}
}

func TestFind_DesignSystem(t *testing.T) {
	r := newTestResolver(t, Options{})

	resp := r.Find("css variables")
	if resp.Kind != KindDesignSystem {
		t.Fatalf("expected design system response, got %q", resp.Kind)
	}
	ds := resp.DesignSystem
	if ds == nil {
		t.Fatal("design system block missing")
	}
	if ds.Theme != "dark" || ds.TotalTokens != 8 {
		t.Errorf("unexpected design system header: %+v", ds)
	}
	if ds.Structure.UtilityPalette.Families != 2 {
		t.Errorf("expected 2 utility families, got %d", ds.Structure.UtilityPalette.Families)
	}
	if resp.UsageNotes == nil || resp.UsageNotes.CSSVariables == "" {
		t.Error("usage notes missing")
	}
}

func TestFind_BrandColors(t *testing.T) {
	r := newTestResolver(t, Options{})

	resp := r.Find("brand colors")
	if resp.Kind != KindColorOverview {
		t.Fatalf("expected colors response, got %q", resp.Kind)
	}
	bc := resp.BrandColors
	if bc == nil {
		t.Fatal("brand colors block missing")
	}
	if bc.Count != 2 || len(bc.Colors) != 2 {
		t.Errorf("unexpected brand color counts: %+v", bc)
	}
	// Sorted by property name; references resolve to the referenced
	// property.
	if bc.Colors[0].Property != "--brand-primary" || bc.Colors[0].Value != "#229922" {
		t.Errorf("unexpected first brand color: %+v", bc.Colors[0])
	}
	if bc.Colors[1].Value != "utility-green-500" {
		t.Errorf("reference should resolve to referenced property: %+v", bc.Colors[1])
	}
}

func TestFind_FunctionalColors(t *testing.T) {
	r := newTestResolver(t, Options{})

	resp := r.Find("error and warning colors")
	if resp.Kind != KindColorOverview {
		t.Fatalf("expected colors response, got %q", resp.Kind)
	}
	fc := resp.FunctionalColors
	if fc == nil {
		t.Fatal("functional colors block missing")
	}
	tokens := fc["error"]
	if len(tokens) != 1 || tokens[0].Property != "--utility-error" {
		t.Errorf("unexpected error tokens: %+v", tokens)
	}
	if !strings.Contains(tokens[0].Usage, "Error") {
		t.Errorf("usage should name the state: %q", tokens[0].Usage)
	}
}
