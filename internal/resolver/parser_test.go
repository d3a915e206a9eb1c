package resolver

import (
	"reflect"
	"testing"

	"brandfind/internal/inventory"
	"brandfind/internal/logging"
)

func TestParse_ProductDetection(t *testing.T) {
	r := newTestResolver(t, Options{})

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"direct name", "warewulf logo", "warewulf"},
		{"uppercase query", "WAREWULF Horizontal Logo", "warewulf"},
		{"alias", "hpc logos", "fuzzball"},
		{"no product", "some random words", ""},
		{"empty query", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := r.Parse(tt.query)
			if parsed.Product != tt.want {
				t.Errorf("Parse(%q).Product = %q, want %q", tt.query, parsed.Product, tt.want)
			}
		})
	}
}

func TestParse_LongerAliasWins(t *testing.T) {
	r := newTestResolver(t, Options{})

	// "rocky linux lts" (rlc-lts) contains "rocky linux" (rlc); the
	// longer alias must win.
	parsed := r.Parse("rocky linux lts logos")
	if parsed.Product != "rlc-lts" {
		t.Errorf("expected rlc-lts from longest alias, got %q", parsed.Product)
	}

	parsed = r.Parse("rocky linux logos")
	if parsed.Product != "rlc" {
		t.Errorf("expected rlc, got %q", parsed.Product)
	}
}

func TestParse_VariantPreferenceForDocuments(t *testing.T) {
	r := newTestResolver(t, Options{})

	// Document-oriented query naming only the base product resolves to
	// the variant that carries documents.
	parsed := r.Parse("rlc solution brief")
	if parsed.Product != "rlc-lts" {
		t.Errorf("expected redirect to rlc-lts, got %q", parsed.Product)
	}

	// Non-document query stays on the base product.
	parsed = r.Parse("rlc logos")
	if parsed.Product != "rlc" {
		t.Errorf("expected rlc for a logo query, got %q", parsed.Product)
	}
}

func TestParse_VariantPreferenceNeedsDocuments(t *testing.T) {
	logger, _ := logging.NewTestLogger()
	inv := &inventory.Inventory{
		Assets: map[string]map[string]inventory.Asset{
			"rlc": {
				"horizontal_black": logo("RLC", "horizontal", "black", "light"),
			},
			"rlc-lts": {
				"horizontal_black": logo("RLC-LTS", "horizontal", "black", "light"),
			},
		},
	}
	r := New(inv, nil, logger, Options{})

	// The variant exists but has no documents: no redirect.
	parsed := r.Parse("rlc solution brief")
	if parsed.Product != "rlc" {
		t.Errorf("expected rlc without a document-bearing variant, got %q", parsed.Product)
	}
}

func TestParse_BackgroundAndLayout(t *testing.T) {
	r := newTestResolver(t, Options{})

	tests := []struct {
		query      string
		background string
		layout     string
	}{
		{"warewulf horizontal logo on dark", "dark", "horizontal"},
		{"fuzzball icon for white slides", "light", "icon"},
		{"warewulf stacked logo", "", "vertical"},
		{"ciq twocolor logo", "", "twocolor"},
		{"warewulf logo", "", ""},
	}

	for _, tt := range tests {
		parsed := r.Parse(tt.query)
		if parsed.Background != tt.background {
			t.Errorf("Parse(%q).Background = %q, want %q", tt.query, parsed.Background, tt.background)
		}
		if parsed.Layout != tt.layout {
			t.Errorf("Parse(%q).Layout = %q, want %q", tt.query, parsed.Layout, tt.layout)
		}
	}
}

func TestParse_PrimaryIntentTieBreak(t *testing.T) {
	r := newTestResolver(t, Options{})

	// No intent evidence at all: every score is zero and the
	// first-declared category wins.
	parsed := r.Parse("warewulf")
	if parsed.PrimaryIntent != IntentAllAssets {
		t.Errorf("expected the first-declared intent on a zero-score tie, got %q", parsed.PrimaryIntent)
	}
}

func TestParse_ConfidenceAndScoresBounded(t *testing.T) {
	r := newTestResolver(t, Options{})

	queries := []string{
		"",
		"warewulf",
		"rlc-lts solution brief overview summary sales sheet",
		"show me everything all assets complete set full package",
		"warewulf horizontal logos for dark backgrounds",
		"random nonsense with no meaning",
	}

	for _, q := range queries {
		parsed := r.Parse(q)
		if parsed.Confidence < 0 || parsed.Confidence > 1 {
			t.Errorf("Parse(%q).Confidence = %f out of [0,1]", q, parsed.Confidence)
		}
		for intent, entry := range parsed.IntentScores {
			if entry.Score < 0 || entry.Score > 1 {
				t.Errorf("Parse(%q) intent %s score %f out of [0,1]", q, intent, entry.Score)
			}
		}
		if len(parsed.IntentScores) != len(intentOrder) {
			t.Errorf("Parse(%q) should score every declared intent", q)
		}
	}
}

func TestParse_UmbrellaDisambiguation(t *testing.T) {
	r := newTestResolver(t, Options{})

	tests := []struct {
		query string
		want  bool
	}{
		{"ciq product logos", true},
		{"ciq portfolio", true},
		{"ciq company logo", false},
		{"main ciq logo", false},
		{"ciq brand logos", false}, // company-only phrase matches as a substring
		{"warewulf logos", false},
	}

	for _, tt := range tests {
		parsed := r.Parse(tt.query)
		if parsed.NeedsDisambiguation != tt.want {
			t.Errorf("Parse(%q).NeedsDisambiguation = %v, want %v", tt.query, parsed.NeedsDisambiguation, tt.want)
		}
	}
}

func TestParse_ColorContext(t *testing.T) {
	r := newTestResolver(t, Options{})

	parsed := r.Parse("blues")
	if !parsed.ColorContext.HasColorIntent {
		t.Error("expected color intent for a family query")
	}
	if parsed.ColorContext.ColorFamily != "blue" {
		t.Errorf("expected family blue, got %q", parsed.ColorContext.ColorFamily)
	}

	parsed = r.Parse("brand colors")
	if parsed.ColorContext.ColorType != "brand_colors" {
		t.Errorf("expected brand_colors type, got %q", parsed.ColorContext.ColorType)
	}
	if parsed.PrimaryIntent != IntentColors {
		t.Errorf("expected colors intent, got %q", parsed.PrimaryIntent)
	}
}

func TestParse_Deterministic(t *testing.T) {
	r := newTestResolver(t, Options{})

	queries := []string{
		"warewulf horizontal logos for dark backgrounds",
		"rlc solution brief",
		"ciq product logos",
		"blues",
	}

	for _, q := range queries {
		first := r.Parse(q)
		for i := 0; i < 5; i++ {
			if got := r.Parse(q); !reflect.DeepEqual(first, got) {
				t.Fatalf("Parse(%q) not deterministic: %+v vs %+v", q, first, got)
			}
		}
	}
}
