package palette

import (
	"testing"
)

const sampleCSS = `
:root {
  --brand-primary: #00a86b;
  --utility-blue-50: #eef6ff;
  --utility-blue-500: #0066cc;
  --utility-blue-900: #001a33;
  --utility-blue-light-400: #66aaff;
  --utility-gray-200: #e5e5e5;
  --text-primary: var(--utility-gray-200);
  --bg-primary: #101010;
  --border-primary: var(--utility-gray-200);
  --fg-primary: #fafafa;
  --error-500: #cc0000;
  --warning-500: #cc8800;
  --success-500: #00cc44;
  --alpha-black-50: rgba(0, 0, 0, 0.5);
  --shadow-md: 0 4px 8px rgba(0, 0, 0, 0.2);
  --mystery-token: #123456;
}
`

func TestParseCSS(t *testing.T) {
	colors := ParseCSS(sampleCSS)

	if len(colors) != 16 {
		t.Fatalf("Expected 16 parsed properties, got %d", len(colors))
	}

	direct, ok := colors["brand-primary"]
	if !ok || direct.Type != "color" || direct.Value != "#00a86b" {
		t.Errorf("Expected direct brand-primary color, got %+v", direct)
	}

	ref, ok := colors["text-primary"]
	if !ok || ref.Type != "reference" || ref.Reference != "utility-gray-200" {
		t.Errorf("Expected text-primary reference to utility-gray-200, got %+v", ref)
	}
}

func TestCategorize(t *testing.T) {
	cats := Categorize(ParseCSS(sampleCSS))

	if len(cats.Brand) != 1 {
		t.Errorf("Expected 1 brand color, got %d", len(cats.Brand))
	}
	if len(cats.Utility) != 5 {
		t.Errorf("Expected 5 utility colors, got %d", len(cats.Utility))
	}
	if len(cats.Semantic["text"]) != 1 || len(cats.Semantic["background"]) != 1 ||
		len(cats.Semantic["border"]) != 1 || len(cats.Semantic["foreground"]) != 1 {
		t.Errorf("Expected one semantic token per group, got %+v", cats.Semantic)
	}
	for _, fn := range []string{"error", "warning", "success"} {
		if len(cats.Functional[fn]) != 1 {
			t.Errorf("Expected 1 %s color, got %d", fn, len(cats.Functional[fn]))
		}
	}
	if len(cats.Alpha) != 1 || len(cats.Shadows) != 1 {
		t.Errorf("Expected 1 alpha and 1 shadow entry, got %d/%d", len(cats.Alpha), len(cats.Shadows))
	}
	if _, ok := cats.Uncategorized["mystery-token"]; !ok {
		t.Error("Expected mystery-token to land in uncategorized")
	}
}

func TestExtractFamilies(t *testing.T) {
	cats := Categorize(ParseCSS(sampleCSS))
	families := ExtractFamilies(cats.Utility)

	blue, ok := families["blue"]
	if !ok {
		t.Fatal("Expected blue family")
	}
	if len(blue) != 3 {
		t.Fatalf("Expected 3 blue shades, got %d", len(blue))
	}
	if blue[0].Shade != "50" || blue[1].Shade != "500" || blue[2].Shade != "900" {
		t.Errorf("Expected blue shades ordered 50/500/900, got %+v", blue)
	}

	// Compound family name from utility-blue-light-400
	if _, ok := families["blue-light"]; !ok {
		t.Error("Expected compound blue-light family")
	}
	if _, ok := families["gray"]; !ok {
		t.Error("Expected gray family")
	}
}

func TestBuildSummary(t *testing.T) {
	pal := Build(sampleCSS, "color-dark.css")

	if pal.Summary.TotalProperties != 16 {
		t.Errorf("Expected 16 total properties, got %d", pal.Summary.TotalProperties)
	}
	if pal.Summary.Categories["semantic"] != 4 {
		t.Errorf("Expected 4 semantic tokens, got %d", pal.Summary.Categories["semantic"])
	}
	if pal.Summary.Categories["functional"] != 3 {
		t.Errorf("Expected 3 functional tokens, got %d", pal.Summary.Categories["functional"])
	}
	if pal.Summary.FamilyCount != len(pal.Families) {
		t.Errorf("Summary family count %d does not match families %d", pal.Summary.FamilyCount, len(pal.Families))
	}
	if pal.SourceFile != "color-dark.css" {
		t.Errorf("Expected source file recorded, got %s", pal.SourceFile)
	}

	// Family names in summary are sorted
	names := pal.Summary.ColorFamilies
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("Expected sorted family names, got %v", names)
		}
	}
}
