package resolver

import "strings"

// Pattern tables driving intent classification and entity extraction.
// All matching is case-insensitive substring matching against the
// lowercased query; longer patterns carry more weight.

// Intent is the classified purpose of a query.
type Intent string

const (
	IntentAllAssets      Intent = "all_assets"
	IntentDocuments      Intent = "documents"
	IntentSalesMaterials Intent = "sales_materials"
	IntentTechnicalDocs  Intent = "technical_docs"
	IntentVisualAssets   Intent = "visual_assets"
	IntentCaseStudies    Intent = "case_studies"
	IntentColors         Intent = "colors"
	IntentColorFamilies  Intent = "color_families"
	IntentDesignSystem   Intent = "design_system"
)

// intentOrder fixes the tie-break between intents with equal scores:
// the earliest-declared intent wins. Relying on map iteration order
// here would make primary-intent selection nondeterministic.
var intentOrder = []Intent{
	IntentAllAssets,
	IntentDocuments,
	IntentSalesMaterials,
	IntentTechnicalDocs,
	IntentVisualAssets,
	IntentCaseStudies,
	IntentColors,
	IntentColorFamilies,
	IntentDesignSystem,
}

var intentPatterns = map[Intent][]string{
	IntentAllAssets:      {"everything", "all assets", "all materials", "complete set", "full package", "everything available"},
	IntentDocuments:      {"docs", "documentation", "papers", "materials", "content", "files", "pdfs"},
	IntentSalesMaterials: {"sales", "brief", "sheet", "1-pager", "1 pager", "one pager", "overview", "summary", "sales sheet"},
	IntentTechnicalDocs:  {"specs", "technical", "datasheet", "data sheet", "whitepaper", "white paper", "guide", "manual"},
	IntentVisualAssets:   {"logos", "images", "graphics", "branding", "visual", "brand assets"},
	IntentCaseStudies:    {"case study", "success story", "customer story", "case studies"},
	IntentColors:         {"colors", "color palette", "colour", "colours", "palette", "design tokens", "brand colors"},
	IntentColorFamilies:  {"blues", "reds", "greens", "grays", "greys", "oranges", "purples", "color family", "colour family"},
	IntentDesignSystem:   {"design system", "ui colors", "interface colors", "theme colors", "css variables"},
}

// IsColorIntent reports whether the intent is served by the palette
// subsystem rather than the asset ranker.
func (i Intent) IsColorIntent() bool {
	return i == IntentColors || i == IntentColorFamilies || i == IntentDesignSystem
}

// IsCrossProduct reports whether the intent supports global queries
// spanning every product when no product was named.
func (i Intent) IsCrossProduct() bool {
	switch i {
	case IntentAllAssets, IntentDocuments, IntentSalesMaterials, IntentTechnicalDocs:
		return true
	}
	return false
}

// isDocumentOriented reports whether the query is after documents; it
// gates the variant-preference rules.
func isDocumentOriented(scores map[Intent]IntentScore) bool {
	return scores[IntentDocuments].Score > 0 || scores[IntentSalesMaterials].Score > 0
}

// productAliases keeps products in a declared order so candidate
// collection is deterministic across runs.
type productAliases struct {
	Product string
	Aliases []string
}

var productPatterns = []productAliases{
	{"ciq", []string{"ciq", "company", "brand", "main"}},
	{"fuzzball", []string{"fuzzball", "fuzz ball", "workload", "hpc"}},
	{"warewulf", []string{"warewulf", "cluster", "provisioning"}},
	{"apptainer", []string{"apptainer", "container", "scientific"}},
	{"ascender", []string{"ascender", "automation", "ansible"}},
	{"bridge", []string{"bridge", "centos", "migration"}},
	{"support", []string{"support", "ciq support"}},
	{"rlc", []string{"rlc", "rocky linux commercial", "rocky linux"}},
	{"rlc-ai", []string{"rlc-ai", "rlc ai", "rocky linux ai"}},
	{"rlc-hardened", []string{"rlc-hardened", "rlc hardened", "rocky linux hardened"}},
	{"rlc-lts", []string{"rlc-lts", "rlc lts", "rocky linux lts", "rocky linux commercial lts", "long term support", "long-term support", "lts"}},
}

var backgroundPatterns = []struct {
	Background string
	Aliases    []string
}{
	{"light", []string{"light", "white", "light background"}},
	{"dark", []string{"dark", "black", "dark background"}},
}

var layoutPatterns = []struct {
	Layout  string
	Aliases []string
}{
	{"icon", []string{"symbol", "icon", "favicon", "app icon"}},
	{"horizontal", []string{"horizontal", "wide", "header", "lockup"}},
	{"vertical", []string{"vertical", "tall", "stacked"}},
	{"onecolor", []string{"1-color", "1 color", "one color", "onecolor"}},
	{"twocolor", []string{"2-color", "2 color", "two color", "twocolor"}},
	{"green", []string{"green", "accent"}},
}

// variantPreference prefers a specific product variant over its base
// product when the query intent matches. Adding a product family means
// adding a row here, not a new branch in the parser.
type variantPreference struct {
	Base        string
	Variant     string
	WhenIntents []Intent
}

var variantPreferences = []variantPreference{
	// Document queries naming the bare commercial product resolve to the
	// LTS variant, which is the one that carries documents.
	{Base: "rlc", Variant: "rlc-lts", WhenIntents: []Intent{IntentDocuments, IntentSalesMaterials}},
}

func (v variantPreference) applies(scores map[Intent]IntentScore) bool {
	for _, intent := range v.WhenIntents {
		if scores[intent].Score > 0 {
			return true
		}
	}
	return false
}

// Umbrella-brand disambiguation. A query naming the company together
// with portfolio context words gets a clarifying question instead of a
// guess, unless the query clearly wants the company logo itself.
const umbrellaProduct = "ciq"

var (
	umbrellaAliases = []string{"ciq", "company"}

	productContextPatterns = []string{
		"product", "products", "portfolio", "offerings", "solutions",
		"brands", "brand logos", "all logos", "available logos",
	}

	companyOnlyPatterns = []string{
		"ciq company logo", "main ciq logo", "ciq brand logo",
		"corporate logo", "company brand",
	}
)

// Document classification keyword sets shared by the scorer and the
// global query filter.
var (
	salesDocKeywords = []string{"brief", "overview", "summary", "sales"}
	techDocKeywords  = []string{"spec", "technical", "guide", "manual"}
)

// Color context patterns for the palette subsystem.
var colorTypePatterns = []struct {
	Type    string
	Aliases []string
}{
	{"brand_colors", []string{"brand", "primary", "accent", "company colors"}},
	{"semantic_colors", []string{"text", "background", "border", "foreground", "semantic"}},
	{"functional_colors", []string{"error", "warning", "success", "danger", "info"}},
	{"utility_colors", []string{"utility", "blue", "red", "green", "gray", "grey", "orange", "purple", "pink", "indigo", "yellow"}},
	{"theme_colors", []string{"dark mode", "light mode", "theme", "dark theme", "light theme"}},
}

var colorUsagePatterns = []struct {
	Usage   string
	Aliases []string
}{
	{"ui_elements", []string{"button", "input", "form", "card", "modal", "dropdown"}},
	{"text_colors", []string{"heading", "body text", "caption", "link", "disabled"}},
	{"state_colors", []string{"hover", "active", "focus", "disabled", "selected"}},
	{"feedback_colors", []string{"success", "error", "warning", "info", "danger"}},
}

var layoutDescriptions = map[string]string{
	"icon":       "Square symbol, perfect for favicons and app icons",
	"horizontal": "Wide format, great for headers and business cards",
	"vertical":   "Tall format, ideal for mobile and social media",
	"onecolor":   "Clean single-color company logo",
	"twocolor":   "Full-color company logo with green accent",
	"green":      "Green company logo for brand accent",
}

func containsAny(query string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(query, p) {
			return true
		}
	}
	return false
}
