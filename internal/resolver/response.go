package resolver

import (
	"fmt"
	"strings"

	"brandfind/internal/inventory"
)

// Band is the coarse confidence classification attached to every
// response.
type Band string

const (
	BandHigh       Band = "high"
	BandMedium     Band = "medium"
	BandLow        Band = "low"
	BandNone       Band = "none"
	BandClarifying Band = "clarifying"
)

// bandFor converts a numeric confidence into its band.
func bandFor(score float64) Band {
	switch {
	case score >= 0.8:
		return BandHigh
	case score >= 0.4:
		return BandMedium
	default:
		return BandLow
	}
}

// Kind tags the response shape. Each shape has its own required fields;
// every shape carries at least Message and Confidence.
type Kind string

const (
	KindDirectAsset        Kind = "direct_asset"
	KindAssetList          Kind = "asset_list"
	KindClarifyingQuestion Kind = "clarifying_question"
	KindMenu               Kind = "menu"
	KindGlobalGrouped      Kind = "global_grouped"
	KindGuided             Kind = "guided"
	KindNoMatch            Kind = "no_match"
	KindColorOverview      Kind = "colors"
	KindColorFamilies      Kind = "color_families"
	KindColorFamily        Kind = "color_family"
	KindDesignSystem       Kind = "design_system"
	KindError              Kind = "error"
)

// AssetView is the presentation form of an asset inside a response.
type AssetView struct {
	URL         string  `json:"url"`
	Filename    string  `json:"filename"`
	Type        string  `json:"type,omitempty"`
	DocType     string  `json:"doc_type,omitempty"`
	Layout      string  `json:"layout,omitempty"`
	Background  string  `json:"background,omitempty"`
	Description string  `json:"description,omitempty"`
	Score       float64 `json:"score,omitempty"`
	Reason      string  `json:"reason,omitempty"`
	Product     string  `json:"product,omitempty"`
}

// Option is one choice offered by a clarifying question.
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// ProductGroup is one product's slice of a global grouped response.
type ProductGroup struct {
	Product string      `json:"product"`
	Count   int         `json:"count"`
	Assets  []AssetView `json:"assets"`
}

// LayoutOption is one layout group in a guided response, with a
// representative example asset.
type LayoutOption struct {
	Layout         string `json:"layout"`
	ExampleURL     string `json:"example_url"`
	Count          int    `json:"count"`
	Description    string `json:"description"`
	BackgroundNote string `json:"background_note,omitempty"`
}

// BackgroundOption describes a background choice in a guided response.
type BackgroundOption struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

// AssetCollection is a counted asset list embedded in a response.
type AssetCollection struct {
	Count  int         `json:"count"`
	Assets []AssetView `json:"assets"`
}

// AlsoAvailable points out the other asset type when a query focused on
// one of them.
type AlsoAvailable struct {
	Message string      `json:"message"`
	Sample  []AssetView `json:"sample,omitempty"`
}

// Response is the tagged union of every answer shape the resolver can
// produce. Fields irrelevant to a shape stay zero and are omitted from
// the JSON encoding.
type Response struct {
	Kind       Kind   `json:"type,omitempty"`
	Message    string `json:"message"`
	Confidence Band   `json:"confidence"`

	Product    string     `json:"product,omitempty"`
	Asset      *AssetView `json:"asset,omitempty"`
	Reason     string     `json:"reason,omitempty"`
	Assets     []AssetView `json:"assets,omitempty"`
	Suggestion string     `json:"suggestion,omitempty"`

	Question string   `json:"question,omitempty"`
	Options  []Option `json:"options,omitempty"`
	Help     string   `json:"help,omitempty"`
	Examples []string `json:"examples,omitempty"`

	AvailableProducts []string `json:"available_products,omitempty"`

	Logos     *AssetCollection `json:"logos,omitempty"`
	Documents *AssetCollection `json:"documents,omitempty"`
	Also      *AlsoAvailable   `json:"also_available,omitempty"`

	TotalCount         int            `json:"total_count,omitempty"`
	ProductsWithAssets int            `json:"products_with_assets,omitempty"`
	ByProduct          []ProductGroup `json:"by_product,omitempty"`
	Summary            string         `json:"summary,omitempty"`

	LayoutOptions      []LayoutOption     `json:"layout_options,omitempty"`
	BackgroundQuestion string             `json:"background_question,omitempty"`
	BackgroundOptions  []BackgroundOption `json:"background_options,omitempty"`

	Error string `json:"error,omitempty"`

	// Color shapes
	Overview         *ColorOverview        `json:"overview,omitempty"`
	Families         []FamilySummary       `json:"families,omitempty"`
	TotalFamilies    int                   `json:"total_families,omitempty"`
	Family           string                `json:"family,omitempty"`
	Shades           []ShadeView           `json:"shades,omitempty"`
	TotalShades      int                   `json:"total_shades,omitempty"`
	Usage            string                `json:"usage,omitempty"`
	DesignSystem     *DesignSystemView     `json:"design_system,omitempty"`
	BrandColors      *BrandColorsView      `json:"brand_colors,omitempty"`
	SemanticColors   map[string][]TokenView `json:"semantic_colors,omitempty"`
	FunctionalColors map[string][]TokenView `json:"functional_colors,omitempty"`
	UtilityColors    map[string]UtilityFamilyView `json:"utility_colors,omitempty"`
	UsageNotes       *UsageNotes           `json:"usage_notes,omitempty"`
}

// assetView renders an asset for inclusion in a response, with a
// description matching its type.
func assetView(asset inventory.Asset) AssetView {
	view := AssetView{
		URL:      asset.URL,
		Filename: asset.Filename,
		Type:     asset.Type,
	}

	if asset.IsDocument() {
		view.DocType = docTypeOr(asset, "Document")
		view.Description = fmt.Sprintf("%s - %s", titleCase(view.DocType), asset.Filename)
	} else {
		view.Layout = layoutOr(asset, "unknown")
		view.Background = backgroundOr(asset, "any")
		view.Description = fmt.Sprintf("%s logo for %s backgrounds", titleCase(view.Layout), view.Background)
	}

	return view
}

// assetViews renders a list of assets.
func assetViews(assets []inventory.Asset) []AssetView {
	views := make([]AssetView, 0, len(assets))
	for _, asset := range assets {
		views = append(views, assetView(asset))
	}
	return views
}

// scoredView renders a scored match including score and reasoning.
func scoredView(m ScoredMatch) AssetView {
	view := assetView(m.Asset)
	view.Score = round2(m.Score)
	view.Reason = m.Reason
	return view
}

func backgroundOr(asset inventory.Asset, fallback string) string {
	if asset.Background != "" {
		return asset.Background
	}
	return fallback
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

// errorResponse builds the uniform error shape: explicit message plus a
// human-readable suggestion, never a bare failure.
func errorResponse(message, suggestion string) Response {
	return Response{
		Kind:       KindError,
		Message:    message,
		Error:      message,
		Suggestion: suggestion,
		Confidence: BandNone,
	}
}
