package resolver

import (
	"fmt"
	"sort"
	"strings"

	"brandfind/internal/palette"
)

// Presentation limits keep color responses readable; they do not affect
// counts, which always reflect the full palette.
const (
	maxBrandColors       = 10
	maxTokensPerCategory = 5
	maxFunctionalTokens  = 3
	maxExampleShades     = 3
)

// ColorOverview is the aggregate block of a general color response.
type ColorOverview struct {
	TotalProperties int                `json:"total_properties"`
	ColorFamilies   int                `json:"color_families"`
	Categories      OverviewCategories `json:"categories"`
}

// OverviewCategories breaks the property count down by category.
type OverviewCategories struct {
	BrandColors      int `json:"brand_colors"`
	UtilityColors    int `json:"utility_colors"`
	SemanticTokens   int `json:"semantic_tokens"`
	FunctionalColors int `json:"functional_colors"`
}

// FamilySummary is one family's row in a families listing.
type FamilySummary struct {
	Family      string `json:"family"`
	ShadesCount int    `json:"shades_count"`
	Lightest    string `json:"lightest"`
	Darkest     string `json:"darkest"`
	Example     string `json:"example"`
}

// ShadeView is one shade rendered with its CSS property forms.
type ShadeView struct {
	Shade    string `json:"shade"`
	Property string `json:"property"`
	Value    string `json:"value"`
	CSS      string `json:"css,omitempty"`
}

// TokenView is one named color token with its resolved value.
type TokenView struct {
	Property string `json:"property"`
	Value    string `json:"value"`
	Type     string `json:"type,omitempty"`
	Usage    string `json:"usage,omitempty"`
}

// BrandColorsView lists the brand tokens.
type BrandColorsView struct {
	Count  int         `json:"count"`
	Colors []TokenView `json:"colors"`
	Note   string      `json:"note"`
}

// UtilityFamilyView summarizes one utility family with example shades.
type UtilityFamilyView struct {
	ShadesCount   int         `json:"shades_count"`
	Range         string      `json:"range"`
	ExampleShades []ShadeView `json:"example_shades"`
}

// DesignSystemView is the fixed-structure design-system summary.
type DesignSystemView struct {
	Theme       string                `json:"theme"`
	TotalTokens int                   `json:"total_tokens"`
	Structure   DesignSystemStructure `json:"structure"`
}

// DesignSystemStructure names the four token groups of the system.
type DesignSystemStructure struct {
	SemanticTokens   TokenGroup `json:"semantic_tokens"`
	BrandTokens      TokenGroup `json:"brand_tokens"`
	UtilityPalette   TokenGroup `json:"utility_palette"`
	FunctionalTokens TokenGroup `json:"functional_tokens"`
}

// TokenGroup is one group's count and description.
type TokenGroup struct {
	Count       int    `json:"count"`
	Families    int    `json:"families,omitempty"`
	Description string `json:"description"`
}

// UsageNotes explains how to consume the design-system tokens.
type UsageNotes struct {
	CSSVariables     string `json:"css_variables"`
	NamingConvention string `json:"naming_convention"`
}

// handleColorQuery dispatches color intents. Without a loaded palette
// every color query gets the same degraded answer.
func (r *Resolver) handleColorQuery(parsed ParsedQuery) Response {
	if r.pal == nil {
		return Response{
			Kind:       KindError,
			Message:    "Color data not loaded",
			Error:      "Color data not loaded",
			Suggestion: "Color palette information is currently unavailable. Please try again later.",
			Confidence: BandNone,
		}
	}

	switch parsed.PrimaryIntent {
	case IntentColorFamilies:
		return r.colorFamiliesResponse(parsed)
	case IntentDesignSystem:
		return r.designSystemResponse()
	default:
		return r.generalColorResponse(parsed)
	}
}

// generalColorResponse answers palette queries: either the requested
// token category, or a full overview with the families list.
func (r *Resolver) generalColorResponse(parsed ParsedQuery) Response {
	company := strings.ToUpper(umbrellaProduct)

	resp := Response{
		Kind:       KindColorOverview,
		Message:    fmt.Sprintf("Here is the %s color palette information:", company),
		Confidence: BandHigh,
	}

	switch parsed.ColorContext.ColorType {
	case "brand_colors":
		resp.Message = fmt.Sprintf("Here are the %s brand colors:", company)
		resp.BrandColors = r.brandColorsView()
	case "semantic_colors":
		resp.Message = "Here are the semantic color tokens:"
		resp.SemanticColors = r.semanticColorsView()
	case "functional_colors":
		resp.Message = "Here are the functional colors (error, warning, success):"
		resp.FunctionalColors = r.functionalColorsView()
	case "utility_colors":
		resp.Message = "Here are the utility color families:"
		resp.UtilityColors = r.utilityColorsView()
	default:
		resp.Overview = &ColorOverview{
			TotalProperties: r.pal.Summary.TotalProperties,
			ColorFamilies:   r.pal.Summary.FamilyCount,
			Categories: OverviewCategories{
				BrandColors:      r.pal.Summary.Categories["brand"],
				UtilityColors:    r.pal.Summary.Categories["utility"],
				SemanticTokens:   r.pal.Summary.Categories["semantic"],
				FunctionalColors: r.pal.Summary.Categories["functional"],
			},
		}
		resp.Families = r.familySummaries()
	}

	return resp
}

// colorFamiliesResponse lists every family, or expands the one named in
// the query.
func (r *Resolver) colorFamiliesResponse(parsed ParsedQuery) Response {
	if family := parsed.ColorContext.ColorFamily; family != "" {
		if shades := r.pal.Family(family); shades != nil {
			return r.colorFamilyResponse(family, shades)
		}
	}

	return Response{
		Kind:          KindColorFamilies,
		Message:       fmt.Sprintf("Here are all %d color families in the %s design system:", len(r.pal.Families), strings.ToUpper(umbrellaProduct)),
		Families:      r.familySummaries(),
		TotalFamilies: len(r.pal.Families),
		Confidence:    BandHigh,
	}
}

// colorFamilyResponse expands a single family into its full shade ramp
// with ready-to-paste CSS forms.
func (r *Resolver) colorFamilyResponse(family string, shades []palette.Shade) Response {
	views := make([]ShadeView, 0, len(shades))
	for _, shade := range shades {
		views = append(views, ShadeView{
			Shade:    shade.Shade,
			Property: "--" + shade.Property,
			Value:    shade.Value,
			CSS:      fmt.Sprintf("var(--%s)", shade.Property),
		})
	}

	return Response{
		Kind:        KindColorFamily,
		Message:     fmt.Sprintf("Here are all shades in the %s color family:", family),
		Family:      family,
		Shades:      views,
		TotalShades: len(shades),
		Usage:       fmt.Sprintf("Use these %s colors for illustrations, accents, and custom components", family),
		Confidence:  BandHigh,
	}
}

// designSystemResponse is the fixed structural summary of the token
// system.
func (r *Resolver) designSystemResponse() Response {
	company := strings.ToUpper(umbrellaProduct)
	cats := r.pal.Summary.Categories

	return Response{
		Kind:    KindDesignSystem,
		Message: fmt.Sprintf("Here is the complete %s design system color information:", company),
		DesignSystem: &DesignSystemView{
			Theme:       "dark",
			TotalTokens: r.pal.Summary.TotalProperties,
			Structure: DesignSystemStructure{
				SemanticTokens: TokenGroup{
					Count:       cats["semantic"],
					Description: "Role-based tokens (text-, bg-, border-, fg-)",
				},
				BrandTokens: TokenGroup{
					Count:       cats["brand"],
					Description: fmt.Sprintf("%s brand color tokens", company),
				},
				UtilityPalette: TokenGroup{
					Count:       cats["utility"],
					Families:    len(r.pal.Families),
					Description: "Complete utility color palette",
				},
				FunctionalTokens: TokenGroup{
					Count:       cats["functional"],
					Description: "Error, warning, and success colors",
				},
			},
		},
		UsageNotes: &UsageNotes{
			CSSVariables:     "All colors are available as CSS custom properties (--property-name)",
			NamingConvention: "Semantic tokens for UI, utility colors for illustrations and customization",
		},
		Confidence: BandHigh,
	}
}

func (r *Resolver) brandColorsView() *BrandColorsView {
	brand := r.pal.Categories.Brand

	tokens := make([]TokenView, 0, len(brand))
	for _, prop := range sortedKeys(brand) {
		info := brand[prop]
		tokens = append(tokens, TokenView{
			Property: "--" + prop,
			Value:    info.Resolved(),
			Type:     typeOr(info.Type, "unknown"),
		})
	}
	if len(tokens) > maxBrandColors {
		tokens = tokens[:maxBrandColors]
	}

	return &BrandColorsView{
		Count:  len(brand),
		Colors: tokens,
		Note:   fmt.Sprintf("Brand colors maintain %s visual identity across all interfaces", strings.ToUpper(umbrellaProduct)),
	}
}

func (r *Resolver) semanticColorsView() map[string][]TokenView {
	formatted := make(map[string][]TokenView, len(r.pal.Categories.Semantic))
	for _, category := range sortedKeys(r.pal.Categories.Semantic) {
		colors := r.pal.Categories.Semantic[category]

		var tokens []TokenView
		for _, prop := range sortedKeys(colors) {
			if len(tokens) == maxTokensPerCategory {
				break
			}
			tokens = append(tokens, TokenView{
				Property: "--" + prop,
				Value:    colors[prop].Resolved(),
				Usage:    semanticUsage(prop),
			})
		}
		formatted[category] = tokens
	}
	return formatted
}

func (r *Resolver) functionalColorsView() map[string][]TokenView {
	formatted := make(map[string][]TokenView, len(r.pal.Categories.Functional))
	for _, funcType := range sortedKeys(r.pal.Categories.Functional) {
		colors := r.pal.Categories.Functional[funcType]

		var tokens []TokenView
		for _, prop := range sortedKeys(colors) {
			if len(tokens) == maxFunctionalTokens {
				break
			}
			tokens = append(tokens, TokenView{
				Property: "--" + prop,
				Value:    colors[prop].Resolved(),
				Usage:    fmt.Sprintf("%s state indication", titleCase(funcType)),
			})
		}
		formatted[funcType] = tokens
	}
	return formatted
}

func (r *Resolver) utilityColorsView() map[string]UtilityFamilyView {
	formatted := make(map[string]UtilityFamilyView, len(r.pal.Families))
	for _, family := range r.pal.FamilyNames() {
		shades := r.pal.Families[family]

		view := UtilityFamilyView{
			ShadesCount: len(shades),
			Range:       "N/A",
		}
		if len(shades) > 0 {
			view.Range = fmt.Sprintf("%s-%s", shades[0].Shade, shades[len(shades)-1].Shade)
		}
		for i, shade := range shades {
			if i == maxExampleShades {
				break
			}
			view.ExampleShades = append(view.ExampleShades, ShadeView{
				Shade:    shade.Shade,
				Property: "--" + shade.Property,
				Value:    shade.Value,
			})
		}

		formatted[family] = view
	}
	return formatted
}

// familySummaries lists every family with its shade range, sorted by
// family name.
func (r *Resolver) familySummaries() []FamilySummary {
	summaries := make([]FamilySummary, 0, len(r.pal.Families))
	for _, family := range r.pal.FamilyNames() {
		shades := r.pal.Families[family]

		summary := FamilySummary{
			Family:      family,
			ShadesCount: len(shades),
			Lightest:    "N/A",
			Darkest:     "N/A",
			Example:     fmt.Sprintf("--utility-%s", family),
		}
		if len(shades) > 0 {
			summary.Lightest = shades[0].Shade
			summary.Darkest = shades[len(shades)-1].Shade
			summary.Example = fmt.Sprintf("--utility-%s-500", family)
		}

		summaries = append(summaries, summary)
	}
	return summaries
}

// semanticUsage describes what a semantic token is for.
func semanticUsage(prop string) string {
	switch prop {
	case "text-primary":
		return "Primary text content"
	case "text-secondary":
		return "Secondary text, captions"
	case "text-tertiary":
		return "Tertiary text, placeholders"
	case "bg-primary":
		return "Main background color"
	case "bg-secondary":
		return "Secondary background, cards"
	case "border-primary":
		return "Primary border color"
	case "fg-primary":
		return "Primary foreground elements"
	}
	return "UI element styling"
}

func typeOr(t, fallback string) string {
	if t != "" {
		return t
	}
	return fallback
}

// sortedKeys returns a map's keys in sorted order, for deterministic
// response rendering.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
