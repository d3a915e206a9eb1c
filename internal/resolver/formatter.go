package resolver

import (
	"fmt"
	"strings"

	"brandfind/internal/inventory"
)

// classification buckets matched assets by what kind of request they
// can serve.
type classification struct {
	all       []inventory.Asset
	logos     []inventory.Asset
	documents []inventory.Asset
	sales     []inventory.Asset
	technical []inventory.Asset
}

func classifyAssets(assets []inventory.Asset) classification {
	var c classification
	c.all = assets

	for _, asset := range assets {
		if asset.IsDocument() {
			c.documents = append(c.documents, asset)
			if matchesDocKeywords(asset, salesDocKeywords) {
				c.sales = append(c.sales, asset)
			} else if matchesDocKeywords(asset, techDocKeywords) {
				c.technical = append(c.technical, asset)
			}
		} else {
			c.logos = append(c.logos, asset)
		}
	}

	return c
}

// formatResponse is the decision tree over confidence bands and match
// cardinality for a resolved product.
func (r *Resolver) formatResponse(matches []ScoredMatch, parsed ParsedQuery) Response {
	if len(matches) == 0 {
		return Response{
			Kind:       KindNoMatch,
			Message:    fmt.Sprintf("No %s assets found matching your criteria.", parsed.Product),
			Confidence: BandNone,
		}
	}

	if parsed.NeedsDisambiguation {
		return r.disambiguationResponse()
	}

	assets := make([]inventory.Asset, 0, len(matches))
	for _, m := range matches {
		assets = append(assets, m.Asset)
	}
	classified := classifyAssets(assets)

	switch parsed.PrimaryIntent {
	case IntentAllAssets:
		return r.formatComprehensive(classified, parsed)
	case IntentDocuments, IntentSalesMaterials:
		return r.formatDocumentFocused(classified, parsed)
	default:
		return r.formatRanked(matches, parsed)
	}
}

// formatComprehensive answers "show me everything" requests grouped by
// asset type.
func (r *Resolver) formatComprehensive(c classification, parsed ParsedQuery) Response {
	productName := strings.ToUpper(parsed.Product)

	resp := Response{
		Kind:       KindAssetList,
		Message:    fmt.Sprintf("Here are all available %s assets:", productName),
		Confidence: BandHigh,
		Product:    parsed.Product,
	}

	if len(c.logos) > 0 {
		resp.Logos = &AssetCollection{
			Count:  len(c.logos),
			Assets: assetViews(r.capAssets(c.logos, 6)),
		}
	}
	if len(c.documents) > 0 {
		resp.Documents = &AssetCollection{
			Count:  len(c.documents),
			Assets: assetViews(c.documents),
		}
	}

	resp.Summary = fmt.Sprintf("Found %d total assets (%d logos, %d documents)",
		len(c.all), len(c.logos), len(c.documents))

	return resp
}

// formatDocumentFocused answers document and sales-material requests,
// falling back to logos when the product has no documents.
func (r *Resolver) formatDocumentFocused(c classification, parsed ParsedQuery) Response {
	productName := strings.ToUpper(parsed.Product)

	if len(c.documents) == 0 {
		return Response{
			Kind:    KindAssetList,
			Message: fmt.Sprintf("No documents found for %s, but I have logos available:", productName),
			Logos: &AssetCollection{
				Count:  len(c.logos),
				Assets: assetViews(r.capAssets(c.logos, 3)),
			},
			Suggestion: fmt.Sprintf("Try asking for '%s logos' or check if documents are available for other products.", productName),
			Confidence: BandMedium,
		}
	}

	intentLabel := "documents"
	if parsed.PrimaryIntent == IntentSalesMaterials {
		intentLabel = "sales materials"
	}

	resp := Response{
		Kind:    KindAssetList,
		Message: fmt.Sprintf("Here are the %s %s I found:", productName, intentLabel),
		Documents: &AssetCollection{
			Count:  len(c.documents),
			Assets: assetViews(c.documents),
		},
		Confidence: BandHigh,
	}

	if len(c.logos) > 0 {
		resp.Also = &AlsoAvailable{
			Message: fmt.Sprintf("I also have %d %s logos available if needed.", len(c.logos), productName),
			Sample:  assetViews(r.capAssets(c.logos, 2)),
		}
	}

	return resp
}

// formatRanked is the band-driven policy for logo-oriented and mixed
// queries.
func (r *Resolver) formatRanked(matches []ScoredMatch, parsed ParsedQuery) Response {
	band := bandFor(parsed.Confidence)

	// Product-only query with nothing narrowing it down: ask for the
	// background before showing anything.
	if (band == BandLow || band == BandMedium) && parsed.Product != "" &&
		parsed.Background == "" && parsed.Layout == "" {
		return r.backgroundQuestion(parsed)
	}

	var perfect, exact []ScoredMatch
	for _, m := range matches {
		if m.Score > 1.0 {
			perfect = append(perfect, m)
		}
		if m.Score >= 1.0 {
			exact = append(exact, m)
		}
	}

	switch {
	case band == BandHigh && len(perfect) == 1:
		return r.directAsset(
			fmt.Sprintf("Here's the perfect %s asset for your needs:", parsed.Product),
			parsed, perfect[0])

	case band == BandHigh && len(perfect) > 1:
		return Response{
			Kind:       KindAssetList,
			Message:    fmt.Sprintf("Here are the perfect %s matches for your request:", parsed.Product),
			Assets:     scoredViews(perfect),
			Confidence: BandHigh,
			Suggestion: r.suggestion(parsed),
		}

	case band == BandHigh && len(exact) == 1:
		return r.directAsset(
			fmt.Sprintf("Here's the exact %s asset you requested:", parsed.Product),
			parsed, exact[0])

	case band == BandHigh && len(exact) > 1:
		// Both criteria given: narrow to the unique asset matching both,
		// when exactly one exists.
		if parsed.Background != "" && parsed.Layout != "" {
			var narrowed []ScoredMatch
			for _, m := range exact {
				if m.Asset.Background == parsed.Background && m.Asset.Layout == parsed.Layout {
					narrowed = append(narrowed, m)
				}
			}
			if len(narrowed) == 1 {
				return r.directAsset(
					fmt.Sprintf("Here's the perfect %s asset for your needs:", parsed.Product),
					parsed, narrowed[0])
			}
		}
		return Response{
			Kind:       KindAssetList,
			Message:    fmt.Sprintf("Here are the best %s matches for your request:", parsed.Product),
			Assets:     scoredViews(r.capMatches(exact, 3)),
			Confidence: BandHigh,
			Suggestion: r.suggestion(parsed),
		}

	case (band == BandHigh || band == BandMedium) && len(matches) <= 4,
		band == BandMedium && parsed.Background != "" && len(exact) > 0:
		toShow := matches
		if parsed.Background != "" && len(exact) > 0 {
			toShow = exact
		}
		return Response{
			Kind:       KindAssetList,
			Message:    fmt.Sprintf("Here are the best %s options based on your request:", parsed.Product),
			Assets:     scoredViews(r.capMatches(toShow, 3)),
			Confidence: band,
			Suggestion: r.suggestion(parsed),
		}

	default:
		return r.guidedResponse(parsed.Product, matches)
	}
}

// directAsset is the single-asset answer shape.
func (r *Resolver) directAsset(message string, parsed ParsedQuery, m ScoredMatch) Response {
	view := assetView(m.Asset)
	if !m.Asset.IsDocument() {
		background := parsed.Background
		if background == "" {
			background = m.Asset.Background
		}
		view.Description = fmt.Sprintf("%s %s logo (%s) for %s backgrounds",
			titleCase(parsed.Product), m.Asset.Layout, m.Asset.Color, background)
	}

	return Response{
		Kind:       KindDirectAsset,
		Message:    message,
		Asset:      &view,
		Confidence: BandHigh,
		Reason:     m.Reason,
	}
}

// backgroundQuestion asks which background the logo will sit on before
// recommending anything.
func (r *Resolver) backgroundQuestion(parsed ParsedQuery) Response {
	productName := strings.ToUpper(parsed.Product)
	return Response{
		Kind:     KindClarifyingQuestion,
		Message:  fmt.Sprintf("I have several %s logos available.", productName),
		Question: "What background will you be using this on?",
		Options: []Option{
			{Value: "light", Label: "Light backgrounds (white, bright colors)"},
			{Value: "dark", Label: "Dark backgrounds (black, dark colors)"},
		},
		Confidence: BandClarifying,
		Help:       fmt.Sprintf("Once I know the background, I can recommend the perfect %s logo for you.", productName),
	}
}

// guidedResponse groups a product's assets by layout and asks the user
// to pick a background: the degraded path for low-confidence queries
// with many candidates.
func (r *Resolver) guidedResponse(product string, matches []ScoredMatch) Response {
	assets := r.inv.Product(product)
	if assets == nil {
		return r.productHelp()
	}

	// Group by layout, keeping first-seen layout order over sorted keys.
	var layoutOrder []string
	layoutGroups := make(map[string][]inventory.Asset)
	for _, key := range r.inv.AssetKeys(product) {
		asset := assets[key]
		if asset.IsDocument() {
			continue
		}
		if _, seen := layoutGroups[asset.Layout]; !seen {
			layoutOrder = append(layoutOrder, asset.Layout)
		}
		layoutGroups[asset.Layout] = append(layoutGroups[asset.Layout], asset)
	}

	// Consistent examples: prefer the light-background (black) variant.
	const preferredBackground = "light"

	options := make([]LayoutOption, 0, len(layoutOrder))
	for _, layout := range layoutOrder {
		group := layoutGroups[layout]
		example := group[0]
		for _, asset := range group {
			if asset.Background == preferredBackground {
				example = asset
				break
			}
		}

		options = append(options, LayoutOption{
			Layout:         layout,
			ExampleURL:     example.URL,
			Count:          len(group),
			Description:    layoutDescription(layout),
			BackgroundNote: fmt.Sprintf("Showing %s version (for %s backgrounds)", example.Color, example.Background),
		})
	}

	return Response{
		Kind:               KindGuided,
		Message:            fmt.Sprintf("I found %d %s assets. Here are your options:", len(matches), product),
		Product:            product,
		LayoutOptions:      options,
		Confidence:         BandLow,
		BackgroundQuestion: "What background will you use these on?",
		BackgroundOptions: []BackgroundOption{
			{Type: "light", Description: "Light backgrounds (use black logos)", Example: "white websites, documents"},
			{Type: "dark", Description: "Dark backgrounds (use white logos)", Example: "dark mode, black presentations"},
		},
		Help: fmt.Sprintf("For better recommendations, specify: '%s horizontal logo for light backgrounds' or '%s icon for dark theme'", product, product),
	}
}

// disambiguationResponse asks whether the user wants the company logo
// or one of the product logos.
func (r *Resolver) disambiguationResponse() Response {
	var products []string
	for _, prod := range r.inv.Index.Products {
		if prod != umbrellaProduct {
			products = append(products, titleCase(prod))
		}
	}

	company := strings.ToUpper(umbrellaProduct)
	return Response{
		Kind:     KindClarifyingQuestion,
		Message:  fmt.Sprintf("I found %s assets. Are you looking for:", company),
		Question: "Which type of logo do you need?",
		Options: []Option{
			{
				Value:       "company",
				Label:       fmt.Sprintf("%s Company Logo", company),
				Description: fmt.Sprintf("The main %s brand logo (onecolor, twocolor, green variants)", company),
			},
			{
				Value:       "products",
				Label:       fmt.Sprintf("%s Product Logos", company),
				Description: fmt.Sprintf("Logos for %s products: %s", company, strings.Join(products, ", ")),
			},
		},
		Confidence: BandClarifying,
		Help:       fmt.Sprintf("Please specify '%s company logo' or name a specific product like 'Warewulf logo' for more precise results.", company),
	}
}

// productHelp is the menu shown when no product could be resolved.
func (r *Resolver) productHelp() Response {
	company := strings.ToUpper(umbrellaProduct)

	var productLines []string
	var products []string
	for _, prod := range r.inv.Index.Products {
		if prod == umbrellaProduct {
			continue
		}
		products = append(products, prod)
		productLines = append(productLines, fmt.Sprintf("• **%s**", titleCase(prod)))
	}

	message := fmt.Sprintf("**%s Brand Assets Available:**\n\n", company) +
		fmt.Sprintf("**Company Brand:**\n• **%s** - Main company logo\n\n", company) +
		"**Product Brands:**\n" + strings.Join(productLines, "\n")

	return Response{
		Kind:              KindMenu,
		Message:           message,
		AvailableProducts: products,
		Examples: []string{
			fmt.Sprintf("%s twocolor logo for light backgrounds", company),
			"Warewulf horizontal logo for dark theme",
			"Apptainer icon for favicon",
		},
		Confidence: BandNone,
	}
}

// globalQuery scans every product's assets for a cross-product intent
// and groups the hits by product. Products with zero matches are simply
// omitted.
func (r *Resolver) globalQuery(parsed ParsedQuery) Response {
	intent := parsed.PrimaryIntent

	include := func(asset inventory.Asset) bool {
		switch intent {
		case IntentAllAssets:
			return true
		case IntentDocuments:
			return asset.IsDocument()
		case IntentSalesMaterials:
			return asset.IsDocument() && matchesDocKeywords(asset, salesDocKeywords)
		case IntentTechnicalDocs:
			return asset.IsDocument() && matchesDocKeywords(asset, techDocKeywords)
		}
		return false
	}

	var groups []ProductGroup
	total := 0
	for _, product := range r.inv.ProductNames() {
		var hits []inventory.Asset
		for _, key := range r.inv.AssetKeys(product) {
			asset := r.inv.Assets[product][key]
			if include(asset) {
				hits = append(hits, asset)
			}
		}
		if len(hits) == 0 {
			continue
		}

		views := assetViews(hits)
		for i := range views {
			views[i].Product = product
		}
		groups = append(groups, ProductGroup{
			Product: strings.ToUpper(product),
			Count:   len(hits),
			Assets:  views,
		})
		total += len(hits)
	}

	label := globalIntentLabel(intent)

	if total == 0 {
		return Response{
			Kind:       KindGlobalGrouped,
			Message:    fmt.Sprintf("No %s found across any products.", emptyGlobalLabel(intent)),
			Suggestion: "Try asking for a specific product, like 'RLC-LTS solution brief' or 'Warewulf logos'",
			Confidence: BandMedium,
		}
	}

	return Response{
		Kind:               KindGlobalGrouped,
		Message:            fmt.Sprintf("Here are all available %s across %s products:", label, strings.ToUpper(umbrellaProduct)),
		TotalCount:         total,
		ProductsWithAssets: len(groups),
		ByProduct:          groups,
		Summary:            fmt.Sprintf("Found %d %s across %d products", total, label, len(groups)),
		Confidence:         BandHigh,
	}
}

// emptyGlobalLabel phrases the zero-result message slightly differently
// from the grouped listing.
func emptyGlobalLabel(intent Intent) string {
	if intent == IntentSalesMaterials {
		return "solution briefs or sales materials"
	}
	return globalIntentLabel(intent)
}

func globalIntentLabel(intent Intent) string {
	switch intent {
	case IntentDocuments:
		return "documents"
	case IntentSalesMaterials:
		return "solution briefs and sales materials"
	case IntentTechnicalDocs:
		return "technical documentation"
	default:
		return "assets"
	}
}

// suggestion proposes how to narrow the query further.
func (r *Resolver) suggestion(parsed ParsedQuery) string {
	var suggestions []string

	if parsed.Background == "" {
		suggestions = append(suggestions, "specify the background (light or dark)")
	}
	if parsed.Layout == "" {
		if parsed.Product == umbrellaProduct {
			suggestions = append(suggestions, "specify variant (onecolor, twocolor, or green)")
		} else {
			suggestions = append(suggestions, "specify layout (icon, horizontal, or vertical)")
		}
	}

	if len(suggestions) > 0 {
		return fmt.Sprintf("For more precise results, try also mentioning: %s", strings.Join(suggestions, ", "))
	}

	return "Great match! This should work perfectly for your needs."
}

func layoutDescription(layout string) string {
	if desc, ok := layoutDescriptions[layout]; ok {
		return desc
	}
	return fmt.Sprintf("%s layout", titleCase(layout))
}

// scoredViews renders matches with scores and reasons.
func scoredViews(matches []ScoredMatch) []AssetView {
	views := make([]AssetView, 0, len(matches))
	for _, m := range matches {
		views = append(views, scoredView(m))
	}
	return views
}

// capMatches truncates long lists unless the resolver was asked to show
// every variant. Counts elsewhere in the response still reflect the
// full set.
func (r *Resolver) capMatches(matches []ScoredMatch, n int) []ScoredMatch {
	if r.showAllVariants || len(matches) <= n {
		return matches
	}
	return matches[:n]
}

func (r *Resolver) capAssets(assets []inventory.Asset, n int) []inventory.Asset {
	if r.showAllVariants || len(assets) <= n {
		return assets
	}
	return assets[:n]
}
