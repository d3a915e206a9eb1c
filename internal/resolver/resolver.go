// Package resolver turns free-text brand asset requests into structured
// responses: it extracts intent and entities with declarative pattern
// rules, scores the product's assets against the request, and picks a
// response shape from the confidence band and match count.
//
// The resolver is read-only over an inventory snapshot and never fails
// a request: unintelligible queries degrade to menus or clarifying
// questions, and internal panics surface as a uniform error shape.
package resolver

import (
	"fmt"

	"brandfind/internal/inventory"
	"brandfind/internal/logging"
	"brandfind/internal/palette"
)

// Options tunes response rendering.
type Options struct {
	// ShowAllVariants lifts the top-N truncation of asset lists.
	ShowAllVariants bool

	// AssetType restricts matches to "logo" or "document". Empty means
	// no restriction.
	AssetType string
}

// Resolver answers asset and color queries over a loaded inventory
// snapshot. The palette is optional: when nil, color queries degrade to
// an unavailable response. Safe for concurrent use; all state is
// read-only after construction.
type Resolver struct {
	inv    *inventory.Inventory
	pal    *palette.Palette
	logger *logging.AppLogger

	showAllVariants bool
	assetType       string
}

// New builds a resolver over the given snapshot.
func New(inv *inventory.Inventory, pal *palette.Palette, logger *logging.AppLogger, opts Options) *Resolver {
	if logger == nil {
		logger = logging.GetDefault()
	}
	return &Resolver{
		inv:             inv,
		pal:             pal,
		logger:          logger,
		showAllVariants: opts.ShowAllVariants,
		assetType:       opts.AssetType,
	}
}

// Find answers a free-text request. It always returns a well-formed
// response; failures become the uniform error shape with a usable
// suggestion.
func (r *Resolver) Find(query string) (resp Response) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Recovered from panic while resolving query", "query", query, "panic", rec)
			resp = errorResponse(
				fmt.Sprintf("Error processing request: %v", rec),
				"Try a simpler request like 'CIQ logo', 'Fuzzball assets', or 'brand colors'",
			)
		}
	}()

	if r.inv == nil {
		return errorResponse("Asset data not loaded",
			"Asset metadata is currently unavailable. Please try again later.")
	}

	parsed := r.Parse(query)
	r.logger.Debug("Parsed query",
		"query", query,
		"product", parsed.Product,
		"intent", string(parsed.PrimaryIntent),
		"background", parsed.Background,
		"layout", parsed.Layout,
		"confidence", parsed.Confidence,
	)

	if parsed.PrimaryIntent.IsColorIntent() {
		return r.handleColorQuery(parsed)
	}

	if parsed.Product != "" {
		matches := r.filterByType(r.Match(parsed.Product, parsed))
		return r.formatResponse(matches, parsed)
	}

	if parsed.PrimaryIntent.IsCrossProduct() && parsed.IntentScores[parsed.PrimaryIntent].Score > 0 {
		return r.globalQuery(parsed)
	}

	return r.productHelp()
}

// filterByType applies the configured asset-type restriction.
func (r *Resolver) filterByType(matches []ScoredMatch) []ScoredMatch {
	if r.assetType == "" {
		return matches
	}

	wantDocument := r.assetType == "document"
	var filtered []ScoredMatch
	for _, m := range matches {
		if m.Asset.IsDocument() == wantDocument {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
