package resolver

import (
	"fmt"
	"sort"
	"strings"

	"brandfind/internal/inventory"
)

// Score rates a single asset against a parsed query. Pure function:
// deterministic for identical inputs, no side effects.
func Score(asset inventory.Asset, parsed ParsedQuery) (float64, string) {
	score := 0.4 // base score for the product match
	var reasons []string

	switch parsed.PrimaryIntent {
	case IntentAllAssets:
		score = 0.8
		reasons = append(reasons, "matches comprehensive asset request")

	case IntentDocuments:
		if asset.IsDocument() {
			score = 0.9
			reasons = append(reasons, fmt.Sprintf("document: %s", docTypeOr(asset, "unknown type")))
		} else {
			score = 0.2 // lower but not zero: might still be relevant
			reasons = append(reasons, "logo (documents requested)")
		}

	case IntentSalesMaterials:
		if asset.IsDocument() {
			if matchesDocKeywords(asset, salesDocKeywords) {
				score = 1.0
				reasons = append(reasons, fmt.Sprintf("perfect sales material: %s", asset.DocType))
			} else {
				score = 0.5
				reasons = append(reasons, fmt.Sprintf("document: %s", asset.DocType))
			}
		} else {
			score = 0.3
			reasons = append(reasons, "logo (sales materials requested)")
		}

	case IntentVisualAssets:
		if !asset.IsDocument() {
			score = legacyScore(asset, parsed)
			switch {
			case parsed.Background != "" && asset.Background == parsed.Background:
				reasons = append(reasons, fmt.Sprintf("logo optimized for %s backgrounds", parsed.Background))
			case parsed.Layout != "" && asset.Layout == parsed.Layout:
				reasons = append(reasons, fmt.Sprintf("exact %s match", parsed.Layout))
			default:
				reasons = append(reasons, fmt.Sprintf("%s logo", layoutOr(asset, "unknown")))
			}
		} else {
			score = 0.1
			reasons = append(reasons, "document (logos requested)")
		}

	default:
		if asset.IsDocument() {
			score = 0.6
			reasons = append(reasons, fmt.Sprintf("document: %s", docTypeOr(asset, "unknown type")))
		} else {
			score = legacyScore(asset, parsed)
			reasons = append(reasons, "logo match")
		}
	}

	// Boost when the query carries evidence for several intents.
	highIntents := 0
	for _, entry := range parsed.IntentScores {
		if entry.Score > intentEvidenceFloor {
			highIntents++
		}
	}
	if highIntents > 1 {
		score = min(score*1.1, 1.0)
		reasons = append(reasons, "matches multiple intents")
	}

	return score, strings.Join(reasons, " + ")
}

// legacyScore is the original background/layout logo scorer. Documents
// short-circuit to a flat 0.6 regardless of logo fields.
func legacyScore(asset inventory.Asset, parsed ParsedQuery) float64 {
	if asset.IsDocument() {
		return 0.6
	}

	score := 0.3
	if parsed.Background != "" && asset.Background == parsed.Background {
		score += 0.4
	}
	if parsed.Layout != "" && asset.Layout == parsed.Layout {
		score += 0.3
	}

	return min(score, 1.0)
}

// Match scores every asset of a product and returns the positive
// matches ordered by score descending. The sort is stable: assets with
// equal scores keep their encounter order (sorted asset keys).
func (r *Resolver) Match(product string, parsed ParsedQuery) []ScoredMatch {
	assets := r.inv.Product(product)
	if assets == nil {
		return nil
	}

	var matches []ScoredMatch
	for _, key := range r.inv.AssetKeys(product) {
		asset := assets[key]
		score, reason := Score(asset, parsed)
		if score > 0 {
			matches = append(matches, ScoredMatch{Score: score, Asset: asset, Reason: reason})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

func matchesDocKeywords(asset inventory.Asset, keywords []string) bool {
	docType := strings.ToLower(asset.DocType)
	for _, kw := range keywords {
		if strings.Contains(docType, kw) {
			return true
		}
	}
	return false
}

func docTypeOr(asset inventory.Asset, fallback string) string {
	if asset.DocType != "" {
		return asset.DocType
	}
	return fallback
}

func layoutOr(asset inventory.Asset, fallback string) string {
	if asset.Layout != "" {
		return asset.Layout
	}
	return fallback
}
