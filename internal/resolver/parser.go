package resolver

import (
	"sort"
	"strings"
)

// Pattern-length weights. Longer matched aliases are stronger evidence;
// product matches are capped so intent evidence still matters.
const (
	productWeightDivisor = 10.0
	productConfidenceCap = 0.6
	intentWeightDivisor  = 15.0
	intentEvidenceFloor  = 0.3
	confidenceBoost      = 1.3
)

// productCandidate is one alias hit collected during product detection.
type productCandidate struct {
	Product       string
	Confidence    float64
	PatternLength int
	Pattern       string
}

// Parse turns a free-text query into a ParsedQuery. It never fails: a
// query matching nothing yields empty entities, a zero-score primary
// intent, and confidence near zero.
func (r *Resolver) Parse(query string) ParsedQuery {
	q := strings.ToLower(query)

	scores := scoreIntents(q)
	primary := primaryIntent(scores)

	candidates := collectProductCandidates(q)
	product, productConfidence := r.resolveProduct(q, candidates, scores)

	background := detectBackground(q)
	layout := detectLayout(q)

	// Umbrella-brand portfolio queries get a clarifying question rather
	// than a guess between the company logo and the product lineup.
	umbrellaQuery := containsAny(q, umbrellaAliases) &&
		containsAny(q, productContextPatterns) &&
		!containsAny(q, companyOnlyPatterns)

	confidence := productConfidence
	if scores[primary].Score > 0 {
		confidence += scores[primary].Score * 0.5
	}
	if product != "" && scores[primary].Score > intentEvidenceFloor {
		confidence = min(confidence*confidenceBoost, 1.0)
	}

	return ParsedQuery{
		Product:             product,
		Background:          background,
		Layout:              layout,
		PrimaryIntent:       primary,
		IntentScores:        scores,
		Confidence:          min(confidence, 1.0),
		RawQuery:            query,
		NeedsDisambiguation: umbrellaQuery && product == umbrellaProduct,
		ColorContext:        r.detectColorContext(q),
	}
}

// scoreIntents accumulates evidence per intent category. Every declared
// category gets an entry, zero when unmatched; scores are capped at 1.
func scoreIntents(q string) map[Intent]IntentScore {
	scores := make(map[Intent]IntentScore, len(intentOrder))
	for _, intent := range intentOrder {
		var score float64
		var matched []string
		for _, pattern := range intentPatterns[intent] {
			if strings.Contains(q, pattern) {
				score += float64(len(pattern)) / intentWeightDivisor
				matched = append(matched, pattern)
			}
		}
		scores[intent] = IntentScore{Score: min(score, 1.0), Patterns: matched}
	}
	return scores
}

// primaryIntent picks the highest-scoring category. Ties break by
// declaration order: the earliest-declared category wins.
func primaryIntent(scores map[Intent]IntentScore) Intent {
	best := intentOrder[0]
	for _, intent := range intentOrder[1:] {
		if scores[intent].Score > scores[best].Score {
			best = intent
		}
	}
	return best
}

// collectProductCandidates finds every alias hit and orders them by
// (pattern length desc, confidence desc): longer, more specific aliases
// win ties.
func collectProductCandidates(q string) []productCandidate {
	var candidates []productCandidate
	for _, entry := range productPatterns {
		for _, alias := range entry.Aliases {
			if strings.Contains(q, alias) {
				candidates = append(candidates, productCandidate{
					Product:       entry.Product,
					Confidence:    min(float64(len(alias))/productWeightDivisor, productConfidenceCap),
					PatternLength: len(alias),
					Pattern:       alias,
				})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].PatternLength != candidates[j].PatternLength {
			return candidates[i].PatternLength > candidates[j].PatternLength
		}
		return candidates[i].Confidence > candidates[j].Confidence
	})

	return candidates
}

// resolveProduct picks the winning product and applies the variant
// preference table: document-oriented queries naming a base product
// resolve to its variant when the variant is the one carrying
// documents.
func (r *Resolver) resolveProduct(q string, candidates []productCandidate, scores map[Intent]IntentScore) (string, float64) {
	if len(candidates) == 0 {
		return "", 0
	}

	product := candidates[0].Product
	confidence := candidates[0].Confidence

	for _, rule := range variantPreferences {
		if product != rule.Base || !rule.applies(scores) {
			continue
		}

		// The variant itself matched an alias: use its own candidate.
		if c, ok := firstCandidate(candidates, rule.Variant); ok {
			return c.Product, c.Confidence
		}

		// Only the base matched. Redirect when the variant exists in the
		// snapshot and actually carries documents; keep the base match's
		// confidence since the evidence is the same alias.
		if r.inv != nil && r.inv.HasProduct(rule.Variant) && r.inv.HasDocuments(rule.Variant) {
			return rule.Variant, confidence
		}
	}

	return product, confidence
}

func firstCandidate(candidates []productCandidate, product string) (productCandidate, bool) {
	for _, c := range candidates {
		if c.Product == product {
			return c, true
		}
	}
	return productCandidate{}, false
}

// detectBackground is a plain alias lookup; first declared match wins,
// no scoring.
func detectBackground(q string) string {
	for _, entry := range backgroundPatterns {
		for _, alias := range entry.Aliases {
			if strings.Contains(q, alias) {
				return entry.Background
			}
		}
	}
	return ""
}

func detectLayout(q string) string {
	for _, entry := range layoutPatterns {
		for _, alias := range entry.Aliases {
			if strings.Contains(q, alias) {
				return entry.Layout
			}
		}
	}
	return ""
}

// detectColorContext scans for color-type and usage hints, and for
// palette family names when a palette is loaded.
func (r *Resolver) detectColorContext(q string) ColorContext {
	var ctx ColorContext

	for _, entry := range colorTypePatterns {
		if containsAny(q, entry.Aliases) {
			ctx.HasColorIntent = true
			ctx.ColorType = entry.Type
			break
		}
	}

	for _, entry := range colorUsagePatterns {
		if containsAny(q, entry.Aliases) {
			ctx.UsageContext = entry.Usage
			break
		}
	}

	if r.pal != nil {
		for _, family := range r.pal.FamilyNames() {
			if strings.Contains(q, family) {
				ctx.ColorFamily = family
				ctx.HasColorIntent = true
				break
			}
		}
	}

	return ctx
}
