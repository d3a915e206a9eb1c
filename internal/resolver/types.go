package resolver

import "brandfind/internal/inventory"

// IntentScore is one intent category's accumulated evidence.
type IntentScore struct {
	Score    float64  `json:"score"`
	Patterns []string `json:"patterns,omitempty"`
}

// ColorContext captures color-related hints detected independently of
// the main intent classification.
type ColorContext struct {
	HasColorIntent bool   `json:"has_color_intent"`
	ColorType      string `json:"color_type,omitempty"`
	ColorFamily    string `json:"color_family,omitempty"`
	UsageContext   string `json:"usage_context,omitempty"`
}

// ParsedQuery is the ephemeral result of request understanding, one per
// query. Parsing never fails: an unintelligible query yields empty
// fields with confidence near zero.
type ParsedQuery struct {
	Product             string
	Background          string
	Layout              string
	PrimaryIntent       Intent
	IntentScores        map[Intent]IntentScore
	Confidence          float64
	RawQuery            string
	NeedsDisambiguation bool
	ColorContext        ColorContext
}

// ScoredMatch pairs an asset with its relevance score and the
// human-readable reasoning behind it.
type ScoredMatch struct {
	Score  float64
	Asset  inventory.Asset
	Reason string
}
