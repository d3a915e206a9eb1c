// Package inventory defines the immutable asset snapshot the resolver
// operates on. The snapshot is loaded once (from a URL or a local file)
// and never mutated afterwards, so it can be shared freely across
// queries.
package inventory

import "sort"

// Asset types as they appear in the inventory JSON.
const (
	TypeDocument = "document"
)

// Asset is a single logo image or document file with its metadata.
// Logos carry layout/color/background/size, documents carry doc_type/ext.
type Asset struct {
	URL      string   `json:"url"`
	Filename string   `json:"filename"`
	Type     string   `json:"type"`
	Tags     []string `json:"tags,omitempty"`

	// Logo fields
	Background string `json:"background,omitempty"`
	Color      string `json:"color,omitempty"`
	Layout     string `json:"layout,omitempty"`
	Size       string `json:"size,omitempty"`

	// Document fields
	DocType string `json:"doc_type,omitempty"`
	Ext     string `json:"ext,omitempty"`
}

// IsDocument reports whether the asset is a document rather than a logo.
func (a Asset) IsDocument() bool {
	return a.Type == TypeDocument
}

// HasTag reports whether the asset carries the given semantic tag.
func (a Asset) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// UseCaseRule describes layout/size preferences for a named use case.
type UseCaseRule struct {
	PreferLayout string `json:"prefer_layout"`
	PreferSize   string `json:"prefer_size"`
	Description  string `json:"description"`
}

// BackgroundRule describes color preferences for a background type.
type BackgroundRule struct {
	PreferColor   string `json:"prefer_color"`
	FallbackColor string `json:"fallback_color,omitempty"`
	Description   string `json:"description"`
}

// VariantRule describes which brand variant to prefer for a usage role.
type VariantRule struct {
	PreferVariant string `json:"prefer_variant"`
	Description   string `json:"description"`
}

// Rules is the declarative matching section of the inventory document.
type Rules struct {
	UseCaseMatching    map[string]UseCaseRule    `json:"use_case_matching"`
	BackgroundMatching map[string]BackgroundRule `json:"background_matching"`
	VariantRules       map[string]VariantRule    `json:"ciq_variant_rules"`
	ConfidenceScoring  map[string]float64        `json:"confidence_scoring"`
}

// Index holds derived lists for fast lookups and menu generation.
type Index struct {
	Products    []string `json:"products"`
	Layouts     []string `json:"layouts"`
	Colors      []string `json:"colors"`
	Backgrounds []string `json:"backgrounds"`
	DocTypes    []string `json:"doc_types"`
	Tags        []string `json:"tags"`
	TotalAssets int      `json:"total_assets"`
}

// ColorInfo is the palette availability stub embedded in the inventory.
// The full palette document is loaded separately.
type ColorInfo struct {
	Available   bool           `json:"available"`
	Summary     map[string]any `json:"summary,omitempty"`
	LastUpdated string         `json:"last_updated,omitempty"`
	FilePath    string         `json:"file_path,omitempty"`
	Reason      string         `json:"reason,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// Inventory is the read-only metadata snapshot.
type Inventory struct {
	Assets map[string]map[string]Asset `json:"assets"`
	Rules  Rules                       `json:"rules"`
	Index  Index                       `json:"index"`
	Colors *ColorInfo                  `json:"colors,omitempty"`
}

// Product returns the asset map for a product, or nil if unknown.
func (inv *Inventory) Product(name string) map[string]Asset {
	return inv.Assets[name]
}

// HasProduct reports whether the product exists in the snapshot.
func (inv *Inventory) HasProduct(name string) bool {
	_, ok := inv.Assets[name]
	return ok
}

// ProductNames returns all product names in sorted order. Map iteration
// order is not deterministic in Go, and ranking stability requires a
// fixed encounter order, so every walk over the snapshot goes through
// sorted keys.
func (inv *Inventory) ProductNames() []string {
	names := make([]string, 0, len(inv.Assets))
	for name := range inv.Assets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AssetKeys returns the asset keys of a product in sorted order.
func (inv *Inventory) AssetKeys(product string) []string {
	assets := inv.Assets[product]
	keys := make([]string, 0, len(assets))
	for key := range assets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// HasDocuments reports whether the product carries at least one
// document asset.
func (inv *Inventory) HasDocuments(product string) bool {
	for _, asset := range inv.Assets[product] {
		if asset.IsDocument() {
			return true
		}
	}
	return false
}
