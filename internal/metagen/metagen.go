// Package metagen builds the asset inventory document from a brand
// assets directory tree. It parses the repository's filename
// conventions, derives backgrounds and semantic tags, and emits the
// same structure the resolver consumes: assets, rules, index, and a
// color palette availability stub.
//
// Filename conventions:
//
//	logos:     {Product}_{Type}_{Layout}_{Color}_{Size}.{ext}
//	documents: {Product}_{DocumentType}.{ext}
package metagen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"brandfind/internal/inventory"
	"brandfind/internal/logging"
)

// DefaultBaseURL is the public location generated asset URLs point at.
const DefaultBaseURL = "https://raw.githubusercontent.com/b-ciq/brand-assets/main"

// LogoFile is a parsed logo filename.
type LogoFile struct {
	Product string
	Type    string
	Layout  string
	Color   string
	Size    string
	Ext     string
}

// DocumentFile is a parsed document filename.
type DocumentFile struct {
	Product string
	DocType string
	Ext     string
}

// ParseLogoFilename splits a logo filename into its convention fields.
// Returns false when the name does not carry all five parts.
func ParseLogoFilename(filename string) (LogoFile, bool) {
	base, ext := splitExt(filename, "png")

	parts := strings.Split(base, "_")
	if len(parts) < 5 {
		return LogoFile{}, false
	}

	return LogoFile{
		Product: strings.ToLower(parts[0]),
		Type:    parts[1],
		Layout:  parts[2],
		Color:   parts[3],
		Size:    parts[4],
		Ext:     ext,
	}, true
}

// ParseDocumentFilename splits a document filename. The document type
// is every part after the product, lowercased and space-joined
// ("RLC-LTS_Solution_Brief.pdf" yields "solution brief").
func ParseDocumentFilename(filename string) (DocumentFile, bool) {
	base, ext := splitExt(filename, "pdf")

	parts := strings.Split(base, "_")
	if len(parts) < 2 {
		return DocumentFile{}, false
	}

	return DocumentFile{
		Product: strings.ToLower(parts[0]),
		DocType: strings.ToLower(strings.Join(parts[1:], " ")),
		Ext:     ext,
	}, true
}

func splitExt(filename, fallbackExt string) (string, string) {
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		return filename[:idx], filename[idx+1:]
	}
	return filename, fallbackExt
}

// AssetKey derives the stable inventory key for a parsed logo.
func AssetKey(f LogoFile) string {
	if f.Layout == "square" {
		return "icon_" + f.Color
	}
	return f.Layout + "_" + f.Color
}

// BackgroundFor maps a logo color to the background it is optimized
// for: black logos sit on light backgrounds, white on dark, anything
// else works on any.
func BackgroundFor(color string) string {
	switch strings.ToLower(color) {
	case "black":
		return "light"
	case "white":
		return "dark"
	default:
		return "any"
	}
}

// LogoTags returns the semantic use-case tags for a logo layout.
func LogoTags(layout, typ string) []string {
	switch {
	case layout == "square" || typ == "icon":
		return []string{"favicon", "app_icon", "compact", "small_space", "avatar"}
	case layout == "horizontal":
		return []string{"business_card", "header", "email_signature", "letterhead", "wide_format"}
	case layout == "vertical":
		return []string{"mobile", "social_profile", "tall_banner", "poster", "stacked"}
	case layout == "onecolor":
		return []string{"supporting", "footer", "watermark", "minimal", "professional"}
	case layout == "twocolor":
		return []string{"hero", "primary", "homepage", "presentation", "main_branding"}
	case layout == "green":
		return []string{"accent", "highlight", "call_to_action", "brand_pop"}
	}
	return nil
}

// DocumentTags returns the semantic tags for a document type.
func DocumentTags(docType string) []string {
	tags := []string{"document", "pdf"}

	switch {
	case strings.Contains(docType, "solution brief"):
		tags = append(tags, "sales", "overview", "features", "benefits", "summary")
	case strings.Contains(docType, "datasheet"):
		tags = append(tags, "technical", "specifications", "details", "reference")
	case strings.Contains(docType, "white paper"), strings.Contains(docType, "whitepaper"):
		tags = append(tags, "research", "deep_dive", "analysis", "thought_leadership")
	case strings.Contains(docType, "case study"):
		tags = append(tags, "customer", "success_story", "implementation", "results")
	case strings.Contains(docType, "user guide"), strings.Contains(docType, "manual"):
		tags = append(tags, "documentation", "how_to", "instructions", "guide")
	}

	return tags
}

// Generator scans an assets tree and assembles the inventory document.
type Generator struct {
	baseURL string
	logger  *logging.AppLogger
}

// New builds a generator. An empty baseURL falls back to the public
// assets repository.
func New(baseURL string, logger *logging.AppLogger) *Generator {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = logging.GetDefault()
	}
	return &Generator{baseURL: strings.TrimRight(baseURL, "/"), logger: logger}
}

// Generate scans basePath/assets and returns the full inventory.
func (g *Generator) Generate(basePath string) (*inventory.Inventory, error) {
	assetsPath := filepath.Join(basePath, "assets")

	assets, err := g.scan(assetsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to scan assets: %w", err)
	}
	if len(assets) == 0 {
		return nil, fmt.Errorf("no assets found under %s", assetsPath)
	}

	inv := &inventory.Inventory{
		Assets: assets,
		Rules:  Rules(),
		Index:  BuildIndex(assets),
		Colors: g.paletteInfo(assetsPath),
	}

	g.logger.Info("Generated asset inventory",
		"products", len(inv.Index.Products),
		"totalAssets", inv.Index.TotalAssets,
		"tags", len(inv.Index.Tags),
	)

	return inv, nil
}

// WriteFile generates the inventory and writes it as indented JSON.
func (g *Generator) WriteFile(basePath, output string) error {
	inv, err := g.Generate(basePath)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write inventory: %w", err)
	}

	return nil
}

// scan catalogs the global brand logos and every product's logos and
// documents.
func (g *Generator) scan(assetsPath string) (map[string]map[string]inventory.Asset, error) {
	assets := make(map[string]map[string]inventory.Asset)

	// Global logos belong to the umbrella brand.
	globalLogos := filepath.Join(assetsPath, "global", "logos")
	if ciq := g.scanLogos(globalLogos, g.baseURL+"/assets/global/logos"); len(ciq) > 0 {
		assets["ciq"] = ciq
	}

	productsPath := filepath.Join(assetsPath, "products")
	entries, err := os.ReadDir(productsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return assets, nil
		}
		return nil, err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		product := entry.Name()
		productAssets := make(map[string]inventory.Asset)

		logosURL := fmt.Sprintf("%s/assets/products/%s/logos", g.baseURL, product)
		for key, asset := range g.scanLogos(filepath.Join(productsPath, product, "logos"), logosURL) {
			productAssets[key] = asset
		}

		docsURL := fmt.Sprintf("%s/assets/products/%s/documents", g.baseURL, product)
		for key, asset := range g.scanDocuments(filepath.Join(productsPath, product, "documents"), docsURL) {
			productAssets[key] = asset
		}

		if len(productAssets) > 0 {
			assets[product] = productAssets
		}
	}

	return assets, nil
}

func (g *Generator) scanLogos(dir, urlPrefix string) map[string]inventory.Asset {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	logos := make(map[string]inventory.Asset)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".png") {
			continue
		}

		parsed, ok := ParseLogoFilename(name)
		if !ok {
			g.logger.Warn("Skipping logo with unparseable filename", "file", name)
			continue
		}

		layout := parsed.Layout
		if layout == "square" {
			layout = "icon"
		}

		logos[AssetKey(parsed)] = inventory.Asset{
			URL:        urlPrefix + "/" + name,
			Filename:   name,
			Type:       parsed.Type,
			Background: BackgroundFor(parsed.Color),
			Color:      parsed.Color,
			Layout:     layout,
			Size:       parsed.Size,
			Tags:       LogoTags(parsed.Layout, parsed.Type),
		}
	}

	return logos
}

func (g *Generator) scanDocuments(dir, urlPrefix string) map[string]inventory.Asset {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	docs := make(map[string]inventory.Asset)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".pdf") {
			continue
		}

		parsed, ok := ParseDocumentFilename(name)
		if !ok {
			g.logger.Warn("Skipping document with unparseable filename", "file", name)
			continue
		}

		key := "doc_" + strings.ReplaceAll(parsed.DocType, " ", "_")
		docs[key] = inventory.Asset{
			URL:      urlPrefix + "/" + name,
			Filename: name,
			Type:     inventory.TypeDocument,
			DocType:  parsed.DocType,
			Ext:      parsed.Ext,
			Tags:     DocumentTags(parsed.DocType),
		}
	}

	return docs
}

// paletteInfo probes for the palette document and records availability.
func (g *Generator) paletteInfo(assetsPath string) *inventory.ColorInfo {
	colorFile := filepath.Join(assetsPath, "global", "colors", "color-palette-dark.json")

	data, err := os.ReadFile(colorFile)
	if err != nil {
		if os.IsNotExist(err) {
			return &inventory.ColorInfo{Available: false, Reason: "Color palette file not found"}
		}
		return &inventory.ColorInfo{Available: false, Error: err.Error()}
	}

	var doc struct {
		Summary map[string]any `json:"summary"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		g.logger.Warn("Could not load color palette data", "error", err)
		return &inventory.ColorInfo{Available: false, Error: err.Error()}
	}

	rel, err := filepath.Rel(filepath.Dir(assetsPath), colorFile)
	if err != nil {
		rel = colorFile
	}

	return &inventory.ColorInfo{
		Available:   true,
		Summary:     doc.Summary,
		LastUpdated: time.Now().Format(time.RFC3339),
		FilePath:    rel,
	}
}

// Rules returns the declarative matching rules embedded in every
// generated inventory.
func Rules() inventory.Rules {
	return inventory.Rules{
		UseCaseMatching: map[string]inventory.UseCaseRule{
			"favicon":         {PreferLayout: "icon", PreferSize: "large", Description: "Small square icon for browser tabs"},
			"app_icon":        {PreferLayout: "icon", PreferSize: "large", Description: "Application icon for software"},
			"business_card":   {PreferLayout: "horizontal", PreferSize: "large", Description: "Logo for business cards and professional materials"},
			"email_signature": {PreferLayout: "horizontal", PreferSize: "large", Description: "Logo for email signatures"},
			"letterhead":      {PreferLayout: "horizontal", PreferSize: "large", Description: "Logo for official letterhead"},
			"website_header":  {PreferLayout: "horizontal", PreferSize: "large", Description: "Logo for website headers"},
			"mobile_app":      {PreferLayout: "vertical", PreferSize: "large", Description: "Logo optimized for mobile layouts"},
			"social_media":    {PreferLayout: "vertical", PreferSize: "large", Description: "Logo for social media profiles"},
			"presentation":    {PreferLayout: "horizontal", PreferSize: "large", Description: "Logo for presentations and slides"},
		},
		BackgroundMatching: map[string]inventory.BackgroundRule{
			"light": {PreferColor: "black", Description: "Dark logos on light backgrounds"},
			"dark":  {PreferColor: "white", Description: "Light logos on dark backgrounds"},
			"any":   {PreferColor: "color", FallbackColor: "black", Description: "Color logos that work on various backgrounds"},
		},
		VariantRules: map[string]inventory.VariantRule{
			"main_branding": {PreferVariant: "twocolor", Description: "Most recognizable CIQ branding - use when logo is the star"},
			"supporting":    {PreferVariant: "onecolor", Description: "Clean, professional - won't compete with other elements"},
			"accent":        {PreferVariant: "green", Description: "Use when you need the logo to pop in neutral designs"},
		},
		ConfidenceScoring: map[string]float64{
			"exact_match":      1.0,
			"layout_match":     0.8,
			"background_match": 0.7,
			"tag_match":        0.6,
			"fallback":         0.3,
		},
	}
}

// BuildIndex derives the lookup index from the cataloged assets. All
// lists are sorted so repeated generations are byte-identical.
func BuildIndex(assets map[string]map[string]inventory.Asset) inventory.Index {
	layouts := make(map[string]struct{})
	colors := make(map[string]struct{})
	backgrounds := make(map[string]struct{})
	docTypes := make(map[string]struct{})
	tags := make(map[string]struct{})

	products := make([]string, 0, len(assets))
	total := 0
	for product, productAssets := range assets {
		products = append(products, product)
		total += len(productAssets)

		for _, asset := range productAssets {
			if asset.IsDocument() {
				docTypes[asset.DocType] = struct{}{}
			} else {
				layouts[asset.Layout] = struct{}{}
				colors[asset.Color] = struct{}{}
				backgrounds[asset.Background] = struct{}{}
			}
			for _, tag := range asset.Tags {
				tags[tag] = struct{}{}
			}
		}
	}
	sort.Strings(products)

	return inventory.Index{
		Products:    products,
		Layouts:     sortedSet(layouts),
		Colors:      sortedSet(colors),
		Backgrounds: sortedSet(backgrounds),
		DocTypes:    sortedSet(docTypes),
		Tags:        sortedSet(tags),
		TotalAssets: total,
	}
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
