// Package palette models the design-system color palette: CSS custom
// properties categorized into brand, utility, semantic, and functional
// tokens, with utility colors grouped into shade families.
//
// The palette is an optional collaborator of the resolver. When it
// cannot be loaded, color queries degrade to a uniform "color data
// unavailable" response instead of failing.
package palette

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"brandfind/internal/inventory"
	"brandfind/internal/logging"
)

// DefaultShadeRank is the sort rank assigned to shade labels without a
// leading numeric token ("dark", "DEFAULT", ...). It slots them among
// the mid-range numeric shades.
const DefaultShadeRank = 500

// ColorValue is a single CSS custom property value: either a direct
// color or a reference to another property.
type ColorValue struct {
	Type      string `json:"type"` // "color" or "reference"
	Value     string `json:"value,omitempty"`
	Reference string `json:"reference,omitempty"`
	RawValue  string `json:"raw_value,omitempty"`
}

// Resolved returns the referenced property name for references, or the
// direct color value otherwise.
func (v ColorValue) Resolved() string {
	if v.Type == "reference" && v.Reference != "" {
		return v.Reference
	}
	return v.Value
}

// Shade is one entry in an ordered color family ramp.
type Shade struct {
	Shade    string `json:"shade"`
	Property string `json:"property"`
	Value    string `json:"value"`
}

// Summary is the palette's aggregate counts block.
type Summary struct {
	TotalProperties int            `json:"total_properties"`
	Categories      map[string]int `json:"categories"`
	ColorFamilies   []string       `json:"color_families"`
	FamilyCount     int            `json:"family_count"`
}

// Categories groups palette properties by function.
type Categories struct {
	Semantic      map[string]map[string]ColorValue `json:"semantic"`
	Brand         map[string]ColorValue            `json:"brand"`
	Utility       map[string]ColorValue            `json:"utility"`
	Functional    map[string]map[string]ColorValue `json:"functional"`
	Alpha         map[string]ColorValue            `json:"alpha"`
	Shadows       map[string]ColorValue            `json:"shadows"`
	Uncategorized map[string]ColorValue            `json:"uncategorized"`
}

// Palette is the loaded color palette document.
type Palette struct {
	Summary    Summary               `json:"summary"`
	Colors     map[string]ColorValue `json:"colors"`
	Categories Categories            `json:"categories"`
	Families   map[string][]Shade    `json:"families"`
	SourceFile string                `json:"source_file,omitempty"`
}

// FamilyNames returns the family names in sorted order.
func (p *Palette) FamilyNames() []string {
	names := make([]string, 0, len(p.Families))
	for name := range p.Families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Family returns the ordered shade list for a family, or nil.
func (p *Palette) Family(name string) []Shade {
	return p.Families[name]
}

// ShadeRank converts a shade label to its numeric sort rank: the value
// of the leading digit run, or DefaultShadeRank when there is none.
func ShadeRank(label string) int {
	digits := 0
	for digits < len(label) && label[digits] >= '0' && label[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return DefaultShadeRank
	}
	rank, err := strconv.Atoi(label[:digits])
	if err != nil {
		return DefaultShadeRank
	}
	return rank
}

// SortShades orders a shade ramp ascending by rank, keeping the
// original order among equal ranks.
func SortShades(shades []Shade) {
	sort.SliceStable(shades, func(i, j int) bool {
		return ShadeRank(shades[i].Shade) < ShadeRank(shades[j].Shade)
	})
}

// Load fetches and parses the palette document. A missing or malformed
// palette is reported as an error; callers treat it as a degraded mode,
// not a fatal one.
func Load(source string, timeout time.Duration, logger *logging.AppLogger) (*Palette, error) {
	data, err := inventory.ReadSource(source, timeout)
	if err != nil {
		return nil, err
	}

	pal, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid palette from %s: %w", source, err)
	}

	logger.Info("Loaded color palette",
		"source", source,
		"totalProperties", pal.Summary.TotalProperties,
		"families", pal.Summary.FamilyCount,
	)

	return pal, nil
}

// Parse decodes and validates a palette document.
func Parse(data []byte) (*Palette, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse palette JSON: %w", err)
	}
	for _, key := range []string{"colors", "categories", "families"} {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("invalid palette structure: missing %q", key)
		}
	}

	var pal Palette
	if err := json.Unmarshal(data, &pal); err != nil {
		return nil, fmt.Errorf("failed to decode palette: %w", err)
	}

	// Shade order is relied on by the resolver's family projections;
	// normalize here rather than trusting the generator.
	for _, shades := range pal.Families {
		SortShades(shades)
	}

	return &pal, nil
}
