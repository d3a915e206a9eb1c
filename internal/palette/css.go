package palette

import (
	"regexp"
	"sort"
	"strings"
)

// Generation side of the palette: turns a CSS custom-property file into
// the palette JSON document consumed at query time.

var (
	propertyPattern  = regexp.MustCompile(`--([^:]+):\s*([^;]+);`)
	referencePattern = regexp.MustCompile(`var\(--([^)]+)\)`)
)

// ParseCSS extracts CSS custom properties from a stylesheet. Direct
// values become "color" entries; var(...) values become "reference"
// entries pointing at the referenced property.
func ParseCSS(content string) map[string]ColorValue {
	colors := make(map[string]ColorValue)

	for _, match := range propertyPattern.FindAllStringSubmatch(content, -1) {
		prop := strings.TrimSpace(match[1])
		value := strings.TrimSpace(match[2])

		if strings.HasPrefix(value, "var(") {
			ref := referencePattern.FindStringSubmatch(value)
			if ref == nil {
				continue
			}
			colors[prop] = ColorValue{
				Type:      "reference",
				Reference: ref[1],
				RawValue:  value,
			}
			continue
		}

		colors[prop] = ColorValue{
			Type:     "color",
			Value:    value,
			RawValue: value,
		}
	}

	return colors
}

// Categorize sorts parsed properties into functional buckets by naming
// convention: brand tokens, utility- palette entries, error/warning/
// success functional colors, alpha and shadow values, and text-/bg-/
// border-/fg- semantic tokens.
func Categorize(colors map[string]ColorValue) Categories {
	cats := Categories{
		Semantic: map[string]map[string]ColorValue{
			"text":       {},
			"background": {},
			"border":     {},
			"foreground": {},
		},
		Brand:   map[string]ColorValue{},
		Utility: map[string]ColorValue{},
		Functional: map[string]map[string]ColorValue{
			"error":   {},
			"warning": {},
			"success": {},
		},
		Alpha:         map[string]ColorValue{},
		Shadows:       map[string]ColorValue{},
		Uncategorized: map[string]ColorValue{},
	}

	for prop, value := range colors {
		switch {
		case strings.Contains(prop, "brand"):
			cats.Brand[prop] = value
		case strings.HasPrefix(prop, "utility-"):
			cats.Utility[prop] = value
		case strings.Contains(prop, "error"):
			cats.Functional["error"][prop] = value
		case strings.Contains(prop, "warning"):
			cats.Functional["warning"][prop] = value
		case strings.Contains(prop, "success"):
			cats.Functional["success"][prop] = value
		case strings.Contains(prop, "alpha"):
			cats.Alpha[prop] = value
		case strings.Contains(prop, "shadow"):
			cats.Shadows[prop] = value
		case strings.HasPrefix(prop, "text-"):
			cats.Semantic["text"][prop] = value
		case strings.HasPrefix(prop, "bg-"):
			cats.Semantic["background"][prop] = value
		case strings.HasPrefix(prop, "border-"):
			cats.Semantic["border"][prop] = value
		case strings.HasPrefix(prop, "fg-"):
			cats.Semantic["foreground"][prop] = value
		default:
			cats.Uncategorized[prop] = value
		}
	}

	return cats
}

// ExtractFamilies groups utility properties into shade families.
// "utility-blue-400" belongs to family "blue" with shade "400";
// compound names like "utility-blue-light-400" form the "blue-light"
// family. Shades are ordered ascending by rank.
func ExtractFamilies(utility map[string]ColorValue) map[string][]Shade {
	families := make(map[string][]Shade)

	props := make([]string, 0, len(utility))
	for prop := range utility {
		props = append(props, prop)
	}
	sort.Strings(props)

	for _, prop := range props {
		if !strings.HasPrefix(prop, "utility-") {
			continue
		}
		parts := strings.Split(strings.TrimPrefix(prop, "utility-"), "-")
		if len(parts) < 2 {
			continue
		}

		var family, shade string
		if len(parts) >= 3 && (parts[1] == "light" || parts[1] == "dark") {
			family = parts[0] + "-" + parts[1]
			shade = parts[2]
		} else {
			family = parts[0]
			shade = parts[1]
		}

		families[family] = append(families[family], Shade{
			Shade:    shade,
			Property: prop,
			Value:    utility[prop].Resolved(),
		})
	}

	for _, shades := range families {
		SortShades(shades)
	}

	return families
}

// Build assembles a full palette document from a CSS stylesheet.
func Build(cssContent, sourceFile string) *Palette {
	colors := ParseCSS(cssContent)
	cats := Categorize(colors)
	families := ExtractFamilies(cats.Utility)

	semanticCount := 0
	for _, group := range cats.Semantic {
		semanticCount += len(group)
	}
	functionalCount := 0
	for _, group := range cats.Functional {
		functionalCount += len(group)
	}

	familyNames := make([]string, 0, len(families))
	for name := range families {
		familyNames = append(familyNames, name)
	}
	sort.Strings(familyNames)

	return &Palette{
		Summary: Summary{
			TotalProperties: len(colors),
			Categories: map[string]int{
				"brand":         len(cats.Brand),
				"utility":       len(cats.Utility),
				"semantic":      semanticCount,
				"functional":    functionalCount,
				"alpha":         len(cats.Alpha),
				"shadows":       len(cats.Shadows),
				"uncategorized": len(cats.Uncategorized),
			},
			ColorFamilies: familyNames,
			FamilyCount:   len(families),
		},
		Colors:     colors,
		Categories: cats,
		Families:   families,
		SourceFile: sourceFile,
	}
}
