package tui

import (
	"fmt"
	"sort"
	"strings"

	"brandfind/internal/resolver"
	"brandfind/internal/tui/styles"
)

// ResponseMarkdown renders a resolver response as markdown suitable for
// glamour. Every response shape gets a readable rendering; unknown or
// partial shapes degrade to the message plus whatever lists are set.
func ResponseMarkdown(resp resolver.Response) string {
	var b strings.Builder

	b.WriteString(resp.Message)
	b.WriteString("\n")

	if resp.Error != "" && resp.Error != resp.Message {
		fmt.Fprintf(&b, "\n**Error:** %s\n", resp.Error)
	}

	if resp.Asset != nil {
		b.WriteString("\n")
		writeAsset(&b, *resp.Asset)
	}
	if resp.Reason != "" {
		fmt.Fprintf(&b, "\n_%s_\n", resp.Reason)
	}

	writeAssetList(&b, "", resp.Assets)

	if resp.Logos != nil && resp.Logos.Count > 0 {
		writeAssetList(&b, fmt.Sprintf("Logos (%d)", resp.Logos.Count), resp.Logos.Assets)
	}
	if resp.Documents != nil && resp.Documents.Count > 0 {
		writeAssetList(&b, fmt.Sprintf("Documents (%d)", resp.Documents.Count), resp.Documents.Assets)
	}
	if resp.Also != nil {
		fmt.Fprintf(&b, "\n_%s_\n", resp.Also.Message)
		writeAssetList(&b, "", resp.Also.Sample)
	}

	for _, group := range resp.ByProduct {
		writeAssetList(&b, fmt.Sprintf("%s (%d)", group.Product, group.Count), group.Assets)
	}
	if resp.Summary != "" {
		fmt.Fprintf(&b, "\n%s\n", resp.Summary)
	}

	writeGuided(&b, resp)
	writeQuestion(&b, resp)
	writeColors(&b, resp)

	if len(resp.AvailableProducts) > 0 && len(resp.Examples) > 0 {
		b.WriteString("\n**Try:**\n")
		for _, ex := range resp.Examples {
			fmt.Fprintf(&b, "- `%s`\n", ex)
		}
	}
	if resp.Help != "" {
		fmt.Fprintf(&b, "\n%s\n", resp.Help)
	}
	if resp.Suggestion != "" {
		fmt.Fprintf(&b, "\n💡 %s\n", resp.Suggestion)
	}

	return b.String()
}

func writeAsset(b *strings.Builder, a resolver.AssetView) {
	desc := a.Description
	if desc == "" {
		desc = a.Filename
	}
	fmt.Fprintf(b, "- **%s**\n  %s\n", desc, a.URL)
	if a.Reason != "" {
		fmt.Fprintf(b, "  _%s_\n", a.Reason)
	}
}

func writeAssetList(b *strings.Builder, heading string, assets []resolver.AssetView) {
	if len(assets) == 0 {
		return
	}
	b.WriteString("\n")
	if heading != "" {
		fmt.Fprintf(b, "**%s**\n\n", heading)
	}
	for _, a := range assets {
		writeAsset(b, a)
	}
}

func writeGuided(b *strings.Builder, resp resolver.Response) {
	if len(resp.LayoutOptions) == 0 {
		return
	}
	b.WriteString("\n**Layouts:**\n\n")
	for _, opt := range resp.LayoutOptions {
		fmt.Fprintf(b, "- **%s** (%d) - %s\n  %s\n", opt.Layout, opt.Count, opt.Description, opt.ExampleURL)
		if opt.BackgroundNote != "" {
			fmt.Fprintf(b, "  _%s_\n", opt.BackgroundNote)
		}
	}
}

func writeQuestion(b *strings.Builder, resp resolver.Response) {
	question := resp.Question
	if question == "" {
		question = resp.BackgroundQuestion
	}
	if question != "" {
		fmt.Fprintf(b, "\n**%s**\n\n", question)
	}
	for _, opt := range resp.Options {
		fmt.Fprintf(b, "- **%s**: %s", opt.Value, opt.Label)
		if opt.Description != "" {
			fmt.Fprintf(b, " - %s", opt.Description)
		}
		b.WriteString("\n")
	}
	for _, opt := range resp.BackgroundOptions {
		fmt.Fprintf(b, "- **%s**: %s (e.g. %s)\n", opt.Type, opt.Description, opt.Example)
	}
}

func writeColors(b *strings.Builder, resp resolver.Response) {
	if resp.Overview != nil {
		fmt.Fprintf(b, "\n%d color properties in %d families\n",
			resp.Overview.TotalProperties, resp.Overview.ColorFamilies)
	}

	if len(resp.Families) > 0 {
		b.WriteString("\n**Color families:**\n\n")
		for _, fam := range resp.Families {
			fmt.Fprintf(b, "- **%s**: %d shades (%s to %s), e.g. `%s`\n",
				fam.Family, fam.ShadesCount, fam.Lightest, fam.Darkest, fam.Example)
		}
	}

	if len(resp.Shades) > 0 {
		fmt.Fprintf(b, "\n**%s shades:**\n\n", resp.Family)
		for _, shade := range resp.Shades {
			fmt.Fprintf(b, "- `%s` %s = `%s`\n", shade.Property, shade.Shade, shade.Value)
		}
	}

	if resp.BrandColors != nil {
		fmt.Fprintf(b, "\n**Brand colors (%d):**\n\n", resp.BrandColors.Count)
		for _, c := range resp.BrandColors.Colors {
			fmt.Fprintf(b, "- `%s` = `%s`\n", c.Property, c.Value)
		}
		if resp.BrandColors.Note != "" {
			fmt.Fprintf(b, "\n_%s_\n", resp.BrandColors.Note)
		}
	}

	writeTokenCategories(b, "Semantic colors", resp.SemanticColors)
	writeTokenCategories(b, "Functional colors", resp.FunctionalColors)

	if resp.DesignSystem != nil {
		ds := resp.DesignSystem
		fmt.Fprintf(b, "\n**Design system** (%s theme, %d tokens)\n\n", ds.Theme, ds.TotalTokens)
		for _, group := range []struct {
			name string
			g    resolver.TokenGroup
		}{
			{"Semantic tokens", ds.Structure.SemanticTokens},
			{"Brand tokens", ds.Structure.BrandTokens},
			{"Utility palette", ds.Structure.UtilityPalette},
			{"Functional tokens", ds.Structure.FunctionalTokens},
		} {
			fmt.Fprintf(b, "- **%s** (%d): %s\n", group.name, group.g.Count, group.g.Description)
		}
	}

	if resp.Usage != "" {
		fmt.Fprintf(b, "\n_%s_\n", resp.Usage)
	}
}

func writeTokenCategories(b *strings.Builder, heading string, categories map[string][]resolver.TokenView) {
	if len(categories) == 0 {
		return
	}
	fmt.Fprintf(b, "\n**%s:**\n\n", heading)
	for _, key := range sortedCategoryKeys(categories) {
		fmt.Fprintf(b, "_%s_\n", key)
		for _, tok := range categories[key] {
			fmt.Fprintf(b, "- `%s` = `%s`\n", tok.Property, tok.Value)
		}
	}
}

func sortedCategoryKeys(m map[string][]resolver.TokenView) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// bandBadge renders the confidence band with its color.
func bandBadge(band resolver.Band) string {
	label := strings.ToUpper(string(band))
	switch band {
	case resolver.BandHigh:
		return styles.BandHighStyle.Render(label)
	case resolver.BandMedium:
		return styles.BandMediumStyle.Render(label)
	case resolver.BandLow:
		return styles.BandLowStyle.Render(label)
	default:
		return styles.BandNeutralStyle.Render(label)
	}
}
