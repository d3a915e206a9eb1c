// Package gallery generates web gallery deep links from free-text
// queries. It classifies the query with regular expressions, extracts
// filter parameters with longest-alias matching, and picks between a
// direct asset-modal URL, a filtered search URL, and a plain search URL
// based on a confidence estimate.
package gallery

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Query intents.
const (
	IntentSpecificAsset  = "specific_asset"
	IntentBrowseCategory = "browse_category"
	IntentGenericSearch  = "generic_search"
)

// URL actions, in decreasing specificity.
const (
	ActionDirectModal    = "direct_modal"
	ActionFilteredSearch = "filtered_search"
	ActionGenericSearch  = "generic_search"
)

// Confidence thresholds gating each action.
const (
	directModalThreshold    = 0.8
	filteredSearchThreshold = 0.5
)

var (
	specificAssetPatterns = compileAll(
		`i need a? (.+?) (logo|icon) (in|as) (\w+)`,
		`i need a? (.+?) (logo|icon) for (.+?) (background|theme)`,
		`get me the (.+?) (logo|icon) in (\w+) (\w+)`,
		`find a (.+?) (\w+) (logo|icon) for (.+)`,
		`(.+?) (logo|icon) (\w+) (\w+) mode`,
	)

	browseCategoryPatterns = compileAll(
		`all (.+?) (logos|icons|assets)`,
		`everything for (.+)`,
		`complete (.+?) (set|package|collection)`,
	)

	genericSearchPatterns = compileAll(
		`(.+?) (logos|icons|assets)`,
		`show me (.+?) (stuff|materials|assets)`,
		`what (.+?) (do you have|are available)`,
		`find (.+?) (brand|product) (assets|materials)`,
	)

	wordPattern = regexp.MustCompile(`\b\w+\b`)
)

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}

// paramAliases maps one parameter value to its alias substrings. Tables
// are ordered slices so extraction is deterministic: among equal-length
// aliases the earlier-declared value wins.
type paramAliases struct {
	Value   string
	Aliases []string
}

var productParams = []paramAliases{
	{"ciq", []string{"ciq", "company", "brand", "main"}},
	{"fuzzball", []string{"fuzzball", "fuzz ball", "fuzz", "fuz", "workload", "hpc"}},
	{"warewulf", []string{"warewulf", "ware", "war", "cluster", "provisioning"}},
	{"apptainer", []string{"apptainer", "app", "container", "scientific"}},
	{"ascender", []string{"ascender", "asc", "automation", "ansible"}},
	{"bridge", []string{"bridge", "bri", "centos", "migration"}},
	{"support", []string{"support", "sup", "ciq support"}},
	{"rlc", []string{"rlc", "rocky linux commercial", "rocky linux"}},
	{"rlc-ai", []string{"rlc-ai", "rlc ai", "rocky linux ai"}},
	{"rlc-hardened", []string{"rlc-hardened", "rlc hardened", "rocky linux hardened", "rock", "rocky", "roc"}},
	{"rlc-lts", []string{"rlc-lts", "rlc lts", "rocky linux lts", "long term support", "lts"}},
}

var formatParams = []paramAliases{
	{"svg", []string{"svg", "vector"}},
	{"png", []string{"png", "raster", "bitmap"}},
	{"pdf", []string{"pdf", "document"}},
}

var themeParams = []paramAliases{
	{"light", []string{"light", "white", "light background", "light mode"}},
	{"dark", []string{"dark", "black", "dark background", "dark mode", "dark theme"}},
}

var layoutParams = []paramAliases{
	{"icon", []string{"symbol", "icon", "favicon", "app icon", "square"}},
	{"horizontal", []string{"horizontal", "wide", "header", "lockup"}},
	{"vertical", []string{"vertical", "tall", "stacked"}},
	{"onecolor", []string{"1-color", "1 color", "one color", "onecolor"}},
	{"twocolor", []string{"2-color", "2 color", "two color", "twocolor"}},
	{"green", []string{"green", "accent"}},
}

var sizeParams = []paramAliases{
	{"small", []string{"small", "tiny", "thumbnail"}},
	{"medium", []string{"medium", "normal", "standard"}},
	{"large", []string{"large", "big", "high-res", "high resolution"}},
}

var stopWords = map[string]struct{}{
	"i": {}, "need": {}, "want": {}, "get": {}, "find": {}, "show": {},
	"me": {}, "the": {}, "a": {}, "an": {}, "for": {}, "in": {}, "on": {},
	"with": {}, "of": {}, "and": {}, "or": {}, "but": {}, "can": {},
	"you": {}, "do": {}, "have": {}, "are": {}, "available": {},
	"please": {}, "help": {}, "looking": {},
}

// specificityPhrases each add a small confidence bonus when present.
var specificityPhrases = []string{
	"i need", "get me", "find me", "download",
	"png", "svg", "dark mode", "light mode",
}

// Parameters are the filters extracted from a query.
type Parameters struct {
	Product string `json:"product,omitempty"`
	Format  string `json:"format,omitempty"`
	Theme   string `json:"theme,omitempty"`
	Layout  string `json:"layout,omitempty"`
	Size    string `json:"size,omitempty"`
}

func (p Parameters) count() int {
	n := 0
	for _, v := range []string{p.Product, p.Format, p.Theme, p.Layout, p.Size} {
		if v != "" {
			n++
		}
	}
	return n
}

// Analysis is the full result of analyzing one query.
type Analysis struct {
	Intent      string     `json:"intent"`
	Confidence  float64    `json:"confidence"`
	Parameters  Parameters `json:"parameters"`
	Action      string     `json:"action"`
	URL         string     `json:"url"`
	Explanation string     `json:"explanation"`
	RawQuery    string     `json:"raw_query"`
}

// Link is a directly generated asset link.
type Link struct {
	URL           string     `json:"url"`
	Configuration Parameters `json:"configuration"`
	Confidence    string     `json:"confidence"`
	Message       string     `json:"message"`
}

// Engine analyzes queries against a fixed gallery base URL. Stateless
// and safe for concurrent use.
type Engine struct {
	baseURL string
}

// NewEngine builds an engine for the given gallery base URL.
func NewEngine(baseURL string) *Engine {
	return &Engine{baseURL: strings.TrimRight(baseURL, "/")}
}

// Analyze classifies a query and produces the best gallery URL for it.
func (e *Engine) Analyze(query string) Analysis {
	q := strings.TrimSpace(strings.ToLower(query))

	intent := classifyIntent(q)
	params := extractParameters(q)
	confidence := calculateConfidence(intent, params, q)
	action := determineAction(confidence, params)

	return Analysis{
		Intent:      intent,
		Confidence:  confidence,
		Parameters:  params,
		Action:      action,
		URL:         e.generateURL(action, params, q),
		Explanation: explain(intent, action, params, confidence),
		RawQuery:    query,
	}
}

// SearchURL returns a plain gallery search link for a raw request.
func (e *Engine) SearchURL(request string) string {
	params := url.Values{"query": []string{request}}
	return e.baseURL + "?" + params.Encode()
}

// DirectLink builds a link from explicit configuration instead of query
// analysis.
func (e *Engine) DirectLink(product, layout, theme, format string) Link {
	parts := []string{product}
	for _, p := range []string{layout, theme, format} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	params := url.Values{"query": []string{strings.Join(parts, " ")}}

	link := Link{
		URL: e.baseURL + "?" + params.Encode(),
		Configuration: Parameters{
			Product: product,
			Layout:  layout,
			Theme:   theme,
			Format:  format,
		},
	}

	switch {
	case theme != "" && layout != "":
		link.Confidence = "high"
		link.Message = fmt.Sprintf("Direct link to %s %s logo for %s backgrounds", product, layout, theme)
	case product != "":
		link.Confidence = "medium"
		link.Message = fmt.Sprintf("Search for %s assets", product)
	default:
		link.Confidence = "low"
		link.Message = "Generic asset browser"
	}

	return link
}

// classifyIntent tests the pattern groups in priority order: specific
// asset first, then category browse, then generic search.
func classifyIntent(q string) string {
	for _, p := range specificAssetPatterns {
		if p.MatchString(q) {
			return IntentSpecificAsset
		}
	}
	for _, p := range browseCategoryPatterns {
		if p.MatchString(q) {
			return IntentBrowseCategory
		}
	}
	for _, p := range genericSearchPatterns {
		if p.MatchString(q) {
			return IntentGenericSearch
		}
	}
	return IntentGenericSearch
}

// extractParameters runs longest-alias-wins extraction for every
// parameter type.
func extractParameters(q string) Parameters {
	return Parameters{
		Product: bestAlias(q, productParams),
		Format:  bestAlias(q, formatParams),
		Theme:   bestAlias(q, themeParams),
		Layout:  bestAlias(q, layoutParams),
		Size:    bestAlias(q, sizeParams),
	}
}

func bestAlias(q string, table []paramAliases) string {
	best := ""
	bestLen := 0
	for _, entry := range table {
		for _, alias := range entry.Aliases {
			if len(alias) > bestLen && strings.Contains(q, alias) {
				best = entry.Value
				bestLen = len(alias)
			}
		}
	}
	return best
}

// calculateConfidence combines intent strength, parameter counts,
// parameter combinations, and specificity phrasing. Rounded to two
// decimals and capped at 1.0.
func calculateConfidence(intent string, params Parameters, q string) float64 {
	var base float64
	switch intent {
	case IntentSpecificAsset:
		base = 0.7
	case IntentBrowseCategory:
		base = 0.6
	default:
		base = 0.4
	}

	boost := float64(params.count()) * 0.1
	if params.Product != "" && params.Format != "" {
		boost += 0.1
	}
	if params.Product != "" && params.Theme != "" {
		boost += 0.15
	}
	if params.Layout != "" && params.Theme != "" {
		boost += 0.1
	}

	var bonus float64
	for _, phrase := range specificityPhrases {
		if strings.Contains(q, phrase) {
			bonus += 0.05
		}
	}

	confidence := min(base+boost+bonus, 1.0)
	return float64(int(confidence*100+0.5)) / 100
}

func determineAction(confidence float64, params Parameters) string {
	switch {
	case confidence >= directModalThreshold && params.Product != "" &&
		(params.Theme != "" || params.Format != "" || params.Layout != ""):
		return ActionDirectModal
	case confidence >= filteredSearchThreshold && params.Product != "":
		return ActionFilteredSearch
	default:
		return ActionGenericSearch
	}
}

func (e *Engine) generateURL(action string, params Parameters, q string) string {
	switch action {
	case ActionDirectModal:
		return e.modalURL(params)
	case ActionFilteredSearch:
		return e.filteredSearchURL(params, q)
	default:
		return e.genericURL(q)
	}
}

// modalURL opens the gallery directly on a specific asset's modal.
func (e *Engine) modalURL(params Parameters) string {
	layout := params.Layout
	if layout == "" {
		layout = "horizontal"
	}
	theme := params.Theme
	if theme == "" {
		theme = "light"
	}

	values := url.Values{
		"modal": []string{fmt.Sprintf("%s-%s-%s", params.Product, layout, theme)},
	}
	if params.Format != "" {
		values.Set("format", params.Format)
	}
	if params.Size != "" {
		values.Set("size", params.Size)
	}

	return e.baseURL + "/?" + values.Encode()
}

func (e *Engine) filteredSearchURL(params Parameters, q string) string {
	values := url.Values{}

	if params.Product != "" {
		values.Set("query", params.Product)
	} else if terms := SearchTerms(q); len(terms) > 0 {
		values.Set("query", strings.Join(terms, " "))
	}

	if params.Format != "" {
		values.Set("fileType", strings.ToUpper(params.Format))
	}

	if containsAnyTerm(q, "logo", "icon") {
		values.Set("assetType", "logo")
	} else if containsAnyTerm(q, "document", "pdf", "brief") {
		values.Set("assetType", "document")
	}

	return e.baseURL + "/?" + values.Encode()
}

func (e *Engine) genericURL(q string) string {
	terms := SearchTerms(q)
	if len(terms) == 0 {
		return e.baseURL
	}

	values := url.Values{"query": []string{strings.Join(terms, " ")}}
	return e.baseURL + "/?" + values.Encode()
}

// SearchTerms extracts up to three meaningful terms from a query,
// dropping stop words and short tokens.
func SearchTerms(query string) []string {
	words := wordPattern.FindAllString(strings.ToLower(query), -1)

	var terms []string
	for _, word := range words {
		if _, stop := stopWords[word]; stop || len(word) <= 2 {
			continue
		}
		terms = append(terms, word)
		if len(terms) == 3 {
			break
		}
	}
	return terms
}

func containsAnyTerm(q string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(q, t) {
			return true
		}
	}
	return false
}

// explain renders the analysis as a human-readable sentence chain.
func explain(intent, action string, params Parameters, confidence float64) string {
	var parts []string

	switch intent {
	case IntentSpecificAsset:
		parts = append(parts, "This looks like a request for a specific asset")
	case IntentBrowseCategory:
		parts = append(parts, "This looks like a request to browse a category")
	default:
		parts = append(parts, "This looks like a general search request")
	}

	if found := paramList(params); len(found) > 0 {
		parts = append(parts, "Detected parameters: "+strings.Join(found, ", "))
	}

	switch action {
	case ActionDirectModal:
		parts = append(parts, "Opening specific asset modal with pre-configured options")
	case ActionFilteredSearch:
		parts = append(parts, "Showing filtered search results based on your criteria")
	default:
		parts = append(parts, "Performing broad search across all assets")
	}

	switch {
	case confidence >= 0.8:
		parts = append(parts, "High confidence - directing you to exactly what you need")
	case confidence >= 0.5:
		parts = append(parts, "Medium confidence - showing relevant filtered results")
	default:
		parts = append(parts, "Lower confidence - showing broad search results")
	}

	return strings.Join(parts, ". ") + "."
}

func paramList(params Parameters) []string {
	pairs := map[string]string{
		"product": params.Product,
		"format":  params.Format,
		"theme":   params.Theme,
		"layout":  params.Layout,
		"size":    params.Size,
	}

	var found []string
	for _, key := range []string{"product", "format", "theme", "layout", "size"} {
		if pairs[key] != "" {
			found = append(found, key+"="+pairs[key])
		}
	}
	return found
}
