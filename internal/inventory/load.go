package inventory

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"brandfind/internal/logging"
)

// ReadSource reads the raw bytes of a metadata document. A source
// starting with http:// or https:// is fetched with a single attempt
// bounded by timeout; anything else is treated as a local file path.
// No retries: on failure callers surface a clear "data unavailable"
// error instead.
func ReadSource(source string, timeout time.Duration) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		client := &http.Client{Timeout: timeout}
		resp, err := client.Get(source)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", source, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("failed to fetch %s: unexpected status %s", source, resp.Status)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response from %s: %w", source, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return data, nil
}

// Load fetches, parses, and validates the asset inventory. Malformed or
// structurally incomplete metadata is a hard load failure, not a
// degraded mode.
func Load(source string, timeout time.Duration, logger *logging.AppLogger) (*Inventory, error) {
	data, err := ReadSource(source, timeout)
	if err != nil {
		return nil, err
	}

	inv, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid metadata from %s: %w", source, err)
	}

	logger.Info("Loaded asset inventory",
		"source", source,
		"totalAssets", inv.Index.TotalAssets,
		"products", len(inv.Index.Products),
	)

	return inv, nil
}

// Parse decodes and validates an inventory document.
func Parse(data []byte) (*Inventory, error) {
	// Presence of the top-level keys is checked before decoding into the
	// typed struct; a zero-value section is indistinguishable from a
	// missing one after unmarshalling.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse metadata JSON: %w", err)
	}
	for _, key := range []string{"assets", "rules", "index"} {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("invalid metadata structure: missing %q", key)
		}
	}

	var inv Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}

	if err := inv.Validate(); err != nil {
		return nil, err
	}

	return &inv, nil
}

// Validate enforces the snapshot invariants: every document asset has a
// non-empty doc_type and every logo asset has a layout drawn from the
// index's layout list.
func (inv *Inventory) Validate() error {
	knownLayouts := make(map[string]bool, len(inv.Index.Layouts))
	for _, layout := range inv.Index.Layouts {
		knownLayouts[layout] = true
	}

	for _, product := range inv.ProductNames() {
		for _, key := range inv.AssetKeys(product) {
			asset := inv.Assets[product][key]
			if asset.IsDocument() {
				if asset.DocType == "" {
					return fmt.Errorf("invalid metadata: document %s/%s has empty doc_type", product, key)
				}
				continue
			}
			if asset.Layout == "" {
				return fmt.Errorf("invalid metadata: logo %s/%s has empty layout", product, key)
			}
			if len(knownLayouts) > 0 && !knownLayouts[asset.Layout] {
				return fmt.Errorf("invalid metadata: logo %s/%s has unknown layout %q", product, key, asset.Layout)
			}
		}
	}

	return nil
}
