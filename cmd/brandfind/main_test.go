package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testMetadata = `{
	"assets": {
		"warewulf": {
			"horizontal_black": {
				"url": "https://assets.example.com/warewulf/horizontal_black.png",
				"filename": "Warewulf_Logo_Horizontal_Black.png",
				"type": "logo",
				"layout": "horizontal",
				"color": "black",
				"background": "light"
			}
		}
	},
	"rules": {},
	"index": {
		"products": ["warewulf"],
		"layouts": ["horizontal"],
		"total_assets": 1
	}
}`

func writeMetadataFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "asset-inventory.json")
	if err := os.WriteFile(path, []byte(testMetadata), 0o644); err != nil {
		t.Fatalf("write metadata: %v", err)
	}
	return path
}

func TestDefaultToQuery(t *testing.T) {
	root := newRootCmd()

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"warewulf", "logo"}, "query"},
		{[]string{"query", "warewulf"}, "query"},
		{[]string{"serve"}, "serve"},
		{[]string{"help"}, "help"},
		{[]string{"--help"}, "--help"},
		{[]string{}, ""},
	}

	for _, tt := range tests {
		got := defaultToQuery(root, tt.args)
		if tt.want == "" {
			if len(got) != 0 {
				t.Errorf("defaultToQuery(%v) = %v, want empty", tt.args, got)
			}
			continue
		}
		if len(got) == 0 || got[0] != tt.want {
			t.Errorf("defaultToQuery(%v) = %v, want leading %q", tt.args, got, tt.want)
		}
	}
}

func TestResolverOptions(t *testing.T) {
	tests := []struct {
		assetType string
		want      string
		wantErr   bool
	}{
		{"all", "", false},
		{"", "", false},
		{"logo", "logo", false},
		{"document", "document", false},
		{"icons", "", true},
	}

	for _, tt := range tests {
		opts, err := resolverOptions(false, tt.assetType)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolverOptions(%q) error = %v, wantErr %v", tt.assetType, err, tt.wantErr)
			continue
		}
		if err == nil && opts.AssetType != tt.want {
			t.Errorf("resolverOptions(%q).AssetType = %q, want %q", tt.assetType, opts.AssetType, tt.want)
		}
	}
}

func TestQueryCommand_WritesJSON(t *testing.T) {
	metadata := writeMetadataFile(t)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{
		"query",
		"--metadata", metadata,
		"--colors", filepath.Join(t.TempDir(), "missing.json"),
		"warewulf", "horizontal", "logos", "for", "light", "backgrounds",
	})

	if err := root.Execute(); err != nil {
		t.Fatalf("query failed: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("stdout is not valid JSON: %v\n%s", err, out.String())
	}
	if resp["confidence"] == nil {
		t.Error("response missing confidence band")
	}
	if !strings.Contains(out.String(), "horizontal_black.png") {
		t.Errorf("response missing matched asset:\n%s", out.String())
	}
}

func TestQueryCommand_BadMetadataFails(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{
		"query",
		"--metadata", filepath.Join(t.TempDir(), "missing.json"),
		"--colors", filepath.Join(t.TempDir(), "missing.json"),
		"warewulf",
	})

	if err := root.Execute(); err == nil {
		t.Fatal("expected an error for a missing inventory")
	}
}

func TestQueryCommand_RejectsBadAssetType(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"query", "--asset-type", "icons", "warewulf"})

	if err := root.Execute(); err == nil {
		t.Fatal("expected an error for an invalid asset type")
	}
}

func TestGenCommand_WritesInventory(t *testing.T) {
	base := t.TempDir()
	logoDir := filepath.Join(base, "assets", "products", "warewulf", "logos")
	if err := os.MkdirAll(logoDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	logo := filepath.Join(logoDir, "Warewulf_Logo_Horizontal_Black_Lg.png")
	if err := os.WriteFile(logo, []byte("png"), 0o644); err != nil {
		t.Fatalf("write logo: %v", err)
	}

	output := filepath.Join(t.TempDir(), "asset-inventory.json")
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"gen", "assets", "--base-path", base, "--output", output})

	if err := root.Execute(); err != nil {
		t.Fatalf("gen failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "Warewulf_Logo_Horizontal_Black_Lg.png") {
		t.Errorf("inventory missing scanned logo:\n%s", data)
	}
}

func TestGenColorsCommand_WritesPalette(t *testing.T) {
	cssPath := filepath.Join(t.TempDir(), "colors-dark.css")
	css := ":root {\n  --brand-primary: #229922;\n  --utility-blue-500: #3366cc;\n  --text-primary: var(--utility-blue-500);\n}\n"
	if err := os.WriteFile(cssPath, []byte(css), 0o644); err != nil {
		t.Fatalf("write css: %v", err)
	}

	output := filepath.Join(t.TempDir(), "color-palette-dark.json")
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"gen", "colors", "--css", cssPath, "--output", output})

	if err := root.Execute(); err != nil {
		t.Fatalf("gen colors failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	for _, want := range []string{`"total_properties": 3`, `"brand-primary"`, `"blue"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("palette missing %s:\n%s", want, data)
		}
	}
}
