// Package main is the entry point for the brandfind CLI application.
//
// brandfind answers free-text brand asset requests over a pre-generated
// asset inventory. The same resolver backs every mode:
//
//   - query:  one-shot lookup, JSON response on stdout
//   - serve:  MCP server on stdio for AI assistant integration
//   - browse: interactive terminal UI
//   - gen:    regenerate the inventory JSON from an asset tree
//
// Diagnostics go to stderr so stdout stays machine-readable.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"brandfind/internal/config"
	"brandfind/internal/inventory"
	"brandfind/internal/logging"
	"brandfind/internal/mcp"
	"brandfind/internal/metagen"
	"brandfind/internal/palette"
	"brandfind/internal/resolver"
	"brandfind/internal/tui"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	root.SetArgs(defaultToQuery(root, os.Args[1:]))
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// defaultToQuery rewrites bare-request invocations so that
// "brandfind warewulf logo" means "brandfind query warewulf logo".
func defaultToQuery(root *cobra.Command, args []string) []string {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return args
	}
	for _, cmd := range root.Commands() {
		if cmd.Name() == args[0] || cmd.HasAlias(args[0]) {
			return args
		}
	}
	if args[0] == "help" || args[0] == "completion" {
		return args
	}
	return append([]string{"query"}, args...)
}

// rootFlags holds persistent source overrides shared by all subcommands.
type rootFlags struct {
	metadataSource string
	paletteSource  string
	galleryURL     string
}

// loadConfig loads the user config and applies any flag overrides.
func (f *rootFlags) loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if f.metadataSource != "" {
		cfg.MetadataSource = f.metadataSource
	}
	if f.paletteSource != "" {
		cfg.PaletteSource = f.paletteSource
	}
	if f.galleryURL != "" {
		cfg.GalleryURL = f.galleryURL
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "brandfind",
		Short: "Find CIQ brand assets, logos, documents, and colors",
		Long: "brandfind answers free-text requests for brand assets: logos by\n" +
			"layout and background, sales and technical documents, and the\n" +
			"color design system. Asset metadata is fetched from a published\n" +
			"inventory; no asset files are downloaded.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.metadataSource, "metadata", "", "asset inventory URL or file path (overrides config)")
	root.PersistentFlags().StringVar(&flags.paletteSource, "colors", "", "color palette URL or file path (overrides config)")
	root.PersistentFlags().StringVar(&flags.galleryURL, "gallery-url", "", "web gallery base URL for deep links (overrides config)")

	root.AddCommand(newQueryCmd(flags))
	root.AddCommand(newServeCmd(flags))
	root.AddCommand(newBrowseCmd(flags))
	root.AddCommand(newGenCmd())

	return root
}

// resolverOptions converts CLI flag values into resolver options. The
// "all" asset type means no restriction.
func resolverOptions(showAllVariants bool, assetType string) (resolver.Options, error) {
	switch assetType {
	case "all":
		assetType = ""
	case "", "logo", "document":
	default:
		return resolver.Options{}, fmt.Errorf("invalid asset type %q: must be logo, document, or all", assetType)
	}
	return resolver.Options{ShowAllVariants: showAllVariants, AssetType: assetType}, nil
}

func newQueryCmd(flags *rootFlags) *cobra.Command {
	var (
		showAllVariants bool
		assetType       string
	)

	cmd := &cobra.Command{
		Use:   "query [request...]",
		Short: "Answer a free-text asset request and print the JSON response",
		Example: `  brandfind query warewulf horizontal logo for dark backgrounds
  brandfind query "solution briefs"
  brandfind query --asset-type document rlc-lts`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewAppLogger()

			opts, err := resolverOptions(showAllVariants, assetType)
			if err != nil {
				return err
			}

			cfg, err := flags.loadConfig()
			if err != nil {
				logger.Error("Error loading config", "error", err)
				return err
			}

			inv, err := inventory.Load(cfg.MetadataSource, cfg.FetchTimeout(), logger)
			if err != nil {
				logger.Error("Failed to load asset inventory", "error", err)
				return err
			}

			pal, err := palette.Load(cfg.PaletteSource, cfg.FetchTimeout(), logger)
			if err != nil {
				logger.Warn("Color palette unavailable, color queries will be degraded", "error", err)
				pal = nil
			}

			res := resolver.New(inv, pal, logger, opts)
			resp := res.Find(strings.Join(args, " "))

			out, err := json.Marshal(resp)
			if err != nil {
				return fmt.Errorf("failed to encode response: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAllVariants, "show-all-variants", false, "list every matching variant instead of the top few")
	cmd.Flags().StringVar(&assetType, "asset-type", "all", "restrict matches to logo, document, or all")

	return cmd
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdio for AI assistant integration",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewAppLogger()

			cfg, err := flags.loadConfig()
			if err != nil {
				logger.Error("Error loading config", "error", err)
				return err
			}

			return mcp.NewServer(cfg, logger).Start()
		},
	}
}

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	var (
		showAllVariants bool
		assetType       string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse brand assets interactively in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewAppLogger()

			opts, err := resolverOptions(showAllVariants, assetType)
			if err != nil {
				return err
			}

			cfg, err := flags.loadConfig()
			if err != nil {
				logger.Error("Error loading config", "error", err)
				return err
			}

			return tui.Run(cfg, logger, opts)
		},
	}

	cmd.Flags().BoolVar(&showAllVariants, "show-all-variants", false, "list every matching variant instead of the top few")
	cmd.Flags().StringVar(&assetType, "asset-type", "all", "restrict matches to logo, document, or all")

	return cmd
}

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Regenerate metadata documents from the brand assets repository",
	}
	cmd.AddCommand(newGenAssetsCmd())
	cmd.AddCommand(newGenColorsCmd())
	return cmd
}

func newGenAssetsCmd() *cobra.Command {
	var (
		basePath string
		output   string
		baseURL  string
	)

	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Generate the asset inventory JSON from an asset tree",
		Long: "gen assets scans an assets directory laid out by the repository\n" +
			"conventions and writes the inventory JSON consumed by query,\n" +
			"serve, and browse. Run it from the brand assets repository after\n" +
			"adding or renaming files.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewAppLogger()

			g := metagen.New(baseURL, logger)
			if err := g.WriteFile(basePath, output); err != nil {
				logger.Error("Inventory generation failed", "error", err)
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&basePath, "base-path", ".", "root of the brand assets repository")
	cmd.Flags().StringVar(&output, "output", "metadata/asset-inventory.json", "path of the inventory JSON to write")
	cmd.Flags().StringVar(&baseURL, "base-url", metagen.DefaultBaseURL, "base URL prefixed to generated asset URLs")

	return cmd
}

func newGenColorsCmd() *cobra.Command {
	var (
		cssPath string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "colors",
		Short: "Generate the color palette JSON from a CSS token file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewAppLogger()

			css, err := os.ReadFile(cssPath)
			if err != nil {
				logger.Error("Failed to read CSS file", "path", cssPath, "error", err)
				return fmt.Errorf("failed to read %s: %w", cssPath, err)
			}

			pal := palette.Build(string(css), filepath.Base(cssPath))
			data, err := json.MarshalIndent(pal, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode palette: %w", err)
			}

			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			logger.Info("Wrote color palette", "properties", pal.Summary.TotalProperties, "output", output)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&cssPath, "css", "assets/global/colors/colors-dark.css", "CSS custom-property file to parse")
	cmd.Flags().StringVar(&output, "output", "assets/global/colors/color-palette-dark.json", "path of the palette JSON to write")

	return cmd
}
