// Package mcp implements the Model Context Protocol (MCP) server for
// brandfind using the mcp-go library.
//
// The server exposes brand asset lookup as tools an AI assistant can
// call: free-text asset search, search with a gallery deep link, and
// direct link generation from explicit configuration. It communicates
// via stdin/stdout using JSON-RPC 2.0 as specified by the MCP standard.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"brandfind/internal/config"
	"brandfind/internal/gallery"
	"brandfind/internal/inventory"
	"brandfind/internal/logging"
	"brandfind/internal/palette"
	"brandfind/internal/resolver"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const defaultRequest = "CIQ logo"

// Server is the brandfind MCP server instance.
type Server struct {
	config    *config.Config
	logger    *logging.AppLogger
	resolver  *resolver.Resolver
	engine    *gallery.Engine
	mcpServer *server.MCPServer
}

// NewServer creates a server; data loading happens in Start.
func NewServer(cfg *config.Config, logger *logging.AppLogger) *Server {
	return &Server{
		config: cfg,
		logger: logger,
	}
}

// Start loads the asset snapshot, registers the tools, and serves on
// stdio until the client disconnects.
func (s *Server) Start() error {
	s.logger.Info("Initializing MCP server")

	if err := s.initComponents(); err != nil {
		return err
	}

	s.mcpServer = server.NewMCPServer(
		config.APP_NAME,
		s.config.Version,
		server.WithToolCapabilities(true),
	)
	s.registerTools()

	s.logger.Info("MCP server created, starting stdio communication")
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}

	return nil
}

// initComponents loads the inventory (required) and the palette
// (optional: color queries degrade without it).
func (s *Server) initComponents() error {
	inv, err := inventory.Load(s.config.MetadataSource, s.config.FetchTimeout(), s.logger)
	if err != nil {
		return fmt.Errorf("failed to load asset inventory: %w", err)
	}

	pal, err := palette.Load(s.config.PaletteSource, s.config.FetchTimeout(), s.logger)
	if err != nil {
		s.logger.Warn("Color palette unavailable, color queries will be degraded", "error", err)
		pal = nil
	}

	s.resolver = resolver.New(inv, pal, s.logger, resolver.Options{})
	s.engine = gallery.NewEngine(s.config.GalleryURL)
	return nil
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcpgo.NewTool("get_brand_assets",
			mcpgo.WithDescription("Find brand assets, logos, documents, and colors from a free-text request"),
			mcpgo.WithString("request", mcpgo.Description("Free-text asset request, e.g. 'CIQ logo for dark backgrounds'")),
		),
		s.handleGetBrandAssets,
	)

	s.mcpServer.AddTool(
		mcpgo.NewTool("search_with_url",
			mcpgo.WithDescription("Find brand assets and generate a web gallery search URL for the request"),
			mcpgo.WithString("request", mcpgo.Description("Free-text asset request")),
		),
		s.handleSearchWithURL,
	)

	s.mcpServer.AddTool(
		mcpgo.NewTool("generate_asset_link",
			mcpgo.WithDescription("Generate a direct gallery link for a specific asset configuration"),
			mcpgo.WithString("product", mcpgo.Required(), mcpgo.Description("Product name, e.g. 'warewulf'")),
			mcpgo.WithString("layout", mcpgo.Description("Logo layout: icon, horizontal, or vertical")),
			mcpgo.WithString("theme", mcpgo.Description("Background theme: light or dark")),
			mcpgo.WithString("format", mcpgo.Description("File format: png, svg, or pdf")),
		),
		s.handleGenerateAssetLink,
	)
}

func (s *Server) handleGetBrandAssets(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	request := req.GetString("request", defaultRequest)
	s.logger.Debug("MCP asset search", "request", request)

	resp := s.resolver.Find(request)
	return jsonResult(resp)
}

func (s *Server) handleSearchWithURL(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	request := req.GetString("request", defaultRequest)
	s.logger.Debug("MCP URL search", "request", request)

	result := struct {
		URL           string            `json:"url"`
		SearchResults resolver.Response `json:"search_results"`
		Query         string            `json:"query"`
		Message       string            `json:"message"`
		Confidence    string            `json:"confidence"`
	}{
		URL:           s.engine.SearchURL(request),
		SearchResults: s.resolver.Find(request),
		Query:         request,
		Message:       fmt.Sprintf("Search URL generated for: %s", request),
		Confidence:    "medium",
	}
	return jsonResult(result)
}

func (s *Server) handleGenerateAssetLink(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	product, err := req.RequireString("product")
	if err != nil {
		return mcpgo.NewToolResultError("product is required"), nil
	}

	link := s.engine.DirectLink(
		product,
		req.GetString("layout", ""),
		req.GetString("theme", ""),
		req.GetString("format", ""),
	)
	return jsonResult(link)
}

func jsonResult(v any) (*mcpgo.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcpgo.NewToolResultError(fmt.Sprintf("failed to encode response: %v", err)), nil
	}
	return mcpgo.NewToolResultText(string(data)), nil
}

// Stop gracefully shuts down the MCP server.
func (s *Server) Stop() error {
	s.logger.Info("Stopping MCP server")
	// The mcp-go server handles cleanup when stdio closes.
	return nil
}
