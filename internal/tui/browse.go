// Package tui provides the interactive browse mode for brandfind.
//
// Browse mode is a Bubble Tea application: a single text input for
// free-text asset requests, with the resolver's answer rendered as
// markdown in a scrollable result pane. The same resolver backs the
// MCP server, so answers here match what an AI assistant would see.
package tui

import (
	"fmt"

	"brandfind/internal/config"
	"brandfind/internal/gallery"
	"brandfind/internal/inventory"
	"brandfind/internal/logging"
	"brandfind/internal/palette"
	"brandfind/internal/resolver"
	"brandfind/internal/tui/styles"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

// chrome is the number of terminal rows used outside the result pane:
// title, subtitle, input box, status line, and help footer.
const chrome = 10

// BrowseModel is the root model for browse mode.
type BrowseModel struct {
	input    textinput.Model
	viewport viewport.Model
	resolver *resolver.Resolver
	engine   *gallery.Engine
	logger   *logging.AppLogger
	renderer *glamour.TermRenderer

	lastQuery string
	lastBand  resolver.Band
	lastURL   string

	width  int
	height int
	ready  bool
}

// NewBrowseModel builds the model around an already-loaded resolver.
func NewBrowseModel(res *resolver.Resolver, engine *gallery.Engine, logger *logging.AppLogger) BrowseModel {
	input := textinput.New()
	input.Placeholder = "e.g. warewulf horizontal logo for dark backgrounds"
	input.CharLimit = 200
	input.Width = 60
	input.Focus()

	return BrowseModel{
		input:    input,
		resolver: res,
		engine:   engine,
		logger:   logger,
	}
}

func (m BrowseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width <= 0 || msg.Height <= 0 {
			m.logger.Warn("Invalid window dimensions received", "width", msg.Width, "height", msg.Height)
			return m, nil
		}
		m.width = msg.Width
		m.height = msg.Height

		paneHeight := msg.Height - chrome
		if paneHeight < 3 {
			paneHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, paneHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = paneHeight
		}
		m.renderer = newRenderer(m.viewport.Width)

		// First sizing: show the product menu so the screen is never blank.
		m = m.runQuery(m.lastQuery)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m = m.runQuery(m.input.Value())
			return m, nil
		case "pgup", "pgdown", "ctrl+u", "ctrl+d":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// runQuery resolves the request and refreshes the result pane.
func (m BrowseModel) runQuery(query string) BrowseModel {
	if !m.ready {
		return m
	}

	resp := m.resolver.Find(query)
	m.lastQuery = query
	m.lastBand = resp.Confidence
	m.lastURL = ""
	if query != "" {
		m.lastURL = m.engine.SearchURL(query)
	}
	m.logger.Debug("browse query", "query", query, "kind", resp.Kind, "confidence", resp.Confidence)

	md := ResponseMarkdown(resp)
	content, err := m.renderer.Render(md)
	if err != nil {
		m.logger.Warn("markdown rendering failed, falling back to plain text", "error", err)
		content = wordwrap.String(md, m.viewport.Width)
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
	return m
}

func (m BrowseModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := styles.HeaderContainerStyle.Render(
		styles.TitleStyle.Render("🔍 brandfind") + "\n" +
			styles.SubtitleStyle.Render("Ask for logos, documents, or brand colors"))

	status := ""
	if m.lastQuery != "" {
		status = " " + bandBadge(m.lastBand)
		if m.lastURL != "" {
			status += styles.HelpStyle.Render("gallery: " + m.lastURL)
		}
	}

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s",
		header,
		styles.InputStyle.Render(m.input.View()),
		status,
		styles.MainContainerStyle.Render(m.viewport.View()),
		styles.HelpStyle.Render("Enter to search • PgUp/PgDn to scroll • Esc to quit"),
	)
}

func newRenderer(width int) *glamour.TermRenderer {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		// Only reachable with a broken style name; fall back to auto.
		renderer, _ = glamour.NewTermRenderer(glamour.WithAutoStyle())
	}
	return renderer
}

// Run loads the asset data and starts the browse TUI. It blocks until
// the user quits.
func Run(cfg *config.Config, logger *logging.AppLogger, opts resolver.Options) error {
	inv, err := inventory.Load(cfg.MetadataSource, cfg.FetchTimeout(), logger)
	if err != nil {
		return fmt.Errorf("failed to load asset inventory: %w", err)
	}

	pal, err := palette.Load(cfg.PaletteSource, cfg.FetchTimeout(), logger)
	if err != nil {
		logger.Warn("Color palette unavailable, color queries will be degraded", "error", err)
		pal = nil
	}

	model := NewBrowseModel(
		resolver.New(inv, pal, logger, opts),
		gallery.NewEngine(cfg.GalleryURL),
		logger,
	)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse mode failed: %w", err)
	}
	return nil
}
