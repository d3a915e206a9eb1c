package tui

import (
	"strings"
	"testing"

	"brandfind/internal/gallery"
	"brandfind/internal/inventory"
	"brandfind/internal/logging"
	"brandfind/internal/resolver"

	tea "github.com/charmbracelet/bubbletea"
)

func newBrowseTestModel(t *testing.T) BrowseModel {
	t.Helper()
	logger, _ := logging.NewTestLogger()

	inv := &inventory.Inventory{
		Assets: map[string]map[string]inventory.Asset{
			"warewulf": {
				"horizontal_black": {
					URL:        "https://assets.example.com/warewulf/horizontal_black.png",
					Filename:   "Warewulf_Logo_Horizontal_Black.png",
					Type:       "logo",
					Layout:     "horizontal",
					Color:      "black",
					Background: "light",
				},
			},
		},
		Index: inventory.Index{Products: []string{"warewulf"}},
	}

	return NewBrowseModel(
		resolver.New(inv, nil, logger, resolver.Options{}),
		gallery.NewEngine("http://localhost:3003"),
		logger,
	)
}

func sized(t *testing.T, m BrowseModel) BrowseModel {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	model, ok := updated.(BrowseModel)
	if !ok {
		t.Fatalf("Update returned %T, want BrowseModel", updated)
	}
	return model
}

func TestBrowse_ViewBeforeSizing(t *testing.T) {
	m := newBrowseTestModel(t)
	if got := m.View(); got != "Loading..." {
		t.Errorf("unsized view = %q, want loading placeholder", got)
	}
}

func TestBrowse_WindowSizeShowsMenu(t *testing.T) {
	m := sized(t, newBrowseTestModel(t))

	if !m.ready {
		t.Fatal("model should be ready after window sizing")
	}

	// An empty query resolves to the product menu.
	view := m.View()
	if !strings.Contains(view, "Warewulf") {
		t.Errorf("initial view should list products:\n%s", view)
	}
	if !strings.Contains(view, "Enter to search") {
		t.Errorf("view missing help footer:\n%s", view)
	}
}

func TestBrowse_EnterRunsQuery(t *testing.T) {
	m := sized(t, newBrowseTestModel(t))
	m.input.SetValue("warewulf logos")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(BrowseModel)

	if m.lastQuery != "warewulf logos" {
		t.Errorf("lastQuery = %q, want the submitted query", m.lastQuery)
	}
	if m.lastURL != "http://localhost:3003?query=warewulf+logos" {
		t.Errorf("unexpected gallery url: %q", m.lastURL)
	}
	if m.lastBand == "" {
		t.Error("expected a confidence band after a query")
	}
	if !strings.Contains(m.View(), "gallery: http://localhost:3003?query=warewulf+logos") {
		t.Errorf("view missing gallery link:\n%s", m.View())
	}
}

func TestBrowse_QuitKeys(t *testing.T) {
	m := sized(t, newBrowseTestModel(t))

	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		_, cmd := m.Update(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("key %v should quit", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %v produced %T, want tea.QuitMsg", key, cmd())
		}
	}
}

func TestBrowse_TypingUpdatesInput(t *testing.T) {
	m := sized(t, newBrowseTestModel(t))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ciq")})
	m = updated.(BrowseModel)

	if m.input.Value() != "ciq" {
		t.Errorf("input value = %q, want %q", m.input.Value(), "ciq")
	}
}

func TestResponseMarkdown_RendersThroughGlamour(t *testing.T) {
	m := sized(t, newBrowseTestModel(t))
	m.input.SetValue("warewulf horizontal logos for light backgrounds")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(BrowseModel)

	if !strings.Contains(m.View(), "horizontal_black.png") {
		t.Errorf("result pane missing the matched asset:\n%s", m.View())
	}
}
