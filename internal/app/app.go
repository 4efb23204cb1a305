package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mkotturi/mdscope/internal/forge"
	"github.com/mkotturi/mdscope/internal/nav"
	"github.com/mkotturi/mdscope/internal/storage"
	"github.com/mkotturi/mdscope/internal/theme"
	"github.com/mkotturi/mdscope/internal/ui"
	"github.com/mkotturi/mdscope/internal/viewer"
)

// Mode represents the current input mode.
type Mode int

const (
	ModeNormal    Mode = iota
	ModeInput          // omnibox active
	ModeHistory        // history panel active
	ModeBookmarks      // bookmarks panel active
	ModeContents       // table of contents panel active
)

// inputPurpose says what a submitted omnibox value means.
type inputPurpose int

const (
	inputOpen inputPurpose = iota
	inputBookmarkTitle
	inputRenameBookmark
)

// Model is the top-level bubbletea model for mdscope.
type Model struct {
	// UI components
	docViewport   ui.DocViewport
	statusBar     ui.StatusBar
	omnibox       ui.Omnibox
	historyPanel  ui.HistoryPanel
	bookmarkPanel ui.BookmarkPanel
	tocPanel      ui.ContentsPanel

	// Document state
	doc      *viewer.Document
	headings []viewer.Heading
	rendered string

	// Navigation
	history     *nav.History
	historyFile *storage.HistoryFile
	bookmarks   *storage.BookmarkStore
	config      *storage.Config

	// Content pipeline
	fetcher     *viewer.Fetcher
	loader      *viewer.Loader
	resolver    *forge.Resolver
	renderCache *lru.Cache[string, string] // rendered documents

	keys          KeyMap
	mode          Mode
	purpose       inputPurpose
	renameIndex   int
	width         int
	height        int
	viewportWidth int
	lastGKey      bool // for "gg" detection
	ready         bool
	loading       bool
	cancelFunc    context.CancelFunc
	startLocation nav.Location
}

// docLoadedMsg is sent when a document finishes loading.
type docLoadedMsg struct {
	location nav.Location
	doc      *viewer.Document
	err      error
	remember bool
}

// forgeResolvedMsg is sent when a forge shorthand finishes resolving.
type forgeResolvedMsg struct {
	forgeName string
	url       string
	ok        bool
}

// ParseUserLocation classifies a user-typed string into a location,
// expanding "~" and relative paths for the local case. Persisted
// strings go through nav.ParseLocation instead; they were already
// absolute when saved.
func ParseUserLocation(s string) nav.Location {
	if nav.IsLikelyURL(s) {
		return nav.RemoteURL(s)
	}
	if strings.HasPrefix(s, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			s = filepath.Join(home, strings.TrimPrefix(s, "~"))
		}
	}
	if abs, err := filepath.Abs(s); err == nil {
		s = abs
	}
	return nav.LocalFile(s)
}

// New creates a new mdscope Model. start may be empty; otherwise it is
// the file or URL to open on launch.
func New(start string) Model {
	renderCache, _ := lru.New[string, string](50)

	fetcher := viewer.NewFetcher()

	m := Model{
		docViewport:   ui.NewDocViewport(),
		statusBar:     ui.NewStatusBar(),
		omnibox:       ui.NewOmnibox(),
		historyPanel:  ui.NewHistoryPanel(),
		bookmarkPanel: ui.NewBookmarkPanel(),
		tocPanel:      ui.NewContentsPanel(),
		history:       nav.NewHistory(),
		fetcher:       fetcher,
		resolver:      forge.NewResolver(fetcher.Client(), viewer.UserAgent),
		renderCache:   renderCache,
		keys:          DefaultKeyMap(),
		mode:          ModeNormal,
	}

	// Configuration (best-effort, defaults on error).
	cfg, err := storage.LoadConfig()
	if err != nil {
		def := storage.DefaultConfig()
		cfg = &def
	}
	m.config = cfg
	theme.Set(cfg.Theme)

	m.loader = viewer.NewLoader(fetcher, cfg)

	// Persistent storage (best-effort, non-fatal on error).
	if dataDir, err := storage.DataDir(); err == nil {
		if hf, hfErr := storage.NewHistoryFile(dataDir); hfErr == nil {
			m.historyFile = hf
			if locations, loadErr := hf.Load(); loadErr == nil {
				m.history.Replace(locations)
			}
		}
		m.bookmarks, _ = storage.NewBookmarkStore(dataDir)
	}

	if start != "" {
		m.startLocation = ParseUserLocation(start)
	}

	return m
}

// ForceLightMode overrides the configured rendering mode for this run
// without persisting it.
func (m *Model) ForceLightMode() {
	m.config.LightMode = true
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if !m.startLocation.IsZero() {
		return m.visit(m.startLocation, true)
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case docLoadedMsg:
		return m.handleDocLoaded(msg)

	case forgeResolvedMsg:
		return m.handleForgeResolved(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Forward to the viewport for mouse scroll, etc.
	vp, cmd := m.docViewport.Update(msg)
	m.docViewport = *vp
	m.syncStatusBar()
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "\n  Loading mdscope..."
	}

	var sections []string

	// Document area, with an optional panel on the left.
	if panel := m.activePanelView(); panel != "" {
		t := theme.Current
		dividerStyle := lipgloss.NewStyle().
			Foreground(t.Border).
			Background(t.Background)

		dividerHeight := m.contentHeight()
		var dividerLines []string
		for i := 0; i < dividerHeight; i++ {
			dividerLines = append(dividerLines, "│")
		}
		divider := dividerStyle.Render(strings.Join(dividerLines, "\n"))

		content := lipgloss.JoinHorizontal(lipgloss.Top,
			panel,
			divider,
			m.docViewport.View(),
		)
		sections = append(sections, content)
	} else {
		sections = append(sections, m.docViewport.View())
	}

	sections = append(sections, m.statusBar.View())

	if m.omnibox.IsActive() {
		sections = append(sections, m.omnibox.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// activePanelView returns the rendered panel, or "" when none is open.
func (m Model) activePanelView() string {
	switch {
	case m.historyPanel.IsVisible():
		return m.historyPanel.View()
	case m.bookmarkPanel.IsVisible():
		return m.bookmarkPanel.View()
	case m.tocPanel.IsVisible():
		return m.tocPanel.View()
	}
	return ""
}

func (m Model) panelOpen() bool {
	return m.historyPanel.IsVisible() || m.bookmarkPanel.IsVisible() || m.tocPanel.IsVisible()
}

func (m Model) contentHeight() int {
	statusBarHeight := 1
	omniboxHeight := 0
	if m.omnibox.IsActive() {
		omniboxHeight = 1
	}
	h := m.height - statusBarHeight - omniboxHeight
	if h < 1 {
		h = 1
	}
	return h
}

// layout recalculates dimensions for all components.
func (m *Model) layout() {
	m.statusBar.SetWidth(m.width)
	m.omnibox.SetWidth(m.width)

	contentHeight := m.contentHeight()

	viewportWidth := m.width
	if m.panelOpen() {
		panelWidth := m.width * 30 / 100
		if panelWidth < 24 {
			panelWidth = 24
		}
		m.historyPanel.SetSize(panelWidth, contentHeight)
		m.bookmarkPanel.SetSize(panelWidth, contentHeight)
		m.tocPanel.SetSize(panelWidth, contentHeight)
		viewportWidth = m.width - panelWidth - 1 // -1 for divider
	}
	if viewportWidth < 1 {
		viewportWidth = 1
	}

	m.docViewport.SetSize(viewportWidth, contentHeight)

	// Width changes invalidate the current rendering.
	if viewportWidth != m.viewportWidth {
		m.viewportWidth = viewportWidth
		if m.doc != nil {
			m.rerender()
		}
	}
}

// handleKeyMsg processes key events based on current mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Always allow Ctrl+C to quit.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeInput:
		return m.handleInputMode(msg)
	case ModeHistory:
		return m.handleHistoryMode(msg)
	case ModeBookmarks:
		return m.handleBookmarksMode(msg)
	case ModeContents:
		return m.handleContentsMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// handleNormalMode processes keys in normal (reading) mode.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	// gg detection: first "g" sets flag, second "g" goes to top.
	case msg.String() == "g":
		if m.lastGKey {
			m.lastGKey = false
			m.docViewport.GotoTop()
			m.syncStatusBar()
			return m, nil
		}
		m.lastGKey = true
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.lastGKey = false
		m.docViewport.LineDown(1)
		m.syncStatusBar()
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.lastGKey = false
		m.docViewport.LineUp(1)
		m.syncStatusBar()
		return m, nil

	case key.Matches(msg, m.keys.HalfPageDown):
		m.lastGKey = false
		m.docViewport.HalfPageDown()
		m.syncStatusBar()
		return m, nil

	case key.Matches(msg, m.keys.HalfPageUp):
		m.lastGKey = false
		m.docViewport.HalfPageUp()
		m.syncStatusBar()
		return m, nil

	case key.Matches(msg, m.keys.GotoBottom):
		m.lastGKey = false
		m.docViewport.GotoBottom()
		m.syncStatusBar()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		m.lastGKey = false
		m.mode = ModeInput
		m.purpose = inputOpen
		m.statusBar.SetMode("INPUT")
		cmd := m.omnibox.Open("")
		m.layout()
		return m, cmd

	case key.Matches(msg, m.keys.Back):
		m.lastGKey = false
		if m.history.Back() {
			location, _ := m.history.Location()
			cmd := m.visit(location, false)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Forward):
		m.lastGKey = false
		if m.history.Forward() {
			location, _ := m.history.Location()
			cmd := m.visit(location, false)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		m.lastGKey = false
		if m.doc != nil {
			m.renderCache.Remove(m.renderKey(m.doc.Location))
			cmd := m.visit(m.doc.Location, false)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Bookmark):
		m.lastGKey = false
		if m.doc == nil {
			m.statusBar.SetMessage("No document to bookmark")
			return m, nil
		}
		if m.bookmarks == nil {
			m.statusBar.SetMessage("Bookmarks not available")
			return m, nil
		}
		m.mode = ModeInput
		m.purpose = inputBookmarkTitle
		m.statusBar.SetMode("INPUT")
		cmd := m.omnibox.Open(m.doc.Location.Name())
		m.layout()
		return m, cmd

	case key.Matches(msg, m.keys.HistoryToggle):
		m.lastGKey = false
		return m.toggleHistoryPanel()

	case key.Matches(msg, m.keys.BookmarksToggle):
		m.lastGKey = false
		return m.toggleBookmarksPanel()

	case key.Matches(msg, m.keys.ContentsToggle):
		m.lastGKey = false
		return m.toggleContentsPanel()

	case key.Matches(msg, m.keys.Help):
		m.lastGKey = false
		m.showHelp()
		return m, nil
	}

	// Reset g key if another key was pressed.
	m.lastGKey = false

	vp, cmd := m.docViewport.Update(msg)
	m.docViewport = *vp
	m.syncStatusBar()
	return m, cmd
}

// handleInputMode processes keys while the omnibox is active.
func (m Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.omnibox.Close()
		m.closeInput()
		return m, nil

	case tea.KeyEnter:
		value := m.omnibox.Submit()
		m.closeInput()
		return m.dispatchInput(value)
	}

	ob, cmd := m.omnibox.Update(msg)
	m.omnibox = *ob
	return m, cmd
}

// closeInput returns from input mode to whatever makes sense given the
// open panel.
func (m *Model) closeInput() {
	switch {
	case m.bookmarkPanel.IsVisible():
		m.mode = ModeBookmarks
		m.statusBar.SetMode("BOOKMARKS")
	default:
		m.mode = ModeNormal
		m.statusBar.SetMode("NORMAL")
	}
	m.layout()
}

// handleHistoryMode processes keys when the history panel is active.
func (m Model) handleHistoryMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.historyPanel.CursorDown()
		return m, nil

	case "k", "up":
		m.historyPanel.CursorUp()
		return m, nil

	case "g":
		m.historyPanel.GotoTop()
		return m, nil

	case "G":
		m.historyPanel.GotoBottom()
		return m, nil

	case "d":
		entry, ok := m.historyPanel.SelectedEntry()
		if !ok {
			return m, nil
		}
		if err := m.history.Delete(entry.HistoryID); err != nil {
			m.statusBar.SetError(err.Error())
			return m, nil
		}
		m.persistHistory()
		m.refreshHistoryPanel()
		return m, nil

	case "D", "backspace":
		m.history.Clear()
		m.persistHistory()
		m.refreshHistoryPanel()
		m.statusBar.SetMessage("History cleared")
		return m, nil

	case "enter":
		entry, ok := m.historyPanel.SelectedEntry()
		if !ok {
			return m, nil
		}
		m.closePanels()
		cmd := m.visit(entry.Location, true)
		return m, cmd

	case "esc", "ctrl+h", "q":
		m.closePanels()
		return m, nil
	}

	return m, nil
}

// handleBookmarksMode processes keys when the bookmarks panel is active.
func (m Model) handleBookmarksMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.bookmarkPanel.CursorDown()
		return m, nil

	case "k", "up":
		m.bookmarkPanel.CursorUp()
		return m, nil

	case "g":
		m.bookmarkPanel.GotoTop()
		return m, nil

	case "G":
		m.bookmarkPanel.GotoBottom()
		return m, nil

	case "d":
		_, idx, ok := m.bookmarkPanel.Selected()
		if !ok {
			return m, nil
		}
		if _, err := m.bookmarks.Delete(idx); err != nil {
			m.statusBar.SetError(err.Error())
			return m, nil
		}
		m.bookmarkPanel.SetBookmarks(m.bookmarks.All())
		return m, nil

	case "r":
		bm, idx, ok := m.bookmarkPanel.Selected()
		if !ok {
			return m, nil
		}
		m.renameIndex = idx
		m.mode = ModeInput
		m.purpose = inputRenameBookmark
		m.statusBar.SetMode("INPUT")
		cmd := m.omnibox.Open(bm.Title)
		m.layout()
		return m, cmd

	case "enter":
		bm, _, ok := m.bookmarkPanel.Selected()
		if !ok {
			return m, nil
		}
		m.closePanels()
		cmd := m.visit(bm.Location, true)
		return m, cmd

	case "esc", "b", "q":
		m.closePanels()
		return m, nil
	}

	return m, nil
}

// handleContentsMode processes keys when the contents panel is active.
func (m Model) handleContentsMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.tocPanel.CursorDown()
		return m, nil

	case "k", "up":
		m.tocPanel.CursorUp()
		return m, nil

	case "g":
		m.tocPanel.GotoTop()
		return m, nil

	case "G":
		m.tocPanel.GotoBottom()
		return m, nil

	case "enter":
		heading, ok := m.tocPanel.Selected()
		if !ok {
			return m, nil
		}
		m.closePanels()
		m.jumpToHeading(heading)
		return m, nil

	case "esc", "c", "q":
		m.closePanels()
		return m, nil
	}

	return m, nil
}

func (m *Model) toggleHistoryPanel() (tea.Model, tea.Cmd) {
	if m.historyPanel.IsVisible() {
		m.closePanels()
		return m, nil
	}
	m.hidePanels()
	m.refreshHistoryPanel()
	m.historyPanel.Show()
	m.mode = ModeHistory
	m.statusBar.SetMode("HISTORY")
	m.layout()
	return m, nil
}

func (m *Model) toggleBookmarksPanel() (tea.Model, tea.Cmd) {
	if m.bookmarkPanel.IsVisible() {
		m.closePanels()
		return m, nil
	}
	if m.bookmarks == nil {
		m.statusBar.SetMessage("Bookmarks not available")
		return m, nil
	}
	m.hidePanels()
	m.bookmarkPanel.SetBookmarks(m.bookmarks.All())
	m.bookmarkPanel.Show()
	m.mode = ModeBookmarks
	m.statusBar.SetMode("BOOKMARKS")
	m.layout()
	return m, nil
}

func (m *Model) toggleContentsPanel() (tea.Model, tea.Cmd) {
	if m.tocPanel.IsVisible() {
		m.closePanels()
		return m, nil
	}
	m.hidePanels()
	m.tocPanel.SetHeadings(m.headings)
	m.tocPanel.Show()
	m.mode = ModeContents
	m.statusBar.SetMode("CONTENTS")
	m.layout()
	return m, nil
}

func (m *Model) hidePanels() {
	m.historyPanel.Hide()
	m.bookmarkPanel.Hide()
	m.tocPanel.Hide()
}

func (m *Model) closePanels() {
	m.hidePanels()
	m.mode = ModeNormal
	m.statusBar.SetMode("NORMAL")
	m.layout()
}

func (m *Model) refreshHistoryPanel() {
	current := -1
	if cursor, ok := m.history.Cursor(); ok {
		current = cursor
	}
	m.historyPanel.SetEntries(m.history.Locations(), current)
}

// jumpToHeading scrolls the viewport to the first rendered line that
// carries the heading's text. Glamour reflows but does not rewrite
// heading text, so a substring match on the rendered output finds it.
func (m *Model) jumpToHeading(heading viewer.Heading) {
	if m.rendered == "" || heading.Text == "" {
		return
	}
	for i, line := range strings.Split(m.rendered, "\n") {
		if strings.Contains(line, heading.Text) {
			m.docViewport.ScrollToLine(i)
			m.syncStatusBar()
			return
		}
	}
}

// visit loads a location asynchronously. remember says whether a
// successful load is appended to history; cursor moves pass false.
func (m *Model) visit(location nav.Location, remember bool) tea.Cmd {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelFunc = cancel

	m.loading = true
	m.statusBar.SetLoading(true)
	m.statusBar.SetMessage("")

	loader := m.loader
	return func() tea.Msg {
		doc, err := loader.Load(ctx, location)
		return docLoadedMsg{location: location, doc: doc, err: err, remember: remember}
	}
}

// handleDocLoaded processes a completed document load.
func (m Model) handleDocLoaded(msg docLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.cancelFunc = nil
	m.statusBar.SetLoading(false)

	if msg.err != nil {
		m.statusBar.SetError(fmt.Sprintf("Error: %s", msg.err))

		errStyle := lipgloss.NewStyle().
			Foreground(theme.Current.Error).
			Bold(true).
			Padding(2, 4)
		detailStyle := lipgloss.NewStyle().
			Foreground(theme.Current.TextDim).
			Padding(0, 4)

		errContent := errStyle.Render("Failed to load document") + "\n\n" +
			detailStyle.Render(fmt.Sprintf("Location: %s\nError: %s", msg.location, msg.err))

		m.docViewport.SetContent(errContent)
		return m, nil
	}

	m.doc = msg.doc
	m.headings = viewer.TableOfContents(msg.doc.Markdown)
	m.rerender()

	m.statusBar.SetLocation(msg.location.String())

	// Revisiting the location already under the cursor does not grow
	// the history.
	if msg.remember {
		if current, ok := m.history.Location(); !ok || current != msg.location {
			m.history.Remember(msg.location)
			m.persistHistory()
		}
	}
	if m.historyPanel.IsVisible() {
		m.refreshHistoryPanel()
	}

	m.syncStatusBar()
	return m, nil
}

// handleForgeResolved processes the outcome of a forge shorthand probe.
func (m Model) handleForgeResolved(msg forgeResolvedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.statusBar.SetLoading(false)

	if !msg.ok {
		m.statusBar.SetError(fmt.Sprintf(
			"Unable to work out a %s URL. Perhaps the file is on an unusual branch, or the spelling is wrong?",
			msg.forgeName,
		))
		return m, nil
	}

	cmd := m.visit(nav.RemoteURL(msg.url), true)
	return m, cmd
}

func (m *Model) renderKey(location nav.Location) string {
	return fmt.Sprintf("%d|%s|%s", m.viewportWidth, m.config.GlamourStyle(), location)
}

// rerender regenerates the viewport content for the current document,
// going through the render cache.
func (m *Model) rerender() {
	if m.doc == nil {
		return
	}

	cacheKey := m.renderKey(m.doc.Location)
	rendered, ok := m.renderCache.Get(cacheKey)
	if !ok {
		rendered = viewer.Render(m.doc.Markdown, m.viewportWidth, m.config.GlamourStyle())
		m.renderCache.Add(cacheKey, rendered)
	}

	m.rendered = rendered
	m.docViewport.SetContent(rendered)
}

// persistHistory writes the in-memory history through the file adapter.
func (m *Model) persistHistory() {
	if m.historyFile == nil {
		return
	}
	if err := m.historyFile.Save(m.history.Locations()); err != nil {
		m.statusBar.SetError(fmt.Sprintf("Saving history: %s", err))
	}
}

// syncStatusBar updates the status bar with current state.
func (m *Model) syncStatusBar() {
	m.statusBar.SetScrollInfo(m.docViewport.ScrollInfo())
	if m.doc != nil {
		m.statusBar.SetLocation(m.doc.Location.String())
	}
}
