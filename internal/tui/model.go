package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"poemlens/internal/domain"
	"poemlens/internal/gallery"
	"poemlens/internal/logging"
	"poemlens/internal/settings"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// headerLines is the fixed chrome above the tab content. Mouse rows are
	// mapped to shelf entries relative to this offset.
	headerLines = 3

	statusClearDuration = 5 * time.Second
)

// tab identifies one of the top-level views.
type tab int

const (
	tabShelf tab = iota
	tabViewfinder
	tabSettings
)

func (t tab) String() string {
	switch t {
	case tabShelf:
		return "shelf"
	case tabViewfinder:
		return "viewfinder"
	case tabSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// Model is the root bubbletea model.
type Model struct {
	store      gallery.Store
	controller *gallery.Controller
	prefs      *settings.Settings
	styles     Styles

	tab    tab
	width  int
	height int

	// Shelf state
	cursor    int
	offset    int
	detectors map[domain.EntryID]*gallery.PressDetector
	pressedID domain.EntryID
	threshold time.Duration
	// pendingTitle mirrors the pending entry's title for the undo banner;
	// the controller snapshot carries only the identity.
	pendingTitle string

	viewfinder viewfinderState
	form       settingsForm

	status      string
	statusIsErr bool
	statusID    int
}

// Options configures a new Model.
type Options struct {
	Store          gallery.Store
	Prefs          *settings.Settings
	UndoWindow     int
	PressThreshold time.Duration
}

// NewModel creates the root TUI model over the given store.
func NewModel(opts Options) *Model {
	store := opts.Store
	if store == nil {
		store = gallery.NewMemoryStore()
	}
	prefs := opts.Prefs
	if prefs == nil {
		prefs = settings.Default()
	}
	threshold := opts.PressThreshold
	if threshold <= 0 {
		threshold = gallery.DefaultPressThreshold
	}

	m := &Model{
		store:      store,
		controller: gallery.NewController(store, opts.UndoWindow),
		prefs:      prefs,
		styles:     themeStyles(prefs.Theme),
		width:      defaultWidth,
		height:     defaultHeight,
		detectors:  make(map[domain.EntryID]*gallery.PressDetector),
		threshold:  threshold,
	}
	m.viewfinder = newViewfinderState(prefs)
	m.form = newSettingsForm(prefs)
	return m
}

// Seed inserts the given entries into the store.
func (m *Model) Seed(entries []domain.Entry) {
	for _, e := range entries {
		m.store.Insert(e)
	}
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampShelfView()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		if m.tab == tabShelf {
			return m.handleShelfMouse(msg)
		}
		return m, nil

	case longPressFiredMsg:
		return m.handleLongPressFired(msg)

	case undoTickMsg:
		return m.handleUndoTick(msg)

	case statusClearMsg:
		if msg.ID == m.statusID {
			m.status = ""
			m.statusIsErr = false
		}
		return m, nil
	}
	return m, nil
}

// handleKeyMsg routes keys: global chrome first, then the active tab.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	typing := m.tab == tabViewfinder && m.viewfinder.input.Focused() ||
		m.tab == tabSettings && m.form.editing()

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		if !typing {
			return m, tea.Quit
		}
	case "tab":
		if !typing {
			m.switchTab((m.tab + 1) % 3)
			return m, nil
		}
	case "1":
		if !typing {
			m.switchTab(tabShelf)
			return m, nil
		}
	case "2":
		if !typing {
			m.switchTab(tabViewfinder)
			return m, nil
		}
	case "3":
		if !typing {
			m.switchTab(tabSettings)
			return m, nil
		}
	}

	switch m.tab {
	case tabShelf:
		return m.handleShelfKey(msg)
	case tabViewfinder:
		return m.handleViewfinderKey(msg)
	case tabSettings:
		return m.handleSettingsKey(msg)
	}
	return m, nil
}

func (m *Model) switchTab(t tab) {
	if t == m.tab {
		return
	}
	// Leaving the shelf cancels any active press session; the pending
	// deletion countdown keeps running in the background.
	if m.tab == tabShelf {
		m.cancelPress()
	}
	m.tab = t
	logging.Debug("switched tab", "tab", t.String())
}

// setStatus sets the transient footer message and returns the clear command.
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.status = text
	m.statusIsErr = isErr
	m.statusID++
	return statusClearCmd(m.statusID, statusClearDuration)
}

// SelectedID returns the identity of the entry under the shelf cursor.
func (m *Model) SelectedID() (domain.EntryID, bool) {
	entries := m.store.All()
	if m.cursor < 0 || m.cursor >= len(entries) {
		return "", false
	}
	return entries[m.cursor].ID, true
}

// Pending returns the controller's pending-deletion snapshot.
func (m *Model) Pending() (gallery.PendingDeletion, bool) {
	return m.controller.Snapshot()
}
