package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/flick/internal/browse"
	"github.com/mmcdole/flick/internal/domain"
	"github.com/mmcdole/flick/internal/tui/styles"
)

// focus is the region receiving key input
type focus int

const (
	focusList focus = iota
	focusSearch
	focusFilters
)

// Tabs in display order
var tabs = []domain.Category{
	domain.CategoryPopular,
	domain.CategoryTopRated,
	domain.CategoryNowPlaying,
	domain.CategoryFavorites,
}

// ChromeHeight is the number of rows used by everything except the list
const ChromeHeight = 8

// Options configures the model
type Options struct {
	ImageBaseURL string
	Theme        string
	Logger       *slog.Logger
}

// Model is the main Bubble Tea model for the application
type Model struct {
	Session   *browse.Session
	Store     domain.KVStore
	Theme     styles.Theme
	ImageBase string

	// Dimensions
	Width  int
	Height int
	Ready  bool

	// UI components
	search  textinput.Model
	spinner spinner.Model
	filters filterPanel
	detail  viewport.Model

	renderer      *glamour.TermRenderer
	rendererKey   string
	detailContent string

	// UI state
	focus      focus
	cursor     int
	offset     int
	histCursor int
	showHelp   bool
	vm         browse.ViewModel

	logger *slog.Logger
}

// NewModel creates a new application model. A theme saved in the store
// takes precedence over opts.Theme.
func NewModel(session *browse.Session, store domain.KVStore, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	themeName := opts.Theme
	if saved, ok := store.Get(domain.KeyTheme); ok && saved != "" {
		themeName = saved
	}
	theme := styles.ByName(themeName)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Accent

	m := Model{
		Session:    session,
		Store:      store,
		Theme:      theme,
		ImageBase:  opts.ImageBaseURL,
		search:     newSearchInput(theme),
		spinner:    sp,
		filters:    newFilterPanel(theme),
		detail:     viewport.New(0, 0),
		histCursor: -1,
		logger:     opts.Logger,
	}
	m.vm = session.View()
	return m
}

func newSearchInput(theme styles.Theme) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "/ "
	ti.PromptStyle = theme.Accent
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Palette.Text)
	ti.PlaceholderStyle = theme.Dim
	return ti
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Session.Init(), m.spinner.Tick)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.search.Width = max(msg.Width-10, 10)
		m.detail.Width = max(msg.Width*3/4, 20)
		m.detail.Height = max(msg.Height-8, 5)
		m.detailContent = ""

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	default:
		cmd = m.Session.Update(msg)
		if m.focus == focusSearch {
			cmd = tea.Batch(cmd, m.updateSearchInput(msg))
		}
	}

	m.refresh()
	return m, cmd
}

// refresh recomputes the view model and keeps the cursor in range
func (m *Model) refresh() {
	m.vm = m.Session.View()

	if n := len(m.vm.Items); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	m.scrollToCursor()

	if m.vm.DetailOpen {
		content := m.renderDetail(m.vm)
		if content != m.detailContent {
			m.detailContent = content
			m.detail.SetContent(content)
		}
	} else if m.detailContent != "" {
		m.detailContent = ""
		m.detail.GotoTop()
	}
}

func (m *Model) listHeight() int {
	h := m.Height - ChromeHeight - m.filterHeight()
	if m.focus == focusSearch {
		if n := len(m.suggestions()); n > 0 {
			h -= n + 1
		}
	}
	return max(h, 1)
}

func (m *Model) scrollToCursor() {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) selected() (domain.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.vm.Items) {
		return domain.Item{}, false
	}
	return m.vm.Items[m.cursor], true
}

// handleKeyMsg routes a key to the help overlay, the detail modal or the
// focused region
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch {
	case m.showHelp:
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.showHelp = false
		}
	case m.vm.DetailOpen:
		cmd = m.handleDetailKey(msg)
	case m.focus == focusSearch:
		cmd = m.handleSearchKey(msg)
	case m.focus == focusFilters:
		cmd = m.handleFilterKey(msg)
	default:
		var quit bool
		cmd, quit = m.handleListKey(msg)
		if quit {
			return m, tea.Quit
		}
	}

	m.refresh()
	return m, cmd
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, Keys.Escape, Keys.Enter, Keys.Quit):
		return m.Session.CloseDetail()
	case key.Matches(msg, Keys.Favorite):
		if m.vm.Detail != nil {
			return m.Session.ToggleFavorite(*m.vm.Detail)
		}
		return nil
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return cmd
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	suggestions := m.suggestions()

	switch msg.Type {
	case tea.KeyEsc:
		m.blurSearch()
		return nil

	case tea.KeyEnter:
		m.blurSearch()
		if m.histCursor >= 0 && m.histCursor < len(suggestions) {
			entry := suggestions[m.histCursor]
			m.histCursor = -1
			m.search.SetValue(entry)
			m.search.CursorEnd()
			return m.Session.SelectHistoryEntry(entry)
		}
		return m.Session.SubmitQuery()

	case tea.KeyUp:
		if len(suggestions) > 0 {
			m.histCursor = max(m.histCursor-1, -1)
		}
		return nil

	case tea.KeyDown:
		if len(suggestions) > 0 {
			m.histCursor = min(m.histCursor+1, len(suggestions)-1)
		}
		return nil
	}

	if key.Matches(msg, Keys.ClearSearch) {
		m.search.SetValue("")
		m.histCursor = -1
		return m.Session.ClearSearch()
	}

	return m.updateSearchInput(msg)
}

// updateSearchInput feeds msg to the search box, cursor blinks included,
// and reports an edited value to the session
func (m *Model) updateSearchInput(msg tea.Msg) tea.Cmd {
	before := m.search.Value()
	var inputCmd tea.Cmd
	m.search, inputCmd = m.search.Update(msg)
	if value := m.search.Value(); value != before {
		m.histCursor = -1
		m.cursor = 0
		return tea.Batch(inputCmd, m.Session.SetQueryText(value))
	}
	return inputCmd
}

func (m *Model) enterSearch() tea.Cmd {
	m.focus = focusSearch
	m.histCursor = -1
	return m.search.Focus()
}

func (m *Model) blurSearch() {
	m.focus = focusList
	m.search.Blur()
}

// handleListKey handles keys while the result list has focus. The bool is
// true when the program should quit.
func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return nil, true

	case key.Matches(msg, Keys.Help):
		m.showHelp = true

	case key.Matches(msg, Keys.Search):
		return m.enterSearch(), false

	case key.Matches(msg, Keys.Filters):
		if m.vm.Category.IsRemote() {
			m.focus = focusFilters
		}

	case key.Matches(msg, Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, Keys.Down):
		if m.cursor < len(m.vm.Items)-1 {
			m.cursor++
			return nil, false
		}
		// At the bottom: pull the next page
		if m.vm.HasMore {
			return m.Session.LoadMore(), false
		}

	case key.Matches(msg, Keys.Home):
		m.cursor = 0

	case key.Matches(msg, Keys.End):
		m.cursor = max(len(m.vm.Items)-1, 0)

	case key.Matches(msg, Keys.NextTab):
		return m.selectTab(m.tabIndex() + 1), false

	case key.Matches(msg, Keys.PrevTab):
		return m.selectTab(m.tabIndex() - 1), false

	case key.Matches(msg, Keys.Tab1):
		return m.selectTab(0), false
	case key.Matches(msg, Keys.Tab2):
		return m.selectTab(1), false
	case key.Matches(msg, Keys.Tab3):
		return m.selectTab(2), false
	case key.Matches(msg, Keys.Tab4):
		return m.selectTab(3), false

	case key.Matches(msg, Keys.Enter):
		if item, ok := m.selected(); ok {
			return m.Session.OpenDetail(item), false
		}

	case key.Matches(msg, Keys.Favorite):
		if item, ok := m.selected(); ok {
			return m.Session.ToggleFavorite(item), false
		}

	case key.Matches(msg, Keys.LoadMore):
		return m.Session.LoadMore(), false

	case key.Matches(msg, Keys.ClearHistory):
		return m.Session.ClearHistory(), false

	case key.Matches(msg, Keys.ClearSearch):
		m.search.SetValue("")
		return m.Session.ClearSearch(), false

	case key.Matches(msg, Keys.Escape):
		if m.search.Value() != "" {
			m.search.SetValue("")
			return m.Session.ClearSearch(), false
		}

	case key.Matches(msg, Keys.Theme):
		m.setTheme(m.Theme.Toggle())
	}
	return nil, false
}

func (m *Model) tabIndex() int {
	for i, c := range tabs {
		if c == m.vm.Category {
			return i
		}
	}
	return 0
}

func (m *Model) selectTab(i int) tea.Cmd {
	i = (i + len(tabs)) % len(tabs)
	m.cursor = 0
	m.offset = 0
	m.filters.clear()
	return m.Session.SelectCategory(tabs[i])
}

func (m *Model) setTheme(t styles.Theme) {
	m.Theme = t
	m.spinner.Style = t.Accent
	value := m.search.Value()
	focused := m.search.Focused()
	m.search = newSearchInput(t)
	m.search.SetValue(value)
	if focused {
		m.search.Focus()
	}
	m.filters.restyle(t)
	m.detailContent = ""
	if err := m.Store.Set(domain.KeyTheme, t.Name); err != nil {
		m.logger.Error("failed to persist theme", "error", err)
	}
}

// suggestions returns history entries to offer under the search input
func (m *Model) suggestions() []string {
	if !m.vm.ShowHistory {
		return nil
	}
	return HistorySuggestions(m.search.Value(), m.vm.History)
}

// glamourRenderer returns a renderer sized to the detail viewport
func (m *Model) glamourRenderer() (*glamour.TermRenderer, error) {
	width := max(m.detail.Width-4, 20)
	cacheKey := fmt.Sprintf("%s:%d", m.Theme.Glamour(), width)
	if m.renderer != nil && m.rendererKey == cacheKey {
		return m.renderer, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.Theme.Glamour()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	m.renderer = r
	m.rendererKey = cacheKey
	return r, nil
}
