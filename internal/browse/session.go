// Package browse is the orchestration core: it resolves which listing is
// active, debounces search input, pages results and composes filters.
// A Session runs on the bubbletea event loop and is not safe for
// concurrent use; gateway calls happen inside the commands it returns.
package browse

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/flick/internal/domain"
	"github.com/mmcdole/flick/internal/lists"
)

const defaultRequestTimeout = 10 * time.Second

// SearchState is the free-text search listing
type SearchState struct {
	Query     string // live input
	Debounced string // text of the last dispatched search cycle
	Results
}

// CategoryState is the browse listing of one category, filtered or not.
// It is replaced whenever the active category changes or filters are
// applied or reset.
type CategoryState struct {
	Category domain.Category
	seq      int
	Results
}

type detailState struct {
	open    bool
	id      int
	item    *domain.Item
	loading bool
	err     error
}

// Options configures a Session
type Options struct {
	Debounce        time.Duration
	MinQueryLength  int
	RequestTimeout  time.Duration
	InitialCategory domain.Category
	Logger          *slog.Logger
}

// Session owns all browse state
type Session struct {
	gateway   domain.ContentGateway
	kv        domain.KVStore
	history   *lists.History
	favorites *lists.Favorites
	logger    *slog.Logger

	minLen  int
	timeout time.Duration

	search        SearchState
	debounce      debouncer
	validationErr error

	browse CategoryState
	filter FilterState
	detail detailState

	genresErr error
}

// New creates a session. Nothing is fetched until Init.
func New(gateway domain.ContentGateway, kv domain.KVStore, history *lists.History, favorites *lists.Favorites, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.MinQueryLength <= 0 {
		opts.MinQueryLength = MinQueryLength
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	if opts.InitialCategory == "" {
		opts.InitialCategory = domain.CategoryPopular
	}

	s := &Session{
		gateway:   gateway,
		kv:        kv,
		history:   history,
		favorites: favorites,
		logger:    opts.Logger,
		minLen:    opts.MinQueryLength,
		timeout:   opts.RequestTimeout,
		debounce:  debouncer{wait: opts.Debounce},
	}
	s.search.Results = newResults()
	s.browse = CategoryState{Category: opts.InitialCategory, Results: newResults()}
	return s
}

// Init loads the genre list and the initial category
func (s *Session) Init() tea.Cmd {
	cmds := []tea.Cmd{s.genresCmd()}
	if s.browse.Category.IsRemote() {
		s.resetBrowse(s.browse.Category)
		cmds = append(cmds, categoryMode{}.fetch(s, 1))
	}
	return tea.Batch(cmds...)
}

// Mode returns the active display mode
func (s *Session) Mode() Mode {
	return resolve(s.search.Query, s.browse.Category, s.filter.Applied, s.minLen)
}

// Category returns the active category
func (s *Session) Category() domain.Category { return s.browse.Category }

// Update applies timer fires and gateway responses
func (s *Session) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case searchTickMsg:
		return s.onSearchTick(msg)
	case searchResultMsg:
		return s.onSearchResult(msg)
	case browseResultMsg:
		return s.onBrowseResult(msg)
	case genresMsg:
		s.onGenres(msg)
	case detailMsg:
		s.onDetail(msg)
	}
	return nil
}

// SelectCategory switches the browse tab. The genre selection and the
// applied flag are cleared and the new category is fetched from page 1.
// Selecting the current tab after a failed load retries it, keeping any
// applied filters.
func (s *Session) SelectCategory(c domain.Category) tea.Cmd {
	if c == s.browse.Category {
		return s.retryBrowse()
	}
	s.filter.clearSelection()
	s.resetBrowse(c)
	if !c.IsRemote() {
		return nil
	}
	return categoryMode{}.fetch(s, 1)
}

// retryBrowse re-issues the browse request that last failed. A failed first
// page restarts at 1; a failed later page was already rolled back, so the
// next page is the one that failed.
func (s *Session) retryBrowse() tea.Cmd {
	if s.browse.Status != StatusFailed || !s.browse.Category.IsRemote() {
		return nil
	}
	next := 1
	if len(s.browse.Items) > 0 {
		next = s.browse.Page + 1
	}
	if s.filter.Applied {
		return discoverMode{}.fetch(s, next)
	}
	return categoryMode{}.fetch(s, next)
}

// ToggleGenre stages or unstages a genre
func (s *Session) ToggleGenre(id int) tea.Cmd {
	s.filter.toggleGenre(id)
	return nil
}

// SetYearBound stages one end of the year range; year <= 0 clears it
func (s *Session) SetYearBound(bound YearBound, year int) tea.Cmd {
	s.filter.setYear(bound, year)
	return nil
}

// SetMinRating stages the rating floor, clamped to [0, 10] in half steps
func (s *Session) SetMinRating(v float64) tea.Cmd {
	s.filter.setMinRating(v)
	return nil
}

// ApplyFilters issues a discover request for the staged facets. It does
// nothing while every facet is at its default or on the favorites tab.
func (s *Session) ApplyFilters() tea.Cmd {
	if !s.filter.CanApply() || !s.browse.Category.IsRemote() {
		return nil
	}
	facets := s.filter.apply()
	s.logger.Debug("filters applied", "genres", facets.Genres, "from", facets.YearFrom, "to", facets.YearTo, "rating", facets.MinRating)
	s.resetBrowse(s.browse.Category)
	return discoverMode{}.fetch(s, 1)
}

// ResetFilters clears every facet and reloads the plain category
func (s *Session) ResetFilters() tea.Cmd {
	s.filter.reset()
	if !s.browse.Category.IsRemote() {
		return nil
	}
	s.resetBrowse(s.browse.Category)
	return categoryMode{}.fetch(s, 1)
}

// LoadMore requests the next page of the active mode. It does nothing
// while that mode is loading or has no more pages.
func (s *Session) LoadMore() tea.Cmd {
	h := handlerFor(s.Mode())
	if h.status(s) == StatusLoading || !h.hasMore(s) {
		return nil
	}
	return h.fetch(s, s.currentPage()+1)
}

func (s *Session) currentPage() int {
	if s.Mode() == ModeSearch {
		return s.search.Page
	}
	return s.browse.Page
}

// ToggleFavorite adds or removes item from the favorites
func (s *Session) ToggleFavorite(item domain.Item) tea.Cmd {
	added, err := s.favorites.Toggle(item)
	if err != nil {
		s.logger.Error("failed to persist favorites", "error", err)
	}
	s.logger.Debug("favorite toggled", "id", item.ID, "added", added)
	return nil
}

// IsFavorite reports whether id is a favorite
func (s *Session) IsFavorite(id int) bool { return s.favorites.Contains(id) }

// SelectHistoryEntry puts a past query back into the input
func (s *Session) SelectHistoryEntry(query string) tea.Cmd {
	return s.SetQueryText(query)
}

// ClearHistory empties the search history
func (s *Session) ClearHistory() tea.Cmd {
	if err := s.history.Clear(); err != nil {
		s.logger.Error("failed to clear history", "error", err)
	}
	return nil
}

// OpenDetail shows item immediately and fetches its extended record
func (s *Session) OpenDetail(item domain.Item) tea.Cmd {
	summary := item
	s.detail = detailState{open: true, id: item.ID, item: &summary, loading: true}
	s.rememberLastViewed(item)
	return s.detailCmd(item.ID)
}

// CloseDetail dismisses the detail view
func (s *Session) CloseDetail() tea.Cmd {
	s.detail = detailState{}
	return nil
}

// LastViewed returns the item most recently opened, if any
func (s *Session) LastViewed() (domain.Item, bool) {
	raw, ok := s.kv.Get(domain.KeyLastViewed)
	if !ok || raw == "" {
		return domain.Item{}, false
	}
	var item domain.Item
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		s.logger.Warn("discarding unreadable last viewed item", "error", err)
		return domain.Item{}, false
	}
	return item, true
}

func (s *Session) rememberLastViewed(item domain.Item) {
	data, err := json.Marshal(item)
	if err != nil {
		return
	}
	if err := s.kv.Set(domain.KeyLastViewed, string(data)); err != nil {
		s.logger.Error("failed to persist last viewed", "error", err)
	}
}

// resetBrowse starts a new generation of the browse listing; responses
// from earlier generations are dropped.
func (s *Session) resetBrowse(c domain.Category) {
	s.browse = CategoryState{
		Category: c,
		seq:      s.browse.seq + 1,
		Results:  newResults(),
	}
}

func (s *Session) onBrowseResult(msg browseResultMsg) tea.Cmd {
	if msg.category != s.browse.Category || msg.seq != s.browse.seq || msg.page != s.browse.Page {
		s.logger.Debug("dropping stale browse response",
			"category", msg.category, "seq", msg.seq, "page", msg.page, "discover", msg.discover)
		return nil
	}

	if msg.err != nil {
		s.logger.Warn("browse failed", "category", msg.category, "page", msg.page, "discover", msg.discover, "error", msg.err)
		s.browse.fail(msg.page, msg.err)
		return nil
	}

	s.browse.merge(msg.page, msg.result)
	return nil
}

func (s *Session) onGenres(msg genresMsg) {
	if msg.err != nil {
		s.logger.Warn("failed to load genres", "error", msg.err)
		s.genresErr = msg.err
		return
	}
	s.genresErr = nil
	s.filter.Available = msg.genres
}

func (s *Session) onDetail(msg detailMsg) {
	if !s.detail.open || msg.id != s.detail.id {
		return
	}
	s.detail.loading = false
	if msg.err != nil {
		s.logger.Error("failed to load details", "id", msg.id, "error", msg.err)
		s.detail.err = msg.err
		return
	}
	s.detail.item = msg.item
	s.detail.err = nil
}

// Commands. Each captures what it needs so the gateway call runs off the
// event loop without touching session state.

func (s *Session) searchCmd(query string, page int) tea.Cmd {
	gw, timeout := s.gateway, s.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		result, err := gw.Search(ctx, query, page)
		return searchResultMsg{query: query, page: page, result: result, err: err}
	}
}

func (s *Session) categoryCmd(c domain.Category, seq, page int) tea.Cmd {
	gw, timeout := s.gateway, s.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		result, err := gw.Category(ctx, c, page)
		return browseResultMsg{category: c, seq: seq, page: page, result: result, err: err}
	}
}

func (s *Session) discoverCmd(c domain.Category, facets domain.Facets, seq, page int) tea.Cmd {
	gw, timeout := s.gateway, s.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		result, err := gw.Discover(ctx, facets, page)
		return browseResultMsg{category: c, seq: seq, page: page, discover: true, result: result, err: err}
	}
}

func (s *Session) genresCmd() tea.Cmd {
	gw, timeout := s.gateway, s.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		genres, err := gw.Genres(ctx)
		return genresMsg{genres: genres, err: err}
	}
}

func (s *Session) detailCmd(id int) tea.Cmd {
	gw, timeout := s.gateway, s.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		item, err := gw.Detail(ctx, id)
		return detailMsg{id: id, item: item, err: err}
	}
}
