package browse

import (
	"errors"
	"fmt"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/flick/internal/domain"
)

// MinQueryLength is the default number of characters before a search runs
const MinQueryLength = 3

// Mode is the mutually exclusive display context
type Mode int

const (
	ModeCategory Mode = iota
	ModeSearch
	ModeFilteredDiscover
	ModeFavorites
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeFilteredDiscover:
		return "discover"
	case ModeFavorites:
		return "favorites"
	default:
		return "category"
	}
}

// Resolve picks the active mode. Favorites wins over everything, then a
// long enough query, then applied filters, then the plain category.
func Resolve(query string, category domain.Category, applied bool) Mode {
	return resolve(query, category, applied, MinQueryLength)
}

func resolve(query string, category domain.Category, applied bool, minLen int) Mode {
	switch {
	case category == domain.CategoryFavorites:
		return ModeFavorites
	case searchable(query, minLen):
		return ModeSearch
	case applied:
		return ModeFilteredDiscover
	default:
		return ModeCategory
	}
}

func searchable(query string, minLen int) bool {
	return utf8.RuneCountInString(query) >= minLen
}

// modeHandler is everything the session needs from one mode
type modeHandler interface {
	items(s *Session) []domain.Item
	status(s *Session) Status
	hasMore(s *Session) bool
	// fetch advances the mode's cursor to page and returns the request
	fetch(s *Session, page int) tea.Cmd
	emptyNotice() string
	failure(err error) string
}

func handlerFor(m Mode) modeHandler {
	switch m {
	case ModeSearch:
		return searchMode{}
	case ModeFilteredDiscover:
		return discoverMode{}
	case ModeFavorites:
		return favoritesMode{}
	default:
		return categoryMode{}
	}
}

type searchMode struct{}

func (searchMode) items(s *Session) []domain.Item { return s.search.Items }
func (searchMode) status(s *Session) Status       { return s.search.Status }
func (searchMode) hasMore(s *Session) bool        { return s.search.HasMore() }
func (searchMode) emptyNotice() string            { return "No movie found" }

func (searchMode) fetch(s *Session, page int) tea.Cmd {
	s.search.begin(page)
	return s.searchCmd(s.search.Debounced, page)
}

func (searchMode) failure(err error) string {
	if errors.Is(err, domain.ErrEmptyQuery) {
		return emptyQueryMessage
	}
	return failureMessage("Failed to fetch movies", err)
}

// browseMode is shared by category and discover: both page through the
// browse listing of the active category.
type browseMode struct{}

func (browseMode) items(s *Session) []domain.Item { return s.browse.Items }
func (browseMode) status(s *Session) Status       { return s.browse.Status }
func (browseMode) hasMore(s *Session) bool        { return s.browse.HasMore() }
func (browseMode) emptyNotice() string            { return "No movies found in this category" }

type categoryMode struct{ browseMode }

func (categoryMode) fetch(s *Session, page int) tea.Cmd {
	s.browse.begin(page)
	return s.categoryCmd(s.browse.Category, s.browse.seq, page)
}

func (categoryMode) failure(err error) string {
	return failureMessage("Failed to load category movies", err)
}

type discoverMode struct{ browseMode }

func (discoverMode) fetch(s *Session, page int) tea.Cmd {
	s.browse.begin(page)
	return s.discoverCmd(s.browse.Category, s.filter.applied, s.browse.seq, page)
}

func (discoverMode) failure(err error) string {
	return failureMessage("Failed to load filtered movies", err)
}

type favoritesMode struct{}

func (favoritesMode) items(s *Session) []domain.Item { return s.favorites.Items() }
func (favoritesMode) hasMore(*Session) bool          { return false }
func (favoritesMode) fetch(*Session, int) tea.Cmd    { return nil }
func (favoritesMode) emptyNotice() string            { return "No favorites yet" }
func (favoritesMode) failure(error) string           { return "" }

func (favoritesMode) status(s *Session) Status {
	if s.favorites.Len() == 0 {
		return StatusEmpty
	}
	return StatusReady
}

const emptyQueryMessage = "Please enter the name of the movie"

func failureMessage(prefix string, err error) string {
	var te *domain.TransportError
	if errors.As(err, &te) && te.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d)", prefix, te.StatusCode)
	}
	return prefix
}
