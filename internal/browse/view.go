package browse

import (
	"fmt"
	"slices"

	"github.com/mmcdole/flick/internal/domain"
)

// ViewModel is the render-ready snapshot of a session
type ViewModel struct {
	Mode     Mode
	Category domain.Category
	Query    string

	Items   []domain.Item
	Loading bool
	HasMore bool
	Typing  bool
	Error   string
	Notice  string
	Hint    string

	Filter        FilterState
	FilterSummary string

	History     []string
	ShowHistory bool

	FavoriteIDs    map[int]bool
	FavoritesCount int

	DetailOpen    bool
	DetailLoading bool
	Detail        *domain.Item
	DetailError   string
}

// View computes the current view model
func (s *Session) View() ViewModel {
	mode := s.Mode()
	h := handlerFor(mode)
	status := h.status(s)

	vm := ViewModel{
		Mode:           mode,
		Category:       s.browse.Category,
		Query:          s.search.Query,
		Items:          slices.Clone(h.items(s)),
		Loading:        status == StatusLoading,
		HasMore:        h.hasMore(s),
		Typing:         s.debounce.pending && searchable(s.search.Query, s.minLen),
		Filter:         s.filter,
		FilterSummary:  s.filter.Summary(),
		History:        s.history.Entries(),
		FavoriteIDs:    s.favorites.IDs(),
		FavoritesCount: s.favorites.Len(),
	}
	vm.Filter.Selected = slices.Clone(s.filter.Selected)

	switch status {
	case StatusEmpty:
		vm.Notice = h.emptyNotice()
	case StatusFailed:
		vm.Error = h.failure(s.errFor(mode))
	}
	if s.validationErr != nil {
		vm.Error = emptyQueryMessage
	}

	if n := len([]rune(s.search.Query)); n < s.minLen {
		if n > 0 {
			vm.Hint = fmt.Sprintf("Type at least %d characters to search...", s.minLen)
		}
		vm.ShowHistory = len(vm.History) > 0
	}

	if s.detail.open {
		vm.DetailOpen = true
		vm.DetailLoading = s.detail.loading
		vm.Detail = s.detail.item
		if s.detail.err != nil {
			vm.DetailError = "Failed to load details"
		}
	}

	return vm
}

func (s *Session) errFor(m Mode) error {
	if m == ModeSearch {
		return s.search.Err
	}
	return s.browse.Err
}
