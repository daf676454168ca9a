package browse

import "github.com/mmcdole/flick/internal/domain"

// Messages delivered back to Session.Update by the commands it returns.
// Each response carries the parameters of the request that produced it so
// the session can drop anything stale.

// searchTickMsg fires when the debounce quiet period for seq elapses
type searchTickMsg struct {
	seq int
}

type searchResultMsg struct {
	query  string
	page   int
	result domain.Page
	err    error
}

// browseResultMsg answers both category and discover requests; seq
// identifies the browse listing generation that issued it.
type browseResultMsg struct {
	category domain.Category
	seq      int
	page     int
	discover bool
	result   domain.Page
	err      error
}

type genresMsg struct {
	genres []domain.Genre
	err    error
}

type detailMsg struct {
	id   int
	item *domain.Item
	err  error
}
