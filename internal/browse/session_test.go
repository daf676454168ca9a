package browse

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/flick/internal/domain"
	"github.com/mmcdole/flick/internal/lists"
	"github.com/mmcdole/flick/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gatewayCall struct {
	kind     string
	query    string
	category domain.Category
	facets   domain.Facets
	page     int
}

// fakeGateway records calls and answers from per-endpoint functions
type fakeGateway struct {
	mu     sync.Mutex
	calls  []gatewayCall
	search func(query string, page int) (domain.Page, error)
	list   func(page int) (domain.Page, error)
	detail func(id int) (*domain.Item, error)
	genres []domain.Genre
}

func (f *fakeGateway) record(c gatewayCall) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

func (f *fakeGateway) callsOf(kind string) []gatewayCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []gatewayCall
	for _, c := range f.calls {
		if c.kind == kind {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeGateway) Search(_ context.Context, query string, page int) (domain.Page, error) {
	f.record(gatewayCall{kind: "search", query: query, page: page})
	if f.search == nil {
		return pageOf(page, 1), nil
	}
	return f.search(query, page)
}

func (f *fakeGateway) Category(_ context.Context, c domain.Category, page int) (domain.Page, error) {
	f.record(gatewayCall{kind: "category", category: c, page: page})
	if f.list == nil {
		return pageOf(page, 1, 100+page), nil
	}
	return f.list(page)
}

func (f *fakeGateway) Discover(_ context.Context, facets domain.Facets, page int) (domain.Page, error) {
	f.record(gatewayCall{kind: "discover", facets: facets, page: page})
	if f.list == nil {
		return pageOf(page, 1, 200+page), nil
	}
	return f.list(page)
}

func (f *fakeGateway) Genres(context.Context) ([]domain.Genre, error) {
	f.record(gatewayCall{kind: "genres"})
	return f.genres, nil
}

func (f *fakeGateway) Detail(_ context.Context, id int) (*domain.Item, error) {
	f.record(gatewayCall{kind: "detail", page: id})
	if f.detail == nil {
		return &domain.Item{ID: id, Title: "Detailed", Runtime: 120}, nil
	}
	return f.detail(id)
}

func pageOf(page, total int, ids ...int) domain.Page {
	items := make([]domain.Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, domain.Item{ID: id, Title: fmt.Sprintf("Movie %d", id)})
	}
	return domain.Page{Items: items, Page: page, TotalPages: total}
}

func ids(items []domain.Item) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func newTestSession(t *testing.T, gw *fakeGateway) *Session {
	t.Helper()
	kv, err := store.NewStore("", "")
	require.NoError(t, err)
	return New(gw, kv, lists.NewHistory(kv, 5, nil), lists.NewFavorites(kv, nil), Options{})
}

// deliver runs cmd and feeds every resulting message back into the session
func deliver(t *testing.T, s *Session, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			deliver(t, s, c)
		}
		return
	}
	deliver(t, s, s.Update(msg))
}

// settle types text and fires the quiet-period tick for it
func settle(s *Session, text string) tea.Cmd {
	s.SetQueryText(text)
	return s.Update(searchTickMsg{seq: s.debounce.seq})
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category domain.Category
		applied  bool
		want     Mode
	}{
		{"favorites wins over search", "batman", domain.CategoryFavorites, true, ModeFavorites},
		{"search wins over filters", "bat", domain.CategoryPopular, true, ModeSearch},
		{"short query falls through", "ba", domain.CategoryPopular, false, ModeCategory},
		{"applied filters", "", domain.CategoryTopRated, true, ModeFilteredDiscover},
		{"plain category", "", domain.CategoryNowPlaying, false, ModeCategory},
		{"length counts characters", "äöü", domain.CategoryPopular, false, ModeSearch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.query, tt.category, tt.applied))
		})
	}
}

func TestSession_ShortQueryIssuesNoRequest(t *testing.T) {
	gw := &fakeGateway{}
	s := newTestSession(t, gw)

	for _, q := range []string{"b", "ba"} {
		cmd := settle(s, q)
		assert.Nil(t, cmd)
	}

	assert.Empty(t, gw.callsOf("search"))
	vm := s.View()
	assert.Equal(t, ModeCategory, vm.Mode)
	assert.Equal(t, "Type at least 3 characters to search...", vm.Hint)
}

func TestSession_DebounceDispatchesOnce(t *testing.T) {
	gw := &fakeGateway{search: func(q string, p int) (domain.Page, error) {
		return pageOf(p, 1, 1, 2), nil
	}}
	s := newTestSession(t, gw)

	var seqs []int
	for _, q := range []string{"b", "ba", "bat", "batm", "batma", "batman"} {
		require.NotNil(t, s.SetQueryText(q))
		seqs = append(seqs, s.debounce.seq)
	}
	assert.True(t, s.View().Typing)

	// Earlier timers were superseded
	for _, seq := range seqs[:len(seqs)-1] {
		assert.Nil(t, s.Update(searchTickMsg{seq: seq}))
	}
	cmd := s.Update(searchTickMsg{seq: seqs[len(seqs)-1]})
	require.NotNil(t, cmd)
	assert.False(t, s.View().Typing)
	assert.True(t, s.View().Loading)

	deliver(t, s, cmd)

	calls := gw.callsOf("search")
	require.Len(t, calls, 1)
	assert.Equal(t, "batman", calls[0].query)
	assert.Equal(t, 1, calls[0].page)

	vm := s.View()
	assert.Equal(t, ModeSearch, vm.Mode)
	assert.Equal(t, []int{1, 2}, ids(vm.Items))
	assert.Equal(t, []string{"batman"}, vm.History)
}

func TestSession_StaleSearchResponseIsDropped(t *testing.T) {
	gw := &fakeGateway{search: func(q string, p int) (domain.Page, error) {
		if q == "alien" {
			return pageOf(p, 1, 1), nil
		}
		return pageOf(p, 1, 2), nil
	}}
	s := newTestSession(t, gw)

	slow := settle(s, "alien")
	fast := settle(s, "aliens")

	deliver(t, s, fast)
	deliver(t, s, slow)

	assert.Equal(t, []int{2}, ids(s.View().Items), "response for the old query must not overwrite the new one")
	assert.Equal(t, []string{"aliens"}, s.View().History)
}

func TestSession_StalePageOneAfterAdvancing(t *testing.T) {
	gw := &fakeGateway{search: func(q string, p int) (domain.Page, error) {
		return pageOf(p, 3, p*10), nil
	}}
	s := newTestSession(t, gw)

	deliver(t, s, settle(s, "heat"))
	staleFirst := s.searchCmd("heat", 1)
	deliver(t, s, s.LoadMore())
	deliver(t, s, staleFirst)

	assert.Equal(t, []int{10, 20}, ids(s.View().Items))
	assert.Equal(t, 2, s.search.Page)
}

func TestSession_LoadMoreAppends(t *testing.T) {
	gw := &fakeGateway{search: func(q string, p int) (domain.Page, error) {
		switch p {
		case 1:
			return pageOf(1, 3, 1, 2), nil
		default:
			return pageOf(p, 3, p*10+1, p*10+2), nil
		}
	}}
	s := newTestSession(t, gw)
	deliver(t, s, settle(s, "batman"))

	cmd := s.LoadMore()
	require.NotNil(t, cmd)
	assert.Equal(t, 2, s.search.Page, "counter advances before the response")
	assert.True(t, s.View().Loading)
	assert.Nil(t, s.LoadMore(), "no second request while loading")

	deliver(t, s, cmd)
	vm := s.View()
	assert.Equal(t, []int{1, 2, 21, 22}, ids(vm.Items))
	assert.True(t, vm.HasMore)

	deliver(t, s, s.LoadMore())
	vm = s.View()
	assert.Equal(t, []int{1, 2, 21, 22, 31, 32}, ids(vm.Items))
	assert.False(t, vm.HasMore)
	assert.Nil(t, s.LoadMore())
}

func TestSession_TotalPagesLastValueWins(t *testing.T) {
	gw := &fakeGateway{search: func(q string, p int) (domain.Page, error) {
		if p == 1 {
			return pageOf(1, 5, 1), nil
		}
		return pageOf(p, 2, 2), nil
	}}
	s := newTestSession(t, gw)
	deliver(t, s, settle(s, "matrix"))
	assert.Equal(t, 5, s.search.TotalPages)

	deliver(t, s, s.LoadMore())
	assert.Equal(t, 2, s.search.TotalPages)
	assert.False(t, s.View().HasMore)
}

func TestSession_FailedLaterPageRollsBack(t *testing.T) {
	failing := true
	gw := &fakeGateway{search: func(q string, p int) (domain.Page, error) {
		if p == 2 && failing {
			return domain.Page{}, &domain.TransportError{Op: "search", StatusCode: 503}
		}
		return pageOf(p, 3, p), nil
	}}
	s := newTestSession(t, gw)
	deliver(t, s, settle(s, "dune"))

	deliver(t, s, s.LoadMore())
	vm := s.View()
	assert.Equal(t, 1, s.search.Page, "page counter rolled back")
	assert.Equal(t, []int{1}, ids(vm.Items), "loaded pages are kept")
	assert.Equal(t, "Failed to fetch movies (status 503)", vm.Error)

	failing = false
	deliver(t, s, s.LoadMore())
	calls := gw.callsOf("search")
	assert.Equal(t, 2, calls[len(calls)-1].page, "retry targets the same page")
	assert.Equal(t, []int{1, 2}, ids(s.View().Items))
	assert.Empty(t, s.View().Error)
}

func TestSession_FailedFirstPageClearsList(t *testing.T) {
	gw := &fakeGateway{search: func(q string, p int) (domain.Page, error) {
		if q == "heats" {
			return domain.Page{}, &domain.TransportError{Op: "search", Err: errors.New("connection refused")}
		}
		return pageOf(p, 1, 7), nil
	}}
	s := newTestSession(t, gw)
	deliver(t, s, settle(s, "heat"))
	require.Len(t, s.View().Items, 1)

	deliver(t, s, settle(s, "heats"))
	vm := s.View()
	assert.Empty(t, vm.Items)
	assert.Equal(t, "Failed to fetch movies", vm.Error)
	assert.Equal(t, []string{"heat"}, vm.History, "failed searches are not recorded")
}

func TestSession_EmptyResultIsNotAnError(t *testing.T) {
	gw := &fakeGateway{search: func(q string, p int) (domain.Page, error) {
		return domain.Page{Page: 1, TotalPages: 0}, nil
	}}
	s := newTestSession(t, gw)
	deliver(t, s, settle(s, "batman"))

	vm := s.View()
	assert.Equal(t, StatusEmpty, s.search.Status)
	assert.Empty(t, vm.Items)
	assert.Empty(t, vm.Error)
	assert.Equal(t, "No movie found", vm.Notice)
	assert.False(t, vm.HasMore)
	assert.Empty(t, vm.History, "empty searches are not recorded")
}

func TestSession_DroppingBelowMinimumClearsResults(t *testing.T) {
	s := newTestSession(t, &fakeGateway{search: func(q string, p int) (domain.Page, error) {
		return pageOf(p, 1, 1), nil
	}})
	deliver(t, s, settle(s, "heat"))

	s.SetQueryText("he")
	assert.Empty(t, s.search.Items)
	assert.Equal(t, "heat", s.search.Debounced, "kept until the pending cycle completes")
	assert.Equal(t, ModeCategory, s.Mode())

	assert.Nil(t, s.Update(searchTickMsg{seq: s.debounce.seq}))
	assert.Equal(t, "he", s.search.Debounced)
}

func TestSession_StaleResultAfterDroppingBelowMinimum(t *testing.T) {
	gw := &fakeGateway{search: func(q string, p int) (domain.Page, error) {
		return pageOf(p, 1, 1, 2), nil
	}}
	s := newTestSession(t, gw)
	pending := settle(s, "heat")

	s.SetQueryText("he")
	deliver(t, s, pending)

	require.Len(t, gw.callsOf("search"), 1)
	assert.Empty(t, s.search.Items, "the in-flight response is not applied")
	assert.Equal(t, ModeCategory, s.Mode())
	assert.Empty(t, s.View().History)
}

func TestSession_DroppingBelowMinimumClearsError(t *testing.T) {
	gw := &fakeGateway{search: func(q string, p int) (domain.Page, error) {
		return domain.Page{}, &domain.TransportError{Op: "search", StatusCode: 500}
	}}
	s := newTestSession(t, gw)
	deliver(t, s, settle(s, "heat"))
	require.NotEmpty(t, s.View().Error)

	s.SetQueryText("he")
	vm := s.View()
	assert.Empty(t, vm.Error)
	assert.Empty(t, vm.Items)
	assert.Equal(t, StatusIdle, s.search.Status)
}

func TestSession_SubmitEmptyQuery(t *testing.T) {
	gw := &fakeGateway{}
	s := newTestSession(t, gw)

	assert.Nil(t, s.SubmitQuery())
	assert.Equal(t, "Please enter the name of the movie", s.View().Error)
	assert.Empty(t, gw.callsOf("search"))

	s.SetQueryText("x")
	assert.Empty(t, s.View().Error, "typing clears the validation error")
}

func TestSession_SubmitSkipsQuietPeriod(t *testing.T) {
	gw := &fakeGateway{}
	s := newTestSession(t, gw)

	s.SetQueryText("jaws")
	deliver(t, s, s.SubmitQuery())
	require.Len(t, gw.callsOf("search"), 1)

	// The superseded tick must not search again
	assert.Nil(t, s.Update(searchTickMsg{seq: s.debounce.seq - 1}))
	assert.Len(t, gw.callsOf("search"), 1)
}

func TestSession_InitLoadsGenresAndCategory(t *testing.T) {
	gw := &fakeGateway{genres: []domain.Genre{{ID: 28, Name: "Action"}}}
	s := newTestSession(t, gw)

	deliver(t, s, s.Init())

	assert.Len(t, gw.callsOf("genres"), 1)
	calls := gw.callsOf("category")
	require.Len(t, calls, 1)
	assert.Equal(t, domain.CategoryPopular, calls[0].category)

	vm := s.View()
	assert.Equal(t, ModeCategory, vm.Mode)
	assert.Equal(t, []int{101}, ids(vm.Items))
	assert.Equal(t, []domain.Genre{{ID: 28, Name: "Action"}}, vm.Filter.Available)
}

func TestSession_CategorySwitchClearsFilters(t *testing.T) {
	gw := &fakeGateway{list: func(p int) (domain.Page, error) {
		return pageOf(p, 4, p), nil
	}}
	s := newTestSession(t, gw)
	deliver(t, s, s.Init())

	s.ToggleGenre(28)
	s.SetYearBound(YearFrom, 2000)
	deliver(t, s, s.ApplyFilters())
	assert.Equal(t, ModeFilteredDiscover, s.Mode())
	deliver(t, s, s.LoadMore())
	assert.Equal(t, 2, s.browse.Page)

	discovers := gw.callsOf("discover")
	require.Len(t, discovers, 2)
	assert.Equal(t, []int{28}, discovers[1].facets.Genres, "load more keeps the applied facets")
	assert.Equal(t, 2, discovers[1].page)

	cmd := s.SelectCategory(domain.CategoryTopRated)
	require.NotNil(t, cmd)
	assert.False(t, s.filter.Applied)
	assert.Empty(t, s.filter.Selected)
	assert.Equal(t, 1, s.browse.Page)
	assert.Equal(t, ModeCategory, s.Mode())

	deliver(t, s, cmd)
	calls := gw.callsOf("category")
	last := calls[len(calls)-1]
	assert.Equal(t, domain.CategoryTopRated, last.category)
	assert.Equal(t, 1, last.page)
	assert.Equal(t, []int{1}, ids(s.View().Items))
}

func TestSession_ReselectingFailedCategoryRetries(t *testing.T) {
	failing := true
	gw := &fakeGateway{list: func(p int) (domain.Page, error) {
		if failing {
			return domain.Page{}, &domain.TransportError{Op: "category", StatusCode: 503}
		}
		return pageOf(p, 1, 7), nil
	}}
	s := newTestSession(t, gw)
	deliver(t, s, s.Init())
	require.Equal(t, "Failed to load category movies (status 503)", s.View().Error)
	assert.Nil(t, s.LoadMore(), "nothing more to load after a failed first page")

	failing = false
	cmd := s.SelectCategory(domain.CategoryPopular)
	require.NotNil(t, cmd)
	deliver(t, s, cmd)

	calls := gw.callsOf("category")
	require.Len(t, calls, 2)
	assert.Equal(t, domain.CategoryPopular, calls[1].category)
	assert.Equal(t, 1, calls[1].page)
	vm := s.View()
	assert.Equal(t, []int{7}, ids(vm.Items))
	assert.Empty(t, vm.Error)

	assert.Nil(t, s.SelectCategory(domain.CategoryPopular), "a loaded tab is not refetched")
	assert.Len(t, gw.callsOf("category"), 2)
}

func TestSession_ReselectingRetriesAppliedFilters(t *testing.T) {
	failing := false
	gw := &fakeGateway{list: func(p int) (domain.Page, error) {
		if failing {
			return domain.Page{}, &domain.TransportError{Op: "discover", StatusCode: 502}
		}
		return pageOf(p, 3, 10+p), nil
	}}
	s := newTestSession(t, gw)
	deliver(t, s, s.Init())

	s.ToggleGenre(28)
	s.SetMinRating(7)
	deliver(t, s, s.ApplyFilters())
	require.Equal(t, []int{11}, ids(s.View().Items))

	failing = true
	deliver(t, s, s.LoadMore())
	require.NotEmpty(t, s.View().Error)
	assert.Equal(t, 1, s.browse.Page)

	failing = false
	deliver(t, s, s.SelectCategory(domain.CategoryPopular))

	discovers := gw.callsOf("discover")
	last := discovers[len(discovers)-1]
	assert.Equal(t, 2, last.page, "retries the page that failed")
	assert.Equal(t, domain.Facets{Genres: []int{28}, MinRating: 7}, last.facets)
	assert.True(t, s.filter.Applied, "filters survive the retry")
	assert.Equal(t, ModeFilteredDiscover, s.Mode())
	assert.Equal(t, []int{11, 12}, ids(s.View().Items))
	assert.Len(t, gw.callsOf("category"), 1)
}

func TestSession_StaleCategoryResponseIsDropped(t *testing.T) {
	gw := &fakeGateway{}
	s := newTestSession(t, gw)

	popular := s.Init()
	topRated := s.SelectCategory(domain.CategoryTopRated)

	deliver(t, s, topRated)
	before := s.View().Items
	deliver(t, s, popular)

	assert.Equal(t, before, s.View().Items)
	assert.Equal(t, domain.CategoryTopRated, s.View().Category)
}

func TestSession_ApplyGating(t *testing.T) {
	gw := &fakeGateway{}
	s := newTestSession(t, gw)
	deliver(t, s, s.Init())

	assert.Nil(t, s.ApplyFilters())
	assert.False(t, s.filter.Applied)
	assert.Empty(t, gw.callsOf("discover"))

	s.SetMinRating(7)
	s.SetMinRating(0)
	assert.Nil(t, s.ApplyFilters(), "back at defaults")
}

func TestSession_ResetFilters(t *testing.T) {
	gw := &fakeGateway{genres: []domain.Genre{{ID: 35, Name: "Comedy"}}}
	s := newTestSession(t, gw)
	deliver(t, s, s.Init())

	s.ToggleGenre(35)
	s.SetMinRating(6.3)
	deliver(t, s, s.ApplyFilters())
	assert.Equal(t, "Genres: Comedy • Rating: ≥ 6.5", s.View().FilterSummary)

	before := len(gw.callsOf("category"))
	deliver(t, s, s.ResetFilters())

	vm := s.View()
	assert.False(t, vm.Filter.Applied)
	assert.True(t, s.filter.Facets().IsZero())
	assert.Empty(t, vm.FilterSummary)
	assert.Equal(t, ModeCategory, vm.Mode)

	calls := gw.callsOf("category")
	require.Len(t, calls, before+1)
	assert.Equal(t, 1, calls[len(calls)-1].page)
}

func TestSession_FavoritesMode(t *testing.T) {
	gw := &fakeGateway{}
	s := newTestSession(t, gw)
	deliver(t, s, s.Init())

	matrix := domain.Item{ID: 603, Title: "The Matrix"}
	s.ToggleFavorite(matrix)
	assert.True(t, s.IsFavorite(603))

	before := len(gw.callsOf("category"))
	assert.Nil(t, s.SelectCategory(domain.CategoryFavorites))
	assert.Len(t, gw.callsOf("category"), before, "favorites are local")

	s.SetQueryText("batman")
	vm := s.View()
	assert.Equal(t, ModeFavorites, vm.Mode, "favorites ignores the query")
	assert.Equal(t, []int{603}, ids(vm.Items))
	assert.Equal(t, 1, vm.FavoritesCount)
	assert.False(t, vm.HasMore)
	assert.Nil(t, s.LoadMore())

	s.ToggleFavorite(matrix)
	vm = s.View()
	assert.Empty(t, vm.Items)
	assert.False(t, vm.FavoriteIDs[603])
	assert.Equal(t, "No favorites yet", vm.Notice)
}

func TestSession_ApplyIgnoredOnFavorites(t *testing.T) {
	s := newTestSession(t, &fakeGateway{})
	s.SelectCategory(domain.CategoryFavorites)
	s.ToggleGenre(12)
	assert.Nil(t, s.ApplyFilters())
	assert.Equal(t, ModeFavorites, s.Mode())
}

func TestSession_History(t *testing.T) {
	gw := &fakeGateway{search: func(q string, p int) (domain.Page, error) {
		return pageOf(p, 1, 1), nil
	}}
	s := newTestSession(t, gw)

	for _, q := range []string{"alien", "blade", "alien"} {
		deliver(t, s, settle(s, q))
	}
	assert.Equal(t, []string{"alien", "blade"}, s.View().History)

	s.SetQueryText("")
	vm := s.View()
	assert.True(t, vm.ShowHistory)
	assert.Empty(t, vm.Hint)

	s.SelectHistoryEntry("blade")
	assert.Equal(t, "blade", s.View().Query)
	assert.True(t, s.View().Typing)

	s.ClearHistory()
	assert.Empty(t, s.View().History)
}

func TestSession_Detail(t *testing.T) {
	gw := &fakeGateway{}
	s := newTestSession(t, gw)

	item := domain.Item{ID: 42, Title: "Summary"}
	cmd := s.OpenDetail(item)
	vm := s.View()
	assert.True(t, vm.DetailOpen)
	assert.True(t, vm.DetailLoading)
	assert.Equal(t, "Summary", vm.Detail.Title)

	deliver(t, s, cmd)
	vm = s.View()
	assert.False(t, vm.DetailLoading)
	assert.Equal(t, 120, vm.Detail.Runtime)

	last, ok := s.LastViewed()
	require.True(t, ok)
	assert.Equal(t, 42, last.ID)

	s.CloseDetail()
	assert.False(t, s.View().DetailOpen)
}

func TestSession_DetailFailureLeavesListAlone(t *testing.T) {
	gw := &fakeGateway{detail: func(id int) (*domain.Item, error) {
		return nil, fmt.Errorf("%w: boom", domain.ErrDetailUnavailable)
	}}
	s := newTestSession(t, gw)
	deliver(t, s, s.Init())
	before := s.View().Items

	deliver(t, s, s.OpenDetail(before[0]))
	vm := s.View()
	assert.Equal(t, "Failed to load details", vm.DetailError)
	assert.Empty(t, vm.Error)
	assert.Equal(t, before, vm.Items)
}

func TestSession_DetailAfterCloseIsDropped(t *testing.T) {
	s := newTestSession(t, &fakeGateway{})
	cmd := s.OpenDetail(domain.Item{ID: 1})
	s.CloseDetail()
	deliver(t, s, cmd)
	assert.False(t, s.View().DetailOpen)
	assert.Nil(t, s.View().Detail)
}
