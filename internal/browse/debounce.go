package browse

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/flick/internal/domain"
)

// DefaultDebounce is the quiet period before a search runs
const DefaultDebounce = 500 * time.Millisecond

// debouncer keeps a single logical timer per input stream. Every schedule
// supersedes the previous one; only the tick carrying the latest seq fires.
type debouncer struct {
	wait    time.Duration
	seq     int
	pending bool
}

func (d *debouncer) schedule() tea.Cmd {
	d.seq++
	d.pending = true
	seq := d.seq
	return tea.Tick(d.wait, func(time.Time) tea.Msg {
		return searchTickMsg{seq: seq}
	})
}

func (d *debouncer) cancel() {
	d.seq++
	d.pending = false
}

// fire reports whether the tick for seq is still the current one
func (d *debouncer) fire(seq int) bool {
	if !d.pending || seq != d.seq {
		return false
	}
	d.pending = false
	return true
}

// SetQueryText records a keystroke and restarts the quiet period. Text
// shorter than the minimum clears the search results immediately.
func (s *Session) SetQueryText(text string) tea.Cmd {
	if text == s.search.Query {
		return nil
	}
	s.search.Query = text
	s.validationErr = nil

	if !searchable(text, s.minLen) {
		// Debounced is left alone until the pending cycle completes
		s.search.clear()
	}
	return s.debounce.schedule()
}

// ClearSearch empties the query
func (s *Session) ClearSearch() tea.Cmd {
	return s.SetQueryText("")
}

// SubmitQuery runs the search for the current text without waiting for
// the quiet period.
func (s *Session) SubmitQuery() tea.Cmd {
	s.debounce.cancel()
	if strings.TrimSpace(s.search.Query) == "" {
		s.validationErr = domain.ErrEmptyQuery
		return nil
	}
	return s.startSearch()
}

func (s *Session) onSearchTick(msg searchTickMsg) tea.Cmd {
	if !s.debounce.fire(msg.seq) {
		return nil
	}
	return s.startSearch()
}

// startSearch promotes the query text to the debounced query and issues
// page 1, unless the text is too short.
func (s *Session) startSearch() tea.Cmd {
	s.search.Debounced = s.search.Query
	if !searchable(s.search.Debounced, s.minLen) {
		return nil
	}
	s.logger.Debug("search dispatched", "query", s.search.Debounced)
	return searchMode{}.fetch(s, 1)
}

// onSearchResult applies a response only if it answers the current
// (debounced query, page) pair.
func (s *Session) onSearchResult(msg searchResultMsg) tea.Cmd {
	if msg.query != s.search.Debounced || msg.page != s.search.Page || !searchable(s.search.Query, s.minLen) {
		s.logger.Debug("dropping stale search response", "query", msg.query, "page", msg.page)
		return nil
	}

	if msg.err != nil {
		s.logger.Warn("search failed", "query", msg.query, "page", msg.page, "error", msg.err)
		s.search.fail(msg.page, msg.err)
		return nil
	}

	s.search.merge(msg.page, msg.result)
	if msg.page == 1 && !msg.result.Empty() {
		if err := s.history.Record(msg.query); err != nil {
			s.logger.Error("failed to record search history", "error", err)
		}
	}
	return nil
}
