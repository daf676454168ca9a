package lists

import (
	"log/slog"
	"strings"

	"github.com/mmcdole/flick/internal/domain"
)

// DefaultHistorySize is the number of recent searches kept
const DefaultHistorySize = 5

// History holds recent search queries, newest first
type History struct {
	list *List[string]
}

// NewHistory loads the search history from kv
func NewHistory(kv domain.KVStore, capacity int, logger *slog.Logger) *History {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	identity := func(s string) string { return s }
	return &History{list: Load(kv, domain.KeyHistory, identity, capacity, logger)}
}

// Record moves query to the front of the history. Blank input is ignored.
func (h *History) Record(query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	return h.list.Prepend(query)
}

// Entries returns the history, newest first
func (h *History) Entries() []string { return h.list.Items() }

// Len returns the number of entries
func (h *History) Len() int { return h.list.Len() }

// Clear empties the history
func (h *History) Clear() error { return h.list.Clear() }
