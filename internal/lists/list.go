// Package lists provides small deduplicated lists persisted to a KVStore
// as JSON: the search history and the favorites.
package lists

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mmcdole/flick/internal/domain"
)

// List is an ordered, deduplicated, optionally bounded sequence that is
// written back to its store key after every mutation.
type List[T any] struct {
	kv       domain.KVStore
	storeKey string
	keyFn    func(T) string
	capacity int // 0 = unbounded
	items    []T
	logger   *slog.Logger
}

// Load hydrates a list from kv. Missing or unparsable content yields an
// empty list; corruption is logged and never returned.
func Load[T any](kv domain.KVStore, storeKey string, keyFn func(T) string, capacity int, logger *slog.Logger) *List[T] {
	if logger == nil {
		logger = slog.Default()
	}
	l := &List[T]{
		kv:       kv,
		storeKey: storeKey,
		keyFn:    keyFn,
		capacity: capacity,
		logger:   logger,
	}

	raw, ok := kv.Get(storeKey)
	if !ok || raw == "" {
		return l
	}

	var stored []T
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		logger.Warn("discarding unreadable list", "key", storeKey, "error", err)
		return l
	}

	// Repair anything a foreign writer may have left behind
	seen := make(map[string]bool, len(stored))
	for _, v := range stored {
		k := keyFn(v)
		if seen[k] {
			continue
		}
		seen[k] = true
		l.items = append(l.items, v)
	}
	l.truncate()

	logger.Debug("loaded list", "key", storeKey, "count", len(l.items))
	return l
}

// Items returns a copy of the current contents in list order
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of entries
func (l *List[T]) Len() int { return len(l.items) }

// Contains reports whether an entry with key is present
func (l *List[T]) Contains(key string) bool { return l.indexOf(key) >= 0 }

func (l *List[T]) indexOf(key string) int {
	for i, v := range l.items {
		if l.keyFn(v) == key {
			return i
		}
	}
	return -1
}

// Prepend puts v at the front, removing any entry with the same key first,
// then truncates to capacity.
func (l *List[T]) Prepend(v T) error {
	if i := l.indexOf(l.keyFn(v)); i >= 0 {
		l.items = append(l.items[:i], l.items[i+1:]...)
	}
	l.items = append([]T{v}, l.items...)
	l.truncate()
	return l.persist()
}

// Append adds v at the end unless an entry with the same key exists.
// Returns false if v was already present.
func (l *List[T]) Append(v T) (bool, error) {
	if l.Contains(l.keyFn(v)) {
		return false, nil
	}
	l.items = append(l.items, v)
	if l.capacity > 0 && len(l.items) > l.capacity {
		l.items = l.items[len(l.items)-l.capacity:]
	}
	return true, l.persist()
}

// Remove deletes the entry with key. Returns false if it was absent.
func (l *List[T]) Remove(key string) (bool, error) {
	i := l.indexOf(key)
	if i < 0 {
		return false, nil
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return true, l.persist()
}

// Clear removes every entry
func (l *List[T]) Clear() error {
	l.items = nil
	return l.persist()
}

func (l *List[T]) truncate() {
	if l.capacity > 0 && len(l.items) > l.capacity {
		l.items = l.items[:l.capacity]
	}
}

func (l *List[T]) persist() error {
	items := l.items
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", l.storeKey, err)
	}
	if err := l.kv.Set(l.storeKey, string(data)); err != nil {
		l.logger.Error("failed to persist list", "key", l.storeKey, "error", err)
		return fmt.Errorf("failed to persist %s: %w", l.storeKey, err)
	}
	return nil
}
