package lists

import (
	"log/slog"
	"strconv"

	"github.com/mmcdole/flick/internal/domain"
)

// Favorites holds favorited items in the order they were added
type Favorites struct {
	list *List[domain.Item]
}

// NewFavorites loads the favorites from kv
func NewFavorites(kv domain.KVStore, logger *slog.Logger) *Favorites {
	return &Favorites{list: Load(kv, domain.KeyFavorites, domain.Item.Key, 0, logger)}
}

// Toggle removes item if it is already a favorite, otherwise adds it.
// Returns true if the item is a favorite afterwards.
func (f *Favorites) Toggle(item domain.Item) (bool, error) {
	if f.list.Contains(item.Key()) {
		_, err := f.list.Remove(item.Key())
		return false, err
	}
	_, err := f.list.Append(item)
	return true, err
}

// Contains reports whether id is a favorite
func (f *Favorites) Contains(id int) bool {
	return f.list.Contains(strconv.Itoa(id))
}

// Items returns the favorites in insertion order
func (f *Favorites) Items() []domain.Item { return f.list.Items() }

// Len returns the number of favorites
func (f *Favorites) Len() int { return f.list.Len() }

// IDs returns the set of favorite ids
func (f *Favorites) IDs() map[int]bool {
	items := f.list.Items()
	ids := make(map[int]bool, len(items))
	for _, item := range items {
		ids[item.ID] = true
	}
	return ids
}
