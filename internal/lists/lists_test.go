package lists

import (
	"errors"
	"testing"

	"github.com/mmcdole/flick/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memKV is a map-backed domain.KVStore that can be told to fail writes
type memKV struct {
	data    map[string]string
	failSet bool
	writes  int
}

func newMemKV() *memKV { return &memKV{data: map[string]string{}} }

func (m *memKV) Get(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *memKV) Set(key, value string) error {
	if m.failSet {
		return errors.New("disk full")
	}
	m.writes++
	m.data[key] = value
	return nil
}

func TestHistory_RecordMovesToFrontAndCaps(t *testing.T) {
	kv := newMemKV()
	h := NewHistory(kv, 5, nil)

	for _, q := range []string{"alien", "batman", "casablanca", "dune", "eraserhead", "fargo"} {
		require.NoError(t, h.Record(q))
	}
	assert.Equal(t, []string{"fargo", "eraserhead", "dune", "casablanca", "batman"}, h.Entries())

	require.NoError(t, h.Record("dune"))
	assert.Equal(t, []string{"dune", "fargo", "eraserhead", "casablanca", "batman"}, h.Entries())
	assert.Equal(t, `["dune","fargo","eraserhead","casablanca","batman"]`, kv.data[domain.KeyHistory])
}

func TestHistory_IgnoresBlank(t *testing.T) {
	kv := newMemKV()
	h := NewHistory(kv, 5, nil)

	require.NoError(t, h.Record(""))
	require.NoError(t, h.Record("   "))
	assert.Zero(t, h.Len())
	assert.Zero(t, kv.writes, "blank input must not touch the store")
}

func TestHistory_Clear(t *testing.T) {
	kv := newMemKV()
	h := NewHistory(kv, 5, nil)
	require.NoError(t, h.Record("matrix"))

	require.NoError(t, h.Clear())
	assert.Empty(t, h.Entries())
	assert.Equal(t, `[]`, kv.data[domain.KeyHistory])
}

func TestHistory_LoadsPersisted(t *testing.T) {
	kv := newMemKV()
	kv.data[domain.KeyHistory] = `["heat","ronin","heat","a","b","c","d"]`

	h := NewHistory(kv, 5, nil)
	assert.Equal(t, []string{"heat", "ronin", "a", "b", "c"}, h.Entries())
}

func TestHistory_CorruptValueYieldsEmpty(t *testing.T) {
	kv := newMemKV()
	kv.data[domain.KeyHistory] = `{not json`

	h := NewHistory(kv, 5, nil)
	assert.Zero(t, h.Len())

	require.NoError(t, h.Record("solaris"))
	assert.Equal(t, []string{"solaris"}, h.Entries())
}

func TestFavorites_ToggleIsInvolution(t *testing.T) {
	kv := newMemKV()
	f := NewFavorites(kv, nil)
	item := domain.Item{ID: 603, Title: "The Matrix"}

	added, err := f.Toggle(item)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, f.Contains(603))

	added, err = f.Toggle(item)
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, f.Contains(603))
	assert.Zero(t, f.Len())
}

func TestFavorites_AppendOrderAndPersistence(t *testing.T) {
	kv := newMemKV()
	f := NewFavorites(kv, nil)

	for _, it := range []domain.Item{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}, {ID: 3, Title: "C"}} {
		_, err := f.Toggle(it)
		require.NoError(t, err)
	}
	_, err := f.Toggle(domain.Item{ID: 2})
	require.NoError(t, err)

	reloaded := NewFavorites(kv, nil)
	items := reloaded.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].Title)
	assert.Equal(t, "C", items[1].Title)
	assert.Equal(t, map[int]bool{1: true, 3: true}, reloaded.IDs())
}

func TestFavorites_UnboundedCapacity(t *testing.T) {
	f := NewFavorites(newMemKV(), nil)
	for i := 1; i <= 50; i++ {
		_, err := f.Toggle(domain.Item{ID: i})
		require.NoError(t, err)
	}
	assert.Equal(t, 50, f.Len())
}

func TestList_PersistFailureKeepsMemoryState(t *testing.T) {
	kv := newMemKV()
	h := NewHistory(kv, 5, nil)
	kv.failSet = true

	err := h.Record("vertigo")
	assert.Error(t, err)
	assert.Equal(t, []string{"vertigo"}, h.Entries())
}

func TestList_ItemsReturnsCopy(t *testing.T) {
	h := NewHistory(newMemKV(), 5, nil)
	require.NoError(t, h.Record("up"))

	entries := h.Entries()
	entries[0] = "mutated"
	assert.Equal(t, []string{"up"}, h.Entries())
}
