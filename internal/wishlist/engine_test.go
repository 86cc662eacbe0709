package wishlist

import (
	"path/filepath"
	"testing"

	"premiumshop-be/internal/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*Engine, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "localstore.json")
	store, err := localstore.Open(path)
	require.NoError(t, err)
	e, err := NewEngine(store)
	require.NoError(t, err)
	return e, path
}

func TestAdd_DuplicateIsInformationalNoop(t *testing.T) {
	e, _ := newTestEngine(t)
	item := Item{ID: "p1", Name: "Headphones", Price: 500}

	added, err := e.Add(item)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = e.Add(item)
	require.NoError(t, err)
	assert.False(t, added, "duplicate add reports false, not an error")
	assert.Equal(t, 1, e.Count())
}

func TestRemove(t *testing.T) {
	e, _ := newTestEngine(t)
	_, err := e.Add(Item{ID: "p1", Name: "Headphones", Price: 500})
	require.NoError(t, err)

	removed, err := e.Remove("p1")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Zero(t, e.Count())

	removed, err = e.Remove("p1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestHas(t *testing.T) {
	e, _ := newTestEngine(t)
	_, err := e.Add(Item{ID: "p1"})
	require.NoError(t, err)

	assert.True(t, e.Has("p1"))
	assert.False(t, e.Has("p2"))
}

func TestReload(t *testing.T) {
	e, path := newTestEngine(t)
	_, err := e.Add(Item{ID: "p1", Name: "Headphones", Price: 500, Image: "p1.jpg"})
	require.NoError(t, err)

	store, err := localstore.Open(path)
	require.NoError(t, err)
	reloaded, err := NewEngine(store)
	require.NoError(t, err)

	assert.Equal(t, e.Items(), reloaded.Items())
}
