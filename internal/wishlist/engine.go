package wishlist

import (
	"sync"

	"premiumshop-be/internal/localstore"
)

// Engine mirrors the cart engine's write-through behavior for the
// session's wishlist.
type Engine struct {
	mu    sync.Mutex
	store *localstore.Store
	items []Item
}

func NewEngine(store *localstore.Store) (*Engine, error) {
	e := &Engine{store: store}
	if _, err := store.Get(localstore.KeyWishlist, &e.items); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) persist() error {
	if e.items == nil {
		return e.store.Put(localstore.KeyWishlist, []Item{})
	}
	return e.store.Put(localstore.KeyWishlist, e.items)
}

// Add puts the item on the list. A duplicate id is an informational no-op:
// the boolean is false and nothing changes, but it is not an error.
func (e *Engine) Add(item Item) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, it := range e.items {
		if it.ID == item.ID {
			return false, nil
		}
	}

	e.items = append(e.items, item)
	return true, e.persist()
}

// Remove drops the item; false when the id was not on the list.
func (e *Engine) Remove(id string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.items {
		if e.items[i].ID == id {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return true, e.persist()
		}
	}
	return false, nil
}

// Has reports whether the product is wishlisted.
func (e *Engine) Has(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, it := range e.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.items)
}

// Items returns a snapshot copy.
func (e *Engine) Items() []Item {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Item, len(e.items))
	copy(out, e.items)
	return out
}
