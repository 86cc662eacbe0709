package cart

import (
	"sync"

	"premiumshop-be/internal/localstore"
)

// Engine owns the in-memory cart of a single session and writes every
// mutation through to the local store before returning. The persisted
// snapshot and the in-memory state therefore always agree once a call
// completes.
type Engine struct {
	mu    sync.Mutex
	store *localstore.Store
	items []Item
}

// NewEngine loads whatever cart the store holds; a session with no saved
// cart starts empty.
func NewEngine(store *localstore.Store) (*Engine, error) {
	e := &Engine{store: store}
	if _, err := store.Get(localstore.KeyCart, &e.items); err != nil {
		return nil, err
	}
	return e, nil
}

// persist must be called with the lock held.
func (e *Engine) persist() error {
	if e.items == nil {
		return e.store.Put(localstore.KeyCart, []Item{})
	}
	return e.store.Put(localstore.KeyCart, e.items)
}

// AddItem merges by id: an existing line gains quantity, a new id appends.
// Quantities below one are coerced to one, so AddItem cannot fail on input.
func (e *Engine) AddItem(item Item, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.items {
		if e.items[i].ID == item.ID {
			e.items[i].Quantity += quantity
			return e.persist()
		}
	}

	item.Quantity = quantity
	e.items = append(e.items, item)
	return e.persist()
}

// RemoveItem deletes the line with the given id. The boolean reports
// whether the id was present; removing an absent id is a no-op, not an
// error.
func (e *Engine) RemoveItem(id string) (bool, error) {
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

// SetQuantity sets the line's quantity; q <= 0 removes the line instead.
// The boolean reports whether the id was found.
func (e *Engine) SetQuantity(id string, q int) (bool, error) {
	if q <= 0 {
		return e.RemoveItem(id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.items {
		if e.items[i].ID == id {
			e.items[i].Quantity = q
			return true, e.persist()
		}
	}
	return false, nil
}

// Clear empties the cart and removes the persisted key.
func (e *Engine) Clear() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.items = nil
	return e.store.Delete(localstore.KeyCart)
}

// Total is the sum of price*quantity over all lines. Pure, no side effects.
func (e *Engine) Total() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	var total int64
	for _, it := range e.items {
		total += it.Subtotal()
	}
	return total
}

// Count is the total quantity across lines (the navbar badge number).
func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	var n int
	for _, it := range e.items {
		n += it.Quantity
	}
	return n
}

// Items returns a snapshot copy; callers can hold it across later
// mutations without seeing them.
func (e *Engine) Items() []Item {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Item, len(e.items))
	copy(out, e.items)
	return out
}
