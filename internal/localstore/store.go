package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Well-known keys. Callers are free to use others, but these are the ones
// the storefront persists between sessions.
const (
	KeyCart         = "cart"
	KeyWishlist     = "wishlist"
	KeyUser         = "user"
	KeyOrders       = "orders"
	KeyReviews      = "reviews"
	KeyNewsletter   = "newsletterSubscribers"
	KeyAnalytics    = "analyticsEvents"
	KeyHasVisited   = "hasVisited"
	KeyShippingInfo = "shippingInfo"
)

// Store is a key to JSON-value persistence layer for per-session state:
// cart, wishlist, user session and the local fallback caches. Every Put
// rewrites the backing file, so the persisted snapshot always matches the
// in-memory state once a call returns.
type Store struct {
	mu     sync.RWMutex
	values map[string]json.RawMessage
	path   string
}

// Open loads (or lazily creates) a store backed by the JSON file at path.
// A missing or empty file yields an empty store; that mirrors first-visit
// behavior rather than being an error.
func Open(path string) (*Store, error) {
	s := &Store{
		values: make(map[string]json.RawMessage),
		path:   path,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(b) == 0 {
		return nil
	}

	if err := json.Unmarshal(b, &s.values); err != nil {
		return fmt.Errorf("corrupt local store %s: %w", s.path, err)
	}
	return nil
}

// save must be called with the write lock held. It writes to a temp file
// and renames so a crash mid-write never truncates the store.
func (s *Store) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	b, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Put serializes v under key and persists immediately (write-through).
func (s *Store) Put(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = b
	return s.save()
}

// Get unmarshals the value stored under key into v. The boolean reports
// whether the key was present; absence is not an error.
func (s *Store) Get(key string, v any) (bool, error) {
	s.mu.RLock()
	b, ok := s.values[key]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, v); err != nil {
		return true, err
	}
	return true, nil
}

// Delete removes key and persists. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.save()
}

// Keys returns the stored keys in stable order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
