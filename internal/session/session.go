package session

import (
	"sort"
	"sync"

	"premiumshop-be/internal/localstore"
	"premiumshop-be/internal/logger"

	"go.uber.org/zap"
)

// CurrentUser is the signed-in identity of this session, persisted under
// the "user" key so a restart restores it.
type CurrentUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// Session tracks the signed-in user and notifies watchers when the auth
// state changes. Callbacks run on the session's own goroutine, in
// registration order, one change at a time.
type Session struct {
	mu       sync.Mutex
	store    *localstore.Store
	current  *CurrentUser
	watchers map[int]func(*CurrentUser)
	nextID   int

	events chan *CurrentUser
	done   chan struct{}
	once   sync.Once
}

func New(store *localstore.Store) (*Session, error) {
	s := &Session{
		store:    store,
		watchers: make(map[int]func(*CurrentUser)),
		events:   make(chan *CurrentUser, 16),
		done:     make(chan struct{}),
	}

	var u CurrentUser
	found, err := store.Get(localstore.KeyUser, &u)
	if err != nil {
		return nil, err
	}
	if found {
		s.current = &u
	}

	go s.dispatch()
	return s, nil
}

func (s *Session) dispatch() {
	for {
		select {
		case u := <-s.events:
			for _, fn := range s.snapshotWatchers() {
				fn(u)
			}
		case <-s.done:
			return
		}
	}
}

func (s *Session) snapshotWatchers() []func(*CurrentUser) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, 0, len(s.watchers))
	for id := range s.watchers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	fns := make([]func(*CurrentUser), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.watchers[id])
	}
	return fns
}

// Current returns the signed-in user, nil when signed out.
func (s *Session) Current() *CurrentUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// SignIn stores the user and notifies watchers.
func (s *Session) SignIn(u CurrentUser) error {
	s.mu.Lock()
	s.current = &u
	err := s.store.Put(localstore.KeyUser, u)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify(&u)
	return nil
}

// SignOut clears the stored user and notifies watchers with nil.
func (s *Session) SignOut() error {
	s.mu.Lock()
	s.current = nil
	err := s.store.Delete(localstore.KeyUser)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify(nil)
	return nil
}

func (s *Session) notify(u *CurrentUser) {
	select {
	case s.events <- u:
	case <-s.done:
	default:
		logger.L().Warn("auth state event dropped, watcher queue full",
			zap.Int("queue", cap(s.events)),
		)
	}
}

// Watch registers fn for auth state changes and returns a cancel handle.
// Cancelling is idempotent.
func (s *Session) Watch(fn func(*CurrentUser)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.watchers, id)
			s.mu.Unlock()
		})
	}
}

// Close stops the dispatch goroutine. Pending notifications are dropped.
func (s *Session) Close() {
	s.once.Do(func() { close(s.done) })
}
