package analytics

import (
	"sync"
	"time"

	"premiumshop-be/internal/localstore"
	"premiumshop-be/internal/logger"

	"go.uber.org/zap"
)

// maxEvents caps the persisted event log; older events are dropped first.
const maxEvents = 100

type Event struct {
	Name      string         `json:"event"`
	Props     map[string]any `json:"props,omitempty"`
	Page      string         `json:"page,omitempty"`
	Timestamp time.Time      `json:"ts"`
}

// Tracker appends events to the local store, keeping only the most
// recent maxEvents.
type Tracker struct {
	mu    sync.Mutex
	store *localstore.Store
	now   func() time.Time
}

func NewTracker(store *localstore.Store) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

func (t *Tracker) Track(name string, props map[string]any) {
	t.TrackPage(name, "", props)
}

func (t *Tracker) TrackPage(name, page string, props map[string]any) {
	t.mu.Lock()
	defer t.mu.Unlock()

	events := t.load()
	events = append(events, Event{
		Name:      name,
		Props:     props,
		Page:      page,
		Timestamp: t.now(),
	})
	if len(events) > maxEvents {
		events = events[len(events)-maxEvents:]
	}

	if err := t.store.Put(localstore.KeyAnalytics, events); err != nil {
		logger.L().Warn("failed to persist analytics events", zap.Error(err))
	}
}

// Events returns the persisted log, oldest first.
func (t *Tracker) Events() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.load()
}

func (t *Tracker) load() []Event {
	var events []Event
	if _, err := t.store.Get(localstore.KeyAnalytics, &events); err != nil {
		return nil
	}
	return events
}

// FirstVisit reports whether this is the first session on this store file
// and marks it visited. Subsequent calls return false.
func (t *Tracker) FirstVisit() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	var visited bool
	found, err := t.store.Get(localstore.KeyHasVisited, &visited)
	if err == nil && found && visited {
		return false
	}

	if err := t.store.Put(localstore.KeyHasVisited, true); err != nil {
		logger.L().Warn("failed to persist visit flag", zap.Error(err))
	}
	return true
}
