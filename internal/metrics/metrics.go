package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Registry holds the process-wide counters the transport reports on.
type Registry struct {
	Requests      Counter
	Failures      Counter
	OrdersPlaced  Counter
	ReviewsAdded  Counter
	CartMutations Counter
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Snapshot returns the current counter values for the admin dashboard.
func (r *Registry) Snapshot() map[string]uint64 {
	return map[string]uint64{
		"requests":       r.Requests.Load(),
		"failures":       r.Failures.Load(),
		"orders_placed":  r.OrdersPlaced.Load(),
		"reviews_added":  r.ReviewsAdded.Load(),
		"cart_mutations": r.CartMutations.Load(),
	}
}
