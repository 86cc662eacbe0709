package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	var c Counter
	c.Inc()
	c.Add(4)
	assert.Equal(t, uint64(5), c.Load())
}

func TestCounter_Concurrent(t *testing.T) {
	var c Counter
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Inc()
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(50), c.Load())
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(time.Millisecond)
	assert.GreaterOrEqual(t, timer.Duration(), time.Millisecond)
}

func TestRegistrySnapshot(t *testing.T) {
	var r Registry
	r.Requests.Add(3)
	r.OrdersPlaced.Inc()

	snap := r.Snapshot()
	assert.Equal(t, uint64(3), snap["requests"])
	assert.Equal(t, uint64(1), snap["orders_placed"])
	assert.Equal(t, uint64(0), snap["failures"])
}
