package match

import (
	"sync"
	"time"
)

// TickScheduler delivers repeated ticks to fn until the returned stop
// function runs. Stop must prevent any tick scheduled before the call from
// reaching fn afterwards; the session enforces that with a generation guard
// on top of this contract.
type TickScheduler interface {
	Schedule(fn func()) (stop func())
}

// NewTickerScheduler returns the production scheduler: one goroutine per
// armed countdown driving a time.Ticker at the given interval.
func NewTickerScheduler(interval time.Duration) TickScheduler {
	return &tickerScheduler{interval: interval}
}

type tickerScheduler struct {
	interval time.Duration
}

func (s *tickerScheduler) Schedule(fn func()) func() {
	ticker := time.NewTicker(s.interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
		})
	}
}

// countdown is one integer-seconds clock: the main question timer or a
// lifeline dialog sub-timer. All fields are guarded by the session mutex.
// The generation counter makes cancellation synchronous: a tick delivered
// after invalidate carries a stale gen and is dropped.
type countdown struct {
	seconds int
	active  bool
	gen     uint64
	cancel  func()
}

func (c *countdown) invalidate() {
	c.gen++
	c.active = false
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *countdown) arm(sched TickScheduler, tick func(gen uint64)) {
	c.invalidate()
	gen := c.gen
	c.active = true
	c.cancel = sched.Schedule(func() {
		tick(gen)
	})
}
