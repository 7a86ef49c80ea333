package composition

import (
	"sync"
	"time"
)

// Scheduler arms a single callback after a delay and returns a cancel
// function. The abstraction exists so autoplay can be driven by a fake clock
// in tests and cancellation is an explicit contract rather than implicit
// cleanup behaviour.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

// TimerScheduler is the production Scheduler backed by time.AfterFunc.
type TimerScheduler struct{}

// Schedule implements Scheduler.
func (TimerScheduler) Schedule(d time.Duration, fn func()) func() {
	timer := time.AfterFunc(d, fn)
	return func() { timer.Stop() }
}

// Carousel is the explicit {index, playing} state machine behind the hero,
// category and product carousels. State is private to one component
// instance; advancing wraps modulo the slide count.
type Carousel struct {
	mu       sync.Mutex
	index    int
	count    int
	playing  bool
	stopped  bool
	interval time.Duration
	sched    Scheduler
	cancel   func()
}

// NewCarousel creates a carousel over count slides. When autoPlay is set and
// the interval is positive, the first advance is armed immediately.
func NewCarousel(count int, autoPlay bool, interval time.Duration, sched Scheduler) *Carousel {
	c := &Carousel{
		count:    count,
		interval: interval,
		sched:    sched,
	}
	if autoPlay && count > 0 && interval > 0 && sched != nil {
		c.playing = true
		c.arm()
	}
	return c
}

// Index returns the current slide index.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Playing reports whether autoplay is active.
func (c *Carousel) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// Next advances one slide, wrapping to the first after the last.
func (c *Carousel) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.advanceLocked()
}

// Prev steps back one slide, wrapping to the last before the first.
func (c *Carousel) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.count == 0 {
		return
	}
	c.index = (c.index - 1 + c.count) % c.count
}

// GoTo jumps to a specific slide. Out-of-range indexes are ignored.
func (c *Carousel) GoTo(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= c.count {
		return
	}
	c.index = index
}

// TogglePlay pauses or resumes autoplay without resetting the index.
func (c *Carousel) TogglePlay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped || c.interval <= 0 || c.count == 0 || c.sched == nil {
		return
	}
	c.playing = !c.playing
	if c.playing {
		c.armLocked()
	} else {
		c.cancelLocked()
	}
}

// Stop cancels any pending advance permanently. A stopped carousel never
// fires again; Stop is safe to call on every exit path.
func (c *Carousel) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	c.playing = false
	c.cancelLocked()
}

func (c *Carousel) arm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.armLocked()
}

func (c *Carousel) armLocked() {
	c.cancelLocked()
	c.cancel = c.sched.Schedule(c.interval, c.tick)
}

func (c *Carousel) cancelLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Carousel) tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped || !c.playing {
		return
	}
	c.advanceLocked()
	c.armLocked()
}

func (c *Carousel) advanceLocked() {
	if c.count == 0 {
		return
	}
	c.index = (c.index + 1) % c.count
}
