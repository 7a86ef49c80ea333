package composition_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Rom943/ecommerce-template/internal/composition"
)

// fakeScheduler captures scheduled callbacks so tests can fire intervals
// deterministically.
type fakeScheduler struct {
	pending   func()
	cancelled int
}

func (s *fakeScheduler) Schedule(_ time.Duration, fn func()) func() {
	s.pending = fn
	return func() {
		s.cancelled++
		if s.pending != nil {
			s.pending = nil
		}
	}
}

// fire runs the pending callback, if any.
func (s *fakeScheduler) fire() {
	fn := s.pending
	s.pending = nil
	if fn != nil {
		fn()
	}
}

func TestCarouselAutoPlayAdvances(t *testing.T) {
	sched := &fakeScheduler{}
	c := composition.NewCarousel(3, true, time.Second, sched)
	defer c.Stop()

	require.True(t, c.Playing())
	require.Equal(t, 0, c.Index())

	sched.fire()
	require.Equal(t, 1, c.Index())
	sched.fire()
	require.Equal(t, 2, c.Index())
	sched.fire()
	require.Equal(t, 0, c.Index(), "advance wraps modulo the slide count")
	require.NotNil(t, sched.pending, "autoplay re-arms after every tick")
}

func TestCarouselTogglePausesAndResumes(t *testing.T) {
	sched := &fakeScheduler{}
	c := composition.NewCarousel(3, true, time.Second, sched)
	defer c.Stop()

	c.TogglePlay()
	require.False(t, c.Playing())

	// A timer that already fired while paused must not advance.
	sched.fire()
	require.Equal(t, 0, c.Index())

	c.TogglePlay()
	require.True(t, c.Playing())
	sched.fire()
	require.Equal(t, 1, c.Index())
}

func TestCarouselStopIsPermanent(t *testing.T) {
	sched := &fakeScheduler{}
	c := composition.NewCarousel(3, true, time.Second, sched)

	c.Stop()
	require.False(t, c.Playing())
	require.NotZero(t, sched.cancelled)

	sched.fire()
	require.Equal(t, 0, c.Index())

	c.TogglePlay()
	require.False(t, c.Playing(), "a stopped carousel never resumes")
}

func TestCarouselManualNavigation(t *testing.T) {
	c := composition.NewCarousel(4, false, 0, nil)

	require.False(t, c.Playing())

	c.Next()
	require.Equal(t, 1, c.Index())

	c.Prev()
	c.Prev()
	require.Equal(t, 3, c.Index(), "prev wraps to the last slide")

	c.GoTo(2)
	require.Equal(t, 2, c.Index())

	c.GoTo(99)
	require.Equal(t, 2, c.Index(), "out-of-range jumps are ignored")
	c.GoTo(-1)
	require.Equal(t, 2, c.Index())
}

func TestCarouselZeroSlides(t *testing.T) {
	sched := &fakeScheduler{}
	c := composition.NewCarousel(0, true, time.Second, sched)

	require.False(t, c.Playing(), "empty carousels never autoplay")
	require.Nil(t, sched.pending)

	c.Next()
	c.Prev()
	require.Equal(t, 0, c.Index())
}
