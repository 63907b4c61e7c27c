package usecase

import (
	"sync"
	"time"
)

const (
	// AutoAdvanceInterval is the cadence of the plain auto-advancing
	// carousel.
	AutoAdvanceInterval = 4 * time.Second
	// ProgressTick is the cadence of the progress-bar variant, which
	// advances once progress reaches ProgressFull.
	ProgressTick = 50 * time.Millisecond
	ProgressFull = 100
)

// Carousel tracks which of n banners is the active slide. Navigation
// wraps modulo the banner count; with one banner or none the auto timer
// never runs. Session-scoped, for API consumers rendering the banner
// list from BannerUseCase; it is not part of the HTTP wiring.
type Carousel struct {
	mu       sync.Mutex
	count    int
	index    int
	progress int

	stop     chan struct{}
	stopOnce sync.Once
}

func NewCarousel(count int) *Carousel {
	return &Carousel{
		count: count,
		stop:  make(chan struct{}),
	}
}

func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

func (c *Carousel) Progress() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progress
}

// Next moves to the following slide, wrapping to the first after the
// last. Manual navigation resets the progress bar.
func (c *Carousel) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.advanceLocked()
}

func (c *Carousel) Prev() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.count == 0 {
		return 0
	}
	c.index = (c.index - 1 + c.count) % c.count
	c.progress = 0
	return c.index
}

// Select jumps straight to an indicator's slide.
func (c *Carousel) Select(i int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.count == 0 {
		return 0
	}
	c.index = ((i % c.count) + c.count) % c.count
	c.progress = 0
	return c.index
}

// StartAuto advances the carousel on a fixed cadence until Stop. A no-op
// with fewer than two slides.
func (c *Carousel) StartAuto(interval time.Duration) {
	if c.count <= 1 {
		return
	}
	if interval <= 0 {
		interval = AutoAdvanceInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.Next()
			case <-c.stop:
				return
			}
		}
	}()
}

// StartProgress runs the progress-bar variant: the progress value climbs
// on every tick and the slide advances when it fills.
func (c *Carousel) StartProgress() {
	if c.count <= 1 {
		return
	}

	go func() {
		ticker := time.NewTicker(ProgressTick)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.tickProgress()
			case <-c.stop:
				return
			}
		}
	}()
}

// Stop tears the auto timer down. Safe to call more than once.
func (c *Carousel) Stop() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
}

func (c *Carousel) tickProgress() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.progress++
	if c.progress >= ProgressFull {
		c.advanceLocked()
	}
	return c.progress
}

func (c *Carousel) advanceLocked() int {
	if c.count == 0 {
		return 0
	}
	c.index = (c.index + 1) % c.count
	c.progress = 0
	return c.index
}
