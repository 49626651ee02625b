// Package animator owns the masking grid for one display session and keeps
// its dynamic layer refreshed on a fixed cadence.
package animator

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"pixelmask.klederson.com/internal/config"
	"pixelmask.klederson.com/internal/masking"
)

// State is the driver lifecycle state.
type State int

const (
	StateIdle    State = iota // no text, no timer
	StateActive               // text shown, timer armed
	StateStopped              // shut down, timer cancelled for good
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "ACTIVE"
	case StateStopped:
		return "STOPPED"
	default:
		return "IDLE"
	}
}

// Tick is one timer firing. Generation identifies the timer that produced
// it; ticks from a cancelled timer carry an old generation and are dropped.
type Tick struct {
	Generation uint64
	Time       time.Time
}

// Stats is a readout of the refresh loop.
type Stats struct {
	Ticks      uint64
	Dropped    uint64
	Generation uint64
	Interval   time.Duration // mean of recent tick intervals
}

// Rate returns ticks per second derived from the mean interval.
func (s Stats) Rate() float64 {
	if s.Interval <= 0 {
		return 0
	}
	return float64(time.Second) / float64(s.Interval)
}

// Driver is the single writer of a masking grid. Configure and HandleTick
// are meant to be called from one goroutine (the UI event loop); Snapshot
// and the other readers are safe from any goroutine.
type Driver struct {
	sched Scheduler
	post  func(Tick)
	log   *logrus.Entry

	mu        sync.RWMutex
	state     State
	text      string
	alg       masking.Algorithm
	grid      masking.Grid
	gen       uint64
	cancel    func()
	ticks     uint64
	dropped   uint64
	lastTick  time.Time
	intervals *IntervalRing
}

// New creates an idle driver. post delivers timer ticks back to the owner,
// which is expected to hand them to HandleTick on its own goroutine.
func New(sched Scheduler, post func(Tick), alg masking.Algorithm) *Driver {
	if alg == nil {
		alg = masking.Default()
	}
	return &Driver{
		sched:     sched,
		post:      post,
		log:       logrus.WithField("component", "animator"),
		alg:       alg,
		intervals: NewIntervalRing(config.TickHistorySize),
	}
}

// Configure applies a display text and algorithm. A change to either
// rebuilds both layers from scratch and re-arms the timer; re-applying the
// active text and algorithm is a no-op. Empty text clears the grid and
// leaves the driver idle.
func (d *Driver) Configure(text string, alg masking.Algorithm) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StateStopped {
		return
	}
	if alg == nil {
		alg = d.alg
	}
	if d.state == StateActive && text == d.text && alg.Name() == d.alg.Name() {
		return
	}

	d.disarm()
	d.text = text
	d.alg = alg
	d.intervals.Reset()
	d.lastTick = time.Time{}

	if text == "" {
		d.grid = masking.Grid{}
		d.state = StateIdle
		d.log.WithField("algorithm", alg.Name()).Debug("grid cleared")
		return
	}

	d.grid = alg.Generate(text)
	d.state = StateActive
	d.arm()

	size := d.grid.Size()
	d.log.WithFields(logrus.Fields{
		"algorithm":  alg.Name(),
		"width":      size.Width,
		"height":     size.Height,
		"generation": d.gen,
	}).Debug("grid generated")
}

// SetText changes the display text, keeping the current algorithm.
func (d *Driver) SetText(text string) {
	d.Configure(text, d.Algorithm())
}

// SetAlgorithm changes the algorithm, keeping the current text.
func (d *Driver) SetAlgorithm(alg masking.Algorithm) {
	d.Configure(d.Text(), alg)
}

// HandleTick refreshes the dynamic layer. It reports whether the tick was
// applied; ticks from a superseded timer or outside the active state are
// ignored.
func (d *Driver) HandleTick(t Tick) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != StateActive || t.Generation != d.gen {
		d.dropped++
		return false
	}

	dynamic := d.alg.UpdateDynamic(d.text, d.grid, t.Time)
	d.grid = d.grid.WithDynamic(dynamic)
	d.ticks++
	if !d.lastTick.IsZero() {
		d.intervals.Push(t.Time.Sub(d.lastTick))
	}
	d.lastTick = t.Time
	return true
}

// Stop cancels the timer and clears the grid. The driver ignores every
// later call.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StateStopped {
		return
	}
	d.disarm()
	d.grid = masking.Grid{}
	d.state = StateStopped
	d.log.Debug("driver stopped")
}

// Snapshot returns the current grid. Layers are replaced, never edited in
// place, so the returned value stays consistent after later ticks.
func (d *Driver) Snapshot() masking.Grid {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.grid
}

// State returns the lifecycle state.
func (d *Driver) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// Text returns the text currently shown.
func (d *Driver) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.text
}

// Algorithm returns the selected algorithm.
func (d *Driver) Algorithm() masking.Algorithm {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.alg
}

// Stats returns refresh counters.
func (d *Driver) Stats() Stats {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Stats{
		Ticks:      d.ticks,
		Dropped:    d.dropped,
		Generation: d.gen,
		Interval:   d.intervals.Mean(),
	}
}

// arm starts a new timer under a fresh generation. Callers hold d.mu and
// have already called disarm.
func (d *Driver) arm() {
	d.gen++
	gen := d.gen
	post := d.post
	d.cancel = d.sched.Every(config.TickInterval, func(now time.Time) {
		post(Tick{Generation: gen, Time: now})
	})
}

// disarm cancels the running timer, if any, and retires its generation.
func (d *Driver) disarm() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
		d.gen++
	}
}
