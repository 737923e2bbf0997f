package clock

import (
	"time"

	game_log "github.com/ingyamilmolinar/lightstrand/internal/log"
)

// DefaultTickMillis is the logical tick length: 60 ticks per second.
const DefaultTickMillis = 1000.0 / 60

type Mode int

const (
	// CatchUp runs every whole tick that has accumulated since the last call.
	CatchUp Mode = iota
	// SingleStep runs at most one tick per call and drops the backlog.
	SingleStep
)

func (m Mode) String() string {
	if m == SingleStep {
		return "single"
	}
	return "catchup"
}

// Scheduler is a fixed-timestep driver. Each Advance measures the wall time
// since the previous call, adds it to an accumulator and fires OnTick once
// per whole tick.
type Scheduler struct {
	TickMillis float64
	Mode       Mode
	OnTick     func()

	now     func() time.Time
	last    time.Time
	elapsed float64 // ms not yet converted into ticks
	ticks   int64
	logger  *game_log.Logger
}

func NewScheduler(onTick func(), logger *game_log.Logger) *Scheduler {
	return &Scheduler{
		TickMillis: DefaultTickMillis,
		OnTick:     onTick,
		now:        time.Now,
		logger:     logger.With("CLOCK"),
	}
}

// SetNowFunc overrides the time source. Tests use it to drive the clock.
func (s *Scheduler) SetNowFunc(f func() time.Time) {
	s.now = f
}

// Reset forgets the accumulated time; the next Advance re-anchors.
func (s *Scheduler) Reset() {
	s.last = time.Time{}
	s.elapsed = 0
}

// Advance applies the ticks owed since the last call and returns how many ran.
// The first call only anchors the clock.
func (s *Scheduler) Advance() int {
	if s.TickMillis <= 0 {
		return 0
	}
	now := s.now()
	if s.last.IsZero() {
		s.last = now
		return 0
	}
	delta := float64(now.Sub(s.last)) / float64(time.Millisecond)
	s.last = now
	if delta < 0 {
		delta = 0
	}
	s.elapsed += delta

	ran := 0
	switch s.Mode {
	case SingleStep:
		if s.elapsed >= s.TickMillis {
			s.fire()
			ran = 1
			s.elapsed = 0
		}
	default:
		for s.elapsed >= s.TickMillis {
			s.fire()
			s.elapsed -= s.TickMillis
			ran++
		}
	}
	if ran > 1 {
		s.logger.Debugf("Caught up %d ticks after %.2fms", ran, delta)
	}
	return ran
}

func (s *Scheduler) fire() {
	s.ticks++
	if s.OnTick != nil {
		s.OnTick()
	}
}

// Ticks is the number of ticks fired since construction.
func (s *Scheduler) Ticks() int64 { return s.ticks }
