package engine

import (
	"context"
	"time"

	game_log "github.com/ingyamilmolinar/lightstrand/internal/log"
)

// DefaultInterval approximates a 60 Hz host callback.
const DefaultInterval = 16 * time.Millisecond

// Engine calls a frame function on a ticker when no window host is present.
// Frames run on the goroutine that called Run, so the scene stays
// single-threaded.
type Engine struct {
	Interval time.Duration
	frame    func()
	frames   int64
	logger   *game_log.Logger

	// newTicker is swapped in tests.
	newTicker func(time.Duration) (<-chan time.Time, func())
}

func New(frame func(), logger *game_log.Logger) *Engine {
	return &Engine{
		Interval:  DefaultInterval,
		frame:     frame,
		logger:    logger.With("ENGINE"),
		newTicker: realTicker,
	}
}

func realTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Run blocks, calling frame on every tick until ctx is done.
func (e *Engine) Run(ctx context.Context) error {
	interval := e.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	c, stop := e.newTicker(interval)
	defer stop()
	e.logger.Infof("Running headless every %s", interval)
	for {
		select {
		case <-c:
			e.frame()
			e.frames++
		case <-ctx.Done():
			e.logger.Infof("Stopped after %d frames", e.frames)
			return ctx.Err()
		}
	}
}

// Frames is the number of frame calls made so far.
func (e *Engine) Frames() int64 { return e.frames }
