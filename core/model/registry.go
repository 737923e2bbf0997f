package model

import (
	"github.com/go-gl/mathgl/mgl64"

	game_log "github.com/ingyamilmolinar/lightstrand/internal/log"
	"github.com/ingyamilmolinar/lightstrand/internal/utils"
)

const DefaultPickRadius = 10

// Registry owns the committed chain of lights and the preview chain. Slice
// order of the committed lights is the chain adjacency: light i hangs off
// light i-1.
type Registry struct {
	depth      DepthModel
	pickRadius float64
	viewW      float64
	viewH      float64

	lights  []Light
	index   map[LightID]int
	preview []Light
	next    LightID

	logger *game_log.Logger
}

func NewRegistry(depth DepthModel, pickRadius float64, logger *game_log.Logger) *Registry {
	if pickRadius <= 0 {
		pickRadius = DefaultPickRadius
	}
	return &Registry{
		depth:      depth,
		pickRadius: pickRadius,
		index:      map[LightID]int{},
		logger:     logger.With("LIGHTS"),
	}
}

// SetViewport records the size used for depth at creation time.
func (r *Registry) SetViewport(w, h float64) {
	r.viewW, r.viewH = w, h
	r.logger.Debugf("Viewport set to %.0fx%.0f", w, h)
}

func (r *Registry) Viewport() (w, h float64) { return r.viewW, r.viewH }

func (r *Registry) newLight(id LightID, x, y float64) Light {
	pos := mgl64.Vec2{x, y}
	depth := r.depth.Depth(pos, r.viewW, r.viewH)
	chain := 0.0
	if last, ok := r.last(); ok {
		chain = utils.Dist(last.Pos, pos)
	}
	return Light{
		ID:          id,
		Pos:         pos,
		Depth:       depth,
		Radius:      r.depth.Radius(depth),
		ChainLength: chain,
	}
}

func (r *Registry) last() (Light, bool) {
	if len(r.lights) == 0 {
		return Light{}, false
	}
	return r.lights[len(r.lights)-1], true
}

// Add commits a light at the end of the chain and returns its id.
func (r *Registry) Add(x, y float64) LightID {
	id := r.next
	r.next++
	l := r.newLight(id, x, y)
	r.index[id] = len(r.lights)
	r.lights = append(r.lights, l)
	r.logger.Debugf("Added light %d at (%.1f, %.1f) depth=%.2f chain=%.2f", id, x, y, l.Depth, l.ChainLength)
	return id
}

// AddPreview replaces the preview chain with one light hanging off the last
// committed light.
func (r *Registry) AddPreview(x, y float64) {
	r.preview = append(r.preview[:0], r.newLight(NoLight, x, y))
}

func (r *Registry) ClearPreview() {
	r.preview = r.preview[:0]
}

// FindNear returns the first light in chain order strictly within the picking
// radius of (x, y), or NoLight.
func (r *Registry) FindNear(x, y float64) LightID {
	p := mgl64.Vec2{x, y}
	for _, l := range r.lights {
		if utils.Dist(l.Pos, p) < r.pickRadius {
			return l.ID
		}
	}
	return NoLight
}

// MoveTo repositions a committed light. Depth, radius and rest lengths keep
// their creation-time values.
func (r *Registry) MoveTo(id LightID, x, y float64) {
	i, ok := r.index[id]
	if !ok {
		return
	}
	r.lights[i].Pos = mgl64.Vec2{x, y}
}

// SetHighlight marks id as highlighted. With exclusive set every other light
// is cleared first; id may be NoLight to clear everything.
func (r *Registry) SetHighlight(id LightID, exclusive bool) {
	if exclusive {
		for i := range r.lights {
			r.lights[i].Highlighted = false
		}
	}
	if i, ok := r.index[id]; ok {
		r.lights[i].Highlighted = true
	}
}

// AdvanceTick ages every committed and preview light by one tick.
func (r *Registry) AdvanceTick() {
	for i := range r.lights {
		r.lights[i].Life++
	}
	for i := range r.preview {
		r.preview[i].Life++
	}
}

// Snapshot returns copies of the committed chain (in chain order) and the
// preview chain.
func (r *Registry) Snapshot() (lights, preview []Light) {
	lights = append([]Light(nil), r.lights...)
	preview = append([]Light(nil), r.preview...)
	return lights, preview
}

func (r *Registry) Light(id LightID) (Light, bool) {
	i, ok := r.index[id]
	if !ok {
		return Light{}, false
	}
	return r.lights[i], true
}

func (r *Registry) Len() int { return len(r.lights) }
func (r *Registry) PreviewLen() int { return len(r.preview) }
