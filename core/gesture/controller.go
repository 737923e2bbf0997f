// Package gesture turns pointer events into light registry mutations.
package gesture

import (
	"fmt"

	"github.com/ingyamilmolinar/lightstrand/core/model"
	game_log "github.com/ingyamilmolinar/lightstrand/internal/log"
)

type Button int

const (
	Primary Button = iota
	Secondary
)

type State int

const (
	Idle State = iota
	Previewing
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Previewing:
		return "previewing"
	case Dragging:
		return "dragging"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Lights is the slice of the registry the controller mutates.
type Lights interface {
	Add(x, y float64) model.LightID
	AddPreview(x, y float64)
	ClearPreview()
	FindNear(x, y float64) model.LightID
	MoveTo(id model.LightID, x, y float64)
	SetHighlight(id model.LightID, exclusive bool)
}

// Controller is the Idle / Previewing / Dragging(id) state machine.
type Controller struct {
	lights Lights
	state  State
	target model.LightID // valid while Dragging
	logger *game_log.Logger
}

func NewController(lights Lights, logger *game_log.Logger) *Controller {
	return &Controller{
		lights: lights,
		target: model.NoLight,
		logger: logger.With("GESTURE"),
	}
}

func (c *Controller) State() State { return c.state }

// Target is the light being dragged, or NoLight.
func (c *Controller) Target() model.LightID { return c.target }

func (c *Controller) PointerDown(x, y float64, b Button) {
	if c.state != Idle {
		return
	}
	if b != Primary {
		c.logger.Debugf("Ignoring secondary press at (%.1f, %.1f)", x, y)
		return
	}
	c.lights.ClearPreview()
	if id := c.lights.FindNear(x, y); id != model.NoLight {
		c.state, c.target = Dragging, id
		c.logger.Debugf("Start drag of light %d at (%.1f, %.1f)", id, x, y)
		return
	}
	c.state = Previewing
	c.logger.Debugf("Start preview at (%.1f, %.1f)", x, y)
}

func (c *Controller) PointerMove(x, y float64) {
	switch c.state {
	case Previewing:
		c.lights.ClearPreview()
		c.lights.AddPreview(x, y)
	case Dragging:
		c.lights.MoveTo(c.target, x, y)
	}
	c.lights.SetHighlight(c.lights.FindNear(x, y), true)
}

func (c *Controller) PointerUp(x, y float64, b Button) {
	if b != Primary {
		return
	}
	switch c.state {
	case Previewing:
		id := c.lights.Add(x, y)
		c.lights.ClearPreview()
		c.logger.Infof("Committed light %d at (%.1f, %.1f)", id, x, y)
	case Dragging:
		c.logger.Debugf("End drag of light %d at (%.1f, %.1f)", c.target, x, y)
	default:
		return
	}
	c.state, c.target = Idle, model.NoLight
}
