package draw

import "image/color"

// State is the draw state captured with every recorded call.
type State struct {
	Fill        color.Color
	Radial      bool
	StrokeColor color.Color
	StrokeWidth float64
	Blur        float64
}

// Call is one recorded drawing primitive.
type Call struct {
	Name  string // FillRect, FillPath, StrokePath, FillCircle, StrokeCircle
	Args  []float64
	Path  *Path
	State State
	Depth int // Save nesting at the time of the call
}

// Recorder is a Surface that remembers what was drawn instead of drawing it.
type Recorder struct {
	Calls []Call

	state    State
	stack    []State
	Saves    int
	Restores int
}

func NewRecorder() *Recorder {
	return &Recorder{state: State{Fill: color.Black, StrokeColor: color.Black, StrokeWidth: 1}}
}

func (r *Recorder) Save() {
	r.stack = append(r.stack, r.state)
	r.Saves++
}

func (r *Recorder) Restore() {
	r.Restores++
	if len(r.stack) == 0 {
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) SetFill(c color.Color) {
	r.state.Fill = c
	r.state.Radial = false
}

func (r *Recorder) SetRadialFill(cx, cy, rad float64, inner, outer color.Color) {
	r.state.Fill = inner
	r.state.Radial = true
}

func (r *Recorder) SetStroke(c color.Color, width float64) {
	r.state.StrokeColor = c
	r.state.StrokeWidth = width
}

func (r *Recorder) SetBlur(px float64) { r.state.Blur = px }

func (r *Recorder) record(name string, p *Path, args ...float64) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args, Path: p, State: r.state, Depth: len(r.stack)})
}

func (r *Recorder) FillRect(x, y, w, h float64) { r.record("FillRect", nil, x, y, w, h) }
func (r *Recorder) FillPath(p *Path) { r.record("FillPath", p) }
func (r *Recorder) StrokePath(p *Path) { r.record("StrokePath", p) }
func (r *Recorder) FillCircle(cx, cy, rad float64) { r.record("FillCircle", nil, cx, cy, rad) }
func (r *Recorder) StrokeCircle(cx, cy, rad float64) { r.record("StrokeCircle", nil, cx, cy, rad) }

// Named returns the recorded calls with the given name, in order.
func (r *Recorder) Named(name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops all recorded calls and state.
func (r *Recorder) Reset() {
	*r = *NewRecorder()
}
