package render

import (
	"io"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingyamilmolinar/lightstrand/core/model"
	"github.com/ingyamilmolinar/lightstrand/internal/draw"
	game_log "github.com/ingyamilmolinar/lightstrand/internal/log"
)

func TestDampening(t *testing.T) {
	assert.Equal(t, 1.0, Dampening(0, 2), "fresh light must not divide by zero")
	assert.Equal(t, 1.0, Dampening(1, 2))
	assert.Equal(t, 1.0, Dampening(2, 2))
	assert.Equal(t, 0.5, Dampening(4, 2))
	assert.Equal(t, 0.02, Dampening(100, 2))
}

func TestSag(t *testing.T) {
	c := DefaultCurveRenderer()
	assert.Equal(t, 5.0+10.0, c.Sag(5, 0))

	want := 7 + math.Abs(math.Cos(10.0/5))*10*0.2
	assert.InDelta(t, want, c.Sag(7, 10), 1e-12)

	for life := 0; life < 500; life++ {
		s := c.Sag(3, life)
		require.False(t, math.IsNaN(s) || math.IsInf(s, 0), "life=%d", life)
		require.GreaterOrEqual(t, s, 3.0)
	}
}

func TestStringPathShape(t *testing.T) {
	c := DefaultCurveRenderer()
	p := c.StringPath(mgl64.Vec2{0, 0}, mgl64.Vec2{30, 10}, 20)

	require.Len(t, p.Segs, 5)
	ops := ""
	for _, s := range p.Segs {
		ops += s.Op.String()
	}
	assert.Equal(t, "MCLCZ", ops)
	assert.Equal(t, [][2]float64{{0, 20}, {30, 30}, {30, 10}}, p.Segs[1].Pts)
	assert.Equal(t, [2]float64{30, 11.5}, p.Segs[2].Pts[0])
	assert.Equal(t, [][2]float64{{30, 31.5}, {0, 21.5}, {0, 1.5}}, p.Segs[3].Pts)
}

func chain(t *testing.T, pts ...[2]float64) *model.Registry {
	t.Helper()
	r := model.NewRegistry(model.DefaultDepthModel(), model.DefaultPickRadius, game_log.New(io.Discard, game_log.LevelNone))
	r.SetViewport(800, 600)
	for _, p := range pts {
		r.Add(p[0], p[1])
	}
	return r
}

func TestDrawChainOrderAndScoping(t *testing.T) {
	r := chain(t, [2]float64{100, 100}, [2]float64{200, 100}, [2]float64{300, 150})
	lights, _ := r.Snapshot()

	rec := draw.NewRecorder()
	DefaultCurveRenderer().DrawChain(rec, lights)

	var names []string
	for _, c := range rec.Calls {
		names = append(names, c.Name)
		assert.Equal(t, 1, c.Depth, "%s outside save/restore", c.Name)
	}
	assert.Equal(t, []string{"FillCircle", "FillPath", "FillCircle", "FillPath", "FillCircle"}, names)
	assert.Equal(t, rec.Saves, rec.Restores)

	// the first string's sag is the second light's rest length plus full swing
	first := rec.Named("FillPath")[0].Path
	assert.Equal(t, 100.0+100.0+10.0, first.Segs[1].Pts[0][1])
}

func TestDrawChainUsesPrevLife(t *testing.T) {
	r := chain(t, [2]float64{0, 0}, [2]float64{3, 4})
	for i := 0; i < 10; i++ {
		r.AdvanceTick()
	}
	lights, _ := r.Snapshot()
	rec := draw.NewRecorder()
	c := DefaultCurveRenderer()
	c.DrawChain(rec, lights)

	p := rec.Named("FillPath")[0].Path
	assert.InDelta(t, c.Sag(5, 10), p.Segs[1].Pts[0][1], 1e-12)
}

func TestHighlightOutline(t *testing.T) {
	r := chain(t, [2]float64{100, 100}, [2]float64{200, 100})
	r.SetHighlight(1, true)
	lights, _ := r.Snapshot()

	rec := draw.NewRecorder()
	DefaultCurveRenderer().DrawChain(rec, lights)

	strokes := rec.Named("StrokeCircle")
	require.Len(t, strokes, 1)
	assert.Equal(t, 200.0, strokes[0].Args[0])
	assert.Equal(t, colHighlight, strokes[0].State.StrokeColor)
}

func TestGradientGlyphBlurByDepth(t *testing.T) {
	r := chain(t, [2]float64{400, 450}, [2]float64{0, 0})
	lights, _ := r.Snapshot()

	c := DefaultCurveRenderer()
	c.Style = GlyphGradient
	rec := draw.NewRecorder()
	c.DrawChain(rec, lights)

	circles := rec.Named("FillCircle")
	require.Len(t, circles, 2)
	assert.True(t, circles[0].State.Radial)
	assert.Equal(t, 0.0, circles[0].State.Blur, "focal light is sharp")
	assert.Equal(t, 5*1.5, circles[1].State.Blur, "corner light at depth 0")
	assert.Equal(t, 50.0, circles[1].Args[2])
}

func TestFlatGlyphHasNoBlur(t *testing.T) {
	r := chain(t, [2]float64{0, 0})
	lights, _ := r.Snapshot()
	rec := draw.NewRecorder()
	DefaultCurveRenderer().DrawChain(rec, lights)
	c := rec.Named("FillCircle")[0]
	assert.False(t, c.State.Radial)
	assert.Equal(t, 0.0, c.State.Blur)
}

func TestDrawPreview(t *testing.T) {
	r := chain(t, [2]float64{0, 0})
	r.AddPreview(3, 4)
	for i := 0; i < 7; i++ {
		r.AdvanceTick()
	}
	lights, preview := r.Snapshot()
	preview[0].Highlighted = true

	c := DefaultCurveRenderer()
	c.Style = GlyphGradient
	rec := draw.NewRecorder()
	c.DrawPreview(rec, &lights[0], preview)

	paths := rec.Named("FillPath")
	require.Len(t, paths, 1)
	assert.Equal(t, colPreviewString, paths[0].State.Fill)
	assert.Equal(t, 5.0+10.0, paths[0].Path.Segs[1].Pts[0][1], "preview never settles")

	circles := rec.Named("FillCircle")
	require.Len(t, circles, 1)
	assert.Equal(t, colPreviewGlyph, circles[0].State.Fill)
	assert.False(t, circles[0].State.Radial)
	assert.Empty(t, rec.Named("StrokeCircle"))
}

func TestDrawPreviewWithoutChain(t *testing.T) {
	r := chain(t)
	r.AddPreview(10, 10)
	_, preview := r.Snapshot()
	rec := draw.NewRecorder()
	DefaultCurveRenderer().DrawPreview(rec, nil, preview)
	assert.Empty(t, rec.Named("FillPath"))
	assert.Len(t, rec.Named("FillCircle"), 1)
}
