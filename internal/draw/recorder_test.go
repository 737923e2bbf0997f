package draw

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveRestoreScopesState(t *testing.T) {
	r := NewRecorder()
	r.SetFill(color.White)
	r.Save()
	r.SetFill(color.Black)
	r.SetBlur(4)
	r.FillCircle(1, 2, 3)
	r.Restore()
	r.FillRect(0, 0, 10, 10)

	require.Len(t, r.Calls, 2)
	assert.Equal(t, color.Black, r.Calls[0].State.Fill)
	assert.Equal(t, 4.0, r.Calls[0].State.Blur)
	assert.Equal(t, 1, r.Calls[0].Depth)
	assert.Equal(t, color.White, r.Calls[1].State.Fill)
	assert.Equal(t, 0.0, r.Calls[1].State.Blur)
	assert.Equal(t, 0, r.Calls[1].Depth)
}

func TestUnbalancedRestoreIsCounted(t *testing.T) {
	r := NewRecorder()
	r.Restore()
	assert.Equal(t, 1, r.Restores)
	assert.Equal(t, 0, r.Saves)
}

func TestRadialFillFlag(t *testing.T) {
	r := NewRecorder()
	r.SetRadialFill(0, 0, 5, color.White, color.Transparent)
	r.FillCircle(0, 0, 5)
	r.SetFill(color.White)
	r.FillCircle(0, 0, 5)
	calls := r.Named("FillCircle")
	require.Len(t, calls, 2)
	assert.True(t, calls[0].State.Radial)
	assert.False(t, calls[1].State.Radial)
}

func TestPathSegments(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.CubicTo(0, 5, 10, 5, 10, 0)
	p.LineTo(10, 1)
	p.Close()

	require.Len(t, p.Segs, 4)
	assert.Equal(t, "MCLZ", p.Segs[0].Op.String()+p.Segs[1].Op.String()+p.Segs[2].Op.String()+p.Segs[3].Op.String())
	assert.Equal(t, [2]float64{10, 0}, p.Segs[1].Pts[2])
}
