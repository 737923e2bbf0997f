package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/lightstrand/core/gesture"
)

var (
	cursorPosition       = ebiten.CursorPosition
	isMouseButtonPressed = ebiten.IsMouseButtonPressed
)

// SetInputForTest replaces input functions during tests and returns a function
// to restore the originals.
func SetInputForTest(
	cursor func() (int, int),
	mouse func(ebiten.MouseButton) bool,
) func() {
	oldCursor := cursorPosition
	oldMouse := isMouseButtonPressed
	cursorPosition = cursor
	isMouseButtonPressed = mouse
	return func() {
		cursorPosition = oldCursor
		isMouseButtonPressed = oldMouse
	}
}

// pointerEvents receives what pointerPoller detects each frame.
type pointerEvents interface {
	PointerDown(x, y float64, b gesture.Button)
	PointerMove(x, y float64)
	PointerUp(x, y float64, b gesture.Button)
}

// pointerPoller turns Ebitengine's polled mouse state into edge events.
type pointerPoller struct {
	leftPrev, rightPrev bool
	lastX, lastY        int
	seen                bool
}

// poll emits move, then presses, then releases, so a press always lands at
// the latest hover position.
func (p *pointerPoller) poll(dst pointerEvents) {
	x, y := cursorPosition()
	left := isMouseButtonPressed(ebiten.MouseButtonLeft)
	right := isMouseButtonPressed(ebiten.MouseButtonRight)
	fx, fy := float64(x), float64(y)

	if !p.seen || x != p.lastX || y != p.lastY {
		dst.PointerMove(fx, fy)
		p.lastX, p.lastY, p.seen = x, y, true
	}
	if left && !p.leftPrev {
		dst.PointerDown(fx, fy, gesture.Primary)
	}
	if right && !p.rightPrev {
		dst.PointerDown(fx, fy, gesture.Secondary)
	}
	if !left && p.leftPrev {
		dst.PointerUp(fx, fy, gesture.Primary)
	}
	if !right && p.rightPrev {
		dst.PointerUp(fx, fy, gesture.Secondary)
	}
	p.leftPrev, p.rightPrev = left, right
}
