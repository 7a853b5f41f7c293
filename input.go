package canvasflow

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // pixels
)

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	dragging bool
}

// SetDragDeadZone sets the minimum movement in pixels before a press turns
// into a drag instead of a tap.
func (s *Scene) SetDragDeadZone(pixels float64) {
	s.dragDeadZone = pixels
}

// --- Input processing ---

// processInput is called from Scene.Update to handle all mouse and touch
// input. A queued synthetic event replaces real input for the frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	s.processMousePointer()
	s.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// activePointers returns how many pointers are currently down.
func (s *Scene) activePointers() int {
	n := 0
	for i := range s.pointers {
		if s.pointers[i].down {
			n++
		}
	}
	return n
}

// contactPoints returns the points of the current gesture: pointers already
// released since the gesture began, then every pointer still down.
func (s *Scene) contactPoints() []Vec2 {
	pts := append([]Vec2(nil), s.gestureTaps...)
	for i := range s.pointers {
		if s.pointers[i].down {
			pts = append(pts, Vec2{s.pointers[i].lastX, s.pointers[i].lastY})
		}
	}
	return pts
}

// processPointer runs the tap/drag state machine for a single pointer. The
// whole viewport is the drag surface; presses outside it are ignored.
func (s *Scene) processPointer(pointerID int, x, y float64, pressed bool) {
	ps := &s.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		if !s.Bounds().Contains(x, y) {
			return
		}
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.dragging = false

	case !pressed && ps.down:
		if ps.dragging && (x != ps.lastX || y != ps.lastY) {
			// Handlers only see drag progress through moves.
			s.Trigger(Event{
				Type: EventDragMove, X: x, Y: y,
				DraggedX: x - ps.startX, DraggedY: y - ps.startY,
				DeltaX: x - ps.lastX, DeltaY: y - ps.lastY,
				PointerID: pointerID,
			})
		}
		ps.lastX, ps.lastY = x, y
		if ps.dragging {
			s.Trigger(Event{
				Type: EventDragEnd, X: x, Y: y,
				DraggedX: x - ps.startX, DraggedY: y - ps.startY,
				PointerID: pointerID,
			})
		} else {
			// Every contact of the gesture takes part in the tap, so a
			// two-finger tap reports two points on both releases.
			s.Trigger(Event{
				Type: EventTap, X: x, Y: y,
				Taps:      s.contactPoints(),
				PointerID: pointerID,
			})
		}
		*ps = pointerState{}
		if s.activePointers() == 0 {
			s.gestureTaps = s.gestureTaps[:0]
		} else {
			s.gestureTaps = append(s.gestureTaps, Vec2{x, y})
		}

	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		if !ps.dragging {
			dx := x - ps.startX
			dy := y - ps.startY
			// A second contact turns the gesture into a multi-touch tap,
			// never a drag.
			if math.Sqrt(dx*dx+dy*dy) > s.dragDeadZone && s.activePointers() == 1 {
				ps.dragging = true
			}
		}
		if ps.dragging {
			s.Trigger(Event{
				Type: EventDragMove, X: x, Y: y,
				DraggedX: x - ps.startX, DraggedY: y - ps.startY,
				DeltaX: x - ps.lastX, DeltaY: y - ps.lastY,
				PointerID: pointerID,
			})
		}
		ps.lastX, ps.lastY = x, y
	}
}
