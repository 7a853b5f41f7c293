package canvasflow

// syntheticPointerEvent represents a single injected pointer event in
// viewport coordinates.
type syntheticPointerEvent struct {
	pointerID int
	x, y      float64
	pressed   bool
}

// InjectPress queues a mouse press at (x, y). The event is consumed on the
// next frame's processInput call.
func (s *Scene) InjectPress(x, y float64) {
	s.injectPointer(0, x, y, true)
}

// InjectMove queues a mouse move at (x, y) with the button held down. Use
// this between InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.injectPointer(0, x, y, true)
}

// InjectRelease queues a mouse release at (x, y).
func (s *Scene) InjectRelease(x, y float64) {
	s.injectPointer(0, x, y, false)
}

// InjectTap is a convenience that queues a press followed by a release
// at the same point. Consumes two frames.
func (s *Scene) InjectTap(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectTouch queues a press (pressed=true) or release of touch slot
// pointerID (1-9) at (x, y). Out of range slots are ignored.
func (s *Scene) InjectTouch(pointerID int, x, y float64, pressed bool) {
	if pointerID < 1 || pointerID >= maxPointers {
		return
	}
	s.injectPointer(pointerID, x, y, pressed)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.InjectMove(x, y)
	}
	s.InjectRelease(toX, toY)
}

// Pending returns the number of injected events not yet consumed.
func (s *Scene) Pending() int {
	return len(s.injectQueue)
}

func (s *Scene) injectPointer(pointerID int, x, y float64, pressed bool) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		pointerID: pointerID,
		x:         x, y: y,
		pressed: pressed,
	})
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (real input
// is skipped for the frame).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.processPointer(evt.pointerID, evt.x, evt.y, evt.pressed)
	return true
}
