package canvasflow

import "testing"

// eventLog records scene events by type.
type eventLog struct {
	events []Event
}

func recordEvents(s *Scene) *eventLog {
	l := &eventLog{}
	for _, et := range []EventType{EventTap, EventDragMove, EventDragEnd} {
		s.Bind(et, func(e Event) { l.events = append(l.events, e) })
	}
	return l
}

func (l *eventLog) types() []EventType {
	out := make([]EventType, len(l.events))
	for i, e := range l.events {
		out[i] = e.Type
	}
	return out
}

func TestProcessPointerTap(t *testing.T) {
	s := NewScene(800, 400)
	log := recordEvents(s)

	s.processPointer(0, 100, 100, true)
	s.processPointer(0, 102, 101, true) // inside the dead zone
	s.processPointer(0, 102, 101, false)

	if len(log.events) != 1 || log.events[0].Type != EventTap {
		t.Fatalf("events = %v, want one tap", log.types())
	}
	taps := log.events[0].Taps
	if len(taps) != 1 || taps[0] != (Vec2{102, 101}) {
		t.Errorf("Taps = %v, want [{102 101}]", taps)
	}
}

func TestProcessPointerDrag(t *testing.T) {
	s := NewScene(800, 400)
	log := recordEvents(s)

	s.processPointer(0, 300, 100, true)
	s.processPointer(0, 290, 100, true)
	s.processPointer(0, 250, 105, true)
	s.processPointer(0, 250, 105, true) // no movement, no event
	s.processPointer(0, 240, 105, false)

	// The release position arrives as a final move before the end.
	want := []EventType{EventDragMove, EventDragMove, EventDragMove, EventDragEnd}
	got := log.types()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v, want %v", got, want)
		}
	}
	second := log.events[1]
	if second.DraggedX != -50 || second.DeltaX != -40 {
		t.Errorf("DraggedX/DeltaX = %v/%v, want -50/-40", second.DraggedX, second.DeltaX)
	}
	if last := log.events[2]; last.DraggedX != -60 || last.DeltaX != -10 {
		t.Errorf("release move DraggedX/DeltaX = %v/%v, want -60/-10", last.DraggedX, last.DeltaX)
	}
	if end := log.events[3]; end.DraggedX != -60 {
		t.Errorf("drag end DraggedX = %v, want -60", end.DraggedX)
	}
}

func TestProcessPointerDragReleaseInPlace(t *testing.T) {
	s := NewScene(800, 400)
	log := recordEvents(s)

	s.processPointer(0, 300, 100, true)
	s.processPointer(0, 250, 100, true)
	s.processPointer(0, 250, 100, false)

	want := []EventType{EventDragMove, EventDragEnd}
	got := log.types()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("events = %v, want %v", got, want)
	}
}

func TestProcessPointerDeadZone(t *testing.T) {
	s := NewScene(800, 400)
	s.SetDragDeadZone(20)
	log := recordEvents(s)

	s.processPointer(0, 100, 100, true)
	s.processPointer(0, 115, 100, true)
	s.processPointer(0, 115, 100, false)
	if got := log.types(); len(got) != 1 || got[0] != EventTap {
		t.Errorf("events = %v, want one tap", got)
	}
}

func TestProcessPointerOutsideBounds(t *testing.T) {
	s := NewScene(800, 400)
	log := recordEvents(s)

	s.processPointer(0, -10, 100, true)
	s.processPointer(0, 50, 100, true)
	s.processPointer(0, 50, 100, false)
	if len(log.events) != 0 {
		t.Errorf("events = %v, want none for a press outside the viewport", log.types())
	}
}

func TestProcessPointerMultiTouchTap(t *testing.T) {
	s := NewScene(800, 400)
	log := recordEvents(s)

	s.processPointer(1, 400, 100, true)
	s.processPointer(2, 500, 100, true)
	s.processPointer(1, 400, 100, false)
	s.processPointer(2, 500, 100, false)

	if len(log.events) != 2 {
		t.Fatalf("events = %v, want two taps", log.types())
	}
	for i, e := range log.events {
		if e.Type != EventTap || len(e.Taps) != 2 {
			t.Errorf("event %d = %v with %d taps, want a tap with 2", i, e.Type, len(e.Taps))
		}
	}
	if len(s.gestureTaps) != 0 {
		t.Errorf("gestureTaps = %v, want empty once every contact is up", s.gestureTaps)
	}

	// The next single tap stands alone.
	s.processPointer(1, 300, 100, true)
	s.processPointer(1, 300, 100, false)
	if last := log.events[len(log.events)-1]; len(last.Taps) != 1 {
		t.Errorf("Taps = %v, want a single contact", last.Taps)
	}
}

func TestProcessPointerNoDragWithTwoContacts(t *testing.T) {
	s := NewScene(800, 400)
	log := recordEvents(s)

	s.processPointer(1, 400, 100, true)
	s.processPointer(2, 500, 100, true)
	s.processPointer(1, 300, 100, true)
	for _, e := range log.events {
		if e.Type == EventDragMove {
			t.Fatal("two contacts should never start a drag")
		}
	}
}

func TestSceneInputDrivesEngine(t *testing.T) {
	clicked := -1
	s, e := newSceneEngine(t, func(c *Config) {
		c.Click = func(i int) { clicked = i }
	})

	// Centered item: click.
	s.InjectTap(400, 100)
	for s.Pending() > 0 {
		s.processInput()
	}
	if clicked != 2 {
		t.Fatalf("clicked = %d, want 2", clicked)
	}

	// Drag left by one box: the right neighbour becomes current.
	s.InjectDrag(600, 100, 400, 100, 6)
	for s.Pending() > 0 {
		s.processInput()
	}
	if e.CurrentIndex() != 3 {
		t.Fatalf("CurrentIndex after drag = %d, want 3", e.CurrentIndex())
	}
	settle(t, e, 20)
	if d := distanceOf(e, 3); d != 0 {
		t.Errorf("distance = %v, want 0", d)
	}
}

func TestSceneMultiTouchTapIgnored(t *testing.T) {
	clicks := 0
	s, e := newSceneEngine(t, func(c *Config) {
		c.Click = func(int) { clicks++ }
	})
	s.InjectTouch(1, 400, 100, true)
	s.InjectTouch(2, 720, 100, true)
	s.InjectTouch(1, 400, 100, false)
	s.InjectTouch(2, 720, 100, false)
	for s.Pending() > 0 {
		s.processInput()
	}
	if clicks != 0 || e.State() != Idle {
		t.Errorf("clicks = %d, state = %v, want 0 and idle", clicks, e.State())
	}
}
