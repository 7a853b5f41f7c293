package canvasflow

import (
	"image"
	"testing"
)

// newSceneEngine builds the standard five-item engine on a real Scene.
func newSceneEngine(t *testing.T, modify func(*Config)) (*Scene, *Engine) {
	t.Helper()
	cfg := testConfig()
	if modify != nil {
		modify(&cfg)
	}
	s := NewScene(cfg.Width, cfg.Height)
	e, err := New(cfg, s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, e
}

func TestNewScene(t *testing.T) {
	s := NewScene(640, 480)
	w, h := s.Size()
	if w != 640 || h != 480 {
		t.Errorf("Size = %vx%v, want 640x480", w, h)
	}
	if b := s.Bounds(); b != (Rect{Width: 640, Height: 480}) {
		t.Errorf("Bounds = %+v", b)
	}
	if s.reflectAlpha != DefaultReflectionAlpha {
		t.Errorf("reflectAlpha = %v, want %v", s.reflectAlpha, DefaultReflectionAlpha)
	}
	if s.dragDeadZone != defaultDragDeadZone {
		t.Errorf("dragDeadZone = %v, want %v", s.dragDeadZone, defaultDragDeadZone)
	}
}

func TestSceneNewShapeNames(t *testing.T) {
	s, _ := newSceneEngine(t, nil)
	for i, sp := range s.Sprites() {
		want := "item" + string(rune('0'+i))
		if sp.Name != want {
			t.Errorf("sprite %d Name = %q, want %q", i, sp.Name, want)
		}
	}
}

func TestSceneReflectionAlphaFromConfig(t *testing.T) {
	s, _ := newSceneEngine(t, func(c *Config) { c.ReflectionAlpha = 0.5 })
	for _, sp := range s.Sprites() {
		if sp.reflectAlpha != 0.5 {
			t.Fatalf("%s reflectAlpha = %v, want 0.5", sp.Name, sp.reflectAlpha)
		}
	}
	s, _ = newSceneEngine(t, func(c *Config) { c.ReflectionAlpha = -1 })
	if a := s.Sprites()[0].reflectAlpha; a != 0 {
		t.Errorf("reflectAlpha = %v, want 0 when disabled", a)
	}
}

func TestSceneRetryAfterFailedNew(t *testing.T) {
	cfg := testConfig()
	cfg.Images[3] = nil
	s := NewScene(cfg.Width, cfg.Height)
	if _, err := New(cfg, s); err == nil {
		t.Fatal("expected an error for a nil image")
	}
	if n := len(s.Sprites()); n != 0 {
		t.Fatalf("sprites = %d after a failed New, want 0", n)
	}
	if _, err := New(testConfig(), s); err != nil {
		t.Fatal(err)
	}
	if n := len(s.Sprites()); n != 5 {
		t.Errorf("sprites = %d after retry, want 5", n)
	}
}

func TestSceneAddRejectsForeignShapes(t *testing.T) {
	s := NewScene(100, 100)
	defer func() {
		if recover() == nil {
			t.Error("expected panic adding a shape not created by NewShape")
		}
	}()
	s.Add(&fakeShape{})
}

func TestSceneAddIgnoresDuplicates(t *testing.T) {
	s := NewScene(100, 100)
	sh := s.NewShape(image.NewNRGBA(image.Rect(0, 0, 10, 10)), 10, 10)
	s.Add(sh)
	s.Add(sh)
	if n := len(s.Sprites()); n != 1 {
		t.Errorf("sprites = %d, want 1", n)
	}
}

func TestSceneReorderStable(t *testing.T) {
	s := NewScene(100, 100)
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	zs := []int{2, 0, 2, 1, 0}
	for _, z := range zs {
		sh := s.NewShape(img, 10, 10)
		sh.SetZ(z)
		s.Add(sh)
	}
	s.Reorder()
	order := s.DrawOrder()
	want := []string{"item1", "item4", "item3", "item0", "item2"}
	for i, sp := range order {
		if sp.Name != want[i] {
			t.Fatalf("draw order = %v, want %v", names(order), want)
		}
	}
	// Draw order follows the engine's depth ranks.
	sc, e := newSceneEngine(t, nil)
	top := sc.DrawOrder()[len(sc.DrawOrder())-1]
	if top != sc.Sprites()[e.CurrentIndex()] {
		t.Errorf("top sprite = %s, want the current item", top.Name)
	}
}

func names(sprites []*Sprite) []string {
	out := make([]string, len(sprites))
	for i, sp := range sprites {
		out[i] = sp.Name
	}
	return out
}

func TestSceneDrawCountsFrames(t *testing.T) {
	s, e := newSceneEngine(t, nil)
	if s.Frames() != 1 {
		t.Fatalf("Frames = %d, want 1 after construction", s.Frames())
	}
	e.MoveX(-5)
	if s.Frames() != 2 {
		t.Errorf("Frames = %d, want 2", s.Frames())
	}
}

func TestSceneBindAndRemove(t *testing.T) {
	s := NewScene(100, 100)
	calls := 0
	h := s.Bind(EventTap, func(Event) { calls++ })
	other := s.Bind(EventTap, func(Event) { calls += 10 })
	s.Trigger(Event{Type: EventTap})
	if calls != 11 {
		t.Fatalf("calls = %d, want 11", calls)
	}
	h.Remove()
	s.Trigger(Event{Type: EventTap})
	if calls != 21 {
		t.Errorf("calls = %d, want 21", calls)
	}
	other.Remove()
	s.Trigger(Event{Type: EventTap})
	s.Trigger(Event{Type: EventDragEnd})
	if calls != 21 {
		t.Errorf("calls = %d, want 21 after removing every handler", calls)
	}
	CallbackHandle{}.Remove() // zero handle is a no-op
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene(100, 100)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)
	if !s.debug || !globalDebug {
		t.Error("debug should be enabled")
	}
	s.SetDebugMode(false)
	if s.debug || globalDebug {
		t.Error("debug should be disabled")
	}
}
