package canvasflow

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the retained stage a coverflow is drawn on. It owns the sprites,
// their draw order, the drag surface covering the viewport and the event
// bindings fed by pointer input.
type Scene struct {
	width, height float64

	// ClearColor fills the viewport before sprites are drawn.
	ClearColor color.Color

	reflectAlpha float64 // reflection opacity of new sprites

	sprites   []*Sprite // insertion order
	drawOrder []*Sprite // Z-sorted, stable
	sorted    bool
	frames    uint64 // Draw calls since creation
	composed  uint64 // frames already composed by DrawTo

	handlers handlerRegistry
	debug    bool

	// Input state
	pointers     [maxPointers]pointerState
	dragDeadZone float64
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	gestureTaps  []Vec2 // released contacts of a multi-touch gesture
	injectQueue  []syntheticPointerEvent

	testRunner *TestRunner

	// SnapshotDir is where queued snapshots are written.
	SnapshotDir string
	// SnapshotFormat is "png" or "webp".
	SnapshotFormat string
	snapshotQueue  []string
}

// NewScene creates a scene with a width x height viewport.
func NewScene(width, height float64) *Scene {
	return &Scene{
		width:          width,
		height:         height,
		ClearColor:     color.Black,
		reflectAlpha:   DefaultReflectionAlpha,
		sorted:         true,
		dragDeadZone:   defaultDragDeadZone,
		SnapshotDir:    "snapshots",
		SnapshotFormat: "png",
	}
}

// Size returns the viewport size.
func (s *Scene) Size() (width, height float64) {
	return s.width, s.height
}

// Bounds returns the viewport rectangle, which is also the drag surface.
func (s *Scene) Bounds() Rect {
	return Rect{Width: s.width, Height: s.height}
}

// NewShape implements Stage.
func (s *Scene) NewShape(img image.Image, boxWidth, boxHeight float64) Shape {
	return newSprite(fmt.Sprintf("item%d", len(s.sprites)), img, boxWidth, boxHeight, s.reflectAlpha)
}

// SetReflectionAlpha sets the reflection opacity of sprites created after
// the call. Zero disables reflections. New applies Config.ReflectionAlpha
// through it.
func (s *Scene) SetReflectionAlpha(alpha float64) {
	s.reflectAlpha = alpha
}

// Add implements Stage. Only shapes created by NewShape can be added.
func (s *Scene) Add(shape Shape) {
	sp, ok := shape.(*Sprite)
	if !ok || sp == nil {
		panic("canvasflow: Scene.Add requires a *Sprite from NewShape")
	}
	for _, existing := range s.sprites {
		if existing == sp {
			return
		}
	}
	s.sprites = append(s.sprites, sp)
	s.sorted = false
}

// Sprites returns the sprites in insertion order. The returned slice MUST NOT
// be mutated.
func (s *Scene) Sprites() []*Sprite {
	return s.sprites
}

// DrawOrder returns the sprites in draw order, bottom first. The returned
// slice MUST NOT be mutated.
func (s *Scene) DrawOrder() []*Sprite {
	if !s.sorted {
		s.Reorder()
	}
	return s.drawOrder
}

// Reorder implements Stage. Uses insertion sort: zero allocations, stable,
// and O(n) for the nearly sorted order a carousel produces between frames.
func (s *Scene) Reorder() {
	n := len(s.sprites)
	if cap(s.drawOrder) < n {
		s.drawOrder = make([]*Sprite, n)
	}
	s.drawOrder = s.drawOrder[:n]
	copy(s.drawOrder, s.sprites)
	for i := 1; i < n; i++ {
		key := s.drawOrder[i]
		j := i - 1
		for j >= 0 && s.drawOrder[j].z > key.z {
			s.drawOrder[j+1] = s.drawOrder[j]
			j--
		}
		s.drawOrder[j+1] = key
	}
	s.sorted = true
}

// Draw implements Stage. Composition happens on the next DrawTo or Compose.
func (s *Scene) Draw() {
	s.frames++
}

// Frames returns the number of Draw calls made on the scene.
func (s *Scene) Frames() uint64 {
	return s.frames
}

// Bind implements Stage.
func (s *Scene) Bind(event EventType, fn func(Event)) CallbackHandle {
	return s.handlers.bind(event, fn)
}

// Trigger implements Stage.
func (s *Scene) Trigger(e Event) {
	if s.debug {
		debugf("scene: %s at (%.1f, %.1f)", e.Type, e.X, e.Y)
	}
	s.handlers.trigger(e)
}

// SetDebugMode enables or disables debug logging of scene events, settle
// transitions and frame composition.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	SetDebugMode(enabled)
}

// Update processes pointer input and advances an attached test runner.
// Call it once per frame before ticking the engine.
func (s *Scene) Update() {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
}

// DrawTo composites the scene onto screen in draw order and then writes any
// queued snapshots.
func (s *Scene) DrawTo(screen *ebiten.Image) {
	if s.ClearColor != nil {
		screen.Fill(s.ClearColor)
	}
	for _, sp := range s.DrawOrder() {
		if sp.visible {
			sp.drawTo(screen)
		}
	}
	if s.debug && s.composed != s.frames {
		debugf("scene: composed frame %d (%d sprites)", s.frames, len(s.sprites))
	}
	s.composed = s.frames
	s.flushSnapshots()
}

// Dispose releases every sprite's GPU images.
func (s *Scene) Dispose() {
	for _, sp := range s.sprites {
		sp.dispose()
	}
}
