package canvasflow

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// fakeShape records what the engine pushes into it. Hit testing uses the
// untransformed layout box.
type fakeShape struct {
	x, y        float64
	boxW, boxH  float64
	scale, tilt float64
	z           int
	hidden      bool
	redraws     int
}

func (s *fakeShape) SetPosition(x, y float64)         { s.x, s.y = x, y }
func (s *fakeShape) SetTransform(scale, tilt float64) { s.scale, s.tilt = scale, tilt }
func (s *fakeShape) SetZ(z int)                       { s.z = z }
func (s *fakeShape) Z() int                           { return s.z }
func (s *fakeShape) Visible() bool                    { return !s.hidden }
func (s *fakeShape) Redraw()                          { s.redraws++ }

func (s *fakeShape) ContainsPoint(x, y float64) bool {
	return x >= s.x && x <= s.x+s.boxW && y >= s.y && y <= s.y+s.boxH
}

// fakeStage is an in-memory Stage.
type fakeStage struct {
	shapes   []*fakeShape
	reorders int
	draws    int
	handlers handlerRegistry
}

func (st *fakeStage) NewShape(img image.Image, boxW, boxH float64) Shape {
	return &fakeShape{boxW: boxW, boxH: boxH}
}

func (st *fakeStage) Add(s Shape) { st.shapes = append(st.shapes, s.(*fakeShape)) }
func (st *fakeStage) Reorder()    { st.reorders++ }
func (st *fakeStage) Draw()       { st.draws++ }

func (st *fakeStage) Bind(event EventType, fn func(Event)) CallbackHandle {
	return st.handlers.bind(event, fn)
}

func (st *fakeStage) Trigger(e Event) { st.handlers.trigger(e) }

// solidImages returns n w x h opaque images of distinct colors.
func solidImages(n, w, h int) []image.Image {
	out := make([]image.Image, n)
	for i := range out {
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		c := color.NRGBA{R: uint8(40 * i), G: 128, B: 255 - uint8(40*i), A: 255}
		for p := 0; p < len(img.Pix); p += 4 {
			img.Pix[p] = c.R
			img.Pix[p+1] = c.G
			img.Pix[p+2] = c.B
			img.Pix[p+3] = c.A
		}
		out[i] = img
	}
	return out
}

// testConfig is the 800x400 viewport used across engine tests: five
// 400x200 items, halfWidth 200, padding 25.
func testConfig() Config {
	return Config{
		Width:  800,
		Height: 400,
		Images: solidImages(5, 400, 200),
	}
}

func newTestEngine(t testing.TB, cfg Config) (*Engine, *fakeStage) {
	t.Helper()
	st := &fakeStage{}
	e, err := New(cfg, st)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e, st
}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
