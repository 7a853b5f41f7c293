package canvasflow

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Sprite is the Scene's Shape: one item image drawn through a scale and
// vertical-shear transform onto its own canvas, with a mirrored reflection
// below it. The canvas is rebuilt only after Redraw.
type Sprite struct {
	Name string

	img        image.Image
	imgW, imgH float64
	boxW, boxH float64

	x, y         float64
	scale, tilt  float64
	z            int
	visible      bool
	reflectAlpha float64

	// geometry as of the last Redraw; hit testing uses what was drawn
	geom shapeGeometry

	src         *ebiten.Image
	canvas      *ebiten.Image
	canvasDirty bool
	redraws     int
}

func newSprite(name string, img image.Image, boxW, boxH, reflectAlpha float64) *Sprite {
	b := img.Bounds()
	s := &Sprite{
		Name:         name,
		img:          img,
		imgW:         float64(b.Dx()),
		imgH:         float64(b.Dy()),
		boxW:         boxW,
		boxH:         boxH,
		scale:        1,
		visible:      true,
		reflectAlpha: reflectAlpha,
	}
	s.geom = computeShapeGeometry(s.imgW, s.imgH, itemTransform{Scale: 1})
	return s
}

// SetPosition implements Shape.
func (s *Sprite) SetPosition(x, y float64) {
	s.x = x
	s.y = y
}

// Position returns the top-left of the sprite's canvas on the stage.
func (s *Sprite) Position() (x, y float64) {
	return s.x, s.y
}

// SetTransform implements Shape.
func (s *Sprite) SetTransform(scale, tilt float64) {
	s.scale = scale
	s.tilt = tilt
}

// SetZ implements Shape.
func (s *Sprite) SetZ(z int) {
	s.z = z
}

// Z implements Shape.
func (s *Sprite) Z() int {
	return s.z
}

// SetVisible shows or hides the sprite. Hidden sprites are neither drawn nor
// hit-tested.
func (s *Sprite) SetVisible(v bool) {
	s.visible = v
}

// Visible implements Shape.
func (s *Sprite) Visible() bool {
	return s.visible
}

// Redraw implements Shape.
func (s *Sprite) Redraw() {
	s.geom = computeShapeGeometry(s.imgW, s.imgH, itemTransform{Scale: s.scale, Tilt: s.tilt})
	s.canvasDirty = true
	s.redraws++
}

// Redraws returns how many times the sprite has been redrawn.
func (s *Sprite) Redraws() int {
	return s.redraws
}

// ContainsPoint implements Shape. The point is mapped back through the
// sprite's transform and tested against the untransformed image rectangle.
func (s *Sprite) ContainsPoint(x, y float64) bool {
	if s.imgW == 0 || s.imgH == 0 {
		return false
	}
	inv := invertAffine(s.worldTransform())
	lx, ly := transformPoint(inv, x, y)
	return HitRect{Width: s.imgW, Height: s.imgH}.Contains(lx, ly)
}

// worldTransform maps image pixels to stage coordinates.
func (s *Sprite) worldTransform() [6]float64 {
	return translateAffine(s.geom.imageTransform(), s.x, s.y)
}

// reflectionWorldTransform maps image pixels to the reflection's stage
// coordinates.
func (s *Sprite) reflectionWorldTransform() [6]float64 {
	return translateAffine(s.geom.reflectionTransform(s.imgH, s.scale), s.x, s.y)
}

// canvasBounds is the stage rectangle the sprite may paint into.
func (s *Sprite) canvasBounds() image.Rectangle {
	x0 := int(math.Floor(s.x))
	y0 := int(math.Floor(s.y))
	return image.Rect(x0, y0, x0+int(math.Ceil(s.boxW)), y0+int(math.Ceil(s.geom.canvasHeight)))
}

// --- Ebitengine rendering ---

// geoM converts an affine matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[2])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 0, m[1])
	g.SetElement(1, 1, m[3])
	g.SetElement(1, 2, m[5])
	return g
}

// rebuildCanvas repaints the sprite's offscreen canvas from its geometry.
func (s *Sprite) rebuildCanvas() {
	if s.src == nil {
		s.src = ebiten.NewImageFromImage(s.img)
	}
	w := max(int(math.Ceil(s.boxW)), 1)
	h := max(int(math.Ceil(s.geom.canvasHeight)), 1)
	if s.canvas != nil {
		if b := s.canvas.Bounds(); b.Dx() != w || b.Dy() != h {
			s.canvas.Deallocate()
			s.canvas = nil
		}
	}
	if s.canvas == nil {
		s.canvas = ebiten.NewImage(w, h)
	} else {
		s.canvas.Clear()
	}

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM = geoM(s.geom.imageTransform())
	s.canvas.DrawImage(s.src, op)

	if s.reflectAlpha > 0 {
		op = &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM = geoM(s.geom.reflectionTransform(s.imgH, s.scale))
		op.ColorScale.ScaleAlpha(float32(s.reflectAlpha))
		s.canvas.DrawImage(s.src, op)
	}
	s.canvasDirty = false
}

// drawTo composites the sprite's canvas onto target at its stage position.
func (s *Sprite) drawTo(target *ebiten.Image) {
	if s.canvas == nil || s.canvasDirty {
		s.rebuildCanvas()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(s.x, s.y)
	target.DrawImage(s.canvas, op)
}

// dispose releases the sprite's GPU images.
func (s *Sprite) dispose() {
	if s.canvas != nil {
		s.canvas.Deallocate()
		s.canvas = nil
	}
	if s.src != nil {
		s.src.Deallocate()
		s.src = nil
	}
}
