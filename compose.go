package canvasflow

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Compose renders the scene on the CPU into a new NRGBA image, in the same
// draw order and with the same transforms as DrawTo. It needs no GPU and is
// what snapshots are written from.
func (s *Scene) Compose() *image.NRGBA {
	w, h := int(s.width), int(s.height)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if s.ClearColor != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(s.ClearColor), image.Point{}, draw.Src)
	}
	for _, sp := range s.DrawOrder() {
		if sp.visible {
			sp.compose(dst)
		}
	}
	return dst
}

// aff3 converts an affine matrix to the row-major form used by x/image/draw.
func aff3(m [6]float64) f64.Aff3 {
	return f64.Aff3{m[0], m[2], m[4], m[1], m[3], m[5]}
}

// compose draws the sprite and its reflection into dst, clipped to the
// sprite's canvas.
func (s *Sprite) compose(dst *image.NRGBA) {
	clip := s.canvasBounds().Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	target := dst.SubImage(clip).(*image.NRGBA)

	sb := s.img.Bounds()
	// Image pixels are addressed from the source's own origin.
	origin := [6]float64{1, 0, 0, 1, -float64(sb.Min.X), -float64(sb.Min.Y)}

	m := multiplyAffine(s.worldTransform(), origin)
	draw.BiLinear.Transform(target, aff3(m), s.img, sb, draw.Over, nil)

	if s.reflectAlpha > 0 {
		a := uint8(s.reflectAlpha*255 + 0.5)
		m = multiplyAffine(s.reflectionWorldTransform(), origin)
		draw.BiLinear.Transform(target, aff3(m), s.img, sb, draw.Over, &draw.Options{
			SrcMask: image.NewUniform(color.Alpha{A: a}),
		})
	}
}
