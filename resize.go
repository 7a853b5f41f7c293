package canvasflow

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// resizeDimensions returns the size of a w x h image scaled down to fit in
// maxWidth x maxHeight with its aspect ratio preserved. Sizes already within
// bounds are returned unchanged.
func resizeDimensions(w, h, maxWidth, maxHeight int) (int, int) {
	if w <= maxWidth && h <= maxHeight {
		return w, h
	}
	ratioX := float64(maxWidth) / float64(w)
	ratioY := float64(maxHeight) / float64(h)
	ratio := ratioY
	if ratioX <= ratioY {
		ratio = ratioX
	}
	nw := int(math.Round(float64(w) * ratio))
	nh := int(math.Round(float64(h) * ratio))
	return max(nw, 1), max(nh, 1)
}

// CatmullRomResizer resizes with the Catmull-Rom kernel from x/image/draw.
type CatmullRomResizer struct{}

// Resize implements Resizer.
func (CatmullRomResizer) Resize(img image.Image, maxWidth, maxHeight int) image.Image {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	w, h := resizeDimensions(b.Dx(), b.Dy(), maxWidth, maxHeight)
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
