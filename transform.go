package canvasflow

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// viewGeometry is the viewport geometry shared by the transform and z-order
// computations.
type viewGeometry struct {
	centerX   float64 // horizontal center of the viewport
	halfWidth float64 // half the item box width; never zero after validation
	tiltMax   float64
	scaleMin  float64
}

// itemTransform is the derived per-item shape transform.
type itemTransform struct {
	Scale float64
	Tilt  float64
}

// computeItemTransform derives scale and tilt from the distance between the
// item center and the viewport center. It is pure; the caller decides what
// to do with the changed flag.
func computeItemTransform(g viewGeometry, itemCenter float64, prev itemTransform) (itemTransform, bool) {
	distance := g.centerX - itemCenter
	percentage := math.Abs(distance) / g.halfWidth

	tilt := g.tiltMax * percentage
	if tilt > g.tiltMax {
		tilt = g.tiltMax
	}
	if itemCenter < g.centerX {
		tilt = -tilt
	}

	scale := g.scaleMin
	if percentage <= 1 {
		scale = 1 - (1-g.scaleMin)*percentage
		if scale < g.scaleMin {
			scale = g.scaleMin
		}
	}

	next := itemTransform{Scale: scale, Tilt: tilt}
	return next, next.Scale != prev.Scale || next.Tilt != prev.Tilt
}

// shapeGeometry describes how an item image is laid out on its canvas for a
// given transform.
//
// The image is drawn through the matrix [scale, tilt, 0, scale] (x' = scale*x,
// y' = tilt*x + scale*y). A negative tilt lifts the right edge, so the image
// is pushed down by startY to keep it inside the canvas.
type shapeGeometry struct {
	matrix       [6]float64 // shear/scale matrix, without the startY offset
	startY       float64    // pre-transform vertical offset of the image
	canvasHeight float64    // room for image and reflection
}

func computeShapeGeometry(imgW, imgH float64, t itemTransform) shapeGeometry {
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	transHeight := t.Tilt * imgW / scale
	startY := 0.0
	if transHeight < 0 {
		startY = -transHeight
	}
	return shapeGeometry{
		matrix:       [6]float64{t.Scale, t.Tilt, 0, t.Scale, 0, 0},
		startY:       startY,
		canvasHeight: (imgH + startY) * 2,
	}
}

// imageTransform returns the matrix mapping image pixels into canvas space.
func (g shapeGeometry) imageTransform() [6]float64 {
	return multiplyAffine(g.matrix, [6]float64{1, 0, 0, 1, 0, g.startY})
}

// reflectionTransform returns the matrix mapping image pixels to the mirrored
// reflection below the image, in canvas space. The reflection shares the
// shear of the image.
func (g shapeGeometry) reflectionTransform(imgH, scale float64) [6]float64 {
	reflectionY := g.startY + imgH*2
	flip := [6]float64{1, 0, 0, -scale, 0, reflectionY}
	return multiplyAffine(g.matrix, flip)
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// translateAffine returns m followed by a translation of (tx, ty).
func translateAffine(m [6]float64, tx, ty float64) [6]float64 {
	m[4] += tx
	m[5] += ty
	return m
}
