package canvasflow

import "image"

// Item is the geometric state of one carousel image. The engine owns every
// field; Items returns copies.
type Item struct {
	// Image is the resized image, no larger than the configured item box.
	Image image.Image

	// X, Y is the top-left of the item's layout box.
	X, Y float64

	Scale float64
	Tilt  float64

	// Changed is set by a recompute when Scale or Tilt differs from the
	// previous recompute. Only changed items are redrawn.
	Changed bool

	// Depth is the item's draw rank; the current item has the highest.
	Depth int
}

// center returns the horizontal center of the item's layout box.
func (it *Item) center(halfWidth float64) float64 {
	return it.X + halfWidth
}

func (it *Item) transform() itemTransform {
	return itemTransform{Scale: it.Scale, Tilt: it.Tilt}
}

// item pairs the engine-owned state with its stage shape.
type item struct {
	Item
	shape Shape
}
