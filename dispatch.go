package canvasflow

// dispatchHost is the engine surface the input dispatcher drives.
type dispatchHost interface {
	itemCount() int
	itemShape(index int) Shape
	itemDepth(index int) int
	currentIndex() int
	selectIndex(index int)
	click(index int)
}

// dispatchTap resolves a tap to the topmost item under it. Tapping the
// current item clicks it; tapping any other item selects it. Taps with more
// than one contact point are ignored. It returns the index hit, or -1.
func dispatchTap(h dispatchHost, e Event) int {
	if len(e.Taps) != 1 {
		return -1
	}
	p := e.Taps[0]

	hit, hitDepth := -1, 0
	for i := 0; i < h.itemCount(); i++ {
		s := h.itemShape(i)
		if s == nil || !s.Visible() || !s.ContainsPoint(p.X, p.Y) {
			continue
		}
		if d := h.itemDepth(i); hit < 0 || d > hitDepth {
			hit, hitDepth = i, d
		}
	}
	if hit < 0 {
		return -1
	}

	if hit == h.currentIndex() {
		debugf("tap: click %d", hit)
		h.click(hit)
	} else {
		debugf("tap: select %d", hit)
		h.selectIndex(hit)
	}
	return hit
}
