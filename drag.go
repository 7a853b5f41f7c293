package canvasflow

// dragHost is the engine surface the drag controller drives.
type dragHost interface {
	shiftAll(dx float64)
	settleNearest() bool
}

// dragController turns drag-surface events into uniform horizontal shifts.
// Drag events report the cumulative drag since the press; the controller
// applies only the part not yet applied.
type dragController struct {
	host   dragHost
	offset float64 // cumulative drag already applied this gesture
}

// move applies a drag whose cumulative horizontal distance is draggedX.
func (d *dragController) move(draggedX float64) {
	dx := draggedX - d.offset
	d.offset = draggedX
	if dx == 0 {
		return
	}
	d.host.shiftAll(dx)
}

// end resets the gesture bookkeeping and settles toward the nearest item.
func (d *dragController) end() {
	d.offset = 0
	d.host.settleNearest()
}
