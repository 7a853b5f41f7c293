package canvasflow

import (
	"math"
	"time"
)

// Engine is the coverflow layout and animation engine. It owns every item,
// the current index and the settle state, and pushes derived state into the
// stage after each change.
//
// Engine is not safe for concurrent use; drive it from the goroutine that
// delivers input and ticks (the Ebitengine update loop).
type Engine struct {
	cfg   Config
	stage Stage
	geom  viewGeometry

	items   []item
	current int

	settle *settleController
	drag   dragController

	handles []CallbackHandle
}

// New builds an engine for cfg on stage. Images are resized once, laid out
// fanned out around the initial index, and one recompute pass is run.
func New(cfg Config, stage Stage) (*Engine, error) {
	if stage == nil {
		return nil, ErrNilStage
	}
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:   cfg,
		stage: stage,
		geom: viewGeometry{
			centerX:   cfg.Width / 2,
			halfWidth: cfg.ImgWidth / 2,
			tiltMax:   cfg.Tilt,
			scaleMin:  cfg.Scale,
		},
	}
	e.settle = newSettleController(e, cfg)
	e.drag = dragController{host: e}

	if rs, ok := stage.(reflectionStage); ok {
		rs.SetReflectionAlpha(cfg.ReflectionAlpha)
	}

	boxW, boxH := int(math.Round(cfg.ImgWidth)), int(math.Round(cfg.ImgHeight))
	e.items = make([]item, len(cfg.Images))
	for i, img := range cfg.Images {
		resized := cfg.Resizer.Resize(img, boxW, boxH)
		shape := stage.NewShape(resized, cfg.ImgWidth, cfg.ImgHeight)
		e.items[i] = item{
			Item:  Item{Image: resized, Scale: 1},
			shape: shape,
		}
		stage.Add(shape)
	}

	e.layout(cfg.initialIndex())

	e.handles = append(e.handles,
		stage.Bind(EventTap, func(ev Event) { dispatchTap(e, ev) }),
		stage.Bind(EventDragMove, func(ev Event) { e.drag.move(ev.DraggedX) }),
		stage.Bind(EventDragEnd, func(Event) { e.drag.end() }),
	)
	return e, nil
}

// layout places items fanned out around index and recomputes.
func (e *Engine) layout(index int) {
	middle := e.geom.centerX - e.geom.halfWidth
	spacing := e.geom.halfWidth + e.cfg.Padding
	for i := range e.items {
		diff := float64(i - index)
		e.items[i].X = middle + diff*spacing
		e.items[i].Y = e.cfg.InitialY
	}
	e.current = index
	e.recompute(true)
}

// update recomputes every derived attribute and pushes it to the stage.
// Only items whose transform changed are redrawn.
func (e *Engine) update() {
	e.recompute(false)
}

func (e *Engine) recompute(redrawAll bool) {
	if len(e.items) == 0 {
		return
	}
	for i := range e.items {
		it := &e.items[i]
		t, changed := computeItemTransform(e.geom, it.center(e.geom.halfWidth), it.transform())
		it.Scale, it.Tilt, it.Changed = t.Scale, t.Tilt, changed
	}

	e.current = resolveCurrent(e.items, e.geom)
	assignDepth(e.items, e.current)

	for i := range e.items {
		it := &e.items[i]
		it.shape.SetPosition(it.X, it.Y)
		it.shape.SetZ(it.Depth)
		if it.Changed || redrawAll {
			it.shape.SetTransform(it.Scale, it.Tilt)
			it.shape.Redraw()
		}
	}
	e.stage.Reorder()
	e.stage.Draw()
}

// Select starts a settle that brings item index to the center. Out of range
// indices and requests arriving during a settle (under DropWhileSettling)
// are ignored. It reports whether a settle toward index is now in flight.
func (e *Engine) Select(index int) bool {
	if index < 0 || index >= len(e.items) {
		return false
	}
	return e.settle.request(index)
}

// MoveX shifts every item horizontally by dx and recomputes immediately.
func (e *Engine) MoveX(dx float64) {
	e.shiftAll(dx)
}

// CurrentIndex returns the index of the item nearest the viewport center as
// of the last recompute.
func (e *Engine) CurrentIndex() int {
	return e.current
}

// Tick advances the settle animation clock by dt, running every fixed tick
// that fell due, and returns the resulting state.
func (e *Engine) Tick(dt time.Duration) SettleState {
	return e.settle.tick(dt)
}

// Step runs exactly one settle tick regardless of elapsed time.
func (e *Engine) Step() SettleState {
	return e.settle.step()
}

// State returns the settle state.
func (e *Engine) State() SettleState {
	return e.settle.state
}

// Len returns the number of items.
func (e *Engine) Len() int {
	return len(e.items)
}

// Items returns a copy of every item's state, in index order.
func (e *Engine) Items() []Item {
	out := make([]Item, len(e.items))
	for i := range e.items {
		out[i] = e.items[i].Item
	}
	return out
}

// Config returns the engine configuration with defaults applied.
func (e *Engine) Config() Config {
	return e.cfg
}

// Close unbinds the engine from its stage events.
func (e *Engine) Close() {
	for _, h := range e.handles {
		h.Remove()
	}
	e.handles = nil
}

// --- settleHost, dragHost and dispatchHost ---

func (e *Engine) targetDistance(index int) (float64, bool) {
	if index < 0 || index >= len(e.items) {
		return 0, false
	}
	return e.geom.centerX - e.items[index].center(e.geom.halfWidth), true
}

func (e *Engine) nearestIndex() int {
	return e.current
}

func (e *Engine) shiftAll(dx float64) {
	if len(e.items) == 0 {
		return
	}
	for i := range e.items {
		e.items[i].X += dx
	}
	e.update()
}

func (e *Engine) settleNearest() bool {
	if len(e.items) == 0 {
		return false
	}
	return e.settle.request(e.current)
}

func (e *Engine) itemCount() int { return len(e.items) }

func (e *Engine) itemShape(index int) Shape { return e.items[index].shape }

func (e *Engine) itemDepth(index int) int { return e.items[index].Depth }

func (e *Engine) currentIndex() int { return e.current }

func (e *Engine) selectIndex(index int) { e.Select(index) }

func (e *Engine) click(index int) {
	if e.cfg.Click != nil {
		e.cfg.Click(index)
	}
}
