package canvasflow

import "image"

// Shape is the drawable view of one item. The engine pushes state into it
// after every recompute; the shape never feeds positions back.
type Shape interface {
	// SetPosition moves the shape without redrawing its contents.
	SetPosition(x, y float64)
	// SetTransform records the scale and shear used by the next Redraw.
	SetTransform(scale, tilt float64)
	SetZ(z int)
	Z() int
	Visible() bool
	// ContainsPoint reports whether the stage point (x, y) falls inside the
	// transformed image rectangle.
	ContainsPoint(x, y float64) bool
	// Redraw rebuilds the shape's contents from its current transform.
	Redraw()
}

// Stage owns an ordered collection of shapes, their draw order and the
// event bindings of the drag surface.
type Stage interface {
	// NewShape creates a shape for img laid out in a boxWidth x boxHeight box.
	// The shape is not drawn until it is added.
	NewShape(img image.Image, boxWidth, boxHeight float64) Shape
	Add(shape Shape)
	// Reorder re-sorts the draw order by Z. Equal Z keeps insertion order.
	Reorder()
	// Draw marks the stage for composition with the current shape state.
	Draw()
	Bind(event EventType, fn func(Event)) CallbackHandle
	Trigger(event Event)
}

// reflectionStage is implemented by stages that draw reflections.
type reflectionStage interface {
	SetReflectionAlpha(alpha float64)
}

// Resizer shrinks an image to fit inside maxWidth x maxHeight, preserving
// its aspect ratio. Images already within bounds are returned unchanged.
type Resizer interface {
	Resize(img image.Image, maxWidth, maxHeight int) image.Image
}

// CallbackHandle allows removing a registered stage callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.event, h.id)
}

type eventHandler struct {
	id uint32
	fn func(Event)
}

// handlerRegistry stores bound handlers per event type. It is shared by
// Scene and by test stages.
type handlerRegistry struct {
	handlers map[EventType][]eventHandler
	nextID   uint32
}

func (r *handlerRegistry) bind(event EventType, fn func(Event)) CallbackHandle {
	if r.handlers == nil {
		r.handlers = make(map[EventType][]eventHandler)
	}
	r.nextID++
	id := r.nextID
	r.handlers[event] = append(r.handlers[event], eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: event}
}

// remove drops the handler from the slice to avoid nil iteration waste.
func (r *handlerRegistry) remove(event EventType, id uint32) {
	s := r.handlers[event]
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			r.handlers[event] = s[:len(s)-1]
			return
		}
	}
}

func (r *handlerRegistry) trigger(e Event) {
	for _, h := range r.handlers[e.Type] {
		h.fn(e)
	}
}
