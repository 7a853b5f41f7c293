// Package canvasflow is a coverflow-style image carousel for [Ebitengine].
//
// A row of images is laid out horizontally. The image nearest the center of
// the viewport is drawn full size and on top; images to either side shrink
// and shear away from the viewer, each with a faint mirrored reflection
// below it. The row can be dragged, and on release it settles so that an
// image is centered again. Tapping a side image brings it to the center;
// tapping the centered image invokes the click callback.
//
// # Quick start
//
//	scene := canvasflow.NewScene(800, 400)
//	engine, err := canvasflow.New(canvasflow.Config{
//		Width: 800, Height: 400,
//		Images: images,
//		Click:  func(i int) { log.Printf("clicked %d", i) },
//	}, scene)
//	if err != nil {
//		log.Fatal(err)
//	}
//	canvasflow.Run(scene, engine, canvasflow.RunConfig{Title: "Gallery"})
//
// # Engine and stage
//
// [Engine] holds all geometry: item positions, the derived scale and tilt,
// the current index and the settle animation. It pushes state into a
// [Stage] after every change and never reads positions back. [Scene] is the
// Ebitengine stage; any other [Stage] implementation can be driven the same
// way, which is how the engine is tested without a GPU.
//
// Time is explicit. [Engine.Tick] advances the settle animation by a frame
// duration, running fixed ticks at [Config.TickRate]; [Engine.Step] runs a
// single tick.
//
// # Settling
//
// By default each tick moves every item by floor(d/2), where d is the
// distance from the target item's center to the viewport center, and the
// settle ends on the first tick whose step is zero. [TweenStrategy] replaces
// the halving with a [gween] easing curve. [ConflictPolicy] decides whether
// a new request during a settle is dropped or retargets it.
//
// # Testing
//
// [Scene.InjectTap] and [Scene.InjectDrag] queue synthetic pointer input,
// [LoadTestScript] sequences input and snapshots from JSON, and
// [Scene.Compose] renders a frame on the CPU.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package canvasflow
