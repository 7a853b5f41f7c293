package canvasflow

import (
	"errors"
	"fmt"
	"image"
	"time"
)

// Defaults applied to zero-valued Config fields.
const (
	DefaultTilt            = 0.2
	DefaultScale           = 0.75
	DefaultPadding         = 25.0
	DefaultReflectionAlpha = 0.3
	DefaultTickRate        = 60
)

// Configuration errors returned by New. Use errors.Is to test for them.
var (
	ErrInvalidViewport = errors.New("canvasflow: viewport width and height must be positive")
	ErrInvalidItemBox  = errors.New("canvasflow: item width and height must be positive")
	ErrInvalidScale    = errors.New("canvasflow: minimum scale must be in (0, 1]")
	ErrInvalidTilt     = errors.New("canvasflow: tilt must not be negative")
	ErrInvalidPadding  = errors.New("canvasflow: padding must not be negative")
	ErrInvalidCurrent  = errors.New("canvasflow: initial index out of range")
	ErrNilStage        = errors.New("canvasflow: stage is nil")
	ErrNilImage        = errors.New("canvasflow: image is nil")
)

// ConflictPolicy decides what happens to a settle request that arrives while
// another settle is in flight.
type ConflictPolicy uint8

const (
	// DropWhileSettling discards requests until the settle in flight has
	// returned to Idle.
	DropWhileSettling ConflictPolicy = iota
	// RetargetWhileSettling replaces the target of the settle in flight.
	RetargetWhileSettling
)

// TargetPolicy decides which item a settle homes in on at each tick.
type TargetPolicy uint8

const (
	// TargetRequested keeps homing the index the settle was started for.
	TargetRequested TargetPolicy = iota
	// TargetNearest re-targets to whichever item is nearest the viewport
	// center on every tick.
	TargetNearest
)

// Config holds the construction options for an Engine. Zero values select
// the documented defaults.
type Config struct {
	// Width and Height are the viewport size in pixels. Required.
	Width, Height float64

	// Images are the decoded images, in display order.
	Images []image.Image

	// ImgWidth and ImgHeight bound each item. Defaults to half the viewport.
	ImgWidth, ImgHeight float64

	// Tilt is the maximum shear factor. Defaults to 0.2.
	Tilt float64

	// Scale is the minimum scale of items away from the center. Defaults to 0.75.
	Scale float64

	// Padding is the gap in pixels between fanned-out items. Defaults to 25.
	Padding float64

	// InitialY is the vertical position of every item.
	InitialY float64

	// Current is the initial index. Nil selects the middle image when there
	// are at least three, otherwise the first.
	Current *int

	// Click is invoked with the item index when the current item is tapped.
	Click func(index int)

	// Resizer shrinks images to the item box. Defaults to CatmullRomResizer.
	Resizer Resizer

	// ReflectionAlpha is the opacity of the mirrored reflection. Defaults to
	// 0.3; a negative value disables the reflection.
	ReflectionAlpha float64

	// Conflict and Target select the settle policies.
	Conflict ConflictPolicy
	Target   TargetPolicy

	// Strategy computes per-tick settle steps. Defaults to HalvingStrategy.
	Strategy SettleStrategy

	// TickRate is the number of settle ticks per second. Defaults to 60.
	TickRate int
}

// Index returns a pointer to i, for use with Config.Current.
func Index(i int) *int {
	return &i
}

// withDefaults returns a copy of c with zero-valued options filled in.
func (c Config) withDefaults() Config {
	if c.ImgWidth == 0 {
		c.ImgWidth = c.Width / 2
	}
	if c.ImgHeight == 0 {
		c.ImgHeight = c.Height / 2
	}
	if c.Tilt == 0 {
		c.Tilt = DefaultTilt
	}
	if c.Scale == 0 {
		c.Scale = DefaultScale
	}
	if c.Padding == 0 {
		c.Padding = DefaultPadding
	}
	if c.ReflectionAlpha == 0 {
		c.ReflectionAlpha = DefaultReflectionAlpha
	}
	if c.ReflectionAlpha < 0 {
		c.ReflectionAlpha = 0
	}
	if c.Resizer == nil {
		c.Resizer = CatmullRomResizer{}
	}
	if c.Strategy == nil {
		c.Strategy = HalvingStrategy{}
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// initialIndex returns the configured or default initial index.
func (c Config) initialIndex() int {
	if c.Current != nil {
		return *c.Current
	}
	if n := len(c.Images); n > 2 {
		return n / 2
	}
	return 0
}

// validate reports the first configuration error in c, which must already
// have its defaults applied. New calls it before touching the stage.
func (c Config) validate() error {
	if !(c.Width > 0) || !(c.Height > 0) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidViewport, c.Width, c.Height)
	}
	if !(c.ImgWidth > 0) || !(c.ImgHeight > 0) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidItemBox, c.ImgWidth, c.ImgHeight)
	}
	if !(c.Scale > 0) || c.Scale > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidScale, c.Scale)
	}
	if c.Tilt < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTilt, c.Tilt)
	}
	if c.Padding < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidPadding, c.Padding)
	}
	for i, img := range c.Images {
		if img == nil {
			return fmt.Errorf("%w: index %d", ErrNilImage, i)
		}
	}
	if n := len(c.Images); n > 0 {
		if cur := c.initialIndex(); cur < 0 || cur >= n {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidCurrent, cur, n)
		}
	}
	return nil
}

// tickInterval is the fixed duration of one settle tick.
func (c Config) tickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
