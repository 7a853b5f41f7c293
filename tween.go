package canvasflow

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultTweenDuration is the settle duration used when TweenStrategy.Duration
// is zero.
const DefaultTweenDuration = 400 * time.Millisecond

// TweenStrategy settles along a gween easing curve over a fixed duration
// instead of halving. Steps are whole pixels. Once the tween completes, any
// residue left by retargeting or rounding is removed by halving.
//
// A Config holding a TweenStrategy may build several engines; each engine
// runs its settles on a private copy.
type TweenStrategy struct {
	Duration time.Duration
	Ease     ease.TweenFunc // defaults to ease.OutCubic

	tween   *gween.Tween
	applied float64
	done    bool
}

// NewTweenStrategy creates a TweenStrategy with the given duration and
// easing function.
func NewTweenStrategy(duration time.Duration, fn ease.TweenFunc) *TweenStrategy {
	return &TweenStrategy{Duration: duration, Ease: fn}
}

func (s *TweenStrategy) copyForEngine() SettleStrategy {
	return &TweenStrategy{Duration: s.Duration, Ease: s.Ease}
}

// Start implements SettleStrategy.
func (s *TweenStrategy) Start(distance float64) {
	d := s.Duration
	if d <= 0 {
		d = DefaultTweenDuration
	}
	fn := s.Ease
	if fn == nil {
		fn = ease.OutCubic
	}
	s.tween = gween.New(0, float32(distance), float32(d.Seconds()), fn)
	s.applied = 0
	s.done = false
}

// Step implements SettleStrategy.
func (s *TweenStrategy) Step(distance float64, dt time.Duration) (float64, bool) {
	if s.tween == nil || s.done {
		step := halvingStep(distance)
		return step, step == 0
	}
	val, finished := s.tween.Update(float32(dt.Seconds()))
	s.done = finished
	target := math.Round(float64(val))
	step := target - s.applied
	s.applied = target
	if step == 0 && finished {
		step = halvingStep(distance)
		return step, step == 0
	}
	return step, false
}
