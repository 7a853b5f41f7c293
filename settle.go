package canvasflow

import (
	"math"
	"time"
)

// SettleStrategy computes the per-tick translation of a settle animation.
type SettleStrategy interface {
	// Start is called when a settle begins (or is retargeted) with the
	// initial distance from the target center to the viewport center.
	Start(distance float64)
	// Step returns the translation to apply this tick for the remaining
	// distance. done reports that the settle has come to rest; step is then
	// ignored.
	Step(distance float64, dt time.Duration) (step float64, done bool)
}

// perEngineStrategy is implemented by strategies that keep per-settle state.
// Each engine settles with its own copy.
type perEngineStrategy interface {
	copyForEngine() SettleStrategy
}

// HalvingStrategy moves items by floor(distance/2) each tick, halving the
// displacement every frame. It comes to rest on the first tick whose step
// floors to zero.
type HalvingStrategy struct{}

// Start implements SettleStrategy.
func (HalvingStrategy) Start(float64) {}

// Step implements SettleStrategy.
func (HalvingStrategy) Step(distance float64, _ time.Duration) (float64, bool) {
	step := halvingStep(distance)
	return step, step == 0
}

func halvingStep(distance float64) float64 {
	return math.Floor(distance / 2)
}

// settleHost is the engine surface the animation controller drives.
type settleHost interface {
	// targetDistance returns viewportCenter - center of item index.
	targetDistance(index int) (float64, bool)
	// nearestIndex returns the item currently nearest the viewport center.
	nearestIndex() int
	// shiftAll translates every item horizontally and recomputes.
	shiftAll(dx float64)
}

// settleController runs the Idle/Settling state machine. It holds no item
// state of its own; every tick reads and writes through the host.
type settleController struct {
	host     settleHost
	strategy SettleStrategy
	conflict ConflictPolicy
	targets  TargetPolicy
	interval time.Duration

	state  SettleState
	target int
	acc    time.Duration
	ticks  int // ticks run by the settle in flight
}

// maxCatchUpTicks bounds how many fixed ticks a single Tick call may run
// after a long frame.
const maxCatchUpTicks = 5

func newSettleController(host settleHost, cfg Config) *settleController {
	strategy := cfg.Strategy
	if s, ok := strategy.(perEngineStrategy); ok {
		strategy = s.copyForEngine()
	}
	return &settleController{
		host:     host,
		strategy: strategy,
		conflict: cfg.Conflict,
		targets:  cfg.Target,
		interval: cfg.tickInterval(),
	}
}

// request asks for a settle toward index. It reports whether a settle is in
// flight toward index afterwards.
func (c *settleController) request(index int) bool {
	if c.state == Settling {
		if c.conflict == DropWhileSettling {
			debugf("settle: request for %d dropped, settling toward %d", index, c.target)
			return false
		}
		debugf("settle: retarget %d -> %d", c.target, index)
	}
	distance, ok := c.host.targetDistance(index)
	if !ok {
		return false
	}
	if halvingStep(distance) == 0 {
		// Already within rounding distance; a settle in flight keeps going.
		return false
	}
	c.strategy.Start(distance)
	if c.state == Idle {
		c.acc = 0
		c.ticks = 0
	}
	c.state = Settling
	c.target = index
	debugf("settle: start toward %d, distance %.1f", index, distance)
	return true
}

// step runs exactly one settle tick.
func (c *settleController) step() SettleState {
	if c.state != Settling {
		return c.state
	}
	if c.targets == TargetNearest {
		c.target = c.host.nearestIndex()
	}
	distance, ok := c.host.targetDistance(c.target)
	if !ok {
		c.stop()
		return c.state
	}
	dx, done := c.strategy.Step(distance, c.interval)
	if done {
		c.stop()
		return c.state
	}
	c.ticks++
	c.host.shiftAll(dx)
	return c.state
}

// tick advances the fixed-step clock by dt and runs every tick that fell due.
func (c *settleController) tick(dt time.Duration) SettleState {
	if c.state != Settling {
		return c.state
	}
	c.acc += dt
	for n := 0; c.acc >= c.interval && c.state == Settling; n++ {
		if n == maxCatchUpTicks {
			c.acc = 0
			break
		}
		c.acc -= c.interval
		c.step()
	}
	return c.state
}

func (c *settleController) stop() {
	debugf("settle: idle at %d after %d ticks", c.target, c.ticks)
	c.state = Idle
	c.acc = 0
}
