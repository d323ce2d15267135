package snapdrag

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// stepper produces successive positions along the animated axis.
// dt is the tick length in seconds; steppers that are tick-counted ignore it.
type stepper interface {
	step(dt float64) (float64, StepResult)
	retarget(from, to float64)
}

// SnapAnimation eases a released object along the horizontal axis toward a
// side edge. It is driven by calling Update once per tick. There is no global
// animation manager; the owning Draggable (or the caller) ticks it.
//
// Cancel is cooperative: the next Update sees the flag and returns without
// applying anything.
type SnapAnimation struct {
	stepper   stepper
	apply     func(x float64)
	onDone    func(x float64)
	last      float64
	target    float64
	cancelled bool
	Done      bool
}

// NewSnapAnimation builds the animation selected by cfg.Snap, moving from
// from to to. apply receives every intermediate value and the final one;
// onDone runs once when the target is reached. Either callback may be nil.
// fn is the gween easing for SnapTween and is ignored otherwise; nil selects
// ease.OutQuad.
func NewSnapAnimation(cfg Config, from, to float64, fn ease.TweenFunc, apply, onDone func(float64)) *SnapAnimation {
	a := &SnapAnimation{apply: apply, onDone: onDone, last: from, target: to}
	switch cfg.Snap {
	case SnapTween:
		if fn == nil {
			fn = ease.OutQuad
		}
		a.stepper = newTweenStepper(from, to, cfg.TweenDuration, fn)
	case SnapSpring:
		a.stepper = &springStepper{
			pos: from, target: to,
			freq: cfg.SpringFrequency, damping: cfg.SpringDamping,
			threshold: cfg.Threshold,
		}
	default:
		a.stepper = &decayStepper{current: from, target: to, rate: cfg.Rate, threshold: cfg.Threshold}
	}
	return a
}

// Update advances the animation by one tick of dt seconds.
func (a *SnapAnimation) Update(dt float64) {
	if a.cancelled || a.Done {
		return
	}
	v, res := a.stepper.step(dt)
	if res == StepAtTarget {
		a.finish(v)
		return
	}
	a.last = v
	if a.apply != nil {
		a.apply(v)
	}
	if res == StepConverged {
		a.finish(v)
	}
}

func (a *SnapAnimation) finish(v float64) {
	a.Done = true
	a.last = v
	if a.onDone != nil {
		a.onDone(v)
	}
}

// Cancel stops the animation. No further values are applied and onDone never runs.
func (a *SnapAnimation) Cancel() {
	a.cancelled = true
}

// Cancelled reports whether Cancel has been called.
func (a *SnapAnimation) Cancelled() bool {
	return a.cancelled
}

// Last returns the most recently emitted position (the start position before
// the first tick).
func (a *SnapAnimation) Last() float64 {
	return a.last
}

// Target returns the position the animation is heading for.
func (a *SnapAnimation) Target() float64 {
	return a.target
}

// Retarget redirects a running animation to a new edge, continuing from the
// last emitted position.
func (a *SnapAnimation) Retarget(to float64) {
	if a.Done || a.cancelled || to == a.target {
		return
	}
	a.target = to
	a.stepper.retarget(a.last, to)
}

// --- Decay ---

type decayStepper struct {
	current, target, rate, threshold float64
}

func (s *decayStepper) step(float64) (float64, StepResult) {
	v, res := Step(s.current, s.target, s.rate, s.threshold)
	s.current = v
	return v, res
}

func (s *decayStepper) retarget(from, to float64) {
	s.current, s.target = from, to
}

// --- Tween ---

type tweenStepper struct {
	tween    *gween.Tween
	from, to float64
	duration float64
	fn       ease.TweenFunc
}

func newTweenStepper(from, to, duration float64, fn ease.TweenFunc) *tweenStepper {
	s := &tweenStepper{duration: duration, fn: fn}
	s.retarget(from, to)
	return s
}

func (s *tweenStepper) step(dt float64) (float64, StepResult) {
	if s.from == s.to {
		return s.to, StepAtTarget
	}
	val, finished := s.tween.Update(float32(dt))
	if finished {
		// gween works in float32; land on the exact float64 target.
		return s.to, StepConverged
	}
	return float64(val), StepContinue
}

func (s *tweenStepper) retarget(from, to float64) {
	s.from, s.to = from, to
	s.tween = gween.New(float32(from), float32(to), float32(s.duration), s.fn)
}

// --- Spring ---

type springStepper struct {
	spring        harmonica.Spring
	dt            float64
	pos, vel      float64
	target        float64
	freq, damping float64
	threshold     float64
}

func (s *springStepper) step(dt float64) (float64, StepResult) {
	if s.pos == s.target && s.vel == 0 {
		return s.target, StepAtTarget
	}
	if dt <= 0 {
		dt = harmonica.FPS(60)
	}
	if dt != s.dt {
		s.spring = harmonica.NewSpring(dt, s.freq, s.damping)
		s.dt = dt
	}
	before := s.target - s.pos
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	// The target is an edge of the bounds, so the spring may not swing past it.
	crossed := before*(s.target-s.pos) <= 0
	if crossed || math.Abs(s.target-s.pos) < s.threshold && math.Abs(s.vel) < s.threshold {
		s.pos, s.vel = s.target, 0
		return s.target, StepConverged
	}
	return s.pos, StepContinue
}

func (s *springStepper) retarget(from, to float64) {
	s.pos, s.target = from, to
}
