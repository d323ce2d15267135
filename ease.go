package snapdrag

import "math"

// StepResult is the outcome of a single easing step.
type StepResult uint8

const (
	StepContinue  StepResult = iota // value is an intermediate position
	StepConverged                   // value is the target; the animation is finished
	StepAtTarget                    // start already equals target; nothing to animate
)

// Step advances current one decay step toward target:
//
//	next = current + (target - current) / rate
//
// When current == target it reports StepAtTarget. When the remaining distance
// after the step is below threshold it reports StepConverged with the exact
// target, so the approach never becomes asymptotic.
//
// Inputs are coerced rather than rejected. Non-finite positions become 0. A
// non-finite or non-positive rate becomes DefaultRate and a rate in (0, 1) is
// raised to 1. A non-finite or non-positive threshold becomes DefaultThreshold.
func Step(current, target, rate, threshold float64) (float64, StepResult) {
	current = coercePos(current)
	target = coercePos(target)
	if current == target {
		return target, StepAtTarget
	}
	if !finite(rate) || rate <= 0 {
		rate = DefaultRate
	}
	if rate < 1 {
		// A divisor below 1 overshoots the target; cover the whole distance instead.
		rate = 1
	}
	if !finite(threshold) || threshold <= 0 {
		threshold = DefaultThreshold
	}

	next := current + (target-current)/rate
	if math.Abs(target-next) < threshold {
		return target, StepConverged
	}
	return next, StepContinue
}

// Ease is Step reduced to a (value, done) pair. done is true both when the
// step converged and when current already equalled target.
func Ease(current, target, rate, threshold float64) (float64, bool) {
	v, r := Step(current, target, rate, threshold)
	return v, r != StepContinue
}

func coercePos(v float64) float64 {
	if !finite(v) {
		return 0
	}
	return v
}
