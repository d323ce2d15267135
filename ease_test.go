package snapdrag

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestStep(t *testing.T) {
	tests := []struct {
		name                       string
		current, target, rate, thr float64
		want                       float64
		wantRes                    StepResult
	}{
		{"continuing step", 0, 10, 5, 0.2, 2, StepContinue},
		{"converges under threshold", 0, 1, 5, 1, 1, StepConverged},
		{"forward step above threshold", 0, 5, 5, 1, 1, StepContinue},
		{"backward step above threshold", 5, 0, 5, 1, 4, StepContinue},
		{"already at target", 3, 3, 5, 0.2, 3, StepAtTarget},
		{"rate 1 jumps home", 0, 100, 1, 0.2, 100, StepConverged},
		{"rate below 1 jumps home", 0, 100, 0.25, 0.2, 100, StepConverged},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, res := Step(tt.current, tt.target, tt.rate, tt.thr)
			if got != tt.want || res != tt.wantRes {
				t.Errorf("Step(%v, %v, %v, %v) = (%v, %v), want (%v, %v)",
					tt.current, tt.target, tt.rate, tt.thr, got, res, tt.want, tt.wantRes)
			}
		})
	}
}

func TestStepCoercesMalformedInputs(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	tests := []struct {
		name                       string
		current, target, rate, thr float64
		want                       float64
	}{
		{"NaN rate uses default", 0, 10, nan, 0.2, 2},
		{"zero rate uses default", 0, 10, 0, 0.2, 2},
		{"negative rate uses default", 0, 10, -3, 0.2, 2},
		{"NaN current becomes 0", nan, 10, 5, 0.2, 2},
		{"infinite target becomes 0", 10, inf, 5, 0.2, 8},
		{"NaN threshold uses default", 0, 10, 5, nan, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Step(tt.current, tt.target, tt.rate, tt.thr)
			if got != tt.want {
				t.Errorf("Step = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEaseSameValueIsDone(t *testing.T) {
	for _, rate := range []float64{0.5, 1, 2, 5, 30} {
		v, done := Ease(7, 7, rate, DefaultThreshold)
		if !done || v != 7 {
			t.Errorf("Ease(7, 7, %v) = (%v, %v), want (7, true)", rate, v, done)
		}
	}
}

func TestEaseConvergesMonotonically(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		current := rng.Float64()*2000 - 1000
		target := rng.Float64()*2000 - 1000
		rate := 1 + rng.Float64()*49
		threshold := 0.01 + rng.Float64()

		steps := 0
		for {
			next, done := Ease(current, target, rate, threshold)
			if math.Abs(target-next) >= math.Abs(target-current) && current != target {
				t.Fatalf("distance did not shrink: %v -> %v (target %v, rate %v)", current, next, target, rate)
			}
			current = next
			steps++
			if done {
				break
			}
			if steps > 5000 {
				t.Fatalf("no convergence after %d steps (target %v, rate %v)", steps, target, rate)
			}
		}
		if current != target {
			t.Errorf("converged to %v, want exactly %v", current, target)
		}
	}
}
