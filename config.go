package snapdrag

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default configuration values.
const (
	DefaultRate            = 5.0
	DefaultGap             = 10.0
	DefaultThreshold       = 0.2
	DefaultTweenDuration   = 0.3 // seconds
	DefaultSpringFrequency = 6.0
	DefaultSpringDamping   = 1.0
)

var (
	// ErrInvalidConfig is returned (wrapped) when a merged Config fails validation.
	ErrInvalidConfig = errors.New("snapdrag: invalid config")
	// ErrNoTarget is returned when a Draggable is constructed without a target.
	ErrNoTarget = errors.New("snapdrag: no drag target")
)

// SnapKind selects the animation used to move a released object to its edge.
type SnapKind uint8

const (
	SnapDecay  SnapKind = iota // first-order exponential decay, one step per tick
	SnapTween                  // fixed-duration gween tween
	SnapSpring                 // damped harmonica spring
)

func (k SnapKind) String() string {
	switch k {
	case SnapTween:
		return "tween"
	case SnapSpring:
		return "spring"
	default:
		return "decay"
	}
}

// UnmarshalText parses "decay", "tween" or "spring".
func (k *SnapKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "decay", "":
		*k = SnapDecay
	case "tween":
		*k = SnapTween
	case "spring":
		*k = SnapSpring
	default:
		return fmt.Errorf("unknown snap kind %q", text)
	}
	return nil
}

// UnmarshalText parses "halves" or "quadrants".
func (m *ZoneMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "quadrants", "":
		*m = ZonesQuadrants
	case "halves":
		*m = ZonesHalves
	default:
		return fmt.Errorf("unknown zone mode %q", text)
	}
	return nil
}

// Config is the immutable per-draggable configuration snapshot.
type Config struct {
	Adsorb    bool    // snap to the nearest side edge on release
	Rate      float64 // decay divisor, > 0
	InitX     float64 // initial position, re-clamped into bounds
	InitY     float64
	Gap       float64 // safety margin from the viewport edges, >= 0
	Threshold float64 // convergence distance for the decay easing, > 0

	Zones ZoneMode
	Snap  SnapKind
	Key   string // persistence key; empty disables persistence

	TweenDuration   float64 // seconds, SnapTween only
	SpringFrequency float64 // angular frequency, SnapSpring only
	SpringDamping   float64 // damping ratio, SnapSpring only
}

// DefaultConfig returns a fresh copy of the default configuration.
func DefaultConfig() Config {
	return Config{
		Adsorb:          true,
		Rate:            DefaultRate,
		Gap:             DefaultGap,
		Threshold:       DefaultThreshold,
		Zones:           ZonesQuadrants,
		Snap:            SnapDecay,
		TweenDuration:   DefaultTweenDuration,
		SpringFrequency: DefaultSpringFrequency,
		SpringDamping:   DefaultSpringDamping,
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case !finite(c.Rate) || c.Rate <= 0:
		return fmt.Errorf("%w: rate must be > 0, got %v", ErrInvalidConfig, c.Rate)
	case !finite(c.Gap) || c.Gap < 0:
		return fmt.Errorf("%w: gap must be >= 0, got %v", ErrInvalidConfig, c.Gap)
	case !finite(c.Threshold) || c.Threshold <= 0:
		return fmt.Errorf("%w: threshold must be > 0, got %v", ErrInvalidConfig, c.Threshold)
	case !finite(c.InitX) || !finite(c.InitY):
		return fmt.Errorf("%w: initial position must be finite", ErrInvalidConfig)
	case c.Snap == SnapTween && (!finite(c.TweenDuration) || c.TweenDuration <= 0):
		return fmt.Errorf("%w: tween duration must be > 0, got %v", ErrInvalidConfig, c.TweenDuration)
	case c.Snap == SnapSpring && (!finite(c.SpringFrequency) || c.SpringFrequency <= 0):
		return fmt.Errorf("%w: spring frequency must be > 0, got %v", ErrInvalidConfig, c.SpringFrequency)
	case c.Snap == SnapSpring && (!finite(c.SpringDamping) || c.SpringDamping <= 0):
		return fmt.Errorf("%w: spring damping must be > 0, got %v", ErrInvalidConfig, c.SpringDamping)
	}
	return nil
}

// Options holds user overrides. A nil field falls back to the default.
type Options struct {
	Adsorb    *bool    `toml:"adsorb"`
	Rate      *float64 `toml:"rate"`
	InitX     *float64 `toml:"initX"`
	InitY     *float64 `toml:"initY"`
	Gap       *float64 `toml:"gap"`
	Threshold *float64 `toml:"threshold"`

	Zones *ZoneMode `toml:"zones"`
	Snap  *SnapKind `toml:"snap"`
	Key   *string   `toml:"key"`

	TweenDuration   *float64 `toml:"tweenDuration"`
	SpringFrequency *float64 `toml:"springFrequency"`
	SpringDamping   *float64 `toml:"springDamping"`
}

// Bool returns a pointer to v, for building Options literals.
func Bool(v bool) *bool { return &v }

// Float returns a pointer to v, for building Options literals.
func Float(v float64) *float64 { return &v }

// String returns a pointer to v, for building Options literals.
func String(v string) *string { return &v }

// Snap returns a pointer to k, for Options.Snap.
func Snap(k SnapKind) *SnapKind { return &k }

// Zones returns a pointer to m, for Options.Zones.
func Zones(m ZoneMode) *ZoneMode { return &m }

// MergeConfig overlays the non-nil fields of overrides onto defaults and
// returns the result. Both arguments are values; neither is modified.
func MergeConfig(defaults Config, overrides Options) Config {
	c := defaults
	if overrides.Adsorb != nil {
		c.Adsorb = *overrides.Adsorb
	}
	if overrides.Rate != nil {
		c.Rate = *overrides.Rate
	}
	if overrides.InitX != nil {
		c.InitX = *overrides.InitX
	}
	if overrides.InitY != nil {
		c.InitY = *overrides.InitY
	}
	if overrides.Gap != nil {
		c.Gap = *overrides.Gap
	}
	if overrides.Threshold != nil {
		c.Threshold = *overrides.Threshold
	}
	if overrides.Zones != nil {
		c.Zones = *overrides.Zones
	}
	if overrides.Snap != nil {
		c.Snap = *overrides.Snap
	}
	if overrides.Key != nil {
		c.Key = *overrides.Key
	}
	if overrides.TweenDuration != nil {
		c.TweenDuration = *overrides.TweenDuration
	}
	if overrides.SpringFrequency != nil {
		c.SpringFrequency = *overrides.SpringFrequency
	}
	if overrides.SpringDamping != nil {
		c.SpringDamping = *overrides.SpringDamping
	}
	return c
}

// MergeMap returns a new map with exactly the keys of defaults, taking the
// value from overrides wherever overrides holds a non-nil value for that key.
// Keys present only in overrides are dropped. Neither input is modified.
func MergeMap(defaults, overrides map[string]any) map[string]any {
	out := make(map[string]any, len(defaults))
	for k, v := range defaults {
		if ov, ok := overrides[k]; ok && ov != nil {
			out[k] = ov
			continue
		}
		out[k] = v
	}
	return out
}

// ParseOptions decodes TOML option data. Unknown keys are rejected so that
// misspelled options surface instead of silently falling back to defaults.
func ParseOptions(data []byte) (Options, error) {
	var opts Options
	md, err := toml.Decode(string(data), &opts)
	if err != nil {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return Options{}, fmt.Errorf("parse options: unknown keys %s", strings.Join(keys, ", "))
	}
	return opts, nil
}

// LoadOptionsFile reads and parses a TOML options file.
func LoadOptionsFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options %s: %w", path, err)
	}
	opts, err := ParseOptions(data)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
