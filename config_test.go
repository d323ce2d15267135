package snapdrag

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestMergeConfigFullOverride(t *testing.T) {
	defaults := DefaultConfig()
	opts := Options{
		InitX:  Float(100),
		InitY:  Float(100),
		Adsorb: Bool(false),
		Rate:   Float(10),
		Gap:    Float(20),
	}

	got := MergeConfig(defaults, opts)

	if got.InitX != 100 || got.InitY != 100 || got.Adsorb || got.Rate != 10 || got.Gap != 20 {
		t.Errorf("MergeConfig = %+v, want override values", got)
	}
	if defaults != DefaultConfig() {
		t.Errorf("defaults modified: %+v", defaults)
	}
	if *opts.Rate != 10 || *opts.Gap != 20 {
		t.Errorf("overrides modified: %+v", opts)
	}
}

func TestMergeConfigPartial(t *testing.T) {
	got := MergeConfig(DefaultConfig(), Options{Gap: Float(50)})
	want := DefaultConfig()
	want.Gap = 50
	if got != want {
		t.Errorf("MergeConfig = %+v, want %+v", got, want)
	}
}

func TestMergeConfigEmpty(t *testing.T) {
	if got := MergeConfig(DefaultConfig(), Options{}); got != DefaultConfig() {
		t.Errorf("MergeConfig with no overrides = %+v, want defaults", got)
	}
}

func TestDefaultConfigIsFreshCopy(t *testing.T) {
	a := DefaultConfig()
	a.Rate = 99
	if DefaultConfig().Rate != DefaultRate {
		t.Error("DefaultConfig shares state between calls")
	}
}

func TestMergeMapImmutable(t *testing.T) {
	a := map[string]any{"foo": 123}
	b := map[string]any{"bar": 222}

	got := MergeMap(a, b)

	if _, ok := a["bar"]; ok {
		t.Error("defaults gained a key")
	}
	if _, ok := b["foo"]; ok {
		t.Error("overrides gained a key")
	}
	if want := map[string]any{"foo": 123}; !reflect.DeepEqual(got, want) {
		t.Errorf("MergeMap = %v, want %v", got, want)
	}
}

func TestMergeMapProperties(t *testing.T) {
	a := map[string]any{"foo": 111, "bar": 222, "baz": 333}
	b := map[string]any{"foo": 123, "baz": 456, "qux": 1, "bar": nil}

	got := MergeMap(a, b)

	want := map[string]any{"foo": 123, "bar": 222, "baz": 456}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeMap = %v, want %v", got, want)
	}
	got["foo"] = 0
	if a["foo"] != 111 {
		t.Error("result aliases defaults")
	}
}

func TestMergeMapNilOverrides(t *testing.T) {
	a := map[string]any{"gap": 10}
	got := MergeMap(a, nil)
	if !reflect.DeepEqual(got, a) {
		t.Errorf("MergeMap(a, nil) = %v, want %v", got, a)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
		ok   bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero rate", func(c *Config) { c.Rate = 0 }, false},
		{"negative gap", func(c *Config) { c.Gap = -1 }, false},
		{"zero gap", func(c *Config) { c.Gap = 0 }, true},
		{"zero threshold", func(c *Config) { c.Threshold = 0 }, false},
		{"tween without duration", func(c *Config) { c.Snap = SnapTween; c.TweenDuration = 0 }, false},
		{"spring without frequency", func(c *Config) { c.Snap = SnapSpring; c.SpringFrequency = 0 }, false},
		{"spring without damping", func(c *Config) { c.Snap = SnapSpring; c.SpringDamping = 0 }, false},
		{"spring negative damping", func(c *Config) { c.Snap = SnapSpring; c.SpringDamping = -0.5 }, false},
		{"spring underdamped", func(c *Config) { c.Snap = SnapSpring; c.SpringDamping = 0.3 }, true},
		{"decay ignores tween duration", func(c *Config) { c.TweenDuration = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mod(&c)
			err := c.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseOptions(t *testing.T) {
	data := []byte(`
adsorb = false
rate = 10
initX = 100
gap = 20
zones = "halves"
snap = "spring"
key = "ball"
`)
	opts, err := ParseOptions(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := MergeConfig(DefaultConfig(), opts)
	if cfg.Adsorb || cfg.Rate != 10 || cfg.InitX != 100 || cfg.Gap != 20 {
		t.Errorf("numeric options not applied: %+v", cfg)
	}
	if cfg.InitY != 0 {
		t.Errorf("InitY = %v, want default 0", cfg.InitY)
	}
	if cfg.Zones != ZonesHalves || cfg.Snap != SnapSpring || cfg.Key != "ball" {
		t.Errorf("enum options not applied: %+v", cfg)
	}
}

func TestParseOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `rate = `},
		{"unknown key", `speed = 3`},
		{"bad zones", `zones = "thirds"`},
		{"bad snap", `snap = "bounce"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseOptions([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadOptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drag.toml")
	if err := os.WriteFile(path, []byte("gap = 50\nrate = 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts, err := LoadOptionsFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Gap == nil || *opts.Gap != 50 || opts.Rate == nil || *opts.Rate != 30 {
		t.Errorf("LoadOptionsFile = %+v", opts)
	}

	if _, err := LoadOptionsFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
