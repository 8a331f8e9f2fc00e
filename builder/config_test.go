// Package builder contains unit tests for builderConfig and BuilderOption.
package builder

import (
	"math/rand"
	"testing"
)

// TestConfigDefaults verifies the zero-option configuration.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if got := cfg.idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil")
	}
	if got := cfg.metricFn(nil); got != DefaultMetrics {
		t.Errorf("default metricFn: expected %+v, got %+v", DefaultMetrics, got)
	}
	if cfg.oneWay || cfg.category != "" {
		t.Errorf("default link policy: oneWay=%v category=%q", cfg.oneWay, cfg.category)
	}
}

// TestOptionsOverride verifies that later options win.
func TestOptionsOverride(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithSymbolIDs(), WithSymbNumb("L"), WithCategory("bus"), WithOneWay())
	if got := cfg.idFn(3); got != "L3" {
		t.Errorf("expected last ID scheme to win, got %q", got)
	}
	if cfg.category != "bus" || !cfg.oneWay {
		t.Errorf("category/oneWay not applied: %+v", cfg)
	}

	a := newBuilderConfig(WithSeed(9), WithUniformMetrics(1, 10))
	b := newBuilderConfig(WithRand(rand.New(rand.NewSource(9))), WithUniformMetrics(1, 10))
	for i := 0; i < 5; i++ {
		ma, mb := a.metricFn(a.rng), b.metricFn(b.rng)
		if ma != mb {
			t.Fatalf("seeded metric streams diverged at %d: %+v vs %+v", i, ma, mb)
		}
		if ma.Distance < 1 || ma.Distance > 10 {
			t.Fatalf("distance %g outside [1,10]", ma.Distance)
		}
	}
}

// TestOptionPanics verifies fail-fast option constructors.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"WithIDScheme(nil)":   func() { WithIDScheme(nil) },
		"WithRand(nil)":       func() { WithRand(nil) },
		"WithMetricFn(nil)":   func() { WithMetricFn(nil) },
		"ConstantMetricFn(-)": func() { ConstantMetricFn(Metrics{Distance: -1}) },
		"UniformMetricFn":     func() { UniformMetricFn(5, 1) },
		"SymbolIDFn(26)":      func() { SymbolIDFn(26) },
	}
	for name, fn := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
