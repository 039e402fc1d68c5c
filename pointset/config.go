// SPDX-License-Identifier: MIT
package pointset

import "math/rand"

// Option customizes a generator before it runs.
//
// As a rule, option constructors never panic and ignore nil/zero inputs
// that would otherwise be no-ops.
type Option func(cfg *config)

type config struct {
	rng    *rand.Rand
	jitter float64 // fraction of the generator's natural spacing to perturb by
}

func newConfig(opts ...Option) *config {
	cfg := &config{rng: rand.New(rand.NewSource(1)), jitter: 0}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds the generator's RNG for reproducible output. Every
// generator defaults to a fixed seed even without this option, so
// plain calls are deterministic; use WithSeed to pick a different
// deterministic stream, and WithRand for a caller-owned source.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs a caller-owned RNG. A nil rng is a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithJitter perturbs each generated point by up to +/- jitter times
// the generator's natural spacing, in both x and y, independently.
// Grid, Regular, and Collinear all honor this; Uniform ignores it (its
// output is already unstructured noise). A negative jitter is a no-op.
func WithJitter(jitter float64) Option {
	return func(cfg *config) {
		if jitter > 0 {
			cfg.jitter = jitter
		}
	}
}
