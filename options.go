package cubestack

// PairSelector chooses which compatible direction-set pair a solve
// uses for the front/back and left/right axes. ok must be false when
// no acceptable pair exists.
type PairSelector func(sets []DirectionSet) (frontBack, leftRight DirectionSet, ok bool)

// Option configures solver behavior.
type Option func(*config)

type config struct {
	selectPair PairSelector
}

func defaultConfig() *config {
	return &config{
		selectPair: FirstCompatiblePair,
	}
}

// WithPairSelector replaces the default first-compatible-pair policy.
// The default reproduces the reference arrangement exactly; a custom
// selector can rank the pairs returned by CompatiblePairs instead.
func WithPairSelector(sel PairSelector) Option {
	return func(c *config) {
		c.selectPair = sel
	}
}
