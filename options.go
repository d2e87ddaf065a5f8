package vector

import (
	"github.com/go-kit/log"
)

// DefaultGrowthFactor is the capacity multiplier applied when an append or
// insert finds the vector full.
const DefaultGrowthFactor = 2

type config struct {
	logger       log.Logger
	instr        *Instrumentation
	growthFactor int
}

func defaultConfig() *config {
	return &config{
		logger:       log.NewNopLogger(),
		growthFactor: DefaultGrowthFactor,
	}
}

// Option configures a Vector.
type Option func(*config)

// WithLogger sets the logger used for reallocation debug lines.
// A nil logger is ignored.
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithInstrumentation attaches Prometheus counters to the vector.
func WithInstrumentation(i *Instrumentation) Option {
	return func(c *config) {
		c.instr = i
	}
}

// WithGrowthFactor sets the capacity multiplier used on full appends and
// inserts. Factors below 2 are ignored.
func WithGrowthFactor(f int) Option {
	return func(c *config) {
		if f >= 2 {
			c.growthFactor = f
		}
	}
}

func newConfig(opts []Option) *config {
	c := defaultConfig()
	for _, o := range opts {
		o(c)
	}
	return c
}
