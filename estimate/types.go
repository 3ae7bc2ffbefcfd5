package estimate

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlplan/plangraph"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("estimate: invalid option supplied")

// DefaultCacheSize is the default number of memoised states.
const DefaultCacheSize = 1 << 14

// Values holds the three planning-graph estimates of one state.
type Values struct {
	LevelSum int `json:"levelsum"`
	MaxLevel int `json:"maxlevel"`
	SetLevel int `json:"setlevel"`
}

// Get returns the value of heuristic h (0 for unknown heuristics).
func (v Values) Get(h plangraph.Heuristic) int {
	switch h {
	case plangraph.LevelSum:
		return v.LevelSum
	case plangraph.MaxLevel:
		return v.MaxLevel
	case plangraph.SetLevel:
		return v.SetLevel
	}

	return 0
}

// Option configures an Evaluator.
type Option func(*config)

type config struct {
	graphOpts   []plangraph.Option
	logger      *zap.Logger
	concurrency int
	cacheSize   int64
	err         error
}

func defaultConfig() config {
	return config{
		logger:      zap.NewNop(),
		concurrency: runtime.GOMAXPROCS(0),
		cacheSize:   DefaultCacheSize,
	}
}

// WithGraphOptions passes opts to every graph the Evaluator builds.
func WithGraphOptions(opts ...plangraph.Option) Option {
	return func(c *config) { c.graphOpts = append(c.graphOpts, opts...) }
}

// WithLogger sets the logger used by the Evaluator and its graphs.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithConcurrency bounds the number of states EvaluateAll works on at once.
//
//	n > 0:  at most n goroutines
//	n == 0: GOMAXPROCS
//	n < 0:  ErrOptionViolation
func WithConcurrency(n int) Option {
	return func(c *config) {
		switch {
		case n < 0:
			c.err = fmt.Errorf("%w: concurrency cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			c.concurrency = runtime.GOMAXPROCS(0)
		default:
			c.concurrency = n
		}
	}
}

// WithCacheSize sets how many states are memoised. Zero disables the cache.
// A negative size is an ErrOptionViolation.
func WithCacheSize(n int64) Option {
	return func(c *config) {
		if n < 0 {
			c.err = fmt.Errorf("%w: cache size cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		c.cacheSize = n
	}
}
