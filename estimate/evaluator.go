package estimate

import (
	"context"
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlplan/plangraph"
	"github.com/katalvlaran/lvlplan/strips"
)

// Evaluator computes heuristic values for states of one problem.
// It is safe for concurrent use.
type Evaluator struct {
	dom         *plangraph.Domain
	graphOpts   []plangraph.Option
	log         *zap.Logger
	concurrency int
	cache       *ristretto.Cache[string, Values] // nil when disabled
}

// NewEvaluator compiles p and prepares the cache.
func NewEvaluator(p *strips.Problem, opts ...Option) (*Evaluator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	dom, err := plangraph.Compile(p)
	if err != nil {
		return nil, err
	}

	e := &Evaluator{
		dom:         dom,
		graphOpts:   append([]plangraph.Option{plangraph.WithLogger(cfg.logger)}, cfg.graphOpts...),
		log:         cfg.logger,
		concurrency: cfg.concurrency,
	}
	if cfg.cacheSize > 0 {
		e.cache, err = ristretto.NewCache(&ristretto.Config[string, Values]{
			NumCounters: 10 * cfg.cacheSize,
			MaxCost:     cfg.cacheSize,
			BufferItems: 64,
		})
		if err != nil {
			return nil, fmt.Errorf("estimate: cache: %w", err)
		}
	}

	return e, nil
}

// Close releases the cache. The Evaluator keeps working without memoisation.
func (e *Evaluator) Close() {
	if e.cache != nil {
		e.cache.Close()
	}
}

// Domain returns the compiled problem.
func (e *Evaluator) Domain() *plangraph.Domain { return e.dom }

// Evaluate builds a graph for state and returns all three estimates.
func (e *Evaluator) Evaluate(state []bool) (Values, error) {
	key := stateKey(state)
	if e.cache != nil {
		if v, ok := e.cache.Get(key); ok {
			return v, nil
		}
	}

	g, err := e.dom.NewGraph(state, e.graphOpts...)
	if err != nil {
		return Values{}, err
	}
	// SetLevel first; LevelSum and MaxLevel then fill the same graph.
	v := Values{SetLevel: g.SetLevel()}
	v.LevelSum = g.LevelSum()
	v.MaxLevel = g.MaxLevel()

	if e.cache != nil {
		e.cache.Set(key, v, 1)
	}
	e.log.Debug("state evaluated",
		zap.String("state", key),
		zap.Int("levels", g.Levels()),
		zap.Int("levelsum", v.LevelSum),
		zap.Int("maxlevel", v.MaxLevel),
		zap.Int("setlevel", v.SetLevel))

	return v, nil
}

// Func returns a single-heuristic estimator for a search host. Each call
// builds its own graph and expands it only as far as h requires; cached
// Values are used when present. For an unknown h every call fails with
// plangraph.ErrUnknownHeuristic.
func (e *Evaluator) Func(h plangraph.Heuristic) func(state []bool) (int, error) {
	if !h.Valid() {
		err := fmt.Errorf("estimate: %w: %s", plangraph.ErrUnknownHeuristic, h)
		return func([]bool) (int, error) { return 0, err }
	}

	return func(state []bool) (int, error) {
		if e.cache != nil {
			if v, ok := e.cache.Get(stateKey(state)); ok {
				return v.Get(h), nil
			}
		}
		g, err := e.dom.NewGraph(state, e.graphOpts...)
		if err != nil {
			return 0, err
		}

		return g.Estimate(h)
	}
}

// EvaluateAll evaluates states concurrently and returns their values in
// input order. The first error, or cancellation of ctx, aborts the batch.
func (e *Evaluator) EvaluateAll(ctx context.Context, states [][]bool) ([]Values, error) {
	out := make([]Values, len(states))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, state := range states {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := e.Evaluate(state)
			if err != nil {
				return fmt.Errorf("estimate: state %d: %w", i, err)
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.log.Debug("batch evaluated", zap.Int("states", len(states)))

	return out, nil
}

// stateKey encodes a state vector as a string of '0' and '1'.
func stateKey(state []bool) string {
	b := make([]byte, len(state))
	for i, v := range state {
		b[i] = '0'
		if v {
			b[i] = '1'
		}
	}

	return string(b)
}
