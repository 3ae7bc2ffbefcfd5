// Package estimate evaluates planning-graph heuristics for the states a
// search algorithm expands.
//
// An Evaluator compiles a problem once and then builds a fresh
// plangraph.Graph for every state it is asked about, so graphs are never
// shared between states or goroutines. Results are memoised per state in a
// bounded in-memory cache.
//
// Usage
//
//	e, err := estimate.NewEvaluator(problem,
//		estimate.WithConcurrency(8),
//		estimate.WithGraphOptions(plangraph.WithSerialize(true)),
//	)
//	if err != nil {
//		// plangraph / strips validation errors, ErrOptionViolation
//	}
//	defer e.Close()
//
//	v, err := e.Evaluate(state)          // all three estimates for one state
//	vs, err := e.EvaluateAll(ctx, states) // in input order, bounded fan-out
//	h := e.Func(plangraph.SetLevel)       // func(state) (int, error) for A*
//
// Errors
//
//   - ErrOptionViolation  invalid option (negative concurrency or cache size).
//   - strips.ErrStateLength, wrapped, for malformed states.
//   - ctx.Err() when EvaluateAll is cancelled.
package estimate
