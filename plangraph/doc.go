// Package plangraph builds leveled planning graphs over STRIPS problems and
// extracts the level-sum, max-level and set-level heuristics used to guide
// forward state-space search (A*, greedy best-first).
//
// What
//
//   - A planning graph alternates literal layers and action layers, starting
//     with the literals of one state at level 0.
//   - Each expansion adds an action layer (every action whose preconditions all
//     appear in the previous literal layer, persistence actions included) and a
//     literal layer (the union of those actions' effects).
//   - Every new layer gets a symmetric, irreflexive mutex relation derived only
//     from the layer directly below it:
//   - actions: inconsistent effects, interference, competing needs and,
//     when serialization is on, any pair of non-persistence actions;
//   - literals: negation and inconsistent support.
//   - Expansion stops for good once a new literal layer is structurally
//     identical (members, producer edges, mutex pairs) to the previous one: the
//     graph has leveled off.
//
// Heuristics
//
//	LevelSum  sum over goal literals of the first level containing each goal.
//	MaxLevel  maximum of the same per-goal level costs.
//	SetLevel  first level where all goals are present and pairwise non-mutex.
//
//	LevelSum and MaxLevel saturate the graph first; SetLevel expands one layer
//	pair at a time and stops as soon as its condition holds. All three share the
//	same notion of "first level containing a literal". Goals that can never be
//	reached (or never co-exist without mutex, for SetLevel) yield Unreachable.
//
// Ownership
//
//	A Domain (the compiled problem: literal ids, the persistence + domain
//	action registry, the goal) is immutable and may be shared freely. A Graph
//	is built for one state, owned by one caller and never shared; its layers
//	only ever grow.
//
// Complexity (L = literals per layer, A = actions per layer, k = levels)
//
//   - Expansion: O(A·(p+e)) edges + O(A²·p²) action mutexes + O(L²·s²) literal
//     mutexes per level (p, e = precondition/effect sizes, s = producers).
//   - Heuristics: O(k·|goal|) scans plus the expansions they trigger; k is bounded
//     by the number of distinct literals and mutex pairs, which forces leveling off.
//
// Usage
//
//	g, err := plangraph.New(problem, problem.Initial)
//	if err != nil {
//		// ErrProblemNil, ErrDomainNil or a wrapped strips error
//	}
//	h := g.SetLevel()
//
//	// Share one compiled domain across many states:
//	dom, _ := plangraph.Compile(problem)
//	g1, _ := dom.NewGraph(s1, plangraph.WithSerialize(false))
//	g2, _ := dom.NewGraph(s2, plangraph.WithIgnoreMutexes())
//
// Errors
//
//   - ErrProblemNil       nil problem passed to Compile or New.
//   - ErrDomainNil        method called on a nil *Domain.
//   - ErrLevelOutOfRange  inspection of a level that has not been built.
//   - ErrNodeAbsent       mutex query about a literal/action absent from the level.
//   - ErrUnknownHeuristic ParseHeuristic got an unrecognised name.
//   - strips.ErrStateLength and other strips validation errors, wrapped.
package plangraph
