// Package lvlplan builds planning graphs for propositional STRIPS problems
// and turns them into admissible-style distance estimates for a search
// algorithm.
//
// 🚀 What is lvlplan?
//
//	A small, dependency-light library that brings together:
//		• STRIPS problems: fluents, literals, actions, goals, YAML loading
//		• Planning graphs: alternating literal/action layers with mutexes
//		• Heuristics: level-sum, max-level, set-level
//		• Host helpers: memoised, concurrent per-state evaluation
//
// ✨ Why lvlplan?
//
//   - Compiled domains: actions and literals are interned once per problem
//   - Cheap expansion: dense arenas, integer IDs, no pointer graphs
//   - Leveling off: expansion stops by itself when nothing changes
//   - Observable: zap logging and an OnExpand hook on every level
//
// Packages:
//
//	strips/      problem model, state encoding, YAML decoding
//	plangraph/   graph construction, mutex rules, heuristics, inspection
//	estimate/    Evaluator for search hosts (cache + bounded fan-out)
//	cmd/lvlplan  command-line front end (eval, levels)
//
// Quick picture of the first expansion of the cake problem:
//
//	L0: Have ~Eaten ──▶ A0: Eat, NoOps ──▶ L1: Have ~Have Eaten ~Eaten
//
//	go get github.com/katalvlaran/lvlplan/plangraph
package lvlplan
