// Package strips defines the STRIPS problem representation consumed by the
// planning-graph heuristics: literals, actions, persistence (no-op) actions and
// problems with an ordered fluent list.
//
// What
//
//   - Literal: a fluent with a polarity. Two literals negate each other iff they
//     name the same fluent with opposite polarity.
//   - Action: a named precondition set and effect set. Persistence actions carry
//     one literal unchanged to the next level.
//   - Problem: the ordered fluent list (the layout of a boolean state vector),
//     the initial state, the action list and the goal literals.
//
// State encoding
//
//	A state is a []bool aligned with Problem.Fluents: state[i] == true means
//	Fluents[i] holds, false means its negation holds. Problem.Literals turns a
//	state into the literal list that seeds level 0 of a planning graph.
//
// YAML
//
//	Problems can be loaded from YAML with Decode or LoadFile:
//
//	fluents: [Have(Cake), Eaten(Cake)]
//	initial: [Have(Cake)]
//	goal: [Have(Cake), Eaten(Cake)]
//	actions:
//	  - name: Eat(Cake)
//	    precond: [Have(Cake)]
//	    effect: [Eaten(Cake), ~Have(Cake)]
//
//	Fluents listed under "initial" are true, every other fluent is false.
//
// Errors
//
//   - ErrProblemNil        nil *Problem passed where a problem is required.
//   - ErrNoFluents         problem declares no fluents.
//   - ErrEmptyFluent       a fluent name is empty.
//   - ErrDuplicateFluent   a fluent is declared twice.
//   - ErrUnknownFluent     a literal references an undeclared fluent.
//   - ErrEmptyActionName   an action has no name.
//   - ErrDuplicateAction   two actions share a name.
//   - ErrStateLength       state vector length differs from len(Fluents).
//   - ErrBadLiteral        a literal string cannot be parsed.
package strips
