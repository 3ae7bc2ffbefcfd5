package strips

import "fmt"

// Problem is a STRIPS planning problem.
//
// Fluents fixes the layout of a state vector. Initial is one such vector and
// may be nil when the problem is only used to evaluate externally supplied
// states.
type Problem struct {
	Fluents []string
	Initial []bool
	Actions []Action
	Goal    []Literal

	index map[string]int // fluent → position, set by NewProblem and Decode
}

// NewProblem builds and validates a Problem. The initial state is left empty;
// set Initial or pass states directly to the consumer.
func NewProblem(fluents []string, actions []Action, goal []Literal) (*Problem, error) {
	p := &Problem{Fluents: fluents, Actions: actions, Goal: goal}
	index, err := p.validate()
	if err != nil {
		return nil, err
	}
	p.index = index

	return p, nil
}

// Validate checks that fluents are non-empty and unique, that every action is
// uniquely named and references only declared fluents, that the goal references only
// declared fluents, and that Initial (when set) matches the fluent list.
// Validate never modifies p, so it may run concurrently on a shared Problem.
func (p *Problem) Validate() error {
	_, err := p.validate()
	return err
}

// validate runs the checks of Validate and returns the fluent index it built.
func (p *Problem) validate() (map[string]int, error) {
	if p == nil {
		return nil, ErrProblemNil
	}
	if len(p.Fluents) == 0 {
		return nil, ErrNoFluents
	}

	index := make(map[string]int, len(p.Fluents))
	for i, f := range p.Fluents {
		if f == "" {
			return nil, fmt.Errorf("%w: position %d", ErrEmptyFluent, i)
		}
		if _, dup := index[f]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFluent, f)
		}
		index[f] = i
	}

	check := func(where string, lits []Literal) error {
		for _, l := range lits {
			if _, ok := index[l.Fluent]; !ok {
				return fmt.Errorf("%w: %q in %s", ErrUnknownFluent, l.Fluent, where)
			}
		}
		return nil
	}
	names := make(map[string]struct{}, len(p.Actions))
	for i, a := range p.Actions {
		if a.Name == "" {
			return nil, fmt.Errorf("%w: action #%d", ErrEmptyActionName, i)
		}
		if _, dup := names[a.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAction, a.Name)
		}
		names[a.Name] = struct{}{}
		if err := check("preconditions of "+a.Name, a.Preconditions); err != nil {
			return nil, err
		}
		if err := check("effects of "+a.Name, a.Effects); err != nil {
			return nil, err
		}
	}
	if err := check("goal", p.Goal); err != nil {
		return nil, err
	}
	if p.Initial != nil && len(p.Initial) != len(p.Fluents) {
		return nil, fmt.Errorf("%w: initial has %d values, want %d", ErrStateLength, len(p.Initial), len(p.Fluents))
	}

	return index, nil
}

// FluentIndex returns the position of fluent in the state vector.
func (p *Problem) FluentIndex(fluent string) (int, bool) {
	if p.index == nil {
		// Problems assembled by hand have no index; fall back to a scan.
		for i, f := range p.Fluents {
			if f == fluent {
				return i, true
			}
		}
		return 0, false
	}
	i, ok := p.index[fluent]

	return i, ok
}

// Literals decodes a state vector into one literal per fluent, in fluent order.
func (p *Problem) Literals(state []bool) ([]Literal, error) {
	if len(state) != len(p.Fluents) {
		return nil, fmt.Errorf("%w: got %d values, want %d", ErrStateLength, len(state), len(p.Fluents))
	}
	out := make([]Literal, len(state))
	for i, holds := range state {
		out[i] = Literal{Fluent: p.Fluents[i], Negated: !holds}
	}

	return out, nil
}

// State encodes the state in which exactly the given fluents hold.
func (p *Problem) State(trueFluents ...string) ([]bool, error) {
	state := make([]bool, len(p.Fluents))
	for _, f := range trueFluents {
		i, ok := p.FluentIndex(f)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFluent, f)
		}
		state[i] = true
	}

	return state, nil
}
