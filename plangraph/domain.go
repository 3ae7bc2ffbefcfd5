package plangraph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlplan/strips"
)

// literalID indexes a literal in a Domain: 2*fluent for the positive literal,
// 2*fluent+1 for the negative one. Negation flips the low bit.
type literalID int

// actionID indexes an action in a Domain's registry. The persistence action
// of literal k has actionID k; domain actions follow.
type actionID int

func (l literalID) negate() literalID { return l ^ 1 }

// actionNode is one entry of the action registry.
type actionNode struct {
	action      strips.Action
	pre         []literalID // sorted, unique
	eff         []literalID // sorted, unique
	persistence bool
}

// Domain is a compiled, immutable view of a strips.Problem: literal ids, the
// registry of persistence and domain actions, and the goal set. A Domain is
// safe for concurrent use by any number of graphs.
type Domain struct {
	problem *strips.Problem
	fluents []string
	fluent  map[string]int
	actions []actionNode
	byName  map[string]actionID
	goal    []literalID // sorted, unique
}

// Compile validates p and builds its Domain.
// The persistence actions (two per fluent) are created here once.
func Compile(p *strips.Problem) (*Domain, error) {
	// 1. Validate input
	if p == nil {
		return nil, ErrProblemNil
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("plangraph: %w", err)
	}

	d := &Domain{
		problem: p,
		fluents: slices.Clone(p.Fluents),
		fluent:  make(map[string]int, len(p.Fluents)),
	}
	for i, f := range d.fluents {
		d.fluent[f] = i
	}

	// 2. Registry: persistence actions first, so that actionID(k) persists literalID(k)
	noops := strips.PersistenceActions(d.fluents)
	d.actions = make([]actionNode, 0, len(noops)+len(p.Actions))
	d.byName = make(map[string]actionID, cap(d.actions))
	for _, a := range slices.Concat(noops, p.Actions) {
		if _, dup := d.byName[a.Name]; dup {
			return nil, fmt.Errorf("plangraph: %w: %q", strips.ErrDuplicateAction, a.Name)
		}
		d.byName[a.Name] = actionID(len(d.actions))
		d.actions = append(d.actions, actionNode{
			action:      a,
			pre:         d.literalSet(a.Preconditions),
			eff:         d.literalSet(a.Effects),
			persistence: a.Persistence,
		})
	}

	// 3. Goal set
	d.goal = d.literalSet(p.Goal)

	return d, nil
}

// Problem returns the problem the domain was compiled from.
func (d *Domain) Problem() *strips.Problem { return d.problem }

// literalSet converts validated literals to a sorted, de-duplicated id slice.
func (d *Domain) literalSet(lits []strips.Literal) []literalID {
	out := make([]literalID, 0, len(lits))
	for _, l := range lits {
		id, _ := d.literalID(l)
		out = append(out, id)
	}
	slices.Sort(out)

	return slices.Compact(out)
}

func (d *Domain) literalID(l strips.Literal) (literalID, bool) {
	i, ok := d.fluent[l.Fluent]
	if !ok {
		return 0, false
	}
	id := literalID(2 * i)
	if l.Negated {
		id++
	}

	return id, true
}

func (d *Domain) literal(id literalID) strips.Literal {
	return strips.Literal{Fluent: d.fluents[id/2], Negated: id&1 == 1}
}

func (d *Domain) numLiterals() int { return 2 * len(d.fluents) }

// stateLiterals encodes a state vector as literal ids, one per fluent.
func (d *Domain) stateLiterals(state []bool) ([]literalID, error) {
	if len(state) != len(d.fluents) {
		return nil, fmt.Errorf("plangraph: %w: got %d values, want %d",
			strips.ErrStateLength, len(state), len(d.fluents))
	}
	out := make([]literalID, len(state))
	for i, holds := range state {
		out[i] = literalID(2 * i)
		if !holds {
			out[i]++
		}
	}

	return out, nil
}
