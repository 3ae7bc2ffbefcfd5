package plangraph_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlplan/strips"
)

// lits builds literals from "X" / "~X" strings.
func lits(t testing.TB, in ...string) []strips.Literal {
	t.Helper()
	out := make([]strips.Literal, len(in))
	for i, s := range in {
		l, err := strips.ParseLiteral(s)
		require.NoError(t, err)
		out[i] = l
	}

	return out
}

func act(t testing.TB, name string, pre, eff []string) strips.Action {
	t.Helper()
	return strips.Action{Name: name, Preconditions: lits(t, pre...), Effects: lits(t, eff...)}
}

// problem validates a problem and sets its initial state to trueFluents.
func problem(t testing.TB, fluents []string, actions []strips.Action, goal []string, trueFluents ...string) *strips.Problem {
	t.Helper()
	p, err := strips.NewProblem(fluents, actions, lits(t, goal...))
	require.NoError(t, err)
	p.Initial, err = p.State(trueFluents...)
	require.NoError(t, err)

	return p
}

// haveCake: Have(Cake) holds, goal Have ∧ Eaten.
// Eaten first appears at level 1 but is mutex with Have there; Bake frees the
// pair at level 2.
func haveCake(t testing.TB) *strips.Problem {
	return problem(t,
		[]string{"Have(Cake)", "Eaten(Cake)"},
		[]strips.Action{
			act(t, "Eat(Cake)", []string{"Have(Cake)"}, []string{"Eaten(Cake)", "~Have(Cake)"}),
			act(t, "Bake(Cake)", []string{"~Have(Cake)"}, []string{"Have(Cake)"}),
		},
		[]string{"Have(Cake)", "Eaten(Cake)"},
		"Have(Cake)",
	)
}

// twoStep: G1 is one action away, G2 needs A first. Nothing conflicts.
func twoStep(t testing.TB) *strips.Problem {
	return problem(t,
		[]string{"A", "G1", "G2"},
		[]strips.Action{
			act(t, "Step1", []string{"~G1"}, []string{"G1"}),
			act(t, "StepA", []string{"~A"}, []string{"A"}),
			act(t, "StepB", []string{"A"}, []string{"G2"}),
		},
		[]string{"G1", "G2"},
	)
}

// exclusive: X and Y are each one action away, but every way of making one
// destroys the other, at every level.
func exclusive(t testing.TB) *strips.Problem {
	return problem(t,
		[]string{"X", "Y"},
		[]strips.Action{
			act(t, "MakeX", nil, []string{"X", "~Y"}),
			act(t, "MakeY", nil, []string{"Y", "~X"}),
		},
		[]string{"X", "Y"},
	)
}

// unreachable: no action produces Z.
func unreachable(t testing.TB) *strips.Problem {
	return problem(t,
		[]string{"Z", "W"},
		[]strips.Action{act(t, "MakeW", []string{"~W"}, []string{"W"})},
		[]string{"Z", "W"},
	)
}

// airCargo is the classic two-cargo, two-plane, two-airport problem.
func airCargo(t testing.TB) *strips.Problem {
	cargos := []string{"C1", "C2"}
	planes := []string{"P1", "P2"}
	ports := []string{"SFO", "JFK"}
	at := func(x, a string) string { return fmt.Sprintf("At(%s, %s)", x, a) }
	in := func(c, p string) string { return fmt.Sprintf("In(%s, %s)", c, p) }

	var fluents []string
	for _, x := range append(append([]string{}, cargos...), planes...) {
		for _, a := range ports {
			fluents = append(fluents, at(x, a))
		}
	}
	for _, c := range cargos {
		for _, p := range planes {
			fluents = append(fluents, in(c, p))
		}
	}

	var actions []strips.Action
	for _, c := range cargos {
		for _, p := range planes {
			for _, a := range ports {
				actions = append(actions,
					act(t, fmt.Sprintf("Load(%s, %s, %s)", c, p, a),
						[]string{at(c, a), at(p, a)}, []string{in(c, p), "~" + at(c, a)}),
					act(t, fmt.Sprintf("Unload(%s, %s, %s)", c, p, a),
						[]string{in(c, p), at(p, a)}, []string{at(c, a), "~" + in(c, p)}),
				)
			}
		}
	}
	for _, p := range planes {
		for _, from := range ports {
			for _, to := range ports {
				if from != to {
					actions = append(actions, act(t, fmt.Sprintf("Fly(%s, %s, %s)", p, from, to),
						[]string{at(p, from)}, []string{at(p, to), "~" + at(p, from)}))
				}
			}
		}
	}

	return problem(t, fluents, actions,
		[]string{at("C1", "JFK"), at("C2", "SFO")},
		at("C1", "SFO"), at("C2", "JFK"), at("P1", "SFO"), at("P2", "JFK"),
	)
}
