package plangraph_test

import (
	"fmt"

	"github.com/katalvlaran/lvlplan/plangraph"
	"github.com/katalvlaran/lvlplan/strips"
)

// cakeProblem builds the have-cake-and-eat-it-too problem without testing helpers.
func cakeProblem() *strips.Problem {
	have, eaten := "Have(Cake)", "Eaten(Cake)"
	p, err := strips.NewProblem(
		[]string{have, eaten},
		[]strips.Action{
			{
				Name:          "Eat(Cake)",
				Preconditions: []strips.Literal{strips.Pos(have)},
				Effects:       []strips.Literal{strips.Pos(eaten), strips.Neg(have)},
			},
			{
				Name:          "Bake(Cake)",
				Preconditions: []strips.Literal{strips.Neg(have)},
				Effects:       []strips.Literal{strips.Pos(have)},
			},
		},
		[]strips.Literal{strips.Pos(have), strips.Pos(eaten)},
	)
	if err != nil {
		panic(err)
	}
	p.Initial, _ = p.State(have)

	return p
}

// ExampleGraph_heuristics computes all three estimates for the cake problem.
// Eaten(Cake) first appears at level 1, but only together with a mutex on
// Have(Cake); the two goals can co-exist from level 2 on.
func ExampleGraph_heuristics() {
	p := cakeProblem()

	for _, h := range plangraph.Heuristics() {
		g, err := plangraph.New(p, p.Initial)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		v, _ := g.Estimate(h)
		fmt.Printf("%s=%d\n", h, v)
	}
	// Output:
	// levelsum=1
	// maxlevel=1
	// setlevel=2
}

// ExampleGraph_Literals shows the first expansion: every literal of both
// fluents is reachable after one level.
func ExampleGraph_Literals() {
	p := cakeProblem()
	g, _ := plangraph.New(p, p.Initial)
	g.Expand()

	for level := 0; level < g.Levels(); level++ {
		lits, _ := g.Literals(level)
		fmt.Println(level, lits)
	}
	m, _ := g.LiteralMutex(1, strips.Pos("Have(Cake)"), strips.Pos("Eaten(Cake)"))
	fmt.Println("Have/Eaten mutex at 1:", m)
	// Output:
	// 0 [Have(Cake) ~Eaten(Cake)]
	// 1 [Have(Cake) ~Have(Cake) Eaten(Cake) ~Eaten(Cake)]
	// Have/Eaten mutex at 1: true
}

// ExampleDomain_NewGraph shares one compiled domain between states.
func ExampleDomain_NewGraph() {
	d, err := plangraph.Compile(cakeProblem())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, state := range [][]bool{{true, false}, {false, false}, {true, true}} {
		g, _ := d.NewGraph(state)
		fmt.Println(state, g.SetLevel())
	}
	// Output:
	// [true false] 2
	// [false false] 3
	// [true true] 0
}
