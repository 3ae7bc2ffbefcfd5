package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlplan/estimate"
	"github.com/katalvlaran/lvlplan/plangraph"
)

type evalFlags struct {
	states        []string
	heuristic     string
	noSerialize   bool
	ignoreMutexes bool
	concurrency   int
}

// evalResult is the JSON form of one evaluated state. Unreachable values are null.
type evalResult struct {
	State  []string        `json:"state"`
	Values map[string]*int `json:"values"`
}

func newEvalCmd(g *globalFlags) *cobra.Command {
	f := &evalFlags{}

	cmd := &cobra.Command{
		Use:   "eval FILE",
		Short: "Estimate the distance from states to the goal",
		Long: `Evaluate the planning-graph heuristics of one or more states of the problem
in FILE. Each --state is a comma-separated list of the fluents that hold; the
others are false. Without --state the problem's initial state is used.`,
		Example: `  lvlplan eval cake.yaml
  lvlplan eval cargo.yaml --heuristic setlevel --state "At(C1, SFO),At(P1, JFK)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, g, f, args[0])
		},
	}

	cmd.Flags().StringArrayVar(&f.states, "state", nil, "True fluents, comma-separated (repeatable)")
	cmd.Flags().StringVar(&f.heuristic, "heuristic", "all", "all, levelsum, maxlevel or setlevel")
	cmd.Flags().BoolVar(&f.noSerialize, "no-serialize", false, "Let independent actions share a level")
	cmd.Flags().BoolVar(&f.ignoreMutexes, "ignore-mutexes", false, "Skip mutex computation")
	cmd.Flags().IntVar(&f.concurrency, "concurrency", 0, "States evaluated at once (0 = GOMAXPROCS)")

	return cmd
}

// selectHeuristics resolves the --heuristic flag.
func selectHeuristics(name string) ([]plangraph.Heuristic, error) {
	if strings.EqualFold(strings.TrimSpace(name), "all") {
		return plangraph.Heuristics(), nil
	}
	h, err := plangraph.ParseHeuristic(name)
	if err != nil {
		return nil, err
	}

	return []plangraph.Heuristic{h}, nil
}

func runEval(cmd *cobra.Command, g *globalFlags, f *evalFlags, path string) error {
	// 1. Inputs
	hs, err := selectHeuristics(f.heuristic)
	if err != nil {
		return err
	}
	p, states, err := loadStates(path, f.states)
	if err != nil {
		return err
	}
	log, err := newLogger(g.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// 2. Evaluation
	graphOpts := []plangraph.Option{plangraph.WithSerialize(!f.noSerialize)}
	if f.ignoreMutexes {
		graphOpts = append(graphOpts, plangraph.WithIgnoreMutexes())
	}
	ev, err := estimate.NewEvaluator(p,
		estimate.WithLogger(log),
		estimate.WithConcurrency(f.concurrency),
		estimate.WithGraphOptions(graphOpts...),
	)
	if err != nil {
		return err
	}
	defer ev.Close()

	values, err := ev.EvaluateAll(cmd.Context(), states)
	if err != nil {
		return err
	}

	// 3. Output
	out := cmd.OutOrStdout()
	if g.json {
		results := make([]evalResult, len(states))
		for i, state := range states {
			results[i] = evalResult{State: trueFluents(p, state), Values: make(map[string]*int, len(hs))}
			for _, h := range hs {
				var v *int
				if n := values[i].Get(h); n != plangraph.Unreachable {
					v = &n
				}
				results[i].Values[h.String()] = v
			}
		}
		return writeJSON(out, results)
	}

	for i, state := range states {
		if i > 0 {
			fmt.Fprintln(out)
		}
		_, _ = headerColor.Fprintf(out, "state {%s}\n", strings.Join(trueFluents(p, state), ", "))
		for _, h := range hs {
			writeLabelValue(out, h.String(), formatValue(values[i].Get(h)))
		}
	}

	return nil
}
