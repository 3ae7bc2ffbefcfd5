package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlplan/plangraph"
	"github.com/katalvlaran/lvlplan/strips"
)

type levelsFlags struct {
	state         string
	maxLevels     int
	noSerialize   bool
	ignoreMutexes bool
	literals      bool
}

// levelRow is the JSON form of one graph level.
type levelRow struct {
	Level          int      `json:"level"`
	Literals       int      `json:"literals"`
	Actions        int      `json:"actions"`
	LiteralMutexes int      `json:"literal_mutexes"`
	ActionMutexes  int      `json:"action_mutexes"`
	Leveled        bool     `json:"leveled"`
	Members        []string `json:"members,omitempty"`
}

func newLevelsCmd(g *globalFlags) *cobra.Command {
	f := &levelsFlags{}

	cmd := &cobra.Command{
		Use:   "levels FILE",
		Short: "Print per-level statistics of the planning graph",
		Long: `Expand the planning graph of the problem in FILE until it levels off, or
until --max-levels layer pairs were added, and print one row per literal level.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLevels(cmd, g, f, args[0])
		},
	}

	cmd.Flags().StringVar(&f.state, "state", "", "True fluents, comma-separated (default: initial state)")
	cmd.Flags().IntVar(&f.maxLevels, "max-levels", -1, "Stop after N expansions (negative = until leveled)")
	cmd.Flags().BoolVar(&f.noSerialize, "no-serialize", false, "Let independent actions share a level")
	cmd.Flags().BoolVar(&f.ignoreMutexes, "ignore-mutexes", false, "Skip mutex computation")
	cmd.Flags().BoolVar(&f.literals, "literals", false, "List the literals of every level")

	return cmd
}

func runLevels(cmd *cobra.Command, g *globalFlags, f *levelsFlags, path string) error {
	var raw []string
	if cmd.Flags().Changed("state") {
		raw = []string{f.state}
	}
	p, states, err := loadStates(path, raw)
	if err != nil {
		return err
	}
	log, err := newLogger(g.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	opts := []plangraph.Option{plangraph.WithSerialize(!f.noSerialize), plangraph.WithLogger(log)}
	if f.ignoreMutexes {
		opts = append(opts, plangraph.WithIgnoreMutexes())
	}
	graph, err := plangraph.New(p, states[0], opts...)
	if err != nil {
		return err
	}
	graph.Fill(f.maxLevels)

	rows, err := levelRows(graph, f.literals)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if g.json {
		return writeJSON(out, rows)
	}

	table := make([][]string, len(rows))
	for i, r := range rows {
		table[i] = []string{
			strconv.Itoa(r.Level),
			strconv.Itoa(r.Literals),
			strconv.Itoa(r.Actions),
			strconv.Itoa(r.LiteralMutexes),
			strconv.Itoa(r.ActionMutexes),
			strconv.FormatBool(r.Leveled),
		}
	}
	writeTable(out, []string{"level", "literals", "actions", "lit-mutex", "act-mutex", "leveled"}, table)
	if !graph.Leveled() {
		_, _ = warnColor.Fprintf(out, "stopped after %d levels before leveling off\n", graph.Levels())
	}
	if f.literals {
		for _, r := range rows {
			fmt.Fprintf(out, "\n")
			writeLabelValue(out, "L"+strconv.Itoa(r.Level), strings.Join(r.Members, " "))
		}
	}

	return nil
}

func levelRows(graph *plangraph.Graph, withMembers bool) ([]levelRow, error) {
	stats := graph.Stats()
	rows := make([]levelRow, len(stats))
	for i, s := range stats {
		rows[i] = levelRow{
			Level:          s.Level,
			Literals:       s.Literals,
			Actions:        s.Actions,
			LiteralMutexes: s.LiteralMutexes,
			ActionMutexes:  s.ActionMutexes,
			Leveled:        s.Leveled,
		}
		if !withMembers {
			continue
		}
		lits, err := graph.Literals(s.Level)
		if err != nil {
			return nil, err
		}
		rows[i].Members = literalStrings(lits)
	}

	return rows, nil
}

func literalStrings(lits []strips.Literal) []string {
	out := make([]string, len(lits))
	for i, l := range lits {
		out[i] = l.String()
	}

	return out
}
