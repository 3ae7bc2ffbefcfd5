package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlplan/strips"
)

var version = "dev"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose bool
	json    bool
}

// SetVersion sets the version reported by --version and the version command.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// newRootCmd assembles the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:     "lvlplan",
		Version: version,
		Short:   "Planning-graph heuristics for STRIPS problems",
		Long: `lvlplan builds planning graphs for STRIPS problems described in YAML and
reports the level-sum, max-level and set-level estimates of their states.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Log graph construction at debug level")
	root.PersistentFlags().BoolVar(&g.json, "json", false, "Output in JSON format")

	root.AddCommand(
		newEvalCmd(g),
		newLevelsCmd(g),
		&cobra.Command{
			Use:   "version",
			Short: "Print the lvlplan version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			},
		},
	)

	return root
}

// Execute runs the CLI with os.Args, cancelling on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

// newLogger builds a production logger writing to stderr, at debug level
// when verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Sampling = nil
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return log, nil
}

// parseState turns a comma-separated list of true fluents into a state
// vector. Blank entries are skipped, so "" is the all-false state.
func parseState(p *strips.Problem, raw string) ([]bool, error) {
	var fluents []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fluents = append(fluents, f)
		}
	}

	return p.State(fluents...)
}

// trueFluents lists the fluents that hold in state.
func trueFluents(p *strips.Problem, state []bool) []string {
	out := make([]string, 0, len(state))
	for i, v := range state {
		if v {
			out = append(out, p.Fluents[i])
		}
	}

	return out
}

// loadStates loads the problem file and resolves the requested states,
// falling back to the problem's initial state.
func loadStates(path string, raw []string) (*strips.Problem, [][]bool, error) {
	p, err := strips.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	if len(raw) == 0 {
		return p, [][]bool{p.Initial}, nil
	}

	states := make([][]bool, len(raw))
	for i, r := range raw {
		if states[i], err = parseState(p, r); err != nil {
			return nil, nil, fmt.Errorf("--state %q: %w", r, err)
		}
	}

	return p, states, nil
}
