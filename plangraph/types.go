package plangraph

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
)

// Sentinel errors for graph construction and inspection.
var (
	// ErrProblemNil is returned when Compile or New receive a nil problem.
	ErrProblemNil = errors.New("plangraph: problem is nil")

	// ErrDomainNil is returned when NewGraph is called on a nil *Domain.
	ErrDomainNil = errors.New("plangraph: domain is nil")

	// ErrLevelOutOfRange is returned when inspecting a level that was not built.
	ErrLevelOutOfRange = errors.New("plangraph: level out of range")

	// ErrNodeAbsent is returned when a mutex query names a node that is not
	// present in the queried layer.
	ErrNodeAbsent = errors.New("plangraph: node absent from layer")

	// ErrUnknownHeuristic is returned by ParseHeuristic for unknown names.
	ErrUnknownHeuristic = errors.New("plangraph: unknown heuristic")
)

// Unreachable is returned by the heuristics when the goal can never be
// satisfied: a goal literal never appears, or (SetLevel only) the goals never
// appear together without a mutex pair, even after the graph leveled off.
const Unreachable = math.MaxInt

// Heuristic selects one of the planning-graph estimates.
type Heuristic int

const (
	// LevelSum sums the level costs of the goal literals.
	LevelSum Heuristic = iota
	// MaxLevel takes the largest level cost of any goal literal.
	MaxLevel
	// SetLevel is the first level where all goals appear pairwise non-mutex.
	SetLevel
)

var heuristicNames = [...]string{
	LevelSum: "levelsum",
	MaxLevel: "maxlevel",
	SetLevel: "setlevel",
}

// Heuristics lists every heuristic in a stable order.
func Heuristics() []Heuristic { return []Heuristic{LevelSum, MaxLevel, SetLevel} }

// Valid reports whether h names one of the known heuristics.
func (h Heuristic) Valid() bool { return h >= 0 && int(h) < len(heuristicNames) }

func (h Heuristic) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}

	return heuristicNames[h]
}

// ParseHeuristic maps "levelsum", "maxlevel" or "setlevel" (case-insensitive,
// '-' and '_' ignored) to a Heuristic.
func ParseHeuristic(s string) (Heuristic, error) {
	norm := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	for h, name := range heuristicNames {
		if norm == name {
			return Heuristic(h), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
}

// LevelStats summarises one literal level and the action layer below it.
type LevelStats struct {
	// Level is the literal layer index.
	Level int

	// Actions counts the actions in the layer producing this level (0 at level 0).
	Actions int

	// Literals counts the literals present at this level.
	Literals int

	// ActionMutexes counts mutex action pairs in the producing action layer.
	ActionMutexes int

	// LiteralMutexes counts mutex literal pairs at this level.
	LiteralMutexes int

	// Leveled is true if this level is identical to the one before it.
	Leveled bool
}

// Option configures a Graph via functional arguments.
type Option func(*Options)

// Options holds the construction flags of a Graph.
type Options struct {
	// Serialize makes every pair of non-persistence actions in a layer mutex.
	// Defaults to true.
	Serialize bool

	// IgnoreMutexes skips all mutex computation. SetLevel then equals MaxLevel.
	IgnoreMutexes bool

	// Logger receives Debug records for every expansion and heuristic.
	Logger *zap.Logger

	// OnExpand is called after each layer pair is appended.
	OnExpand func(stats LevelStats)
}

// DefaultOptions returns Options with serialization on, mutexes tracked,
// a no-op logger and a no-op expansion hook.
func DefaultOptions() Options {
	return Options{
		Serialize:     true,
		IgnoreMutexes: false,
		Logger:        zap.NewNop(),
		OnExpand:      func(LevelStats) {},
	}
}

// WithSerialize turns action serialization on or off.
func WithSerialize(on bool) Option {
	return func(o *Options) { o.Serialize = on }
}

// WithIgnoreMutexes disables mutex tracking for the graph.
func WithIgnoreMutexes() Option {
	return func(o *Options) { o.IgnoreMutexes = true }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a hook run after every expansion. A nil hook is ignored.
func WithOnExpand(fn func(stats LevelStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
