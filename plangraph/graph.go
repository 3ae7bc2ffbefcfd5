package plangraph

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlplan/strips"
)

// Graph is a planning graph grown from one state.
//
// literalLayers[i] is literal level i; actionLayers[i] sits between literal
// levels i and i+1. Layers refer to their parent by index into these slices.
// A Graph is not safe for concurrent use.
type Graph struct {
	dom  *Domain
	opts Options
	log  *zap.Logger

	literalLayers []*literalLayer
	actionLayers  []*actionLayer
	leveled       bool
}

// New compiles p and builds the graph of state. Use Compile and
// Domain.NewGraph instead when evaluating many states of the same problem.
func New(p *strips.Problem, state []bool, opts ...Option) (*Graph, error) {
	d, err := Compile(p)
	if err != nil {
		return nil, err
	}

	return d.NewGraph(state, opts...)
}

// NewGraph builds literal level 0 from state (aligned with the problem's
// fluent list) and computes its mutexes. No expansion happens yet.
func (d *Domain) NewGraph(state []bool, opts ...Option) (*Graph, error) {
	if d == nil {
		return nil, ErrDomainNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	seed, err := d.stateLiterals(state)
	if err != nil {
		return nil, err
	}
	root := newLiteralLayer(-1, d.numLiterals())
	for _, id := range seed {
		root.add(id)
	}
	root.seal()
	if !o.IgnoreMutexes {
		updateLiteralMutexes(root, nil)
	}

	return &Graph{
		dom:           d,
		opts:          o,
		log:           o.Logger,
		literalLayers: []*literalLayer{root},
	}, nil
}

// Domain returns the compiled domain the graph was built from.
func (g *Graph) Domain() *Domain { return g.dom }

// Levels returns the number of literal levels built so far (at least 1).
func (g *Graph) Levels() int { return len(g.literalLayers) }

// Leveled reports whether the graph has reached its fixed point.
func (g *Graph) Leveled() bool { return g.leveled }

// Expand adds one action layer and one literal layer.
// It returns false, without touching the graph, once the graph has leveled off.
func (g *Graph) Expand() bool {
	if g.leveled {
		return false
	}

	// 1. Parent layers: the leaf literal layer and the action layer below it
	leafIdx := len(g.literalLayers) - 1
	leaf := g.literalLayers[leafIdx]
	var below *actionLayer
	if leaf.parent >= 0 {
		below = g.actionLayers[leaf.parent]
	}
	acts := newActionLayer(leafIdx, len(g.dom.actions))
	next := newLiteralLayer(len(g.actionLayers), g.dom.numLiterals())

	// 2. Admission: carry everything from the layer below, add every other
	//    action whose preconditions all hold in the leaf
	for id := range g.dom.actions {
		aid := actionID(id)
		if below != nil && below.present[aid] {
			acts.add(aid)
			continue
		}
		if leaf.satisfies(g.dom.actions[aid].pre) {
			acts.add(aid)
		}
	}

	// 3. Edges: leaf → action (preconditions) and action → next (effects)
	for _, aid := range acts.members {
		node := &g.dom.actions[aid]
		for _, l := range node.pre {
			leaf.addConsumer(l, aid)
		}
		acts.preconditions[aid] = node.pre
		acts.effects[aid] = node.eff
		for _, l := range node.eff {
			next.addProducer(l, aid)
		}
	}
	next.seal()

	// 4. Mutexes, each derived from the layer directly below
	if !g.opts.IgnoreMutexes {
		g.dom.updateActionMutexes(acts, leaf, g.opts.Serialize)
		updateLiteralMutexes(next, acts.mutex.has)
	}

	// 5. Append and test for the fixed point
	g.actionLayers = append(g.actionLayers, acts)
	g.literalLayers = append(g.literalLayers, next)
	g.leveled = next.sameAs(leaf)

	stats := g.levelStats(len(g.literalLayers) - 1)
	g.log.Debug("planning graph expanded",
		zap.Int("level", stats.Level),
		zap.Int("actions", stats.Actions),
		zap.Int("literals", stats.Literals),
		zap.Int("action_mutexes", stats.ActionMutexes),
		zap.Int("literal_mutexes", stats.LiteralMutexes),
		zap.Bool("leveled", stats.Leveled))
	g.opts.OnExpand(stats)

	return true
}

// Fill expands until the graph levels off or maxLevels layer pairs were
// added. A negative maxLevels never interrupts the loop. Returns g.
func (g *Graph) Fill(maxLevels int) *Graph {
	for !g.leveled && maxLevels != 0 {
		g.Expand()
		maxLevels--
	}

	return g
}

// Stats summarises every level built so far.
func (g *Graph) Stats() []LevelStats {
	out := make([]LevelStats, len(g.literalLayers))
	for i := range g.literalLayers {
		out[i] = g.levelStats(i)
	}

	return out
}

func (g *Graph) levelStats(level int) LevelStats {
	lits := g.literalLayers[level]
	s := LevelStats{
		Level:          level,
		Literals:       len(lits.members),
		LiteralMutexes: len(lits.mutex),
	}
	if lits.parent >= 0 {
		acts := g.actionLayers[lits.parent]
		s.Actions = len(acts.members)
		s.ActionMutexes = len(acts.mutex)
		s.Leveled = lits.sameAs(g.literalLayers[acts.parent])
	}

	return s
}

// Literals returns the literals present at level, in fluent order.
func (g *Graph) Literals(level int) ([]strips.Literal, error) {
	layer, err := g.literalLayer(level)
	if err != nil {
		return nil, err
	}
	out := make([]strips.Literal, len(layer.members))
	for i, id := range layer.members {
		out[i] = g.dom.literal(id)
	}

	return out, nil
}

// Actions returns the actions of the action layer built on literal level
// level (so 0 <= level < Levels()-1), persistence actions first.
func (g *Graph) Actions(level int) ([]strips.Action, error) {
	if level < 0 || level >= len(g.actionLayers) {
		return nil, fmt.Errorf("%w: action level %d of %d", ErrLevelOutOfRange, level, len(g.actionLayers))
	}
	layer := g.actionLayers[level]
	out := make([]strips.Action, len(layer.members))
	for i, id := range layer.members {
		out[i] = g.dom.actions[id].action
	}

	return out, nil
}

// LiteralMutex reports whether a and b are mutex at literal level level.
// Both literals must be present there, otherwise ErrNodeAbsent is returned.
func (g *Graph) LiteralMutex(level int, a, b strips.Literal) (bool, error) {
	layer, err := g.literalLayer(level)
	if err != nil {
		return false, err
	}
	ids := [2]literalID{}
	for i, l := range [2]strips.Literal{a, b} {
		id, ok := g.dom.literalID(l)
		if !ok || !layer.present[id] {
			return false, fmt.Errorf("%w: literal %s at level %d", ErrNodeAbsent, l, level)
		}
		ids[i] = id
	}

	return layer.mutex.has(ids[0], ids[1]), nil
}

// ActionMutex reports whether the named actions are mutex in the action
// layer built on literal level level. Persistence actions are named
// "NoOp::<literal>".
func (g *Graph) ActionMutex(level int, a, b string) (bool, error) {
	if level < 0 || level >= len(g.actionLayers) {
		return false, fmt.Errorf("%w: action level %d of %d", ErrLevelOutOfRange, level, len(g.actionLayers))
	}
	layer := g.actionLayers[level]
	ids := [2]actionID{}
	for i, name := range [2]string{a, b} {
		id, ok := g.dom.byName[name]
		if !ok || !layer.present[id] {
			return false, fmt.Errorf("%w: action %q at level %d", ErrNodeAbsent, name, level)
		}
		ids[i] = id
	}

	return layer.mutex.has(ids[0], ids[1]), nil
}

func (g *Graph) literalLayer(level int) (*literalLayer, error) {
	if level < 0 || level >= len(g.literalLayers) {
		return nil, fmt.Errorf("%w: literal level %d of %d", ErrLevelOutOfRange, level, len(g.literalLayers))
	}

	return g.literalLayers[level], nil
}
