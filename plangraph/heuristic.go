package plangraph

import (
	"fmt"

	"go.uber.org/zap"
)

// levelCost returns the first literal level containing id among the levels
// built so far, or Unreachable. It never expands the graph.
func (g *Graph) levelCost(id literalID) int {
	for level, layer := range g.literalLayers {
		if layer.present[id] {
			return level
		}
	}

	return Unreachable
}

// LevelSum fills the graph, then sums the level cost of every goal literal.
// Shared sub-plans are counted once per goal, so the estimate is not
// admissible. Returns Unreachable if any goal never appears.
func (g *Graph) LevelSum() int {
	g.Fill(-1)
	sum := 0
	for _, goal := range g.dom.goal {
		cost := g.levelCost(goal)
		if cost == Unreachable {
			return g.report(LevelSum, Unreachable)
		}
		sum += cost
	}

	return g.report(LevelSum, sum)
}

// MaxLevel fills the graph, then returns the largest level cost of any goal
// literal, or Unreachable if any goal never appears.
func (g *Graph) MaxLevel() int {
	g.Fill(-1)
	highest := 0
	for _, goal := range g.dom.goal {
		highest = max(highest, g.levelCost(goal))
	}

	return g.report(MaxLevel, highest)
}

// SetLevel returns the first level at which every goal literal is present and
// no two goal literals are mutex. It scans the levels already built, then
// expands one layer pair at a time. Once the graph has leveled off without
// meeting the condition it returns Unreachable.
func (g *Graph) SetLevel() int {
	for level := 0; ; level++ {
		if level == len(g.literalLayers) && !g.Expand() {
			return g.report(SetLevel, Unreachable)
		}
		if g.goalsCoexist(g.literalLayers[level]) {
			return g.report(SetLevel, level)
		}
	}
}

// goalsCoexist checks presence and pairwise non-mutex on the same layer.
func (g *Graph) goalsCoexist(layer *literalLayer) bool {
	if !layer.satisfies(g.dom.goal) {
		return false
	}
	for i, a := range g.dom.goal {
		for _, b := range g.dom.goal[i+1:] {
			if layer.mutex.has(a, b) {
				return false
			}
		}
	}

	return true
}

// Estimate dispatches to the named heuristic.
func (g *Graph) Estimate(h Heuristic) (int, error) {
	switch h {
	case LevelSum:
		return g.LevelSum(), nil
	case MaxLevel:
		return g.MaxLevel(), nil
	case SetLevel:
		return g.SetLevel(), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownHeuristic, h)
	}
}

func (g *Graph) report(h Heuristic, value int) int {
	if ce := g.log.Check(zap.DebugLevel, "heuristic computed"); ce != nil {
		ce.Write(
			zap.Stringer("heuristic", h),
			zap.Int("value", value),
			zap.Bool("unreachable", value == Unreachable),
			zap.Int("levels", len(g.literalLayers)),
			zap.Bool("leveled", g.leveled))
	}

	return value
}
