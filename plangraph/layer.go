package plangraph

import (
	"maps"
	"slices"
)

// pair is an unordered node pair, stored with lo < hi.
type pair[T ~int] struct{ lo, hi T }

func makePair[T ~int](a, b T) pair[T] {
	if a > b {
		a, b = b, a
	}

	return pair[T]{lo: a, hi: b}
}

// mutexTable is a symmetric, irreflexive relation over the nodes of one layer.
type mutexTable[T ~int] map[pair[T]]struct{}

func (m mutexTable[T]) set(a, b T) {
	if a == b {
		return
	}
	m[makePair(a, b)] = struct{}{}
}

func (m mutexTable[T]) has(a, b T) bool {
	if a == b {
		return false
	}
	_, ok := m[makePair(a, b)]

	return ok
}

// literalLayer holds the literals reachable at one level.
//
// parent indexes Graph.actionLayers (the layer that produced this one) and is
// -1 at level 0. producers are inbound edges from that layer; consumers are
// outbound edges to the action layer built on top of this one.
type literalLayer struct {
	parent    int
	present   []bool      // indexed by literalID
	members   []literalID // ascending
	producers map[literalID][]actionID
	consumers map[literalID][]actionID
	mutex     mutexTable[literalID]
}

func newLiteralLayer(parent, universe int) *literalLayer {
	return &literalLayer{
		parent:    parent,
		present:   make([]bool, universe),
		producers: make(map[literalID][]actionID),
		consumers: make(map[literalID][]actionID),
		mutex:     make(mutexTable[literalID]),
	}
}

func (l *literalLayer) add(id literalID) { l.present[id] = true }

// addProducer wires the edge producer → id and admits id.
func (l *literalLayer) addProducer(id literalID, producer actionID) {
	l.add(id)
	l.producers[id] = append(l.producers[id], producer)
}

func (l *literalLayer) addConsumer(id literalID, consumer actionID) {
	l.consumers[id] = append(l.consumers[id], consumer)
}

// seal builds the sorted member list once all literals are in.
func (l *literalLayer) seal() {
	l.members = l.members[:0]
	for id, ok := range l.present {
		if ok {
			l.members = append(l.members, literalID(id))
		}
	}
}

// satisfies reports whether every literal of set is present.
func (l *literalLayer) satisfies(set []literalID) bool {
	for _, id := range set {
		if !l.present[id] {
			return false
		}
	}

	return true
}

// sameAs reports whether l and other have identical members, producer edges
// and mutex pairs. Consumer edges are excluded: they belong to the next
// expansion, not to the layer's own content.
func (l *literalLayer) sameAs(other *literalLayer) bool {
	return slices.Equal(l.present, other.present) &&
		maps.EqualFunc(l.producers, other.producers, func(x, y []actionID) bool { return slices.Equal(x, y) }) &&
		maps.Equal(l.mutex, other.mutex)
}

// actionLayer holds the actions applicable at one level. parent indexes
// Graph.literalLayers (the layer its preconditions come from).
type actionLayer struct {
	parent        int
	present       []bool     // indexed by actionID
	members       []actionID // ascending
	preconditions map[actionID][]literalID
	effects       map[actionID][]literalID
	mutex         mutexTable[actionID]
}

func newActionLayer(parent, universe int) *actionLayer {
	return &actionLayer{
		parent:        parent,
		present:       make([]bool, universe),
		preconditions: make(map[actionID][]literalID),
		effects:       make(map[actionID][]literalID),
		mutex:         make(mutexTable[actionID]),
	}
}

// add admits id. Callers add actions in ascending id order.
func (a *actionLayer) add(id actionID) {
	if a.present[id] {
		return
	}
	a.present[id] = true
	a.members = append(a.members, id)
}
