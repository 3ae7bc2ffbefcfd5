package plangraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Literal ids used below: fluent P = {p, notP}, Q = {q, notQ}, R = {r, notR}.
const (
	p literalID = iota
	notP
	q
	notQ
	r
	notR
)

func table[T ~int](pairs ...[2]T) func(a, b T) bool {
	m := make(mutexTable[T])
	for _, pr := range pairs {
		m.set(pr[0], pr[1])
	}

	return m.has
}

func TestMutexTable(t *testing.T) {
	m := make(mutexTable[literalID])
	m.set(q, p)
	m.set(r, r)

	assert.True(t, m.has(p, q))
	assert.True(t, m.has(q, p))
	assert.False(t, m.has(r, r), "irreflexive")
	assert.Len(t, m, 1, "a pair is stored once")
}

func TestNegation(t *testing.T) {
	assert.True(t, negation(p, notP))
	assert.True(t, negation(notQ, q))
	assert.False(t, negation(p, q))
	assert.False(t, negation(p, p))
	assert.Equal(t, notR, r.negate())
}

func TestInconsistentEffects(t *testing.T) {
	assert.True(t, inconsistentEffects([]literalID{p, q}, []literalID{notQ}))
	assert.True(t, inconsistentEffects([]literalID{notQ}, []literalID{p, q}))
	assert.False(t, inconsistentEffects([]literalID{p, q}, []literalID{p, r}))
	assert.False(t, inconsistentEffects(nil, []literalID{p}))
}

func TestInterference(t *testing.T) {
	// A deletes B's precondition.
	assert.True(t, interference([]literalID{r}, []literalID{notP}, []literalID{p}, []literalID{q}))
	// B deletes A's precondition.
	assert.True(t, interference([]literalID{p}, []literalID{q}, []literalID{r}, []literalID{notP}))
	// Deleting one's own precondition is not interference.
	assert.False(t, interference([]literalID{p}, []literalID{notP}, []literalID{q}, []literalID{r}))
}

func TestCompetingNeeds(t *testing.T) {
	all := table([2]literalID{p, q}, [2]literalID{p, r})
	assert.True(t, competingNeeds([]literalID{p}, []literalID{q, r}, all))
	assert.False(t, competingNeeds([]literalID{p, notQ}, []literalID{q, r}, all), "one free pair is enough")
	assert.False(t, competingNeeds(nil, []literalID{q}, all), "no preconditions, no competition")

	// An asymmetric view must fail in both argument orders.
	asym := func(a, b literalID) bool { return a == p && b == q }
	assert.False(t, competingNeeds([]literalID{p}, []literalID{q}, asym))
	assert.False(t, competingNeeds([]literalID{q}, []literalID{p}, asym))
}

func TestInconsistentSupport(t *testing.T) {
	const (
		eat actionID = iota
		bake
		keep
	)
	parent := table([2]actionID{eat, keep}, [2]actionID{eat, bake})

	assert.True(t, inconsistentSupport([]actionID{eat}, []actionID{keep, bake}, parent))
	assert.False(t, inconsistentSupport([]actionID{eat}, []actionID{eat}, parent), "shared producer")
	assert.False(t, inconsistentSupport([]actionID{keep}, []actionID{bake}, parent))
	assert.False(t, inconsistentSupport(nil, []actionID{eat}, parent), "producer-less literal")
}

func TestActionsMutex_Serialize(t *testing.T) {
	none := table[literalID]()
	a := &actionNode{pre: []literalID{p}, eff: []literalID{q}}
	b := &actionNode{pre: []literalID{r}, eff: []literalID{p}}
	noop := &actionNode{pre: []literalID{r}, eff: []literalID{r}, persistence: true}

	assert.False(t, actionsMutex(a, b, false, none))
	assert.True(t, actionsMutex(a, b, true, none))
	assert.False(t, actionsMutex(a, noop, true, none))
}

func TestLiteralLayer_SameAs(t *testing.T) {
	build := func(mutex bool) *literalLayer {
		l := newLiteralLayer(0, 6)
		l.addProducer(p, 0)
		l.addProducer(q, 1)
		l.seal()
		if mutex {
			l.mutex.set(p, q)
		}
		return l
	}

	assert.True(t, build(false).sameAs(build(false)))
	assert.False(t, build(false).sameAs(build(true)), "mutex pairs differ")

	other := build(false)
	other.addProducer(q, 2)
	assert.False(t, build(false).sameAs(other), "producer edges differ")

	withConsumer := build(false)
	withConsumer.addConsumer(p, 3)
	assert.True(t, build(false).sameAs(withConsumer), "consumer edges are ignored")

	bigger := build(false)
	bigger.add(r)
	bigger.seal()
	assert.False(t, build(false).sameAs(bigger), "members differ")
	assert.Equal(t, []literalID{p, q, r}, bigger.members)
}
