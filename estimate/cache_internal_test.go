package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlplan/plangraph"
	"github.com/katalvlaran/lvlplan/strips"
)

func TestStateKey(t *testing.T) {
	assert.Equal(t, "", stateKey(nil))
	assert.Equal(t, "101", stateKey([]bool{true, false, true}))
}

func TestEvaluate_Memoises(t *testing.T) {
	p, err := strips.LoadFile("../strips/testdata/have_cake.yaml")
	require.NoError(t, err)
	e, err := NewEvaluator(p)
	require.NoError(t, err)
	defer e.Close()

	want, err := e.Evaluate(p.Initial)
	require.NoError(t, err)
	e.cache.Wait()

	got, ok := e.cache.Get(stateKey(p.Initial))
	require.True(t, ok)
	assert.Equal(t, want, got)

	// A planted value proves the cache is consulted before a graph is built.
	planted := Values{LevelSum: 7, MaxLevel: 7, SetLevel: 7}
	e.cache.Set(stateKey(p.Initial), planted, 1)
	e.cache.Wait()
	got, err = e.Evaluate(p.Initial)
	require.NoError(t, err)
	assert.Equal(t, planted, got)
}

func TestFunc_UnknownHeuristicWithCachedState(t *testing.T) {
	p, err := strips.LoadFile("../strips/testdata/have_cake.yaml")
	require.NoError(t, err)
	e, err := NewEvaluator(p)
	require.NoError(t, err)
	defer e.Close()

	_, err = e.Evaluate(p.Initial)
	require.NoError(t, err)
	e.cache.Wait()
	_, cached := e.cache.Get(stateKey(p.Initial))
	require.True(t, cached)

	_, err = e.Func(plangraph.Heuristic(42))(p.Initial)
	assert.ErrorIs(t, err, plangraph.ErrUnknownHeuristic)

	got, err := e.Func(plangraph.SetLevel)(p.Initial)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}
