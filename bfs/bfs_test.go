package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cablenet/bfs"
	"github.com/katalvlaran/cablenet/core"
)

// feeder builds 0→1, 0→2, 1→3, 2→3, 3→4.
func feeder(t *testing.T) *core.Digraph {
	t.Helper()
	g := core.NewDigraph()
	for _, a := range []core.Arc{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3}, {From: 2, To: 3}, {From: 3, To: 4}} {
		require.NoError(t, g.AddArc(a.From, a.To))
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewDigraph()
	_, err = bfs.BFS(g, 7)
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)

	g.AddNode(1)
	_, err = bfs.BFS(g, 1, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_Forward(t *testing.T) {
	res, err := bfs.BFS(feeder(t), 0)
	require.NoError(t, err)

	assert.Equal(t, []core.Node{0, 1, 2, 3, 4}, res.Order)
	assert.Equal(t, 2, res.Depth[3])
	assert.Equal(t, core.Node(1), res.Parent[3], "first discovery wins")
	assert.Equal(t, core.Arc{From: 1, To: 3}, res.Via[3])

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []core.Arc{{From: 0, To: 1}, {From: 1, To: 3}, {From: 3, To: 4}}, path)
}

func TestBFS_Reverse(t *testing.T) {
	res, err := bfs.BFS(feeder(t), 3, bfs.WithReverse())
	require.NoError(t, err)

	assert.Equal(t, []core.Node{3, 1, 2, 0}, res.Order)
	assert.False(t, res.Reached(4), "descendants are not ancestors")
	assert.Equal(t, core.Arc{From: 0, To: 1}, res.Via[0], "Via keeps graph orientation")

	path, err := res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Arc{{From: 0, To: 1}, {From: 1, To: 3}}, path, "reverse paths follow the arcs")
}

func TestBFS_FilterAndDepth(t *testing.T) {
	skip13 := func(a core.Arc) bool { return a != core.Arc{From: 1, To: 3} }
	res, err := bfs.BFS(feeder(t), 0, bfs.WithFilterArc(skip13))
	require.NoError(t, err)
	assert.Equal(t, core.Node(2), res.Parent[3])

	res, err = bfs.BFS(feeder(t), 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []core.Node{0, 1, 2}, res.Order)

	_, err = res.PathTo(4)
	assert.Error(t, err)
}

func TestBFS_HookAbort(t *testing.T) {
	stop := errors.New("stop")
	res, err := bfs.BFS(feeder(t), 0, bfs.WithOnVisit(func(n core.Node, _ int) error {
		if n == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	require.NotNil(t, res, "partial result is returned with the hook error")
	assert.Equal(t, []core.Node{0, 1, 2}, res.Order)
}
