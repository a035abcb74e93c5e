package search_test

import (
	"context"
	"testing"

	"github.com/gridchess/engine/pkg/board"
	"github.com/gridchess/engine/pkg/eval"
	"github.com/gridchess/engine/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSearchNextPlyDetectsCheckmate is the S6 scenario.
func TestSearchNextPlyDetectsCheckmate(t *testing.T) {
	p, err := board.NewPosition("kR0\n0R0\n0r0\n")
	require.NoError(t, err)

	_, bestPly, nodes := search.SearchNextPly(context.Background(), p, nil, 3, eval.DefaultWeights)
	assert.Nil(t, bestPly)
	assert.Greater(t, nodes, uint64(0))
}

func TestSearchNextPlyFindsWinningCapture(t *testing.T) {
	p, err := board.NewPosition("k0q\n0Q0\nK0q\n")
	require.NoError(t, err)

	_, bestPly, _ := search.SearchNextPly(context.Background(), p, nil, 2, eval.DefaultWeights)
	require.NotNil(t, bestPly)
	assert.True(t, bestPly.IsCapture())
}

func TestSearchNextPlyAccumulatesNodesAcrossIterations(t *testing.T) {
	p, err := board.NewPosition(board.StandardOpening)
	require.NoError(t, err)

	_, _, shallow := search.SearchNextPly(context.Background(), p, nil, 1, eval.DefaultWeights)
	_, _, deeper := search.SearchNextPly(context.Background(), p, nil, 2, eval.DefaultWeights)
	assert.Greater(t, deeper, shallow)
}
