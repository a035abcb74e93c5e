package search_test

import (
	"testing"

	"github.com/gridchess/engine/pkg/board"
	"github.com/gridchess/engine/pkg/eval"
	"github.com/gridchess/engine/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphaBetaFindsWinningCapture(t *testing.T) {
	// White queen can capture Black's queen; its only defender, the Black
	// king, cannot recapture because the other White queen covers the square.
	p, err := board.NewPosition("k0q\n0Q0\nK0q\n")
	require.NoError(t, err)

	result, nodes := search.AlphaBeta(p, board.NegInf, board.Inf, 2, false, eval.DefaultWeights)
	require.NotNil(t, result.BestPly)
	assert.Greater(t, nodes, uint64(0))
	assert.True(t, result.BestPly.IsCapture())
}

func TestAlphaBetaNoLegalMoveIsNegInf(t *testing.T) {
	p, err := board.NewPosition("kR0\n0R0\n0r0\n")
	require.NoError(t, err)

	result, _ := search.AlphaBeta(p, board.NegInf, board.Inf, 1, false, eval.DefaultWeights)
	assert.Nil(t, result.BestPly)
	assert.Equal(t, board.NegInf, result.Score)
}

func TestAlphaBetaWritesPVTable(t *testing.T) {
	p, err := board.NewPosition(board.StandardOpening)
	require.NoError(t, err)

	result, _ := search.AlphaBeta(p, board.NegInf, board.Inf, 1, false, eval.DefaultWeights)
	require.NotNil(t, result.BestPly)

	cached, ok := p.Tables().ReadPV(p.ZobristHash())
	require.True(t, ok)
	assert.Equal(t, result.BestPly.From, cached.From)
	assert.Equal(t, result.BestPly.To, cached.To)
	assert.True(t, cached.PVMove)
}
