package search_test

import (
	"testing"

	"github.com/gridchess/engine/pkg/board"
	"github.com/gridchess/engine/pkg/eval"
	"github.com/gridchess/engine/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQuiescenceNodeLimit is the S5 scenario.
func TestQuiescenceNodeLimit(t *testing.T) {
	p, err := board.NewPosition("P0P\n0P0\np0p\n")
	require.NoError(t, err)

	_, nodes := search.Quiesce(p, board.NegInf, board.Inf, eval.DefaultWeights)
	assert.Equal(t, uint64(8), nodes)
}

func TestQuiescenceQuietPositionIsJustEvaluate(t *testing.T) {
	p, err := board.NewPosition(board.StandardOpening)
	require.NoError(t, err)

	score, nodes := search.Quiesce(p, board.NegInf, board.Inf, eval.DefaultWeights)
	assert.Equal(t, eval.Evaluate(p, eval.DefaultWeights), score)
	assert.Equal(t, uint64(1), nodes)
}

func TestQuiescenceIsMemoized(t *testing.T) {
	p, err := board.NewPosition("P0P\n0P0\np0p\n")
	require.NoError(t, err)

	first, _ := search.Quiesce(p, board.NegInf, board.Inf, eval.DefaultWeights)

	cached, ok := p.Tables().ReadQuiescence(p.ZobristHash())
	require.True(t, ok)
	assert.Equal(t, first, cached)
}
