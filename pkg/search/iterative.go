package search

import (
	"context"

	"github.com/gridchess/engine/pkg/board"
	"github.com/gridchess/engine/pkg/eval"
	"github.com/seekerror/logw"
)

// SearchNextPly runs iterative-deepening negamax on pos up to maxDepth,
// re-searching from depth 1 so that each iteration's principal variation
// seeds move ordering for the next. lastPly is accepted for interface
// parity with the caller's view of the game (the ply made immediately
// before this search began) but is not consulted: pos tracks its own
// undo stack internally, so Make/Unmake within the search always restores
// en-passant state correctly without it.
//
// It returns the deepest iteration's score, its best ply (nil if pos has
// no legal plys), and the total node count summed across all iterations.
func SearchNextPly(ctx context.Context, pos *board.Position, lastPly *board.Ply, maxDepth int8, w eval.Weights) (board.Score, *board.Ply, uint64) {
	var total uint64
	var score board.Score
	var best *board.Ply

	for depth := int8(1); depth <= maxDepth; depth++ {
		select {
		case <-ctx.Done():
			return score, best, total
		default:
		}

		result, nodes := AlphaBeta(pos, board.NegInf, board.Inf, int(depth), true, w)
		total += nodes
		score = result.Score
		best = result.BestPly

		logw.Debugf(ctx, "Searched %v to depth=%v: score=%v, best=%v, nodes=%v", pos, depth, score, best, nodes)

		if best == nil {
			break
		}
	}
	return score, best, total
}
