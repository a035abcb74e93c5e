package search

import (
	"github.com/gridchess/engine/pkg/board"
	"github.com/gridchess/engine/pkg/eval"
)

// Result is the outcome of one AlphaBeta call: the negamax score from the
// perspective of the side to move, and the best ply found at this node (nil
// if the position has no legal plys).
type Result struct {
	Score   board.Score
	BestPly *board.Ply
}

// AlphaBeta implements negamax search with alpha-beta pruning and a
// quiescence leaf extension:
//
//	function alphabeta(node, depth, α, β) is
//	    if depth = 0 then
//	        return quiesce(α, β)
//	    value := −∞
//	    for each legal ply of node, best-first do
//	        value := max(value, −alphabeta(child, depth−1, −β, −α))
//	        α := max(α, value)
//	        if α ≥ β then
//	            break (* β cutoff *)
//	    return value
//
// followPV controls whether this node consults pos.Tables() for a cached
// principal-variation ply to search first; it is threaded down only while
// the ply actually played at each ply matches the cached PV, per spec
// iterative-deepening convention. The returned node count includes this
// call, any quiescence nodes at a depth-0 leaf, and every recursive call.
func AlphaBeta(pos *board.Position, alpha, beta board.Score, depth int, followPV bool, w eval.Weights) (Result, uint64) {
	if depth == 0 {
		score, nodes := Quiesce(pos, alpha, beta, w)
		return Result{Score: score}, nodes
	}

	side := pos.SideToMove()
	plys := pos.AllLegalPlys(side)
	if len(plys) == 0 {
		return Result{Score: board.NegInf}, 1
	}

	var pv *board.Ply
	if followPV {
		if p, ok := pos.Tables().ReadPV(pos.ZobristHash()); ok {
			pv = &p
		}
	}

	q := NewPlyQueue(plys, pv)

	var nodes uint64 = 1
	best := Result{Score: board.NegInf}
	for {
		ply, ok := q.Next()
		if !ok {
			break
		}

		childFollowsPV := followPV && pv != nil && samePly(ply, *pv)

		prev, hasPrev := pos.LastPly()
		pos.Make(ply)
		child, childNodes := AlphaBeta(pos, beta.Negate(), alpha.Negate(), depth-1, childFollowsPV, w)
		if hasPrev {
			pos.Unmake(ply, &prev)
		} else {
			pos.Unmake(ply, nil)
		}
		nodes += childNodes

		score := child.Score.Negate()
		if best.BestPly == nil || score > best.Score {
			p := ply
			best = Result{Score: score, BestPly: &p}
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break // beta cutoff
		}
	}

	if best.BestPly != nil {
		marked := *best.BestPly
		marked.PVMove = true
		pos.Tables().WritePV(pos.ZobristHash(), marked)
	}
	return best, nodes
}
