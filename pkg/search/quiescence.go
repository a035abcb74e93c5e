package search

import (
	"github.com/gridchess/engine/pkg/board"
	"github.com/gridchess/engine/pkg/eval"
)

// Quiesce extends search through capturing plys only, until a quiet
// position is reached, per the stand-pat alpha-beta scheme:
//
//	eval = evaluate()
//	if eval >= beta: return beta        // fail-high stand-pat cut
//	alpha = max(alpha, eval)
//	for each legal capturing ply in MVV-LVA order:
//	    score = -Quiesce(-beta, -alpha)
//	    if score > best: best = score; alpha = max(alpha, score)
//	    if score >= beta: break          // beta cutoff
//
// Captures strictly reduce material on the board, so this always
// terminates. Results are memoized in pos.Tables() by Zobrist hash. The
// returned node count includes this call and every recursive call made
// while searching through the capture sequence.
func Quiesce(pos *board.Position, alpha, beta board.Score, w eval.Weights) (board.Score, uint64) {
	var nodes uint64 = 1

	hash := pos.ZobristHash()
	if pos.CheckCache() {
		if s, ok := pos.Tables().ReadQuiescence(hash); ok {
			return s, nodes
		}
	}

	stand := eval.Evaluate(pos, w)
	best := stand
	if stand >= beta {
		pos.Tables().WriteQuiescence(hash, stand)
		return beta, nodes
	}
	if stand > alpha {
		alpha = stand
	}

	q := NewPlyQueue(capturingPlys(pos, pos.SideToMove()), nil)
	for {
		ply, ok := q.Next()
		if !ok {
			break
		}

		prev, hasPrev := pos.LastPly()
		pos.Make(ply)
		childScore, childNodes := Quiesce(pos, beta.Negate(), alpha.Negate(), w)
		score := childScore.Negate()
		if hasPrev {
			pos.Unmake(ply, &prev)
		} else {
			pos.Unmake(ply, nil)
		}
		nodes += childNodes

		if score > best {
			best = score
			if score > alpha {
				alpha = score
			}
		}
		if score >= beta {
			break
		}
	}

	pos.Tables().WriteQuiescence(hash, best)
	return best, nodes
}

// capturingPlys returns the legal capturing plys for c, in no particular
// order (PlyQueue re-sorts them by MVV-LVA).
func capturingPlys(pos *board.Position, c board.Color) []board.Ply {
	var out []board.Ply
	for _, ply := range pos.AllLegalPlys(c) {
		if ply.IsCapture() {
			out = append(out, ply)
		}
	}
	return out
}
