// Package eval implements the static position evaluator: material balance,
// isolated-pawn structure, and mobility, combined into a single signed
// score and memoized per Zobrist key in the position's shared Tables.
package eval

import "github.com/gridchess/engine/pkg/board"

// Weights configures the evaluator's three terms. Use DefaultWeights unless
// the caller wants to tune play strength or run experiments.
type Weights struct {
	King, Queen, Rook, Bishop, Knight, Pawn board.Score

	// IsolatedPawn is the per-isolated-pawn score delta; negative hurts.
	IsolatedPawn board.Score

	// Movement is the per-legal-ply mobility coefficient.
	Movement board.Score
}

// DefaultWeights are the evaluator's baseline coefficients.
var DefaultWeights = Weights{
	King:   4000,
	Queen:  180,
	Rook:   100,
	Bishop: 60,
	Knight: 60,
	Pawn:   20,

	IsolatedPawn: -5,
	Movement:     1,
}

func (w Weights) material(kind board.PieceKind) board.Score {
	switch kind {
	case board.King:
		return w.King
	case board.Queen:
		return w.Queen
	case board.Rook:
		return w.Rook
	case board.Bishop:
		return w.Bishop
	case board.Knight:
		return w.Knight
	case board.Pawn:
		return w.Pawn
	default:
		return 0
	}
}

// Evaluate returns pos's static score from the perspective of the side to
// move after the last ply made (White, if none has been made). The result
// is memoized in pos.Tables() keyed by the position's Zobrist hash.
func Evaluate(pos *board.Position, w Weights) board.Score {
	hash := pos.ZobristHash()
	if pos.CheckCache() {
		if s, ok := pos.Tables().ReadEval(hash); ok {
			return s
		}
	}

	score := materialScore(pos, w).Add(isolatedPawnScore(pos, w)).Add(mobilityScore(pos, w))

	side := board.White
	if last, ok := pos.LastPly(); ok {
		side = last.MovingPiece.Color.Opponent()
	}
	if side == board.Black {
		score = score.Negate()
	}

	pos.Tables().WriteEval(hash, score)
	return score
}

// materialScore sums color.Unit * weight[kind] over every piece on the
// board: White contributes positively, Black negatively.
func materialScore(pos *board.Position, w Weights) board.Score {
	var total board.Score
	for _, p := range board.AllPieces() {
		count := board.Score(pos.Board(p).PopCount())
		if count == 0 {
			continue
		}
		total = total.Add(p.Color.Unit() * w.material(p.Kind) * count)
	}
	return total
}

// isolatedPawnScore penalizes pawns with no friendly pawn on an adjacent
// column. A column-0 or column-15 pawn is isolated iff its single
// neighboring column is empty.
func isolatedPawnScore(pos *board.Position, w Weights) board.Score {
	white := pos.Board(board.Piece{Kind: board.Pawn, Color: board.White}).ToColumnRepresentation()
	black := pos.Board(board.Piece{Kind: board.Pawn, Color: board.Black}).ToColumnRepresentation()

	return w.IsolatedPawn * board.Score(countIsolatedColumns(white)-countIsolatedColumns(black))
}

func countIsolatedColumns(cols uint16) int {
	count := 0
	for c := 0; c < board.NumFiles; c++ {
		if cols&(1<<uint(c)) == 0 {
			continue
		}
		hasLeft := c > 0 && cols&(1<<uint(c-1)) != 0
		hasRight := c < board.NumFiles-1 && cols&(1<<uint(c+1)) != 0
		if !hasLeft && !hasRight {
			count++
		}
	}
	return count
}

// mobilityScore counts legal plys for each side. This is the expensive term:
// it re-derives legality (make/unmake + check test) for both colors on
// every call not served by the memo table above.
func mobilityScore(pos *board.Position, w Weights) board.Score {
	white := len(pos.AllLegalPlys(board.White))
	black := len(pos.AllLegalPlys(board.Black))
	return w.Movement * board.Score(white-black)
}
