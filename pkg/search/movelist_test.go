package search_test

import (
	"testing"

	"github.com/gridchess/engine/pkg/board"
	"github.com/gridchess/engine/pkg/search"
	"github.com/stretchr/testify/assert"
)

func capturePly(attacker, victim board.PieceKind) board.Ply {
	return board.Ply{
		MovingPiece: board.Piece{Kind: attacker, Color: board.White},
		From:        board.NewBitIndex(0, 0),
		To:          board.NewBitIndex(0, 1),
		Capturing: &board.Capture{
			Piece:  board.Piece{Kind: victim, Color: board.Black},
			Square: board.NewBitIndex(0, 1),
		},
	}
}

func quietPly(kind board.PieceKind) board.Ply {
	return board.Ply{
		MovingPiece: board.Piece{Kind: kind, Color: board.White},
		From:        board.NewBitIndex(0, 0),
		To:          board.NewBitIndex(0, 1),
	}
}

// TestPlyQueueOrdering is the S4 scenario, driven through PlyQueue instead
// of a bare sort.
func TestPlyQueueOrdering(t *testing.T) {
	pxp := capturePly(board.Pawn, board.Pawn)
	pxq := capturePly(board.Pawn, board.Queen)
	qxp := capturePly(board.Queen, board.Pawn)
	qxq := capturePly(board.Queen, board.Queen)
	qNop := quietPly(board.Queen)
	pNop := quietPly(board.Pawn)

	q := search.NewPlyQueue([]board.Ply{pxp, pxq, qxp, qxq, qNop, pNop}, nil)

	var got []board.Ply
	for {
		ply, ok := q.Next()
		if !ok {
			break
		}
		got = append(got, ply)
	}

	want := []board.Ply{pxq, qxq, pxp, qxp, pNop, qNop}
	assert.Equal(t, want, got)
}

func TestPlyQueuePVAlwaysWins(t *testing.T) {
	pxq := capturePly(board.Pawn, board.Queen)
	pNop := quietPly(board.Pawn)
	pNop.To = board.NewBitIndex(0, 2) // distinct from pxq, so only pNop matches the PV

	q := search.NewPlyQueue([]board.Ply{pxq, pNop}, &pNop)

	first, ok := q.Next()
	assert.True(t, ok)
	assert.Equal(t, pNop.From, first.From)
	assert.Equal(t, pNop.To, first.To)
	assert.True(t, first.PVMove)
}
