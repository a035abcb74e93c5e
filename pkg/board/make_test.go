package board_test

import (
	"testing"

	"github.com/gridchess/engine/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMakeUnmakeRoundTrip is the S3 scenario: applying WhitePawn A2->A1 then
// unmaking it restores the exact position, and the hash's visit count
// returns to 1.
func TestMakeUnmakeRoundTrip(t *testing.T) {
	p, err := board.NewPosition("0\np\n")
	require.NoError(t, err)

	hash := p.ZobristHash()
	boardsBefore := p.Board(board.Piece{Kind: board.Pawn, Color: board.White})
	limitsBefore := p.Limits()

	ply := board.Ply{
		MovingPiece: board.Piece{Kind: board.Pawn, Color: board.White},
		From:        board.NewBitIndex(0, 1),
		To:          board.NewBitIndex(0, 0),
	}

	p.Make(ply)
	assert.NotEqual(t, hash, p.ZobristHash())

	p.Unmake(ply, nil)

	assert.Equal(t, hash, p.ZobristHash())
	assert.Equal(t, boardsBefore, p.Board(board.Piece{Kind: board.Pawn, Color: board.White}))
	assert.Equal(t, limitsBefore, p.Limits())
	assert.Equal(t, 1, p.Tables().VisitCount(hash))
}

// TestMakeUnmakeRoundTripAllLegalPlys checks the round-trip invariant across
// every legal ply of the standard opening position.
func TestMakeUnmakeRoundTripAllLegalPlys(t *testing.T) {
	p, err := board.NewPosition(board.StandardOpening)
	require.NoError(t, err)

	hash := p.ZobristHash()
	var boardsBefore [board.NumPieces]board.BitBoard
	for i := 0; i < board.NumPieces; i++ {
		boardsBefore[i] = p.Board(board.PieceAt(i))
	}

	for _, ply := range p.AllLegalPlys(board.White) {
		prev, hasPrev := p.LastPly()

		p.Make(ply)
		if hasPrev {
			p.Unmake(ply, &prev)
		} else {
			p.Unmake(ply, nil)
		}

		assert.Equal(t, hash, p.ZobristHash(), "ply %v broke zobrist round trip", ply)
		for i := 0; i < board.NumPieces; i++ {
			assert.Equal(t, boardsBefore[i], p.Board(board.PieceAt(i)), "ply %v broke board[%v] round trip", ply, board.PieceAt(i))
		}
	}
}

// TestLegalityDiscoveredCheck is the S2 scenario: with Black rook above
// White rook above White king on a single file, moving the White rook off
// the file is illegal (discovered check), but capturing the Black rook is
// legal.
func TestLegalityDiscoveredCheck(t *testing.T) {
	p, err := board.NewPosition("R0\nr0\nk0\n")
	require.NoError(t, err)

	capture := board.Ply{
		MovingPiece: board.Piece{Kind: board.Rook, Color: board.White},
		From:        board.NewBitIndex(0, 1),
		To:          board.NewBitIndex(0, 0),
		Capturing:   &board.Capture{Piece: board.Piece{Kind: board.Rook, Color: board.Black}, Square: board.NewBitIndex(0, 0)},
	}
	sidestep := board.Ply{
		MovingPiece: board.Piece{Kind: board.Rook, Color: board.White},
		From:        board.NewBitIndex(0, 1),
		To:          board.NewBitIndex(1, 1),
	}

	legal := p.AllLegalPlys(board.White)
	assert.Contains(t, legal, capture)
	assert.NotContains(t, legal, sidestep)
}
