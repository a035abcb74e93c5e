package board_test

import (
	"testing"

	"github.com/gridchess/engine/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestBitBoard(t *testing.T) {
	t.Run("popcount", func(t *testing.T) {
		tests := []struct {
			b        board.BitBoard
			expected int
		}{
			{board.EmptyBoard, 0},
			{board.NewBitIndex(3, 3).Bit(), 1},
			{board.NewBitIndex(3, 3).Bit().Or(board.NewBitIndex(4, 3).Bit()), 2},
			{board.FullBoard, 256},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.expected, tt.b.PopCount())
		}
	})

	t.Run("bitwise ops", func(t *testing.T) {
		a := board.NewBitIndex(0, 0).Bit()
		b := board.NewBitIndex(1, 0).Bit()

		assert.True(t, a.And(b).IsZero())
		assert.Equal(t, 2, a.Or(b).PopCount())
		assert.Equal(t, 2, a.Xor(b).PopCount())
		assert.Equal(t, 254, a.Or(b).Not().PopCount())
		assert.True(t, a.AndNot(a).IsZero())
	})

	t.Run("east shift stays within a row except at the seam", func(t *testing.T) {
		mid := board.NewBitIndex(5, 2).Bit()
		east := mid.Lsh(1)
		assert.Equal(t, board.NewBitIndex(6, 2), board.SingleBitIndex(east))

		edge := board.NewBitIndex(15, 2).Bit()
		spill := edge.Lsh(1)
		assert.Equal(t, board.NewBitIndex(0, 3), board.SingleBitIndex(spill), "east shift from column 15 spills into the next row")
	})

	t.Run("north/south shift by 16", func(t *testing.T) {
		origin := board.NewBitIndex(4, 4).Bit()
		assert.Equal(t, board.NewBitIndex(4, 3), board.SingleBitIndex(origin.Rsh(16)))
		assert.Equal(t, board.NewBitIndex(4, 5), board.SingleBitIndex(origin.Lsh(16)))
	})

	t.Run("rsh/lsh are inverses for in-range shifts", func(t *testing.T) {
		origin := board.NewBitIndex(8, 8).Bit()
		assert.Equal(t, origin, origin.Lsh(37).Rsh(37))
	})

	t.Run("shift past the board clears", func(t *testing.T) {
		origin := board.NewBitIndex(0, 0).Bit()
		assert.True(t, origin.Rsh(1).IsZero())
		assert.True(t, board.FullBoard.Lsh(300).IsZero())
	})

	t.Run("column representation collapses rows", func(t *testing.T) {
		var b board.BitBoard
		b = b.Or(board.NewBitIndex(2, 0).Bit())
		b = b.Or(board.NewBitIndex(2, 5).Bit())
		b = b.Or(board.NewBitIndex(9, 12).Bit())

		col := b.ToColumnRepresentation()
		assert.Equal(t, uint16(1<<2|1<<9), col)
	})
}
