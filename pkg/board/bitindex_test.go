package board_test

import (
	"testing"

	"github.com/gridchess/engine/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitIndex(t *testing.T) {
	t.Run("string format", func(t *testing.T) {
		tests := []struct {
			i        board.BitIndex
			expected string
		}{
			{0, "A1"},
			{16, "A2"},
			{17, "B2"},
			{board.NewBitIndex(15, 15), "P16"},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.expected, tt.i.String())
		}
	})

	t.Run("round trips through Bit/SingleBitIndex", func(t *testing.T) {
		for _, i := range []board.BitIndex{0, 1, 16, 64, 128, 200, 255} {
			assert.Equal(t, i, board.SingleBitIndex(i.Bit()))
		}
	})

	t.Run("parse round trips string", func(t *testing.T) {
		for _, i := range []board.BitIndex{0, 16, 17, board.NewBitIndex(15, 15)} {
			parsed, err := board.ParseBitIndexStr(i.String())
			require.NoError(t, err)
			assert.Equal(t, i, parsed)
		}
	})

	t.Run("parse rejects garbage", func(t *testing.T) {
		_, err := board.ParseBitIndexStr("Z9")
		assert.Error(t, err)

		_, err = board.ParseBitIndexStr("A")
		assert.Error(t, err)
	})
}
