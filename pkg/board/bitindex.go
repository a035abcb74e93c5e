package board

import (
	"fmt"
	"math/bits"
)

// BitIndex is a single-bit address into a BitBoard, in [0, NumSquares). It is
// obtained from a single-bit BitBoard via count-trailing-zeros and converted
// back via 1<<i.
type BitIndex uint16

// Grid dimensions. The board is always indexed over a full 16x16 grid; a
// Position's limits mark which squares are actually active.
const (
	ZeroBitIndex BitIndex = 0
	NumSquares   BitIndex = 256
	NumFiles              = 16
	NumRanks              = 16
)

// NewBitIndex builds a BitIndex from a zero-based file and rank.
func NewBitIndex(file, rank int) BitIndex {
	return BitIndex(rank*NumFiles + file)
}

// Bit returns the single-bit BitBoard for this index.
func (i BitIndex) Bit() BitBoard {
	word, shift := uint(i)/64, uint(i)%64
	var b BitBoard
	b[word] = 1 << shift
	return b
}

// File returns the zero-based column, 0..15.
func (i BitIndex) File() int {
	return int(i) % NumFiles
}

// Rank returns the zero-based row, 0..15.
func (i BitIndex) Rank() int {
	return int(i) / NumFiles
}

// IsValid reports whether i addresses a square in the 256-bit grid.
func (i BitIndex) IsValid() bool {
	return i < NumSquares
}

// String renders the external display format "<file><rank>": file =
// 'A'+(idx mod 16), rank = (idx div 16)+1. Index 0 is "A1", 16 is "A2", 17
// is "B2".
func (i BitIndex) String() string {
	return fmt.Sprintf("%c%d", 'A'+rune(i.File()), i.Rank()+1)
}

// SingleBitIndex returns the BitIndex of the single set bit of b via
// count-trailing-zeros. If b has more than one bit set, the lowest set bit
// is returned (move generation relies on this to walk a mask bit by bit);
// if b is empty, NumSquares is returned.
func SingleBitIndex(b BitBoard) BitIndex {
	for word, v := range b {
		if v != 0 {
			return BitIndex(word*64 + bits.TrailingZeros64(v))
		}
	}
	return NumSquares
}

// ParseBitIndexStr parses the "<file><rank>" display format, e.g. "A1" or
// "P16".
func ParseBitIndexStr(s string) (BitIndex, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid square: %q", s)
	}
	file := rune(s[0])
	if file >= 'a' && file <= 'p' {
		file -= 'a' - 'A'
	}
	if file < 'A' || file > 'P' {
		return 0, fmt.Errorf("invalid file: %q", s)
	}

	var rank int
	if _, err := fmt.Sscanf(s[1:], "%d", &rank); err != nil || rank < 1 || rank > NumRanks {
		return 0, fmt.Errorf("invalid rank: %q", s)
	}

	return NewBitIndex(int(file-'A'), rank-1), nil
}
