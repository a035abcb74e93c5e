package board

import "math/rand"

// ZobristHash is a position hash based on piece placement and side to move.
// It depends on neither en-passant availability nor repetition count -- a
// deliberate simplification (see Design Notes); two positions differing
// only in en-passant availability collide.
type ZobristHash uint32

// ZobristTable is a deterministic table of random values, one per
// (Piece, BitIndex) pair plus one for "side to move has changed". Immutable
// after construction, so it may be shared freely across Positions.
//
// See also: https://research.cs.wisc.edu/techreports/1970/TR88.pdf.
type ZobristTable struct {
	pieces [NumPieces][]ZobristHash
	turn   ZobristHash
}

// NewZobristTable builds a table from a fixed seed, so two freshly
// constructed Positions from identical fixtures produce identical hashes.
func NewZobristTable(seed int64) *ZobristTable {
	r := rand.New(rand.NewSource(seed))

	t := &ZobristTable{}
	for i := 0; i < NumPieces; i++ {
		t.pieces[i] = make([]ZobristHash, NumSquares)
		for sq := ZeroBitIndex; sq < NumSquares; sq++ {
			t.pieces[i][sq] = ZobristHash(r.Uint32())
		}
	}
	t.turn = ZobristHash(r.Uint32())
	return t
}

// Hash computes the initial hash of a placement: XOR over all (piece,
// square) entries for every piece on the board. A freshly constructed
// position is always White to move (see Position, searchNextPly), so the
// turn key starts untoggled; each make/unmake flips it exactly once.
func (t *ZobristTable) Hash(boards *[NumPieces]BitBoard) ZobristHash {
	var h ZobristHash
	for i := 0; i < NumPieces; i++ {
		b := boards[i]
		for !b.IsZero() {
			sq := SingleBitIndex(b)
			h ^= t.pieces[i][sq]
			b = b.AndNot(sq.Bit())
		}
	}
	return h
}

// Move incrementally updates h for a single ply, per the XOR formula:
//
//	h' = h ^ T[moving,from] ^ T[moving,to] ^ T[victim,vsq] (if captured) ^ T[change-side]
//
// XOR is self-inverse, so this same routine implements both make and
// unmake.
func (t *ZobristTable) Move(h ZobristHash, p Ply) ZobristHash {
	h ^= t.pieces[p.MovingPiece.Index()][p.From]
	h ^= t.pieces[p.MovingPiece.Index()][p.To]
	if p.Capturing != nil {
		h ^= t.pieces[p.Capturing.Piece.Index()][p.Capturing.Square]
	}
	h ^= t.turn
	return h
}
