package board

import (
	"strings"
)

// DefaultZobristSeed is the constant seed used when a caller does not
// supply its own ZobristTable. Kept constant so two Positions built from
// identical fixtures always hash identically.
const DefaultZobristSeed = 0xC0FFEE

// Position is the full mutable chess position: piece placement, auxiliary
// masks, the Zobrist hash, and the shared memoisation tables. It owns its
// 12 piece boards, piece lists, limits, unmovedPieces, enPassant,
// zobristHash and checkCache exclusively; the Zobrist table and the memo
// Tables are shared and safe to read/write from clones.
type Position struct {
	boards    [NumPieces]BitBoard
	pieceList [NumPieces][]BitIndex

	// limits has a set bit for every active square of this position's
	// rectangular sub-region of the 16x16 grid.
	limits BitBoard

	// unmovedPieces is seeded once at construction from the union of all
	// piece placements and held constant: make/unmake never updates it.
	unmovedPieces BitBoard

	// enPassant has at most one set bit: the square an enemy pawn just
	// crossed on a double step.
	enPassant BitBoard

	zobristTable *ZobristTable
	zobristHash  ZobristHash

	tables *Tables

	// checkCache is true when the current zobristHash already had a
	// non-zero visit count when it was entered (it is on the live
	// make/unmake path), or after an Unmake, so memo tables may be trusted
	// on read. A hash whose visits were all unmade counts as new again.
	checkCache bool

	// plyStack records every ply made and not yet unmade, most recent
	// last. Side to move is derived from its top: White if empty, else
	// the opponent of the last mover. Needed internally by unmake (it
	// must restore enPassant from the *previous* ply) and by search
	// (lastPly()).
	plyStack []Ply
}

// NewPosition builds a Position from an ASCII fixture (see the external
// grammar), using a fresh default-seeded ZobristTable and Tables. Use
// NewPositionWithTables to share tables across Positions.
func NewPosition(fixture string) (*Position, error) {
	return NewPositionWithTables(fixture, NewZobristTable(DefaultZobristSeed), NewTables())
}

// NewPositionWithTables builds a Position from an ASCII fixture sharing the
// given ZobristTable and Tables with other Positions (e.g. clones used for
// look-ahead, or successive search nodes along the same game).
func NewPositionWithTables(fixture string, zt *ZobristTable, tables *Tables) (*Position, error) {
	placements, limits, err := parseFixture(fixture)
	if err != nil {
		return nil, err
	}

	p := &Position{
		limits:       limits,
		zobristTable: zt,
		tables:       tables,
	}
	for i := range p.pieceList {
		p.pieceList[i] = nil
	}

	var seeded BitBoard
	for _, pl := range placements {
		idx := pl.Piece.Index()
		p.boards[idx] = p.boards[idx].Or(pl.Square.Bit())
		p.pieceList[idx] = append(p.pieceList[idx], pl.Square)
		seeded = seeded.Or(pl.Square.Bit())
	}
	p.unmovedPieces = seeded

	for _, c := range []Color{White, Black} {
		if n := len(p.pieceList[(Piece{Kind: King, Color: c}).Index()]); n > 1 {
			return nil, &BadFixture{Reason: BadFixtureKingCount, Color: c}
		}
	}

	p.zobristHash = zt.Hash(&p.boards)
	was := tables.IncrementVisit(p.zobristHash)
	p.checkCache = was > 0

	return p, nil
}

// SideToMove returns the color whose turn it is to move: White if no ply
// has been made yet, otherwise the opponent of the last mover.
func (p *Position) SideToMove() Color {
	if len(p.plyStack) == 0 {
		return White
	}
	return p.lastPly().MovingPiece.Color.Opponent()
}

// LastPly returns the most recently made, not-yet-unmade ply, and whether
// one exists.
func (p *Position) LastPly() (Ply, bool) {
	if len(p.plyStack) == 0 {
		return Ply{}, false
	}
	return p.lastPly(), true
}

func (p *Position) lastPly() Ply {
	return p.plyStack[len(p.plyStack)-1]
}

// ZobristHash returns the position's current incremental hash.
func (p *Position) ZobristHash() ZobristHash {
	return p.zobristHash
}

// CheckCache reports whether the shared memo tables may be trusted on read
// for the current zobristHash: true after an Unmake, or when the hash's
// visit count was non-zero on entry (see Tables.IncrementVisit).
func (p *Position) CheckCache() bool {
	return p.checkCache
}

// Tables returns the shared memoisation handle.
func (p *Position) Tables() *Tables {
	return p.tables
}

// Limits returns the active-square mask.
func (p *Position) Limits() BitBoard {
	return p.limits
}

// UnmovedPieces returns the seeded-at-construction starting-square mask.
func (p *Position) UnmovedPieces() BitBoard {
	return p.unmovedPieces
}

// EnPassant returns the current en-passant target mask (zero or one bit).
func (p *Position) EnPassant() BitBoard {
	return p.enPassant
}

// Board returns the bitboard for the given piece.
func (p *Position) Board(piece Piece) BitBoard {
	return p.boards[piece.Index()]
}

// PieceList returns the piece-square list for the given piece. Callers
// must not mutate the returned slice.
func (p *Position) PieceList(piece Piece) []BitIndex {
	return p.pieceList[piece.Index()]
}

// AllPieces is the union of all 12 piece boards.
func (p *Position) AllPieces() BitBoard {
	var acc BitBoard
	for i := 0; i < NumPieces; i++ {
		acc = acc.Or(p.boards[i])
	}
	return acc
}

// AllPiecesOfColor is the union of the 6 piece boards belonging to c.
func (p *Position) AllPiecesOfColor(c Color) BitBoard {
	var acc BitBoard
	for _, piece := range PiecesOfColor(c) {
		acc = acc.Or(p.boards[piece.Index()])
	}
	return acc
}

// BlockedMaskFor returns the squares color c cannot land on: off the
// active region, or already occupied by one of its own pieces.
func (p *Position) BlockedMaskFor(c Color) BitBoard {
	return p.limits.Not().Or(p.AllPiecesOfColor(c))
}

// SquareAt reports the piece occupying sq, if any.
func (p *Position) SquareAt(sq BitIndex) (Piece, bool) {
	b := sq.Bit()
	for i := 0; i < NumPieces; i++ {
		if !p.boards[i].And(b).IsZero() {
			return PieceAt(i), true
		}
	}
	return Piece{}, false
}

// EnPriseBy returns the union of every threat mask color c's pieces
// project -- the en-prise mask used to test whether the opposing king is
// attacked. Memoised in the shared Tables keyed by (zobristHash, color).
func (p *Position) EnPriseBy(c Color) BitBoard {
	if p.checkCache {
		if b, ok := p.tables.ReadEnPrise(p.zobristHash, c); ok {
			return b
		}
	}

	var acc BitBoard
	for _, piece := range PiecesOfColor(c) {
		for _, sq := range p.pieceList[piece.Index()] {
			acc = acc.Or(enPriseMask(p, piece, sq))
		}
	}

	p.tables.WriteEnPrise(p.zobristHash, c, acc)
	return acc
}

// String renders the position as one rank per line, '0' for empty active
// squares and '.' for inactive ones, using the inverted piece-letter
// convention (see Piece.String).
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 0; rank < NumRanks; rank++ {
		if rank > 0 {
			sb.WriteRune('\n')
		}
		for file := 0; file < NumFiles; file++ {
			sq := NewBitIndex(file, rank)
			if p.limits.And(sq.Bit()).IsZero() {
				sb.WriteRune('.')
				continue
			}
			if piece, ok := p.SquareAt(sq); ok {
				sb.WriteString(piece.String())
			} else {
				sb.WriteRune('0')
			}
		}
	}
	return sb.String()
}
