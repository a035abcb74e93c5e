package board

import "fmt"

// Capture records a captured piece and the square it occupied. The square
// differs from the moving ply's To only for en-passant captures.
type Capture struct {
	Piece  Piece
	Square BitIndex
}

// LinkedMove is a companion move of a second piece attached to a Ply.
// Reserved for a future castling extension: it round-trips through
// make/unmake but no generator in this package produces one.
type LinkedMove struct {
	Piece    Piece
	From, To BitIndex
}

// Ply is a single side's move.
type Ply struct {
	MovingPiece Piece
	From, To    BitIndex

	Capturing *Capture
	AlsoMove  *LinkedMove

	// EnPassantBoard is the square to set as Position.enPassant after this
	// ply is made. Only pawn double steps set this.
	EnPassantBoard BitBoard

	// PVMove is an ordering hint: true if this ply was the principal
	// variation at this node in a previous search iteration.
	PVMove bool
}

// IsCapture reports whether the ply captures a piece.
func (p Ply) IsCapture() bool {
	return p.Capturing != nil
}

// mvvValue and lvaValue implement the Most-Valuable-Victim /
// Least-Valuable-Attacker scoring table.
var mvvValue = map[PieceKind]int{Queen: 25, Rook: 19, Bishop: 13, Knight: 7, Pawn: 1, King: 0}
var lvaValue = map[PieceKind]int{Queen: 1, Rook: 2, Bishop: 3, Knight: 4, Pawn: 5, King: 0}

// Priority is the total order score used to drive the search's move
// priority queue: PV moves first, then captures (by MVV-LVA), then
// non-captures (by PieceKind ordering). Higher sorts greater.
type Priority int32

const (
	pvBonus       Priority = 1_000_000
	captureOffset Priority = 10_000
)

// Priority computes p's place in the total order described in the data
// model: PV beats everything; among the rest, captures beat non-captures;
// among captures, MVV*5+LVA; among non-captures, PieceKind ordinal.
func (p Ply) Priority() Priority {
	var pr Priority
	if p.PVMove {
		pr += pvBonus
	}
	if p.Capturing != nil {
		pr += captureOffset + Priority(5*mvvValue[p.Capturing.Piece.Kind]+lvaValue[p.MovingPiece.Kind])
	} else {
		pr += Priority(p.MovingPiece.Kind)
	}
	return pr
}

// String renders the ply as "<piece-char> <from><to>", with an optional
// " x<victim-char>" suffix when capturing.
func (p Ply) String() string {
	if p.Capturing != nil {
		return fmt.Sprintf("%v %v%v x%v", p.MovingPiece, p.From, p.To, p.Capturing.Piece)
	}
	return fmt.Sprintf("%v %v%v", p.MovingPiece, p.From, p.To)
}
