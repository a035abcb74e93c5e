package board

// Color is the side a Piece belongs to: White or Black. Its ordinal doubles
// as the multiplier selecting a piece's half of the 12-slot piece array (see
// Piece.Index) and as the sign of Color.Unit for material scoring.
type Color uint8

const (
	White Color = iota
	Black
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Unit returns the signed multiplier for the color's side of a material or
// positional term: +1 for White, -1 for Black.
func (c Color) Unit() Score {
	if c == White {
		return 1
	}
	return -1
}

func (c Color) String() string {
	if c == Black {
		return "b"
	}
	return "w"
}

// PieceKind represents a chess piece kind with no color. The ordering is
// significant: King < Queen < Rook < Bishop < Knight < Pawn, used as a
// tie-breaker in Ply ordering (see ply.go).
type PieceKind uint8

const (
	King PieceKind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn

	NumPieceKinds = int(Pawn) + 1
)

func (k PieceKind) IsValid() bool {
	return k <= Pawn
}

func (k PieceKind) String() string {
	switch k {
	case King:
		return "k"
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	case Pawn:
		return "p"
	default:
		return "?"
	}
}

// Piece is a (PieceKind, Color) pair. Index returns its slot in a 12-wide
// piece-board/piece-list array: kind + 6*colorOrdinal.
type Piece struct {
	Kind  PieceKind
	Color Color
}

const NumPieces = NumPieceKinds * 2

// Index returns the slot of p in a 12-element piece array.
func (p Piece) Index() int {
	return int(p.Kind) + NumPieceKinds*int(p.Color)
}

// PieceAt returns the Piece occupying slot i of a 12-element piece array.
func PieceAt(i int) Piece {
	return Piece{Kind: PieceKind(i % NumPieceKinds), Color: Color(i / NumPieceKinds)}
}

// AllPieces returns the 12 pieces in index order.
func AllPieces() []Piece {
	ret := make([]Piece, NumPieces)
	for i := range ret {
		ret[i] = PieceAt(i)
	}
	return ret
}

// PiecesOfColor returns the 6 pieces of the given color, in kind order.
func PiecesOfColor(c Color) []Piece {
	ret := make([]Piece, NumPieceKinds)
	for k := 0; k < NumPieceKinds; k++ {
		ret[k] = Piece{Kind: PieceKind(k), Color: c}
	}
	return ret
}

// String renders the piece using the inverted convention: lowercase is
// White, uppercase is Black. This reflects the source fixture format (see
// fixture.go) and is surprising -- document at every boundary that uses it.
func (p Piece) String() string {
	if p.Color == Black {
		return upper(p.Kind.String())
	}
	return p.Kind.String()
}

// ParsePieceChar parses the inverted fixture character convention: a
// lowercase letter is a White piece, uppercase is a Black piece. '0' and any
// other unrecognized rune report ok=false.
func ParsePieceChar(r rune) (Piece, bool) {
	kind, ok := parsePieceKindChar(r)
	if !ok {
		return Piece{}, false
	}
	color := White
	if r >= 'A' && r <= 'Z' {
		color = Black
	}
	return Piece{Kind: kind, Color: color}, true
}

func parsePieceKindChar(r rune) (PieceKind, bool) {
	switch r {
	case 'k', 'K':
		return King, true
	case 'q', 'Q':
		return Queen, true
	case 'r', 'R':
		return Rook, true
	case 'b', 'B':
		return Bishop, true
	case 'n', 'N':
		return Knight, true
	case 'p', 'P':
		return Pawn, true
	default:
		return 0, false
	}
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// PieceWithBoard bundles a Piece with its position bitboard. Move generators
// do not use it: they discover a capture's victim from a destination bit
// through Position.SquareAt.
type PieceWithBoard struct {
	Piece Piece
	Board BitBoard
}
