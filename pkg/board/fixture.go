package board

import "strings"

// placement is a single parsed fixture entry.
type placement struct {
	Square BitIndex
	Piece  Piece
}

// parseFixture parses the whitespace-trimmed ASCII grammar described in the
// external interface: '\n' advances a row and resets the column cursor;
// other whitespace is skipped; '0' marks an empty but active square;
// lowercase letters are White pieces, uppercase Black; any other rune is a
// parse error. Every visited square, including empty ones, is marked
// active in the returned limits mask.
func parseFixture(s string) ([]placement, BitBoard, error) {
	var placements []placement
	var limits BitBoard

	row, col := 0, 0
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r == '\n':
			row++
			col = 0
			continue
		case r == ' ' || r == '\t' || r == '\r':
			continue
		}

		if col >= NumFiles {
			return nil, BitBoard{}, &BadFixture{Reason: BadFixtureTooWide, Row: row, Col: col, Char: r}
		}
		if row >= NumRanks {
			return nil, BitBoard{}, &BadFixture{Reason: BadFixtureTooTall, Row: row, Col: col, Char: r}
		}

		sq := NewBitIndex(col, row)
		limits = limits.Or(sq.Bit())

		if r != '0' {
			p, ok := ParsePieceChar(r)
			if !ok {
				return nil, BitBoard{}, &BadFixture{Reason: BadFixtureUnknownChar, Row: row, Col: col, Char: r}
			}
			placements = append(placements, placement{Square: sq, Piece: p})
		}

		col++
	}

	return placements, limits, nil
}
