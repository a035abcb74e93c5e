package board

// pieceDirs returns the direction set and whether it slides (rather than
// single-steps) for the given kind. Pawns are handled separately.
func pieceDirs(kind PieceKind) (dirs []Step, slides bool) {
	switch kind {
	case King:
		return kingSteps, false
	case Knight:
		return knightSteps, false
	case Rook:
		return rookDirs, true
	case Bishop:
		return bishopDirs, true
	case Queen:
		return queenDirs, true
	default:
		return nil, false
	}
}

// moveMask returns the squares piece at sq could move to, ignoring check.
func moveMask(p *Position, piece Piece, sq BitIndex) BitBoard {
	if piece.Kind == Pawn {
		return pawnMoveMask(p, piece.Color, sq)
	}

	origin := sq.Bit()
	blocked := p.BlockedMaskFor(piece.Color)
	capturable := p.AllPiecesOfColor(piece.Color.Opponent())

	dirs, slides := pieceDirs(piece.Kind)
	if slides {
		return stepInDirs(origin, dirs, blocked, capturable)
	}
	return shiftInDirs(origin, dirs).AndNot(blocked)
}

// enPriseMask returns the squares piece at sq threatens. Identical to the
// move mask for every kind except Pawn, whose threat is only its two
// diagonal capture squares (a pawn does not threaten the square it can
// merely push onto).
func enPriseMask(p *Position, piece Piece, sq BitIndex) BitBoard {
	if piece.Kind == Pawn {
		return pawnCaptureTargets(piece.Color, sq).And(p.limits)
	}
	return moveMask(p, piece, sq)
}

// plysFrom generates the pseudolegal plys for the piece at sq.
func plysFrom(p *Position, piece Piece, sq BitIndex) []Ply {
	if piece.Kind == Pawn {
		return pawnPlysFrom(p, piece.Color, sq)
	}

	var plys []Ply
	mask := moveMask(p, piece, sq)
	for !mask.IsZero() {
		to := SingleBitIndex(mask)
		mask = mask.AndNot(to.Bit())

		ply := Ply{MovingPiece: piece, From: sq, To: to}
		if c := findCapture(p, piece.Color.Opponent(), to); c != nil {
			ply.Capturing = c
		}
		plys = append(plys, ply)
	}
	return plys
}

// findCapture reports the opponent piece occupying sq, if any.
func findCapture(p *Position, opponent Color, sq BitIndex) *Capture {
	if victim, ok := p.SquareAt(sq); ok && victim.Color == opponent {
		return &Capture{Piece: victim, Square: sq}
	}
	return nil
}

// forward returns the pawn push direction for c: north for White, south
// for Black (White is the lowercase, "moves up" convention).
func forward(c Color) Step {
	if c == White {
		return north
	}
	return south
}

func pawnCaptureTargets(c Color, sq BitIndex) BitBoard {
	origin := sq.Bit()
	if c == White {
		return northWest(origin).Or(northEast(origin))
	}
	return southWest(origin).Or(southEast(origin))
}

func pawnMoveMask(p *Position, c Color, sq BitIndex) BitBoard {
	origin := sq.Bit()
	fwd := forward(c)
	occupied := p.AllPieces()

	var mask BitBoard
	one := fwd(origin).And(p.limits).AndNot(occupied)
	mask = mask.Or(one)

	if !one.IsZero() && !origin.And(p.unmovedPieces).IsZero() {
		two := fwd(one).And(p.limits).AndNot(occupied)
		mask = mask.Or(two)
	}

	enemy := p.AllPiecesOfColor(c.Opponent())
	mask = mask.Or(pawnCaptureTargets(c, sq).And(p.limits).And(enemy))
	mask = mask.Or(pawnCaptureTargets(c, sq).And(p.enPassant))

	return mask
}

func pawnPlysFrom(p *Position, c Color, sq BitIndex) []Ply {
	origin := sq.Bit()
	fwd := forward(c)
	occupied := p.AllPieces()

	var plys []Ply

	one := fwd(origin).And(p.limits).AndNot(occupied)
	if !one.IsZero() {
		to := SingleBitIndex(one)
		plys = append(plys, Ply{MovingPiece: Piece{Kind: Pawn, Color: c}, From: sq, To: to})

		if !origin.And(p.unmovedPieces).IsZero() {
			two := fwd(one).And(p.limits).AndNot(occupied)
			if !two.IsZero() {
				toTwo := SingleBitIndex(two)
				plys = append(plys, Ply{
					MovingPiece:    Piece{Kind: Pawn, Color: c},
					From:           sq,
					To:             toTwo,
					EnPassantBoard: one,
				})
			}
		}
	}

	targets := pawnCaptureTargets(c, sq).And(p.limits)
	captureMask := targets
	for !captureMask.IsZero() {
		to := SingleBitIndex(captureMask)
		captureMask = captureMask.AndNot(to.Bit())

		if cap := findCapture(p, c.Opponent(), to); cap != nil {
			plys = append(plys, Ply{MovingPiece: Piece{Kind: Pawn, Color: c}, From: sq, To: to, Capturing: cap})
		} else if !to.Bit().And(p.enPassant).IsZero() {
			victimSq := SingleBitIndex(forward(c.Opponent())(to.Bit()))
			if victim, ok := p.SquareAt(victimSq); ok && victim.Color == c.Opponent() && victim.Kind == Pawn {
				plys = append(plys, Ply{
					MovingPiece: Piece{Kind: Pawn, Color: c},
					From:        sq,
					To:          to,
					Capturing:   &Capture{Piece: victim, Square: victimSq},
				})
			}
		}
	}

	return plys
}

// legalityFilter returns the subset of plys that leave the moving side's
// own king safe and do not repeat the resulting position a third time.
func legalityFilter(p *Position, plys []Ply, mover Color) []Ply {
	var legal []Ply
	for _, ply := range plys {
		prev, hasPrev := p.LastPly()
		p.Make(ply)
		if legalityCheck(p, mover) {
			legal = append(legal, ply)
		}
		if hasPrev {
			p.Unmake(ply, &prev)
		} else {
			p.Unmake(ply, nil)
		}
	}
	return legal
}

func legalityCheck(p *Position, mover Color) bool {
	if p.tables.VisitCount(p.zobristHash) >= 3 {
		return false
	}
	kingBoard := p.boards[Piece{Kind: King, Color: mover}.Index()]
	if kingBoard.IsZero() {
		return true
	}
	return kingBoard.And(p.EnPriseBy(mover.Opponent())).IsZero()
}

// AllLegalPlys collects every legal ply for color c, across all of its
// pieces.
func (p *Position) AllLegalPlys(c Color) []Ply {
	var all []Ply
	for _, piece := range PiecesOfColor(c) {
		for _, sq := range append([]BitIndex(nil), p.pieceList[piece.Index()]...) {
			all = append(all, legalityFilter(p, plysFrom(p, piece, sq), c)...)
		}
	}
	return all
}

// FindLegalPly looks up the legal ply for the side to move whose From/To
// match the given squares. Front-ends that accept externally-supplied move
// coordinates (e.g. a player's clicked or typed move) should resolve them
// through this rather than constructing a Ply by hand, since Make itself
// does not validate its argument against the current position.
func (p *Position) FindLegalPly(from, to BitIndex) (Ply, error) {
	for _, ply := range p.AllLegalPlys(p.SideToMove()) {
		if ply.From == from && ply.To == to {
			return ply, nil
		}
	}
	return Ply{}, &IllegalPly{
		Ply:    Ply{From: from, To: to},
		Reason: "no legal ply matches the given squares",
	}
}
