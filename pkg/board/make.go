package board

// Make mutates p according to ply: moves the piece in its board and piece
// list, removes a captured piece if any, applies a linked secondary move if
// any, sets the new en-passant target, incrementally updates the Zobrist
// hash, and records the ply on the undo stack. See Unmake for the inverse.
func (p *Position) Make(ply Ply) {
	idx := ply.MovingPiece.Index()
	p.boards[idx] = p.boards[idx].AndNot(ply.From.Bit()).Or(ply.To.Bit())
	p.pieceList[idx] = replaceInList(p.pieceList[idx], ply.From, ply.To)

	if ply.Capturing != nil {
		vidx := ply.Capturing.Piece.Index()
		p.boards[vidx] = p.boards[vidx].AndNot(ply.Capturing.Square.Bit())
		p.pieceList[vidx] = removeFromList(p.pieceList[vidx], ply.Capturing.Square)
	}

	if ply.AlsoMove != nil {
		aidx := ply.AlsoMove.Piece.Index()
		p.boards[aidx] = p.boards[aidx].AndNot(ply.AlsoMove.From.Bit()).Or(ply.AlsoMove.To.Bit())
	}

	p.enPassant = ply.EnPassantBoard
	p.zobristHash = p.zobristTable.Move(p.zobristHash, ply)

	was := p.tables.IncrementVisit(p.zobristHash)
	p.checkCache = was > 0

	p.plyStack = append(p.plyStack, ply)
}

// Unmake reverses Make(ply). previous is the ply made immediately before
// ply, or nil if ply was the first ply made on p; previous.EnPassantBoard
// (or the empty board, if previous is nil) is restored as the current
// en-passant target, since that state cannot be recovered from ply alone.
func (p *Position) Unmake(ply Ply, previous *Ply) {
	if len(p.plyStack) > 0 {
		p.plyStack = p.plyStack[:len(p.plyStack)-1]
	}

	p.tables.DecrementVisit(p.zobristHash)
	p.zobristHash = p.zobristTable.Move(p.zobristHash, ply)

	if previous != nil {
		p.enPassant = previous.EnPassantBoard
	} else {
		p.enPassant = EmptyBoard
	}

	idx := ply.MovingPiece.Index()
	p.boards[idx] = p.boards[idx].AndNot(ply.To.Bit()).Or(ply.From.Bit())
	p.pieceList[idx] = replaceInList(p.pieceList[idx], ply.To, ply.From)

	if ply.AlsoMove != nil {
		aidx := ply.AlsoMove.Piece.Index()
		p.boards[aidx] = p.boards[aidx].AndNot(ply.AlsoMove.To.Bit()).Or(ply.AlsoMove.From.Bit())
	}

	if ply.Capturing != nil {
		vidx := ply.Capturing.Piece.Index()
		p.boards[vidx] = p.boards[vidx].Or(ply.Capturing.Square.Bit())
		p.pieceList[vidx] = append(p.pieceList[vidx], ply.Capturing.Square)
	}

	// checkCache: we are returning to a position that was necessarily
	// visited before (it was live on the spine), so cached evals are valid.
	p.checkCache = true
}

func replaceInList(list []BitIndex, from, to BitIndex) []BitIndex {
	for i, sq := range list {
		if sq == from {
			list[i] = to
			return list
		}
	}
	return list
}

func removeFromList(list []BitIndex, sq BitIndex) []BitIndex {
	for i, s := range list {
		if s == sq {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
