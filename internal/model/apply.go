package model

// MoveOutcome reports what a move produced: whether the new side to move is
// in check, whether the game ended, and whether the turn is suspended
// awaiting a promotion choice.
type MoveOutcome struct {
	Check            bool     `json:"check"`
	Terminal         Terminal `json:"terminal"`
	PendingPromotion bool     `json:"pendingPromotion"`
}

// ApplyMove validates and executes a move for the side to move. The
// destination must be in the piece's current legal-move set. promotion may
// be Empty; if the move then turns out to promote, the turn is suspended
// and ResolvePromotion completes it.
func (gs *GameState) ApplyMove(from, to Position, promotion PieceType) (MoveOutcome, error) {
	if !boundaryCheck(from) || !boundaryCheck(to) {
		return MoveOutcome{}, ErrOutOfBounds
	}
	if gs.PromotionSquare != nil {
		return MoveOutcome{}, ErrPromotionPending
	}
	if promotion != Empty && !isPromotionPiece(promotion) {
		return MoveOutcome{}, ErrBadPromotion
	}
	moving := gs.Board.at(from)
	if moving.Piece == Empty {
		return MoveOutcome{}, ErrNoPiece
	}
	if moving.Color != gs.ToMove {
		return MoveOutcome{}, ErrNotYourTurn
	}
	if !containsPosition(gs.legalMoves(from), to) {
		return MoveOutcome{}, ErrIllegalMove
	}

	gs.updateHalfmoveClock(from, to)
	gs.updateEnPassantCapture(from, to)
	gs.updateEnPassantField(from, to)
	gs.updateCastlingRights(from)
	gs.castleKing(from, to)
	if moving.Piece == King {
		gs.Board.KingCoords[gs.ToMove] = to
	}
	gs.Board.set(to, moving)
	gs.Board.clearSquare(from)

	gs.SelectedSquare = nil
	gs.LegalDests = nil
	gs.LastMove = &SimpleMove{From: from, To: to}

	if gs.shouldPromote(to) {
		if promotion == Empty {
			target := to
			gs.PromotionSquare = &target
			return MoveOutcome{PendingPromotion: true}, nil
		}
		gs.Board.set(to, newSquare(promotion, gs.ToMove))
	}

	return gs.finishTurn(), nil
}

// ResolvePromotion places the externally chosen piece on the suspended
// promotion square and completes the turn.
func (gs *GameState) ResolvePromotion(p PieceType) (MoveOutcome, error) {
	if gs.PromotionSquare == nil {
		return MoveOutcome{}, ErrNoPendingPromotion
	}
	if !isPromotionPiece(p) {
		return MoveOutcome{}, ErrBadPromotion
	}
	gs.Board.set(*gs.PromotionSquare, newSquare(p, gs.ToMove))
	gs.PromotionSquare = nil
	return gs.finishTurn(), nil
}

// updateHalfmoveClock resets the clock on a pawn move or capture, else
// increments it. Runs before the board mutates.
func (gs *GameState) updateHalfmoveClock(from, to Position) {
	if gs.Board.at(from).Piece == Pawn || gs.Board.at(to).Piece != Empty {
		gs.HalfmoveClock = 0
	} else {
		gs.HalfmoveClock++
	}
}

// updateEnPassantCapture removes the passed pawn when a pawn lands on the
// en-passant target square.
func (gs *GameState) updateEnPassantCapture(from, to Position) {
	if gs.EnPassantTarget == nil {
		return
	}
	if gs.Board.at(from).Piece != Pawn {
		return
	}
	if *gs.EnPassantTarget != to {
		return
	}
	if gs.ToMove == White {
		gs.Board.clearSquare(Position{X: to.X, Y: to.Y + 1})
	} else {
		gs.Board.clearSquare(Position{X: to.X, Y: to.Y - 1})
	}
}

// updateEnPassantField clears the target and, on a two-square pawn advance,
// sets it to the square passed over.
func (gs *GameState) updateEnPassantField(from, to Position) {
	gs.EnPassantTarget = nil
	if gs.Board.at(from).Piece != Pawn {
		return
	}
	if abs(to.Y-from.Y) != 2 {
		return
	}
	target := Position{X: to.X, Y: (from.Y + to.Y) / 2}
	gs.EnPassantTarget = &target
}

// updateCastlingRights forfeits rights when the king moves, or the side's
// rook leaves its home file.
func (gs *GameState) updateCastlingRights(from Position) {
	switch gs.Board.at(from).Piece {
	case King:
		gs.CastlingRights[gs.ToMove] = [2]bool{false, false}
	case Rook:
		if from.X == 7 {
			gs.CastlingRights[gs.ToMove][castleKingside] = false
		} else if from.X == 0 {
			gs.CastlingRights[gs.ToMove][castleQueenside] = false
		}
	}
}

// castleKing relocates the rook when the king moves two files.
func (gs *GameState) castleKing(from, to Position) {
	if gs.Board.at(from).Piece != King {
		return
	}
	if abs(to.X-from.X) != 2 {
		return
	}
	if to.X > from.X {
		gs.Board.set(Position{X: to.X - 1, Y: to.Y}, newSquare(Rook, gs.ToMove))
		gs.Board.clearSquare(Position{X: 7, Y: from.Y})
	} else {
		gs.Board.set(Position{X: to.X + 1, Y: to.Y}, newSquare(Rook, gs.ToMove))
		gs.Board.clearSquare(Position{X: 0, Y: from.Y})
	}
}

func (gs *GameState) shouldPromote(to Position) bool {
	if gs.Board.at(to).Piece != Pawn {
		return false
	}
	if gs.ToMove == White {
		return to.Y == 0
	}
	return to.Y == 7
}

// finishTurn advances the turn, recomputes the check flag for the new side
// to move, and classifies the position: checkmate or stalemate when no
// piece of the side to move has a legal move.
func (gs *GameState) finishTurn() MoveOutcome {
	if gs.ToMove == Black {
		gs.FullmoveNumber++
	}
	gs.ToMove = gs.ToMove.Other()
	gs.IsCheck = gs.IsInCheck(gs.ToMove)

	outcome := MoveOutcome{Check: gs.IsCheck}
	if !gs.hasAnyLegalMove() {
		if gs.IsCheck {
			gs.Resolve = TerminalCheckmate
		} else {
			gs.Resolve = TerminalStalemate
		}
		outcome.Terminal = gs.Resolve
	}
	return outcome
}

// hasAnyLegalMove scans every square owned by the side to move through the
// move generator.
func (gs *GameState) hasAnyLegalMove() bool {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			pos := Position{X: x, Y: y}
			if gs.Board.at(pos).Color != gs.ToMove {
				continue
			}
			if len(gs.legalMoves(pos)) > 0 {
				return true
			}
		}
	}
	return false
}

func containsPosition(moves []Position, p Position) bool {
	for _, m := range moves {
		if m == p {
			return true
		}
	}
	return false
}
