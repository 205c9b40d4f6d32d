package model

// LegalMoves returns the legal destination squares for the piece at from.
// Selecting an empty square, an off-board square, or an opposing piece is
// rejected without mutating anything.
func (gs *GameState) LegalMoves(from Position) ([]Position, error) {
	if !boundaryCheck(from) {
		return nil, ErrOutOfBounds
	}
	if gs.PromotionSquare != nil {
		return nil, ErrPromotionPending
	}
	sq := gs.Board.at(from)
	if sq.Piece == Empty {
		return nil, ErrNoPiece
	}
	if sq.Color != gs.ToMove {
		return nil, ErrNotYourTurn
	}
	return gs.legalMoves(from), nil
}

// legalMoves assumes from holds a piece of the side to move.
func (gs *GameState) legalMoves(from Position) []Position {
	switch gs.Board.at(from).Piece {
	case Pawn:
		return gs.pawnMoves(from)
	case Knight:
		return gs.knightMoves(from)
	case King:
		return gs.kingMoves(from)
	default:
		return gs.slidingMoves(from)
	}
}

func (gs *GameState) pawnMoves(from Position) []Position {
	dirs := gs.pinRestricted(from)
	var moves []Position
	for _, m := range dirs {
		dx, dy := m.offset()
		to := Position{X: from.X + dx, Y: from.Y + dy}
		if !boundaryCheck(to) {
			continue
		}
		if gs.Board.at(to).Color == gs.ToMove {
			continue
		}
		switch m {
		case up, down:
			if gs.Board.at(to).Piece != Empty {
				continue
			}
			moves = append(moves, to)
			// Two-square advance from the starting rank, over an empty square.
			if (gs.ToMove == White && from.Y == 6) || (gs.ToMove == Black && from.Y == 1) {
				twoUp := Position{X: to.X, Y: to.Y + dy}
				if gs.Board.at(twoUp).Piece == Empty {
					moves = append(moves, twoUp)
				}
			}
		default:
			if gs.Board.at(to).Piece != Empty {
				moves = append(moves, to)
				continue
			}
			if gs.EnPassantTarget != nil && *gs.EnPassantTarget == to {
				moves = append(moves, to)
			}
		}
	}
	if gs.IsCheck {
		moves = gs.filterLegalMoves(from, moves)
	}
	return moves
}

func (gs *GameState) knightMoves(from Position) []Position {
	// A pinned knight can never stay on a line through its own king.
	if _, pinned := gs.checkForPin(from); pinned {
		return nil
	}
	moves := gs.stepMoves(from)
	if gs.IsCheck {
		moves = gs.filterLegalMoves(from, moves)
	}
	return moves
}

func (gs *GameState) kingMoves(from Position) []Position {
	moves := gs.filterLegalMoves(from, gs.stepMoves(from))
	if !gs.IsCheck {
		moves = gs.appendCastleMoves(from, moves)
	}
	return moves
}

func (gs *GameState) slidingMoves(from Position) []Position {
	dirs := gs.pinRestricted(from)
	var moves []Position
	for _, m := range dirs {
		dx, dy := m.offset()
		to := from
		for i := 0; i < 7; i++ {
			to.X += dx
			to.Y += dy
			if !boundaryCheck(to) {
				break
			}
			if gs.Board.at(to).Color == gs.ToMove {
				break
			}
			moves = append(moves, to)
			if gs.Board.at(to).Piece != Empty {
				break
			}
		}
	}
	if gs.IsCheck {
		moves = gs.filterLegalMoves(from, moves)
	}
	return moves
}

// stepMoves is the single-step destination set shared by king and knight.
func (gs *GameState) stepMoves(from Position) []Position {
	var moves []Position
	for _, m := range gs.Board.at(from).moveSet() {
		dx, dy := m.offset()
		to := Position{X: from.X + dx, Y: from.Y + dy}
		if !boundaryCheck(to) {
			continue
		}
		if gs.Board.at(to).Color == gs.ToMove {
			continue
		}
		moves = append(moves, to)
	}
	return moves
}

// pinRestricted intersects the piece's move set with its pin axis, if any.
func (gs *GameState) pinRestricted(from Position) []Direction {
	set := gs.Board.at(from).moveSet()
	axis, pinned := gs.checkForPin(from)
	if !pinned {
		return set
	}
	var dirs []Direction
	for _, m := range axis {
		if containsDir(set, m) {
			dirs = append(dirs, m)
		}
	}
	return dirs
}

// appendCastleMoves adds the two-square king moves when the corresponding
// right is intact and every square the king crosses is empty and unattacked.
// Called only when the king is not in check.
func (gs *GameState) appendCastleMoves(from Position, moves []Position) []Position {
	enemy := gs.ToMove.Other()
	if gs.CastlingRights[gs.ToMove][castleKingside] {
		ok := true
		for i := 1; i <= 2; i++ {
			t := Position{X: from.X + i, Y: from.Y}
			if !boundaryCheck(t) || gs.Board.at(t).Piece != Empty || gs.Board.isAttacked(t, enemy) {
				ok = false
				break
			}
		}
		if ok {
			moves = append(moves, Position{X: from.X + 2, Y: from.Y})
		}
	}
	if gs.CastlingRights[gs.ToMove][castleQueenside] {
		ok := true
		for i := 1; i <= 3; i++ {
			t := Position{X: from.X - i, Y: from.Y}
			if !boundaryCheck(t) || gs.Board.at(t).Piece != Empty || gs.Board.isAttacked(t, enemy) {
				ok = false
				break
			}
		}
		if ok {
			moves = append(moves, Position{X: from.X - 2, Y: from.Y})
		}
	}
	return moves
}

// filterLegalMoves simulates each candidate on the live board, asks whether
// the mover's king is attacked, and restores the board before the next
// candidate. Strictly sequential: every iteration mutates and reverts the
// shared board.
func (gs *GameState) filterLegalMoves(from Position, candidates []Position) []Position {
	side := gs.ToMove
	moving := gs.Board.at(from)
	gs.Board.clearSquare(from)

	kept := candidates[:0]
	for _, to := range candidates {
		if moving.Piece == King {
			gs.Board.KingCoords[side] = to
		}
		replaced := gs.Board.at(to)
		gs.Board.set(to, moving)

		check := gs.Board.isAttacked(gs.Board.KingCoords[side], side.Other())

		gs.Board.set(to, replaced)
		if moving.Piece == King {
			gs.Board.KingCoords[side] = from
		}
		if !check {
			kept = append(kept, to)
		}
	}
	gs.Board.set(from, moving)
	return kept
}
