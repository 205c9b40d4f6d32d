package model

// pinAxis is the pair of opposite directions a pinned piece is restricted
// to: [0] points from the piece toward its king, [1] away from it.
type pinAxis [2]Direction

// checkForPin determines whether the side-to-move's piece at pos is pinned
// against its own king. The piece must share a rank, file or diagonal with
// the king, the line between them must be empty, and the first piece on the
// far side must be an enemy slider whose move set covers the axis.
func (gs *GameState) checkForPin(pos Position) (pinAxis, bool) {
	king := gs.Board.KingCoords[gs.ToMove]
	var axis pinAxis

	switch {
	case pos.X == king.X:
		if pos.Y > king.Y {
			axis = pinAxis{up, down}
		} else {
			axis = pinAxis{down, up}
		}
	case pos.Y == king.Y:
		if pos.X > king.X {
			axis = pinAxis{left, right}
		} else {
			axis = pinAxis{right, left}
		}
	case abs(pos.Y-king.Y) == abs(pos.X-king.X):
		switch {
		case pos.Y > king.Y && pos.X > king.X:
			axis = pinAxis{upLeft, downRight}
		case pos.Y > king.Y && pos.X < king.X:
			axis = pinAxis{upRight, downLeft}
		case pos.Y < king.Y && pos.X > king.X:
			axis = pinAxis{downLeft, upRight}
		default:
			axis = pinAxis{downRight, upLeft}
		}
	default:
		return pinAxis{}, false
	}

	// Walk toward the king: only empty squares may intervene.
	dx, dy := axis[0].offset()
	cur := pos
	for {
		cur.X += dx
		cur.Y += dy
		if !boundaryCheck(cur) {
			return pinAxis{}, false
		}
		sq := gs.Board.at(cur)
		if sq.Piece == King {
			if sq.Color != gs.ToMove {
				return pinAxis{}, false
			}
			break
		}
		if sq.Piece != Empty {
			return pinAxis{}, false
		}
	}

	// Walk away from the king: the first occupied square must hold an enemy
	// slider that attacks along this axis.
	dx, dy = axis[1].offset()
	cur = pos
	for {
		cur.X += dx
		cur.Y += dy
		if !boundaryCheck(cur) {
			return pinAxis{}, false
		}
		sq := gs.Board.at(cur)
		if sq.Piece == Empty {
			continue
		}
		if sq.Color == gs.ToMove {
			return pinAxis{}, false
		}
		switch sq.Piece {
		case Queen, Rook, Bishop:
			if containsDir(sq.moveSet(), axis[1]) {
				return axis, true
			}
		}
		return pinAxis{}, false
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
