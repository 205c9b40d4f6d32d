package model

// isAttacked reports whether any piece of side `by` threatens pos. Each of
// the 16 directions is walked outward from pos until the board edge or the
// first occupied square; a piece of the defending side kills the ray. The
// directions are independent, so the scan short-circuits on the first hit.
func (bs *BoardState) isAttacked(pos Position, by Color) bool {
	for _, dir := range allDirections {
		if bs.attackedFrom(pos, dir, by) {
			return true
		}
	}
	return false
}

func (bs *BoardState) attackedFrom(pos Position, dir Direction, by Color) bool {
	dx, dy := dir.offset()
	defender := by.Other()
	cur := pos
	for i := 0; i < 7; i++ {
		cur.X += dx
		cur.Y += dy
		if !boundaryCheck(cur) {
			return false
		}
		sq := bs.at(cur)
		if sq.Color == defender {
			return false
		}
		switch sq.Piece {
		case Empty:
			continue
		case King, Knight:
			// Only adjacency / L-shape, never as a slider.
			return i == 0 && containsDir(sq.moveSet(), dir)
		case Pawn:
			if i > 0 {
				return false
			}
			// The capturing diagonal seen from the attacked square: a black
			// pawn sits up-left/up-right of its victim, a white pawn
			// down-left/down-right.
			if by == Black {
				return dir == upLeft || dir == upRight
			}
			return dir == downLeft || dir == downRight
		default:
			// Queen, rook, bishop: the ray already stopped at the first
			// blocker, so membership in the move set decides.
			return containsDir(sq.moveSet(), dir)
		}
	}
	return false
}
