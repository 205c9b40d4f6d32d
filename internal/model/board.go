package model

import "fmt"

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) getSquareNotation() string {
	return fmt.Sprintf("%c%d", p.X+'a', 8-p.Y)
}

// ParseSquare parses algebraic notation ("e4", file case-insensitive) into
// grid coordinates. Row 0 is rank 8.
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("invalid square %q", s)
	}
	file := s[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, fmt.Errorf("invalid square %q", s)
	}
	return Position{X: int(file - 'a'), Y: 8 - int(rank-'0')}, nil
}

// Square is a single board cell. Color is NoColor iff Piece is Empty.
type Square struct {
	Piece PieceType `json:"piece"`
	Color Color     `json:"color"`
}

func newSquare(p PieceType, c Color) Square {
	if p == Empty {
		return Square{Piece: Empty, Color: NoColor}
	}
	return Square{Piece: p, Color: c}
}

func (s Square) moveSet() []Direction {
	return moveSet(s.Piece, s.Color)
}

// BoardState is the 8x8 grid, row-major with row 0 = rank 8, plus the
// tracked square of each side's king. KingCoords must always equal the
// square holding that side's king; every king move or placement updates it.
type BoardState struct {
	Board      [8][8]Square `json:"board"`
	KingCoords [2]Position  `json:"kingCoords"`
}

func newBoardState() *BoardState {
	bs := newEmptyBoardState()
	back := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x, p := range back {
		bs.Board[0][x] = newSquare(p, Black)
		bs.Board[7][x] = newSquare(p, White)
	}
	for x := 0; x < 8; x++ {
		bs.Board[1][x] = newSquare(Pawn, Black)
		bs.Board[6][x] = newSquare(Pawn, White)
	}
	bs.KingCoords[White] = Position{X: 4, Y: 7}
	bs.KingCoords[Black] = Position{X: 4, Y: 0}
	return bs
}

func newEmptyBoardState() *BoardState {
	bs := &BoardState{}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			bs.Board[y][x] = newSquare(Empty, NoColor)
		}
	}
	return bs
}

func boundaryCheck(p Position) bool {
	return p.X >= 0 && p.X < 8 && p.Y >= 0 && p.Y < 8
}

func (bs *BoardState) at(p Position) Square {
	return bs.Board[p.Y][p.X]
}

func (bs *BoardState) set(p Position, s Square) {
	bs.Board[p.Y][p.X] = s
}

func (bs *BoardState) placePiece(p PieceType, c Color, pos Position) {
	bs.set(pos, newSquare(p, c))
	if p == King {
		bs.KingCoords[c] = pos
	}
}

func (bs *BoardState) clearSquare(pos Position) {
	bs.set(pos, newSquare(Empty, NoColor))
}
