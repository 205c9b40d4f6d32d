package model

import "encoding/json"

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
	Empty  PieceType = ""
)

// Color indexes kingCoords and castlingRights, so the numeric values matter:
// White=0, Black=1, NoColor=2 (empty squares).
type Color int

const (
	White Color = iota
	Black
	NoColor
)

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return ""
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "white":
		*c = White
	case "black":
		*c = Black
	default:
		*c = NoColor
	}
	return nil
}

var (
	royalDirs = []Direction{up, down, left, right, upRight, upLeft, downRight, downLeft}
	rookDirs  = []Direction{up, down, left, right}
	bishDirs  = []Direction{upRight, upLeft, downRight, downLeft}
	horseDirs = []Direction{rightRightUp, rightUpUp, rightRightDown, rightDownDown,
		leftLeftUp, leftUpUp, leftLeftDown, leftDownDown}
	whitePawnDirs = []Direction{up, upLeft, upRight}
	blackPawnDirs = []Direction{down, downLeft, downRight}
)

// moveSet returns the fixed directions a piece may step along. Pawns are the
// only piece whose set depends on color.
func moveSet(p PieceType, c Color) []Direction {
	switch p {
	case King, Queen:
		return royalDirs
	case Rook:
		return rookDirs
	case Bishop:
		return bishDirs
	case Knight:
		return horseDirs
	case Pawn:
		if c == White {
			return whitePawnDirs
		}
		return blackPawnDirs
	}
	return nil
}

// fenLetter is the lowercase FEN letter for a piece type.
func fenLetter(p PieceType) (byte, bool) {
	switch p {
	case King:
		return 'k', true
	case Queen:
		return 'q', true
	case Rook:
		return 'r', true
	case Bishop:
		return 'b', true
	case Knight:
		return 'n', true
	case Pawn:
		return 'p', true
	}
	return 0, false
}

func pieceFromLetter(c byte) (PieceType, bool) {
	switch c {
	case 'k':
		return King, true
	case 'q':
		return Queen, true
	case 'r':
		return Rook, true
	case 'b':
		return Bishop, true
	case 'n':
		return Knight, true
	case 'p':
		return Pawn, true
	}
	return Empty, false
}

func isPromotionPiece(p PieceType) bool {
	switch p {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}
