package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedFEN is returned for FEN input that cannot be decoded. Decode
// failures never touch live game state.
var ErrMalformedFEN = errors.New("malformed FEN")

// FEN serializes the position in the standard six-field format.
func (gs *GameState) FEN() string {
	var b strings.Builder

	for y := 0; y < 8; y++ {
		emptyCount := 0
		for x := 0; x < 8; x++ {
			sq := gs.Board.Board[y][x]
			if sq.Piece == Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				b.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			letter, _ := fenLetter(sq.Piece)
			if sq.Color == White {
				letter -= 'a' - 'A'
			}
			b.WriteByte(letter)
		}
		if emptyCount > 0 {
			b.WriteString(strconv.Itoa(emptyCount))
		}
		if y < 7 {
			b.WriteByte('/')
		}
	}

	if gs.ToMove == White {
		b.WriteString(" w ")
	} else {
		b.WriteString(" b ")
	}

	castle := ""
	if gs.CastlingRights[White][castleKingside] {
		castle += "K"
	}
	if gs.CastlingRights[White][castleQueenside] {
		castle += "Q"
	}
	if gs.CastlingRights[Black][castleKingside] {
		castle += "k"
	}
	if gs.CastlingRights[Black][castleQueenside] {
		castle += "q"
	}
	if castle == "" {
		castle = "-"
	}
	b.WriteString(castle)

	if gs.EnPassantTarget == nil {
		b.WriteString(" -")
	} else {
		b.WriteString(" " + gs.EnPassantTarget.getSquareNotation())
	}

	fmt.Fprintf(&b, " %d %d", gs.HalfmoveClock, gs.FullmoveNumber)
	return b.String()
}

// ParseFEN decodes a six-field FEN string into a fresh game state.
func ParseFEN(fen string) (*GameState, error) {
	fields := strings.Fields(fen)
	if len(fields) < 6 {
		return nil, fmt.Errorf("%w: expected 6 fields, got %d", ErrMalformedFEN, len(fields))
	}

	gs := &GameState{
		Board:          newEmptyBoardState(),
		FullmoveNumber: 1,
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %d", ErrMalformedFEN, len(ranks))
	}
	var kingSeen [2]bool
	for y, rank := range ranks {
		x := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				x += int(c - '0')
				continue
			}
			lower := c
			color := Black
			if c >= 'A' && c <= 'Z' {
				lower = c + 'a' - 'A'
				color = White
			}
			piece, ok := pieceFromLetter(lower)
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece letter %q", ErrMalformedFEN, string(c))
			}
			if x > 7 {
				return nil, fmt.Errorf("%w: rank %d overflows 8 files", ErrMalformedFEN, 8-y)
			}
			gs.Board.placePiece(piece, color, Position{X: x, Y: y})
			if piece == King {
				kingSeen[color] = true
			}
			x++
		}
		if x != 8 {
			return nil, fmt.Errorf("%w: rank %d sums to %d files", ErrMalformedFEN, 8-y, x)
		}
	}

	switch fields[1] {
	case "w":
		gs.ToMove = White
	case "b":
		gs.ToMove = Black
	default:
		return nil, fmt.Errorf("%w: unknown active color %q", ErrMalformedFEN, fields[1])
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				gs.CastlingRights[White][castleKingside] = true
			case 'Q':
				gs.CastlingRights[White][castleQueenside] = true
			case 'k':
				gs.CastlingRights[Black][castleKingside] = true
			case 'q':
				gs.CastlingRights[Black][castleQueenside] = true
			default:
				return nil, fmt.Errorf("%w: unknown castling letter %q", ErrMalformedFEN, string(fields[2][i]))
			}
		}
	}

	if fields[3] != "-" {
		target, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: bad en-passant square %q", ErrMalformedFEN, fields[3])
		}
		gs.EnPassantTarget = &target
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("%w: bad halfmove clock %q", ErrMalformedFEN, fields[4])
	}
	gs.HalfmoveClock = halfmove

	fullmoves, err := strconv.Atoi(fields[5])
	if err != nil || fullmoves < 0 {
		return nil, fmt.Errorf("%w: bad fullmove number %q", ErrMalformedFEN, fields[5])
	}
	gs.FullmoveNumber = fullmoves

	if kingSeen[gs.ToMove] {
		gs.IsCheck = gs.IsInCheck(gs.ToMove)
	}
	return gs, nil
}

// LoadFEN replaces the state with the decoded position. On failure the
// current state is left untouched.
func (gs *GameState) LoadFEN(fen string) error {
	parsed, err := ParseFEN(fen)
	if err != nil {
		return err
	}
	*gs = *parsed
	return nil
}
