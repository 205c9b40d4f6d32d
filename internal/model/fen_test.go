package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/castlegate/chess-backend/internal/testutil"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestStartingPositionFEN(t *testing.T) {
	gs := newGameState()
	testutil.AssertEqual(t, gs.FEN(), startFEN)
}

func TestFENRoundTrip(t *testing.T) {
	t.Parallel()
	fens := []string{
		startFEN,
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		"r3k2r/1bppqppp/p1n2n2/2b1p3/B3P3/2NP1N2/1PP2PPP/R1BQ1RK1 b kq - 2 10",
		"r4rk1/5ppp/p2p4/1bb1p3/BP6/2PP4/5PPP/R1B1R1K1 b - b3 0 20",
		"8/5kBp/3p3P/5pb1/8/5P2/4R2K/3r4 b - - 8 52",
		"8/4P3/8/8/8/8/k7/4K3 w - - 0 1",
		"1rb1B2Q/pp3k2/3Q4/3p3p/1P6/8/P1P2PPP/R1B1K2R b KQ - 1 22",
		"8/8/8/8/8/8/8/8 w - - 0 1",
	}
	for _, fen := range fens {
		gs := mustParseFEN(t, fen)
		testutil.AssertEqual(t, gs.FEN(), fen, "round trip %q", fen)
	}
}

func TestParseFENFields(t *testing.T) {
	t.Parallel()
	gs := mustParseFEN(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR b Kq e3 12 34")

	testutil.AssertEqual(t, gs.ToMove, Black)
	testutil.AssertEqual(t, gs.CastlingRights, [2][2]bool{{true, false}, {false, true}})
	testutil.AssertEqual(t, *gs.EnPassantTarget, sq(t, "e3"))
	testutil.AssertEqual(t, gs.HalfmoveClock, 12)
	testutil.AssertEqual(t, gs.FullmoveNumber, 34)
	testutil.AssertEqual(t, gs.Board.KingCoords[White], sq(t, "e1"))
	testutil.AssertEqual(t, gs.Board.KingCoords[Black], sq(t, "e8"))
}

func TestParseFENKingCoords(t *testing.T) {
	t.Parallel()
	gs := mustParseFEN(t, "8/2k5/8/8/8/8/8/6K1 w - - 0 1")
	testutil.AssertEqual(t, gs.Board.KingCoords[White], sq(t, "g1"))
	testutil.AssertEqual(t, gs.Board.KingCoords[Black], sq(t, "c7"))
}

func TestParseFENEnPassantCaseInsensitive(t *testing.T) {
	t.Parallel()
	gs := mustParseFEN(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR b - E3 0 2")
	testutil.AssertEqual(t, *gs.EnPassantTarget, sq(t, "e3"))
}

func TestParseFENCheckFlag(t *testing.T) {
	t.Parallel()
	gs := mustParseFEN(t, "4r3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertTrue(t, gs.IsCheck)

	gs = mustParseFEN(t, "3r4/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertFalse(t, gs.IsCheck)
}

func TestParseFENMalformed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
	}{
		{name: "too few fields", fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"},
		{name: "seven ranks", fen: "pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{name: "rank too short", fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1"},
		{name: "rank too long", fen: "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{name: "unknown piece letter", fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1"},
		{name: "bad active color", fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{name: "bad castling letter", fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KZkq - 0 1"},
		{name: "bad en passant square", fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1"},
		{name: "non-numeric halfmove clock", fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1"},
		{name: "negative fullmove number", fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 -1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseFEN(tc.fen)
			testutil.AssertError(t, err, tc.fen)
			if err != nil && !errors.Is(err, ErrMalformedFEN) {
				t.Errorf("error %v is not ErrMalformedFEN", err)
			}
		})
	}
}

func TestLoadFENLeavesStateOnError(t *testing.T) {
	t.Parallel()
	gs := newGameState()
	err := gs.LoadFEN("not a position")
	testutil.AssertError(t, err)
	testutil.AssertEqual(t, gs.FEN(), startFEN, "failed decode must not corrupt state")
}

func TestLoadFENReplacesState(t *testing.T) {
	t.Parallel()
	gs := newGameState()
	want := "8/5kBp/3p3P/5pb1/8/5P2/4R2K/3r4 b - - 8 52"
	testutil.AssertNoError(t, gs.LoadFEN(want))
	testutil.AssertEqual(t, gs.FEN(), want)
}

func TestParseSquare(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want Position
	}{
		{in: "a8", want: Position{X: 0, Y: 0}},
		{in: "h1", want: Position{X: 7, Y: 7}},
		{in: "e4", want: Position{X: 4, Y: 4}},
		{in: "D6", want: Position{X: 3, Y: 2}},
	}
	for _, tc := range tests {
		got, err := ParseSquare(tc.in)
		testutil.AssertNoError(t, err, tc.in)
		testutil.AssertEqual(t, got, tc.want, tc.in)
		testutil.AssertEqual(t, got.getSquareNotation(), strings.ToLower(tc.in), "notation of %s", tc.in)
	}

	for _, bad := range []string{"", "e", "e44", "i4", "e0", "e9", "44"} {
		_, err := ParseSquare(bad)
		testutil.AssertError(t, err, bad)
	}
}
