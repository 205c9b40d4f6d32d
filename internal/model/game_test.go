package model

import (
	"errors"
	"testing"

	"github.com/castlegate/chess-backend/internal/testutil"
)

func play(t *testing.T, gs *GameState, moves ...string) MoveOutcome {
	t.Helper()
	var last MoveOutcome
	for i := 0; i+1 < len(moves); i += 2 {
		out, err := gs.ApplyMove(sq(t, moves[i]), sq(t, moves[i+1]), Empty)
		if err != nil {
			t.Fatalf("%s -> %s: %v", moves[i], moves[i+1], err)
		}
		last = out
	}
	return last
}

func TestClocksAdvance(t *testing.T) {
	t.Parallel()
	gs := newGameState()

	play(t, &gs, "g1", "f3")
	testutil.AssertEqual(t, gs.HalfmoveClock, 1)
	testutil.AssertEqual(t, gs.FullmoveNumber, 1, "fullmove counts move pairs")

	play(t, &gs, "g8", "f6")
	testutil.AssertEqual(t, gs.HalfmoveClock, 2)
	testutil.AssertEqual(t, gs.FullmoveNumber, 2, "incremented after black's reply")

	play(t, &gs, "e2", "e4")
	testutil.AssertEqual(t, gs.HalfmoveClock, 0, "pawn move resets the clock")
	testutil.AssertEqual(t, gs.FullmoveNumber, 2)
}

func TestCaptureResetsHalfmoveClock(t *testing.T) {
	t.Parallel()
	gs := mustParseFEN(t, "k7/8/8/3r4/8/8/8/K2R4 w - - 7 12")

	play(t, gs, "d1", "d5")
	testutil.AssertEqual(t, gs.HalfmoveClock, 0)
	testutil.AssertEqual(t, gs.FullmoveNumber, 12, "white's move does not advance the counter")
}

func TestIllegalMoveRejected(t *testing.T) {
	t.Parallel()
	gs := newGameState()

	_, err := gs.ApplyMove(sq(t, "e2"), sq(t, "e5"), Empty)
	testutil.AssertTrue(t, errors.Is(err, ErrIllegalMove))

	_, err = gs.ApplyMove(sq(t, "e4"), sq(t, "e5"), Empty)
	testutil.AssertTrue(t, errors.Is(err, ErrNoPiece))

	_, err = gs.ApplyMove(sq(t, "e7"), sq(t, "e5"), Empty)
	testutil.AssertTrue(t, errors.Is(err, ErrNotYourTurn))

	testutil.AssertEqual(t, gs.HalfmoveClock, 0, "rejected moves leave the state alone")
	testutil.AssertTrue(t, gs.LastMove == nil)
}

func TestLastMoveRecorded(t *testing.T) {
	t.Parallel()
	gs := newGameState()

	play(t, &gs, "e2", "e4")
	testutil.AssertEqual(t, *gs.LastMove, SimpleMove{From: sq(t, "e2"), To: sq(t, "e4")})
}

func TestFoolsMate(t *testing.T) {
	t.Parallel()
	gs := newGameState()

	out := play(t, &gs, "f2", "f3", "e7", "e5", "g2", "g4", "d8", "h4")
	testutil.AssertTrue(t, out.Check)
	testutil.AssertEqual(t, out.Terminal, TerminalCheckmate)
	testutil.AssertEqual(t, gs.Resolve, TerminalCheckmate)
	testutil.AssertTrue(t, gs.IsCheck)
}

func TestStalemate(t *testing.T) {
	t.Parallel()
	gs := mustParseFEN(t, "k7/8/8/1Q6/8/8/8/K7 w - - 0 1")

	out := play(t, gs, "b5", "b6")
	testutil.AssertFalse(t, out.Check)
	testutil.AssertEqual(t, out.Terminal, TerminalStalemate)
	testutil.AssertEqual(t, gs.Resolve, TerminalStalemate)
}

func TestPromotionTwoStep(t *testing.T) {
	t.Parallel()
	gs := mustParseFEN(t, "8/4P3/8/8/8/8/k7/4K3 w - - 0 1")

	out, err := gs.ApplyMove(sq(t, "e7"), sq(t, "e8"), Empty)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, out.PendingPromotion)
	testutil.AssertEqual(t, *gs.PromotionSquare, sq(t, "e8"))
	testutil.AssertEqual(t, gs.ToMove, White, "turn is suspended until the choice arrives")

	// Nothing else may happen while the choice is pending.
	_, err = gs.ApplyMove(sq(t, "e1"), sq(t, "e2"), Empty)
	testutil.AssertTrue(t, errors.Is(err, ErrPromotionPending))
	_, err = gs.LegalMoves(sq(t, "e1"))
	testutil.AssertTrue(t, errors.Is(err, ErrPromotionPending))

	_, err = gs.ResolvePromotion(Pawn)
	testutil.AssertTrue(t, errors.Is(err, ErrBadPromotion))
	_, err = gs.ResolvePromotion(King)
	testutil.AssertTrue(t, errors.Is(err, ErrBadPromotion))

	_, err = gs.ResolvePromotion(Queen)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, gs.Board.at(sq(t, "e8")), newSquare(Queen, White))
	testutil.AssertTrue(t, gs.PromotionSquare == nil)
	testutil.AssertEqual(t, gs.ToMove, Black)
}

func TestPromotionSingleCall(t *testing.T) {
	t.Parallel()
	gs := mustParseFEN(t, "8/4P3/8/8/8/8/k7/4K3 w - - 0 1")

	out, err := gs.ApplyMove(sq(t, "e7"), sq(t, "e8"), Knight)
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, out.PendingPromotion)
	testutil.AssertEqual(t, gs.Board.at(sq(t, "e8")), newSquare(Knight, White))
	testutil.AssertEqual(t, gs.ToMove, Black)
}

func TestPromotionWithoutPending(t *testing.T) {
	t.Parallel()
	gs := newGameState()

	_, err := gs.ResolvePromotion(Queen)
	testutil.AssertTrue(t, errors.Is(err, ErrNoPendingPromotion))
}

func TestBoardEditing(t *testing.T) {
	t.Parallel()
	gs := newGameState()
	gs.ClearBoard()

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			testutil.AssertEqual(t, gs.Board.at(Position{X: x, Y: y}), newSquare(Empty, NoColor))
		}
	}
	testutil.AssertEqual(t, gs.CastlingRights, [2][2]bool{})

	err := gs.PlacePiece(King, White, sq(t, "d4"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, gs.Board.KingCoords[White], sq(t, "d4"))

	err = gs.PlacePiece(Rook, Black, sq(t, "d8"))
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, gs.IsCheck, "check flag tracks edits")

	err = gs.ClearSquare(sq(t, "d8"))
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, gs.IsCheck)

	// Placing Empty is a clear.
	err = gs.PlacePiece(Empty, NoColor, sq(t, "d4"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, gs.Board.at(sq(t, "d4")), newSquare(Empty, NoColor))
}

func TestEditingForfeitsCastlingRights(t *testing.T) {
	t.Parallel()
	gs := newGameState()

	err := gs.PlacePiece(King, White, sq(t, "e4"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, gs.CastlingRights[White], [2]bool{false, false})
	testutil.AssertEqual(t, gs.CastlingRights[Black], [2]bool{true, true})

	err = gs.ClearSquare(sq(t, "e8"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, gs.CastlingRights[Black], [2]bool{false, false})
}

func TestEditingRejectsBadInput(t *testing.T) {
	t.Parallel()
	gs := newGameState()

	err := gs.PlacePiece(Knight, NoColor, sq(t, "e4"))
	testutil.AssertTrue(t, errors.Is(err, ErrBadColor))

	err = gs.PlacePiece(Knight, White, Position{X: 0, Y: 8})
	testutil.AssertTrue(t, errors.Is(err, ErrOutOfBounds))

	err = gs.ClearSquare(Position{X: -1, Y: 0})
	testutil.AssertTrue(t, errors.Is(err, ErrOutOfBounds))
}

func TestGameSession(t *testing.T) {
	t.Parallel()
	g := NewGame("test-game")

	moves, err := g.LegalMoves(sq(t, "e2"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sorted(moves), squares(t, "e3", "e4"))

	state := g.GetState()
	testutil.AssertEqual(t, *state.SelectedSquare, sq(t, "e2"), "selection is recorded")
	testutil.AssertEqual(t, sorted(state.LegalDests), squares(t, "e3", "e4"))

	_, err = g.MakeMove(sq(t, "e2"), sq(t, "e4"), Empty)
	testutil.AssertNoError(t, err)

	state = g.GetState()
	testutil.AssertTrue(t, state.SelectedSquare == nil, "moving clears the selection")
	testutil.AssertEqual(t, state.ToMove, Black)
}

func TestGameSessionFromFEN(t *testing.T) {
	t.Parallel()
	g, err := NewGameFromFEN("test-game", "8/4P3/8/8/8/8/k7/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)

	out, err := g.MakeMove(sq(t, "e7"), sq(t, "e8"), Empty)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, out.PendingPromotion)

	_, err = g.Promote(Queen)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.FEN(), "4Q3/8/8/8/8/8/k7/4K3 b - - 0 1")

	_, err = NewGameFromFEN("bad", "not a position")
	testutil.AssertTrue(t, errors.Is(err, ErrMalformedFEN))
}
