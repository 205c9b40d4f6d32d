package model

import (
	"sort"
	"testing"
)

// mustParseFEN decodes fen or fails the test.
func mustParseFEN(t *testing.T, fen string) *GameState {
	t.Helper()
	gs, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return gs
}

// sq converts algebraic notation to grid coordinates or fails the test.
func sq(t *testing.T, s string) Position {
	t.Helper()
	p, err := ParseSquare(s)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// sorted returns a row-major-ordered copy of a move list so move sets can
// be compared independent of generation order.
func sorted(moves []Position) []Position {
	out := append([]Position(nil), moves...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// squares converts algebraic squares into a sorted position list.
func squares(t *testing.T, names ...string) []Position {
	t.Helper()
	var out []Position
	for _, n := range names {
		out = append(out, sq(t, n))
	}
	return sorted(out)
}
