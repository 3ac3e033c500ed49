package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// MustSquare resolves an algebraic square name, aborting the test on failure.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("bad square %q: %v", name, err)
	}
	return sq
}

// MustBoard builds a board from a FEN string, aborting the test on failure.
// King-count invariants are not enforced, so partial positions are fine.
func MustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, _, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("bad FEN %q: %v", fen, err)
	}
	return board
}

// MustGame starts a game from a FEN string, aborting the test on failure.
func MustGame(t *testing.T, fen string) *engine.Game {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("bad game FEN %q: %v", fen, err)
	}
	return g
}

// PlayMoves applies a space-separated sequence of coordinate moves such as
// "e2e4 e7e5" to the game, aborting the test on any rejection. The outcome
// of the final move is returned.
func PlayMoves(t *testing.T, g *engine.Game, moves string) engine.Outcome {
	t.Helper()
	var last engine.Outcome
	for _, mv := range strings.Fields(moves) {
		if len(mv) != 4 {
			t.Fatalf("bad move token %q", mv)
		}
		from := MustSquare(t, mv[:2])
		to := MustSquare(t, mv[2:])
		outcome, err := g.ProposeMove(from, to)
		if err != nil {
			t.Fatalf("move %s rejected: %v", mv, err)
		}
		last = outcome
	}
	return last
}
