package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	errs "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestParseFENInitial(t *testing.T) {
	board, toMove, err := ParseFEN(InitialFEN)
	if err != nil {
		t.Fatalf("ParseFEN(InitialFEN) error: %v", err)
	}
	if toMove != chess.White {
		t.Errorf("toMove = %v; want White", toMove)
	}
	if !board.Equal(chess.StandardInitial()) {
		t.Errorf("ParseFEN(InitialFEN) differs from StandardInitial:\n got %s",
			PositionFEN(board, toMove))
	}
}

func TestParseFENSideToMove(t *testing.T) {
	_, toMove, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	if toMove != chess.Black {
		t.Errorf("toMove = %v; want Black", toMove)
	}

	// Placement-only strings default to White.
	_, toMove, err = ParseFEN("4k3/8/8/8/8/8/8/4K3")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	if toMove != chess.White {
		t.Errorf("placement-only toMove = %v; want White", toMove)
	}
}

func TestParseFENIgnoresUnmodelledFields(t *testing.T) {
	// Castling, en passant, and clock fields are accepted but not modelled.
	board, toMove, err := ParseFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	if toMove != chess.Black {
		t.Errorf("toMove = %v; want Black", toMove)
	}
	if p, ok := board.PieceAt(mustSq(t, "e4")); !ok || p != (chess.Piece{Kind: chess.Pawn, Colour: chess.White}) {
		t.Errorf("PieceAt(e4) = %v, %v; want white pawn", p, ok)
	}
}

func TestParseFENInvalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty string", ""},
		{"blank string", "   "},
		{"bad piece letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w"},
		{"too few ranks", "8/8/8 w"},
		{"rank overflow", "rnbqkbnr9/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"},
		{"bad side to move", "8/8/8/8/8/8/8/8 x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ParseFEN(tt.fen); !errors.Is(err, errs.ErrInvalidFEN) {
				t.Errorf("ParseFEN(%q) error = %v; want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

func TestPositionFENRoundTrip(t *testing.T) {
	positions := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b",
		"4k3/8/8/8/8/8/8/4K3 w",
		"k7/2Q5/2K5/8/8/8/8/8 b",
		"8/8/8/8/8/8/8/8 w",
	}

	for _, fen := range positions {
		board, toMove, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q) error: %v", fen, err)
		}
		if got := PositionFEN(board, toMove); got != fen {
			t.Errorf("PositionFEN round trip = %q; want %q", got, fen)
		}
	}
}
