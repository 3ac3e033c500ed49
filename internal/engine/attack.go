package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king (possible in hand-built test positions)
// is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by any piece of
// the given colour. The scan runs outward from the target square: pawn
// attack diagonals, knight offsets, the adjacent king ring, then sliding
// rays. Pawns attack only diagonally here, which deliberately diverges from
// the pawn move predicate: a pawn may not be able to move to a square it
// nonetheless attacks, and it never attacks straight ahead.
func IsSquareAttacked(board *chess.Board, sq chess.Square, by chess.Colour) bool {
	// A pawn of colour `by` on (sq - forward, ±1 file) attacks sq.
	dir := by.ForwardDir()
	for _, dFile := range [2]int{-1, 1} {
		if from, ok := sq.Offset(-dir, dFile); ok {
			if p, occupied := board.PieceAt(from); occupied &&
				p.Kind == chess.Pawn && p.Colour == by {
				return true
			}
		}
	}

	for _, off := range knightOffsets {
		if from, ok := sq.Offset(off[0], off[1]); ok {
			if p, occupied := board.PieceAt(from); occupied &&
				p.Kind == chess.Knight && p.Colour == by {
				return true
			}
		}
	}

	for _, off := range kingOffsets {
		if from, ok := sq.Offset(off[0], off[1]); ok {
			if p, occupied := board.PieceAt(from); occupied &&
				p.Kind == chess.King && p.Colour == by {
				return true
			}
		}
	}

	if attackedAlongRays(board, sq, by, diagonalDirs, chess.Bishop) {
		return true
	}
	return attackedAlongRays(board, sq, by, straightDirs, chess.Rook)
}

// attackedAlongRays walks each ray direction until the first occupant. The
// slider kind (Bishop for diagonals, Rook for straights) and the Queen both
// attack along the ray; any other occupant blocks it.
func attackedAlongRays(board *chess.Board, sq chess.Square, by chess.Colour, dirs [4][2]int, slider chess.PieceKind) bool {
	for _, dir := range dirs {
		from, ok := sq.Offset(dir[0], dir[1])
		for ok {
			if p, occupied := board.PieceAt(from); occupied {
				if p.Colour == by && (p.Kind == slider || p.Kind == chess.Queen) {
					return true
				}
				break // Blocked
			}
			from, ok = from.Offset(dir[0], dir[1])
		}
	}
	return false
}
