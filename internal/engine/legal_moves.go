package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// HasLegalMoves returns true if the given colour has at least one legal
// move: geometry-legal, not a friendly capture, and not leaving its own
// king attacked. It is an existence check and stops at the first hit.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece, occupied := board.PieceAt(sq)
		if !occupied || piece.Colour != colour {
			continue
		}
		if pieceHasLegalMove(board, piece, sq) {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if the given colour is in check with no legal moves.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if the given colour is not in check but has no
// legal moves.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// pieceHasLegalMove checks whether a specific piece has any legal move.
func pieceHasLegalMove(board *chess.Board, piece chess.Piece, from chess.Square) bool {
	switch piece.Kind {
	case chess.Pawn:
		dir := piece.Colour.ForwardDir()
		candidates := [4][2]int{{dir, 0}, {2 * dir, 0}, {dir, -1}, {dir, 1}}
		for _, off := range candidates {
			to, ok := from.Offset(off[0], off[1])
			if !ok {
				continue
			}
			// Reachable already enforces the push/capture occupancy rules.
			if Reachable(board, piece, from, to) && escapesCheck(board, from, to, piece.Colour) {
				return true
			}
		}
		return false

	case chess.Knight:
		return hasOffsetMove(board, piece, from, knightOffsets)

	case chess.King:
		return hasOffsetMove(board, piece, from, kingOffsets)

	case chess.Bishop:
		return hasSlidingMove(board, piece.Colour, from, diagonalDirs)

	case chess.Rook:
		return hasSlidingMove(board, piece.Colour, from, straightDirs)

	case chess.Queen:
		return hasSlidingMove(board, piece.Colour, from, diagonalDirs) ||
			hasSlidingMove(board, piece.Colour, from, straightDirs)
	}

	return false
}

// hasOffsetMove checks the fixed-offset pieces (knight, king).
func hasOffsetMove(board *chess.Board, piece chess.Piece, from chess.Square, offsets [8][2]int) bool {
	for _, off := range offsets {
		to, ok := from.Offset(off[0], off[1])
		if !ok {
			continue
		}
		if target, occupied := board.PieceAt(to); occupied && target.Colour == piece.Colour {
			continue
		}
		if escapesCheck(board, from, to, piece.Colour) {
			return true
		}
	}
	return false
}

// hasSlidingMove walks each ray until blocked, trying every square on the
// way plus a capture of the blocking piece when it is an opponent's.
func hasSlidingMove(board *chess.Board, colour chess.Colour, from chess.Square, dirs [4][2]int) bool {
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			if target, occupied := board.PieceAt(to); occupied {
				if target.Colour != colour && escapesCheck(board, from, to, colour) {
					return true
				}
				break // Blocked
			}
			if escapesCheck(board, from, to, colour) {
				return true
			}
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return false
}

// escapesCheck simulates the move on a copy of the board and reports whether
// the mover's own king is safe afterwards. The live board is never touched.
func escapesCheck(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	scratch := board.Copy()
	if piece, occupied := scratch.Remove(from); occupied {
		scratch.Place(to, piece)
	}
	return !IsInCheck(scratch, colour)
}
