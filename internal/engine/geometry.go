// Package engine implements the chess rules: movement geometry, check
// detection, and game orchestration over the storage types in
// internal/chess.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// knightOffsets are the eight L-shaped (rank, file) displacements.
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// kingOffsets are the eight single-step (rank, file) displacements.
var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
}

// diagonalDirs and straightDirs are the slider ray directions.
var (
	diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// Reachable reports whether the piece could move from one square to the
// other given the current occupancy, ignoring whose turn it is and ignoring
// self-check. It is pure shape plus path clearance: the destination's
// occupant is not inspected except where pawn rules demand it (a pawn push
// needs an empty square, a pawn capture needs an opposing piece). Friendly
// destinations are rejected separately by the caller.
func Reachable(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}

	rankDiff := abs(to.Rank() - from.Rank())
	fileDiff := abs(to.File() - from.File())

	switch piece.Kind {
	case chess.Pawn:
		return pawnReachable(board, piece.Colour, from, to)

	case chess.Knight:
		return (fileDiff == 1 && rankDiff == 2) || (fileDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		if rankDiff != fileDiff {
			return false
		}
		return pathClear(board, from, to)

	case chess.Rook:
		if rankDiff != 0 && fileDiff != 0 {
			return false
		}
		return pathClear(board, from, to)

	case chess.Queen:
		if rankDiff == fileDiff || rankDiff == 0 || fileDiff == 0 {
			return pathClear(board, from, to)
		}
		return false

	case chess.King:
		return rankDiff <= 1 && fileDiff <= 1
	}

	return false
}

// pawnStartRank is the rank a colour's pawns start on.
func pawnStartRank(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return 6
}

// pawnReachable implements pawn move geometry: single push onto an empty
// square, double push from the starting rank through an empty intervening
// square, diagonal step only as a capture. Direction comes from the colour,
// never from board orientation. En passant and promotion are not modelled.
func pawnReachable(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	dir := colour.ForwardDir()
	rankDelta := to.Rank() - from.Rank()
	fileDiff := abs(to.File() - from.File())

	switch {
	case fileDiff == 0 && rankDelta == dir:
		_, occupied := board.PieceAt(to)
		return !occupied

	case fileDiff == 0 && rankDelta == 2*dir && from.Rank() == pawnStartRank(colour):
		mid, ok := from.Offset(dir, 0)
		if !ok {
			return false
		}
		if _, occupied := board.PieceAt(mid); occupied {
			return false
		}
		_, occupied := board.PieceAt(to)
		return !occupied

	case fileDiff == 1 && rankDelta == dir:
		target, occupied := board.PieceAt(to)
		return occupied && target.Colour != colour
	}

	return false
}

// pathClear reports whether every square strictly between two colinear or
// diagonal squares is empty. Shared by bishop, rook, and queen geometry.
func pathClear(board *chess.Board, from, to chess.Square) bool {
	dRank := sign(to.Rank() - from.Rank())
	dFile := sign(to.File() - from.File())

	sq, ok := from.Offset(dRank, dFile)
	for ok && sq != to {
		if _, occupied := board.PieceAt(sq); occupied {
			return false
		}
		sq, ok = sq.Offset(dRank, dFile)
	}
	return true
}
