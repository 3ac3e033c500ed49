// Package chessrules is the public surface of the chess rules engine. It
// re-exports the board model, movement validation, and game lifecycle from
// the internal packages so importers never reach into internal/ directly.
//
// A typical session:
//
//	g := chessrules.NewGame()
//	from, _ := chessrules.ParseSquare("e2")
//	to, _ := chessrules.ParseSquare("e4")
//	outcome, err := g.ProposeMove(from, to)
package chessrules

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Core types.
type (
	Square     = chess.Square
	Colour     = chess.Colour
	PieceKind  = chess.PieceKind
	Piece      = chess.Piece
	Board      = chess.Board
	Move       = chess.Move
	GameStatus = chess.GameStatus
	Game       = engine.Game
	Outcome    = engine.Outcome
	MoveError  = errors.MoveError
)

// Colours.
const (
	White = chess.White
	Black = chess.Black
)

// Piece kinds.
const (
	Pawn   = chess.Pawn
	Knight = chess.Knight
	Bishop = chess.Bishop
	Rook   = chess.Rook
	Queen  = chess.Queen
	King   = chess.King
)

// Game statuses.
const (
	InProgress = chess.InProgress
	Checkmate  = chess.Checkmate
	Stalemate  = chess.Stalemate
	Draw       = chess.Draw
)

// Board dimensions.
const (
	BoardSize  = chess.BoardSize
	NumSquares = chess.NumSquares
)

// InitialFEN is the standard starting position.
const InitialFEN = engine.InitialFEN

// Rejection sentinels, for use with errors.Is.
var (
	ErrOutOfRange       = errors.ErrOutOfRange
	ErrNoPieceAtSource  = errors.ErrNoPieceAtSource
	ErrWrongPlayersTurn = errors.ErrWrongPlayersTurn
	ErrIllegalGeometry  = errors.ErrIllegalGeometry
	ErrFriendlyCapture  = errors.ErrFriendlyCapture
	ErrSelfCheck        = errors.ErrSelfCheck
	ErrGameAlreadyOver  = errors.ErrGameAlreadyOver
	ErrNoMoveToUndo     = errors.ErrNoMoveToUndo
	ErrInvalidFEN       = errors.ErrInvalidFEN
)

// NewGame starts a game from the standard initial position, White to move.
func NewGame() *Game {
	return engine.NewGame()
}

// NewGameFromFEN starts a game from an arbitrary position described by a FEN
// string. The position must hold exactly one king per side.
func NewGameFromFEN(fen string) (*Game, error) {
	return engine.NewGameFromFEN(fen)
}

// ParseSquare converts algebraic notation such as "e4" to a Square.
func ParseSquare(s string) (Square, error) {
	return chess.ParseSquare(s)
}

// SquareAt returns the square at the given zero-based rank and file.
func SquareAt(rank, file int) (Square, error) {
	return chess.SquareAt(rank, file)
}

// StandardInitial returns a board set up with the standard starting position.
func StandardInitial() *Board {
	return chess.StandardInitial()
}

// ParseFEN builds a board and side to move from a FEN string. Fields beyond
// piece placement and the active colour are ignored.
func ParseFEN(fen string) (*Board, Colour, error) {
	return engine.ParseFEN(fen)
}

// PositionFEN renders the placement and side-to-move fields of a position.
func PositionFEN(board *Board, toMove Colour) string {
	return engine.PositionFEN(board, toMove)
}

// IsInCheck reports whether the given side's king is attacked.
func IsInCheck(board *Board, colour Colour) bool {
	return engine.IsInCheck(board, colour)
}

// IsSquareAttacked reports whether any piece of the given colour attacks the
// square.
func IsSquareAttacked(board *Board, sq Square, by Colour) bool {
	return engine.IsSquareAttacked(board, sq, by)
}

// Reachable reports whether the piece could travel from one square to the
// other under its movement geometry, ignoring whose piece occupies the
// destination.
func Reachable(board *Board, piece Piece, from, to Square) bool {
	return engine.Reachable(board, piece, from, to)
}
