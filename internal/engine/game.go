package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Outcome is the result of a successful move: the status of the position
// from the perspective of the player now to move.
type Outcome struct {
	// Status of the game after the move.
	Status chess.GameStatus

	// InCheck is true if the player now to move is in check. It is also
	// true on Checkmate.
	InCheck bool

	// Winner is the mating side. Only meaningful when Status is Checkmate.
	Winner chess.Colour
}

// Game owns the authoritative board state, the colour to move, and the
// append-only move history. It is the sole mutator of its board: all state
// transitions go through ProposeMove (and Undo). A Game performs no internal
// locking; callers driving one game concurrently must serialize access.
type Game struct {
	board   *chess.Board
	toMove  chess.Colour
	history []chess.Move
	status  chess.GameStatus
	inCheck bool
	winner  chess.Colour
}

// NewGame starts a game from the standard initial position, White to move.
func NewGame() *Game {
	return &Game{
		board:  chess.StandardInitial(),
		toMove: chess.White,
		status: chess.InProgress,
	}
}

// NewGameFromFEN starts a game from an arbitrary position, for fixtures and
// analysis. The position must hold exactly one king per side; the status of
// the given position (including an immediate checkmate or stalemate) is
// evaluated on construction.
func NewGameFromFEN(fen string) (*Game, error) {
	board, toMove, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		if n := countKings(board, colour); n != 1 {
			return nil, errors.Wrapf(errors.ErrInvalidFEN, "%d %v kings", n, colour)
		}
	}

	g := &Game{board: board, toMove: toMove}
	g.status, g.inCheck = evaluatePosition(board, toMove)
	if g.status == chess.Checkmate {
		g.winner = toMove.Opposite()
	}
	return g, nil
}

// countKings returns the number of kings of the given colour on the board.
func countKings(board *chess.Board, colour chess.Colour) int {
	n := 0
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if p, occupied := board.PieceAt(sq); occupied &&
			p.Kind == chess.King && p.Colour == colour {
			n++
		}
	}
	return n
}

// Board returns a copy of the current position. The live board is owned
// exclusively by the game and is only mutated through ProposeMove and Undo.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// ToMove returns the colour to move next.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// Status returns the game status after the last committed move.
func (g *Game) Status() chess.GameStatus {
	return g.status
}

// InCheck reports whether the player to move is currently in check.
func (g *Game) InCheck() bool {
	return g.inCheck
}

// Winner returns the mating side, and whether the game ended in checkmate.
func (g *Game) Winner() (chess.Colour, bool) {
	return g.winner, g.status == chess.Checkmate
}

// History returns a copy of the committed moves in order.
func (g *Game) History() []chess.Move {
	out := make([]chess.Move, len(g.history))
	copy(out, g.history)
	return out
}

// ProposeMove validates and, if legal, commits a move from one square to
// another. Rejections are fully transactional: the board, history, and
// current player are untouched, and repeating the same illegal proposal
// yields the same rejection. The returned error unwraps to one of the
// sentinels in internal/errors.
func (g *Game) ProposeMove(from, to chess.Square) (Outcome, error) {
	if g.status.Terminal() {
		return Outcome{}, g.reject(from, to, errors.ErrGameAlreadyOver)
	}
	if !from.Valid() || !to.Valid() {
		return Outcome{}, g.reject(from, to, errors.ErrOutOfRange)
	}

	piece, occupied := g.board.PieceAt(from)
	if !occupied {
		return Outcome{}, g.reject(from, to, errors.ErrNoPieceAtSource)
	}
	if piece.Colour != g.toMove {
		return Outcome{}, g.reject(from, to, errors.ErrWrongPlayersTurn)
	}
	if !Reachable(g.board, piece, from, to) {
		return Outcome{}, g.reject(from, to, errors.ErrIllegalGeometry)
	}
	if target, ok := g.board.PieceAt(to); ok && target.Colour == piece.Colour {
		return Outcome{}, g.reject(from, to, errors.ErrFriendlyCapture)
	}

	// Simulate on a scratch copy. The live board stays untouched until
	// every check has passed, so there is no rollback path.
	scratch := g.board.Copy()
	moved, _ := scratch.Remove(from)
	captured, wasCapture := scratch.Remove(to)
	scratch.Place(to, moved)
	if IsInCheck(scratch, g.toMove) {
		return Outcome{}, g.reject(from, to, errors.ErrSelfCheck)
	}

	// Commit: adopt the scratch board, record the move, flip the turn.
	g.board = scratch
	opponent := g.toMove.Opposite()
	status, inCheck := evaluatePosition(g.board, opponent)

	move := chess.Move{
		From:      from,
		To:        to,
		Piece:     piece,
		GaveCheck: inCheck,
		Result:    status,
	}
	if wasCapture {
		move.Captured = &captured
	}
	g.history = append(g.history, move)

	outcome := Outcome{Status: status, InCheck: inCheck}
	if status == chess.Checkmate {
		outcome.Winner = g.toMove
		g.winner = g.toMove
	}
	g.toMove = opponent
	g.status = status
	g.inCheck = inCheck

	return outcome, nil
}

// evaluatePosition classifies the position for the side to move: checkmate,
// stalemate, insufficient-material draw, or still in progress, along with
// whether that side is in check.
func evaluatePosition(board *chess.Board, toMove chess.Colour) (chess.GameStatus, bool) {
	inCheck := IsInCheck(board, toMove)
	if !HasLegalMoves(board, toMove) {
		if inCheck {
			return chess.Checkmate, true
		}
		return chess.Stalemate, false
	}
	if HasInsufficientMaterial(board) {
		return chess.Draw, inCheck
	}
	return chess.InProgress, inCheck
}

// Undo reverts the last committed move, restoring any captured piece from
// the history record, flipping the turn back, and reopening a terminal
// game. It returns the undone move.
func (g *Game) Undo() (chess.Move, error) {
	if len(g.history) == 0 {
		return chess.Move{}, errors.ErrNoMoveToUndo
	}

	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	if piece, occupied := g.board.Remove(last.To); occupied {
		g.board.Place(last.From, piece)
	}
	if last.Captured != nil {
		g.board.Place(last.To, *last.Captured)
	}

	g.toMove = last.Piece.Colour
	g.status = chess.InProgress
	g.inCheck = IsInCheck(g.board, g.toMove)
	g.winner = chess.White

	return last, nil
}

// reject wraps a sentinel with the proposed squares. No state is mutated on
// any rejection path.
func (g *Game) reject(from, to chess.Square, err error) error {
	return &errors.MoveError{Err: err, From: from.String(), To: to.String()}
}
