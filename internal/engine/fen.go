package engine

import (
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceKindFromFENChar maps a FEN piece letter (either case) to a kind.
func pieceKindFromFENChar(c rune) (chess.PieceKind, bool) {
	switch unicode.ToUpper(c) {
	case 'P':
		return chess.Pawn, true
	case 'N':
		return chess.Knight, true
	case 'B':
		return chess.Bishop, true
	case 'R':
		return chess.Rook, true
	case 'Q':
		return chess.Queen, true
	case 'K':
		return chess.King, true
	}
	return 0, false
}

// fenCharForPiece returns the FEN letter for a piece: uppercase for White,
// lowercase for Black.
func fenCharForPiece(p chess.Piece) byte {
	c := p.Kind.Letter()
	if p.Colour == chess.Black {
		c = byte(unicode.ToLower(rune(c)))
	}
	return c
}

// ParseFEN builds a board and side-to-move from a FEN string. Only the
// piece-placement and side-to-move fields are interpreted; castling,
// en passant, and clock fields are accepted and ignored since the engine
// does not model them. Placement-only strings are accepted with White to
// move. No king-count validation happens here, so test positions may omit
// kings; NewGameFromFEN enforces the game-level invariant.
func ParseFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}

	board, err := parsePlacement(parts[0])
	if err != nil {
		return nil, chess.White, err
	}

	toMove := chess.White
	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
			toMove = chess.White
		case "b":
			toMove = chess.Black
		default:
			return nil, chess.White, errors.Wrapf(errors.ErrInvalidFEN, "invalid side to move %q", parts[1])
		}
	}

	return board, toMove, nil
}

// parsePlacement parses the piece-placement field: ranks 8 down to 1,
// separated by '/', digits for runs of empty squares.
func parsePlacement(placement string) (*chess.Board, error) {
	board := chess.NewBoard()
	rank := chess.BoardSize - 1
	file := 0

	for _, c := range placement {
		switch {
		case c == '/':
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			kind, ok := pieceKindFromFENChar(c)
			if !ok {
				return nil, errors.Wrapf(errors.ErrInvalidFEN, "invalid piece character %q", c)
			}
			sq, err := chess.SquareAt(rank, file)
			if err != nil {
				return nil, errors.Wrap(errors.ErrInvalidFEN, "placement out of bounds")
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board.Place(sq, chess.Piece{Kind: kind, Colour: colour})
			file++
		}
	}
	if rank != 0 {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "placement has %d ranks", chess.BoardSize-rank)
	}

	return board, nil
}

// PositionFEN renders the board and side-to-move as the first two FEN
// fields. The remaining fields are not modelled by this engine, so they are
// omitted rather than invented.
func PositionFEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			sq, _ := chess.SquareAt(rank, file)
			piece, occupied := board.PieceAt(sq)
			if !occupied {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(fenCharForPiece(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	return sb.String()
}
