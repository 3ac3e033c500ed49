package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Square identifies one of the 64 board positions as a linear index in
// [0,63], computed as rank*8 + file. Rank 0 is White's first rank and file 0
// is the a-file, so a1 = 0, h1 = 7, a8 = 56, h8 = 63. This is the canonical
// coordinate system for the whole engine; no consumer may transpose it.
type Square int

// NumSquares is the number of squares on the board.
const NumSquares = 64

// BoardSize is the length of one board side.
const BoardSize = 8

// SquareAt returns the square at the given rank and file, or an error
// wrapping errors.ErrOutOfRange if either coordinate is outside [0,7].
func SquareAt(rank, file int) (Square, error) {
	if rank < 0 || rank >= BoardSize {
		return 0, errors.Wrapf(errors.ErrOutOfRange, "rank %d", rank)
	}
	if file < 0 || file >= BoardSize {
		return 0, errors.Wrapf(errors.ErrOutOfRange, "file %d", file)
	}
	return Square(rank*BoardSize + file), nil
}

// Rank returns the rank of the square, 0 through 7. Rank 0 is White's side.
func (sq Square) Rank() int {
	return int(sq) / BoardSize
}

// File returns the file of the square, 0 through 7. File 0 is the a-file.
func (sq Square) File() int {
	return int(sq) % BoardSize
}

// Valid reports whether the square is within [0,63].
func (sq Square) Valid() bool {
	return sq >= 0 && sq < NumSquares
}

// String returns the algebraic name of the square, e.g. "e2".
func (sq Square) String() string {
	if !sq.Valid() {
		return fmt.Sprintf("invalid(%d)", int(sq))
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// ParseSquare resolves an algebraic square name such as "e2" into a Square.
// Callers are responsible for resolving user text before the engine is
// involved; this helper is the canonical way to do so.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, errors.Wrapf(errors.ErrOutOfRange, "square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	sq, err := SquareAt(rank, file)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrOutOfRange, "square %q", s)
	}
	return sq, nil
}

// Offset returns the square displaced by the given rank and file deltas,
// and whether that square is still on the board.
func (sq Square) Offset(dRank, dFile int) (Square, bool) {
	rank := sq.Rank() + dRank
	file := sq.File() + dFile
	if rank < 0 || rank >= BoardSize || file < 0 || file >= BoardSize {
		return 0, false
	}
	return Square(rank*BoardSize + file), true
}

// IsLight reports whether the square is a light square.
func (sq Square) IsLight() bool {
	return (sq.Rank()+sq.File())%2 == 1
}
