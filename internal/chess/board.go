package chess

// Board is pure piece storage: a fixed mapping from Square to an optional
// Piece. It knows nothing about movement or legality. Occupancy is explicit
// rather than a blank piece variant, so an empty square can never be mistaken
// for a real piece in an exhaustive switch.
type Board struct {
	squares [NumSquares]slot
}

type slot struct {
	piece    Piece
	occupied bool
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// PieceAt returns the piece on the square, if any.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	s := b.squares[sq]
	return s.piece, s.occupied
}

// Place puts a piece on the square, silently overwriting any occupant.
// Capture bookkeeping is the caller's responsibility.
func (b *Board) Place(sq Square, p Piece) {
	if !sq.Valid() {
		return
	}
	b.squares[sq] = slot{piece: p, occupied: true}
}

// Remove clears the square and returns the piece that was on it, if any.
func (b *Board) Remove(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	s := b.squares[sq]
	b.squares[sq] = slot{}
	return s.piece, s.occupied
}

// Copy returns a deep copy of the board. All speculative move simulation
// happens on copies; the live board is only touched on commit.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// Equal reports whether two boards hold identical contents. cmp.Diff uses
// this in tests since the storage is unexported.
func (b *Board) Equal(o *Board) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.squares == o.squares
}

// Count returns the number of pieces of the given colour on the board.
func (b *Board) Count(colour Colour) int {
	n := 0
	for sq := Square(0); sq < NumSquares; sq++ {
		if p, ok := b.PieceAt(sq); ok && p.Colour == colour {
			n++
		}
	}
	return n
}

// FindKing returns the square of the given colour's king, if present.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for sq := Square(0); sq < NumSquares; sq++ {
		if p, ok := b.PieceAt(sq); ok && p.Kind == King && p.Colour == colour {
			return sq, true
		}
	}
	return 0, false
}

// backRank is the piece order of each side's first rank, a-file to h-file.
var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StandardInitial returns the canonical chess starting position: back ranks
// mirrored between the colours, pawns on each side's second rank, empty
// middle.
func StandardInitial() *Board {
	b := NewBoard()
	for file := 0; file < BoardSize; file++ {
		b.Place(Square(file), Piece{Kind: backRank[file], Colour: White})
		b.Place(Square(BoardSize+file), Piece{Kind: Pawn, Colour: White})
		b.Place(Square(6*BoardSize+file), Piece{Kind: Pawn, Colour: Black})
		b.Place(Square(7*BoardSize+file), Piece{Kind: backRank[file], Colour: Black})
	}
	return b
}
