// Package chess provides the core types of the rules engine: colours,
// pieces, squares, the board, and move records.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ForwardDir returns the rank direction this colour's pawns advance in:
// +1 for White, -1 for Black. Every pawn rule reads direction from here
// rather than hard-coding a board orientation.
func (c Colour) ForwardDir() int {
	if c == White {
		return 1
	}
	return -1
}

// PieceKind represents a kind of chess piece.
type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter for a piece kind.
func (k PieceKind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a piece kind together with its colour. Kind and colour are two
// orthogonal fields rather than one combinatorial enumeration, so geometry
// rules switch on kind alone and direction flips are a single field read.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String()
}

// GameStatus describes the state of a game after the last committed move.
type GameStatus int

const (
	// InProgress means the player to move has at least one legal move.
	InProgress GameStatus = iota
	// Checkmate means the player to move is in check with no legal moves.
	Checkmate
	// Stalemate means the player to move is not in check but has no legal moves.
	Stalemate
	// Draw means neither side retains sufficient mating material.
	Draw
)

// String returns the string representation of a game status.
func (s GameStatus) String() string {
	names := []string{"InProgress", "Checkmate", "Stalemate", "Draw"}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Terminal reports whether no further moves are accepted in this status.
func (s GameStatus) Terminal() bool {
	return s != InProgress
}
