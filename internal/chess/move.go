package chess

// Move records one committed move in a game's history.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// The piece that moved.
	Piece Piece

	// The piece captured, or nil if the destination was empty.
	Captured *Piece

	// Whether the move put the opponent in check.
	GaveCheck bool

	// The game status after this move was committed.
	Result GameStatus
}

// IsCapture returns true if this move captured a piece.
func (m Move) IsCapture() bool {
	return m.Captured != nil
}

// String returns e.g. "e2-e4" or "d1xh5" for a capture.
func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	return m.From.String() + sep + m.To.String()
}
