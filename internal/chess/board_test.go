package chess

import "testing"

func mustSquare(t *testing.T, name string) Square {
	t.Helper()
	sq, err := ParseSquare(name)
	if err != nil {
		t.Fatalf("bad square %q: %v", name, err)
	}
	return sq
}

func TestBoardStorage(t *testing.T) {
	b := NewBoard()
	e4 := mustSquare(t, "e4")

	t.Run("empty board", func(t *testing.T) {
		for sq := Square(0); sq < NumSquares; sq++ {
			if _, occupied := b.PieceAt(sq); occupied {
				t.Errorf("PieceAt(%v) occupied on empty board", sq)
			}
		}
	})

	t.Run("place and read back", func(t *testing.T) {
		knight := Piece{Kind: Knight, Colour: White}
		b.Place(e4, knight)
		got, occupied := b.PieceAt(e4)
		if !occupied || got != knight {
			t.Errorf("PieceAt(e4) = %v, %v; want %v, true", got, occupied, knight)
		}
	})

	t.Run("place overwrites silently", func(t *testing.T) {
		queen := Piece{Kind: Queen, Colour: Black}
		b.Place(e4, queen)
		got, _ := b.PieceAt(e4)
		if got != queen {
			t.Errorf("PieceAt(e4) after overwrite = %v; want %v", got, queen)
		}
	})

	t.Run("remove returns occupant", func(t *testing.T) {
		got, occupied := b.Remove(e4)
		if !occupied || got != (Piece{Kind: Queen, Colour: Black}) {
			t.Errorf("Remove(e4) = %v, %v; want black queen, true", got, occupied)
		}
		if _, occupied := b.PieceAt(e4); occupied {
			t.Error("PieceAt(e4) occupied after Remove")
		}
		if _, occupied := b.Remove(e4); occupied {
			t.Error("second Remove(e4) reports an occupant")
		}
	})
}

func TestBoardCopyIsolation(t *testing.T) {
	b := StandardInitial()
	c := b.Copy()

	e2 := mustSquare(t, "e2")
	c.Remove(e2)

	if _, occupied := b.PieceAt(e2); !occupied {
		t.Error("mutating a copy changed the original board")
	}
	if _, occupied := c.PieceAt(e2); occupied {
		t.Error("Remove on the copy did not take effect")
	}
}

func TestStandardInitial(t *testing.T) {
	b := StandardInitial()

	tests := []struct {
		square string
		piece  Piece
	}{
		{"a1", Piece{Rook, White}},
		{"b1", Piece{Knight, White}},
		{"c1", Piece{Bishop, White}},
		{"d1", Piece{Queen, White}},
		{"e1", Piece{King, White}},
		{"f1", Piece{Bishop, White}},
		{"g1", Piece{Knight, White}},
		{"h1", Piece{Rook, White}},
		{"a2", Piece{Pawn, White}},
		{"e2", Piece{Pawn, White}},
		{"h2", Piece{Pawn, White}},
		{"a7", Piece{Pawn, Black}},
		{"e7", Piece{Pawn, Black}},
		{"h7", Piece{Pawn, Black}},
		{"a8", Piece{Rook, Black}},
		{"b8", Piece{Knight, Black}},
		{"c8", Piece{Bishop, Black}},
		{"d8", Piece{Queen, Black}},
		{"e8", Piece{King, Black}},
		{"f8", Piece{Bishop, Black}},
		{"g8", Piece{Knight, Black}},
		{"h8", Piece{Rook, Black}},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			got, occupied := b.PieceAt(mustSquare(t, tt.square))
			if !occupied || got != tt.piece {
				t.Errorf("PieceAt(%s) = %v, %v; want %v, true", tt.square, got, occupied, tt.piece)
			}
		})
	}

	t.Run("middle is empty", func(t *testing.T) {
		for rank := 2; rank <= 5; rank++ {
			for file := 0; file < BoardSize; file++ {
				sq, _ := SquareAt(rank, file)
				if _, occupied := b.PieceAt(sq); occupied {
					t.Errorf("PieceAt(%v) occupied; want empty middle", sq)
				}
			}
		}
	})

	t.Run("piece counts", func(t *testing.T) {
		if got := b.Count(White); got != 16 {
			t.Errorf("Count(White) = %d; want 16", got)
		}
		if got := b.Count(Black); got != 16 {
			t.Errorf("Count(Black) = %d; want 16", got)
		}
	})

	t.Run("exactly one king each", func(t *testing.T) {
		for _, colour := range []Colour{White, Black} {
			kings := 0
			for sq := Square(0); sq < NumSquares; sq++ {
				if p, occupied := b.PieceAt(sq); occupied && p.Kind == King && p.Colour == colour {
					kings++
				}
			}
			if kings != 1 {
				t.Errorf("%v kings = %d; want 1", colour, kings)
			}
		}
	})
}

// TestStandardInitialMirrorSymmetry verifies the layout invariant: mirroring
// the rank (r -> 7-r) and flipping the colour reproduces the same board.
func TestStandardInitialMirrorSymmetry(t *testing.T) {
	b := StandardInitial()

	for sq := Square(0); sq < NumSquares; sq++ {
		mirror, err := SquareAt(BoardSize-1-sq.Rank(), sq.File())
		if err != nil {
			t.Fatalf("SquareAt error: %v", err)
		}

		p, pOcc := b.PieceAt(sq)
		m, mOcc := b.PieceAt(mirror)
		if pOcc != mOcc {
			t.Errorf("occupancy of %v and mirror %v differ", sq, mirror)
			continue
		}
		if !pOcc {
			continue
		}
		if p.Kind != m.Kind || p.Colour != m.Colour.Opposite() {
			t.Errorf("mirror of %v %v at %v is %v; want same kind, opposite colour",
				p, sq, mirror, m)
		}
	}
}

func TestFindKing(t *testing.T) {
	b := StandardInitial()

	sq, ok := b.FindKing(White)
	if !ok || sq.String() != "e1" {
		t.Errorf("FindKing(White) = %v, %v; want e1, true", sq, ok)
	}
	sq, ok = b.FindKing(Black)
	if !ok || sq.String() != "e8" {
		t.Errorf("FindKing(Black) = %v, %v; want e8, true", sq, ok)
	}

	if _, ok := NewBoard().FindKing(White); ok {
		t.Error("FindKing on empty board found a king")
	}
}

func TestBoardEqual(t *testing.T) {
	a := StandardInitial()
	b := StandardInitial()
	if !a.Equal(b) {
		t.Error("two standard initial boards are not Equal")
	}

	b.Remove(mustSquare(t, "e2"))
	if a.Equal(b) {
		t.Error("boards with different contents are Equal")
	}
}
