package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// HasInsufficientMaterial returns true if neither side retains enough
// material to deliver checkmate:
//   - K vs K
//   - K+B vs K
//   - K+N vs K
//   - K+B vs K+B with both bishops on the same square colour
func HasInsufficientMaterial(board *chess.Board) bool {
	var whiteMinors, blackMinors []chess.PieceKind
	var whiteBishopOnLight, blackBishopOnLight bool

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece, occupied := board.PieceAt(sq)
		if !occupied {
			continue
		}

		// Kings don't count for material.
		if piece.Kind == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material.
		if piece.Kind == chess.Pawn || piece.Kind == chess.Rook || piece.Kind == chess.Queen {
			return false
		}

		if piece.Colour == chess.White {
			whiteMinors = append(whiteMinors, piece.Kind)
			if piece.Kind == chess.Bishop {
				whiteBishopOnLight = sq.IsLight()
			}
		} else {
			blackMinors = append(blackMinors, piece.Kind)
			if piece.Kind == chess.Bishop {
				blackBishopOnLight = sq.IsLight()
			}
		}
	}

	// K vs K
	if len(whiteMinors) == 0 && len(blackMinors) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whiteMinors) == 0 && len(blackMinors) == 1 {
		return true
	}
	if len(blackMinors) == 0 && len(whiteMinors) == 1 {
		return true
	}

	// K+B vs K+B with same-coloured bishops
	if len(whiteMinors) == 1 && len(blackMinors) == 1 &&
		whiteMinors[0] == chess.Bishop && blackMinors[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}
