package chess

// Board is the 8x8 grid of square occupants. It is a plain value: assigning
// a Board copies it.
type Board struct {
	// Squares holds coloured pieces indexed by Square; Empty marks a free square.
	Squares [NumSquares]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Place(NewSquare(file, 0), W(backRank[file]))
		b.Place(NewSquare(file, 1), W(Pawn))
		b.Place(NewSquare(file, 6), B(Pawn))
		b.Place(NewSquare(file, 7), B(backRank[file]))
	}
}

// Occupant returns the coloured piece on the square, or Empty.
// Off-board squares read as Empty.
func (b *Board) Occupant(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b.Squares[sq]
}

// IsEmpty reports whether the square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Occupant(sq) == Empty
}

// Place puts a coloured piece on the square, replacing any occupant.
func (b *Board) Place(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq] = piece
	}
}

// Remove clears the square and returns what was there.
func (b *Board) Remove(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	piece := b.Squares[sq]
	b.Squares[sq] = Empty
	return piece
}

// SquaresWith returns every square holding the given piece type of the given colour.
func (b *Board) SquaresWith(colour Colour, kind Piece) SquareSet {
	target := MakeColouredPiece(colour, kind)
	var set SquareSet
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.Squares[sq] == target {
			set = set.Add(sq)
		}
	}
	return set
}

// Occupied returns every square holding a piece of the colour.
func (b *Board) Occupied(colour Colour) SquareSet {
	var set SquareSet
	for sq := Square(0); sq < NumSquares; sq++ {
		if p := b.Squares[sq]; p != Empty && ExtractColour(p) == colour {
			set = set.Add(sq)
		}
	}
	return set
}

// KingSquare returns the square of the colour's king, or NoSquare.
func (b *Board) KingSquare(colour Colour) Square {
	king := MakeColouredPiece(colour, King)
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.Squares[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// Count returns the number of pieces of the given type and colour.
func (b *Board) Count(colour Colour, kind Piece) int {
	return b.SquaresWith(colour, kind).Count()
}
