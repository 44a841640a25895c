package chess

import "math/bits"

// Square is a board square index: rank*8 + file, so a1 = 0 and h8 = 63.
type Square int8

// NoSquare marks an absent square, e.g. no en-passant target.
const NoSquare Square = -1

// Named squares used by castling and tests.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A8 Square = 56 + iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare returns the square at the given file and rank indices (0-7).
// It returns NoSquare if either index is off the board.
func NewSquare(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// ParseSquare parses algebraic square text such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	sq := NewSquare(int(s[0])-FileBase, int(s[1])-RankBase)
	return sq, sq != NoSquare
}

// File returns the file index (0 = a file).
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the rank index (0 = first rank).
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Offset returns the square df files and dr ranks away, or NoSquare if that
// leaves the board.
func (s Square) Offset(df, dr int) Square {
	return NewSquare(s.File()+df, s.Rank()+dr)
}

// IsLight reports whether the square is a light square (h1 is light).
func (s Square) IsLight() bool {
	return (s.File()+s.Rank())%2 == 1
}

// String returns the algebraic name of the square, or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File()), byte(RankBase + s.Rank())})
}

// SquareSet is a set of squares, one bit per square.
type SquareSet uint64

// Add returns the set with sq included.
func (ss SquareSet) Add(sq Square) SquareSet {
	return ss | 1<<uint(sq)
}

// Has reports whether sq is in the set.
func (ss SquareSet) Has(sq Square) bool {
	return sq.Valid() && ss&(1<<uint(sq)) != 0
}

// Count returns the number of squares in the set.
func (ss SquareSet) Count() int {
	return bits.OnesCount64(uint64(ss))
}

// Squares lists the members in ascending order.
func (ss SquareSet) Squares() []Square {
	squares := make([]Square, 0, ss.Count())
	for rest := uint64(ss); rest != 0; rest &= rest - 1 {
		squares = append(squares, Square(bits.TrailingZeros64(rest)))
	}
	return squares
}
