package board

import (
	"math/bits"
	"strings"

	"golang.org/x/exp/constraints"
)

// inBounds reports whether lo <= v < hi, generalized over File/Rank/int so
// the board-edge checks in rays.go and attacks.go share one implementation
// instead of repeating the same four-way comparison per caller.
func inBounds[T constraints.Integer](v, lo, hi T) bool {
	return v >= lo && v < hi
}

// Bitboard is a 128-bit-capable representation of the 9x10 (90 square) board,
// backed by a pair of uint64 words since Go has no native 128-bit integer.
// Bit i of lo is square i (0..63); bit i of hi is square 64+i (0..25). The
// upper 38 bits of the conceptual 128-bit value are never set. All
// operations below are O(1).
type Bitboard struct {
	lo, hi uint64
}

// EmptyBitboard is the zero value.
var EmptyBitboard = Bitboard{}

const hiBits = uint(NumSquares) - 64 // 26

// BitMask returns a bitboard with only the given square set.
func BitMask(sq Square) Bitboard {
	if sq < 64 {
		return Bitboard{lo: 1 << uint(sq)}
	}
	return Bitboard{hi: 1 << (uint(sq) - 64)}
}

func (b Bitboard) IsSet(sq Square) bool {
	if sq < 64 {
		return b.lo&(1<<uint(sq)) != 0
	}
	return b.hi&(1<<(uint(sq)-64)) != 0
}

func (b Bitboard) Set(sq Square) Bitboard {
	return b.Or(BitMask(sq))
}

func (b Bitboard) Clear(sq Square) Bitboard {
	return b.AndNot(BitMask(sq))
}

func (b Bitboard) Or(o Bitboard) Bitboard {
	return Bitboard{lo: b.lo | o.lo, hi: b.hi | o.hi}
}

func (b Bitboard) And(o Bitboard) Bitboard {
	return Bitboard{lo: b.lo & o.lo, hi: b.hi & o.hi}
}

func (b Bitboard) Xor(o Bitboard) Bitboard {
	return Bitboard{lo: b.lo ^ o.lo, hi: b.hi ^ o.hi}
}

// AndNot returns b &^ o.
func (b Bitboard) AndNot(o Bitboard) Bitboard {
	return Bitboard{lo: b.lo &^ o.lo, hi: b.hi &^ o.hi}
}

func (b Bitboard) Not() Bitboard {
	return Bitboard{lo: ^b.lo, hi: ^b.hi & (1<<hiBits - 1)}
}

func (b Bitboard) IsEmpty() bool {
	return b.lo == 0 && b.hi == 0
}

// PopCount returns the population count of the bitboard, i.e., number of 1s.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(b.lo) + bits.OnesCount64(b.hi)
}

// LSB returns the least-significant set square. On an empty bitboard it
// returns the out-of-range square 128, so callers check IsEmpty first.
func (b Bitboard) LSB() Square {
	if b.lo != 0 {
		return Square(bits.TrailingZeros64(b.lo))
	}
	return Square(64 + bits.TrailingZeros64(b.hi))
}

// PopLSB returns the least-significant set square and the bitboard with
// that bit cleared.
func (b Bitboard) PopLSB() (Square, Bitboard) {
	sq := b.LSB()
	return sq, b.Clear(sq)
}

// Squares returns every set square in ascending order.
func (b Bitboard) Squares() []Square {
	ret := make([]Square, 0, b.PopCount())
	for !b.IsEmpty() {
		var sq Square
		sq, b = b.PopLSB()
		ret = append(ret, sq)
	}
	return ret
}

func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank(NumRanks - 1); ; r-- {
		for f := ZeroFile; f < NumFiles; f++ {
			if b.IsSet(NewSquare(f, r)) {
				sb.WriteRune('X')
			} else {
				sb.WriteRune('-')
			}
		}
		if r == ZeroRank {
			break
		}
		sb.WriteRune('/')
	}
	return sb.String()
}

// BitRank returns a bitboard for the given rank.
func BitRank(r Rank) Bitboard {
	var b Bitboard
	for f := ZeroFile; f < NumFiles; f++ {
		b = b.Set(NewSquare(f, r))
	}
	return b
}

// BitFile returns a bitboard for the given file.
func BitFile(f File) Bitboard {
	var b Bitboard
	for r := ZeroRank; r < NumRanks; r++ {
		b = b.Set(NewSquare(f, r))
	}
	return b
}

// PalaceMask returns the 3x3 palace mask for the given color.
func PalaceMask(c Color) Bitboard {
	var b Bitboard
	rMin, rMax := ZeroRank, Rank(2)
	if c == Black {
		rMin, rMax = Rank(7), Rank(9)
	}
	for f := PalaceFileMin; f <= PalaceFileMax; f++ {
		for r := rMin; r <= rMax; r++ {
			b = b.Set(NewSquare(f, r))
		}
	}
	return b
}

// OwnSideMask returns the mask of squares on the given color's side of the
// river (before crossing), used to constrain the Elephant.
func OwnSideMask(c Color) Bitboard {
	var b Bitboard
	rMin, rMax := ZeroRank, RedSideTopRank
	if c == Black {
		rMin, rMax = BlackSideTopRank, Rank(NumRanks-1)
	}
	for r := rMin; r <= rMax; r++ {
		b = b.Or(BitRank(r))
	}
	return b
}

// HasCrossedRiver returns true iff the square lies on the far side of the
// river for the given color (affects Soldier behavior).
func HasCrossedRiver(c Color, sq Square) bool {
	if c == Red {
		return sq.Rank() > RedSideTopRank
	}
	return sq.Rank() < BlackSideTopRank
}
